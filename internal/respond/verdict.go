package respond

// Tier buckets a rating into a review verdict.
type Tier int

const (
	Average Tier = iota
	Good
	Excellent
	Masterpiece
)

// VerdictFor returns the tier for rating. Lower bounds are inclusive.
func VerdictFor(rating float64) Tier {
	switch {
	case rating >= 9.0:
		return Masterpiece
	case rating >= 8.0:
		return Excellent
	case rating >= 7.0:
		return Good
	default:
		return Average
	}
}

func (t Tier) String() string {
	switch t {
	case Masterpiece:
		return "masterpiece"
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	default:
		return "average"
	}
}

// Line is the verdict sentence shown in a review.
func (t Tier) Line() string {
	switch t {
	case Masterpiece:
		return "🏆 Verdict: Masterpiece! This game is absolutely phenomenal and a must-play for any gamer."
	case Excellent:
		return "👍 Verdict: Excellent game! Highly recommended with great gameplay and features."
	case Good:
		return "✅ Verdict: Good game worth playing, with some minor flaws but overall enjoyable."
	default:
		return "⚠️ Verdict: Average game. Might be worth trying if you're interested in the genre."
	}
}
