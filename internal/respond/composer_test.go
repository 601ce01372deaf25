package respond

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcliao/gamebot/internal/catalog"
	"github.com/rcliao/gamebot/internal/model"
)

// fixedRand returns i, clamped to n-1.
type fixedRand struct{ i int }

func (f fixedRand) Intn(n int) int {
	if f.i >= n {
		return n - 1
	}
	return f.i
}

func entry(t *testing.T, name string) model.Entry {
	t.Helper()
	for _, e := range catalog.Default().Entries() {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("no entry %q", name)
	return model.Entry{}
}

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		rating float64
		want   Tier
	}{
		{10, Masterpiece},
		{9.0, Masterpiece},
		{8.9999, Excellent},
		{8.0, Excellent},
		{7.99, Good},
		{7.0, Good},
		{6.99, Average},
		{0, Average},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, VerdictFor(tc.rating), "rating %v", tc.rating)
	}
	assert.Equal(t, "masterpiece", Masterpiece.String())
	assert.Equal(t, "excellent", Excellent.String())
}

func TestCompose_Recommendation(t *testing.T) {
	c := New(fixedRand{})
	out := c.Compose(model.IntentRecommendation, Payload{Entries: []model.Entry{
		entry(t, "Red Dead Redemption 2"),
		entry(t, "Celeste"),
	}})

	assert.True(t, strings.HasPrefix(out, "🎮 Game Recommendations for You:\n\n1. Red Dead Redemption 2 (2018)\n"))
	assert.Contains(t, out, "   📱 Platforms: PC, PlayStation, Xbox\n")
	assert.Contains(t, out, "   ⭐ Rating: 9.7/10\n")
	assert.Contains(t, out, "   🎭 Genre: Action\n")
	assert.Contains(t, out, "   ⏱️ Playtime: Long\n")
	assert.Contains(t, out, "2. Celeste (2018)")
	assert.Contains(t, out, "   🎭 Genre: Indie\n")
	assert.True(t, strings.HasSuffix(out, "different recommendations? 🎮"))
}

func TestCompose_RecommendationEmpty(t *testing.T) {
	out := New(fixedRand{}).Compose(model.IntentRecommendation, Payload{})
	assert.Contains(t, out, "couldn't find games")
}

func TestCompose_GameInfo(t *testing.T) {
	c := New(fixedRand{})
	w := entry(t, "The Witcher 3: Wild Hunt")
	out := c.Compose(model.IntentGameInfo, Payload{Item: &w})
	assert.Contains(t, out, "🎮 The Witcher 3: Wild Hunt (2015)")
	assert.Contains(t, out, "Platforms: PC, PlayStation, Xbox, Switch")
	assert.Contains(t, out, "Rating: 9.3/10")
	assert.Contains(t, out, "Features: open-world, story-rich, character-customization")
	assert.Contains(t, out, "Description: Open-world RPG")

	out = c.Compose(model.IntentGameInfo, Payload{})
	assert.Contains(t, out, "Could you tell me which game")
}

func TestCompose_Review(t *testing.T) {
	c := New(fixedRand{})
	h := entry(t, "Hades")
	out := c.Compose(model.IntentReview, Payload{Item: &h})
	assert.Contains(t, out, "🎮 Hades Review:")
	assert.Contains(t, out, "Overall Rating: 9.0/10")
	assert.Contains(t, out, "Verdict: Masterpiece!")

	cp := entry(t, "Cyberpunk 2077")
	out = c.Compose(model.IntentReview, Payload{Item: &cp})
	assert.Contains(t, out, "Verdict: Good game worth playing")

	out = c.Compose(model.IntentReview, Payload{})
	assert.Contains(t, out, "Which game would you like me to review?")
}

func TestCompose_PlatformAndGenre(t *testing.T) {
	c := New(fixedRand{})
	entries := []model.Entry{entry(t, "Forza Horizon 5")}

	out := c.Compose(model.IntentPlatformPreference, Payload{Platform: model.Xbox, Entries: entries})
	assert.True(t, strings.HasPrefix(out, "🎮 Great Xbox Games:\n\n1. Forza Horizon 5 (2021)"))
	assert.Contains(t, out, "Xbox is an excellent gaming platform!")

	out = c.Compose(model.IntentPlatformPreference, Payload{Platforms: []model.Platform{model.PC, model.Xbox}})
	assert.Contains(t, out, "I can recommend games for PC, Xbox!")

	out = c.Compose(model.IntentGenrePreference, Payload{Category: model.Racing, Entries: entries})
	assert.True(t, strings.HasPrefix(out, "🎮 Racing Games You'll Love:"))
	assert.Contains(t, out, "Racing games offer amazing experiences!")

	out = c.Compose(model.IntentGenrePreference, Payload{Categories: []model.Category{model.Action, model.Indie}})
	assert.Contains(t, out, "Available genres: Action, Indie.")
}

func TestCompose_RandomPicksArePinned(t *testing.T) {
	first := New(fixedRand{0})
	last := New(fixedRand{100})

	assert.Contains(t, first.Compose(model.IntentTips, Payload{}), catalog.Tips[0])
	assert.Contains(t, last.Compose(model.IntentTips, Payload{}), catalog.Tips[len(catalog.Tips)-1])
	assert.Contains(t, first.Compose(model.IntentFacts, Payload{}), catalog.Facts[0])
	assert.Equal(t, greetings[0], first.Compose(model.IntentGreeting, Payload{}))
	assert.Equal(t, goodbyes[2], last.Compose(model.IntentGoodbye, Payload{}))
	assert.Equal(t, smallTalk[1]+" 🎮", New(fixedRand{1}).Compose(model.IntentGeneralChat, Payload{}))
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "9.0", formatRating(9))
	assert.Equal(t, "9.3", formatRating(9.3))
	assert.Equal(t, "8.9999", formatRating(8.9999))
}
