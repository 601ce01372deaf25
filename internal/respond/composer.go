// Package respond renders reply text from an intent and the data it needs.
package respond

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rcliao/gamebot/internal/catalog"
	"github.com/rcliao/gamebot/internal/model"
)

// Rand is the subset of *rand.Rand used to pick canned variants.
type Rand interface {
	Intn(n int) int
}

// Payload carries whatever structured result an intent needs.
// Fields not relevant to the intent are ignored.
type Payload struct {
	// Entries for recommendation, platform_preference and genre_preference.
	Entries []model.Entry

	// Item for game_info and review; nil means the lookup failed.
	Item *model.Entry

	// Platform heads a platform_preference list; empty asks which platform.
	Platform model.Platform

	// Category heads a genre_preference list; empty asks which genre.
	Category model.Category

	// Platforms and Categories are offered when the user has to choose.
	Platforms  []model.Platform
	Categories []model.Category
}

// Composer turns structured results into reply text.
type Composer struct {
	rnd   Rand
	tips  []string
	facts []string
}

// New returns a composer drawing canned variants from rnd.
// A nil rnd seeds one from the clock.
func New(rnd Rand) *Composer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Composer{rnd: rnd, tips: catalog.Tips, facts: catalog.Facts}
}

// Compose renders the reply for intent.
func (c *Composer) Compose(intent model.Intent, p Payload) string {
	switch intent {
	case model.IntentGreeting:
		return c.pick(greetings)
	case model.IntentRecommendation:
		return recommendations(p.Entries)
	case model.IntentGameInfo:
		return gameInfo(p.Item)
	case model.IntentPlatformPreference:
		return platformList(p)
	case model.IntentGenrePreference:
		return genreList(p)
	case model.IntentTips:
		return fmt.Sprintf("💡 Gaming Tip:\n%s\n\nWould you like another tip or need advice about a specific gaming topic? 🎮", c.pick(c.tips))
	case model.IntentFacts:
		return fmt.Sprintf("🤓 Gaming Fact:\n%s\n\nWant to hear another interesting gaming fact? 🎮", c.pick(c.facts))
	case model.IntentReview:
		return review(p.Item)
	case model.IntentGoodbye:
		return c.pick(goodbyes)
	default:
		return c.pick(smallTalk) + " 🎮"
	}
}

func (c *Composer) pick(options []string) string {
	return options[c.rnd.Intn(len(options))]
}

func recommendations(entries []model.Entry) string {
	if len(entries) == 0 {
		return "I couldn't find games matching your exact preferences, but let me suggest some popular games across different genres!"
	}
	return render("recommendation", struct{ Items []listItem }{numbered(entries)})
}

func platformList(p Payload) string {
	if p.Platform == "" {
		names := make([]string, len(p.Platforms))
		for i, pl := range p.Platforms {
			names[i] = string(pl)
		}
		return fmt.Sprintf("Which gaming platform are you interested in? I can recommend games for %s! 🎮", strings.Join(names, ", "))
	}
	return render("platform", struct {
		Platform model.Platform
		Items    []listItem
	}{p.Platform, numbered(p.Entries)})
}

func genreList(p Payload) string {
	if p.Category == "" {
		names := make([]string, len(p.Categories))
		for i, c := range p.Categories {
			names[i] = title(c)
		}
		return fmt.Sprintf("I can help you explore different game genres! Available genres: %s. Which one interests you? 🎮", strings.Join(names, ", "))
	}
	return render("genre", struct {
		Category model.Category
		Items    []listItem
	}{p.Category, numbered(p.Entries)})
}

func gameInfo(item *model.Entry) string {
	if item == nil {
		return "I'd love to help you learn about a specific game! Could you tell me which game you're interested in? I have information about many popular titles across different genres! 🎮"
	}
	return render("card", item)
}

func review(item *model.Entry) string {
	if item == nil {
		return "Which game would you like me to review? I can share ratings, opinions, and detailed information about many popular games! 🎮"
	}
	return render("review", struct {
		model.Entry
		Verdict string
	}{*item, VerdictFor(item.Rating).Line()})
}
