// Package intent maps raw utterances to an intent label with ordered keyword rules.
package intent

import (
	"strings"

	"github.com/rcliao/gamebot/internal/model"
)

// Rule assigns Intent when any keyword is a substring of the lowercased text.
type Rule struct {
	Intent   model.Intent `json:"intent"`
	Keywords []string     `json:"keywords"`
}

// Rule order matters: keyword sets overlap and earlier rules win.
var rules = []Rule{
	{model.IntentRecommendation, []string{"recommend", "suggestion", "should i play", "what game", "good games"}},
	{model.IntentGameInfo, []string{"tell me about", "what is", "information about", "details"}},
	{model.IntentPlatformPreference, []string{"platform", "console", "pc", "playstation", "xbox", "switch"}},
	{model.IntentGenrePreference, []string{"action", "adventure", "strategy", "puzzle", "racing", "indie", "genre"}},
	{model.IntentTips, []string{"tip", "advice", "help", "how to", "guide"}},
	{model.IntentFacts, []string{"fact", "interesting", "did you know", "trivia"}},
	{model.IntentReview, []string{"review", "opinion", "rating", "worth playing"}},
	{model.IntentGreeting, []string{"hello", "hi", "hey", "greetings"}},
	{model.IntentGoodbye, []string{"bye", "goodbye", "exit", "quit"}},
}

// Rules returns a copy of the classification table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Intent: r.Intent, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Classify returns the intent of the first matching rule, or general_chat.
func Classify(text string) model.Intent {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if ContainsAny(lower, r.Keywords) {
			return r.Intent
		}
	}
	return model.IntentGeneralChat
}

// ContainsAny reports whether any keyword is a substring of s.
// Matching is plain substring: "pcs" hits "pc".
func ContainsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
