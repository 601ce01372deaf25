package bot

import (
	"strings"
	"unicode/utf8"

	"github.com/rcliao/gamebot/internal/model"
)

var reviewTriggers = []string{"worth playing", "review", "opinion", "rating"}

// minQueryLen keeps trailing fragments like "a" or "of" from matching
// arbitrary names.
const minQueryLen = 3

// findForReview looks up the game a review request names. The whole
// utterance is tried as a name query first. Failing that, trigger words
// are removed and the longest trailing run of words that names a game wins.
func (b *Bot) findForReview(text string) (model.Entry, bool) {
	if e, ok := b.engine.FindByName(strings.TrimSpace(text)); ok {
		return e, true
	}

	lower := strings.ToLower(text)
	for _, t := range reviewTriggers {
		lower = strings.ReplaceAll(lower, t, " ")
	}
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '?' || r == '!' || r == ','
	})
	for i := range words {
		q := strings.TrimRight(strings.Join(words[i:], " "), ".")
		if utf8.RuneCountInString(q) < minQueryLen {
			continue
		}
		if e, ok := b.engine.FindByName(q); ok {
			return e, true
		}
	}
	return model.Entry{}, false
}
