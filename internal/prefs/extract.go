// Package prefs extracts genre, platform and session-length cues from an utterance.
package prefs

import (
	"strings"

	"github.com/rcliao/gamebot/internal/intent"
	"github.com/rcliao/gamebot/internal/model"
)

type platformKeyword struct {
	keyword  string
	platform model.Platform
}

// Iterated in order so the resulting platform list is deterministic.
var platformKeywords = []platformKeyword{
	{"pc", model.PC},
	{"computer", model.PC},
	{"playstation", model.PlayStation},
	{"ps4", model.PlayStation},
	{"ps5", model.PlayStation},
	{"xbox", model.Xbox},
	{"switch", model.Switch},
	{"nintendo", model.Switch},
}

type lengthCue struct {
	length   model.SessionLength
	keywords []string
}

// First group with a hit wins.
var lengthCues = []lengthCue{
	{model.Short, []string{"short", "quick", "brief"}},
	{model.Long, []string{"long", "lengthy", "extended"}},
	{model.Medium, []string{"medium", "moderate"}},
}

// Extractor scans text for preference cues against a fixed category list.
type Extractor struct {
	categories []model.Category
}

// NewExtractor returns an extractor that recognizes the given categories,
// reporting hits in that order.
func NewExtractor(categories []model.Category) *Extractor {
	return &Extractor{categories: append([]model.Category(nil), categories...)}
}

// Extract builds a fresh preference record from text.
func (e *Extractor) Extract(text string) model.Preferences {
	lower := strings.ToLower(text)
	var p model.Preferences

	for _, c := range e.categories {
		if strings.Contains(lower, strings.ToLower(string(c))) {
			p.Categories = append(p.Categories, c)
		}
	}

	seen := map[model.Platform]bool{}
	for _, pk := range platformKeywords {
		if strings.Contains(lower, pk.keyword) && !seen[pk.platform] {
			seen[pk.platform] = true
			p.Platforms = append(p.Platforms, pk.platform)
		}
	}

	for _, cue := range lengthCues {
		if intent.ContainsAny(lower, cue.keywords) {
			p.Length = cue.length
			break
		}
	}

	return p
}

// SupportedPlatforms lists the canonical platforms the keyword table can produce.
func SupportedPlatforms() []model.Platform {
	var out []model.Platform
	seen := map[model.Platform]bool{}
	for _, pk := range platformKeywords {
		if !seen[pk.platform] {
			seen[pk.platform] = true
			out = append(out, pk.platform)
		}
	}
	return out
}
