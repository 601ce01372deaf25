// Package recommend filters and ranks catalog entries against extracted preferences.
package recommend

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/rcliao/gamebot/internal/catalog"
	"github.com/rcliao/gamebot/internal/model"
)

// DefaultCount is used when Recommend is called with a non-positive count.
const DefaultCount = 3

// Rand is the subset of *rand.Rand the engine draws from.
type Rand interface {
	Intn(n int) int
}

// Engine recommends games from a catalog.
type Engine struct {
	catalog *catalog.Catalog
	rnd     Rand
}

// New returns an engine over c. A nil rnd seeds one from the clock.
func New(c *catalog.Catalog, rnd Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{catalog: c, rnd: rnd}
}

// Recommend returns up to count entries matching p, best rated first.
// When nothing matches it falls back to a random sample of the whole catalog.
func (e *Engine) Recommend(p model.Preferences, count int) []model.Entry {
	entries, _ := e.Match(p, count)
	return entries
}

// Match is Recommend but also reports whether the entries satisfy p
// (false means the random fallback was used).
func (e *Engine) Match(p model.Preferences, count int) ([]model.Entry, bool) {
	if count <= 0 {
		count = DefaultCount
	}
	all := e.catalog.Entries()

	var filtered []model.Entry
	for _, entry := range all {
		if p.Matches(entry) {
			filtered = append(filtered, entry)
		}
	}

	if len(filtered) == 0 {
		return e.sample(all, count), false
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Rating > filtered[j].Rating
	})
	if len(filtered) > count {
		filtered = filtered[:count]
	}
	return filtered, true
}

// sample draws min(n, len(all)) entries without replacement.
func (e *Engine) sample(all []model.Entry, n int) []model.Entry {
	if n > len(all) {
		n = len(all)
	}
	pool := append([]model.Entry(nil), all...)
	for i := 0; i < n; i++ {
		j := i + e.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// FindByName returns the first entry whose name contains query,
// case-insensitively, in category-then-item order.
func (e *Engine) FindByName(query string) (model.Entry, bool) {
	q := strings.ToLower(query)
	for _, entry := range e.catalog.Entries() {
		if strings.Contains(strings.ToLower(entry.Name), q) {
			return entry, true
		}
	}
	return model.Entry{}, false
}

// FindByToken returns the first entry any of whose lowercased name words
// appears as a substring of text.
func (e *Engine) FindByToken(text string) (model.Entry, bool) {
	lower := strings.ToLower(text)
	for _, entry := range e.catalog.Entries() {
		for _, tok := range strings.Fields(strings.ToLower(entry.Name)) {
			if strings.Contains(lower, tok) {
				return entry, true
			}
		}
	}
	return model.Entry{}, false
}
