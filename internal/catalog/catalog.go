// Package catalog holds the read-only collection of games grouped by category.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rcliao/gamebot/internal/model"
)

// ErrEmpty is returned when a catalog would hold no items at all.
var ErrEmpty = errors.New("catalog has no items")

// Section is one category and the items listed under it, in declaration order.
type Section struct {
	Category model.Category `json:"category" yaml:"category"`
	Items    []model.Item   `json:"items" yaml:"items"`
}

// Catalog is an immutable, ordered set of sections.
type Catalog struct {
	sections []Section
	size     int
}

// New validates sections and returns a catalog holding a private copy of them.
func New(sections []Section) (*Catalog, error) {
	c := &Catalog{}
	seenCat := map[model.Category]bool{}
	for _, s := range sections {
		if s.Category == "" {
			return nil, fmt.Errorf("section with empty category")
		}
		if seenCat[s.Category] {
			return nil, fmt.Errorf("duplicate category %q", s.Category)
		}
		seenCat[s.Category] = true

		seenName := map[string]bool{}
		items := make([]model.Item, 0, len(s.Items))
		for _, it := range s.Items {
			if err := Validate(it); err != nil {
				return nil, fmt.Errorf("%s: %w", s.Category, err)
			}
			key := strings.ToLower(it.Name)
			if seenName[key] {
				return nil, fmt.Errorf("%s: duplicate item %q", s.Category, it.Name)
			}
			seenName[key] = true
			items = append(items, cloneItem(it))
		}
		c.sections = append(c.sections, Section{Category: s.Category, Items: items})
		c.size += len(items)
	}
	if c.size == 0 {
		return nil, ErrEmpty
	}
	return c, nil
}

// MustNew is like New but panics on error. Only for static data.
func MustNew(sections []Section) *Catalog {
	c, err := New(sections)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Validate checks a single item against the catalog's invariants.
func Validate(it model.Item) error {
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("item with empty name")
	}
	if len(it.Platforms) == 0 {
		return fmt.Errorf("item %q has no platforms", it.Name)
	}
	for _, p := range it.Platforms {
		if strings.TrimSpace(string(p)) == "" {
			return fmt.Errorf("item %q has a blank platform", it.Name)
		}
	}
	// NaN fails both comparisons, so reject it explicitly.
	if math.IsNaN(it.Rating) || it.Rating < 0 || it.Rating > 10 {
		return fmt.Errorf("item %q rating %.2f out of range 0-10", it.Name, it.Rating)
	}
	if !model.ValidLengths[it.Length] {
		return fmt.Errorf("item %q has invalid length %q", it.Name, it.Length)
	}
	return nil
}

func cloneItem(it model.Item) model.Item {
	it.Platforms = append([]model.Platform(nil), it.Platforms...)
	if it.Features != nil {
		it.Features = append([]string(nil), it.Features...)
	}
	return it
}

// Size returns the total number of items.
func (c *Catalog) Size() int { return c.size }

// Categories returns the category names in declaration order.
func (c *Catalog) Categories() []model.Category {
	out := make([]model.Category, len(c.sections))
	for i, s := range c.sections {
		out[i] = s.Category
	}
	return out
}

// Items returns a copy of the items listed under category, or nil.
func (c *Catalog) Items(category model.Category) []model.Item {
	for _, s := range c.sections {
		if s.Category == category {
			out := make([]model.Item, len(s.Items))
			for i, it := range s.Items {
				out[i] = cloneItem(it)
			}
			return out
		}
	}
	return nil
}

// Sections returns a copy of every section.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		out[i] = Section{Category: s.Category, Items: c.Items(s.Category)}
	}
	return out
}

// Entries flattens the catalog in category-then-item order. Each call
// returns fresh copies.
func (c *Catalog) Entries() []model.Entry {
	out := make([]model.Entry, 0, c.size)
	for _, s := range c.sections {
		for _, it := range s.Items {
			out = append(out, model.Entry{Item: cloneItem(it), Category: s.Category})
		}
	}
	return out
}
