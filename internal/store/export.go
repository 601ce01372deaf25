package store

import (
	"context"

	"github.com/rcliao/gamebot/internal/catalog"
)

// Import stores every game of c, in catalog order. Existing games with the
// same category and name are replaced.
func (s *SQLiteStore) Import(ctx context.Context, c *catalog.Catalog) (int, error) {
	imported := 0
	for _, section := range c.Sections() {
		for _, it := range section.Items {
			_, err := s.Put(ctx, PutParams{Category: section.Category, Item: it})
			if err != nil {
				return imported, err
			}
			imported++
		}
	}
	return imported, nil
}
