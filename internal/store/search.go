package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcliao/gamebot/internal/model"
)

// SearchParams holds parameters for searching games.
type SearchParams struct {
	Query     string
	Category  model.Category
	MinRating float64
	Limit     int
}

// Search finds games whose name, description or features contain the query
// substring, in catalog order. Category and MinRating narrow the result when set.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]Game, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	like := "%" + strings.ToLower(p.Query) + "%"
	where := []string{"(g.name_key LIKE ? OR lower(g.description) LIKE ? OR lower(COALESCE(g.features, '')) LIKE ?)"}
	args := []interface{}{like, like, like}

	if p.Category != "" {
		where = append(where, "g.category = ?")
		args = append(args, string(p.Category))
	}
	if p.MinRating > 0 {
		where = append(where, "g.rating >= ?")
		args = append(args, p.MinRating)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM games g JOIN categories c ON c.name = g.category
		WHERE %s
		ORDER BY c.position, g.position
		LIMIT ?`, gameColumns, strings.Join(where, " AND "))
	args = append(args, limit)

	return s.queryGames(ctx, query, args...)
}
