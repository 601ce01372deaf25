package store

import (
	"context"
	"fmt"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string          `json:"db_path"`
	DBSizeBytes int64           `json:"db_size_bytes"`
	TotalGames  int             `json:"total_games"`
	AvgRating   float64         `json:"avg_rating"`
	Categories  []CategoryStats `json:"categories"`
}

// CategoryStats holds per-category counts.
type CategoryStats struct {
	Category  string  `json:"category"`
	Count     int     `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(AVG(rating), 0) FROM games`).
		Scan(&st.TotalGames, &st.AvgRating)
	if err != nil {
		return st, fmt.Errorf("count games: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, COUNT(g.id), COALESCE(AVG(g.rating), 0)
		FROM categories c LEFT JOIN games g ON g.category = c.name
		GROUP BY c.name ORDER BY c.position`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var cs CategoryStats
		if err := rows.Scan(&cs.Category, &cs.Count, &cs.AvgRating); err != nil {
			return st, fmt.Errorf("scan category stats: %w", err)
		}
		st.Categories = append(st.Categories, cs)
	}

	return st, rows.Err()
}
