package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/gamebot/internal/catalog"
	"github.com/rcliao/gamebot/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS categories (
		name        TEXT PRIMARY KEY,
		position    INTEGER NOT NULL,
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS games (
		id          TEXT PRIMARY KEY,
		category    TEXT NOT NULL REFERENCES categories(name),
		position    INTEGER NOT NULL,
		name        TEXT NOT NULL,
		name_key    TEXT NOT NULL,
		platforms   TEXT NOT NULL,
		rating      REAL NOT NULL,
		year        INTEGER NOT NULL DEFAULT 0,
		length      TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		features    TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		UNIQUE (category, name_key)
	);
	CREATE INDEX IF NOT EXISTS idx_games_order ON games(category, position);
	CREATE INDEX IF NOT EXISTS idx_games_length ON games(length);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*Game, error) {
	if p.Category == "" {
		return nil, fmt.Errorf("category is required")
	}
	if err := catalog.Validate(p.Item); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	nowStr := now.Format(time.RFC3339)
	platforms, err := json.Marshal(p.Item.Platforms)
	if err != nil {
		return nil, fmt.Errorf("encode platforms: %w", err)
	}
	var features *string
	if len(p.Item.Features) > 0 {
		b, err := json.Marshal(p.Item.Features)
		if err != nil {
			return nil, fmt.Errorf("encode features: %w", err)
		}
		f := string(b)
		features = &f
	}
	nameKey := strings.ToLower(p.Item.Name)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Categories keep the position they were first seen at.
	_, err = tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO categories (name, position, created_at)
		 VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM categories), ?)`,
		string(p.Category), nowStr)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	var id, createdAt string
	var position int
	err = tx.QueryRowContext(ctx,
		`SELECT id, position, created_at FROM games WHERE category = ? AND name_key = ?`,
		string(p.Category), nameKey).Scan(&id, &position, &createdAt)

	switch {
	case err == sql.ErrNoRows:
		id = s.newID()
		createdAt = nowStr
		if err := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(position), -1) + 1 FROM games WHERE category = ?`,
			string(p.Category)).Scan(&position); err != nil {
			return nil, fmt.Errorf("next position: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO games (id, category, position, name, name_key, platforms, rating, year, length, description, features, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, string(p.Category), position, p.Item.Name, nameKey, string(platforms), p.Item.Rating,
			p.Item.Year, string(p.Item.Length), p.Item.Description, features, nowStr, nowStr)
		if err != nil {
			return nil, fmt.Errorf("insert game: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("lookup game: %w", err)
	default:
		_, err = tx.ExecContext(ctx,
			`UPDATE games SET name = ?, platforms = ?, rating = ?, year = ?, length = ?, description = ?, features = ?, updated_at = ?
			 WHERE id = ?`,
			p.Item.Name, string(platforms), p.Item.Rating, p.Item.Year, string(p.Item.Length),
			p.Item.Description, features, nowStr, id)
		if err != nil {
			return nil, fmt.Errorf("update game: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	g := &Game{
		ID:        id,
		Entry:     model.Entry{Item: p.Item, Category: p.Category},
		Position:  position,
		UpdatedAt: now,
	}
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return g, nil
}

const gameColumns = `g.id, g.category, g.position, g.name, g.platforms, g.rating, g.year, g.length,
	       g.description, g.features, g.created_at, g.updated_at`

func (s *SQLiteStore) Get(ctx context.Context, category model.Category, name string) (*Game, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+gameColumns+` FROM games g WHERE g.category = ? AND g.name_key = ?`,
		string(category), strings.ToLower(name))
	g, err := scanGame(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game not found: %s/%s", category, name)
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]Game, error) {
	where := []string{"1 = 1"}
	args := []interface{}{}

	if p.Category != "" {
		where = append(where, "g.category = ?")
		args = append(args, string(p.Category))
	}
	if p.Length != "" {
		where = append(where, "g.length = ?")
		args = append(args, string(p.Length))
	}
	if p.Platform != "" {
		where = append(where, "g.platforms LIKE ?")
		args = append(args, "%\""+string(p.Platform)+"\"%")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM games g JOIN categories c ON c.name = g.category
		WHERE %s
		ORDER BY c.position, g.position`, gameColumns, strings.Join(where, " AND "))
	if p.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, p.Limit)
	}

	return s.queryGames(ctx, query, args...)
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM games WHERE category = ? AND name_key = ?`,
		string(p.Category), strings.ToLower(p.Name))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("game not found: %s/%s", p.Category, p.Name)
	}
	return nil
}

// Catalog loads every stored game, in category then item position order.
// Categories left without games are skipped.
func (s *SQLiteStore) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	games, err := s.List(ctx, ListParams{})
	if err != nil {
		return nil, err
	}
	var sections []catalog.Section
	for _, g := range games {
		if n := len(sections); n == 0 || sections[n-1].Category != g.Category {
			sections = append(sections, catalog.Section{Category: g.Category})
		}
		last := &sections[len(sections)-1]
		last.Items = append(last.Items, g.Item)
	}
	return catalog.New(sections)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) queryGames(ctx context.Context, query string, args ...interface{}) ([]Game, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(row scanner) (Game, error) {
	var g Game
	var category, platforms, length, createdAt, updatedAt string
	var features sql.NullString

	err := row.Scan(
		&g.ID, &category, &g.Position, &g.Name, &platforms, &g.Rating, &g.Year, &length,
		&g.Description, &features, &createdAt, &updatedAt,
	)
	if err != nil {
		return g, err
	}

	g.Category = model.Category(category)
	g.Length = model.SessionLength(length)
	if g.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return g, fmt.Errorf("game %s: created_at: %w", g.ID, err)
	}
	if g.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return g, fmt.Errorf("game %s: updated_at: %w", g.ID, err)
	}
	if err := json.Unmarshal([]byte(platforms), &g.Platforms); err != nil {
		return g, fmt.Errorf("game %s: platforms: %w", g.ID, err)
	}
	if features.Valid {
		if err := json.Unmarshal([]byte(features.String), &g.Features); err != nil {
			return g, fmt.Errorf("game %s: features: %w", g.ID, err)
		}
	}

	return g, nil
}
