// Package store provides the game catalog storage interface and SQLite implementation.
package store

import (
	"context"
	"time"

	"github.com/rcliao/gamebot/internal/catalog"
	"github.com/rcliao/gamebot/internal/model"
)

// Game is a stored catalog entry.
type Game struct {
	ID string `json:"id"`
	model.Entry
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PutParams holds parameters for storing a game.
type PutParams struct {
	Category model.Category
	Item     model.Item
}

// ListParams holds parameters for listing games.
type ListParams struct {
	Category model.Category
	Platform model.Platform
	Length   model.SessionLength
	Limit    int
}

// RmParams holds parameters for deleting a game.
type RmParams struct {
	Category model.Category
	Name     string
}

// Store defines the catalog storage interface.
type Store interface {
	// Put inserts a game or replaces the one with the same category and name.
	Put(ctx context.Context, p PutParams) (*Game, error)

	// Get retrieves a game by category and case-insensitive name.
	Get(ctx context.Context, category model.Category, name string) (*Game, error)

	// List lists games in catalog order.
	List(ctx context.Context, p ListParams) ([]Game, error)

	// Rm deletes a game.
	Rm(ctx context.Context, p RmParams) error

	// Catalog loads every stored game into a catalog.
	Catalog(ctx context.Context) (*catalog.Catalog, error)

	// Close closes the store.
	Close() error
}
