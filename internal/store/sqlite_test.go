package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcliao/gamebot/internal/catalog"
	"github.com/rcliao/gamebot/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func game(name string, rating float64, length model.SessionLength, platforms ...model.Platform) model.Item {
	return model.Item{
		Name:        name,
		Platforms:   platforms,
		Rating:      rating,
		Year:        2020,
		Length:      length,
		Description: name + " description",
		Features:    []string{"co-op"},
	}
}

func TestPutAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	g, err := s.Put(ctx, PutParams{Category: model.Indie, Item: game("Hades", 9.0, model.Medium, model.PC, model.Switch)})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if g.ID == "" {
		t.Error("expected non-empty ID")
	}
	if g.Position != 0 {
		t.Errorf("expected position 0, got %d", g.Position)
	}

	got, err := s.Get(ctx, model.Indie, "HADES")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Hades" || got.Category != model.Indie {
		t.Errorf("unexpected game %+v", got)
	}
	if len(got.Platforms) != 2 || got.Platforms[1] != model.Switch {
		t.Errorf("expected platforms [PC Switch], got %v", got.Platforms)
	}
	if len(got.Features) != 1 || got.Features[0] != "co-op" {
		t.Errorf("expected features [co-op], got %v", got.Features)
	}
	if got.ID != g.ID {
		t.Errorf("expected id %s, got %s", g.ID, got.ID)
	}
}

func TestPutReplacesSameName(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, _ := s.Put(ctx, PutParams{Category: model.Indie, Item: game("Hades", 9.0, model.Medium, model.PC)})
	s.Put(ctx, PutParams{Category: model.Indie, Item: game("Celeste", 9.4, model.Short, model.PC)})
	second, err := s.Put(ctx, PutParams{Category: model.Indie, Item: game("hades", 8.0, model.Long, model.PC)})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected same id on replace")
	}
	if second.Position != 0 {
		t.Errorf("expected position kept at 0, got %d", second.Position)
	}

	list, _ := s.List(ctx, ListParams{})
	if len(list) != 2 {
		t.Fatalf("expected 2 games, got %d", len(list))
	}
	if list[0].Rating != 8.0 || list[0].Length != model.Long {
		t.Errorf("expected replaced fields, got %+v", list[0])
	}
}

func TestPutValidates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Put(ctx, PutParams{Category: model.Indie, Item: game("x", 11, model.Short, model.PC)}); err == nil {
		t.Error("expected error for rating out of range")
	}
	if _, err := s.Put(ctx, PutParams{Category: model.Indie, Item: game("x", 5, model.Short)}); err == nil {
		t.Error("expected error for no platforms")
	}
	if _, err := s.Put(ctx, PutParams{Item: game("x", 5, model.Short, model.PC)}); err == nil {
		t.Error("expected error for missing category")
	}
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Category: model.Racing, Item: game("Forza Horizon 5", 9.1, model.Medium, model.PC, model.Xbox)})
	s.Put(ctx, PutParams{Category: model.Puzzle, Item: game("Portal 2", 9.5, model.Short, model.PC, model.PlayStation)})
	s.Put(ctx, PutParams{Category: model.Racing, Item: game("Gran Turismo 7", 8.7, model.Long, model.PlayStation)})

	all, _ := s.List(ctx, ListParams{})
	want := []string{"Forza Horizon 5", "Gran Turismo 7", "Portal 2"}
	if len(all) != len(want) {
		t.Fatalf("expected %d, got %d", len(want), len(all))
	}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, all[i].Name)
		}
	}

	ps, _ := s.List(ctx, ListParams{Platform: model.PlayStation})
	if len(ps) != 2 {
		t.Errorf("expected 2 PlayStation games, got %d", len(ps))
	}

	racing, _ := s.List(ctx, ListParams{Category: model.Racing, Length: model.Long})
	if len(racing) != 1 || racing[0].Name != "Gran Turismo 7" {
		t.Errorf("expected only Gran Turismo 7, got %v", racing)
	}

	limited, _ := s.List(ctx, ListParams{Limit: 1})
	if len(limited) != 1 {
		t.Errorf("expected 1, got %d", len(limited))
	}
}

func TestRm(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Category: model.Indie, Item: game("Hades", 9.0, model.Medium, model.PC)})
	if err := s.Rm(ctx, RmParams{Category: model.Indie, Name: "hades"}); err != nil {
		t.Fatalf("rm: %v", err)
	}
	if _, err := s.Get(ctx, model.Indie, "Hades"); err == nil {
		t.Error("expected error after delete")
	}
	if err := s.Rm(ctx, RmParams{Category: model.Indie, Name: "hades"}); err == nil {
		t.Error("expected error deleting missing game")
	}
}

func TestImportAndCatalogRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	def := catalog.Default()
	n, err := s.Import(ctx, def)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != def.Size() {
		t.Errorf("expected %d imported, got %d", def.Size(), n)
	}

	c, err := s.Catalog(ctx)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	want, got := def.Entries(), c.Entries()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Name != want[i].Name || got[i].Category != want[i].Category || got[i].Rating != want[i].Rating {
			t.Errorf("entry %d: expected %s/%s, got %s/%s", i, want[i].Category, want[i].Name, got[i].Category, got[i].Name)
		}
	}

	// Importing again replaces instead of duplicating.
	s.Import(ctx, def)
	list, _ := s.List(ctx, ListParams{})
	if len(list) != def.Size() {
		t.Errorf("expected %d after re-import, got %d", def.Size(), len(list))
	}
}

func TestCatalogEmpty(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Catalog(context.Background())
	if !errors.Is(err, catalog.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer s.Close()

	s.Put(ctx, PutParams{Category: model.Indie, Item: game("Hades", 9.0, model.Medium, model.PC)})
	s.Put(ctx, PutParams{Category: model.Indie, Item: game("Celeste", 9.4, model.Short, model.PC)})
	s.Put(ctx, PutParams{Category: model.Racing, Item: game("Forza Horizon 5", 9.1, model.Medium, model.PC)})

	st, err := s.Stats(ctx, path)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalGames != 3 {
		t.Errorf("expected 3 games, got %d", st.TotalGames)
	}
	if len(st.Categories) != 2 || st.Categories[0].Category != "indie" || st.Categories[0].Count != 2 {
		t.Errorf("unexpected category stats %+v", st.Categories)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected db file: %v", err)
	}
}

func TestCorruptPlatformsColumn(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Put(ctx, PutParams{Category: model.Action, Item: game("Broken", 8, model.Short, model.PC)}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE games SET platforms = 'not json'`); err != nil {
		t.Fatalf("corrupt row: %v", err)
	}

	if _, err := s.List(ctx, ListParams{}); err == nil {
		t.Error("expected list to fail on corrupt platforms")
	}
	if _, err := s.Get(ctx, model.Action, "Broken"); err == nil {
		t.Error("expected get to fail on corrupt platforms")
	}
	if _, err := s.Catalog(ctx); err == nil {
		t.Error("expected catalog load to fail on corrupt platforms")
	}
}
