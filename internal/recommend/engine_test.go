package recommend

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/gamebot/internal/catalog"
	"github.com/rcliao/gamebot/internal/model"
)

// firstRand always picks the lowest index.
type firstRand struct{}

func (firstRand) Intn(int) int { return 0 }

func names(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestRecommend_Category(t *testing.T) {
	e := New(catalog.Default(), firstRand{})
	got, ok := e.Match(model.Preferences{Categories: []model.Category{model.Action}}, 3)
	require.True(t, ok)
	assert.Equal(t, []string{"Red Dead Redemption 2", "The Witcher 3: Wild Hunt", "Cyberpunk 2077"}, names(got))
	for _, g := range got {
		assert.Equal(t, model.Action, g.Category)
	}
}

func TestRecommend_ConjunctiveFilters(t *testing.T) {
	e := New(catalog.Default(), firstRand{})
	got := e.Recommend(model.Preferences{
		Platforms: []model.Platform{model.Switch},
		Length:    model.Short,
	}, 5)
	assert.Equal(t, []string{"Celeste"}, names(got))
}

func TestRecommend_PlatformOverlap(t *testing.T) {
	e := New(catalog.Default(), firstRand{})
	got := e.Recommend(model.Preferences{Platforms: []model.Platform{model.WiiU, model.Mobile}}, 10)
	assert.Equal(t, []string{"The Legend of Zelda: Breath of the Wild", "Civilization VI", "The Witness"}, names(got))
}

func TestRecommend_MultipleCategories(t *testing.T) {
	e := New(catalog.Default(), firstRand{})
	got := e.Recommend(model.Preferences{Categories: []model.Category{model.Racing, model.Puzzle}}, 10)
	assert.Equal(t, []string{"Portal 2", "Forza Horizon 5", "Gran Turismo 7", "The Witness"}, names(got))
}

func TestRecommend_UnconstrainedTakesTopRated(t *testing.T) {
	e := New(catalog.Default(), firstRand{})
	got := e.Recommend(model.Preferences{}, 0)
	require.Len(t, got, DefaultCount)
	// Red Dead and Zelda tie at 9.7; flattening order decides.
	assert.Equal(t, []string{"Red Dead Redemption 2", "The Legend of Zelda: Breath of the Wild", "Portal 2"}, names(got))
}

func TestRecommend_StableOnTies(t *testing.T) {
	pc := []model.Platform{model.PC}
	c := catalog.MustNew([]catalog.Section{
		{Category: model.Action, Items: []model.Item{
			{Name: "a", Platforms: pc, Rating: 8, Length: model.Short},
			{Name: "b", Platforms: pc, Rating: 9, Length: model.Short},
			{Name: "c", Platforms: pc, Rating: 8, Length: model.Short},
		}},
		{Category: model.Indie, Items: []model.Item{
			{Name: "d", Platforms: pc, Rating: 8, Length: model.Short},
			{Name: "e", Platforms: pc, Rating: 9, Length: model.Short},
		}},
	})
	e := New(c, firstRand{})
	for i := 0; i < 10; i++ {
		assert.Equal(t, []string{"b", "e", "a", "c", "d"}, names(e.Recommend(model.Preferences{}, 5)))
	}
}

func TestRecommend_FallbackWhenNothingMatches(t *testing.T) {
	c := catalog.Default()
	e := New(c, rand.New(rand.NewSource(7)))
	p := model.Preferences{
		Categories: []model.Category{model.Puzzle},
		Platforms:  []model.Platform{model.PlayStation},
		Length:     model.Long,
	}
	for _, count := range []int{1, 3, 5, c.Size(), c.Size() + 4} {
		got, ok := e.Match(p, count)
		assert.False(t, ok)
		want := count
		if want > c.Size() {
			want = c.Size()
		}
		require.Len(t, got, want)

		seen := map[string]bool{}
		for _, g := range got {
			assert.False(t, seen[g.Name], "duplicate %s", g.Name)
			seen[g.Name] = true
		}
	}
}

func TestRecommend_FallbackIsPinnedByRand(t *testing.T) {
	e := New(catalog.Default(), firstRand{})
	got, ok := e.Match(model.Preferences{Categories: []model.Category{"sports"}}, 2)
	assert.False(t, ok)
	assert.Equal(t, []string{"The Witcher 3: Wild Hunt", "Red Dead Redemption 2"}, names(got))
}

func TestFindByName(t *testing.T) {
	e := New(catalog.Default(), nil)

	got, ok := e.FindByName("PORTAL")
	require.True(t, ok)
	assert.Equal(t, "Portal 2", got.Name)
	assert.Equal(t, model.Puzzle, got.Category)

	// "the" appears in several names; catalog order decides.
	got, ok = e.FindByName("the")
	require.True(t, ok)
	assert.Equal(t, "The Witcher 3: Wild Hunt", got.Name)

	_, ok = e.FindByName("halo")
	assert.False(t, ok)
}

func TestFindByToken(t *testing.T) {
	e := New(catalog.Default(), nil)

	got, ok := e.FindByToken("Tell me about The Witcher 3")
	require.True(t, ok)
	assert.Equal(t, "The Witcher 3: Wild Hunt", got.Name)

	got, ok = e.FindByToken("celeste?")
	require.True(t, ok)
	assert.Equal(t, "Celeste", got.Name)

	_, ok = e.FindByToken("xyz")
	assert.False(t, ok)
}
