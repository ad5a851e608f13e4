package treasure

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dndtreasure/data"
	"github.com/samdwyer/dndtreasure/internal/chart"
	"github.com/samdwyer/dndtreasure/internal/dice"
)

var embedded = chart.NewStore(data.Charts())

func newGenerator(seed int64) (*Generator, *dice.Roller) {
	r := dice.New(seed)
	return NewGenerator(embedded, r), r
}

func TestGenerateNothing(t *testing.T) {
	g, r := newGenerator(1)

	got, err := g.Generate(context.Background(), 1, None, None, None)
	require.NoError(t, err)

	want := Treasure{
		Level: 1,
		Coins: []string{"No Coins"},
		Goods: []string{"No Goods"},
		Items: []Item{{Name: "No Items", Value: 0, ItemType: "none"}},
	}
	assert.Equal(t, want, got)
	assert.True(t, got.IsEmpty())
	assert.Equal(t, 0, r.Rolls())
}

func TestGenerateNothingEveryLevel(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		g, r := newGenerator(int64(level))
		got, err := g.Generate(context.Background(), level, None, None, None)
		require.NoError(t, err)
		assert.True(t, got.IsEmpty(), "level %d", level)
		assert.Equal(t, 0, r.Rolls(), "level %d", level)
	}
}

func TestGenerateInvalidLevel(t *testing.T) {
	for _, level := range []int{0, 21, -5} {
		g, r := newGenerator(1)
		_, err := g.Generate(context.Background(), level, Standard, Standard, Standard)

		var ile *InvalidLevelError
		require.True(t, errors.As(err, &ile), "level %d: got %v", level, err)
		assert.Equal(t, 0, r.Rolls(), "level %d consumed rolls", level)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	ctx := context.Background()
	for level := MinLevel; level <= MaxLevel; level++ {
		for _, seed := range []int64{1, 42, 1337} {
			a, _ := newGenerator(seed)
			b, _ := newGenerator(seed)

			first, err := a.Generate(ctx, level, Triple, Triple, Triple)
			require.NoError(t, err)
			second, err := b.Generate(ctx, level, Triple, Triple, Triple)
			require.NoError(t, err)

			assert.Equal(t, first, second, "level %d seed %d", level, seed)
		}
	}
}

func TestCoinsSameSeedSameResult(t *testing.T) {
	ctx := context.Background()
	g, _ := newGenerator(2024)
	want, err := g.Coins(ctx, 10, Standard, 1)
	require.NoError(t, err)
	require.Len(t, want, 1)

	for i := 0; i < 5; i++ {
		g, _ := newGenerator(2024)
		got, err := g.Coins(ctx, 10, Standard, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPassCountBounds(t *testing.T) {
	ctx := context.Background()
	for level := MinLevel; level <= MaxLevel; level++ {
		for seed := int64(0); seed < 30; seed++ {
			for _, typ := range []Type{Standard, Double, Triple} {
				g, _ := newGenerator(seed)
				coins, err := g.Coins(ctx, level, typ, 1)
				require.NoError(t, err)

				assert.GreaterOrEqual(t, len(coins), 1)
				assert.LessOrEqual(t, len(coins), typ.Passes(), "level %d seed %d %s", level, seed, typ)
				if len(coins) > 1 {
					assert.NotContains(t, coins, NoCoins, "sentinel mixed into %v", coins)
				}
			}
		}
	}
}

func TestNoSentinelMixedIntoResults(t *testing.T) {
	ctx := context.Background()
	for seed := int64(0); seed < 50; seed++ {
		g, _ := newGenerator(seed)
		got, err := g.Generate(ctx, 12, Triple, Triple, Triple)
		require.NoError(t, err)

		if len(got.Goods) > 1 {
			assert.NotContains(t, got.Goods, NoGoods)
		}
		if len(got.Items) > 1 {
			assert.NotContains(t, got.Items, NoItems)
		}
	}
}

func TestHalfCoinsScaleAmount(t *testing.T) {
	ctx := context.Background()
	for seed := int64(0); seed < 100; seed++ {
		full, _ := newGenerator(seed)
		half, _ := newGenerator(seed)

		a, err := full.Coins(ctx, 7, Standard, 1)
		require.NoError(t, err)
		b, err := half.Coins(ctx, 7, Half, 1)
		require.NoError(t, err)

		if a[0] == NoCoins {
			assert.Equal(t, []string{NoCoins}, b)
			continue
		}

		var amount int
		var denom string
		_, err = fmt.Sscanf(a[0], "%d %s", &amount, &denom)
		require.NoError(t, err)
		assert.Equal(t, []string{fmt.Sprintf("%d %s", amount/2, denom)}, b, "seed %d", seed)
	}
}

func TestZeroPercentageGatesGoodsAndItems(t *testing.T) {
	ctx := context.Background()

	g, r := newGenerator(8)
	goods, err := g.Goods(ctx, 20, Standard, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{NoGoods}, goods)
	assert.Equal(t, 1, r.Rolls())

	g, r = newGenerator(8)
	items, err := g.Items(ctx, 20, Triple, 0)
	require.NoError(t, err)
	assert.Equal(t, []Item{NoItems}, items)
	assert.Equal(t, 3, r.Rolls())
}

// splitGood splits "<name> (<value> gp)".
func splitGood(t *testing.T, s string) (string, int) {
	t.Helper()
	i := strings.LastIndex(s, " (")
	require.Positive(t, i, "malformed good %q", s)

	var value int
	_, err := fmt.Sscanf(s[i:], " (%d gp)", &value)
	require.NoError(t, err, "malformed good %q", s)
	return s[:i], value
}

// tierIndex maps each entry name of family's tier charts to its tier.
func tierIndex(t *testing.T, family string, tiers int) map[string]int {
	t.Helper()
	idx := make(map[string]int)
	for n := 1; n <= tiers; n++ {
		c, err := embedded.LoadByName(fmt.Sprintf("dmg/%s_tier%d", family, n))
		require.NoError(t, err)
		for _, e := range c.Entries {
			_, dup := idx[e.Name]
			require.False(t, dup, "%q appears in two tiers", e.Name)
			idx[e.Name] = n
		}
	}
	return idx
}

func bounds(d dice.Dice) (int, int) {
	m := d.Multiplier
	if m == 0 {
		m = 1
	}
	return d.Count * m, d.Count * d.Sides * m
}

func TestGemValuesFollowTierFormula(t *testing.T) {
	idx := tierIndex(t, "gems", len(gemTiers))
	g, _ := newGenerator(77)

	for i := 0; i < 500; i++ {
		s, err := g.Gem()
		require.NoError(t, err)

		name, value := splitGood(t, s)
		tier, ok := idx[name]
		require.True(t, ok, "unknown gem %q", name)

		lo, hi := bounds(gemTiers[tier-1].value)
		assert.GreaterOrEqual(t, value, lo, "%s tier %d", name, tier)
		assert.LessOrEqual(t, value, hi, "%s tier %d", name, tier)
	}
}

func TestTierOneAndSixGemRanges(t *testing.T) {
	lo, hi := bounds(gemTiers[0].value)
	assert.Equal(t, 4, lo)
	assert.Equal(t, 16, hi)

	lo, hi = bounds(gemTiers[5].value)
	assert.Equal(t, 2000, lo)
	assert.Equal(t, 8000, hi)
}

func TestArtValuesFollowTierFormula(t *testing.T) {
	idx := tierIndex(t, "art", len(artTiers))
	g, _ := newGenerator(78)

	for i := 0; i < 500; i++ {
		s, err := g.Art()
		require.NoError(t, err)

		name, value := splitGood(t, s)
		tier, ok := idx[name]
		require.True(t, ok, "unknown art object %q", name)

		lo, hi := bounds(artTiers[tier-1].value)
		assert.GreaterOrEqual(t, value, lo, "%s tier %d", name, tier)
		assert.LessOrEqual(t, value, hi, "%s tier %d", name, tier)
	}
}

func TestGoodsFallbackOnMiss(t *testing.T) {
	fsys := fstest.MapFS{}
	for n := 1; n <= len(gemTiers); n++ {
		fsys[fmt.Sprintf("dmg/gems_tier%d.yaml", n)] = &fstest.MapFile{Data: []byte(`name: Sparse Gems
source: Test
roll_die: d10
entries:
  - {min_roll: 11, max_roll: 20, name: Unreachable, value: 0}
`)}
	}
	g := NewGenerator(chart.NewStore(fsys), dice.New(3))

	for i := 0; i < 20; i++ {
		s, err := g.Gem()
		require.NoError(t, err)
		assert.Equal(t, UnknownGem, s)
	}
}

func TestMissingChartIsFatal(t *testing.T) {
	ctx := context.Background()
	failures := 0
	for seed := int64(0); seed < 40; seed++ {
		g := NewGenerator(chart.NewStore(fstest.MapFS{}), dice.New(seed))
		_, err := g.Goods(ctx, 20, Standard, 1)
		if err == nil {
			continue
		}
		failures++
		var nf *chart.NotFoundError
		assert.True(t, errors.As(err, &nf), "seed %d: want NotFoundError, got %v", seed, err)
	}
	assert.Positive(t, failures)
}

func TestMagicItemsAreResolved(t *testing.T) {
	known := map[string]bool{}
	for k := range categories {
		known[k] = true
	}

	for _, p := range []Power{Minor, Medium, Major} {
		g, _ := newGenerator(int64(p) + 100)
		for i := 0; i < 300; i++ {
			item, err := g.MagicItem(p)
			require.NoError(t, err)

			assert.NotEmpty(t, item.Name)
			assert.NotContains(t, item.Name, "{", "unresolved keyword in %q", item.Name)
			assert.NotContains(t, item.Name, "<", "missed keyword in %q", item.Name)
			assert.True(t, known[item.ItemType], "unexpected type %q", item.ItemType)
			assert.Positive(t, item.Value, "%q", item.Name)
			if p == Minor {
				assert.NotEqual(t, TypeRod, item.ItemType)
				assert.NotEqual(t, TypeStaff, item.ItemType)
			}
		}
	}
}

func TestMundaneItemsAtLowLevel(t *testing.T) {
	ctx := context.Background()
	sawMundane := false
	for seed := int64(0); seed < 200 && !sawMundane; seed++ {
		g, _ := newGenerator(seed)
		items, err := g.Items(ctx, 1, Standard, 1)
		require.NoError(t, err)
		for _, it := range items {
			if it == MundaneItem {
				sawMundane = true
			}
		}
	}
	assert.True(t, sawMundane, "no mundane item in 200 level 1 hoards")
}

func TestChartName(t *testing.T) {
	assert.Equal(t, "dmg/potions_minor", ChartName(TypePotion, Minor))
	assert.Equal(t, "dmg/staffs_major", ChartName(TypeStaff, Major))
	assert.Equal(t, "dmg/weapons_medium", ChartName(TypeWeapon, Medium))
	assert.Equal(t, "", ChartName(TypeScroll, Minor))
	assert.Equal(t, "", ChartName("spoon", Minor))
}
