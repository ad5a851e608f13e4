package treasure

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dndtreasure/data"
	"github.com/samdwyer/dndtreasure/internal/chart"
)

// covers checks that bands are contiguous over 1..100 in order.
func covers[T comparable](bands []band[T]) error {
	next := 1
	for _, b := range bands {
		if b.min != next {
			return fmt.Errorf("band %d-%d: want start %d", b.min, b.max, next)
		}
		if b.max < b.min {
			return fmt.Errorf("band %d-%d: inverted", b.min, b.max)
		}
		next = b.max + 1
	}
	if next != 101 {
		return fmt.Errorf("bands end at %d, want 100", next-1)
	}
	return nil
}

func TestLevelTablesCoverD100(t *testing.T) {
	for i := 0; i < MaxLevel; i++ {
		level := i + 1
		assert.NoError(t, covers(coinTable[i]), "coin table level %d", level)
		assert.NoError(t, covers(goodsTable[i]), "goods table level %d", level)
		assert.NoError(t, covers(itemTable[i]), "item table level %d", level)
	}
}

func TestLevelTablesNothingBandsRollNothing(t *testing.T) {
	for i := 0; i < MaxLevel; i++ {
		for _, b := range coinTable[i] {
			if b.outcome == "" {
				assert.Equal(t, zero, b.count, "level %d coin band %d-%d", i+1, b.min, b.max)
			} else {
				assert.Positive(t, b.count.Multiplier, "level %d coin band %d-%d", i+1, b.min, b.max)
			}
		}
		for _, b := range goodsTable[i] {
			assert.Equal(t, b.outcome == goodsNone, b.count == zero, "level %d goods band %d-%d", i+1, b.min, b.max)
		}
		for _, b := range itemTable[i] {
			assert.Equal(t, b.outcome == gradeNone, b.count == zero, "level %d item band %d-%d", i+1, b.min, b.max)
		}
	}
}

func TestCategoryTablesCoverD100(t *testing.T) {
	for _, p := range []Power{Minor, Medium, Major} {
		assert.NoError(t, covers(categoryTable[p]), "category table %s", p)
	}
}

func TestReachableCategoriesHaveCharts(t *testing.T) {
	store := chart.NewStore(data.Charts())

	for p, bands := range categoryTable {
		for _, b := range bands {
			_, ok := categories[b.outcome]
			require.True(t, ok, "category %q has no definition", b.outcome)

			name := ChartName(b.outcome, p)
			if name == "" {
				continue
			}
			_, err := store.LoadByName(name)
			assert.NoError(t, err, "%s %s", p, b.outcome)
		}
	}
}

func TestMinorTierHasNoRodsOrStaffs(t *testing.T) {
	for _, b := range categoryTable[Minor] {
		assert.NotEqual(t, TypeRod, b.outcome)
		assert.NotEqual(t, TypeStaff, b.outcome)
	}
}

func TestGoodsTierChartsExist(t *testing.T) {
	store := chart.NewStore(data.Charts())

	for i := range gemTiers {
		_, err := store.LoadByName(fmt.Sprintf("dmg/gems_tier%d", i+1))
		assert.NoError(t, err)
	}
	for i := range artTiers {
		_, err := store.LoadByName(fmt.Sprintf("dmg/art_tier%d", i+1))
		assert.NoError(t, err)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		tiers []tier
		roll  int
		want  int
	}{
		{gemTiers, 1, 1},
		{gemTiers, 25, 1},
		{gemTiers, 26, 2},
		{gemTiers, 99, 5},
		{gemTiers, 100, 6},
		{artTiers, 10, 1},
		{artTiers, 11, 2},
		{artTiers, 85, 8},
		{artTiers, 100, 12},
	}
	for _, tt := range tests {
		got, _ := tierFor(tt.tiers, tt.roll)
		if got != tt.want {
			t.Errorf("tierFor(%d) = %d, want %d", tt.roll, got, tt.want)
		}
	}
}

func TestGemTierFormulas(t *testing.T) {
	assert.Equal(t, "4d4", gemTiers[0].value.String())
	assert.Equal(t, "2d4×1000", gemTiers[5].value.String())
	assert.Equal(t, "2d6×1000", artTiers[11].value.String())
}
