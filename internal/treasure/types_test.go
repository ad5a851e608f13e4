package treasure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"none", None},
		{"standard", Standard},
		{"DOUBLE", Double},
		{" triple ", Triple},
		{"half", Half},
		{"ten-percent", TenPercent},
		{"TEN_PERCENT", TenPercent},
	}
	for _, tt := range tests {
		got, err := ParseType(tt.in)
		require.NoError(t, err, "ParseType(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseType(%q)", tt.in)
	}

	_, err := ParseType("quadruple")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestTypeUnmarshalText(t *testing.T) {
	var typ Type
	require.NoError(t, typ.UnmarshalText([]byte("double")))
	assert.Equal(t, Double, typ)
	assert.Error(t, typ.UnmarshalText([]byte("lots")))
	assert.Equal(t, Double, typ)
}

func TestTypePassesAndFraction(t *testing.T) {
	tests := []struct {
		typ      Type
		passes   int
		fraction float64
	}{
		{None, 0, 1},
		{Standard, 1, 1},
		{Double, 2, 1},
		{Triple, 3, 1},
		{Half, 1, 0.5},
		{TenPercent, 1, 0.1},
	}
	for _, tt := range tests {
		if got := tt.typ.Passes(); got != tt.passes {
			t.Errorf("%v.Passes() = %d, want %d", tt.typ, got, tt.passes)
		}
		if got := tt.typ.Fraction(); got != tt.fraction {
			t.Errorf("%v.Fraction() = %v, want %v", tt.typ, got, tt.fraction)
		}
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "ten-percent", TenPercent.String())
	assert.Equal(t, "Type(42)", Type(42).String())
	assert.Equal(t, "medium", Medium.String())
}

func TestItemDisplay(t *testing.T) {
	item := Item{Name: "Potion of Cure Light Wounds", Value: 50, ItemType: TypePotion}
	assert.Equal(t, "Potion of Cure Light Wounds (50 gp)", item.Display())
	assert.Equal(t, "No Items (0 gp)", NoItems.Display())
}

func TestItemIsNone(t *testing.T) {
	assert.True(t, NoItems.IsNone())
	assert.True(t, Item{Name: "No Items", ItemType: TypeNone}.IsNone())
	assert.False(t, MundaneItem.IsNone())
}

func TestTreasureIsEmpty(t *testing.T) {
	empty := Treasure{Level: 3, Coins: []string{NoCoins}, Goods: []string{NoGoods}, Items: []Item{NoItems}}
	assert.True(t, empty.IsEmpty())

	withCoins := empty
	withCoins.Coins = []string{"120 gp"}
	assert.False(t, withCoins.IsEmpty())

	withItem := empty
	withItem.Items = []Item{ScrollItem}
	assert.False(t, withItem.IsEmpty())
}

func TestValidateLevel(t *testing.T) {
	for _, level := range []int{MinLevel, 10, MaxLevel} {
		assert.NoError(t, ValidateLevel(level), "level %d", level)
	}
	for _, level := range []int{-1, 0, 21, 100} {
		err := ValidateLevel(level)
		var ile *InvalidLevelError
		require.True(t, errors.As(err, &ile), "level %d: want InvalidLevelError, got %v", level, err)
		assert.Equal(t, level, ile.Level)
	}
}
