package chart

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyEnergy = `// DMG Page 225
// Table 7-13:Energy Types

5
1|20|Acid|0
21|40|Cold|0
41|60|Electricity|0
61|80|Fire|0
81|100|Sonic|0|1
`

func TestParseLegacy(t *testing.T) {
	c, err := ParseLegacy(strings.NewReader(legacyEnergy), "DMG Energy Types")
	require.NoError(t, err)

	assert.Equal(t, "DMG Energy Types", c.Name)
	assert.Equal(t, "DMG", c.Source)
	assert.Equal(t, 225, c.Page)
	assert.Equal(t, "7-13", c.Table)
	assert.Equal(t, DefaultDie, c.RollDie)
	require.Len(t, c.Entries, 5)
	assert.Equal(t, Entry{MinRoll: 81, MaxRoll: 100, Name: "Sonic", Value: 0, Flag: 1}, c.Entries[4])
	assert.NoError(t, c.Validate(1, 100))
}

func TestParseLegacyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", "// only a comment\n"},
		{"bad count", "five\n1|100|A|0\n"},
		{"short", "3\n1|50|A|0\n"},
		{"few fields", "1\n1|100|A\n"},
		{"bad min", "1\nx|100|A|0\n"},
		{"bad flag", "1\n1|100|A|0|z\n"},
		{"inverted", "1\n50|1|A|0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLegacy(strings.NewReader(tt.in), tt.name)
			var fe *FormatError
			assert.True(t, errors.As(err, &fe), "want FormatError, got %v", err)
		})
	}
}
