// Package chart provides the weighted-range lookup tables that back every
// treasure roll, and the store that loads and caches them.
package chart

import (
	"fmt"
	"sort"

	"github.com/samdwyer/dndtreasure/internal/dice"
)

// DefaultDie is the die a chart is rolled with when its document declares none.
const DefaultDie = "d100"

// Entry is one roll range of a chart. Entries are immutable after load.
type Entry struct {
	MinRoll   int
	MaxRoll   int
	Name      string
	Value     int               // Price in gold pieces
	Flag      int               // Source-specific marker, 0 when unused
	Variables map[string]string // Optional keyword hints
}

// Matches reports whether roll falls within the entry's range.
func (e Entry) Matches(roll int) bool {
	return e.MinRoll <= roll && roll <= e.MaxRoll
}

// Chart is an ordered set of entries indexed by a die roll.
type Chart struct {
	Name    string
	Source  string
	Entries []Entry
	Page    int    // 0 when unknown
	Table   string // e.g. "7-17"
	RollDie string // e.g. "d100"
}

// FindEntry returns the first entry whose range contains roll, in declaration
// order. The boolean is false when no range matches.
func (c *Chart) FindEntry(roll int) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Matches(roll) {
			return e, true
		}
	}
	return Entry{}, false
}

// Sides returns the number of faces of the chart's die and whether the chart
// declares a usable one.
func (c *Chart) Sides() (int, bool) {
	if c.RollDie == "" {
		return 0, false
	}
	n, err := dice.ParseDie(c.RollDie)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Roll rolls the chart's die (or fallback when it declares none) and looks up
// the result. The roll is returned even on a miss so callers can report it.
func (c *Chart) Roll(r *dice.Roller, fallback int) (Entry, int, bool) {
	sides, ok := c.Sides()
	if !ok {
		sides = fallback
	}
	roll := r.Roll(sides, 1)
	entry, found := c.FindEntry(roll)
	return entry, roll, found
}

// Validate checks that entries do not overlap and together cover [lo, hi].
func (c *Chart) Validate(lo, hi int) error {
	if len(c.Entries) == 0 {
		return fmt.Errorf("chart %q: no entries", c.Name)
	}

	sorted := make([]Entry, len(c.Entries))
	copy(sorted, c.Entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinRoll < sorted[j].MinRoll })

	next := lo
	for _, e := range sorted {
		if e.MinRoll > e.MaxRoll {
			return fmt.Errorf("chart %q: entry %q has min %d > max %d", c.Name, e.Name, e.MinRoll, e.MaxRoll)
		}
		if e.MinRoll < next {
			return fmt.Errorf("chart %q: entry %q overlaps at %d", c.Name, e.Name, e.MinRoll)
		}
		if e.MinRoll > next {
			return fmt.Errorf("chart %q: gap %d-%d before %q", c.Name, next, e.MinRoll-1, e.Name)
		}
		next = e.MaxRoll + 1
	}
	if next <= hi {
		return fmt.Errorf("chart %q: gap %d-%d at end", c.Name, next, hi)
	}
	if next-1 > hi {
		return fmt.Errorf("chart %q: range ends at %d beyond %d", c.Name, next-1, hi)
	}
	return nil
}
