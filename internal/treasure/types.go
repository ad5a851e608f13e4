// Package treasure generates coin, goods and item hoards from the
// level-indexed treasure tables.
package treasure

import (
	"errors"
	"fmt"
	"strings"
)

// Level bounds accepted by Generate.
const (
	MinLevel = 1
	MaxLevel = 20
)

// Type is the generation multiplier for one category.
type Type int

const (
	None Type = iota
	Standard
	Double
	Triple
	Half
	TenPercent
)

// ErrUnknownType is returned by ParseType for an unrecognized name.
var ErrUnknownType = errors.New("unknown treasure type")

var typeNames = map[Type]string{
	None:       "none",
	Standard:   "standard",
	Double:     "double",
	Triple:     "triple",
	Half:       "half",
	TenPercent: "ten-percent",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Passes returns how many independent generation passes t runs.
func (t Type) Passes() int {
	switch t {
	case Standard, Half, TenPercent:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	default:
		return 0
	}
}

// Fraction returns the factor applied to each pass's percentage.
func (t Type) Fraction() float64 {
	switch t {
	case Half:
		return 0.5
	case TenPercent:
		return 0.1
	default:
		return 1
	}
}

// ParseType maps a name such as "double" or "ten-percent" to a Type.
// Matching ignores case and accepts underscores for hyphens.
func ParseType(s string) (Type, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for t, name := range typeNames {
		if name == norm {
			return t, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// MarshalText renders the Type's name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText lets a Type be read from flags and environment variables.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Power is the magic item tier. Minor < Medium < Major.
type Power int

const (
	Minor Power = iota
	Medium
	Major
)

func (p Power) String() string {
	switch p {
	case Minor:
		return "minor"
	case Medium:
		return "medium"
	case Major:
		return "major"
	default:
		return fmt.Sprintf("Power(%d)", int(p))
	}
}

// Item types carried by Item.ItemType.
const (
	TypeNone     = "none"
	TypeMundane  = "mundane"
	TypeArmor    = "armor"
	TypeWeapon   = "weapon"
	TypePotion   = "potion"
	TypeRing     = "ring"
	TypeRod      = "rod"
	TypeScroll   = "scroll"
	TypeStaff    = "staff"
	TypeWand     = "wand"
	TypeWondrous = "wondrous"
)

// Item is one generated item. Value is in gold pieces.
type Item struct {
	Name     string
	Value    int
	ItemType string
	Flag     int
}

// Display renders the item as "<name> (<value> gp)".
func (i Item) Display() string {
	return fmt.Sprintf("%s (%d gp)", i.Name, i.Value)
}

// IsNone reports whether i is the "nothing" sentinel.
func (i Item) IsNone() bool {
	return i == NoItems
}

// Sentinels returned when a category yields nothing.
const (
	NoCoins = "No Coins"
	NoGoods = "No Goods"
)

// NoItems is the item sentinel.
var NoItems = Item{Name: "No Items", Value: 0, ItemType: TypeNone}

// Treasure is one generated hoard.
type Treasure struct {
	Level int
	Coins []string
	Goods []string
	Items []Item
}

// IsEmpty reports whether every category holds only its sentinel.
func (t Treasure) IsEmpty() bool {
	for _, c := range t.Coins {
		if c != NoCoins {
			return false
		}
	}
	for _, g := range t.Goods {
		if g != NoGoods {
			return false
		}
	}
	for _, i := range t.Items {
		if !i.IsNone() {
			return false
		}
	}
	return true
}

// InvalidLevelError reports a level outside [MinLevel, MaxLevel].
type InvalidLevelError struct {
	Level int
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level %d: must be between %d and %d", e.Level, MinLevel, MaxLevel)
}

// ValidateLevel returns an *InvalidLevelError when level is out of range.
func ValidateLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return &InvalidLevelError{Level: level}
	}
	return nil
}
