// Package dice provides the seeded randomness source used by every treasure
// table.
package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDie indicates a die expression could not be parsed.
var ErrInvalidDie = errors.New("die must look like dN or XdN with N > 0")

// Roller produces uniform integers in [1, sides].
//
// A Roller is not safe for concurrent use. One Roller is threaded through a
// single hoard generation so that a seeded run replays the same stream.
type Roller struct {
	rng   *rand.Rand
	rolls int
}

// New creates a roller seeded with the given value.
func New(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// NewRandom creates a roller seeded from the wall clock.
func NewRandom() *Roller {
	return New(time.Now().UnixNano())
}

// Roll returns the sum of count independent draws from [1, sides].
// A count below one is treated as one.
func (r *Roller) Roll(sides, count int) int {
	if count < 1 {
		count = 1
	}
	total := 0
	for i := 0; i < count; i++ {
		total += r.rollDie(sides)
	}
	return total
}

// Fraction draws a uniform float in [0, 1). It counts as one draw.
func (r *Roller) Fraction() float64 {
	r.rolls++
	return r.rng.Float64()
}

// Rolls reports how many draws this roller has made.
func (r *Roller) Rolls() int {
	return r.rolls
}

func (r *Roller) D2() int   { return r.Roll(2, 1) }
func (r *Roller) D3() int   { return r.Roll(3, 1) }
func (r *Roller) D4() int   { return r.Roll(4, 1) }
func (r *Roller) D6() int   { return r.Roll(6, 1) }
func (r *Roller) D8() int   { return r.Roll(8, 1) }
func (r *Roller) D10() int  { return r.Roll(10, 1) }
func (r *Roller) D12() int  { return r.Roll(12, 1) }
func (r *Roller) D20() int  { return r.Roll(20, 1) }
func (r *Roller) D100() int { return r.Roll(100, 1) }

// rollDie rolls a die with the provided number of sides.
func (r *Roller) rollDie(sides int) int {
	r.rolls++
	if sides <= 1 {
		return 1
	}
	return r.rng.Intn(sides) + 1
}

// Dice is a table formula: Count dice of Sides faces, summed and multiplied.
// Sides == 0 means a fixed amount of Count that consumes no draw.
type Dice struct {
	Count      int
	Sides      int
	Multiplier int
}

// Fixed returns a formula that always yields n.
func Fixed(n int) Dice {
	return Dice{Count: n}
}

// Of returns the formula XdN.
func Of(count, sides int) Dice {
	return Dice{Count: count, Sides: sides}
}

// Times returns d with its result multiplied by m.
func (d Dice) Times(m int) Dice {
	d.Multiplier = m
	return d
}

// Roll evaluates the formula against r.
func (d Dice) Roll(r *Roller) int {
	total := d.Count
	if d.Sides > 0 {
		total = r.Roll(d.Sides, d.Count)
	}
	if d.Multiplier > 0 {
		total *= d.Multiplier
	}
	return total
}

// String renders the formula, e.g. "2d4×1000" or "1".
func (d Dice) String() string {
	var s string
	if d.Sides == 0 {
		s = strconv.Itoa(d.Count)
	} else {
		s = fmt.Sprintf("%dd%d", d.Count, d.Sides)
	}
	if d.Multiplier > 1 {
		s += "×" + strconv.Itoa(d.Multiplier)
	}
	return s
}

// ParseDie returns the number of sides in a die expression such as "d100" or
// "1d6". Expressions rolling more than one die are rejected because a chart
// is indexed by a single die.
func ParseDie(expr string) (int, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	count, sides, ok := strings.Cut(expr, "d")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDie, expr)
	}
	if count != "" && count != "1" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDie, expr)
	}
	n, err := strconv.Atoi(sides)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDie, expr)
	}
	return n, nil
}
