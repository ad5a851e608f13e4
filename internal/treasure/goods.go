package treasure

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// Fallbacks used when a tier chart roll matches no entry.
const (
	UnknownGem = "Unknown Gem (10 gp)"
	UnknownArt = "Unknown Art Object (50 gp)"
)

// Goods rolls gems and art objects. Each good is "<name> (<value> gp)".
func (g *Generator) Goods(ctx context.Context, level int, t Type, percentage float64) ([]string, error) {
	if err := ValidateLevel(level); err != nil {
		return nil, err
	}

	_, span := g.tracer.Start(ctx, "treasure.goods")
	defer span.End()
	span.SetAttributes(attribute.String("treasure.type", t.String()))

	out, err := runPasses(t, percentage, func(pct float64) ([]string, error) {
		return g.goodsPass(level, pct)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if len(out) == 0 {
		return []string{NoGoods}, nil
	}
	return out, nil
}

func (g *Generator) goodsPass(level int, pct float64) ([]string, error) {
	if !g.gate(pct) {
		return nil, nil
	}

	b, ok := find(goodsTable[level-1], g.roller.D100())
	if !ok || b.outcome == goodsNone {
		return nil, nil
	}

	n := b.count.Roll(g.roller)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var (
			s   string
			err error
		)
		if b.outcome == goodsGem {
			s, err = g.Gem()
		} else {
			s, err = g.Art()
		}
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Gem rolls a value tier, a gem from that tier's chart, then its value.
func (g *Generator) Gem() (string, error) {
	return g.good("gems", gemTiers, 100, UnknownGem)
}

// Art rolls a value tier, an art object from that tier's chart, then its value.
func (g *Generator) Art() (string, error) {
	return g.good("art", artTiers, 10, UnknownArt)
}

func (g *Generator) good(family string, tiers []tier, fallbackDie int, fallback string) (string, error) {
	n, t := tierFor(tiers, g.roller.D100())
	name := fmt.Sprintf("dmg/%s_tier%d", family, n)

	c, err := g.charts.LoadByName(name)
	if err != nil {
		return "", fmt.Errorf("roll %s: %w", family, err)
	}

	entry, roll, ok := c.Roll(g.roller, fallbackDie)
	if !ok {
		slog.Warn("chart roll missed", "chart", name, "roll", roll)
		return fallback, nil
	}
	return fmt.Sprintf("%s (%d gp)", entry.Name, t.value.Roll(g.roller)), nil
}
