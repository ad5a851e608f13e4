package treasure

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
)

// Coins rolls the coin portion of a hoard. Each pass yields at most one
// "<amount> <denomination>" string; the amount is scaled by percentage and
// truncated.
func (g *Generator) Coins(ctx context.Context, level int, t Type, percentage float64) ([]string, error) {
	if err := ValidateLevel(level); err != nil {
		return nil, err
	}

	_, span := g.tracer.Start(ctx, "treasure.coins")
	defer span.End()
	span.SetAttributes(attribute.String("treasure.type", t.String()))

	out, err := runPasses(t, percentage, func(pct float64) ([]string, error) {
		return g.coinPass(level, pct), nil
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return []string{NoCoins}, nil
	}
	return out, nil
}

func (g *Generator) coinPass(level int, pct float64) []string {
	b, ok := find(coinTable[level-1], g.roller.D100())
	if !ok || b.outcome == "" {
		return nil
	}
	amount := int(float64(b.count.Roll(g.roller)) * pct)
	if amount <= 0 {
		return nil
	}
	return []string{fmt.Sprintf("%d %s", amount, b.outcome)}
}
