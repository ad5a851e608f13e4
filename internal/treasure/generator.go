package treasure

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dndtreasure/internal/dice"
	"github.com/samdwyer/dndtreasure/internal/keyword"
	"github.com/samdwyer/dndtreasure/internal/telemetry"
)

// Generator produces hoards from one roller and one chart source.
//
// A Generator is not safe for concurrent use: every roll it makes, including
// keyword rolls, comes from the same roller so that a seeded run replays.
type Generator struct {
	charts   keyword.Loader
	roller   *dice.Roller
	keywords *keyword.Resolver
	tracer   trace.Tracer
}

// NewGenerator creates a generator reading charts from charts.
func NewGenerator(charts keyword.Loader, roller *dice.Roller) *Generator {
	return &Generator{
		charts:   charts,
		roller:   roller,
		keywords: keyword.New(charts, roller),
		tracer:   telemetry.Tracer("treasure"),
	}
}

// Keywords returns the resolver used for item names.
func (g *Generator) Keywords() *keyword.Resolver {
	return g.keywords
}

// Generate builds a full hoard for level. Coins are rolled first, then goods,
// then items; changing that order changes seeded output.
func (g *Generator) Generate(ctx context.Context, level int, coins, goods, items Type) (Treasure, error) {
	if err := ValidateLevel(level); err != nil {
		return Treasure{}, err
	}

	ctx, span := g.tracer.Start(ctx, "treasure.generate")
	defer span.End()
	span.SetAttributes(
		attribute.Int("treasure.level", level),
		attribute.String("treasure.coins_type", coins.String()),
		attribute.String("treasure.goods_type", goods.String()),
		attribute.String("treasure.items_type", items.String()),
	)

	c, err := g.Coins(ctx, level, coins, 1)
	if err != nil {
		return Treasure{}, err
	}
	gd, err := g.Goods(ctx, level, goods, 1)
	if err != nil {
		return Treasure{}, err
	}
	it, err := g.Items(ctx, level, items, 1)
	if err != nil {
		return Treasure{}, err
	}

	t := Treasure{Level: level, Coins: c, Goods: gd, Items: it}

	span.SetAttributes(
		attribute.Int("treasure.coins", len(t.Coins)),
		attribute.Int("treasure.goods", len(t.Goods)),
		attribute.Int("treasure.items", len(t.Items)),
		attribute.Bool("treasure.empty", t.IsEmpty()),
	)
	slog.Info("treasure generated",
		"level", level,
		"coins", len(t.Coins),
		"goods", len(t.Goods),
		"items", len(t.Items),
		"rolls", g.roller.Rolls(),
	)
	return t, nil
}

// runPasses runs pass once per pass of t and concatenates the results in
// pass order. The percentage handed to each pass is scaled by t's fraction.
func runPasses[T any](t Type, percentage float64, pass func(pct float64) ([]T, error)) ([]T, error) {
	var out []T
	pct := percentage * t.Fraction()
	for i := 0; i < t.Passes(); i++ {
		got, err := pass(pct)
		if err != nil {
			return nil, err
		}
		out = append(out, got...)
	}
	return out, nil
}

// gate draws the percentage check for one pass. It reports false when the
// pass yields nothing.
func (g *Generator) gate(pct float64) bool {
	return g.roller.Fraction() <= pct
}
