package treasure

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// Placeholders for items that are not drawn from a chart.
var (
	MundaneItem = Item{Name: "Masterwork item", Value: 300, ItemType: TypeMundane}
	ScrollItem  = Item{Name: "Scroll (spell)", Value: 25, ItemType: TypeScroll}
)

// category describes where items of one type come from.
type category struct {
	family   string // chart family, e.g. "potions" for dmg/potions_minor
	fallback Item   // returned when a chart roll misses, or always when family is empty
}

var categories = map[string]category{
	TypeArmor:    {"armor", Item{Name: "Magic Armor", Value: 1000, ItemType: TypeArmor}},
	TypeWeapon:   {"weapons", Item{Name: "Magic Weapon", Value: 2000, ItemType: TypeWeapon}},
	TypePotion:   {"potions", Item{Name: "Potion (unknown)", Value: 50, ItemType: TypePotion}},
	TypeRing:     {"rings", Item{Name: "Ring (unknown)", Value: 1000, ItemType: TypeRing}},
	TypeRod:      {"rods", Item{Name: "Rod (unknown)", Value: 5000, ItemType: TypeRod}},
	TypeScroll:   {"", ScrollItem},
	TypeStaff:    {"staffs", Item{Name: "Staff (unknown)", Value: 10000, ItemType: TypeStaff}},
	TypeWand:     {"wands", Item{Name: "Wand (unknown)", Value: 750, ItemType: TypeWand}},
	TypeWondrous: {"wondrous", Item{Name: "Wondrous Item (unknown)", Value: 1000, ItemType: TypeWondrous}},
}

// ChartName returns the chart backing items of type itemType at power p, or
// "" when that type is not chart-backed.
func ChartName(itemType string, p Power) string {
	c, ok := categories[itemType]
	if !ok || c.family == "" {
		return ""
	}
	return fmt.Sprintf("dmg/%s_%s", c.family, p)
}

// Items rolls the item portion of a hoard.
func (g *Generator) Items(ctx context.Context, level int, t Type, percentage float64) ([]Item, error) {
	if err := ValidateLevel(level); err != nil {
		return nil, err
	}

	_, span := g.tracer.Start(ctx, "treasure.items")
	defer span.End()
	span.SetAttributes(attribute.String("treasure.type", t.String()))

	out, err := runPasses(t, percentage, func(pct float64) ([]Item, error) {
		return g.itemPass(level, pct)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if len(out) == 0 {
		return []Item{NoItems}, nil
	}
	return out, nil
}

func (g *Generator) itemPass(level int, pct float64) ([]Item, error) {
	if !g.gate(pct) {
		return nil, nil
	}

	b, ok := find(itemTable[level-1], g.roller.D100())
	if !ok || b.outcome == gradeNone {
		return nil, nil
	}

	n := b.count.Roll(g.roller)
	out := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		if b.outcome == gradeMundane {
			out = append(out, MundaneItem)
			continue
		}
		item, err := g.MagicItem(b.outcome.power())
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// MagicItem rolls a category for power p, then an entry from that category's
// chart, then expands any keywords in its name.
func (g *Generator) MagicItem(p Power) (Item, error) {
	b, ok := find(categoryTable[p], g.roller.D100())
	if !ok {
		return Item{}, fmt.Errorf("no item category for power %s", p)
	}
	cat := categories[b.outcome]

	name := ChartName(b.outcome, p)
	if name == "" {
		return cat.fallback, nil
	}

	c, err := g.charts.LoadByName(name)
	if err != nil {
		return Item{}, fmt.Errorf("roll %s item: %w", b.outcome, err)
	}

	entry, roll, ok := c.Roll(g.roller, 100)
	if !ok {
		slog.Warn("chart roll missed", "chart", name, "roll", roll)
		return cat.fallback, nil
	}

	resolved, err := g.keywords.ReplaceVars(entry.Name, entry.Variables)
	if err != nil {
		return Item{}, fmt.Errorf("roll %s item: %w", b.outcome, err)
	}

	return Item{
		Name:     resolved,
		Value:    entry.Value,
		ItemType: b.outcome,
		Flag:     entry.Flag,
	}, nil
}
