// Package app wires the chart store, generator and renderer together for
// one hoard request.
package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dndtreasure/data"
	"github.com/samdwyer/dndtreasure/internal/chart"
	"github.com/samdwyer/dndtreasure/internal/dice"
	"github.com/samdwyer/dndtreasure/internal/telemetry"
	"github.com/samdwyer/dndtreasure/internal/treasure"
	"github.com/samdwyer/dndtreasure/internal/ui"
)

// Request describes one hoard.
type Request struct {
	Level int
	Coins treasure.Type
	Goods treasure.Type
	Items treasure.Type
}

// App holds everything needed to generate and render hoards.
type App struct {
	store     *chart.Store
	generator *treasure.Generator
	renderer  ui.Renderer
	seed      int64
}

// New creates an app from cfg.
func New(cfg Config) (*App, error) {
	renderer, err := ui.NewRenderer(cfg.Format)
	if err != nil {
		return nil, err
	}

	fsys, err := chartFS(cfg.ChartsDir)
	if err != nil {
		return nil, err
	}
	store := chart.NewStore(fsys)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &App{
		store:     store,
		generator: treasure.NewGenerator(store, dice.New(seed)),
		renderer:  renderer,
		seed:      seed,
	}, nil
}

// chartFS returns the embedded charts, or dir when set.
func chartFS(dir string) (fs.FS, error) {
	if dir == "" {
		return data.Charts(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("charts dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("charts dir %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// Seed returns the seed in use, including one chosen at random.
func (a *App) Seed() int64 {
	return a.seed
}

// Generate builds one hoard.
func (a *App) Generate(ctx context.Context, req Request) (treasure.Treasure, error) {
	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "app.generate")
	defer span.End()
	span.SetAttributes(attribute.Int64("app.seed", a.seed))

	slog.Debug("generating hoard",
		"level", req.Level,
		"coins", req.Coins,
		"goods", req.Goods,
		"items", req.Items,
		"seed", a.seed,
	)

	t, err := a.generator.Generate(ctx, req.Level, req.Coins, req.Goods, req.Items)
	if err != nil {
		span.RecordError(err)
		return treasure.Treasure{}, err
	}
	span.SetAttributes(attribute.Int("app.charts_loaded", a.store.Len()))
	return t, nil
}

// Run generates one hoard and renders it to w.
func (a *App) Run(ctx context.Context, req Request, w io.Writer) (treasure.Treasure, error) {
	t, err := a.Generate(ctx, req)
	if err != nil {
		return treasure.Treasure{}, err
	}
	if err := a.renderer.Render(w, t); err != nil {
		return treasure.Treasure{}, fmt.Errorf("render hoard: %w", err)
	}
	return t, nil
}
