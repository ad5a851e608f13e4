// Package main is the entry point for dndtreasure.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dndtreasure/internal/app"
	"github.com/samdwyer/dndtreasure/internal/config"
	"github.com/samdwyer/dndtreasure/internal/telemetry"
	"github.com/samdwyer/dndtreasure/internal/treasure"
	"github.com/samdwyer/dndtreasure/internal/ui"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// A missing .env file is normal; variables may be set directly.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	if envErr != nil {
		slog.Debug(".env file not loaded", "error", envErr)
	}

	fs := flag.NewFlagSet("dndtreasure", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		level  int
		output string
		format string
		seed   int64
		coins  = treasure.Standard
		goods  = treasure.Standard
		items  = treasure.Standard
	)
	fs.IntVar(&level, "level", 0, "encounter level (1-20)")
	fs.IntVar(&level, "l", 0, "shorthand for -level")
	fs.TextVar(&coins, "coins", coins, "coin treasure type (none, standard, double, triple, half, ten-percent)")
	fs.TextVar(&goods, "goods", goods, "goods treasure type")
	fs.TextVar(&items, "items", items, "items treasure type")
	fs.Int64Var(&seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.StringVar(&output, "output", "", "write the hoard to this file instead of stdout")
	fs.StringVar(&output, "o", "", "shorthand for -output")
	fs.StringVar(&format, "format", cfg.Format, "output format (text, yaml)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := treasure.ValidateLevel(level); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	f, err := ui.ParseFormat(format)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			slog.Warn("telemetry setup failed, continuing without traces", "error", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					slog.Warn("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	a, err := app.New(app.Config{Seed: seed, ChartsDir: cfg.ChartsDir, Format: f})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	slog.Info("seed", "value", a.Seed())

	out, err := ui.NewOutput(output, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	req := app.Request{Level: level, Coins: coins, Goods: goods, Items: items}
	_, runErr := a.Run(ctx, req, out)
	closeErr := out.Close()
	if err := errors.Join(runErr, closeErr); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if out.IsFile() {
		fmt.Fprintf(stdout, "Treasure written to %s\n", out.Path())
	}
	return 0
}

// setupOTelEnv fills OTEL exporter variables from the Honeycomb settings
// when they are not already set.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_DNDTREASURE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DNDTREASURE_DATASET")
	if dataset == "" {
		dataset = "dndtreasure"
	}
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
