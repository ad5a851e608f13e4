// Package main converts legacy pipe-delimited chart files into chart YAML.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samdwyer/dndtreasure/internal/chart"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	fs := flag.NewFlagSet("chartconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var in, out string
	fs.StringVar(&in, "in", "", "directory of legacy .txt charts")
	fs.StringVar(&out, "out", "", "directory to write .yaml charts to")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if in == "" || out == "" {
		fmt.Fprintln(stderr, "error: -in and -out are required")
		return 2
	}

	n, err := convertDir(in, out)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Converted %d charts\n", n)
	return 0
}

// convertDir converts every *.txt file in in, writing one YAML file per chart
// into out. It stops at the first malformed chart.
func convertDir(in, out string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(in, "*.txt"))
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", in, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", out, err)
	}

	for _, p := range paths {
		dst, err := convertFile(p, out)
		if err != nil {
			return 0, err
		}
		slog.Info("chart converted", "from", p, "to", dst)
	}
	return len(paths), nil
}

func convertFile(src, outDir string) (string, error) {
	f, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()

	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	c, err := chart.ParseLegacy(f, "DMG "+base)
	if err != nil {
		return "", err
	}

	raw, err := chart.Encode(c)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(outDir, snakeName(base)+chart.Extension)
	if err := os.WriteFile(dst, raw, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", dst, err)
	}
	return dst, nil
}

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// snakeName turns "Minor Potions" or "minor-potions" into "minor_potions".
func snakeName(s string) string {
	return strings.Trim(nonWord.ReplaceAllString(strings.ToLower(s), "_"), "_")
}
