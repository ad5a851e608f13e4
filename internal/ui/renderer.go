package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/dndtreasure/internal/treasure"
)

// Format names a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format with no renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a name to a Format, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Renderer writes a hoard to w.
type Renderer interface {
	Render(w io.Writer, t treasure.Treasure) error
}

// NewRenderer returns the renderer for f.
func NewRenderer(f Format) (Renderer, error) {
	switch f {
	case FormatText, "":
		return TextRenderer{}, nil
	case FormatYAML:
		return YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// TextRenderer writes a header line and one labeled section per category.
type TextRenderer struct{}

func (TextRenderer) Render(w io.Writer, t treasure.Treasure) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "=== Treasure Hoard (Level %d) ===\n", t.Level)
	section(bw, "COINS", t.Coins)
	section(bw, "GOODS", t.Goods)

	items := make([]string, len(t.Items))
	for i, it := range t.Items {
		items[i] = it.Display()
	}
	section(bw, "ITEMS", items)

	return bw.Flush()
}

func section(w io.Writer, label string, lines []string) {
	fmt.Fprintf(w, "\n%s:\n", label)
	for _, l := range lines {
		fmt.Fprintf(w, "  %s\n", l)
	}
}

// YAMLRenderer writes the hoard as a YAML document.
type YAMLRenderer struct{}

type hoardDocument struct {
	Level int            `yaml:"level"`
	Coins []string       `yaml:"coins"`
	Goods []string       `yaml:"goods"`
	Items []itemDocument `yaml:"items"`
}

type itemDocument struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
	Type  string `yaml:"type"`
}

func (YAMLRenderer) Render(w io.Writer, t treasure.Treasure) error {
	doc := hoardDocument{
		Level: t.Level,
		Coins: t.Coins,
		Goods: t.Goods,
		Items: make([]itemDocument, len(t.Items)),
	}
	for i, it := range t.Items {
		doc.Items[i] = itemDocument{Name: it.Name, Value: it.Value, Type: it.ItemType}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode hoard: %w", err)
	}
	return enc.Close()
}
