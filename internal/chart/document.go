package chart

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk YAML shape of a chart.
type Document struct {
	Name    string          `yaml:"name"`
	Source  string          `yaml:"source"`
	Page    int             `yaml:"page,omitempty"`
	Table   string          `yaml:"table,omitempty"`
	RollDie string          `yaml:"roll_die,omitempty"`
	Entries []EntryDocument `yaml:"entries"`
}

// EntryDocument is the on-disk YAML shape of a chart entry. Required fields
// are pointers so a missing key can be told apart from a zero value.
type EntryDocument struct {
	MinRoll   *int              `yaml:"min_roll"`
	MaxRoll   *int              `yaml:"max_roll"`
	Name      *string           `yaml:"name"`
	Value     *int              `yaml:"value"`
	Flag      int               `yaml:"flag,omitempty"`
	Variables map[string]string `yaml:"variables,omitempty"`
}

// Parse decodes a YAML chart document. path is only used in errors.
func Parse(path string, data []byte) (*Chart, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &FormatError{Path: path, Reason: "invalid yaml", Err: err}
	}
	return doc.Chart(path)
}

// Chart validates the document and converts it into a Chart.
func (d Document) Chart(path string) (*Chart, error) {
	if d.Name == "" {
		return nil, &FormatError{Path: path, Reason: "missing name"}
	}
	if d.Source == "" {
		return nil, &FormatError{Path: path, Reason: "missing source"}
	}
	if len(d.Entries) == 0 {
		return nil, &FormatError{Path: path, Reason: "missing entries"}
	}

	entries := make([]Entry, 0, len(d.Entries))
	for i, e := range d.Entries {
		switch {
		case e.MinRoll == nil:
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("entry %d: missing min_roll", i)}
		case e.MaxRoll == nil:
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("entry %d: missing max_roll", i)}
		case e.Name == nil:
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("entry %d: missing name", i)}
		case e.Value == nil:
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("entry %d: missing value", i)}
		case *e.MinRoll > *e.MaxRoll:
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("entry %d: min_roll %d > max_roll %d", i, *e.MinRoll, *e.MaxRoll)}
		}
		entries = append(entries, Entry{
			MinRoll:   *e.MinRoll,
			MaxRoll:   *e.MaxRoll,
			Name:      *e.Name,
			Value:     *e.Value,
			Flag:      e.Flag,
			Variables: e.Variables,
		})
	}

	rollDie := d.RollDie
	if rollDie == "" {
		rollDie = DefaultDie
	}

	return &Chart{
		Name:    d.Name,
		Source:  d.Source,
		Entries: entries,
		Page:    d.Page,
		Table:   d.Table,
		RollDie: rollDie,
	}, nil
}

// Encode renders a chart as a YAML document.
func Encode(c *Chart) ([]byte, error) {
	doc := Document{
		Name:    c.Name,
		Source:  c.Source,
		Page:    c.Page,
		Table:   c.Table,
		RollDie: c.RollDie,
		Entries: make([]EntryDocument, 0, len(c.Entries)),
	}
	for _, e := range c.Entries {
		e := e
		doc.Entries = append(doc.Entries, EntryDocument{
			MinRoll:   &e.MinRoll,
			MaxRoll:   &e.MaxRoll,
			Name:      &e.Name,
			Value:     &e.Value,
			Flag:      e.Flag,
			Variables: e.Variables,
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode chart %q: %w", c.Name, err)
	}
	return out, nil
}
