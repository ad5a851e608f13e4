// Package keyword expands placeholder tokens such as "{alignment}" in chart
// entry names by rolling on reference charts.
package keyword

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/samdwyer/dndtreasure/internal/chart"
	"github.com/samdwyer/dndtreasure/internal/dice"
)

// MaxDepth bounds how many times substituted text is re-scanned for tokens.
const MaxDepth = 3

var tokenPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Loader resolves a logical chart name. *chart.Store satisfies it.
type Loader interface {
	LoadByName(name string) (*chart.Chart, error)
}

// Keyword names the reference chart a token rolls on.
type Keyword struct {
	Chart string
	Die   int // Used when the chart declares no usable die; 0 means d100
}

// Defaults is the built-in token table.
var Defaults = map[string]Keyword{
	"alignment":     {Chart: "dmg/alignments", Die: 4},
	"energy":        {Chart: "dmg/energy"},
	"creature":      {Chart: "dmg/bane_creature_type"},
	"armor":         {Chart: "dmg/armor_types"},
	"shield":        {Chart: "dmg/shield_types"},
	"melee_weapon":  {Chart: "dmg/common_melee_weapons"},
	"ranged_weapon": {Chart: "dmg/ranged_weapons"},
}

// Resolver substitutes tokens using one shared roller.
type Resolver struct {
	loader   Loader
	roller   *dice.Roller
	keywords map[string]Keyword
}

// New creates a resolver with the default token table.
func New(loader Loader, roller *dice.Roller) *Resolver {
	keywords := make(map[string]Keyword, len(Defaults))
	for k, v := range Defaults {
		keywords[k] = v
	}
	return &Resolver{loader: loader, roller: roller, keywords: keywords}
}

// Register adds or replaces the chart a token rolls on.
func (r *Resolver) Register(token string, k Keyword) {
	r.keywords[token] = k
}

// Replace expands every recognized token in text. Unrecognized tokens are
// left verbatim. A roll that matches no chart entry is replaced by the token
// name in angle brackets. Only a missing or malformed reference chart is an
// error.
func (r *Resolver) Replace(text string) (string, error) {
	return r.ReplaceVars(text, nil)
}

// ReplaceVars is Replace with per-entry overrides mapping a token to the
// chart it should roll on.
func (r *Resolver) ReplaceVars(text string, vars map[string]string) (string, error) {
	out := text
	for depth := 0; depth < MaxDepth; depth++ {
		next, changed, err := r.replaceOnce(out, vars)
		if err != nil {
			return "", err
		}
		out = next
		if !changed {
			break
		}
	}
	return out, nil
}

// replaceOnce rolls once per distinct token, in order of first appearance.
func (r *Resolver) replaceOnce(text string, vars map[string]string) (string, bool, error) {
	matches := tokenPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text, false, nil
	}

	seen := make(map[string]bool, len(matches))
	changed := false
	for _, m := range matches {
		token := m[1]
		if seen[token] {
			continue
		}
		seen[token] = true

		k, ok := r.lookup(token, vars)
		if !ok {
			continue
		}

		c, err := r.loader.LoadByName(k.Chart)
		if err != nil {
			return "", false, fmt.Errorf("resolve {%s}: %w", token, err)
		}

		fallback := k.Die
		if fallback <= 0 {
			fallback = 100
		}
		sub := "<" + token + ">"
		entry, roll, found := c.Roll(r.roller, fallback)
		if found {
			sub = entry.Name
		} else {
			slog.Warn("keyword roll missed", "token", token, "chart", k.Chart, "roll", roll)
		}

		text = strings.ReplaceAll(text, m[0], sub)
		changed = true
	}
	return text, changed, nil
}

func (r *Resolver) lookup(token string, vars map[string]string) (Keyword, bool) {
	if name, ok := vars[token]; ok && name != "" {
		k := r.keywords[token]
		k.Chart = name
		return k, true
	}
	k, ok := r.keywords[token]
	return k, ok
}
