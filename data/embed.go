// Package data provides the embedded treasure charts.
package data

import (
	"embed"
	"io/fs"
)

// chartFS embeds every chart document under charts/ at build time.
//
//go:embed charts
var chartFS embed.FS

// Charts returns the embedded chart tree rooted so that "dmg/potions_minor.yaml"
// resolves directly.
func Charts() fs.FS {
	sub, err := fs.Sub(chartFS, "charts")
	if err != nil {
		panic(err)
	}
	return sub
}
