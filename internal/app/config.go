package app

import "github.com/samdwyer/dndtreasure/internal/ui"

// Config holds application options.
type Config struct {
	// Seed for random number generation. Used for reproducible hoards.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// ChartsDir overrides the embedded charts when set.
	ChartsDir string

	Format ui.Format
}
