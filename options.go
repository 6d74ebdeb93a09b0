package specdoc

import (
	"github.com/rs/zerolog"

	"github.com/vocabgen/specdoc/overrides"
	"github.com/vocabgen/specdoc/render"
)

// Option is a functional option for configuring a Generator.
type Option func(*genConfig)

type genConfig struct {
	width     Width
	workers   int
	templates *render.Templates
	overrides *overrides.Table
	logger    zerolog.Logger
}

func defaultGenConfig() *genConfig {
	return &genConfig{
		width:     Width64, // the last legacy deployment ran the 64-bit build
		workers:   1,
		templates: render.Defaults(),
		logger:    zerolog.Nop(),
	}
}

// WithWidth selects which historical build of the legacy runtime the
// emulator reproduces. Invalid widths are rejected by NewGenerator.
func WithWidth(w Width) Option {
	return func(c *genConfig) {
		c.width = w
	}
}

// WithWorkers sets the number of classes rendered in parallel.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(c *genConfig) {
		c.workers = n
	}
}

// WithTemplates overrides the built-in legacy page fragments.
func WithTemplates(t *render.Templates) Option {
	return func(c *genConfig) {
		c.templates = t
	}
}

// WithOverrides installs a hand-curated reordering table. Lists with an
// entry in the table bypass the hash-order emulator.
func WithOverrides(t *overrides.Table) Option {
	return func(c *genConfig) {
		c.overrides = t
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *genConfig) {
		c.logger = l
	}
}
