package build

import "github.com/katalvlaran/meshgraph/geom"

// PositionFunc maps a node ordinal to its position in space.
type PositionFunc func(i int) geom.Vec

// originPositions is the default layout: every node at the origin.
func originPositions(int) geom.Vec { return geom.Vec{} }

// Option configures a constructor before it runs.
type Option func(*config)

// config is the resolved, immutable constructor configuration.
type config struct {
	position PositionFunc
}

// WithPositions assigns node positions by ordinal. A nil fn restores the
// default (every node at the origin).
func WithPositions(fn PositionFunc) Option {
	return func(c *config) {
		if fn == nil {
			fn = originPositions
		}
		c.position = fn
	}
}

// newConfig resolves options left to right over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{position: originPositions}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
