// SPDX-License-Identifier: MIT
//
// options.go — internal configuration and deterministic defaults.
//
// builderConfig is the single source of truth for all generator knobs.
// newBuilderConfig applies options in order (later overrides earlier);
// a stochastic call without WithSeed/WithRand falls back to a
// time-seeded source, so WithSeed is required for reproducible fixtures.
package builder

import (
	"fmt"
	"math/rand"
	"time"
)

// Shared bounds and defaults.
const (
	// MinNodeCount and MaxNodeCount bound the generated node count; the
	// upper bound keeps the O(V²) matrix view cheap for renderers.
	MinNodeCount = 3
	MaxNodeCount = 20

	// MinEdgeCount and MaxEdgeCount bound the requested edge count.
	MinEdgeCount = 1
	MaxEdgeCount = 30

	// AttemptFactor scales the rejection-sampling budget: at most
	// AttemptFactor×m candidate draws per RandomDAG call.
	AttemptFactor = 10

	// defaultCanvasWidth and defaultCanvasHeight define the layout extent
	// for generated node positions.
	defaultCanvasWidth  = 800.0
	defaultCanvasHeight = 600.0
)

// Option mutates the builder configuration before generation.
type Option func(*builderConfig)

// builderConfig aggregates all knobs used by RandomDAG.
// It is resolved once per call; no global state.
type builderConfig struct {
	rng    *rand.Rand // nil until resolved; never nil during generation
	idFn   IDFn       // index → node ID
	width  float64    // canvas extent for X positions
	height float64    // canvas extent for Y positions
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order. The RNG fallback is resolved last so an
// explicit WithSeed/WithRand always wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:   LetterIDFn,
		width:  defaultCanvasWidth,
		height: defaultCanvasHeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithSeed pins the RNG to a deterministic seed; same seed and options
// always yield the same graph.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an external RNG. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand requires a non-nil *rand.Rand")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithIDScheme swaps the node ID scheme. Panics if fn is nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme requires a non-nil IDFn")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithCanvas sets the layout extent for generated positions.
// Panics unless both dimensions are positive.
func WithCanvas(width, height float64) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("builder: WithCanvas requires positive dimensions, got %gx%g", width, height))
	}

	return func(c *builderConfig) {
		c.width = width
		c.height = height
	}
}
