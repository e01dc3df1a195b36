package scale

import (
	"runtime"

	blit "github.com/NathanRoyer/simd-blit"
)

// Option configures a downscale operation.
// Use functional options to customize behavior.
//
// Example:
//
//	// Default: sequential, uniform divisor, fresh destination
//	out, err := scale.Downscale(src, 3)
//
//	// Parallel rows, averaging by in-bounds sample count
//	out, err := scale.Downscale(src, 3,
//	    scale.WithWorkers(0),
//	    scale.WithCountedDivisor())
type Option func(*config)

// config holds optional configuration for a downscale operation.
type config struct {
	workers int
	counted bool
	dst     *blit.Pixmap
	alpha   blit.AlphaConfig
}

// defaultConfig returns the default downscale options.
func defaultConfig() config {
	return config{
		workers: 1,
		counted: false,
		dst:     nil, // a fresh pixmap is allocated if nil
		alpha:   blit.AlphaNone,
	}
}

// WithWorkers sets the number of goroutines processing output rows.
// n = 1 (the default) runs sequentially on the calling goroutine;
// n = 0 uses GOMAXPROCS. Output is identical for every worker count.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		c.workers = n
	}
}

// WithCountedDivisor averages each output pixel over the samples that
// actually landed in bounds instead of the uniform subpixel count.
// This removes the edge-darkening artifact of the default mode at some
// throughput cost. See blit.Ssaa8Counted.
func WithCountedDivisor() Option {
	return func(c *config) {
		c.counted = true
	}
}

// WithDestination writes into dst instead of allocating a fresh pixmap.
// dst dimensions must match the output size or the operation fails.
// Combine with WithBlend to composite over dst's existing content.
func WithDestination(dst *blit.Pixmap) Option {
	return func(c *config) {
		c.dst = dst
	}
}

// WithBlend composites the downscaled packs over the destination using the
// given alpha position instead of overwriting it. Only useful together with
// WithDestination; over a fresh (all-zero) pixmap, blending multiplies the
// source by its own alpha.
func WithBlend(cfg blit.AlphaConfig) Option {
	return func(c *config) {
		c.alpha = cfg
	}
}
