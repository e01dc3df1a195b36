// Package scale downscales whole images through the blit kernels.
//
// The package is the iteration layer the core deliberately leaves out: it
// walks output rows in packs of eight pixels, fills a subpixel coordinate
// table for each pack, gathers with blit.Ssaa8 and writes the result with
// blit.Blend8. Rows are independent, so they can be processed by a worker
// pool; the output is byte-identical for every worker count.
package scale

import (
	"errors"
	"fmt"

	"github.com/gammazero/workerpool"
	"golang.org/x/image/math/fixed"

	blit "github.com/NathanRoyer/simd-blit"
)

// Downscale errors.
var (
	// ErrNilSource is returned when the source is nil.
	ErrNilSource = errors.New("scale: nil source")

	// ErrBadFactor is returned when the scale factor is out of range.
	ErrBadFactor = errors.New("scale: factor out of range")

	// ErrBadSize is returned when the requested output size is invalid.
	ErrBadSize = errors.New("scale: output size out of range")

	// ErrDestinationSize is returned when a provided destination pixmap
	// does not match the output dimensions.
	ErrDestinationSize = errors.New("scale: destination size mismatch")
)

// Downscale shrinks src by an integer factor, averaging factor x factor
// source pixels into each output pixel. The output is
// ceil(width/factor) x ceil(height/factor): no source pixel is dropped, and
// output pixels on ragged right/bottom edges sample past the source bounds.
// In the default uniform-divisor mode those edge pixels darken accordingly;
// use WithCountedDivisor to average them over their in-bounds samples only.
//
// factor must be at least 1 and factor*factor must not exceed
// blit.MaxSubpixels (so factor <= 16).
func Downscale(src blit.PixelArray, factor int, opts ...Option) (*blit.Pixmap, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if factor < 1 || factor*factor > blit.MaxSubpixels {
		return nil, fmt.Errorf("%w: %d", ErrBadFactor, factor)
	}

	outW := (src.Width() + factor - 1) / factor
	outH := (src.Height() + factor - 1) / factor

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dst, err := cfg.destination(outW, outH)
	if err != nil {
		return nil, err
	}

	blit.Logger().Debug("scale: integer downscale",
		"src_width", src.Width(), "src_height", src.Height(),
		"factor", factor, "out_width", outW, "out_height", outH,
		"workers", cfg.workers, "counted", cfg.counted)

	g := &grid{
		src:    src,
		dst:    dst,
		k:      factor * factor,
		coordX: func(ox, sub int) int { return ox*factor + sub%factor },
		coordY: func(oy, sub int) int { return oy*factor + sub/factor },
	}
	g.run(cfg)
	return dst, nil
}

// DownscaleTo shrinks src to an arbitrary smaller size, sampling a
// subgrid x subgrid pattern per output pixel at fractional source positions.
// Sample positions are computed in 52.12 fixed point; the kernels themselves
// stay integer-only. subgrid must be in [1, 16] and the output must not be
// larger than the source on either axis.
func DownscaleTo(src blit.PixelArray, outW, outH, subgrid int, opts ...Option) (*blit.Pixmap, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if subgrid < 1 || subgrid*subgrid > blit.MaxSubpixels {
		return nil, fmt.Errorf("%w: subgrid %d", ErrBadFactor, subgrid)
	}
	if outW < 1 || outH < 1 || outW > src.Width() || outH > src.Height() {
		return nil, fmt.Errorf("%w: %dx%d from %dx%d", ErrBadSize, outW, outH, src.Width(), src.Height())
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dst, err := cfg.destination(outW, outH)
	if err != nil {
		return nil, err
	}

	blit.Logger().Debug("scale: fractional downscale",
		"src_width", src.Width(), "src_height", src.Height(),
		"out_width", outW, "out_height", outH, "subgrid", subgrid,
		"workers", cfg.workers, "counted", cfg.counted)

	// Precompute the source coordinate of every subpixel column and row.
	// Subpixel i of the output axis samples the source at
	// (i + 0.5) * srcExtent / (outExtent * subgrid), truncated.
	xs := samplePositions(src.Width(), outW, subgrid)
	ys := samplePositions(src.Height(), outH, subgrid)

	g := &grid{
		src:    src,
		dst:    dst,
		k:      subgrid * subgrid,
		coordX: func(ox, sub int) int { return xs[ox*subgrid+sub%subgrid] },
		coordY: func(oy, sub int) int { return ys[oy*subgrid+sub/subgrid] },
	}
	g.run(cfg)
	return dst, nil
}

// samplePositions maps out*subgrid subpixel indices to source coordinates
// along one axis, at subpixel centers, using 52.12 fixed-point arithmetic.
func samplePositions(srcExtent, outExtent, subgrid int) []int {
	n := outExtent * subgrid
	step := fixed.Int52_12((int64(srcExtent) << 12) / int64(n))
	positions := make([]int, n)
	for i := range positions {
		center := fixed.Int52_12(int64(2*i+1) << 11) // i + 0.5
		positions[i] = int(center.Mul(step) >> 12)
	}
	return positions
}

// destination returns the pixmap to write into, validating a caller-provided
// one against the output dimensions.
func (c *config) destination(outW, outH int) (*blit.Pixmap, error) {
	if c.dst == nil {
		return blit.NewPixmap(outW, outH), nil
	}
	if c.dst.Width() != outW || c.dst.Height() != outH {
		return nil, fmt.Errorf("%w: have %dx%d, want %dx%d",
			ErrDestinationSize, c.dst.Width(), c.dst.Height(), outW, outH)
	}
	return c.dst, nil
}

// grid drives the kernels over all output rows. coordX/coordY map an output
// position and subpixel index to source coordinates; out-of-bounds results
// are fine, the gather kernel skips them.
type grid struct {
	src    blit.PixelArray
	dst    *blit.Pixmap
	k      int
	coordX func(ox, sub int) int
	coordY func(oy, sub int) int
}

// run processes every output row, sequentially or on a worker pool.
func (g *grid) run(cfg config) {
	if cfg.workers <= 1 || g.dst.Height() <= 1 {
		coords := blit.NewSsaaCoords(g.k)
		for oy := 0; oy < g.dst.Height(); oy++ {
			g.row(coords, oy, cfg)
		}
		return
	}

	wp := workerpool.New(cfg.workers)
	// One task per worker, each owning a coords table and a stripe of rows.
	// Rows never alias in the destination, so no synchronization is needed
	// beyond the pool's completion barrier.
	for w := 0; w < cfg.workers; w++ {
		w := w
		wp.Submit(func() {
			coords := blit.NewSsaaCoords(g.k)
			for oy := w; oy < g.dst.Height(); oy += cfg.workers {
				g.row(coords, oy, cfg)
			}
		})
	}
	wp.StopWait()
}

// row fills one output row, eight pixels at a time.
func (g *grid) row(coords *blit.SsaaCoords, oy int, cfg config) {
	rowBytes := g.dst.Row(oy)
	outW := g.dst.Width()

	for ox := 0; ox < outW; ox += blit.PackPixels {
		live := outW - ox
		if live > blit.PackPixels {
			live = blit.PackPixels
		}

		coords.Reset()
		for j := 0; j < live; j++ {
			for s := 0; s < g.k; s++ {
				coords.Set(j, s, g.coordX(ox+j, s), g.coordY(oy, s))
			}
		}

		var pack blit.EightPixels
		if cfg.counted {
			pack = blit.Ssaa8Counted(coords, g.src)
		} else {
			pack = blit.Ssaa8(coords, g.src)
		}

		blit.Blend8(pack, rowBytes[ox*4:(ox+live)*4], cfg.alpha)
	}
}
