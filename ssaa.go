package blit

import (
	"fmt"
	"math"
)

// MaxSubpixels is the largest supported subpixel count per output pixel.
// The bound keeps the per-channel accumulator within uint16 range:
// 256 * 255 = 65280 <= 65535.
const MaxSubpixels = 256

// unsetCoord marks an SsaaCoords entry that was never filled by Set.
// No real image dimension reaches it, so unset entries always fail the
// bounds check during gathering and contribute nothing.
const unsetCoord = math.MaxInt

// SsaaCoords describes how to build eight output pixels from k subpixel
// samples each. For every subpixel index and pack slot it stores the output
// slot the sample contributes to and the source pixel coordinates to read.
//
// The zero value is not usable; create with NewSsaaCoords. The backing
// tables are allocated once at construction, so a coords value can be built
// outside the hot path and reused across packs with Reset. The gather kernel
// never mutates it.
type SsaaCoords struct {
	k    int
	srcO [][PackPixels]int
	srcX [][PackPixels]int
	srcY [][PackPixels]int
}

// NewSsaaCoords creates a coordinate table for k subpixel samples per output
// pixel, with every entry unset. Panics unless 1 <= k <= MaxSubpixels.
func NewSsaaCoords(k int) *SsaaCoords {
	if k < 1 || k > MaxSubpixels {
		panic(fmt.Sprintf("blit: subpixel count %d outside [1, %d]", k, MaxSubpixels))
	}
	c := &SsaaCoords{
		k:    k,
		srcO: make([][PackPixels]int, k),
		srcX: make([][PackPixels]int, k),
		srcY: make([][PackPixels]int, k),
	}
	c.Reset()
	return c
}

// K returns the subpixel count per output pixel.
func (c *SsaaCoords) K() int { return c.k }

// Reset marks every entry unset so the table can be refilled for the next
// pack. Slots that are never Set after a Reset contribute nothing to the
// gather.
func (c *SsaaCoords) Reset() {
	for i := 0; i < c.k; i++ {
		for j := 0; j < PackPixels; j++ {
			c.srcO[i][j] = unsetCoord
			c.srcX[i][j] = unsetCoord
			c.srcY[i][j] = unsetCoord
		}
	}
}

// Set records that subpixel subPixel of output slot pixel samples source
// coordinate (x, y). No range check is applied to x and y here; out-of-range
// coordinates are rejected at gather time and count as empty samples.
// Panics unless 0 <= pixel < PackPixels and 0 <= subPixel < K().
func (c *SsaaCoords) Set(pixel, subPixel, x, y int) {
	if pixel < 0 || pixel >= PackPixels {
		panic(fmt.Sprintf("blit: pack slot %d out of range", pixel))
	}
	if subPixel < 0 || subPixel >= c.k {
		panic(fmt.Sprintf("blit: subpixel %d out of range [0, %d)", subPixel, c.k))
	}
	c.srcO[subPixel][pixel] = pixel
	c.srcX[subPixel][pixel] = x
	c.srcY[subPixel][pixel] = y
}

// Ssaa8 gathers and averages subpixel samples into a pack of up to eight
// output pixels. For each usable entry of coords - one whose coordinates
// satisfy 0 <= x < width, 0 <= y < height and y*width+x < len - the source
// pixel is widened to 16-bit channels and added into its output slot. Each
// slot is then divided by K, uniformly.
//
// The uniform divisor means out-of-bounds samples contribute zero to the sum
// while still being counted, so output pixels at image edges fade toward
// black/transparent. That is the fast mode and the accepted artifact; see
// Ssaa8Counted for per-slot averaging.
//
// Accumulation order is (subpixel, slot) lexicographic, but addition cannot
// overflow within the MaxSubpixels bound, so any reordering is equivalent.
// The kernel does not allocate and never indexes src out of range.
func Ssaa8(coords *SsaaCoords, src PixelArray) EightPixels {
	return ssaa8(coords, src, false)
}

// Ssaa8Counted is Ssaa8 with the alternative averaging mode: each output
// slot is divided by the number of samples that actually landed in bounds
// (minimum 1) instead of the uniform subpixel count. This avoids edge
// darkening but is slower and can surface seam artifacts with some
// coordinate generators, so it is a separate entry point rather than the
// default.
func Ssaa8Counted(coords *SsaaCoords, src PixelArray) EightPixels {
	return ssaa8(coords, src, true)
}

func ssaa8(coords *SsaaCoords, src PixelArray, counted bool) EightPixels {
	srcW := src.Width()
	srcH := src.Height()
	srcL := src.Len()

	var acc EightPixels
	var samples [PackPixels]uint16

	for i := 0; i < coords.k; i++ {
		for j := 0; j < PackPixels; j++ {
			x := coords.srcX[i][j]
			y := coords.srcY[i][j]
			if x < 0 || x >= srcW || y < 0 || y >= srcH {
				continue
			}
			idx := y*srcW + x
			if idx >= srcL {
				// Inconsistent geometry; treat like any other miss.
				continue
			}

			o := coords.srcO[i][j]
			px := src.Get(idx)
			base := o * 4
			acc.lanes[base+0] += uint16(px.R)
			acc.lanes[base+1] += uint16(px.G)
			acc.lanes[base+2] += uint16(px.B)
			acc.lanes[base+3] += uint16(px.A)
			samples[o]++
		}
	}

	var div [PackPixels]uint16
	if counted {
		for o := range div {
			if samples[o] == 0 {
				div[o] = 1
			} else {
				div[o] = samples[o]
			}
		}
	} else {
		// Intentional narrowing - k is bounded by MaxSubpixels
		k := uint16(coords.k) // #nosec G115
		for o := range div {
			div[o] = k
		}
	}

	ssaaDivide(&acc, div)
	return acc
}
