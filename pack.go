package blit

import (
	"fmt"
	"image/color"

	"github.com/NathanRoyer/simd-blit/internal/wide"
)

const (
	// PackPixels is the number of pixels processed as a unit.
	PackPixels = 8

	// PackBytes is the byte width of one pack: eight 4-byte RGBA pixels.
	PackBytes = PackPixels * 4
)

// EightPixels is a pack of up to eight consecutive RGBA pixels, stored as
// 32 16-bit channel lanes in pixel-major order. The 16-bit lane width gives
// the blend and averaging kernels headroom for the intermediate product
// channel * alpha without overflow; between kernel calls every lane holds a
// value in [0, 255].
//
// A pack may represent fewer than eight live pixels at the tail of an image
// row: construction zero-fills the missing lanes and Write only touches the
// lanes the destination covers.
type EightPixels struct {
	lanes wide.U16x32
}

// NewEightPixels reads up to 8 pixels from a byte slice (4 bytes per pixel).
// Bytes beyond len(src) are zero-filled. Panics if len(src) > PackBytes;
// that is a programmer error, not a recoverable condition.
func NewEightPixels(src []byte) EightPixels {
	if len(src) > PackBytes {
		panic(fmt.Sprintf("blit: pack source is %d bytes, max %d", len(src), PackBytes))
	}
	var p EightPixels
	for i, b := range src {
		p.lanes[i] = uint16(b)
	}
	return p
}

// Write stores up to 8 pixels to a byte slice (4 bytes per pixel).
// Only the first len(dst) lanes are written, narrowed to their low byte.
// The kernels that produce packs guarantee every lane is <= 255, so the
// narrowing never loses information. Panics if len(dst) > PackBytes.
func (p EightPixels) Write(dst []byte) {
	if len(dst) > PackBytes {
		panic(fmt.Sprintf("blit: pack destination is %d bytes, max %d", len(dst), PackBytes))
	}
	for i := range dst {
		// Intentional narrowing - kernel output lanes are bounded by 255
		dst[i] = byte(p.lanes[i]) // #nosec G115
	}
}

// Pixel returns pixel i of the pack as a color.RGBA.
// The channel order is whatever the caller loaded; the "R, G, B, A" field
// names are positional only. i must be in [0, PackPixels).
func (p EightPixels) Pixel(i int) color.RGBA {
	if i < 0 || i >= PackPixels {
		panic(fmt.Sprintf("blit: pixel index %d out of range", i))
	}
	base := i * 4
	return color.RGBA{
		R: byte(p.lanes[base+0]), // #nosec G115
		G: byte(p.lanes[base+1]), // #nosec G115
		B: byte(p.lanes[base+2]), // #nosec G115
		A: byte(p.lanes[base+3]), // #nosec G115
	}
}

// AlphaConfig declares which byte of a 4-byte pixel carries alpha, or that
// no blending should happen at all. It is passed per kernel call, never
// stored, so the same pack code serves RGBA, BGRA, ARGB and friends.
type AlphaConfig uint8

const (
	// AlphaFirstByte blends with alpha in byte 0 (e.g. ARGB).
	AlphaFirstByte AlphaConfig = iota
	// AlphaSecondByte blends with alpha in byte 1.
	AlphaSecondByte
	// AlphaThirdByte blends with alpha in byte 2.
	AlphaThirdByte
	// AlphaFourthByte blends with alpha in byte 3 (e.g. RGBA, BGRA).
	AlphaFourthByte
	// AlphaNone copies the source pixels directly, no blending.
	AlphaNone
)

// String returns a human-readable name for the configuration.
func (c AlphaConfig) String() string {
	switch c {
	case AlphaFirstByte:
		return "AlphaFirstByte"
	case AlphaSecondByte:
		return "AlphaSecondByte"
	case AlphaThirdByte:
		return "AlphaThirdByte"
	case AlphaFourthByte:
		return "AlphaFourthByte"
	case AlphaNone:
		return "AlphaNone"
	default:
		return fmt.Sprintf("AlphaConfig(%d)", uint8(c))
	}
}

// channel returns the 0-based byte offset of the alpha channel.
// Only valid for the four byte-position configurations.
func (c AlphaConfig) channel() int {
	if c > AlphaFourthByte {
		panic("blit: AlphaNone has no alpha channel")
	}
	return int(c)
}
