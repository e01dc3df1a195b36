// Package blit provides SIMD-friendly alpha compositing and supersampled
// anti-aliasing (SSAA) for 32-bit RGBA pixel data.
//
// # Overview
//
// blit is a small, embeddable pixel-processing core. It performs two
// operations: compositing a pack of source pixels over a destination in
// place (Blend8), and averaging many subpixel samples from a source image
// into output pixels (Ssaa8). Both operate on fixed packs of eight pixels -
// one 32-byte block - a width that maps onto common SIMD register sizes
// while staying correct in a plain scalar loop.
//
// Everything around the kernels is the caller's business: row iteration,
// destination allocation, color management and encoding stay outside. The
// kernels only consume caller-provided byte slices and a PixelArray source.
// The scale sub-package and the Pixmap type cover the common case where a
// whole image should be downscaled.
//
// # Quick Start
//
//	import blit "github.com/NathanRoyer/simd-blit"
//
//	// Composite eight RGBA pixels over a destination row, alpha in byte 3:
//	src := blit.NewEightPixels(spriteRow[:32])
//	blit.Blend8(src, dstRow[:32], blit.AlphaFourthByte)
//
//	// Average a 2x2 subpixel grid into eight output pixels:
//	coords := blit.NewSsaaCoords(4)
//	for j := 0; j < 8; j++ {
//	    for s := 0; s < 4; s++ {
//	        coords.Set(j, s, baseX+j*2+s%2, baseY+s/2)
//	    }
//	}
//	pack := blit.Ssaa8(coords, source)
//	pack.Write(dstRow[:32])
//
// # Architecture
//
// The library is organized into:
//   - Public API: EightPixels, AlphaConfig, Blend8, SsaaCoords, Ssaa8, Pixmap
//   - Internal: wide (fixed-array lane math written for auto-vectorization)
//   - scale: whole-image SSAA downscaling on top of the kernels
//
// # Scalar and vector paths
//
// The default build computes on internal/wide's fixed-size lane arrays,
// which the compiler can auto-vectorize. Building with the blit_scalar tag
// swaps in plain per-lane loops. The two paths produce bit-identical output
// on every defined input; there is no runtime switch.
//
// # Performance
//
// The kernels allocate nothing, use integer arithmetic only, and bound all
// intermediate values to 16 bits per lane. Division by 255 uses Alvy Ray
// Smith's exact shift formula. SsaaCoords tables are allocated once and
// reused across packs.
package blit
