package blit

import "image/color"

// PixelArray is the capability the supersampling kernel samples from:
// 2D-sized, linearly indexed pixel storage supplied by the caller.
//
// Get must be defined for every i < Len(); the kernel never calls it outside
// that range (out-of-bounds sample coordinates are rejected before indexing).
// Implementations whose Get is safe for concurrent readers may be shared
// across goroutines; the kernel itself keeps no state between calls.
//
// BytesPerPixel and HasAlpha are static descriptors of the storage format.
// The kernels currently assume 4-byte RGBA, but the descriptors let callers
// route other formats before they reach the pack layer.
type PixelArray interface {
	// Get returns the pixel at row-major linear index i.
	Get(i int) color.RGBA
	// Width returns the image width in pixels.
	Width() int
	// Height returns the image height in pixels.
	Height() int
	// Len returns Width() * Height().
	Len() int
	// BytesPerPixel returns the pixel stride in bytes (4 for RGBA).
	BytesPerPixel() int
	// HasAlpha reports whether the pixel format carries an alpha channel.
	HasAlpha() bool
}
