//go:build blit_scalar

package blit

import "github.com/NathanRoyer/simd-blit/internal/wide"

// Scalar kernel path, selected with the blit_scalar build tag. Plain per-lane
// loops with truncating division; bit-identical to the vector path in
// kernel_vector.go on all defined inputs.

// blendLanes composites src over dst with alpha taken from the given byte
// offset of each pixel. All lanes of the result are in [0, 255].
func blendLanes(src, dst *EightPixels, channel int) EightPixels {
	var out EightPixels
	for i := 0; i < wide.Lanes; i++ {
		a := src.lanes[(i&^3)+channel]
		out.lanes[i] = (src.lanes[i]*a + dst.lanes[i]*(255-a)) / 255
	}
	return out
}

// ssaaDivide divides each accumulator slot by its per-pixel divisor.
func ssaaDivide(acc *EightPixels, div [PackPixels]uint16) {
	for i := 0; i < wide.Lanes; i++ {
		acc.lanes[i] /= div[i/4]
	}
}
