//go:build !blit_scalar

package blit

// Vectorizable kernel path. The lane math runs on internal/wide's fixed-size
// array type, written so the compiler can emit SIMD instructions. The scalar
// path in kernel_scalar.go (build tag blit_scalar) computes the same results
// bit for bit; reference_test.go checks both against a straight-line model.

// blendLanes composites src over dst with alpha taken from the given byte
// offset of each pixel. All lanes of the result are in [0, 255].
func blendLanes(src, dst *EightPixels, channel int) EightPixels {
	srcA := src.lanes.AlphaSplat(channel)
	dstA := srcA.Inv()
	out := src.lanes.Mul(srcA).Add(dst.lanes.Mul(dstA)).Div255()
	return EightPixels{lanes: out}
}

// ssaaDivide divides each accumulator slot by its per-pixel divisor.
func ssaaDivide(acc *EightPixels, div [PackPixels]uint16) {
	acc.lanes = acc.lanes.DivPixel(div)
}
