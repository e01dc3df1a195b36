// Package wide provides the SIMD-friendly lane type backing the pixel pack.
//
// The package implements U16x32, a fixed array of 32 uint16 lanes holding
// eight RGBA pixels in pixel-major order (lane 4*p+c is channel c of pixel p).
// By using fixed-size arrays and simple loops, the type allows the compiler
// to generate SIMD instructions on supported architectures (SSE, AVX, NEON).
//
// # Lane discipline
//
// A lane semantically holds a channel value in [0, 255]. The extra byte of
// width is scratch for blend arithmetic: the intermediate product
// channel * alpha reaches 255*255 = 65025, which still fits a uint16, and the
// blend sum channel*alpha + channel*(255-alpha) is bounded by the same value.
// Every public operation returns lanes back in [0, 255].
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - Provide benchmarks to verify SIMD performance gains
package wide
