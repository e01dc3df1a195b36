package blit

import "fmt"

// Blend8 composites a source pack over up to eight destination pixels,
// in place, using standard source-over blending:
//
//	out = (src*alpha + dst*(255-alpha)) / 255
//
// The alpha value of each pixel is read from the byte position named by cfg
// and weighs all four of that pixel's channels, alpha itself included. The
// division truncates toward zero. With AlphaNone the destination bytes are
// overwritten with the source bytes, no arithmetic applied.
//
// dst may be shorter than a full pack (a row tail); only len(dst) bytes are
// read and written. Panics if len(dst) > PackBytes.
//
// The kernel does not allocate and performs integer arithmetic only.
func Blend8(src EightPixels, dst []byte, cfg AlphaConfig) {
	if len(dst) > PackBytes {
		panic(fmt.Sprintf("blit: blend destination is %d bytes, max %d", len(dst), PackBytes))
	}

	if cfg == AlphaNone {
		src.Write(dst)
		return
	}

	dstP := NewEightPixels(dst)
	blendLanes(&src, &dstP, cfg.channel()).Write(dst)
}
