package blit

import (
	"bytes"
	"testing"
)

// repeatPixel builds a pack-sized byte slice repeating one 4-byte pixel.
func repeatPixel(px [4]byte) []byte {
	out := make([]byte, PackBytes)
	for i := range out {
		out[i] = px[i%4]
	}
	return out
}

func TestBlend8_StraightCopy(t *testing.T) {
	src := NewEightPixels(repeatPixel([4]byte{10, 20, 30, 40}))
	dst := make([]byte, PackBytes)

	Blend8(src, dst, AlphaNone)

	want := repeatPixel([4]byte{10, 20, 30, 40})
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestBlend8_HalfOverOpaque(t *testing.T) {
	// (200,100,50,128) over (0,0,0,255), alpha in byte 3.
	// Per channel: (c*128 + d*127) / 255.
	src := NewEightPixels(repeatPixel([4]byte{200, 100, 50, 128}))
	dst := repeatPixel([4]byte{0, 0, 0, 255})

	Blend8(src, dst, AlphaFourthByte)

	want := repeatPixel([4]byte{100, 50, 25, 191})
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestBlend8_AlphaInFirstByte(t *testing.T) {
	// (64,10,20,30) over (0,100,100,100), alpha in byte 0.
	src := NewEightPixels(repeatPixel([4]byte{64, 10, 20, 30}))
	dst := repeatPixel([4]byte{0, 100, 100, 100})

	Blend8(src, dst, AlphaFirstByte)

	want := repeatPixel([4]byte{16, 77, 80, 82})
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestBlend8_OpaqueSourceIdentity(t *testing.T) {
	srcBytes := repeatPixel([4]byte{200, 100, 50, 255})
	src := NewEightPixels(srcBytes)

	for _, cfg := range []AlphaConfig{AlphaFourthByte} {
		dst := repeatPixel([4]byte{1, 2, 3, 4})
		Blend8(src, dst, cfg)
		if !bytes.Equal(dst, srcBytes) {
			t.Errorf("cfg %v: dst = %v, want source bytes %v", cfg, dst, srcBytes)
		}
	}
}

func TestBlend8_TransparentSourcePreservesDst(t *testing.T) {
	src := NewEightPixels(repeatPixel([4]byte{200, 100, 50, 0}))

	dst := repeatPixel([4]byte{11, 22, 33, 44})
	want := append([]byte(nil), dst...)

	Blend8(src, dst, AlphaFourthByte)
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want unchanged %v", dst, want)
	}
}

func TestBlend8_TailPack(t *testing.T) {
	// Three live pixels: only the first 12 bytes may be written.
	src := NewEightPixels(repeatPixel([4]byte{200, 100, 50, 128}))
	full := repeatPixel([4]byte{0, 0, 0, 255})

	for _, cfg := range []AlphaConfig{AlphaNone, AlphaFirstByte, AlphaFourthByte} {
		t.Run(cfg.String(), func(t *testing.T) {
			backing := append([]byte(nil), full...)
			guard := append([]byte(nil), backing[12:]...)

			Blend8(src, backing[:12], cfg)

			wantFull := append([]byte(nil), full...)
			Blend8(src, wantFull, cfg)
			if !bytes.Equal(backing[:12], wantFull[:12]) {
				t.Errorf("first 12 bytes = %v, want %v", backing[:12], wantFull[:12])
			}
			if !bytes.Equal(backing[12:], guard) {
				t.Errorf("bytes past dst were touched: %v", backing[12:])
			}
		})
	}
}

func TestBlend8_AllAlphaPositions(t *testing.T) {
	// The same alpha value placed at each byte position must weigh the
	// whole pixel identically.
	for _, cfg := range []AlphaConfig{AlphaFirstByte, AlphaSecondByte, AlphaThirdByte, AlphaFourthByte} {
		t.Run(cfg.String(), func(t *testing.T) {
			px := [4]byte{10, 20, 30, 40}
			px[cfg.channel()] = 128

			src := NewEightPixels(repeatPixel(px))
			dst := repeatPixel([4]byte{100, 100, 100, 100})
			Blend8(src, dst, cfg)

			for c := 0; c < 4; c++ {
				want := byte((uint16(px[c])*128 + 100*127) / 255)
				if dst[c] != want {
					t.Errorf("channel %d = %d, want %d", c, dst[c], want)
				}
			}
		})
	}
}

func TestBlend8_LaneBound(t *testing.T) {
	// Whatever the inputs, output bytes reread as lanes stay in [0, 255]
	// and repeated blending remains stable.
	src := NewEightPixels(repeatPixel([4]byte{255, 255, 255, 255}))
	dst := repeatPixel([4]byte{255, 255, 255, 255})

	Blend8(src, dst, AlphaFourthByte)
	p := NewEightPixels(dst)
	for i, l := range p.lanes {
		if l > 255 {
			t.Fatalf("lane %d = %d, exceeds 255", i, l)
		}
	}
}

func TestBlend8_Deterministic(t *testing.T) {
	src := NewEightPixels(repeatPixel([4]byte{201, 99, 7, 133}))
	first := repeatPixel([4]byte{13, 54, 250, 77})
	second := append([]byte(nil), first...)

	Blend8(src, first, AlphaSecondByte)
	Blend8(src, second, AlphaSecondByte)
	if !bytes.Equal(first, second) {
		t.Errorf("repeated blend diverged: %v vs %v", first, second)
	}
}

func TestBlend8_DstTooLong(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for oversized destination")
		}
	}()
	Blend8(EightPixels{}, make([]byte, PackBytes+1), AlphaNone)
}
