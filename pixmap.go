package blit

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Pixmap is a rectangular RGBA pixel buffer implementing PixelArray.
// It is the ready-made source/destination for the kernels; callers with
// their own storage only need to satisfy PixelArray instead.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// Panics if either dimension is negative.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 || height < 0 {
		panic("blit: negative pixmap dimensions")
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Len returns the number of pixels, Width() * Height().
func (p *Pixmap) Len() int {
	return p.width * p.height
}

// BytesPerPixel returns 4.
func (p *Pixmap) BytesPerPixel() int {
	return 4
}

// HasAlpha returns true: the fourth byte of each pixel is an alpha channel.
func (p *Pixmap) HasAlpha() bool {
	return true
}

// Get returns the pixel at row-major linear index i.
// i must be in [0, Len()); the kernels guarantee this for their own calls.
func (p *Pixmap) Get(i int) color.RGBA {
	base := i * 4
	return color.RGBA{
		R: p.data[base+0],
		G: p.data[base+1],
		B: p.data[base+2],
		A: p.data[base+3],
	}
}

// Data returns the raw pixel data (RGBA format, row-major).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Row returns the bytes of row y, 4 bytes per pixel.
// The slice aliases the pixmap's storage.
func (p *Pixmap) Row(y int) []uint8 {
	start := y * p.width * 4
	return p.data[start : start+p.width*4]
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel. Out-of-bounds coordinates
// return the zero color.
func (p *Pixmap) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	return p.Get(y*p.width + x)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.RGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// FromImage creates a pixmap from any image, converting through
// x/image/draw with the Src operator. Note that image.Image color values
// are alpha-premultiplied; the kernels are agnostic to that choice, but
// callers mixing FromImage data with straight-alpha data must convert at
// their own layer.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	dst := &image.RGBA{
		Pix:    pm.data,
		Stride: pm.width * 4,
		Rect:   image.Rect(0, 0, pm.width, pm.height),
	}
	xdraw.Draw(dst, dst.Rect, img, bounds.Min, xdraw.Src)
	return pm
}
