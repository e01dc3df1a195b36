package blit

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("blit: unsupported image format")
)

// LoadPNG loads a PNG image from the given file path into a pixmap.
func LoadPNG(path string) (*Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("blit: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodePNG(f)
}

// DecodePNG decodes a PNG image from the reader into a pixmap.
func DecodePNG(r io.Reader) (*Pixmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("blit: decode png: %w", err)
	}
	return FromImage(img), nil
}

// LoadJPEG loads a JPEG image from the given file path into a pixmap.
func LoadJPEG(path string) (*Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("blit: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := jpeg.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("blit: decode jpeg: %w", err)
	}
	return FromImage(img), nil
}

// LoadImage loads an image from the given file path, choosing the decoder
// from the file extension. Supported formats: PNG, JPEG.
func LoadImage(path string) (*Pixmap, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return LoadPNG(path)
	case ".jpg", ".jpeg":
		return LoadJPEG(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("blit: create file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, p.ToImage()); err != nil {
		return fmt.Errorf("blit: encode png: %w", err)
	}
	return nil
}

// EncodePNG encodes the pixmap as PNG to the writer.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("blit: encode png: %w", err)
	}
	return nil
}

// ensure Pixmap keeps satisfying the capability the kernels consume.
var _ PixelArray = (*Pixmap)(nil)
var _ image.Image = (*Pixmap)(nil)
