package pixbuf

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Channels is the number of bytes per pixel.
const Channels = 4

// RGBA is a single pixel read from a Buffer.
type RGBA struct {
	R, G, B, A uint8
}

// Buffer is an RGBA pixel grid with channel-interleaved, row-major storage.
//
// The zero value is not usable; create buffers with New, NewBlank or FromImage.
type Buffer struct {
	width  int
	height int
	pix    []byte
}

// New wraps pix as a width×height buffer.
//
// The slice is used as-is, not copied. It must hold exactly width*height*4
// bytes, otherwise ErrInvalidBufferShape is returned.
func New(width, height int, pix []byte) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidBufferShape, width, height)
	}
	if want := width * height * Channels; len(pix) != want {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrInvalidBufferShape, width, height, want, len(pix))
	}
	return &Buffer{width: width, height: height, pix: pix}, nil
}

// NewBlank allocates a zeroed width×height buffer (transparent black).
func NewBlank(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*Channels),
	}, nil
}

// FromImage copies any decoded image into a new buffer.
//
// The image is normalized to non-premultiplied 8-bit RGBA, so 16-bit, paletted
// and YCbCr sources are all accepted. The result always starts at (0,0).
func FromImage(img image.Image) *Buffer {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return &Buffer{width: b.Dx(), height: b.Dy(), pix: nrgba.Pix}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Pix returns the backing slice. Callers must not modify it.
func (b *Buffer) Pix() []byte { return b.pix }

// Stride returns the number of bytes in one row.
func (b *Buffer) Stride() int { return b.width * Channels }

// InBounds reports whether (x, y) addresses a pixel.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Offset returns the index of the R byte of pixel (x, y).
func (b *Buffer) Offset(x, y int) (int, error) {
	if !b.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return (y*b.width + x) * Channels, nil
}

// At returns the pixel at (x, y).
func (b *Buffer) At(x, y int) (RGBA, error) {
	i, err := b.Offset(x, y)
	if err != nil {
		return RGBA{}, err
	}
	p := b.pix[i : i+Channels : i+Channels]
	return RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}, nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height || len(b.pix) != len(o.pix) {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// NRGBA exposes the buffer as an image for encoding or display.
//
// The returned image shares memory with the buffer.
func (b *Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.pix,
		Stride: b.Stride(),
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// HasTransparency reports whether any pixel has alpha below 255.
func (b *Buffer) HasTransparency() bool {
	for i := 3; i < len(b.pix); i += Channels {
		if b.pix[i] != 0xff {
			return true
		}
	}
	return false
}

// Fill returns a width×height buffer where every pixel is c.
func Fill(width, height int, c color.NRGBA) (*Buffer, error) {
	buf, err := NewBlank(width, height)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(buf.pix); i += Channels {
		buf.pix[i] = c.R
		buf.pix[i+1] = c.G
		buf.pix[i+2] = c.B
		buf.pix[i+3] = c.A
	}
	return buf, nil
}
