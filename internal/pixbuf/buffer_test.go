package pixbuf

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNew(t *testing.T) {
	pix := make([]byte, 3*2*4)
	buf, err := New(3, 2, pix)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if buf.Width() != 3 || buf.Height() != 2 {
		t.Errorf("dimensions: got %dx%d, want 3x2", buf.Width(), buf.Height())
	}
	if buf.Stride() != 12 {
		t.Errorf("Stride: got %d, want 12", buf.Stride())
	}
}

func TestNew_InvalidShape(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		size          int
	}{
		{"too short", 2, 2, 15},
		{"too long", 2, 2, 17},
		{"missing alpha", 2, 2, 12},
		{"negative width", -1, 2, 0},
		{"negative height", 2, -1, 0},
		{"empty with size", 0, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.width, tt.height, make([]byte, tt.size))
			if !errors.Is(err, ErrInvalidBufferShape) {
				t.Errorf("New(%d, %d, [%d]): got %v, want ErrInvalidBufferShape",
					tt.width, tt.height, tt.size, err)
			}
		})
	}
}

func TestNewBlank_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 3}} {
		if _, err := NewBlank(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewBlank(%d, %d): got %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestAt(t *testing.T) {
	pix := []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	buf, err := New(2, 2, pix)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		x, y int
		want RGBA
	}{
		{0, 0, RGBA{1, 2, 3, 4}},
		{1, 0, RGBA{5, 6, 7, 8}},
		{0, 1, RGBA{9, 10, 11, 12}},
		{1, 1, RGBA{13, 14, 15, 16}},
	}
	for _, tt := range tests {
		got, err := buf.At(tt.x, tt.y)
		if err != nil {
			t.Fatalf("At(%d,%d) failed: %v", tt.x, tt.y, err)
		}
		if got != tt.want {
			t.Errorf("At(%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAt_OutOfBounds(t *testing.T) {
	buf, _ := NewBlank(10, 10)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 5},
		{"negative y", 5, -1},
		{"x too large", 10, 5},
		{"y too large", 5, 10},
		{"both too large", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buf.At(tt.x, tt.y); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("At(%d,%d): got %v, want ErrOutOfBounds", tt.x, tt.y, err)
			}
			if _, err := buf.Offset(tt.x, tt.y); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Offset(%d,%d): got %v, want ErrOutOfBounds", tt.x, tt.y, err)
			}
		})
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	img.Set(10, 20, color.RGBA{255, 0, 0, 255})
	img.Set(12, 21, color.RGBA{0, 0, 255, 255})

	buf := FromImage(img)
	if buf.Width() != 3 || buf.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 3x2", buf.Width(), buf.Height())
	}
	if len(buf.Pix()) != 3*2*4 {
		t.Errorf("len(Pix): got %d, want 24", len(buf.Pix()))
	}

	first, _ := buf.At(0, 0)
	if first != (RGBA{255, 0, 0, 255}) {
		t.Errorf("At(0,0): got %v, want red", first)
	}
	last, _ := buf.At(2, 1)
	if last != (RGBA{0, 0, 255, 255}) {
		t.Errorf("At(2,1): got %v, want blue", last)
	}
}

func TestFromImage_Gray16(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetGray16(x, y, color.Gray16{Y: 0x8080})
		}
	}

	buf := FromImage(img)
	p, _ := buf.At(3, 3)
	if p != (RGBA{0x80, 0x80, 0x80, 0xff}) {
		t.Errorf("At(3,3): got %v, want opaque 0x80 gray", p)
	}
}

func TestNRGBA_SharesPixels(t *testing.T) {
	buf, _ := Fill(4, 3, color.NRGBA{10, 20, 30, 40})
	img := buf.NRGBA()

	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds: got %v", img.Bounds())
	}
	c := img.NRGBAAt(3, 2)
	if c != (color.NRGBA{10, 20, 30, 40}) {
		t.Errorf("NRGBAAt(3,2): got %v", c)
	}
}

func TestClone(t *testing.T) {
	buf, _ := Fill(2, 2, color.NRGBA{1, 2, 3, 255})
	clone := buf.Clone()

	if !buf.Equal(clone) {
		t.Fatal("clone should equal original")
	}
	clone.pix[0] = 99
	if buf.pix[0] == 99 {
		t.Error("modifying clone changed the original")
	}
	if buf.Equal(clone) {
		t.Error("Equal should detect a changed byte")
	}
}

func TestEqual_DifferentDimensions(t *testing.T) {
	a, _ := NewBlank(2, 3)
	b, _ := NewBlank(3, 2)
	if a.Equal(b) {
		t.Error("2x3 and 3x2 buffers should not be equal")
	}
}

func TestHasTransparency(t *testing.T) {
	opaque, _ := Fill(3, 3, color.NRGBA{0, 0, 0, 255})
	if opaque.HasTransparency() {
		t.Error("opaque buffer reported transparency")
	}

	translucent, _ := Fill(3, 3, color.NRGBA{0, 0, 0, 128})
	if !translucent.HasTransparency() {
		t.Error("translucent buffer did not report transparency")
	}
}
