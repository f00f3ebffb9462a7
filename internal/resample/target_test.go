package resample

import (
	"errors"
	"testing"

	"github.com/ironsheep/pixel-tools-mcp/internal/pixbuf"
)

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		wantW   int
		wantH   int
		wantErr bool
	}{
		{"width keep aspect", Target{Width: 50, KeepAspect: true}, 50, 25, false},
		{"height keep aspect", Target{Height: 50, KeepAspect: true}, 100, 50, false},
		{"width only", Target{Width: 50}, 50, 100, false},
		{"both pixels", Target{Width: 30, Height: 40, KeepAspect: true}, 30, 40, false},
		{"width percent only", Target{WidthPercent: 50}, 100, 100, false},
		{"width percent keep aspect", Target{WidthPercent: 50, KeepAspect: true}, 100, 50, false},
		{"height percent keep aspect", Target{HeightPercent: 300, KeepAspect: true}, 600, 300, false},
		{"both percent", Target{WidthPercent: 10, HeightPercent: 20}, 20, 20, false},
		{"percent wins over pixels", Target{Width: 7, WidthPercent: 50, HeightPercent: 50}, 100, 50, false},
		{"tiny percent", Target{WidthPercent: 1, HeightPercent: 1}, 2, 1, false},
		{"nothing given", Target{}, 0, 0, true},
		{"negative percent", Target{WidthPercent: -5}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := tt.target.Size(200, 100)
			if tt.wantErr {
				if !errors.Is(err, pixbuf.ErrInvalidDimensions) {
					t.Errorf("expected ErrInvalidDimensions, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Size failed: %v", err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResizeTo(t *testing.T) {
	src, err := pixbuf.NewBlank(8, 4)
	if err != nil {
		t.Fatalf("NewBlank failed: %v", err)
	}

	dst, err := ResizeTo(src, Target{Width: 4, KeepAspect: true})
	if err != nil {
		t.Fatalf("ResizeTo failed: %v", err)
	}
	if dst.Width() != 4 || dst.Height() != 2 {
		t.Errorf("got %dx%d, want 4x2", dst.Width(), dst.Height())
	}

	if _, err := ResizeTo(nil, Target{Width: 4}); !errors.Is(err, pixbuf.ErrInvalidBufferShape) {
		t.Errorf("expected ErrInvalidBufferShape, got %v", err)
	}
	if _, err := ResizeTo(src, Target{Width: -1}); !errors.Is(err, pixbuf.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}
