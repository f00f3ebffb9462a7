package resample

import (
	"fmt"

	"github.com/ironsheep/pixel-tools-mcp/internal/pixbuf"
)

// Target is a requested output size. Zero fields are unset.
type Target struct {
	Width         int  `json:"width"`
	Height        int  `json:"height"`
	WidthPercent  int  `json:"width_percent"`
	HeightPercent int  `json:"height_percent"`
	KeepAspect    bool `json:"keep_aspect"`
}

// Size resolves the target for a source of width×height.
//
// Percentages take precedence over pixel sizes. A missing axis keeps its
// source size (or 100%) unless KeepAspect is set, in which case it follows
// the other axis.
func (t Target) Size(width, height int) (int, int, error) {
	if t.WidthPercent != 0 || t.HeightPercent != 0 {
		pw, ph := t.WidthPercent, t.HeightPercent
		if pw == 0 {
			pw = 100
			if t.KeepAspect {
				pw = ph
			}
		}
		if ph == 0 {
			ph = 100
			if t.KeepAspect {
				ph = pw
			}
		}
		return PercentDimensions(width, height, pw, ph)
	}

	if t.Width == 0 && t.Height == 0 {
		return 0, 0, fmt.Errorf("%w: width, height or a percentage is required", pixbuf.ErrInvalidDimensions)
	}

	nw, nh := t.Width, t.Height
	if nw == 0 {
		nw = width
		if t.KeepAspect {
			nw = KeepAspectFromHeight(width, height, nh)
		}
	}
	if nh == 0 {
		nh = height
		if t.KeepAspect {
			nh = KeepAspectFromWidth(width, height, nw)
		}
	}
	return nw, nh, nil
}

// ResizeTo resizes src to the resolved target size.
func ResizeTo(src *pixbuf.Buffer, t Target) (*pixbuf.Buffer, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", pixbuf.ErrInvalidBufferShape)
	}
	w, h, err := t.Size(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	return Resize(src, w, h)
}
