// Package convolve applies 3×3 convolution kernels to pixel buffers.
//
// The source is first extended by one pixel on every side using edge
// replication, so border pixels are filtered with the same 9-tap sum as
// interior ones. Only RGB is filtered; output alpha is always 255.
//
// Presets carry their own normalization divisor (16 for the Gaussian blur,
// 9 for the box blur, 1 otherwise). Custom kernels use divisor 1. The divisor
// is never derived from the weights.
package convolve

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/pixel-tools-mcp/internal/pixbuf"
)

// Apply convolves src with k and returns a new buffer of the same size.
//
// For every output pixel (x, y):
//
//	R_out = Σ R_padded(x+1+kx, y+1+ky) * k.Weight(ky+1, kx+1),  kx, ky ∈ {-1, 0, 1}
//
// and likewise for G and B. Sums are rounded to the nearest integer and then
// clamped to [0, 255]. Alpha is set to 255 regardless of the source.
//
// # Errors
//
//   - ErrInvalidBufferShape if src is nil
//   - ErrInvalidDimensions if src has no pixels
//   - ErrInvalidKernel if the kernel divisor is zero
func Apply(src *pixbuf.Buffer, k Kernel) (*pixbuf.Buffer, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", pixbuf.ErrInvalidBufferShape)
	}
	if src.Width() == 0 || src.Height() == 0 {
		return nil, fmt.Errorf("%w: empty source %dx%d", pixbuf.ErrInvalidDimensions, src.Width(), src.Height())
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}

	width, height := src.Width(), src.Height()
	padded := pad(src)
	pStride := (width + 2) * pixbuf.Channels
	dstStride := width * pixbuf.Channels
	dst := make([]byte, height*dstStride)

	w := k.Weights
	div := k.Divisor

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			row := dst[y*dstStride : (y+1)*dstStride]
			for x := 0; x < width; x++ {
				var r, g, b float64
				for ky := 0; ky < 3; ky++ {
					// Output (x, y) sits at (x+1, y+1) in the padded grid, so
					// the 3×3 window starts at (x, y).
					base := (y+ky)*pStride + x*pixbuf.Channels
					for kx := 0; kx < 3; kx++ {
						wt := w[ky][kx]
						if wt == 0 {
							continue
						}
						p := padded[base+kx*pixbuf.Channels:]
						r += float64(p[0]) * wt
						g += float64(p[1]) * wt
						b += float64(p[2]) * wt
					}
				}
				o := x * pixbuf.Channels
				row[o] = clampU8(r / div)
				row[o+1] = clampU8(g / div)
				row[o+2] = clampU8(b / div)
				row[o+3] = 0xff
			}
		}
	})

	return pixbuf.New(width, height, dst)
}

// ApplyPreset convolves src with the named preset.
func ApplyPreset(src *pixbuf.Buffer, name string) (*pixbuf.Buffer, error) {
	k, err := PresetByName(name)
	if err != nil {
		return nil, err
	}
	return Apply(src, k)
}

// Pad returns src extended by one pixel on each side with edge replication.
//
// The result is (width+2)×(height+2). Border pixels copy the nearest source
// pixel; corners copy the matching source corner.
func Pad(src *pixbuf.Buffer) (*pixbuf.Buffer, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", pixbuf.ErrInvalidBufferShape)
	}
	if src.Width() == 0 || src.Height() == 0 {
		return nil, fmt.Errorf("%w: empty source %dx%d", pixbuf.ErrInvalidDimensions, src.Width(), src.Height())
	}
	return pixbuf.New(src.Width()+2, src.Height()+2, pad(src))
}

func pad(src *pixbuf.Buffer) []byte {
	width, height := src.Width(), src.Height()
	srcPix := src.Pix()
	srcStride := src.Stride()
	pw, ph := width+2, height+2
	out := make([]byte, pw*ph*pixbuf.Channels)

	for py := 0; py < ph; py++ {
		sy := clamp(py-1, 0, height-1)
		srcRow := srcPix[sy*srcStride : (sy+1)*srcStride]
		dstRow := out[py*pw*pixbuf.Channels : (py+1)*pw*pixbuf.Channels]

		// Interior of the row, then the two replicated ends.
		copy(dstRow[pixbuf.Channels:], srcRow)
		copy(dstRow[:pixbuf.Channels], srcRow[:pixbuf.Channels])
		copy(dstRow[(pw-1)*pixbuf.Channels:], srcRow[(width-1)*pixbuf.Channels:])
	}
	return out
}

// clampU8 rounds v to the nearest integer and clamps it to [0, 255].
// NaN maps to 0.
func clampU8(v float64) uint8 {
	v = math.Round(v)
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
