// Package resample changes the dimensions of pixel buffers.
//
// Resizing uses nearest-neighbour sampling only: each destination pixel is a
// verbatim copy of one source pixel, so edges stay hard and no new colours
// are introduced.
package resample

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/pixel-tools-mcp/internal/pixbuf"
)

// Resize returns a newWidth×newHeight copy of src using nearest-neighbour sampling.
//
// Destination pixel (x, y) copies all four channels of source pixel
// (floor(x*srcW/newW), floor(y*srcH/newH)). Integer arithmetic keeps the
// mapping exact, so the source index never exceeds srcW-1 or srcH-1.
//
// # Errors
//
//   - ErrInvalidDimensions if newWidth or newHeight is not positive, or src is empty
//   - ErrInvalidBufferShape if src is nil
func Resize(src *pixbuf.Buffer, newWidth, newHeight int) (*pixbuf.Buffer, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", pixbuf.ErrInvalidBufferShape)
	}
	if newWidth <= 0 || newHeight <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", pixbuf.ErrInvalidDimensions, newWidth, newHeight)
	}
	srcW, srcH := src.Width(), src.Height()
	if srcW == 0 || srcH == 0 {
		return nil, fmt.Errorf("%w: empty source %dx%d", pixbuf.ErrInvalidDimensions, srcW, srcH)
	}

	srcPix := src.Pix()
	srcStride := src.Stride()
	dstStride := newWidth * pixbuf.Channels
	dstPix := make([]byte, newHeight*dstStride)

	// Column lookup is shared by every row.
	srcCol := make([]int, newWidth)
	for x := range srcCol {
		srcCol[x] = x * srcW / newWidth * pixbuf.Channels
	}

	parallel.Line(newHeight, func(start, end int) {
		for y := start; y < end; y++ {
			srcRow := srcPix[(y*srcH/newHeight)*srcStride:]
			dstRow := dstPix[y*dstStride : (y+1)*dstStride]
			for x, sc := range srcCol {
				d := x * pixbuf.Channels
				copy(dstRow[d:d+pixbuf.Channels], srcRow[sc:sc+pixbuf.Channels])
			}
		}
	})

	return pixbuf.New(newWidth, newHeight, dstPix)
}

// ResizePercent resizes src to the given percentages of its current size.
func ResizePercent(src *pixbuf.Buffer, percentWidth, percentHeight int) (*pixbuf.Buffer, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", pixbuf.ErrInvalidBufferShape)
	}
	w, h, err := PercentDimensions(src.Width(), src.Height(), percentWidth, percentHeight)
	if err != nil {
		return nil, err
	}
	return Resize(src, w, h)
}

// PercentDimensions converts percentage scales into pixel dimensions.
//
// Each axis is round(size*percent/100), never less than 1.
func PercentDimensions(width, height, percentWidth, percentHeight int) (int, int, error) {
	if percentWidth <= 0 || percentHeight <= 0 {
		return 0, 0, fmt.Errorf("%w: percentages %d%%x%d%%", pixbuf.ErrInvalidDimensions, percentWidth, percentHeight)
	}
	return atLeastOne(math.Round(float64(width) * float64(percentWidth) / 100)),
		atLeastOne(math.Round(float64(height) * float64(percentHeight) / 100)), nil
}

// KeepAspectFromWidth returns the height that keeps width:height when the
// width changes to newWidth.
func KeepAspectFromWidth(width, height, newWidth int) int {
	if width <= 0 {
		return atLeastOne(float64(height))
	}
	return atLeastOne(math.Round(float64(height) * float64(newWidth) / float64(width)))
}

// KeepAspectFromHeight returns the width that keeps width:height when the
// height changes to newHeight.
func KeepAspectFromHeight(width, height, newHeight int) int {
	if height <= 0 {
		return atLeastOne(float64(width))
	}
	return atLeastOne(math.Round(float64(width) * float64(newHeight) / float64(height)))
}

// Megapixels returns the pixel count in millions.
func Megapixels(width, height int) float64 {
	return float64(width) * float64(height) / 1e6
}

func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
