package imaging

import (
	"fmt"
	"math"

	"github.com/ironsheep/pixel-tools-mcp/internal/colorconv"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixbuf"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// ColorResult is the eyedropper readout for one pixel.
//
// It embeds the colorimetric readout (hex, RGB, HSL, XYZ, Lab, luminance,
// brightness) and adds the raw RGBA value. Alpha never affects the
// colorimetric values.
type ColorResult struct {
	colorconv.Readout
	RGBA RGBAColor `json:"rgba"`
}

// SampleColor reads the pixel at (x, y) and returns its readout.
//
// # Errors
//
// Returns an error wrapping pixbuf.ErrOutOfBounds if (x, y) is outside the buffer.
func SampleColor(buf *pixbuf.Buffer, x, y int) (*ColorResult, error) {
	p, err := buf.At(x, y)
	if err != nil {
		return nil, err
	}

	return &ColorResult{
		Readout: colorconv.Describe(colorconv.Sample{R: p.R, G: p.G, B: p.B}),
		RGBA:    RGBAColor{R: p.R, G: p.G, B: p.B, A: p.A},
	}, nil
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    `json:"x"`               // X coordinate (0-based)
	Y     int    `json:"y"`               // Y coordinate (0-based)
	Label string `json:"label,omitempty"` // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int         `json:"x"`               // X coordinate that was sampled
	Y     int         `json:"y"`               // Y coordinate that was sampled
	Color ColorResult `json:"color"`           // The color at this location
}

// MultiColorResult contains color samples from multiple points.
//
// Results are returned in the same order as the input points.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// If any coordinate is outside the buffer, no partial results are returned.
func SampleColorsMulti(buf *pixbuf.Buffer, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		sampled, err := sampleLabeled(buf, p)
		if err != nil {
			return nil, err
		}
		results = append(results, *sampled)
	}

	return &MultiColorResult{Samples: results}, nil
}

// ContrastReport compares the colors of two picked pixels.
type ContrastReport struct {
	First  LabeledColorResult       `json:"first"`
	Second LabeledColorResult       `json:"second"`
	Result colorconv.ContrastResult `json:"contrast"`

	// DeltaE is the CIEDE2000 difference scaled to the usual 0-100 range.
	DeltaE float64 `json:"delta_e"`
}

// CompareColors samples two pixels and reports their contrast ratio.
//
// This is the two-point eyedropper: the first point is typically text and
// the second its background, but the ratio does not depend on the order.
func CompareColors(buf *pixbuf.Buffer, first, second LabeledPoint) (*ContrastReport, error) {
	a, err := sampleLabeled(buf, first)
	if err != nil {
		return nil, err
	}
	b, err := sampleLabeled(buf, second)
	if err != nil {
		return nil, err
	}
	return &ContrastReport{
		First:  *a,
		Second: *b,
		Result: colorconv.ContrastRatio(a.Color.RGB, b.Color.RGB),
		DeltaE: CompareSamples(a.Color.RGB, b.Color.RGB).DeltaE,
	}, nil
}

// SampleContrast is the contrast between two colors given directly,
// without an image.
type SampleContrast struct {
	First  colorconv.Readout        `json:"first"`
	Second colorconv.Readout        `json:"second"`
	Result colorconv.ContrastResult `json:"contrast"`
	DeltaE float64                  `json:"delta_e"`
}

// CompareSamples reports the contrast and color difference of two colors.
func CompareSamples(a, b colorconv.Sample) *SampleContrast {
	return &SampleContrast{
		First:  colorconv.Describe(a),
		Second: colorconv.Describe(b),
		Result: colorconv.ContrastRatio(a, b),
		DeltaE: math.Round(colorconv.Difference(a, b)*10000) / 100,
	}
}

func sampleLabeled(buf *pixbuf.Buffer, p LabeledPoint) (*LabeledColorResult, error) {
	c, err := SampleColor(buf, p.X, p.Y)
	if err != nil {
		return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
	}
	return &LabeledColorResult{Label: p.Label, X: p.X, Y: p.Y, Color: *c}, nil
}
