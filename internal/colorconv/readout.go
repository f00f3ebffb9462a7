package colorconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL is a hue/saturation/lightness triple for display.
type HSL struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// Readout bundles every representation the eyedropper displays for a colour.
type Readout struct {
	Hex        string  `json:"hex"`
	RGB        Sample  `json:"rgb"`
	HSL        HSL     `json:"hsl"`
	XYZ        XYZ     `json:"xyz"`
	Lab        Lab     `json:"lab"`
	Luminance  float64 `json:"luminance"`
	Brightness float64 `json:"brightness"`
}

// Describe computes the full readout for a sample.
//
// Luminance is rounded to four decimals and brightness to two.
func Describe(s Sample) Readout {
	c := s.toColorful()
	h, sat, l := c.Hsl()

	return Readout{
		Hex: s.String(),
		RGB: s,
		HSL: HSL{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(sat * 100)),
			L: int(math.Round(l * 100)),
		},
		XYZ:        RGBToXYZ(s),
		Lab:        RGBToLab(s),
		Luminance:  math.Round(RelativeLuminance(s)*10000) / 10000,
		Brightness: math.Round(Brightness(s)*100) / 100,
	}
}

// Difference returns the CIEDE2000 colour difference between two samples.
//
// A value below about 0.01 is imperceptible; 0.1 is clearly visible.
func Difference(a, b Sample) float64 {
	return a.toColorful().DistanceCIEDE2000(b.toColorful())
}

// ParseSample reads a colour written as "#RRGGBB", "RRGGBB", "#RGB" or "r,g,b".
func ParseSample(text string) (Sample, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Sample{}, fmt.Errorf("empty color string")
	}

	if strings.Contains(text, ",") {
		return parseTriple(text)
	}

	if !strings.HasPrefix(text, "#") {
		text = "#" + text
	}
	if n := len(text) - 1; n != 3 && n != 6 {
		return Sample{}, fmt.Errorf("invalid hex color %q: need 3 or 6 digits", text)
	}
	c, err := colorful.Hex(text)
	if err != nil {
		return Sample{}, fmt.Errorf("invalid hex color %q: %w", text, err)
	}
	r, g, b := c.RGB255()
	return Sample{R: r, G: g, B: b}, nil
}

func parseTriple(text string) (Sample, error) {
	text = strings.TrimSuffix(strings.TrimPrefix(text, "rgb("), ")")
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return Sample{}, fmt.Errorf("invalid rgb color %q: need 3 components", text)
	}

	var v [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Sample{}, fmt.Errorf("invalid rgb component %q: %w", p, err)
		}
		v[i] = uint8(n)
	}
	return Sample{R: v[0], G: v[1], B: v[2]}, nil
}

func (s Sample) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(s.R) / 255,
		G: float64(s.G) / 255,
		B: float64(s.B) / 255,
	}
}
