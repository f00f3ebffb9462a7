// Package colorconv converts 8-bit sRGB samples into colorimetric values.
//
// It provides CIE XYZ and CIE Lab (D65, 2° observer), relative luminance, and
// the contrast ratio between two colours as used to judge text legibility.
// Every function is pure and works on a Sample; alpha is never considered.
//
// XYZ and Lab are reported as integers, matching the numeric readouts of the
// eyedropper tool. Lab is derived from the already-rounded XYZ triple.
package colorconv

import (
	"fmt"
	"math"
)

// ContrastThreshold is the minimum ratio treated as sufficient contrast.
const ContrastThreshold = 4.5

// Reference white for D65 / 2°.
const (
	whiteX = 95.047
	whiteY = 100.000
	whiteZ = 108.883
)

// Sample is one pixel's colour, independent of alpha.
type Sample struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String formats the sample as #RRGGBB.
func (s Sample) String() string {
	return fmt.Sprintf("#%02X%02X%02X", s.R, s.G, s.B)
}

// XYZ is a CIE XYZ triple scaled to [0, 100] and rounded.
type XYZ struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Lab is a CIE L*a*b* triple, rounded.
type Lab struct {
	L int `json:"l"`
	A int `json:"a"`
	B int `json:"b"`
}

// ContrastResult describes the contrast between two colours.
type ContrastResult struct {
	// Ratio is the contrast ratio rounded to two decimals, always >= 1.
	Ratio float64 `json:"ratio"`

	// Formatted is Ratio with exactly two decimal digits, e.g. "21.00".
	Formatted string `json:"formatted"`

	// MeetsThreshold is true when the unrounded ratio is at least 4.5.
	MeetsThreshold bool `json:"meets_threshold"`
}

// RGBToXYZ converts a sample to CIE XYZ.
//
// Channels are gamma-decoded (linear below 0.04045), scaled to [0, 100] and
// multiplied by the sRGB D65 matrix. Each component is rounded.
func RGBToXYZ(s Sample) XYZ {
	r := decodeXYZ(s.R) * 100
	g := decodeXYZ(s.G) * 100
	b := decodeXYZ(s.B) * 100

	return XYZ{
		X: round(r*0.4124 + g*0.3576 + b*0.1805),
		Y: round(r*0.2126 + g*0.7152 + b*0.0722),
		Z: round(r*0.0193 + g*0.1192 + b*0.9505),
	}
}

// RGBToLab converts a sample to CIE Lab via RGBToXYZ.
func RGBToLab(s Sample) Lab {
	xyz := RGBToXYZ(s)

	fx := labF(float64(xyz.X) / whiteX)
	fy := labF(float64(xyz.Y) / whiteY)
	fz := labF(float64(xyz.Z) / whiteZ)

	return Lab{
		L: round(116*fy - 16),
		A: round(500 * (fx - fy)),
		B: round(200 * (fy - fz)),
	}
}

// RelativeLuminance returns the luminance of a sample in [0, 1].
//
// Linearization uses the 0.03928 threshold from the contrast guidelines,
// which differs slightly from the 0.04045 used by RGBToXYZ.
func RelativeLuminance(s Sample) float64 {
	return 0.2126*linearize(s.R) + 0.7152*linearize(s.G) + 0.0722*linearize(s.B)
}

// Brightness is RelativeLuminance scaled to [0, 255].
func Brightness(s Sample) float64 {
	return RelativeLuminance(s) * 255
}

// ContrastRatio compares two colours.
//
// Both luminances are offset by 0.05 and the larger is divided by the
// smaller. The result does not depend on argument order. If either adjusted
// luminance is zero the ratio falls back to 1.
func ContrastRatio(a, b Sample) ContrastResult {
	la := RelativeLuminance(a) + 0.05
	lb := RelativeLuminance(b) + 0.05

	ratio := 1.0
	if la != 0 && lb != 0 {
		ratio = math.Max(la, lb) / math.Min(la, lb)
	}

	rounded := math.Round(ratio*100) / 100
	return ContrastResult{
		Ratio:          rounded,
		Formatted:      fmt.Sprintf("%.2f", rounded),
		MeetsThreshold: ratio >= ContrastThreshold,
	}
}

func decodeXYZ(c uint8) float64 {
	v := float64(c) / 255
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func linearize(c uint8) float64 {
	v := float64(c) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

func round(v float64) int {
	return int(math.Round(v))
}
