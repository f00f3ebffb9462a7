package imaging

import (
	"errors"
	"image/color"
	"testing"

	"github.com/ironsheep/pixel-tools-mcp/internal/colorconv"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixbuf"
)

// createPatternBuffer creates a buffer with a different color in each quadrant.
func createPatternBuffer(t *testing.T, width, height int) *pixbuf.Buffer {
	t.Helper()
	buf, err := pixbuf.NewBlank(width, height)
	if err != nil {
		t.Fatalf("NewBlank failed: %v", err)
	}
	pix := buf.Pix()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.NRGBA
			switch {
			case x < width/2 && y < height/2:
				c = color.NRGBA{255, 0, 0, 255} // Red top-left
			case x >= width/2 && y < height/2:
				c = color.NRGBA{0, 255, 0, 255} // Green top-right
			case x < width/2:
				c = color.NRGBA{0, 0, 255, 255} // Blue bottom-left
			default:
				c = color.NRGBA{255, 255, 255, 255} // White bottom-right
			}
			i := (y*width + x) * pixbuf.Channels
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return buf
}

func fillBuffer(t *testing.T, width, height int, c color.NRGBA) *pixbuf.Buffer {
	t.Helper()
	buf, err := pixbuf.Fill(width, height, c)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	return buf
}

func TestSampleColor(t *testing.T) {
	buf := fillBuffer(t, 100, 100, color.NRGBA{255, 128, 64, 255})

	result, err := SampleColor(buf, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (colorconv.Sample{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %+v, want {255 128 64}", result.RGB)
	}
	if result.RGBA != (RGBAColor{R: 255, G: 128, B: 64, A: 255}) {
		t.Errorf("RGBA: got %+v, want {255 128 64 255}", result.RGBA)
	}
	if result.HSL != (colorconv.HSL{H: 20, S: 100, L: 63}) {
		t.Errorf("HSL: got %+v, want {20 100 63}", result.HSL)
	}
	if result.XYZ != (colorconv.XYZ{X: 50, Y: 37, Z: 9}) {
		t.Errorf("XYZ: got %+v, want {50 37 9}", result.XYZ)
	}
	if result.Lab != (colorconv.Lab{L: 67, A: 45, B: 56}) {
		t.Errorf("Lab: got %+v, want {67 45 56}", result.Lab)
	}
	if result.Luminance != 0.3707 {
		t.Errorf("Luminance: got %v, want 0.3707", result.Luminance)
	}
	if result.Brightness != 94.52 {
		t.Errorf("Brightness: got %v, want 94.52", result.Brightness)
	}
}

func TestSampleColor_AlphaIgnoredForReadout(t *testing.T) {
	buf := fillBuffer(t, 2, 2, color.NRGBA{0, 0, 0, 0})

	result, err := SampleColor(buf, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.RGBA.A != 0 {
		t.Errorf("alpha: got %d, want 0", result.RGBA.A)
	}
	if result.Hex != "#000000" {
		t.Errorf("Hex: got %s, want #000000", result.Hex)
	}
	if result.Luminance != 0 {
		t.Errorf("Luminance: got %v, want 0", result.Luminance)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	buf := fillBuffer(t, 10, 10, color.NRGBA{255, 255, 255, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 5},
		{"negative y", 5, -1},
		{"x at width", 10, 5},
		{"y at height", 5, 10},
		{"far outside", 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(buf, tt.x, tt.y)
			if !errors.Is(err, pixbuf.ErrOutOfBounds) {
				t.Errorf("expected ErrOutOfBounds, got %v", err)
			}
		})
	}
}

func TestSampleColor_Corners(t *testing.T) {
	buf := createPatternBuffer(t, 100, 100)

	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"top-left", 0, 0, "#FF0000"},
		{"top-right", 99, 0, "#00FF00"},
		{"bottom-left", 0, 99, "#0000FF"},
		{"bottom-right", 99, 99, "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SampleColor(buf, tt.x, tt.y)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.want {
				t.Errorf("got %s, want %s", result.Hex, tt.want)
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	buf := createPatternBuffer(t, 100, 100)

	points := []LabeledPoint{
		{X: 10, Y: 10, Label: "red"},
		{X: 90, Y: 10, Label: "green"},
		{X: 10, Y: 90},
		{X: 90, Y: 90, Label: "white"},
	}

	result, err := SampleColorsMulti(buf, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}
	if len(result.Samples) != len(points) {
		t.Fatalf("got %d samples, want %d", len(result.Samples), len(points))
	}

	wantHex := []string{"#FF0000", "#00FF00", "#0000FF", "#FFFFFF"}
	for i, s := range result.Samples {
		if s.Label != points[i].Label {
			t.Errorf("sample %d label: got %q, want %q", i, s.Label, points[i].Label)
		}
		if s.X != points[i].X || s.Y != points[i].Y {
			t.Errorf("sample %d coords: got (%d,%d)", i, s.X, s.Y)
		}
		if s.Color.Hex != wantHex[i] {
			t.Errorf("sample %d hex: got %s, want %s", i, s.Color.Hex, wantHex[i])
		}
	}
}

func TestSampleColorsMulti_OutOfBounds(t *testing.T) {
	buf := createPatternBuffer(t, 10, 10)

	points := []LabeledPoint{{X: 1, Y: 1}, {X: 50, Y: 50}}
	result, err := SampleColorsMulti(buf, points)
	if !errors.Is(err, pixbuf.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if result != nil {
		t.Error("expected no partial result")
	}
}

func TestSampleColorsMulti_Empty(t *testing.T) {
	buf := createPatternBuffer(t, 10, 10)

	result, err := SampleColorsMulti(buf, nil)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}
	if len(result.Samples) != 0 {
		t.Errorf("got %d samples, want 0", len(result.Samples))
	}
}

func TestCompareColors(t *testing.T) {
	buf, err := pixbuf.New(2, 1, []byte{
		0, 0, 0, 255,
		255, 255, 255, 255,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	report, err := CompareColors(buf,
		LabeledPoint{X: 0, Y: 0, Label: "text"},
		LabeledPoint{X: 1, Y: 0, Label: "background"})
	if err != nil {
		t.Fatalf("CompareColors failed: %v", err)
	}

	if report.First.Label != "text" || report.Second.Label != "background" {
		t.Errorf("labels: got %q and %q", report.First.Label, report.Second.Label)
	}
	if report.Result.Ratio != 21 {
		t.Errorf("ratio: got %v, want 21", report.Result.Ratio)
	}
	if report.Result.Formatted != "21.00" {
		t.Errorf("formatted: got %q, want 21.00", report.Result.Formatted)
	}
	if !report.Result.MeetsThreshold {
		t.Error("black on white should meet the threshold")
	}
	if report.DeltaE < 99 || report.DeltaE > 101 {
		t.Errorf("delta E: got %v, want about 100", report.DeltaE)
	}
}

func TestCompareColors_SameColor(t *testing.T) {
	buf := fillBuffer(t, 4, 4, color.NRGBA{118, 118, 118, 255})

	report, err := CompareColors(buf, LabeledPoint{X: 0, Y: 0}, LabeledPoint{X: 3, Y: 3})
	if err != nil {
		t.Fatalf("CompareColors failed: %v", err)
	}
	if report.Result.Ratio != 1 {
		t.Errorf("ratio: got %v, want 1", report.Result.Ratio)
	}
	if report.Result.MeetsThreshold {
		t.Error("identical colors should not meet the threshold")
	}
	if report.DeltaE != 0 {
		t.Errorf("delta E: got %v, want 0", report.DeltaE)
	}
}

func TestCompareColors_OutOfBounds(t *testing.T) {
	buf := fillBuffer(t, 4, 4, color.NRGBA{0, 0, 0, 255})

	if _, err := CompareColors(buf, LabeledPoint{X: 0, Y: 0}, LabeledPoint{X: 4, Y: 0}); !errors.Is(err, pixbuf.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds for second point, got %v", err)
	}
	if _, err := CompareColors(buf, LabeledPoint{X: -1, Y: 0}, LabeledPoint{X: 0, Y: 0}); !errors.Is(err, pixbuf.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds for first point, got %v", err)
	}
}

func TestCompareSamples(t *testing.T) {
	tests := []struct {
		name  string
		a, b  colorconv.Sample
		ratio float64
		meets bool
	}{
		{"black on white", colorconv.Sample{}, colorconv.Sample{R: 255, G: 255, B: 255}, 21, true},
		{"red on white", colorconv.Sample{R: 255}, colorconv.Sample{R: 255, G: 255, B: 255}, 4, false},
		{"gray 118 on white", colorconv.Sample{R: 118, G: 118, B: 118}, colorconv.Sample{R: 255, G: 255, B: 255}, 4.54, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareSamples(tt.a, tt.b)
			if got.Result.Ratio != tt.ratio {
				t.Errorf("ratio: got %v, want %v", got.Result.Ratio, tt.ratio)
			}
			if got.Result.MeetsThreshold != tt.meets {
				t.Errorf("meets: got %v, want %v", got.Result.MeetsThreshold, tt.meets)
			}
			if got.First.RGB != tt.a || got.Second.RGB != tt.b {
				t.Error("readouts do not match inputs")
			}
		})
	}
}
