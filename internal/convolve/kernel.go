package convolve

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKernel is returned for kernels that cannot be applied.
var ErrInvalidKernel = errors.New("invalid kernel")

// Preset names.
const (
	PresetIdentity = "identity"
	PresetSharpen  = "sharpen"
	PresetGaussian = "gaussian"
	PresetBox      = "box"

	// CustomName labels kernels built from user-entered weights.
	CustomName = "custom"
)

// Kernel is a 3×3 convolution matrix with an explicit normalization divisor.
//
// Weights are indexed [row][col] with the centre at [1][1]. The weight used
// in the convolution sum is Weights[row][col] / Divisor.
type Kernel struct {
	Name    string        `json:"name"`
	Weights [3][3]float64 `json:"weights"`
	Divisor float64       `json:"divisor"`
}

// Weight returns the effective (normalized) weight at row, col.
func (k Kernel) Weight(row, col int) float64 {
	return k.Weights[row][col] / k.Divisor
}

// Values returns the raw weights in row-major order.
func (k Kernel) Values() [9]float64 {
	var v [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v[r*3+c] = k.Weights[r][c]
		}
	}
	return v
}

// Validate checks that the kernel can be applied.
func (k Kernel) Validate() error {
	if k.Divisor == 0 {
		return fmt.Errorf("%w: zero divisor", ErrInvalidKernel)
	}
	return nil
}

// NewKernel builds a custom kernel from nine row-major weights.
//
// Custom kernels are never normalized: the divisor is always 1, even when the
// weights happen to match a preset.
func NewKernel(values [9]float64) Kernel {
	return newKernel(CustomName, values, 1)
}

// KernelFromSlice is NewKernel for a slice, which must hold exactly nine values.
func KernelFromSlice(values []float64) (Kernel, error) {
	if len(values) != 9 {
		return Kernel{}, fmt.Errorf("%w: need 9 weights, got %d", ErrInvalidKernel, len(values))
	}
	var v [9]float64
	copy(v[:], values)
	return NewKernel(v), nil
}

func newKernel(name string, values [9]float64, divisor float64) Kernel {
	k := Kernel{Name: name, Divisor: divisor}
	for i, w := range values {
		k.Weights[i/3][i%3] = w
	}
	return k
}

// Identity leaves RGB unchanged.
func Identity() Kernel {
	return newKernel(PresetIdentity, [9]float64{0, 0, 0, 0, 1, 0, 0, 0, 0}, 1)
}

// Sharpen boosts the centre against its four direct neighbours.
func Sharpen() Kernel {
	return newKernel(PresetSharpen, [9]float64{0, -1, 0, -1, 5, -1, 0, -1, 0}, 1)
}

// GaussianBlur is the 1-2-1 binomial blur, divided by 16.
func GaussianBlur() Kernel {
	return newKernel(PresetGaussian, [9]float64{1, 2, 1, 2, 4, 2, 1, 2, 1}, 16)
}

// BoxBlur averages the 3×3 neighbourhood, divided by 9.
func BoxBlur() Kernel {
	return newKernel(PresetBox, [9]float64{1, 1, 1, 1, 1, 1, 1, 1, 1}, 9)
}

// Presets returns every named kernel in display order.
func Presets() []Kernel {
	return []Kernel{Identity(), Sharpen(), GaussianBlur(), BoxBlur()}
}

// presetAliases maps accepted spellings to preset names. The short forms are
// the names used by the editor's filter dialog.
var presetAliases = map[string]string{
	"identity": PresetIdentity,
	"base":     PresetIdentity,
	"none":     PresetIdentity,
	"sharpen":  PresetSharpen,
	"raise":    PresetSharpen,
	"gaussian": PresetGaussian,
	"gauss":    PresetGaussian,
	"box":      PresetBox,
	"rect":     PresetBox,
}

// PresetByName looks up a preset kernel, case-insensitively.
func PresetByName(name string) (Kernel, error) {
	switch presetAliases[strings.ToLower(strings.TrimSpace(name))] {
	case PresetIdentity:
		return Identity(), nil
	case PresetSharpen:
		return Sharpen(), nil
	case PresetGaussian:
		return GaussianBlur(), nil
	case PresetBox:
		return BoxBlur(), nil
	default:
		return Kernel{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidKernel, name)
	}
}
