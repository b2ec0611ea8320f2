// Package window generates analysis windows into caller-owned buffers.
package window

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyWindow is returned for a zero-length destination.
	ErrEmptyWindow = errors.New("window: destination is empty")
	// ErrUnknownType is returned for an unsupported window type.
	ErrUnknownType = errors.New("window: unknown type")
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeTriangle
)

func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	case TypeBlackman:
		return "blackman"
	case TypeTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic generates the periodic form used for FFT framing instead of
// the symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Fill writes the window of type t over the whole of dst.
func Fill(dst *buffer.MutSlice[float64], t Type, opts ...Option) error {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	n := dst.Len()
	if n == 0 {
		return ErrEmptyWindow
	}

	if t < TypeRectangular || t > TypeTriangle {
		return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	if n == 1 {
		dst.AssignUnchecked(0, 1)
		return nil
	}

	den := float64(n - 1)
	if cfg.periodic {
		den = float64(n)
	}

	for i := range n {
		x := float64(i) / den
		dst.AssignUnchecked(i, coefficient(t, x))
	}

	return nil
}

// coefficient evaluates the window at normalized position x in [0, 1].
func coefficient(t Type, x float64) float64 {
	c := math.Cos(2 * math.Pi * x)

	switch t {
	case TypeHann:
		return 0.5 - 0.5*c
	case TypeHamming:
		return 0.54 - 0.46*c
	case TypeBlackman:
		return 0.42 - 0.5*c + 0.08*math.Cos(4*math.Pi*x)
	case TypeTriangle:
		return 1 - math.Abs(2*x-1)
	default:
		return 1
	}
}

// Apply multiplies buf by coeffs element-wise over the shorter length.
func Apply(buf *buffer.MutSlice[float64], coeffs buffer.Slice[float64]) {
	n := min(buf.Len(), coeffs.Len())
	if n == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf.AsMutSlice()[:n], coeffs.AsSlice()[:n])
}

// CoherentGain returns the mean coefficient, the amplitude a windowed
// sinusoid keeps at its bin centre.
func CoherentGain(coeffs buffer.Slice[float64]) float64 {
	if coeffs.IsEmpty() {
		return 0
	}

	return vecmath.Sum(coeffs.AsSlice()) / float64(coeffs.Len())
}
