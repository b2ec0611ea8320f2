package fir

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// ErrCutoff is returned for a cutoff outside (0, sampleRate/2).
var ErrCutoff = errors.New("fir: cutoff must be in (0, nyquist)")

// WindowedSinc writes a linear-phase lowpass with the given cutoff into
// dst, tapered by win and normalized to unity DC gain.
func WindowedSinc(dst *buffer.MutSlice[float64], cutoff, sampleRate float64, win window.Type) error {
	if !(cutoff > 0 && cutoff < sampleRate/2) {
		return ErrCutoff
	}
	if err := window.Fill(dst, win); err != nil {
		return err
	}

	n := dst.Len()
	fc := cutoff / sampleRate
	mid := float64(n-1) / 2
	for i := range n {
		x := float64(i) - mid
		h := 2 * fc
		if x != 0 {
			h = math.Sin(2*math.Pi*fc*x) / (math.Pi * x)
		}
		dst.AssignUnchecked(i, dst.GetUnchecked(i)*h)
	}

	taps := dst.AsMutSlice()
	if sum := vecmath.Sum(taps); sum != 0 {
		vecmath.ScaleBlockInPlace(taps, 1/sum)
	}
	return nil
}
