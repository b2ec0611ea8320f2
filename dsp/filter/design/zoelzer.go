package design

import (
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/core"
	"github.com/cwbudde/algo-audiotools/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// prewarp returns K^2 and K/Q for the cutoff.
func prewarp(freq, q, sampleRate float64) (k2, kq float64, ok bool) {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return 0, 0, false
	}
	return k * k, k / normalizedQ(q), true
}

// Lowpass designs a second-order lowpass at freq (Hz) with quality factor q.
func Lowpass(freq, q, sampleRate float64) biquad.Coefficients {
	k2, kq, ok := prewarp(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	norm := 1 / (1 + kq + k2)
	return biquad.Coefficients{
		B0: k2 * norm,
		B1: 2 * k2 * norm,
		B2: k2 * norm,
		A1: 2 * (k2 - 1) * norm,
		A2: (1 - kq + k2) * norm,
	}
}

// Highpass designs a second-order highpass.
func Highpass(freq, q, sampleRate float64) biquad.Coefficients {
	k2, kq, ok := prewarp(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	norm := 1 / (1 + kq + k2)
	return biquad.Coefficients{
		B0: norm,
		B1: -2 * norm,
		B2: norm,
		A1: 2 * (k2 - 1) * norm,
		A2: (1 - kq + k2) * norm,
	}
}

// Allpass designs a second-order allpass with its 180 degree point at freq.
func Allpass(freq, q, sampleRate float64) biquad.Coefficients {
	k2, kq, ok := prewarp(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	norm := 1 / (1 + kq + k2)
	a1 := 2 * (k2 - 1) * norm
	a2 := (1 - kq + k2) * norm
	return biquad.Coefficients{B0: a2, B1: a1, B2: 1, A1: a1, A2: a2}
}

// Notch designs a second-order band-reject filter.
func Notch(freq, q, sampleRate float64) biquad.Coefficients {
	k2, kq, ok := prewarp(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	norm := 1 / (1 + kq + k2)
	b0 := (1 + k2) * norm
	a1 := 2 * (k2 - 1) * norm
	return biquad.Coefficients{
		B0: b0,
		B1: a1,
		B2: b0,
		A1: a1,
		A2: (1 - kq + k2) * norm,
	}
}

// Bell designs a peaking filter with gainDB at freq. Cuts mirror boosts, so
// a cut of -g dB cancels a boost of +g dB at the same freq and q.
func Bell(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	k2, kq, ok := prewarp(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	v := core.DBToLinear(math.Abs(gainDB))
	a1 := 2 * (k2 - 1)

	if gainDB >= 0 {
		norm := 1 / (1 + kq + k2)
		return biquad.Coefficients{
			B0: (1 + v*kq + k2) * norm,
			B1: a1 * norm,
			B2: (1 - v*kq + k2) * norm,
			A1: a1 * norm,
			A2: (1 - kq + k2) * norm,
		}
	}

	norm := 1 / (1 + v*kq + k2)
	return biquad.Coefficients{
		B0: (1 + kq + k2) * norm,
		B1: a1 * norm,
		B2: (1 - kq + k2) * norm,
		A1: a1 * norm,
		A2: (1 - v*kq + k2) * norm,
	}
}

// LowShelf designs a low shelf with gainDB below freq.
func LowShelf(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	k2, kq, ok := prewarp(freq, q, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}
	v := core.DBToLinear(math.Abs(gainDB))
	s := math.Sqrt(2 * v * k2)

	if gainDB >= 0 {
		norm := 1 / (1 + kq + k2)
		return biquad.Coefficients{
			B0: (1 + s + v*k2) * norm,
			B1: 2 * (v*k2 - 1) * norm,
			B2: (1 - s + v*k2) * norm,
			A1: 2 * (k2 - 1) * norm,
			A2: (1 - kq + k2) * norm,
		}
	}

	norm := 1 / (1 + s + v*k2)
	return biquad.Coefficients{
		B0: (1 + kq + k2) * norm,
		B1: 2 * (k2 - 1) * norm,
		B2: (1 - kq + k2) * norm,
		A1: 2 * (v*k2 - 1) * norm,
		A2: (1 - s + v*k2) * norm,
	}
}

func bilinearK(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}
	if freq <= 0 || freq >= sampleRate/2 || math.IsNaN(freq) {
		return 0, false
	}
	return math.Tan(math.Pi * freq / sampleRate), true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}
	return q
}
