package design

import (
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade of the given order.
// For odd orders the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(freq, order, sampleRate, Lowpass, firstOrderLP)
}

// ButterworthHP designs a highpass Butterworth cascade of the given order.
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworth(freq, order, sampleRate, Highpass, firstOrderHP)
}

func butterworth(
	freq float64, order int, sampleRate float64,
	second func(freq, q, sampleRate float64) biquad.Coefficients,
	first func(k float64) biquad.Coefficients,
) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, second(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, first(k))
	}
	return sections
}

func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))
	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}
	return 1 / (2 * s)
}

func firstOrderLP(k float64) biquad.Coefficients {
	norm := 1 / (1 + k)
	return biquad.Coefficients{B0: k * norm, B1: k * norm, A1: (k - 1) * norm}
}

func firstOrderHP(k float64) biquad.Coefficients {
	norm := 1 / (1 + k)
	return biquad.Coefficients{B0: norm, B1: -norm, A1: (k - 1) * norm}
}
