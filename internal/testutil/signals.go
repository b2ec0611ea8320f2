// Package testutil holds signal generators and tolerance checks shared by
// package tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
)

// DeterministicSine generates length samples of amplitude*sin(2*pi*f*n/sr).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// from a fixed seed.
func DeterministicNoise[T buffer.Sample](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse returns a unit impulse at pos. An out-of-range pos yields silence.
func Impulse[T buffer.Sample](length, pos int) []T {
	out := make([]T, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC returns length copies of value.
func DC[T buffer.Sample](value T, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// MutBuffer allocates length zeroed samples and returns both the writable
// handle and the backing slice so tests can inspect what was written.
func MutBuffer[T buffer.Sample](length int) (buffer.MutSlice[T], []T) {
	backing := make([]T, length)
	return buffer.FromBufferMut(backing), backing
}
