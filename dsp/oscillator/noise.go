package oscillator

import (
	"math/rand"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
)

// Noise produces deterministic uniform white noise in [-amplitude, amplitude].
type Noise[T buffer.Sample] struct {
	rng       *rand.Rand
	amplitude float64
}

// NewNoise returns a noise source seeded with seed. A negative amplitude is
// treated as its magnitude.
func NewNoise[T buffer.Sample](amplitude float64, seed int64) *Noise[T] {
	if amplitude < 0 {
		amplitude = -amplitude
	}
	return &Noise[T]{rng: rand.New(rand.NewSource(seed)), amplitude: amplitude}
}

// Next returns the next noise sample.
func (n *Noise[T]) Next() T {
	return T((n.rng.Float64()*2 - 1) * n.amplitude)
}

// ProcessBlock overwrites buf with noise.
func (n *Noise[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, n.Next())
	}
}
