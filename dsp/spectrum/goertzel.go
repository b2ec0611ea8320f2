package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
)

// ErrGoertzelFrequency is returned for a target outside [0, sampleRate/2].
var ErrGoertzelFrequency = errors.New("spectrum: goertzel frequency outside [0, nyquist]")

// Goertzel evaluates one DFT term incrementally. Power and Magnitude cover
// every sample processed since the last Reset.
type Goertzel[T buffer.Sample] struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
}

// NewGoertzel returns an analyzer for frequency (Hz).
func NewGoertzel[T buffer.Sample](frequency float64, opts ...core.ProcessorOption) (*Goertzel[T], error) {
	cfg := core.ApplyProcessorOptions(opts...)
	g := &Goertzel[T]{sampleRate: cfg.SampleRate}
	if err := g.SetFrequency(frequency); err != nil {
		return nil, err
	}
	return g, nil
}

// SetFrequency changes the target and keeps the accumulated state.
func (g *Goertzel[T]) SetFrequency(frequency float64) error {
	if !(frequency >= 0 && frequency <= g.sampleRate/2) {
		return fmt.Errorf("%w: %v", ErrGoertzelFrequency, frequency)
	}
	g.frequency = frequency
	g.coeff = 2 * math.Cos(2*math.Pi*frequency/g.sampleRate)
	return nil
}

// Frequency returns the target frequency in Hz.
func (g *Goertzel[T]) Frequency() float64 { return g.frequency }

// Reset clears the accumulated state.
func (g *Goertzel[T]) Reset() {
	g.s0, g.s1 = 0, 0
}

// ProcessSample feeds one sample.
func (g *Goertzel[T]) ProcessSample(x T) {
	s := float64(x) + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
}

// ProcessBlock feeds every sample of in.
func (g *Goertzel[T]) ProcessBlock(in buffer.Slice[T]) {
	s0, s1, coeff := g.s0, g.s1, g.coeff
	for _, x := range in.All() {
		s := float64(x) + coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
}

// Power returns |X[k]|^2 for the processed block.
func (g *Goertzel[T]) Power() float64 {
	return max(0, g.s0*g.s0+g.s1*g.s1-g.coeff*g.s0*g.s1)
}

// Magnitude returns |X[k]|.
func (g *Goertzel[T]) Magnitude() float64 {
	return math.Sqrt(g.Power())
}

// PowerDB returns Power in dB, floored at -300.
func (g *Goertzel[T]) PowerDB() float64 {
	p := g.Power()
	if p <= 1e-30 {
		return -300
	}
	return core.LinearPowerToDB(p)
}
