package oscillator

import (
	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
)

// Functional computes its waveform from the phase on every sample.
type Functional[T buffer.Sample] struct {
	acc  *PhaseAccumulator
	wave Waveform
}

// NewFunctional returns an oscillator producing wave at freq Hz.
func NewFunctional[T buffer.Sample](freq float64, wave Waveform, opts ...core.ProcessorOption) (*Functional[T], error) {
	acc, err := NewPhaseAccumulator(freq, opts...)
	if err != nil {
		return nil, err
	}
	return &Functional[T]{acc: acc, wave: wave}, nil
}

// Accumulator exposes the phase source for frequency and phase changes.
func (o *Functional[T]) Accumulator() *PhaseAccumulator { return o.acc }

// Waveform returns the current shape.
func (o *Functional[T]) Waveform() Waveform { return o.wave }

// SetWaveform switches the shape without resetting the phase.
func (o *Functional[T]) SetWaveform(w Waveform) { o.wave = w }

// Next returns the next sample in [-1, 1].
func (o *Functional[T]) Next() T {
	return T(o.wave.At(o.acc.NextNormalized()))
}

// ProcessBlock overwrites buf with the next buf.Len() samples.
func (o *Functional[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, o.Next())
	}
}
