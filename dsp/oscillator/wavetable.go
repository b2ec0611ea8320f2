package oscillator

import (
	"errors"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
)

// ErrEmptyTable is returned for a wavetable without samples.
var ErrEmptyTable = errors.New("oscillator: wavetable is empty")

// Wavetable plays one cycle stored in a lookup table.
type Wavetable[T buffer.Sample] struct {
	table buffer.Slice[T]
	acc   *PhaseAccumulator
}

// NewWavetable returns an oscillator reading table at freq Hz. The table is
// viewed, not copied; it must stay unchanged while the oscillator runs.
func NewWavetable[T buffer.Sample](table buffer.Slice[T], freq float64, opts ...core.ProcessorOption) (*Wavetable[T], error) {
	if table.IsEmpty() {
		return nil, ErrEmptyTable
	}
	acc, err := NewPhaseAccumulator(freq, opts...)
	if err != nil {
		return nil, err
	}
	return &Wavetable[T]{table: table, acc: acc}, nil
}

// Accumulator exposes the phase source.
func (o *Wavetable[T]) Accumulator() *PhaseAccumulator { return o.acc }

// Next returns the next sample, linearly interpolated between table entries.
func (o *Wavetable[T]) Next() T {
	return o.table.LerpWrapped(float64(o.table.Len()) * o.acc.NextNormalized())
}

// ProcessBlock overwrites buf with the next buf.Len() samples.
func (o *Wavetable[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, o.Next())
	}
}

// FillWave writes exactly one cycle of w into dst.
func FillWave[T buffer.Sample](dst *buffer.MutSlice[T], w Waveform) {
	n := float64(dst.Len())
	for i := range dst.Len() {
		dst.AssignUnchecked(i, T(w.At(float64(i)/n)))
	}
}

// FillSine writes exactly one sine cycle into dst.
func FillSine[T buffer.Sample](dst *buffer.MutSlice[T]) {
	FillWave(dst, Sine)
}
