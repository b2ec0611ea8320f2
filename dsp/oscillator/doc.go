// Package oscillator generates periodic signals into [buffer.MutSlice]
// blocks.
//
// Every oscillator is driven by a [PhaseAccumulator], a wrapping uint32
// counter whose full range is one cycle. [Functional] computes classic
// waveforms directly from the phase; [Wavetable] reads a caller-provided
// table through an immutable [buffer.Slice] with wrapped interpolation.
package oscillator
