package fir

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
)

var (
	// ErrNoTaps is returned for an empty coefficient slice.
	ErrNoTaps = errors.New("fir: no coefficients")
	// ErrHistoryLength is returned when history and taps differ in length.
	ErrHistoryLength = errors.New("fir: history length must equal tap count")
)

// Filter computes y[n] = sum h[k] x[n-k] with a circular history.
type Filter[T buffer.Sample] struct {
	taps    buffer.Slice[T]
	history buffer.MutSlice[T]
	pos     int
}

// New takes over history, which must have the same length as taps, and
// returns a filter with cleared state.
func New[T buffer.Sample](taps buffer.Slice[T], history *buffer.MutSlice[T]) (*Filter[T], error) {
	if taps.IsEmpty() {
		return nil, ErrNoTaps
	}
	if history.Len() != taps.Len() {
		return nil, fmt.Errorf("%w: %d != %d", ErrHistoryLength, history.Len(), taps.Len())
	}
	f := &Filter[T]{taps: taps, history: history.Take()}
	f.Reset()
	return f, nil
}

// ProcessSample filters one sample.
func (f *Filter[T]) ProcessSample(x T) T {
	n := f.taps.Len()
	f.history.AssignUnchecked(f.pos, x)

	var y T
	p := f.pos
	for k := range n {
		y += f.taps.GetUnchecked(k) * f.history.GetUnchecked(p)
		p--
		if p < 0 {
			p = n - 1
		}
	}

	f.pos++
	if f.pos == n {
		f.pos = 0
	}
	return y
}

// ProcessBlock filters buf in place.
func (f *Filter[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, f.ProcessSample(buf.GetUnchecked(i)))
	}
}

// ProcessBlockTo filters src into dst and returns the number of samples
// written, the shorter of the two lengths.
func (f *Filter[T]) ProcessBlockTo(dst *buffer.MutSlice[T], src buffer.Slice[T]) int {
	n := min(dst.Len(), src.Len())
	for i := range n {
		dst.AssignUnchecked(i, f.ProcessSample(src.GetUnchecked(i)))
	}
	return n
}

// SetTaps swaps in new coefficients of the same length. History is kept.
func (f *Filter[T]) SetTaps(taps buffer.Slice[T]) error {
	if taps.Len() != f.taps.Len() {
		return fmt.Errorf("%w: %d != %d", ErrHistoryLength, f.history.Len(), taps.Len())
	}
	f.taps = taps
	return nil
}

// Reset clears the history.
func (f *Filter[T]) Reset() {
	f.history.Zero()
	f.pos = 0
}

// Order returns the tap count minus one.
func (f *Filter[T]) Order() int { return f.taps.Len() - 1 }

// Taps returns the coefficient view.
func (f *Filter[T]) Taps() buffer.Slice[T] { return f.taps }

// Response returns H(e^jw) at freqHz.
func (f *Filter[T]) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.taps.All() {
		h += complex(float64(c), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns |H| in dB at freqHz.
func (f *Filter[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
