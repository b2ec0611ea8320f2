package biquad

import (
	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section. a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Section is a single biquad filter with coefficients and internal state.
type Section[T buffer.Sample] struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section with the given coefficients and zero state.
func NewSection[T buffer.Sample](c Coefficients) *Section[T] {
	return &Section[T]{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section[T]) ProcessSample(x T) T {
	return T(s.tick(float64(x)))
}

func (s *Section[T]) tick(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place. State below 1e-30 is flushed to zero
// at the end of the block.
func (s *Section[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	processUnrolled2(s, buf.AsMutSlice())
}

// processUnrolled2 runs two samples per iteration to cut loop overhead.
func processUnrolled2[T buffer.Sample](s *Section[T], buf []T) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := float64(buf[i])
		y0 := b0*x0 + d0
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := float64(buf[i+1])
		y1 := b0*x1 + d0n
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = T(y0)
		buf[i+1] = T(y1)
	}

	if i < n {
		x := float64(buf[i])
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = T(y)
	}

	s.d0, s.d1 = core.FlushDenormals(d0), core.FlushDenormals(d1)
}

// ProcessBlockTo filters src into dst over their common length and returns
// the number of samples written.
func (s *Section[T]) ProcessBlockTo(dst *buffer.MutSlice[T], src buffer.Slice[T]) int {
	n := min(dst.Len(), src.Len())
	for i := range n {
		dst.AssignUnchecked(i, T(s.tick(float64(src.GetUnchecked(i)))))
	}
	return n
}

// Reset clears the delay state.
func (s *Section[T]) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay state [d0, d1].
func (s *Section[T]) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay state.
func (s *Section[T]) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}

// ImpulseResponse writes the first dst.Len() samples of the impulse response
// into dst. The section state is saved and restored.
func (s *Section[T]) ImpulseResponse(dst *buffer.MutSlice[T]) {
	saved := s.State()
	s.Reset()
	for i := range dst.Len() {
		x := 0.0
		if i == 0 {
			x = 1
		}
		dst.AssignUnchecked(i, T(s.tick(x)))
	}
	s.SetState(saved)
}
