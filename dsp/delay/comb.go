package delay

import "github.com/cwbudde/algo-audiotools/dsp/buffer"

const (
	defaultFeedback  = 0.5
	defaultDampening = 0.5
)

// Comb is a feedback comb filter with a one-pole lowpass in the loop.
type Comb[T buffer.Sample] struct {
	line        *Line[T]
	feedback    T
	filterState T
	damp        T
	dampInv     T
}

// NewComb takes over buf as the comb's delay storage. Feedback and
// dampening start at 0.5.
func NewComb[T buffer.Sample](buf *buffer.MutSlice[T]) (*Comb[T], error) {
	line, err := New(buf)
	if err != nil {
		return nil, err
	}
	return &Comb[T]{
		line:     line,
		feedback: defaultFeedback,
		damp:     defaultDampening,
		dampInv:  1 - defaultDampening,
	}, nil
}

// SetFeedback sets the loop gain.
func (c *Comb[T]) SetFeedback(v T) {
	c.feedback = v
}

// SetDampening sets the lowpass coefficient in the loop; 0 disables it.
func (c *Comb[T]) SetDampening(v T) {
	c.damp = v
	c.dampInv = 1 - v
}

// Tick processes one sample.
func (c *Comb[T]) Tick(input T) T {
	out := c.line.Read()
	c.filterState = out*c.dampInv + c.filterState*c.damp
	c.line.Write(input + c.filterState*c.feedback)
	return out
}

// ProcessBlock filters buf in place.
func (c *Comb[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, c.Tick(buf.GetUnchecked(i)))
	}
}

// ChangeBuffer moves the comb onto new storage. The filter state is kept.
func (c *Comb[T]) ChangeBuffer(buf *buffer.MutSlice[T]) error {
	return c.line.ChangeBuffer(buf)
}

// Reset clears the delay storage and the filter state.
func (c *Comb[T]) Reset() {
	c.line.Reset()
	c.filterState = 0
}

// Len returns the delay length in samples.
func (c *Comb[T]) Len() int {
	return c.line.Len()
}
