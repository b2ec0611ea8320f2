package delay

import "github.com/cwbudde/algo-audiotools/dsp/buffer"

const allPassFeedback = 0.5

// AllPass is a Schroeder allpass section with a fixed feedback of 0.5.
type AllPass[T buffer.Sample] struct {
	line *Line[T]
}

// NewAllPass takes over buf as the section's delay storage.
func NewAllPass[T buffer.Sample](buf *buffer.MutSlice[T]) (*AllPass[T], error) {
	line, err := New(buf)
	if err != nil {
		return nil, err
	}
	return &AllPass[T]{line: line}, nil
}

// Tick processes one sample.
func (a *AllPass[T]) Tick(input T) T {
	delayed := a.line.Read()
	a.line.Write(input + delayed*allPassFeedback)
	return delayed - input
}

// ProcessBlock filters buf in place.
func (a *AllPass[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, a.Tick(buf.GetUnchecked(i)))
	}
}

// ChangeBuffer moves the section onto new storage.
func (a *AllPass[T]) ChangeBuffer(buf *buffer.MutSlice[T]) error {
	return a.line.ChangeBuffer(buf)
}

// Reset clears the delay storage.
func (a *AllPass[T]) Reset() {
	a.line.Reset()
}
