package delay

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/interp"
)

// ErrEmptyBuffer is returned when a delay line is given no storage.
var ErrEmptyBuffer = errors.New("delay: buffer must not be empty")

type config struct {
	mode interp.Mode
}

// Option configures a Line.
type Option func(*config)

// WithMode selects the kernel used by ReadFractional. The default is Hermite.
func WithMode(mode interp.Mode) Option {
	return func(cfg *config) {
		cfg.mode = mode
	}
}

// Line is a circular delay line over a caller-provided buffer.
//
// The sample under the head is the one written Len() writes ago; Write
// replaces it and advances.
type Line[T buffer.Sample] struct {
	buf   buffer.MutSlice[T]
	index int
	mode  interp.Mode
}

// New takes over buf (leaving it empty) and returns a delay line of length
// buf.Len().
func New[T buffer.Sample](buf *buffer.MutSlice[T], opts ...Option) (*Line[T], error) {
	if buf.IsEmpty() {
		return nil, ErrEmptyBuffer
	}
	cfg := config{mode: interp.Hermite}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Line[T]{buf: buf.Take(), mode: cfg.mode}, nil
}

// Len returns the delay length in samples.
func (d *Line[T]) Len() int {
	return d.buf.Len()
}

// Mode returns the fractional read kernel.
func (d *Line[T]) Mode() interp.Mode {
	return d.mode
}

// Buffer returns a read-only view of the storage.
func (d *Line[T]) Buffer() buffer.Slice[T] {
	return d.buf.Slice()
}

// Read returns the sample under the head, delayed by exactly Len() samples.
func (d *Line[T]) Read() T {
	return d.buf.GetUnchecked(d.index)
}

// ReadAt returns the sample offset positions from the head, wrapping.
func (d *Line[T]) ReadAt(offset int) T {
	return d.buf.GetWrapped(d.index + offset)
}

// ReadLerpAt reads at a fractional offset from the head with linear
// interpolation, wrapping.
func (d *Line[T]) ReadLerpAt(offset float64) T {
	return d.buf.LerpWrapped(float64(d.index) + offset)
}

// Tap returns the sample written delay writes ago; Tap(1) is the most
// recent one.
func (d *Line[T]) Tap(delay int) T {
	return d.buf.GetWrapped(d.index - delay)
}

// ReadFractional reads delay samples behind the write head with the
// configured kernel. delay is clamped to [0, Len()-1].
func (d *Line[T]) ReadFractional(delay float64) T {
	n := d.buf.Len()
	if delay < 0 || math.IsNaN(delay) {
		delay = 0
	}
	if maxDelay := float64(n - 1); delay > maxDelay {
		delay = maxDelay
	}

	pos := float64(d.index) - delay
	fl := math.Floor(pos)
	p := d.buf.FourWrapped(int(fl) - 1)
	return T(d.mode.Interpolate4(pos-fl, float64(p[0]), float64(p[1]), float64(p[2]), float64(p[3])))
}

// Write stores v under the head and advances it.
func (d *Line[T]) Write(v T) {
	d.buf.AssignUnchecked(d.index, v)
	d.index++
	if d.index == d.buf.Len() {
		d.index = 0
	}
}

// Reset clears the buffer and rewinds the head.
func (d *Line[T]) Reset() {
	d.buf.Zero()
	d.index = 0
}

// ChangeBuffer takes over buf and rewinds the head. The previous buffer is
// released untouched. An empty buf is rejected and the line is unchanged.
func (d *Line[T]) ChangeBuffer(buf *buffer.MutSlice[T]) error {
	if buf.IsEmpty() {
		return ErrEmptyBuffer
	}
	d.buf = buf.Take()
	d.index = 0
	return nil
}
