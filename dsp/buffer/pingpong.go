package buffer

import "fmt"

// PingPong alternates one writable handle between two static buffers of
// equal length so one can be processed while the other is filled or
// drained. Swapping re-points the handle; nothing is copied or allocated.
type PingPong[T Sample] struct {
	bufs   [2]Static[T]
	active MutSlice[T]
	index  int
}

// NewPingPong returns a PingPong whose active buffer is a.
func NewPingPong[T Sample](a, b Static[T]) (*PingPong[T], error) {
	if a.Len() == 0 || b.Len() == 0 {
		return nil, ErrEmptyBuffer
	}
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, a.Len(), b.Len())
	}
	p := &PingPong[T]{bufs: [2]Static[T]{a, b}}
	p.active.ChangeBufferUnchecked(a.Pointer(), a.Len())
	return p, nil
}

// Active returns the handle over the buffer currently being processed.
// It stays the same handle across swaps; only its target changes.
func (p *PingPong[T]) Active() *MutSlice[T] {
	return &p.active
}

// Inactive returns a read-only view of the other buffer.
func (p *PingPong[T]) Inactive() Slice[T] {
	return p.bufs[1-p.index].Slice()
}

// Index returns 0 or 1, the index of the active buffer.
func (p *PingPong[T]) Index() int {
	return p.index
}

// Len returns the length of each buffer.
func (p *PingPong[T]) Len() int {
	return p.bufs[0].Len()
}

// Swap makes the inactive buffer active. Views taken from Active before the
// swap keep pointing at the old buffer; the caller must drop them.
func (p *PingPong[T]) Swap() {
	p.index ^= 1
	next := p.bufs[p.index]
	p.active.ChangeBufferUnchecked(next.Pointer(), next.Len())
}
