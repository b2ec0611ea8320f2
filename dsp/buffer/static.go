package buffer

import "context"

// Static is a writable region whose buffer has a fixed address for the rest
// of the program. Only a Static may cross goroutines through Handoff or be
// driven by a PingPong; a MutSlice over a transient buffer has no such path.
//
// A Static is a token, not a lock. Whoever calls Mut holds the single
// writable handle; the token must not be used to open a second one.
type Static[T Sample] struct {
	v view[T]
}

// FromStatic marks buf as statically allocated. buf should be a
// package-level array (or a slice of one) or a fixed memory-mapped region.
func FromStatic[T Sample](buf []T) Static[T] {
	return Static[T]{v: viewOf(buf)}
}

// AssumeStatic consumes m and returns it as a Static. The caller attests
// that m's buffer is statically allocated.
func AssumeStatic[T Sample](m *MutSlice[T]) Static[T] {
	return Static[T]{v: m.Take().view}
}

// Len returns the number of elements.
func (s Static[T]) Len() int { return s.v.n }

// Pointer returns the address of the first element, or nil when empty.
func (s Static[T]) Pointer() *T { return s.v.Pointer() }

// Slice returns a read-only view of the region.
func (s Static[T]) Slice() Slice[T] { return Slice[T]{view: s.v} }

// Mut opens the writable handle for the region.
func (s Static[T]) Mut() MutSlice[T] { return MutSlice[T]{view: s.v} }

// Handoff moves Static slices between goroutines, typically from a setup
// routine to a real-time callback.
type Handoff[T Sample] struct {
	ch chan Static[T]
}

// NewHandoff returns a Handoff that buffers up to capacity slices.
// A negative capacity is treated as 0 (unbuffered).
func NewHandoff[T Sample](capacity int) *Handoff[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Handoff[T]{ch: make(chan Static[T], capacity)}
}

// Send blocks until s is accepted or ctx is done.
func (h *Handoff[T]) Send(ctx context.Context, s Static[T]) error {
	select {
	case h.ch <- s:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive blocks until a slice arrives or ctx is done.
func (h *Handoff[T]) Receive(ctx context.Context) (Static[T], error) {
	select {
	case s := <-h.ch:
		return s, nil
	case <-ctx.Done():
		return Static[T]{}, ctx.Err()
	}
}

// TrySend offers s without blocking and reports whether it was accepted.
func (h *Handoff[T]) TrySend(s Static[T]) bool {
	select {
	case h.ch <- s:
		return true
	default:
		return false
	}
}

// TryReceive takes a pending slice without blocking.
// Real-time code should use this instead of Receive.
func (h *Handoff[T]) TryReceive() (Static[T], bool) {
	select {
	case s := <-h.ch:
		return s, true
	default:
		return Static[T]{}, false
	}
}
