package buffer

import "unsafe"

// noCopy makes go vet's copylocks check flag copies of the enclosing struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// MutSlice is the exclusive read/write handle over a contiguous run of
// samples. Exactly one MutSlice should be live per region; hand it on with
// Take rather than copying it. The zero value is the empty slice.
type MutSlice[T Sample] struct {
	_ noCopy
	view[T]
}

// FromBufferMut returns the writable handle over buf without copying.
// The caller gives up writing to buf directly while the handle is in use.
func FromBufferMut[T Sample](buf []T) MutSlice[T] {
	return MutSlice[T]{view: viewOf(buf)}
}

// EmptyMut returns a writable handle with a nil address and length 0.
// It is always safe to use and is the usual starting point for a slice that
// is pointed at its buffer later with ChangeBufferUnchecked.
func EmptyMut[T Sample]() MutSlice[T] {
	return MutSlice[T]{}
}

// Take moves the handle out of m and leaves m empty.
func (m *MutSlice[T]) Take() MutSlice[T] {
	v := m.view
	m.view = view[T]{}
	return MutSlice[T]{view: v}
}

// Slice returns a read-only view of the same region.
func (m *MutSlice[T]) Slice() Slice[T] {
	return Slice[T]{view: m.view}
}

// AsMutSlice returns the viewed elements as a writable Go slice aliasing the
// backing buffer. It is nil for an empty handle.
func (m *MutSlice[T]) AsMutSlice() []T {
	return m.AsSlice()
}

// Assign stores value at index i or returns a *RangeError.
func (m *MutSlice[T]) Assign(i int, value T) error {
	if err := checkIndex("assign", i, m.n); err != nil {
		return err
	}
	*m.at(i) = value
	return nil
}

// AssignUnchecked stores value at index i without a bounds check.
// The caller guarantees 0 <= i < Len().
func (m *MutSlice[T]) AssignUnchecked(i int, value T) {
	*m.at(i) = value
}

// SubSlice returns a read-only view over [start, start+length).
func (m *MutSlice[T]) SubSlice(start, length int) (Slice[T], error) {
	return m.Slice().SubSlice(start, length)
}

// SubSliceMut returns a writable handle over [start, start+length). The
// parent must not be used to write the same range while the result is live.
func (m *MutSlice[T]) SubSliceMut(start, length int) (MutSlice[T], error) {
	if err := checkRange("subslice", start, length, m.n); err != nil {
		return MutSlice[T]{}, err
	}
	return MutSlice[T]{view: m.sub(start, length)}, nil
}

// Equal reports whether m and o have the same length and elements.
func (m *MutSlice[T]) Equal(o Slice[T]) bool {
	return m.equal(o.view)
}

// Fill sets every element to value.
func (m *MutSlice[T]) Fill(value T) {
	for i := 0; i < m.n; i++ {
		*m.at(i) = value
	}
}

// Zero sets every element to 0.
func (m *MutSlice[T]) Zero() {
	m.Fill(0)
}

// CopyFrom copies min(Len(), len(src)) elements from src and returns the count.
func (m *MutSlice[T]) CopyFrom(src []T) int {
	return copy(m.AsSlice(), src)
}

// ChangeBufferUnchecked re-points m at length elements starting at ptr.
// A nil ptr or a length <= 0 leaves m empty.
//
// Nothing is checked. The caller attests that:
//   - [ptr, ptr+length) is one statically allocated buffer of T whose
//     address is fixed for the rest of the program;
//   - no other writable handle over that region is in use;
//   - nobody still reads or writes the previous buffer through views taken
//     from m before the call.
//
// Sub-slices derived earlier keep pointing at the previous buffer.
// Violating the contract is a memory-safety bug, not a reported error.
func (m *MutSlice[T]) ChangeBufferUnchecked(ptr *T, length int) {
	if ptr == nil || length <= 0 {
		m.view = view[T]{}
		return
	}
	m.view = view[T]{ptr: unsafe.Pointer(ptr), n: length}
}

// ChangeSliceUnchecked re-points m at buf. It has the same contract as
// ChangeBufferUnchecked.
func (m *MutSlice[T]) ChangeSliceUnchecked(buf []T) {
	m.view = viewOf(buf)
}
