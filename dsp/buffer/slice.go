package buffer

// Slice is a read-only view over a contiguous run of samples.
// Copying a Slice copies the view, never the samples. Slices may be shared
// between concurrent readers as long as no MutSlice over an overlapping
// region is written at the same time.
type Slice[T Sample] struct {
	view[T]
}

// FromBuffer returns a read-only view over buf without copying.
// buf should be statically allocated; the view stays valid only as long
// as nobody else re-slices or frees the region.
func FromBuffer[T Sample](buf []T) Slice[T] {
	return Slice[T]{view: viewOf(buf)}
}

// Empty returns a view with a nil address and length 0.
func Empty[T Sample]() Slice[T] {
	return Slice[T]{}
}

// SubSlice returns a view over [start, start+length) of s. It fails with a
// *RangeError when start or length is negative or the range runs past
// Len(). SubSlice(Len(), 0) is valid and empty.
func (s Slice[T]) SubSlice(start, length int) (Slice[T], error) {
	if err := checkRange("subslice", start, length, s.n); err != nil {
		return Slice[T]{}, err
	}
	return Slice[T]{view: s.sub(start, length)}, nil
}

// Equal reports whether s and o have the same length and elements.
func (s Slice[T]) Equal(o Slice[T]) bool {
	return s.equal(o.view)
}
