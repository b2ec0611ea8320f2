package buffer

import (
	"iter"
	"math"
	"unsafe"

	"github.com/cwbudde/algo-audiotools/dsp/interp"
)

// Sample is the element type of every view.
type Sample interface {
	~float32 | ~float64
}

// maxLagrangeWindow bounds the stack scratch used by LagrangeWrapped.
const maxLagrangeWindow = 100

// view is the raw (address, length) pair shared by Slice and MutSlice.
// The zero value is the empty view. If n > 0, ptr addresses n valid,
// aligned elements for as long as the view is used.
type view[T Sample] struct {
	ptr unsafe.Pointer
	n   int
}

func viewOf[T Sample](buf []T) view[T] {
	if len(buf) == 0 {
		return view[T]{}
	}
	return view[T]{ptr: unsafe.Pointer(unsafe.SliceData(buf)), n: len(buf)}
}

func elemSize[T Sample]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func (v view[T]) at(i int) *T {
	return (*T)(unsafe.Add(v.ptr, i*elemSize[T]()))
}

// sub assumes the range was validated. Zero-length results collapse to the
// empty view so no pointer past the end of a buffer is ever formed.
func (v view[T]) sub(start, length int) view[T] {
	if length == 0 {
		return view[T]{}
	}
	return view[T]{ptr: unsafe.Add(v.ptr, start*elemSize[T]()), n: length}
}

// Len returns the number of elements in the view.
func (v view[T]) Len() int { return v.n }

// IsEmpty reports whether the view has no elements.
func (v view[T]) IsEmpty() bool { return v.n == 0 }

// Pointer returns the address of the first element, or nil for an empty view.
func (v view[T]) Pointer() *T { return (*T)(v.ptr) }

// AsSlice returns the viewed elements in index order without copying.
// The result aliases the backing buffer and must be treated as read-only.
// It is nil for an empty view.
func (v view[T]) AsSlice() []T {
	if v.n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(v.ptr), v.n)
}

// Get returns element i or a *RangeError if i is outside [0, Len()).
func (v view[T]) Get(i int) (T, error) {
	if err := checkIndex("get", i, v.n); err != nil {
		var zero T
		return zero, err
	}
	return *v.at(i), nil
}

// GetUnchecked returns element i without a bounds check.
// The caller guarantees 0 <= i < Len().
func (v view[T]) GetUnchecked(i int) T {
	return *v.at(i)
}

// GetWrapped returns element i modulo Len(); negative indices wrap from the
// end. An empty view yields 0.
func (v view[T]) GetWrapped(i int) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	if i >= 0 && i < v.n {
		return *v.at(i)
	}
	return *v.at(v.wrap(i))
}

// wrap reduces i to [0, n). n must be positive.
func (v view[T]) wrap(i int) int {
	i %= v.n
	if i < 0 {
		i += v.n
	}
	return i
}

// FourWrapped returns the elements at i, i+1, i+2 and i+3, wrapping around
// both ends of the view.
func (v view[T]) FourWrapped(i int) [4]T {
	var out [4]T
	if v.n == 0 {
		return out
	}
	if i >= 0 && i < v.n-3 {
		return [4]T{*v.at(i), *v.at(i + 1), *v.at(i + 2), *v.at(i + 3)}
	}
	j := v.wrap(i)
	for k := range out {
		out[k] = *v.at(j)
		if j++; j == v.n {
			j = 0
		}
	}
	return out
}

// Lerp linearly interpolates at fractional position x. Positions below 0,
// NaN, or beyond the last element return ErrIndexOutOfBound. x == Len()-1
// returns the last element exactly.
func (v view[T]) Lerp(x float64) (T, error) {
	var zero T
	if math.IsNaN(x) || x < 0 || x > float64(v.n-1) {
		start := -1
		if x >= 0 && x <= math.MaxInt32 {
			start = int(x)
		}
		return zero, &RangeError{Op: "lerp", Start: start, Length: 2, Len: v.n, Err: ErrIndexOutOfBound}
	}
	i := int(x)
	frac := x - float64(i)
	if i == v.n-1 {
		return *v.at(i), nil
	}
	return T(interp.Lerp(float64(*v.at(i)), float64(*v.at(i + 1)), frac)), nil
}

// LerpWrapped linearly interpolates at x, wrapping around both ends.
// Non-finite x yields NaN.
func (v view[T]) LerpWrapped(x float64) T {
	if v.n > 0 && !isFinite(x) {
		return T(math.NaN())
	}
	if v.n == 0 {
		var zero T
		return zero
	}
	fl := math.Floor(x)
	i := int(fl)
	a := float64(v.GetWrapped(i))
	b := float64(v.GetWrapped(i + 1))
	return T(interp.Lerp(a, b, x-fl))
}

// LagrangeWrapped evaluates a Lagrange polynomial through window neighbours
// of x, centred on floor(x), wrapping around both ends. window is clamped to
// [2, 100]. Non-finite x yields NaN.
func (v view[T]) LagrangeWrapped(x float64, window int) T {
	if v.n > 0 && !isFinite(x) {
		return T(math.NaN())
	}
	if v.n == 0 {
		var zero T
		return zero
	}
	if window < 2 {
		window = 2
	}
	if window > maxLagrangeWindow {
		window = maxLagrangeWindow
	}

	fl := math.Floor(x)
	base := int(fl)
	lower := 1 - window/2

	var points [maxLagrangeWindow]float64
	for j := 0; j < window; j++ {
		points[j] = float64(v.GetWrapped(base + lower + j))
	}
	return T(interp.Lagrange(points[:window], x-fl-float64(lower)))
}

// LagrangeFourWrapped is the 4-point specialisation of LagrangeWrapped.
func (v view[T]) LagrangeFourWrapped(x float64) T {
	if v.n > 0 && !isFinite(x) {
		return T(math.NaN())
	}
	if v.n == 0 {
		var zero T
		return zero
	}
	fl := math.Floor(x)
	p := v.FourWrapped(int(fl) - 1)
	return T(interp.Lagrange4(x-fl+1, float64(p[0]), float64(p[1]), float64(p[2]), float64(p[3])))
}

// All iterates over (index, element) pairs in order.
func (v view[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, *v.at(i)) {
				return
			}
		}
	}
}

// CopyTo copies min(Len(), len(dst)) elements into dst and returns the count.
func (v view[T]) CopyTo(dst []T) int {
	return copy(dst, v.AsSlice())
}

// EqualSlice reports whether the view and s have the same length and the
// same elements in index order.
func (v view[T]) EqualSlice(s []T) bool {
	if v.n != len(s) {
		return false
	}
	for i, x := range s {
		if *v.at(i) != x {
			return false
		}
	}
	return true
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (v view[T]) equal(o view[T]) bool {
	if v.n != o.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if *v.at(i) != *o.at(i) {
			return false
		}
	}
	return true
}
