package dynamics

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
)

const (
	// MaxBitReduction is the largest depth BitReduce accepts.
	MaxBitReduction = 30

	// bitReduceRange maps [-1, 1] onto the 31-bit magnitude of a signed int32.
	bitReduceRange = 0x7FFFFFFF
)

var (
	// ErrOverBitReduction is returned for a depth beyond what the sample
	// format can drop.
	ErrOverBitReduction = errors.New("dynamics: bit reduction depth out of range")
	// ErrInputRange is returned for a sample outside [-1, 1] or NaN.
	ErrInputRange = errors.New("dynamics: input outside [-1, 1]")
)

// BitReduce drops the lowest depth bits of x's 31-bit fixed-point magnitude.
// x must lie in [-1, 1] and depth in [0, MaxBitReduction]. Depth 0 returns
// x unchanged.
func BitReduce[T buffer.Sample](x T, depth int) (T, error) {
	if depth < 0 || depth > MaxBitReduction {
		return x, fmt.Errorf("%w: %d", ErrOverBitReduction, depth)
	}
	if !(x >= -1 && x <= 1) {
		return x, fmt.Errorf("%w: %v", ErrInputRange, x)
	}
	return BitReduceUnchecked(x, depth), nil
}

// BitReduceUnchecked is BitReduce without validation. The caller guarantees
// x in [-1, 1] and depth in [0, MaxBitReduction].
func BitReduceUnchecked[T buffer.Sample](x T, depth int) T {
	if depth == 0 || x == 0 {
		return x
	}
	mag := math.Abs(float64(x))
	scaled := uint32(mag * bitReduceRange)
	scaled = (scaled >> depth) << depth
	out := float64(scaled) / bitReduceRange
	if x < 0 {
		out = -out
	}
	return T(out)
}

// BitReduceBlock bit-reduces every sample of buf in place. Samples outside
// [-1, 1] are clamped first and NaN becomes 0.
func BitReduceBlock[T buffer.Sample](buf *buffer.MutSlice[T], depth int) error {
	if depth < 0 || depth > MaxBitReduction {
		return fmt.Errorf("%w: %d", ErrOverBitReduction, depth)
	}
	for i := range buf.Len() {
		x := buf.GetUnchecked(i)
		if math.IsNaN(float64(x)) {
			x = 0
		}
		buf.AssignUnchecked(i, BitReduceUnchecked(min(max(x, -1), 1), depth))
	}
	return nil
}

// MantissaBits returns the number of stored mantissa bits of T: 23 for
// float32 and 52 for float64.
func MantissaBits[T buffer.Sample]() int {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return 23
	}
	return 52
}

// BitReduceExp clears the lowest depth bits of x's IEEE-754 mantissa, so the
// step size scales with the magnitude of x. depth must lie in
// [0, MantissaBits[T]()].
func BitReduceExp[T buffer.Sample](x T, depth int) (T, error) {
	if depth < 0 || depth > MantissaBits[T]() {
		return x, fmt.Errorf("%w: %d", ErrOverBitReduction, depth)
	}
	return BitReduceExpUnchecked(x, depth), nil
}

// BitReduceExpUnchecked is BitReduceExp without validating depth.
func BitReduceExpUnchecked[T buffer.Sample](x T, depth int) T {
	if depth == 0 {
		return x
	}
	if MantissaBits[T]() == 23 {
		mask := ^uint32(0) << depth
		return T(math.Float32frombits(math.Float32bits(float32(x)) & mask))
	}
	mask := ^uint64(0) << depth
	return T(math.Float64frombits(math.Float64bits(float64(x)) & mask))
}

// BitReduceExpBlock applies BitReduceExp to every sample of buf in place.
func BitReduceExpBlock[T buffer.Sample](buf *buffer.MutSlice[T], depth int) error {
	if depth < 0 || depth > MantissaBits[T]() {
		return fmt.Errorf("%w: %d", ErrOverBitReduction, depth)
	}
	for i := range buf.Len() {
		buf.AssignUnchecked(i, BitReduceExpUnchecked(buf.GetUnchecked(i), depth))
	}
	return nil
}
