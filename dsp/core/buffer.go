package core

import (
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-vecmath"
)

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in dst to 0.
func Zero[T buffer.Sample](dst *buffer.MutSlice[T]) {
	dst.Zero()
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto[T buffer.Sample](dst *buffer.MutSlice[T], src buffer.Slice[T]) int {
	return dst.CopyFrom(src.AsSlice())
}

// Gain multiplies dst element-wise by gains over their common length.
func Gain(dst *buffer.MutSlice[float64], gains buffer.Slice[float64]) {
	n := min(dst.Len(), gains.Len())
	if n == 0 {
		return
	}
	vecmath.MulBlockInPlace(dst.AsMutSlice()[:n], gains.AsSlice()[:n])
}

// Scale multiplies every element of dst by g.
func Scale(dst *buffer.MutSlice[float64], g float64) {
	if dst.IsEmpty() {
		return
	}
	vecmath.ScaleBlockInPlace(dst.AsMutSlice(), g)
}

// Mix adds src into dst over their common length.
func Mix(dst *buffer.MutSlice[float64], src buffer.Slice[float64]) {
	n := min(dst.Len(), src.Len())
	if n == 0 {
		return
	}
	vecmath.AddBlockInPlace(dst.AsMutSlice()[:n], src.AsSlice()[:n])
}

// Peak returns the largest absolute sample value, or 0 for an empty slice.
func Peak(s buffer.Slice[float64]) float64 {
	if s.IsEmpty() {
		return 0
	}
	return vecmath.MaxAbs(s.AsSlice())
}

// RMS returns the root-mean-square level, or 0 for an empty slice.
func RMS(s buffer.Slice[float64]) float64 {
	if s.IsEmpty() {
		return 0
	}
	x := s.AsSlice()
	return math.Sqrt(vecmath.DotProduct(x, x) / float64(len(x)))
}
