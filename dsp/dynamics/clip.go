package dynamics

import (
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
)

// ClipMode selects a clipping curve.
type ClipMode int

const (
	// ClipHard clamps to [-1, 1].
	ClipHard ClipMode = iota
	// ClipTanh saturates with tanh.
	ClipTanh
	// ClipCubic uses 1.5x - 0.5x^3, reaching 1 with zero slope at |x| = 1.
	ClipCubic
)

// Clip applies mode to one sample. Unknown modes clip hard.
func Clip[T buffer.Sample](mode ClipMode, x T) T {
	switch mode {
	case ClipTanh:
		return T(math.Tanh(float64(x)))
	case ClipCubic:
		if x >= 1 {
			return 1
		}
		if x <= -1 {
			return -1
		}
		return 1.5*x - 0.5*x*x*x
	default:
		return min(max(x, -1), 1)
	}
}

// ClipBlock applies mode to every sample of buf after multiplying by drive.
func ClipBlock[T buffer.Sample](buf *buffer.MutSlice[T], mode ClipMode, drive T) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, Clip(mode, buf.GetUnchecked(i)*drive))
	}
}
