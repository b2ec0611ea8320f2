package dynamics

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audiotools/internal/testutil"
)

func TestClip(t *testing.T) {
	tests := []struct {
		mode ClipMode
		in   float64
		want float64
	}{
		{ClipHard, 1.5, 1},
		{ClipHard, -3, -1},
		{ClipHard, 0.25, 0.25},
		{ClipTanh, 0, 0},
		{ClipTanh, 1, math.Tanh(1)},
		{ClipCubic, 2, 1},
		{ClipCubic, -2, -1},
		{ClipCubic, 0.5, 0.6875},
		{ClipMode(9), 4, 1},
	}
	for _, tt := range tests {
		if got := Clip(tt.mode, tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("Clip(%v, %v) = %v, want %v", tt.mode, tt.in, got, tt.want)
		}
	}
}

func TestClipBlockBounds(t *testing.T) {
	for _, mode := range []ClipMode{ClipHard, ClipTanh, ClipCubic} {
		buf, data := testutil.MutBuffer[float32](256)
		buf.CopyFrom(testutil.DeterministicNoise[float32](7, 4, 256))
		ClipBlock(&buf, mode, 2)
		for i, v := range data {
			if v < -1 || v > 1 {
				t.Fatalf("mode %v: data[%d] = %v", mode, i, v)
			}
		}
	}
}
