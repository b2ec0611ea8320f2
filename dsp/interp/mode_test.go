package interp

import (
	"math"
	"testing"
)

func TestModeInterpolate4(t *testing.T) {
	for _, m := range []Mode{Linear, Hermite, Lagrange3, Mode(99)} {
		t.Run(m.String(), func(t *testing.T) {
			if got := m.Interpolate4(0.25, 1, 2, 3, 4); math.Abs(got-2.25) > 1e-12 {
				t.Fatalf("Interpolate4() on ramp = %v, want 2.25", got)
			}
			if got := m.Interpolate4(0.7, 5, 5, 5, 5); math.Abs(got-5) > 1e-12 {
				t.Fatalf("Interpolate4() on DC = %v, want 5", got)
			}
			if got := m.Interpolate4(0, 9, -1, 3, 9); got != -1 {
				t.Fatalf("Interpolate4(t=0) = %v, want -1", got)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if got := Lagrange3.String(); got != "lagrange3" {
		t.Fatalf("String() = %q", got)
	}
	if got := Mode(7).String(); got != "Mode(7)" {
		t.Fatalf("String() = %q", got)
	}
}
