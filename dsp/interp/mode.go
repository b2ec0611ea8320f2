package interp

import "fmt"

// Mode selects the kernel used for fractional reads.
type Mode int

const (
	// Linear blends the two nearest samples.
	Linear Mode = iota
	// Hermite is the 4-point cubic Hermite spline.
	Hermite
	// Lagrange3 is the 4-point cubic Lagrange polynomial.
	Lagrange3
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Hermite:
		return "hermite"
	case Lagrange3:
		return "lagrange3"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Interpolate4 evaluates the kernel between x0 and x1 at t in [0,1], using
// xm1 and x2 as outer neighbours where the kernel needs them.
// Unknown modes fall back to Hermite.
func (m Mode) Interpolate4(t, xm1, x0, x1, x2 float64) float64 {
	switch m {
	case Linear:
		return Lerp(x0, x1, t)
	case Lagrange3:
		return Lagrange4(1+t, xm1, x0, x1, x2)
	default:
		return Hermite4(t, xm1, x0, x1, x2)
	}
}
