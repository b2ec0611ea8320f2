package interp

import (
	"errors"
	"math"
)

var (
	ErrInputNaN           = errors.New("interp: input is NaN")
	ErrInputInfinite      = errors.New("interp: input is infinite")
	ErrInterpolationRange = errors.New("interp: fraction must be in [0,1]")
)

// Lerp blends a and b by t without validation.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// LerpChecked is Lerp with its inputs validated.
func LerpChecked(a, b, t float64) (float64, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, ErrInputNaN
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0, ErrInputInfinite
	}
	if t < 0 || t > 1 || math.IsNaN(t) {
		return 0, ErrInterpolationRange
	}
	return Lerp(a, b, t), nil
}

// LagrangeInterpolator provides configurable fractional interpolation.
type LagrangeInterpolator struct {
	order int
}

// NewLagrangeInterpolator creates an interpolator.
// order: 1 = linear, 3 = cubic 4-point Lagrange.
func NewLagrangeInterpolator(order int) *LagrangeInterpolator {
	return &LagrangeInterpolator{order: order}
}

// Interpolate interpolates around frac in [0,1].
// For order 1, samples must contain at least 2 values.
// For order 3, samples must contain at least 4 values and interpolates between samples[1] and samples[2].
func (l *LagrangeInterpolator) Interpolate(samples []float64, frac float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	if len(samples) < 2 {
		return samples[0]
	}
	if l.order == 3 && len(samples) >= 4 {
		return Lagrange4(1+frac, samples[0], samples[1], samples[2], samples[3])
	}
	return Lerp(samples[0], samples[1], frac)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Lagrange4 evaluates the cubic through (0,p0), (1,p1), (2,p2), (3,p3) at x.
func Lagrange4(x, p0, p1, p2, p3 float64) float64 {
	d0, d1, d2, d3 := x, x-1, x-2, x-3
	return -p0*d1*d2*d3/6 +
		p1*d0*d2*d3/2 -
		p2*d0*d1*d3/2 +
		p3*d0*d1*d2/6
}

// Lagrange evaluates the polynomial through (i, points[i]) at x.
// An empty input yields 0.
func Lagrange(points []float64, x float64) float64 {
	var y float64
	for i, p := range points {
		term := p
		for j := range points {
			if i != j {
				term *= (x - float64(j)) / float64(i-j)
			}
		}
		y += term
	}
	return y
}
