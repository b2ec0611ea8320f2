package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMagnitudeMatchesResponse(t *testing.T) {
	c := testCoefficients()
	for _, f := range []float64{0, 100, 1000, 5000, 12000, 23999} {
		h := c.Response(f, 48000)
		want := real(h)*real(h) + imag(h)*imag(h)
		if got := c.MagnitudeSquared(f, 48000); !almostEqual(got, want, 1e-9) {
			t.Fatalf("f=%v: MagnitudeSquared=%v, |Response|^2=%v", f, got, want)
		}
	}
}

func TestMagnitudeDCAndNyquist(t *testing.T) {
	c := testCoefficients()
	// DC gain = (B0+B1+B2)/(1+A1+A2) = 1/0.84
	if got, want := c.MagnitudeDB(0, 48000), 20*math.Log10(1/0.84); !almostEqual(got, want, 1e-9) {
		t.Fatalf("DC: %v dB, want %v", got, want)
	}
	if got := c.MagnitudeSquared(24000, 48000); !almostEqual(got, 0, 1e-12) {
		t.Fatalf("Nyquist |H|^2 = %v, want 0", got)
	}
}

func TestPhaseZeroAtDC(t *testing.T) {
	if got := testCoefficients().Phase(0, 48000); !almostEqual(got, 0, eps) {
		t.Fatalf("Phase(0) = %v, want 0", got)
	}
}

func TestPolesAndZeros(t *testing.T) {
	c := testCoefficients()
	// 1 - 0.2 z^-1 + 0.04 z^-2 has roots 0.1 ± j*sqrt(0.03).
	p := c.Poles()
	for _, root := range p {
		if !almostEqual(real(root), 0.1, eps) || !almostEqual(math.Abs(imag(root)), math.Sqrt(0.03), eps) {
			t.Fatalf("Poles() = %v", p)
		}
	}
	// 0.25 (1 + z^-1)^2 has a double zero at -1.
	for _, z := range c.Zeros() {
		if cmplx.Abs(z+1) > 1e-6 {
			t.Fatalf("Zeros() = %v", c.Zeros())
		}
	}
	if !c.IsStable() {
		t.Fatal("IsStable() = false for poles at radius 0.2")
	}
	if (Coefficients{B0: 1, A1: -2, A2: 1}).IsStable() {
		t.Fatal("IsStable() = true for a double pole at z=1")
	}
}

func TestQuadraticRootsDegenerate(t *testing.T) {
	if got := quadraticRoots(0, 0, 1); got != [2]complex128{} {
		t.Fatalf("quadraticRoots(0,0,1) = %v", got)
	}
	if got := quadraticRoots(0, 2, 1); got[0] != complex(-0.5, 0) {
		t.Fatalf("quadraticRoots(0,2,1) = %v", got)
	}
}

func TestChainResponse(t *testing.T) {
	c := NewChain[float64](twoSections(), WithGain(2))
	s := twoSections()
	want := 2 * s[0].Response(1000, 48000) * s[1].Response(1000, 48000)
	if got := c.Response(1000, 48000); cmplx.Abs(got-want) > 1e-12 {
		t.Fatalf("Response() = %v, want %v", got, want)
	}
	if got, w := c.MagnitudeDB(1000, 48000), 20*math.Log10(cmplx.Abs(want)); !almostEqual(got, w, 1e-9) {
		t.Fatalf("MagnitudeDB() = %v, want %v", got, w)
	}
}
