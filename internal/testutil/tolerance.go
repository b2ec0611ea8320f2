package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
)

// RequireNearlyEqual fails t if |got-want| > eps.
func RequireNearlyEqual(t testing.TB, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); !(diff <= eps) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual[T buffer.Sample](t testing.TB, got buffer.Slice[T], want []T, eps float64) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", got.Len(), len(want))
	}
	for i, g := range got.All() {
		diff := math.Abs(float64(g) - float64(want[i]))
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, g, want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite[T buffer.Sample](t testing.TB, data buffer.Slice[T]) {
	t.Helper()
	for i, v := range data.All() {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest absolute element difference of a and b.
func MaxAbsDiff[T buffer.Sample](a, b buffer.Slice[T]) (float64, error) {
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("length mismatch: %d vs %d", a.Len(), b.Len())
	}
	maxDiff := 0.0
	for i, x := range a.All() {
		maxDiff = max(maxDiff, math.Abs(float64(x)-float64(b.GetUnchecked(i))))
	}
	return maxDiff, nil
}
