package fir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/window"
	"github.com/cwbudde/algo-audiotools/internal/testutil"
)

var smoothTaps = [3]float64{0.25, 0.5, 0.25}

func newSmoother(t *testing.T) *Filter[float64] {
	t.Helper()
	hist, _ := testutil.MutBuffer[float64](3)
	f, err := New(buffer.FromBuffer(smoothTaps[:]), &hist)
	if err != nil {
		t.Fatal(err)
	}
	if !hist.IsEmpty() {
		t.Fatal("New did not take over the history handle")
	}
	return f
}

func TestNewErrors(t *testing.T) {
	hist, _ := testutil.MutBuffer[float64](2)
	if _, err := New(buffer.Empty[float64](), &hist); !errors.Is(err, ErrNoTaps) {
		t.Fatalf("empty taps error = %v", err)
	}
	if _, err := New(buffer.FromBuffer(smoothTaps[:]), &hist); !errors.Is(err, ErrHistoryLength) {
		t.Fatalf("short history error = %v", err)
	}
}

func TestImpulseResponse(t *testing.T) {
	f := newSmoother(t)
	if f.Order() != 2 {
		t.Fatalf("Order() = %d, want 2", f.Order())
	}

	buf, data := testutil.MutBuffer[float64](6)
	buf.CopyFrom(testutil.Impulse[float64](6, 0))
	f.ProcessBlock(&buf)

	want := []float64{0.25, 0.5, 0.25, 0, 0, 0}
	testutil.RequireSliceNearlyEqual(t, buffer.FromBuffer(data), want, 1e-15)
}

func TestProcessBlockToAndReset(t *testing.T) {
	f := newSmoother(t)
	src := buffer.FromBuffer(testutil.DC[float64](1, 5))
	dst, data := testutil.MutBuffer[float64](4)

	if n := f.ProcessBlockTo(&dst, src); n != 4 {
		t.Fatalf("ProcessBlockTo() = %d, want 4", n)
	}
	testutil.RequireSliceNearlyEqual(t, buffer.FromBuffer(data), []float64{0.25, 0.75, 1, 1}, 1e-15)

	f.Reset()
	if got := f.ProcessSample(1); got != 0.25 {
		t.Fatalf("after Reset ProcessSample(1) = %v, want 0.25", got)
	}
}

func TestSetTaps(t *testing.T) {
	f := newSmoother(t)
	ident := []float64{1, 0, 0}
	if err := f.SetTaps(buffer.FromBuffer(ident)); err != nil {
		t.Fatal(err)
	}
	if got := f.ProcessSample(0.7); got != 0.7 {
		t.Fatalf("identity tap output = %v", got)
	}
	if err := f.SetTaps(buffer.FromBuffer(ident[:2])); !errors.Is(err, ErrHistoryLength) {
		t.Fatalf("SetTaps(short) error = %v", err)
	}
}

func TestResponse(t *testing.T) {
	f := newSmoother(t)
	testutil.RequireNearlyEqual(t, f.MagnitudeDB(0, 48000), 0, 1e-12)
	if db := f.MagnitudeDB(24000, 48000); db > -200 {
		t.Fatalf("Nyquist magnitude = %v dB", db)
	}
}

func TestWindowedSinc(t *testing.T) {
	tapsBuf, taps := testutil.MutBuffer[float64](63)
	if err := WindowedSinc(&tapsBuf, 4000, 48000, window.TypeBlackman); err != nil {
		t.Fatal(err)
	}

	sum := 0.0
	for i := range taps {
		sum += taps[i]
		if math.Abs(taps[i]-taps[len(taps)-1-i]) > 1e-12 {
			t.Fatalf("taps not symmetric at %d", i)
		}
	}
	testutil.RequireNearlyEqual(t, sum, 1, 1e-12)

	hist, _ := testutil.MutBuffer[float64](63)
	f, err := New(tapsBuf.Slice(), &hist)
	if err != nil {
		t.Fatal(err)
	}
	if db := f.MagnitudeDB(1000, 48000); math.Abs(db) > 0.1 {
		t.Fatalf("passband at 1 kHz = %v dB", db)
	}
	if db := f.MagnitudeDB(12000, 48000); db > -60 {
		t.Fatalf("stopband at 12 kHz = %v dB", db)
	}

	if err := WindowedSinc(&tapsBuf, 30000, 48000, window.TypeHann); !errors.Is(err, ErrCutoff) {
		t.Fatalf("cutoff above nyquist error = %v", err)
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	tapsBuf, _ := testutil.MutBuffer[float32](64)
	for i := range 64 {
		tapsBuf.AssignUnchecked(i, 1.0/64)
	}
	hist, _ := testutil.MutBuffer[float32](64)
	f, err := New(tapsBuf.Slice(), &hist)
	if err != nil {
		b.Fatal(err)
	}
	buf, _ := testutil.MutBuffer[float32](512)

	b.ReportAllocs()
	for range b.N {
		f.ProcessBlock(&buf)
	}
}
