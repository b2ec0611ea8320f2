package dynamics

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-audiotools/dsp/core"
	"github.com/cwbudde/algo-audiotools/internal/testutil"
)

func TestNewCompressorDefaults(t *testing.T) {
	c, err := NewCompressor[float64]()
	if err != nil {
		t.Fatal(err)
	}
	if c.Threshold() != -20 || c.Ratio() != 4 || c.Knee() != 6 || !c.AutoMakeup() {
		t.Fatalf("unexpected defaults: %v %v %v %v", c.Threshold(), c.Ratio(), c.Knee(), c.AutoMakeup())
	}
	testutil.RequireNearlyEqual(t, c.MakeupGain(), 15, 1e-12)

	if _, err := NewCompressor[float64](core.WithSampleRate(math.Inf(1))); err != nil {
		t.Fatalf("ignored infinite sample rate option error = %v", err)
	}

	infRate := func(cfg *core.ProcessorConfig) { cfg.SampleRate = math.Inf(1) }
	if _, err := NewCompressor[float64](infRate); !errors.Is(err, ErrSampleRate) {
		t.Fatalf("infinite sample rate error = %v, want ErrSampleRate", err)
	}
	if err := c.SetSampleRate(math.Inf(1)); !errors.Is(err, ErrSampleRate) {
		t.Fatalf("SetSampleRate(+Inf) error = %v, want ErrSampleRate", err)
	}
}

func TestSetterRanges(t *testing.T) {
	c, _ := NewCompressor[float32]()
	for name, err := range map[string]error{
		"threshold": c.SetThreshold(3),
		"ratio":     c.SetRatio(0.5),
		"knee":      c.SetKnee(-1),
		"attack":    c.SetAttack(math.NaN()),
		"release":   c.SetRelease(10000),
		"makeup":    c.SetMakeupGain(math.Inf(1)),
	} {
		if !errors.Is(err, ErrParameterRange) {
			t.Fatalf("%s error = %v, want ErrParameterRange", name, err)
		}
	}
	if err := c.SetSampleRate(0); !errors.Is(err, ErrSampleRate) {
		t.Fatalf("SetSampleRate(0) error = %v", err)
	}
}

func TestHardKneeTransferCurve(t *testing.T) {
	c, _ := NewCompressor[float64]()
	if err := c.SetKnee(0); err != nil {
		t.Fatal(err)
	}
	if err := c.SetMakeupGain(0); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		inDB, outDB float64
	}{
		{-40, -40},
		{-20, -20},
		{0, -15},
		{-8, -17},
	}
	for _, tt := range tests {
		got := core.LinearToDB(c.OutputLevel(core.DBToLinear(tt.inDB)))
		testutil.RequireNearlyEqual(t, got, tt.outDB, 1e-9)
	}
}

func TestSoftKneeIsContinuous(t *testing.T) {
	c, _ := NewCompressor[float64]()
	_ = c.SetMakeupGain(0)
	_ = c.SetKnee(12)

	prev := c.OutputLevel(core.DBToLinear(-40))
	for db := -39.9; db <= 0; db += 0.1 {
		out := c.OutputLevel(core.DBToLinear(db))
		if out < prev {
			t.Fatalf("transfer curve not monotonic at %v dB", db)
		}
		prev = out
	}

	// Half a knee below threshold is untouched.
	testutil.RequireNearlyEqual(t, core.LinearToDB(c.OutputLevel(core.DBToLinear(-26))), -26, 1e-9)
	// At threshold the knee has applied (w/2)^2/(2w) = w/8 of overshoot.
	testutil.RequireNearlyEqual(t, core.LinearToDB(c.OutputLevel(core.DBToLinear(-20))), -20-1.5*0.75, 1e-9)
}

func TestRatioOneIsTransparent(t *testing.T) {
	c, _ := NewCompressor[float64]()
	_ = c.SetRatio(1)
	for _, x := range []float64{0.01, 0.5, 1, -0.9} {
		if got := c.Tick(x); math.Abs(got-x) > 1e-12 {
			t.Fatalf("Tick(%v) = %v with ratio 1", x, got)
		}
	}
}

func TestProcessBlockReducesLoudSignal(t *testing.T) {
	c, err := NewCompressor[float64](core.WithSampleRate(48000))
	if err != nil {
		t.Fatal(err)
	}
	_ = c.SetMakeupGain(0)
	_ = c.SetAttack(0.1)

	buf, data := testutil.MutBuffer[float64](4800)
	buf.Fill(1)
	c.ProcessBlock(&buf)

	testutil.RequireFinite(t, buf.Slice())
	if last := data[len(data)-1]; last > 0.3 || last < 0.1 {
		t.Fatalf("settled output = %v, want near -15 dB", last)
	}

	m := c.Metrics()
	if m.InputPeak != 1 || m.GainReduction >= 1 || m.OutputPeak > 1 {
		t.Fatalf("metrics = %+v", m)
	}

	c.Reset()
	if m := c.Metrics(); m.GainReduction != 1 || m.InputPeak != 0 {
		t.Fatalf("metrics after Reset = %+v", m)
	}
}

func BenchmarkCompressorProcessBlock(b *testing.B) {
	c, _ := NewCompressor[float32]()
	buf, _ := testutil.MutBuffer[float32](512)
	noise := testutil.DeterministicNoise[float32](1, 1, 512)

	b.ReportAllocs()
	for range b.N {
		buf.CopyFrom(noise)
		c.ProcessBlock(&buf)
	}
}
