package oscillator

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
)

func TestFunctionalBounds(t *testing.T) {
	for _, w := range []Waveform{Sine, Rectangle, Sawtooth, Triangle} {
		t.Run(w.String(), func(t *testing.T) {
			o, err := NewFunctional[float32](1000, w)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 96; i++ {
				if v := o.Next(); v < -1 || v > 1 {
					t.Fatalf("sample %d = %v, out of [-1, 1]", i, v)
				}
			}
		})
	}
}

func TestWaveformAt(t *testing.T) {
	tests := []struct {
		w     Waveform
		phase float64
		want  float64
	}{
		{Sine, 0.25, 1},
		{Sine, 0.75, -1},
		{Rectangle, 0.1, -1},
		{Rectangle, 0.6, 1},
		{Sawtooth, 0, -1},
		{Sawtooth, 0.75, 0.5},
		{Triangle, 0, -1},
		{Triangle, 0.5, 1},
		{Triangle, 0.25, 0},
	}
	for _, tt := range tests {
		if got := tt.w.At(tt.phase); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("%v.At(%v) = %v, want %v", tt.w, tt.phase, got, tt.want)
		}
	}
}

func TestParseWaveform(t *testing.T) {
	for _, w := range []Waveform{Sine, Rectangle, Sawtooth, Triangle} {
		got, err := ParseWaveform(w.String())
		if err != nil || got != w {
			t.Fatalf("ParseWaveform(%q) = %v, %v", w.String(), got, err)
		}
	}
	if _, err := ParseWaveform("square"); err == nil {
		t.Fatal("expected error for unknown waveform")
	}
	if got := Waveform(9).String(); got != "Waveform(9)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestFunctionalProcessBlock(t *testing.T) {
	ref, _ := NewFunctional[float64](440, Sawtooth, core.WithSampleRate(44100))
	o, _ := NewFunctional[float64](440, Sawtooth, core.WithSampleRate(44100))

	raw := make([]float64, 64)
	blk := buffer.FromBufferMut(raw)
	o.ProcessBlock(&blk)
	for i, v := range raw {
		if want := ref.Next(); v != want {
			t.Fatalf("sample %d = %v, want %v", i, v, want)
		}
	}

	o.SetWaveform(Triangle)
	if o.Waveform() != Triangle {
		t.Fatal("SetWaveform() not applied")
	}
	if o.Accumulator().Freq() != 440 {
		t.Fatalf("Accumulator().Freq() = %v", o.Accumulator().Freq())
	}
}

func TestFillSine(t *testing.T) {
	raw := make([]float64, 4)
	dst := buffer.FromBufferMut(raw)
	FillSine(&dst)
	want := []float64{0, 1, 0, -1}
	for i := range want {
		if math.Abs(raw[i]-want[i]) > 1e-12 {
			t.Fatalf("FillSine() = %v, want %v", raw, want)
		}
	}
}

func TestWavetableMatchesSine(t *testing.T) {
	table := make([]float64, 2048)
	dst := buffer.FromBufferMut(table)
	FillSine(&dst)

	wt, err := NewWavetable(buffer.FromBuffer(table), 1000, core.WithSampleRate(48000))
	if err != nil {
		t.Fatal(err)
	}
	ref, _ := NewFunctional[float64](1000, Sine, core.WithSampleRate(48000))

	for i := 0; i < 200; i++ {
		if got, want := wt.Next(), ref.Next(); math.Abs(got-want) > 1e-5 {
			t.Fatalf("sample %d: wavetable %v, sine %v", i, got, want)
		}
	}

	blk := buffer.FromBufferMut(make([]float64, 16))
	wt.ProcessBlock(&blk)
	if wt.Accumulator().SampleRate() != 48000 {
		t.Fatal("unexpected sample rate")
	}
}

func TestWavetableErrors(t *testing.T) {
	if _, err := NewWavetable(buffer.Empty[float32](), 100); err != ErrEmptyTable {
		t.Fatalf("empty table error = %v", err)
	}
	if _, err := NewWavetable(buffer.FromBuffer([]float32{1}), 0); err != ErrFrequencyZero {
		t.Fatalf("zero freq error = %v", err)
	}
}

func TestNoise(t *testing.T) {
	a := NewNoise[float64](-0.5, 7)
	b := NewNoise[float64](0.5, 7)

	raw := make([]float64, 256)
	blk := buffer.FromBufferMut(raw)
	a.ProcessBlock(&blk)
	for i, v := range raw {
		if v < -0.5 || v > 0.5 {
			t.Fatalf("sample %d = %v out of range", i, v)
		}
		if w := b.Next(); w != v {
			t.Fatalf("sample %d not deterministic: %v vs %v", i, v, w)
		}
	}
}

func BenchmarkFunctionalSine(b *testing.B) {
	o, _ := NewFunctional[float32](440, Sine)
	blk := buffer.FromBufferMut(make([]float32, 256))
	for i := 0; i < b.N; i++ {
		o.ProcessBlock(&blk)
	}
}
