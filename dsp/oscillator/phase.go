package oscillator

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/core"
)

var (
	// ErrFrequencyZero reports a frequency of exactly 0 Hz.
	ErrFrequencyZero = errors.New("oscillator: frequency is zero")
	// ErrFrequencyNegative reports a frequency below 0 Hz.
	ErrFrequencyNegative = errors.New("oscillator: frequency is negative")
	// ErrAboveNyquist reports a frequency above half the sample rate, or NaN.
	ErrAboveNyquist = errors.New("oscillator: frequency is above Nyquist")
	// ErrSampleRate reports a non-positive, NaN or infinite sample rate.
	ErrSampleRate = errors.New("oscillator: sample rate must be positive and finite")
)

// cycle is the number of counter steps in one period.
const cycle = 1 << 32

// PhaseAccumulator is a wrapping phase counter. One full turn of the uint32
// range is one period, so wrapping at the end of a cycle is exact.
type PhaseAccumulator struct {
	counter    uint32
	step       uint32
	shift      uint32
	freq       float64
	sampleRate float64
}

// NewPhaseAccumulator returns an accumulator at freq Hz. The sample rate is
// taken from the processor options (48 kHz by default).
func NewPhaseAccumulator(freq float64, opts ...core.ProcessorOption) (*PhaseAccumulator, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	p := &PhaseAccumulator{sampleRate: cfg.SampleRate}
	if err := p.SetFreq(freq); err != nil {
		return nil, err
	}
	return p, nil
}

// SetFreq validates and sets the frequency in Hz.
func (p *PhaseAccumulator) SetFreq(freq float64) error {
	switch {
	case freq == 0:
		return ErrFrequencyZero
	case freq < 0:
		return ErrFrequencyNegative
	case freq > p.sampleRate/2 || math.IsNaN(freq):
		return ErrAboveNyquist
	}
	p.SetFreqUnchecked(freq)
	return nil
}

// SetFreqUnchecked sets the frequency without validation. Frequencies
// outside (0, Nyquist] alias; negative ones run the phase backwards.
func (p *PhaseAccumulator) SetFreqUnchecked(freq float64) {
	p.freq = freq
	p.updateStep()
}

// SetSampleRate changes the sample rate, keeping the frequency.
func (p *PhaseAccumulator) SetSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return ErrSampleRate
	}
	p.sampleRate = sampleRate
	p.updateStep()
	return nil
}

func (p *PhaseAccumulator) updateStep() {
	x := p.freq / p.sampleRate
	x -= math.Floor(x)
	if math.IsNaN(x) {
		x = 0
	}
	p.step = uint32(x * cycle)
}

// SetPhaseShift offsets the output phase by frac of a cycle.
func (p *PhaseAccumulator) SetPhaseShift(frac float64) {
	frac -= math.Floor(frac)
	p.shift = uint32(frac * cycle)
}

// Freq returns the frequency in Hz.
func (p *PhaseAccumulator) Freq() float64 { return p.freq }

// SampleRate returns the sample rate in Hz.
func (p *PhaseAccumulator) SampleRate() float64 { return p.sampleRate }

// Next advances one sample and returns the shifted phase.
func (p *PhaseAccumulator) Next() uint32 {
	p.counter += p.step
	return p.counter + p.shift
}

// NextNormalized advances one sample and returns the phase in [0, 1).
func (p *PhaseAccumulator) NextNormalized() float64 {
	return float64(p.Next()) / cycle
}

// Reset rewinds the counter to zero phase.
func (p *PhaseAccumulator) Reset() {
	p.counter = 0
}
