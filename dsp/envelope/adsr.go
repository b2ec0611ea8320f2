package envelope

import (
	"fmt"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
)

// ADSRStage is the stage an ADSR is in.
type ADSRStage int

const (
	Idle ADSRStage = iota
	StageAttack
	StageDecay
	StageSustain
	StageRelease
)

func (s ADSRStage) String() string {
	switch s {
	case Idle:
		return "idle"
	case StageAttack:
		return "attack"
	case StageDecay:
		return "decay"
	case StageSustain:
		return "sustain"
	case StageRelease:
		return "release"
	default:
		return fmt.Sprintf("ADSRStage(%d)", int(s))
	}
}

// ADSRParams configures an ADSR. Times are in seconds, levels in [0, 1]
// and slopes in [-MaxSlope, MaxSlope].
type ADSRParams struct {
	Attack, Decay, Release                float64
	Peak, Sustain                         float64
	AttackSlope, DecaySlope, ReleaseSlope float64
}

// DefaultADSRParams returns 1 ms attack, 100 ms decay to 0.7 and 200 ms
// release with linear segments.
func DefaultADSRParams() ADSRParams {
	return ADSRParams{
		Attack:  0.001,
		Decay:   0.1,
		Release: 0.2,
		Peak:    1,
		Sustain: 0.7,
	}
}

// ADSR is a gated four-stage envelope. Gate on runs attack to the peak and
// decay to the sustain level, which holds until gate off starts the release
// back to zero.
type ADSR[T buffer.Sample] struct {
	sampleRate float64
	p          ADSRParams

	attackStep, decayStep, releaseStep float64

	begin float64
	t     float64
	value float64
	stage ADSRStage
}

// NewADSR returns an idle ADSR.
func NewADSR[T buffer.Sample](p ADSRParams, opts ...core.ProcessorOption) *ADSR[T] {
	cfg := core.ApplyProcessorOptions(opts...)
	a := &ADSR[T]{sampleRate: cfg.SampleRate}
	a.SetParams(p)
	return a
}

// SetParams replaces the parameters. Levels and slopes are clamped; a
// running stage continues with the new values.
func (a *ADSR[T]) SetParams(p ADSRParams) {
	p.Peak = core.Clamp(p.Peak, 0, 1)
	p.Sustain = core.Clamp(p.Sustain, 0, 1)
	p.AttackSlope = core.Clamp(p.AttackSlope, -MaxSlope, MaxSlope)
	p.DecaySlope = core.Clamp(p.DecaySlope, -MaxSlope, MaxSlope)
	p.ReleaseSlope = core.Clamp(p.ReleaseSlope, -MaxSlope, MaxSlope)
	a.p = p
	a.attackStep = stepFor(p.Attack, a.sampleRate)
	a.decayStep = stepFor(p.Decay, a.sampleRate)
	a.releaseStep = stepFor(p.Release, a.sampleRate)
}

// Params returns the clamped parameters.
func (a *ADSR[T]) Params() ADSRParams { return a.p }

// Stage returns the current stage.
func (a *ADSR[T]) Stage() ADSRStage { return a.stage }

// Value returns the current output without advancing.
func (a *ADSR[T]) Value() T { return T(a.value) }

// GateOn starts the attack from the current value.
func (a *ADSR[T]) GateOn() {
	a.enter(StageAttack)
}

// GateOff starts the release unless the envelope is already idle or
// releasing.
func (a *ADSR[T]) GateOff() {
	if a.stage == Idle || a.stage == StageRelease {
		return
	}
	a.enter(StageRelease)
}

// Reset drops to zero and goes idle.
func (a *ADSR[T]) Reset() {
	a.value, a.begin, a.t = 0, 0, 0
	a.stage = Idle
}

func (a *ADSR[T]) enter(s ADSRStage) {
	a.stage = s
	a.begin = a.value
	a.t = 0
}

// Tick advances one sample and returns the new value.
func (a *ADSR[T]) Tick() T {
	var step, end, slope float64
	var next ADSRStage

	switch a.stage {
	case StageAttack:
		step, end, slope, next = a.attackStep, a.p.Peak, a.p.AttackSlope, StageDecay
	case StageDecay:
		step, end, slope, next = a.decayStep, a.p.Sustain, a.p.DecaySlope, StageSustain
	case StageRelease:
		step, end, slope, next = a.releaseStep, 0, a.p.ReleaseSlope, Idle
	case StageSustain:
		a.value = a.p.Sustain
		return T(a.value)
	default:
		return T(a.value)
	}

	a.t += step
	if a.t >= stageDone {
		a.value = end
		a.enter(next)
		return T(a.value)
	}

	distance := end - a.begin
	if distance < 0 {
		slope = -slope
	}
	a.value = a.begin + distance*normalizedExp(a.t, slope)
	return T(a.value)
}

// Render overwrites buf with the next buf.Len() envelope values.
func (a *ADSR[T]) Render(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, a.Tick())
	}
}

// ProcessBlock multiplies buf by the envelope in place.
func (a *ADSR[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, buf.GetUnchecked(i)*a.Tick())
	}
}
