// Package envelope provides attack/release, ADSR and multi-stage envelope
// generators whose segments have adjustable exponential curvature.
package envelope

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
)

// MaxSlope bounds the curvature parameter of a stage.
const MaxSlope = 10.0

// stageDone is the progress at which a stage counts as finished. It sits
// just below 1 so rounding in the summed steps cannot add a sample.
const stageDone = 1 - 1e-9

// ErrHoldStage is returned when a stage parameter is set for Hold.
var ErrHoldStage = errors.New("envelope: hold has no stage parameters")

// Phase is the stage the envelope is in.
type Phase int

const (
	Hold Phase = iota - 1
	Attack
	Release
)

func (p Phase) String() string {
	switch p {
	case Hold:
		return "hold"
	case Attack:
		return "attack"
	case Release:
		return "release"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// AttackRelease moves from its current value to a stage level over the
// stage time, then holds. Trigger starts the attack stage and Release the
// release stage; both start from wherever the envelope is, so retriggers
// do not jump.
type AttackRelease[T buffer.Sample] struct {
	sampleRate float64

	step  [2]float64 // stage progress per sample
	slope [2]float64
	level [2]float64

	begin float64
	t     float64
	value float64
	phase Phase
}

// New returns an envelope holding at initial. Stage times default to zero
// (instant), levels to 0 and slopes to linear.
func New[T buffer.Sample](initial float64, opts ...core.ProcessorOption) *AttackRelease[T] {
	cfg := core.ApplyProcessorOptions(opts...)
	e := &AttackRelease[T]{
		sampleRate: cfg.SampleRate,
		value:      initial,
		begin:      initial,
		phase:      Hold,
	}
	e.step = [2]float64{math.MaxFloat64, math.MaxFloat64}
	return e
}

// SetStage sets time (seconds), target level and slope of an attack or
// release stage.
func (e *AttackRelease[T]) SetStage(p Phase, seconds, level, slope float64) error {
	if err := e.SetTime(p, seconds); err != nil {
		return err
	}
	e.level[p] = level
	e.slope[p] = core.Clamp(slope, -MaxSlope, MaxSlope)
	return nil
}

// SetTime sets the duration of a stage in seconds. Non-positive times make
// the stage instant.
func (e *AttackRelease[T]) SetTime(p Phase, seconds float64) error {
	if p != Attack && p != Release {
		return ErrHoldStage
	}
	e.step[p] = stepFor(seconds, e.sampleRate)
	return nil
}

// SetLevel sets the level a stage ends at.
func (e *AttackRelease[T]) SetLevel(p Phase, level float64) error {
	if p != Attack && p != Release {
		return ErrHoldStage
	}
	e.level[p] = level
	return nil
}

// SetSlope sets the curvature of a stage, clamped to [-MaxSlope, MaxSlope].
// 0 is linear; positive values start slow and finish fast.
func (e *AttackRelease[T]) SetSlope(p Phase, slope float64) error {
	if p != Attack && p != Release {
		return ErrHoldStage
	}
	e.slope[p] = core.Clamp(slope, -MaxSlope, MaxSlope)
	return nil
}

// Phase returns the current stage.
func (e *AttackRelease[T]) Phase() Phase { return e.phase }

// Value returns the current envelope value without advancing.
func (e *AttackRelease[T]) Value() T { return T(e.value) }

// Trigger starts the attack stage from the current value.
func (e *AttackRelease[T]) Trigger() {
	e.start(Attack)
}

// Release starts the release stage from the current value.
func (e *AttackRelease[T]) Release() {
	e.start(Release)
}

func (e *AttackRelease[T]) start(p Phase) {
	e.t = 0
	e.begin = e.value
	e.phase = p
}

// Reset jumps to val and holds.
func (e *AttackRelease[T]) Reset(val float64) {
	e.t = 0
	e.value = val
	e.begin = val
	e.phase = Hold
}

// Tick advances one sample and returns the new value.
func (e *AttackRelease[T]) Tick() T {
	if e.phase == Hold {
		return T(e.value)
	}

	p := e.phase
	end := e.level[p]
	distance := end - e.begin

	e.t += e.step[p]
	if e.t >= stageDone {
		e.value = end
		e.phase = Hold
		return T(e.value)
	}

	slope := e.slope[p]
	if distance < 0 {
		slope = -slope
	}
	e.value = e.begin + distance*normalizedExp(e.t, slope)
	return T(e.value)
}

// Render overwrites buf with the next buf.Len() envelope values.
func (e *AttackRelease[T]) Render(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, e.Tick())
	}
}

// ProcessBlock multiplies buf by the envelope in place.
func (e *AttackRelease[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, buf.GetUnchecked(i)*e.Tick())
	}
}

// stepFor returns the per-sample progress of a stage lasting seconds.
// Non-positive durations complete in one sample.
func stepFor(seconds, sampleRate float64) float64 {
	step := 1 / (seconds * sampleRate)
	if !(step > 0) || math.IsInf(step, 1) {
		return math.MaxFloat64
	}
	return step
}

// normalizedExp maps x in [0,1] onto [0,1] along (e^(s*x)-1)/(e^s-1).
// Near-zero slopes are linear.
func normalizedExp(x, slope float64) float64 {
	if math.Abs(slope) <= 0.01 {
		return x
	}
	return math.Expm1(slope*x) / math.Expm1(slope)
}
