package envelope

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
)

// Stage indices with special meaning for MultiStage.Stage.
const (
	StageIdle = -1
	StageHold = -2
)

var (
	// ErrStageCount is returned when a MultiStage is built with fewer than two stages.
	ErrStageCount = errors.New("envelope: need at least two stages")
	// ErrStageIndex is returned for a stage index outside the envelope.
	ErrStageIndex = errors.New("envelope: stage index out of range")
)

type segment struct {
	step, level, slope float64
}

// MultiStage runs N curved segments. Trigger starts at the retrigger stage
// (0 by default) and runs stages up to N-2 in order, then holds at the end
// level of stage N-2. Release jumps to the final stage, which runs to its
// level and leaves the envelope idle.
//
// Levels are clamped to [0, 1]. An ADSR is the three-stage case: attack,
// decay held at its level, then release.
type MultiStage[T buffer.Sample] struct {
	sampleRate float64
	stages     []segment
	retrigger  int

	begin float64
	t     float64
	value float64
	stage int
}

// NewMultiStage returns an idle envelope with n stages at initial, clamped
// to [0, 1]. Stages default to instant, level 0 and linear.
func NewMultiStage[T buffer.Sample](n int, initial float64, opts ...core.ProcessorOption) (*MultiStage[T], error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d", ErrStageCount, n)
	}
	cfg := core.ApplyProcessorOptions(opts...)
	m := &MultiStage[T]{
		sampleRate: cfg.SampleRate,
		stages:     make([]segment, n),
		value:      core.Clamp(initial, 0, 1),
		stage:      StageIdle,
	}
	for i := range m.stages {
		m.stages[i].step = stepFor(0, m.sampleRate)
	}
	return m, nil
}

func (m *MultiStage[T]) check(n int) error {
	if n < 0 || n >= len(m.stages) {
		return fmt.Errorf("%w: %d of %d", ErrStageIndex, n, len(m.stages))
	}
	return nil
}

// NumStages returns the number of stages.
func (m *MultiStage[T]) NumStages() int { return len(m.stages) }

// SetStage sets the time (seconds), end level and slope of stage n.
func (m *MultiStage[T]) SetStage(n int, seconds, level, slope float64) error {
	if err := m.check(n); err != nil {
		return err
	}
	m.stages[n] = segment{
		step:  stepFor(seconds, m.sampleRate),
		level: core.Clamp(level, 0, 1),
		slope: core.Clamp(slope, -MaxSlope, MaxSlope),
	}
	return nil
}

// SetTime sets the duration of stage n in seconds.
func (m *MultiStage[T]) SetTime(n int, seconds float64) error {
	if err := m.check(n); err != nil {
		return err
	}
	m.stages[n].step = stepFor(seconds, m.sampleRate)
	return nil
}

// SetLevel sets the end level of stage n, clamped to [0, 1].
func (m *MultiStage[T]) SetLevel(n int, level float64) error {
	if err := m.check(n); err != nil {
		return err
	}
	m.stages[n].level = core.Clamp(level, 0, 1)
	return nil
}

// SetSlope sets the curvature of stage n, clamped to [-MaxSlope, MaxSlope].
func (m *MultiStage[T]) SetSlope(n int, slope float64) error {
	if err := m.check(n); err != nil {
		return err
	}
	m.stages[n].slope = core.Clamp(slope, -MaxSlope, MaxSlope)
	return nil
}

// SetRetriggerStage sets the stage Trigger starts from. It must not be the
// final (release) stage.
func (m *MultiStage[T]) SetRetriggerStage(n int) error {
	if n < 0 || n >= len(m.stages)-1 {
		return fmt.Errorf("%w: retrigger %d of %d", ErrStageIndex, n, len(m.stages))
	}
	m.retrigger = n
	return nil
}

// Stage returns the running stage index, StageHold or StageIdle.
func (m *MultiStage[T]) Stage() int { return m.stage }

// Value returns the current output without advancing.
func (m *MultiStage[T]) Value() T { return T(m.value) }

// Trigger starts the retrigger stage from the current value.
func (m *MultiStage[T]) Trigger() {
	m.enter(m.retrigger)
}

// Release starts the final stage from the current value. It is ignored
// while the final stage is already running.
func (m *MultiStage[T]) Release() {
	if last := len(m.stages) - 1; m.stage != last {
		m.enter(last)
	}
}

// Reset jumps to val and goes idle.
func (m *MultiStage[T]) Reset(val float64) {
	m.value = core.Clamp(val, 0, 1)
	m.begin = m.value
	m.t = 0
	m.stage = StageIdle
}

func (m *MultiStage[T]) enter(n int) {
	m.stage = n
	m.begin = m.value
	m.t = 0
}

// Tick advances one sample and returns the new value.
func (m *MultiStage[T]) Tick() T {
	if m.stage < 0 {
		return T(m.value)
	}

	seg := m.stages[m.stage]
	m.t += seg.step
	if m.t >= stageDone {
		m.value = seg.level
		last := len(m.stages) - 1
		switch {
		case m.stage == last:
			m.stage = StageIdle
		case m.stage == last-1:
			m.stage = StageHold
		default:
			m.enter(m.stage + 1)
		}
		return T(m.value)
	}

	distance := seg.level - m.begin
	slope := seg.slope
	if distance < 0 {
		slope = -slope
	}
	m.value = m.begin + distance*normalizedExp(m.t, slope)
	return T(m.value)
}

// Render overwrites buf with the next buf.Len() envelope values.
func (m *MultiStage[T]) Render(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, m.Tick())
	}
}

// ProcessBlock multiplies buf by the envelope in place.
func (m *MultiStage[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, buf.GetUnchecked(i)*m.Tick())
	}
}
