package biquad

import "github.com/cwbudde/algo-audiotools/dsp/buffer"

// Chain is an ordered cascade of sections processed in series.
type Chain[T buffer.Sample] struct {
	sections []Section[T]
	gain     float64
}

type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain sets a gain applied to the input before the first section.
// Default is 1.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain creates a cascade with one section per coefficient set.
func NewChain[T buffer.Sample](coeffs []Coefficients, opts ...ChainOption) *Chain[T] {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	c := &Chain[T]{gain: cfg.gain}
	c.setSections(coeffs)
	return c
}

func (c *Chain[T]) setSections(coeffs []Coefficients) {
	c.sections = make([]Section[T], len(coeffs))
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}
}

// ProcessSample runs x through every section in order.
func (c *Chain[T]) ProcessSample(x T) T {
	y := float64(x) * c.gain
	for i := range c.sections {
		y = c.sections[i].tick(y)
	}
	return T(y)
}

// ProcessBlock filters buf in place through the full cascade.
func (c *Chain[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	if c.gain != 1 {
		g := T(c.gain)
		for i := range buf.Len() {
			buf.AssignUnchecked(i, buf.GetUnchecked(i)*g)
		}
	}
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain[T]) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the nominal filter order, two per section.
func (c *Chain[T]) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of sections.
func (c *Chain[T]) NumSections() int {
	return len(c.sections)
}

// Gain returns the input gain.
func (c *Chain[T]) Gain() float64 { return c.gain }

// SetGain updates the input gain.
func (c *Chain[T]) SetGain(g float64) { c.gain = g }

// UpdateCoefficients replaces coefficients and gain. With an unchanged
// section count the delay state is kept so parameter changes do not click;
// otherwise the sections are rebuilt from zero state.
func (c *Chain[T]) UpdateCoefficients(coeffs []Coefficients, gain float64) {
	c.gain = gain
	if len(coeffs) != len(c.sections) {
		c.setSections(coeffs)
		return
	}
	for i := range c.sections {
		c.sections[i].Coefficients = coeffs[i]
	}
}

// Section returns the i-th section.
func (c *Chain[T]) Section(i int) *Section[T] {
	return &c.sections[i]
}

// State returns a snapshot of all section states.
func (c *Chain[T]) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}
	return states
}

// SetState restores section states saved by State. Extra or missing
// entries are ignored.
func (c *Chain[T]) SetState(states [][2]float64) {
	for i := range min(len(states), len(c.sections)) {
		c.sections[i].SetState(states[i])
	}
}
