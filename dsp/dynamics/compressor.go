package dynamics

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
)

const (
	defaultThresholdDB = -20.0
	defaultRatio       = 4.0
	defaultKneeDB      = 6.0
	defaultAttackMs    = 10.0
	defaultReleaseMs   = 100.0

	minRatio     = 1.0
	maxRatio     = 1000.0
	minAttackMs  = 0.01
	maxAttackMs  = 1000.0
	minReleaseMs = 1.0
	maxReleaseMs = 5000.0
	maxKneeDB    = 24.0

	// log2(10) / 20
	log2Of10Div20 = 0.166096404744368
)

var (
	// ErrParameterRange is returned when a setter value is outside its range.
	ErrParameterRange = errors.New("dynamics: parameter out of range")
	// ErrSampleRate is returned for a non-positive or non-finite sample rate.
	ErrSampleRate = errors.New("dynamics: sample rate must be positive and finite")
)

// Metrics holds metering since the last Reset or ResetMetrics.
type Metrics struct {
	InputPeak     float64
	OutputPeak    float64
	GainReduction float64 // smallest gain applied, 1 means none
}

// Compressor reduces the level of samples above a threshold by ratio.
// It is not safe for concurrent use.
type Compressor[T buffer.Sample] struct {
	thresholdDB  float64
	ratio        float64
	kneeDB       float64
	attackMs     float64
	releaseMs    float64
	makeupGainDB float64
	autoMakeup   bool
	sampleRate   float64

	peak float64

	attackCoeff   float64
	releaseCoeff  float64
	thresholdLog2 float64
	kneeLog2      float64
	makeupGain    float64

	metrics Metrics
}

// NewCompressor returns a compressor at -20 dB, 4:1, 6 dB knee, 10 ms
// attack, 100 ms release with automatic makeup gain.
func NewCompressor[T buffer.Sample](opts ...core.ProcessorOption) (*Compressor[T], error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if !validSampleRate(cfg.SampleRate) {
		return nil, fmt.Errorf("%w: %v", ErrSampleRate, cfg.SampleRate)
	}

	c := &Compressor[T]{
		thresholdDB: defaultThresholdDB,
		ratio:       defaultRatio,
		kneeDB:      defaultKneeDB,
		attackMs:    defaultAttackMs,
		releaseMs:   defaultReleaseMs,
		autoMakeup:  true,
		sampleRate:  cfg.SampleRate,
	}
	c.updateCoefficients()
	c.ResetMetrics()
	return c, nil
}

func validSampleRate(sr float64) bool {
	return sr > 0 && !math.IsInf(sr, 0)
}

func checkRange(name string, v, lo, hi float64) error {
	if !(v >= lo && v <= hi) {
		return fmt.Errorf("%w: %s %v not in [%v, %v]", ErrParameterRange, name, v, lo, hi)
	}
	return nil
}

// SetThreshold sets the threshold in dB.
func (c *Compressor[T]) SetThreshold(dB float64) error {
	if err := checkRange("threshold", dB, -200, 0); err != nil {
		return err
	}
	c.thresholdDB = dB
	c.updateCoefficients()
	return nil
}

// SetRatio sets the compression ratio; 1 disables compression.
func (c *Compressor[T]) SetRatio(ratio float64) error {
	if err := checkRange("ratio", ratio, minRatio, maxRatio); err != nil {
		return err
	}
	c.ratio = ratio
	c.updateCoefficients()
	return nil
}

// SetKnee sets the soft-knee width in dB; 0 is a hard knee.
func (c *Compressor[T]) SetKnee(dB float64) error {
	if err := checkRange("knee", dB, 0, maxKneeDB); err != nil {
		return err
	}
	c.kneeDB = dB
	c.updateCoefficients()
	return nil
}

// SetAttack sets the attack time in milliseconds.
func (c *Compressor[T]) SetAttack(ms float64) error {
	if err := checkRange("attack", ms, minAttackMs, maxAttackMs); err != nil {
		return err
	}
	c.attackMs = ms
	c.updateTimeConstants()
	return nil
}

// SetRelease sets the release time in milliseconds.
func (c *Compressor[T]) SetRelease(ms float64) error {
	if err := checkRange("release", ms, minReleaseMs, maxReleaseMs); err != nil {
		return err
	}
	c.releaseMs = ms
	c.updateTimeConstants()
	return nil
}

// SetMakeupGain sets a fixed makeup gain in dB and turns off auto makeup.
func (c *Compressor[T]) SetMakeupGain(dB float64) error {
	if math.IsNaN(dB) || math.IsInf(dB, 0) {
		return fmt.Errorf("%w: makeup gain %v", ErrParameterRange, dB)
	}
	c.makeupGainDB = dB
	c.autoMakeup = false
	c.updateCoefficients()
	return nil
}

// SetAutoMakeup toggles makeup gain that restores the level lost at
// threshold.
func (c *Compressor[T]) SetAutoMakeup(enable bool) {
	c.autoMakeup = enable
	c.updateCoefficients()
}

// SetSampleRate changes the sample rate and recomputes time constants.
func (c *Compressor[T]) SetSampleRate(sr float64) error {
	if !validSampleRate(sr) {
		return fmt.Errorf("%w: %v", ErrSampleRate, sr)
	}
	c.sampleRate = sr
	c.updateTimeConstants()
	return nil
}

func (c *Compressor[T]) Threshold() float64  { return c.thresholdDB }
func (c *Compressor[T]) Ratio() float64      { return c.ratio }
func (c *Compressor[T]) Knee() float64       { return c.kneeDB }
func (c *Compressor[T]) Attack() float64     { return c.attackMs }
func (c *Compressor[T]) Release() float64    { return c.releaseMs }
func (c *Compressor[T]) MakeupGain() float64 { return c.makeupGainDB }
func (c *Compressor[T]) AutoMakeup() bool    { return c.autoMakeup }

// Tick compresses one sample.
func (c *Compressor[T]) Tick(x T) T {
	in := math.Abs(float64(x))
	if in > c.peak {
		c.peak += (in - c.peak) * c.attackCoeff
	} else {
		c.peak = in + (c.peak-in)*c.releaseCoeff
	}

	gain := c.gain(c.peak)
	out := float64(x) * gain * c.makeupGain

	c.metrics.InputPeak = max(c.metrics.InputPeak, in)
	c.metrics.OutputPeak = max(c.metrics.OutputPeak, math.Abs(out))
	c.metrics.GainReduction = min(c.metrics.GainReduction, gain)

	return T(out)
}

// ProcessBlock compresses buf in place.
func (c *Compressor[T]) ProcessBlock(buf *buffer.MutSlice[T]) {
	for i := range buf.Len() {
		buf.AssignUnchecked(i, c.Tick(buf.GetUnchecked(i)))
	}
}

// OutputLevel returns the steady-state output level for a constant input
// magnitude, for plotting the transfer curve.
func (c *Compressor[T]) OutputLevel(in float64) float64 {
	in = math.Abs(in)
	return in * c.gain(in) * c.makeupGain
}

// Metrics returns the current meter values.
func (c *Compressor[T]) Metrics() Metrics { return c.metrics }

// ResetMetrics clears the meters.
func (c *Compressor[T]) ResetMetrics() {
	c.metrics = Metrics{GainReduction: 1}
}

// Reset clears the peak follower and the meters.
func (c *Compressor[T]) Reset() {
	c.peak = 0
	c.ResetMetrics()
}

func (c *Compressor[T]) updateCoefficients() {
	c.thresholdLog2 = c.thresholdDB * log2Of10Div20
	c.kneeLog2 = c.kneeDB * log2Of10Div20
	if c.autoMakeup {
		c.makeupGainDB = -c.thresholdDB * (1 - 1/c.ratio)
	}
	c.makeupGain = core.DBToLinear(c.makeupGainDB)
	c.updateTimeConstants()
}

func (c *Compressor[T]) updateTimeConstants() {
	c.attackCoeff = 1 - math.Exp(-math.Ln2/(c.attackMs*0.001*c.sampleRate))
	c.releaseCoeff = math.Exp(-math.Ln2 / (c.releaseMs * 0.001 * c.sampleRate))
}

// gain maps a detector level to a linear gain. Inside the knee the
// overshoot is smoothed quadratically: (o + w/2)^2 / (2w).
func (c *Compressor[T]) gain(level float64) float64 {
	if level <= 0 {
		return 1
	}

	over := log2(level) - c.thresholdLog2
	half := c.kneeLog2 * 0.5

	switch {
	case over <= -half:
		return 1
	case over < half:
		s := over + half
		over = s * s * 0.5 / c.kneeLog2
	}

	return pow2(-over * (1 - 1/c.ratio))
}
