package core

import (
	"errors"
	"math"
)

var (
	// ErrNegativeAmplitude is returned for amplitude ratios below zero.
	ErrNegativeAmplitude = errors.New("core: negative amplitude has no decibel value")
	// ErrZeroAmplitude is returned by LinearToDBChecked for a ratio of exactly zero.
	ErrZeroAmplitude = errors.New("core: zero amplitude is -Inf dB")
)

// DBToLinear converts dB to linear amplitude (20*log10 convention).
// -Inf dB maps to 0.
func DBToLinear(db float64) float64 {
	if math.IsInf(db, -1) {
		return 0
	}
	return pow10(db / 20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * log10(linear)
}

// LinearToDBChecked is LinearToDB for callers that cannot handle -Inf or NaN.
func LinearToDBChecked(linear float64) (float64, error) {
	switch {
	case linear < 0 || math.IsNaN(linear):
		return 0, ErrNegativeAmplitude
	case linear == 0:
		return 0, ErrZeroAmplitude
	}
	return 20 * log10(linear), nil
}

// DBPowerToLinear converts dB to linear power (10*log10 convention).
func DBPowerToLinear(db float64) float64 {
	if math.IsInf(db, -1) {
		return 0
	}
	return pow10(db / 10)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * log10(power)
}
