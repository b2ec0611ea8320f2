package stereo

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-audiotools/dsp/buffer"
	"github.com/cwbudde/algo-audiotools/dsp/core"
)

var (
	// ErrTooLeft reports a pan amount below -1.
	ErrTooLeft = errors.New("stereo: pan amount below -1")
	// ErrTooRight reports a pan amount above 1.
	ErrTooRight = errors.New("stereo: pan amount above 1")
	// ErrPanNaN reports a NaN pan amount.
	ErrPanNaN = errors.New("stereo: pan amount is NaN")
)

func checkPan(amount float64) error {
	switch {
	case math.IsNaN(amount):
		return ErrPanNaN
	case amount < -1:
		return ErrTooLeft
	case amount > 1:
		return ErrTooRight
	}
	return nil
}

// EqualAmplitudeGains returns (left, right) gains that sum to 1.
func EqualAmplitudeGains(amount float64) (float64, float64) {
	return (1 - amount) * 0.5, (1 + amount) * 0.5
}

// EqualPowerGains returns (left, right) gains whose squares sum to 1.
func EqualPowerGains(amount float64) (float64, float64) {
	l, r := EqualAmplitudeGains(amount)
	return math.Sqrt(l), math.Sqrt(r)
}

// MonoPan spreads one sample over two channels.
func MonoPan[T buffer.Sample](amount float64, x T) (T, T, error) {
	if err := checkPan(amount); err != nil {
		return 0, 0, err
	}
	l, r := MonoPanUnchecked(amount, x)
	return l, r, nil
}

// MonoPanUnchecked is MonoPan without validating amount.
func MonoPanUnchecked[T buffer.Sample](amount float64, x T) (T, T) {
	gl, gr := EqualAmplitudeGains(amount)
	return x * T(gl), x * T(gr)
}

// StereoPan moves a stereo pair towards one side.
func StereoPan[T buffer.Sample](amount float64, left, right T) (T, T, error) {
	if err := checkPan(amount); err != nil {
		return 0, 0, err
	}
	l, r := StereoPanUnchecked(amount, left, right)
	return l, r, nil
}

// StereoPanUnchecked is StereoPan without validating amount.
func StereoPanUnchecked[T buffer.Sample](amount float64, left, right T) (T, T) {
	gl, gr := EqualPowerGains(amount)
	return left * T(gl), right * T(gr)
}

// PanBlock spreads src over left and right and returns the number of
// frames written, the minimum of the three lengths.
func PanBlock[T buffer.Sample](left, right *buffer.MutSlice[T], src buffer.Slice[T], amount float64) (int, error) {
	if err := checkPan(amount); err != nil {
		return 0, err
	}
	gl, gr := EqualAmplitudeGains(amount)
	n := min(left.Len(), right.Len(), src.Len())
	for i := range n {
		x := src.GetUnchecked(i)
		left.AssignUnchecked(i, x*T(gl))
		right.AssignUnchecked(i, x*T(gr))
	}
	return n, nil
}

// BalanceBlock applies StereoPan to a pair of channel buffers in place.
func BalanceBlock[T buffer.Sample](left, right *buffer.MutSlice[T], amount float64) error {
	if err := checkPan(amount); err != nil {
		return err
	}
	gl, gr := EqualPowerGains(amount)
	for i := range left.Len() {
		left.AssignUnchecked(i, left.GetUnchecked(i)*T(gl))
	}
	for i := range right.Len() {
		right.AssignUnchecked(i, right.GetUnchecked(i)*T(gr))
	}
	return nil
}

// Crossfade writes (1-mix)*a + mix*b into dst with equal-power weights and
// returns the number of samples written. mix is clamped to [0, 1].
func Crossfade[T buffer.Sample](dst *buffer.MutSlice[T], a, b buffer.Slice[T], mix float64) int {
	mix = core.Clamp(mix, 0, 1)
	ga, gb := EqualPowerGains(2*mix - 1)
	n := min(dst.Len(), a.Len(), b.Len())
	for i := range n {
		dst.AssignUnchecked(i, a.GetUnchecked(i)*T(ga)+b.GetUnchecked(i)*T(gb))
	}
	return n
}
