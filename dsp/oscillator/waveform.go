package oscillator

import (
	"fmt"
	"math"
)

// Waveform selects the shape produced by Functional.
type Waveform int

const (
	Sine Waveform = iota
	Rectangle
	Sawtooth
	Triangle
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Rectangle:
		return "rectangle"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	default:
		return fmt.Sprintf("Waveform(%d)", int(w))
	}
}

// ParseWaveform maps a name produced by String back to a Waveform.
func ParseWaveform(s string) (Waveform, error) {
	for w := Sine; w <= Triangle; w++ {
		if w.String() == s {
			return w, nil
		}
	}
	return 0, fmt.Errorf("oscillator: unknown waveform %q", s)
}

// At evaluates the bipolar waveform at phase in [0, 1).
func (w Waveform) At(phase float64) float64 {
	saw := phase*2 - 1
	switch w {
	case Rectangle:
		return math.Floor(saw+1)*2 - 1
	case Sawtooth:
		return saw
	case Triangle:
		return 1 - 2*math.Abs(saw)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
