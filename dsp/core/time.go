package core

// SamplesToSeconds converts a sample count to seconds at sampleRate.
func SamplesToSeconds(samples, sampleRate float64) float64 {
	return samples / sampleRate
}

// SamplesToMillis converts a sample count to milliseconds at sampleRate.
func SamplesToMillis(samples, sampleRate float64) float64 {
	return samples / sampleRate * 1000
}

// SecondsToSamples converts seconds to a (fractional) sample count.
func SecondsToSamples(seconds, sampleRate float64) float64 {
	return seconds * sampleRate
}

// MillisToSamples converts milliseconds to a (fractional) sample count.
func MillisToSamples(millis, sampleRate float64) float64 {
	return millis * sampleRate / 1000
}
