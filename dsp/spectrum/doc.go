// Package spectrum measures the frequency content of sample blocks.
//
// Analyzer runs a windowed FFT over a fixed frame size and writes magnitude
// bins into a caller-owned buffer. Goertzel tracks the power at a single
// frequency one sample at a time, which suits tone detection inside a
// real-time callback.
package spectrum
