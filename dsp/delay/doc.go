// Package delay provides circular delay lines and the freeverb-style comb
// and allpass filters built on them.
//
// A [Line] does not own memory. It takes over a [buffer.MutSlice] at
// construction, so the same code runs over a package-level array on an
// embedded target or over a heap slice in tests, and its buffer can be
// swapped at run time with [Line.ChangeBuffer].
package delay
