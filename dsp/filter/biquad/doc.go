// Package biquad provides second-order IIR filter sections that run in place
// over [buffer.MutSlice] blocks.
//
// A [Section] implements Direct Form II Transposed processing for one
// second-order section defined by [Coefficients]; a [Chain] cascades several
// for higher orders. State is kept in float64 regardless of the sample type.
// Coefficient design lives in dsp/filter/design.
package biquad
