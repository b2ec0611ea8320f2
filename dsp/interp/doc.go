// Package interp provides interpolation primitives used by slice reads and
// delay-based DSP blocks.
//
// Available methods, from cheapest to highest quality:
//
//   - [Lerp]:       2-point linear interpolation
//   - [Hermite4]:   4-point cubic Hermite
//   - [Lagrange4]:  4-point cubic Lagrange
//   - [Lagrange]:   N-point Lagrange polynomial
//
// [LerpChecked] validates its inputs and reports [ErrInputNaN],
// [ErrInputInfinite] or [ErrInterpolationRange] instead of propagating them.
package interp
