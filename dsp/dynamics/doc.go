// Package dynamics provides level-dependent gain processors and clippers
// that run in place over buffer.MutSlice blocks.
//
// Compressor is a feed-forward design: a peak follower with separate attack
// and release time constants drives a log2-domain gain computer with an
// optional soft knee. Clippers bound samples to [-1, 1] either hard or with
// a smooth saturation curve. BitReduce and BitReduceExp quantize samples by
// dropping low bits of their fixed-point or floating-point representation.
package dynamics
