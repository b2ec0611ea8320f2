// Package fir provides a direct-form FIR filter over caller-owned storage.
//
// A [Filter] reads its taps from a read-only buffer.Slice, typically a
// package-level coefficient table, and keeps its history in a MutSlice the
// caller hands over at construction. Neither is copied, so a filter can be
// built and run without allocating sample memory.
//
// [WindowedSinc] designs linear-phase lowpass taps into such a table.
package fir
