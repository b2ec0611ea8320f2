// Package buffer provides slice views over statically allocated sample
// buffers for real-time audio code that must not allocate.
//
// A [Slice] is a read-only view that can be copied and shared freely.
// A [MutSlice] is the single writable handle over a region; it must not be
// copied (go vet reports copies) and ownership moves with [MutSlice.Take].
// Both are built from an existing buffer with [FromBuffer] or
// [FromBufferMut], or start out empty via [Empty] and [EmptyMut].
//
// Sub-slices taken with SubSlice or SubSliceMut share memory with their
// parent but snapshot its address and length. Re-pointing the parent with
// [MutSlice.ChangeBufferUnchecked] does not move them; they keep viewing
// the old buffer and the caller is expected to drop them.
//
// # Trust boundary
//
// ChangeBufferUnchecked is the only operation whose safety is not enforced.
// The caller attests that the new region is statically allocated (a
// package-level array or a fixed memory-mapped block), that it stays valid
// for the rest of the program and that nobody else writes to it.
//
// # Crossing goroutines
//
// A [Static] is a slice whose buffer is known to be static. It is the only
// form accepted by [Handoff] and [PingPong], so a slice over a transient
// buffer cannot be handed to another goroutine without the explicit
// [AssumeStatic] or [FromStatic] step.
//
// Length-0 views are valid everywhere. Reads return zero values, writes
// touch nothing and the nil address is never dereferenced.
package buffer
