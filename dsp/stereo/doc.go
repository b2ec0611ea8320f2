// Package stereo provides panning and crossfading for two-channel signals.
//
// Pan amounts run from -1 (hard left) through 0 (center) to 1 (hard right).
// Mono sources are panned with equal-amplitude gains, which sum back to the
// input; stereo sources use equal-power gains so the center keeps its
// perceived loudness.
package stereo
