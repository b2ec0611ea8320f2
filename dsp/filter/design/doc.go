// Package design computes biquad coefficients consumable by
// dsp/filter/biquad.
//
// The second-order designers use the Zoelzer formulation with
// K = tan(pi*fc/fs), which places the cutoff exactly on the requested
// frequency after the bilinear transform. [ButterworthLP] and
// [ButterworthHP] cascade them into higher-order Butterworth filters.
//
// Invalid frequencies (<= 0, >= Nyquist, NaN) yield zero coefficients,
// which silence the section. A non-positive Q falls back to 1/sqrt(2).
package design
