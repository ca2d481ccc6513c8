// Package biquad implements a two-pole, two-zero recursive filter.
//
// A [BiQuad] holds five transfer-function coefficients and a short history
// of past inputs and outputs, and processes one sample per [BiQuad.Transform]
// call using the direct-form-I difference equation
//
//	y[n] = b0*x[n] + b1*x[n-1] + b2*x[n-2] - a1*y[n-1] - a2*y[n-2]
//
// Coefficients are derived from musical parameters by the design methods
// ([BiQuad.SetResonance], [BiQuad.SetNotch], [BiQuad.SetFilterType]) or
// installed directly via [BiQuad.SetCoefficients]. The leading feedback
// coefficient a0 is always normalized to 1 and is not settable.
//
// Frequency-domain designs embed the engine sample rate at design time.
// Each filter registers with its engine's observer registry so a later
// rate change produces a stale-coefficient warning; the filter never
// rescales coefficients on its own.
package biquad
