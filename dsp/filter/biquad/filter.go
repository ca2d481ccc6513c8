package biquad

import (
	"github.com/navin-neu/stk/dsp/engine"
)

// BiQuad is a single two-pole, two-zero filter instance bound to an
// engine context. It is not safe for concurrent use; the design assumes a
// single writer driving both coefficient updates and sample processing.
type BiQuad struct {
	coeffs Coefficients

	// x and y hold the current and two previous input/output samples.
	// Index 0 is the newest entry. Only Transform mutates them.
	x [3]float64
	y [3]float64

	eng              *engine.Engine
	reg              *engine.Registration
	ignoreRateChange bool
}

// New creates a pass-through biquad bound to eng and subscribes it to
// sample-rate-change notifications. Call Close when the filter is no
// longer part of the graph. Coefficients are normally set right after
// construction by one of the design methods.
func New(eng *engine.Engine) *BiQuad {
	f := &BiQuad{
		coeffs: Identity(),
		eng:    eng,
	}
	f.reg = eng.Observe(f)
	return f
}

// Close releases the sample-rate-change subscription. Idempotent.
func (f *BiQuad) Close() {
	f.reg.Close()
}

// Engine returns the engine context the filter was built with.
func (f *BiQuad) Engine() *engine.Engine { return f.eng }

// Coefficients returns a copy of the current coefficient set.
func (f *BiQuad) Coefficients() Coefficients { return f.coeffs }

// SetCoefficients installs a full coefficient set directly. a0 stays
// fixed at 1. Arbitrary real values are accepted; pole placement and
// therefore stability is the caller's responsibility.
//
// With clearState the history is zeroed, suppressing transients from
// stale state after a coefficient jump. Without it the history carries
// over, which keeps the output continuous under coefficient modulation.
func (f *BiQuad) SetCoefficients(b0, b1, b2, a1, a2 float64, clearState bool) {
	f.coeffs = Coefficients{B0: b0, B1: b1, B2: b2, A1: a1, A2: a2}
	if clearState {
		f.Clear()
	}
}

// SetEqualGainZeroes places zeros at z = +1 and z = -1 with unit
// numerator gain (b = [1, 0, -1]). Commonly paired with SetResonance
// when zero placement is controlled independently.
func (f *BiQuad) SetEqualGainZeroes() {
	f.coeffs.B0 = 1
	f.coeffs.B1 = 0
	f.coeffs.B2 = -1
}

// Clear zeroes the input and output history. Coefficients are untouched.
func (f *BiQuad) Clear() {
	f.x = [3]float64{}
	f.y = [3]float64{}
}

// Transform filters one input sample and returns the output. O(1),
// allocation-free, no clamping or denormal handling: with poles outside
// the unit circle the output grows without bound.
func (f *BiQuad) Transform(sample float64) float64 {
	f.x[0] = sample
	out := f.coeffs.B0*f.x[0] + f.coeffs.B1*f.x[1] + f.coeffs.B2*f.x[2] -
		f.coeffs.A1*f.y[1] - f.coeffs.A2*f.y[2]

	f.x[2] = f.x[1]
	f.x[1] = f.x[0]
	f.y[2] = f.y[1]
	f.y[1] = out
	f.y[0] = out

	return out
}

// ProcessBlock filters a block of samples in-place.
func (f *BiQuad) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.Transform(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length.
func (f *BiQuad) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1]
	for i, x := range src {
		dst[i] = f.Transform(x)
	}
}

// LastOutput returns the most recent Transform output.
func (f *BiQuad) LastOutput() float64 { return f.y[0] }

// SetIgnoreSampleRateChange controls whether this instance reacts to
// sample-rate-change notifications. When true, SampleRateChanged is a
// no-op for this filter.
func (f *BiQuad) SetIgnoreSampleRateChange(ignore bool) {
	f.ignoreRateChange = ignore
}

// SampleRateChanged implements engine.RateObserver. Designed coefficients
// embed the old rate, so unless suppressed the filter emits a warning.
// It never rescales coefficients: rescaling an already-normalized a/b
// pair is not generally correct, so the decision is left to the caller.
func (f *BiQuad) SampleRateChanged(newRate, oldRate float64) {
	if f.ignoreRateChange {
		return
	}
	f.eng.Notify(engine.SeverityWarning,
		"biquad: sample rate changed, coefficients may need recomputation")
}

// state returns a snapshot of the input and output history.
func (f *BiQuad) state() (x, y [3]float64) {
	return f.x, f.y
}

// setState restores a previously saved history snapshot.
func (f *BiQuad) setState(x, y [3]float64) {
	f.x = x
	f.y = y
}
