package biquad

import (
	"errors"
	"fmt"
	"math"

	"github.com/navin-neu/stk/dsp/engine"
)

// FilterType selects one of the canonical responses for SetFilterType.
type FilterType int

const (
	LowPass FilterType = iota
	HighPass
	BandPass
	BandReject
	AllPass
)

// String returns the filter type name.
func (t FilterType) String() string {
	switch t {
	case LowPass:
		return "lowpass"
	case HighPass:
		return "highpass"
	case BandPass:
		return "bandpass"
	case BandReject:
		return "bandreject"
	case AllPass:
		return "allpass"
	default:
		return fmt.Sprintf("FilterType(%d)", int(t))
	}
}

// Errors returned by the design methods. Each failed call additionally
// emits exactly one warning notification through the engine sink and
// leaves the coefficients unchanged.
var (
	ErrFrequencyOutOfRange = errors.New("biquad: frequency out of range")
	ErrRadiusOutOfRange    = errors.New("biquad: radius out of range")
	ErrNegativeQ           = errors.New("biquad: Q must be >= 0")
	ErrInvalidFilterType   = errors.New("biquad: invalid filter type")
)

// warnf wraps err with detail, reports it as a warning, and returns it.
func (f *BiQuad) warnf(err error, format string, args ...any) error {
	wrapped := fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
	f.eng.Notify(engine.SeverityWarning, wrapped.Error())
	return wrapped
}

// SetResonance places a conjugate pole pair producing a resonant peak at
// frequency (Hz). radius in [0, 1) controls the bandwidth; values close
// to 1 give a narrower, sharper resonance.
//
// With normalize the zeros are placed at z = +1 and z = -1 and the
// numerator is scaled so the peak gain is unity regardless of radius.
// Without it the feedforward coefficients are left untouched and the
// caller sets the zeros separately (see SetEqualGainZeroes).
func (f *BiQuad) SetResonance(frequency, radius float64, normalize bool) error {
	sampleRate := f.eng.SampleRate()
	if frequency < 0 || frequency > 0.5*sampleRate {
		return f.warnf(ErrFrequencyOutOfRange, "%v Hz not in [0, %v]", frequency, 0.5*sampleRate)
	}
	if radius < 0 || radius >= 1 {
		return f.warnf(ErrRadiusOutOfRange, "%v not in [0, 1)", radius)
	}

	f.coeffs.A2 = radius * radius
	f.coeffs.A1 = -2 * radius * math.Cos(2*math.Pi*frequency/sampleRate)

	if normalize {
		f.coeffs.B0 = 0.5 - 0.5*f.coeffs.A2
		f.coeffs.B1 = 0
		f.coeffs.B2 = -f.coeffs.B0
	}

	return nil
}

// SetNotch places a conjugate zero pair producing an attenuation null at
// frequency (Hz). radius >= 0 controls the notch depth and width; exactly
// 1 gives a true zero-gain null, and values above 1 are accepted but
// invert the response into a boost.
//
// The pole coefficients are untouched and no gain normalization is
// applied, so the passband gain may differ from unity.
func (f *BiQuad) SetNotch(frequency, radius float64) error {
	sampleRate := f.eng.SampleRate()
	if frequency < 0 || frequency > 0.5*sampleRate {
		return f.warnf(ErrFrequencyOutOfRange, "%v Hz not in [0, %v]", frequency, 0.5*sampleRate)
	}
	if radius < 0 {
		return f.warnf(ErrRadiusOutOfRange, "%v is negative", radius)
	}

	f.coeffs.B2 = radius * radius
	f.coeffs.B1 = -2 * radius * math.Cos(2*math.Pi*frequency/sampleRate)

	return nil
}

// SetFilterType designs a complete biquad for one of the canonical
// responses using the bilinear-transform cookbook formulas, with corner
// or center frequency in Hz and quality factor Q.
//
// The call is transactional: every parameter, including the type, is
// validated before any coefficient is written.
func (f *BiQuad) SetFilterType(typ FilterType, frequency, q float64) error {
	if frequency < 0 {
		return f.warnf(ErrFrequencyOutOfRange, "%v Hz is negative", frequency)
	}
	if q < 0 {
		return f.warnf(ErrNegativeQ, "got %v", q)
	}
	if typ < LowPass || typ > AllPass {
		return f.warnf(ErrInvalidFilterType, "%v", typ)
	}

	k := math.Tan(math.Pi * frequency / f.eng.SampleRate())
	kSqr := k * k
	denom := 1 / (kSqr*q + k + q)

	// Poles are shared by all five responses.
	a1 := 2 * q * (kSqr - 1) * denom
	a2 := (kSqr*q - k + q) * denom

	var b0, b1, b2 float64
	switch typ {
	case LowPass:
		b0 = kSqr * q * denom
		b1 = 2 * b0
		b2 = b0
	case HighPass:
		b0 = q * denom
		b1 = -2 * b0
		b2 = b0
	case BandPass:
		b0 = k * denom
		b1 = 0
		b2 = -b0
	case BandReject:
		b0 = q * (kSqr + 1) * denom
		b1 = 2 * q * (kSqr - 1) * denom
		b2 = b0
	case AllPass:
		b0 = a2
		b1 = a1
		b2 = 1
	}

	f.coeffs = Coefficients{B0: b0, B1: b1, B2: b2, A1: a1, A2: a2}

	return nil
}
