package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates the complex frequency response H(e^jw) at freqHz
// for the given sample rate.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := complex(1, 0) + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	return num / den
}

// Magnitude returns |H(f)|.
func (c Coefficients) Magnitude(freqHz, sampleRate float64) float64 {
	return cmplx.Abs(c.Response(freqHz, sampleRate))
}

// MagnitudeDB returns the magnitude response in dB.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(c.Magnitude(freqHz, sampleRate))
}

// Phase returns the phase response in radians at freqHz, in [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// ImpulseResponse computes n samples of the filter's impulse response.
// The history is saved and restored, so the call does not disturb an
// ongoing processing run.
func (f *BiQuad) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	savedX, savedY := f.state()
	f.Clear()

	ir := make([]float64, n)
	ir[0] = f.Transform(1)
	for i := 1; i < n; i++ {
		ir[i] = f.Transform(0)
	}

	f.setState(savedX, savedY)
	return ir
}
