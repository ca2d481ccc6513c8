package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Transformer is any per-sample transform with resettable state.
// *biquad.BiQuad and *biquad.Cascade both satisfy it.
type Transformer interface {
	Transform(sample float64) float64
	Clear()
}

// ErrInvalidFFTSize is returned when fftSize is not a power of two >= 2.
var ErrInvalidFFTSize = errors.New("response: fft size must be a power of two >= 2")

// Magnitudes measures the magnitude response of f. It clears the
// transform state, feeds a unit impulse followed by fftSize-1 zeros,
// and returns the fftSize/2+1 non-redundant bin magnitudes of the
// measured impulse response. The transform is left cleared.
//
// fftSize trades frequency resolution against truncation error: the
// impulse response of a resonant filter must have decayed within
// fftSize samples for the measurement to be accurate.
func Magnitudes(f Transformer, fftSize int) ([]float64, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	f.Clear()
	ir := make([]complex128, fftSize)
	ir[0] = complex(f.Transform(1), 0)
	for i := 1; i < fftSize; i++ {
		ir[i] = complex(f.Transform(0), 0)
	}
	f.Clear()

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, ir); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	n := fftSize/2 + 1
	re := make([]float64, n)
	im := make([]float64, n)
	for i := range n {
		re[i] = real(bins[i])
		im[i] = imag(bins[i])
	}

	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)
	return out, nil
}

// BinFrequency returns the center frequency in Hz of bin i for the given
// FFT size and sample rate.
func BinFrequency(i, fftSize int, sampleRate float64) float64 {
	return float64(i) * sampleRate / float64(fftSize)
}

// At returns the measured magnitude of the bin nearest to freqHz.
// mags must come from a Magnitudes call with the same fftSize.
func At(mags []float64, fftSize int, sampleRate, freqHz float64) float64 {
	i := int(math.Round(freqHz * float64(fftSize) / sampleRate))
	if i < 0 {
		i = 0
	}
	if i >= len(mags) {
		i = len(mags) - 1
	}
	return mags[i]
}
