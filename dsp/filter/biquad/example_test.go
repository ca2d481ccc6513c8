package biquad_test

import (
	"fmt"

	"github.com/navin-neu/stk/dsp/engine"
	"github.com/navin-neu/stk/dsp/filter/biquad"
)

func ExampleBiQuad_Transform() {
	eng := engine.New(engine.WithSampleRate(44100))
	f := biquad.New(eng)
	defer f.Close()

	// Two-tap average: y[n] = 0.5*x[n] + 0.5*x[n-1].
	f.SetCoefficients(0.5, 0.5, 0, 0, 0, true)

	for i := range 4 {
		var x float64
		if i == 0 {
			x = 1
		}
		fmt.Printf("y[%d] = %.6f\n", i, f.Transform(x))
	}
	// Output:
	// y[0] = 0.500000
	// y[1] = 0.500000
	// y[2] = 0.000000
	// y[3] = 0.000000
}

func ExampleBiQuad_SetEqualGainZeroes() {
	eng := engine.New()
	f := biquad.New(eng)
	defer f.Close()

	f.SetEqualGainZeroes()

	c := f.Coefficients()
	fmt.Printf("b0=%v b1=%v b2=%v a0=%v\n", c.B0, c.B1, c.B2, c.A0())
	// Output:
	// b0=1 b1=0 b2=-1 a0=1
}

func ExampleBiQuad_SetResonance_invalidParameter() {
	eng := engine.New(
		engine.WithSampleRate(44100),
		engine.WithNotificationSink(engine.SinkFunc(func(n engine.Notification) {
			fmt.Printf("%s: %s\n", n.Severity, n.Message)
		})),
	)
	f := biquad.New(eng)
	defer f.Close()

	// Out-of-range frequency: the call warns and leaves the filter alone.
	_ = f.SetResonance(-1, 0.5, true)
	// Output:
	// warning: biquad: frequency out of range: -1 Hz not in [0, 22050]
}
