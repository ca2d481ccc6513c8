package biquad

// Coefficients holds the transfer function coefficients of one biquad.
// The leading feedback coefficient a0 is normalized to 1 and not stored:
//
//	H(z) = (B0 + B1*z^-1 + B2*z^-2) / (1 + A1*z^-1 + A2*z^-2)
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (zeros)
	A1, A2     float64 // feedback (poles)
}

// Identity returns pass-through coefficients (B0=1, all else 0).
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// A0 returns the leading feedback coefficient, fixed at 1.
func (Coefficients) A0() float64 { return 1 }
