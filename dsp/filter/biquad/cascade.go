package biquad

// Cascade processes samples through an ordered series of biquads, each
// section's output feeding the next. The caller retains ownership of the
// filters (and is responsible for closing them).
type Cascade struct {
	filters []*BiQuad
	gain    float64
}

// CascadeOption configures a Cascade.
type CascadeOption func(*Cascade)

// WithGain sets an overall input gain applied before the first section.
// Default is 1.
func WithGain(g float64) CascadeOption {
	return func(c *Cascade) { c.gain = g }
}

// NewCascade creates a cascade over the given filters.
func NewCascade(filters []*BiQuad, opts ...CascadeOption) *Cascade {
	c := &Cascade{filters: filters, gain: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Transform cascades one input sample through all sections in order.
func (c *Cascade) Transform(sample float64) float64 {
	sample *= c.gain
	for _, f := range c.filters {
		sample = f.Transform(sample)
	}
	return sample
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Cascade) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i := range buf {
			buf[i] *= c.gain
		}
	}
	for _, f := range c.filters {
		f.ProcessBlock(buf)
	}
}

// Clear zeroes the history of every section.
func (c *Cascade) Clear() {
	for _, f := range c.filters {
		f.Clear()
	}
}

// NumSections returns the number of biquad sections.
func (c *Cascade) NumSections() int { return len(c.filters) }

// Section returns the i-th filter for inspection or redesign.
func (c *Cascade) Section(i int) *BiQuad { return c.filters[i] }

// Gain returns the input gain applied before the first section.
func (c *Cascade) Gain() float64 { return c.gain }

// SetGain updates the input gain.
func (c *Cascade) SetGain(g float64) { c.gain = g }

// Response evaluates the cascade frequency response as the product of
// the section responses scaled by the input gain.
func (c *Cascade) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for _, f := range c.filters {
		h *= f.Coefficients().Response(freqHz, sampleRate)
	}
	return h
}
