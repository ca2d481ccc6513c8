// Package response measures the magnitude response of a sample transform
// empirically: it runs a unit impulse through the transform, FFTs the
// measured impulse response, and reports per-bin magnitudes. This
// cross-checks analytic response formulas against what a filter actually
// computes.
package response
