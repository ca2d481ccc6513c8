// Package engine models the audio-engine context shared by DSP components:
// the current sample rate, a registry of observers notified when the rate
// changes, and a sink for non-fatal diagnostic notifications.
//
// An [Engine] replaces process-wide mutable state with an explicit value
// passed to components at construction time. Components that embed the
// sample rate into designed coefficients subscribe via [Engine.Observe] and
// release the returned [Registration] when they are done.
package engine
