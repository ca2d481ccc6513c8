package engine

// Severity classifies a notification. The engine never fails the process;
// everything it reports is diagnostic.
type Severity int

const (
	// SeverityWarning marks a non-fatal condition the caller may want to
	// act on (out-of-range design parameters, stale coefficients).
	SeverityWarning Severity = iota
)

// String returns the severity name.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "unknown"
}

// Notification is one diagnostic message emitted by a component.
type Notification struct {
	Severity Severity
	Message  string
}

// Sink consumes notifications. Implementations must not block; they are
// called synchronously from the emitting component.
type Sink interface {
	Notify(n Notification)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(n Notification)

// Notify calls f(n).
func (f SinkFunc) Notify(n Notification) { f(n) }

// discardSink drops every notification. Used when no sink is configured.
type discardSink struct{}

func (discardSink) Notify(Notification) {}
