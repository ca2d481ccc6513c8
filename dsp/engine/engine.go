package engine

import "sync"

// DefaultSampleRate is used when no WithSampleRate option is given.
const DefaultSampleRate = 44100

// RateObserver is implemented by components that embed the sample rate
// into derived state and need to know when it changes.
type RateObserver interface {
	SampleRateChanged(newRate, oldRate float64)
}

// Engine holds the current sample rate, the observer registry, and the
// notification sink for one audio graph.
type Engine struct {
	mu         sync.Mutex
	sampleRate float64
	observers  map[*Registration]RateObserver
	sink       Sink
}

// Option configures an Engine.
type Option func(*Engine)

// WithSampleRate sets the initial sample rate. Non-positive values are
// ignored and the default is kept.
func WithSampleRate(rate float64) Option {
	return func(e *Engine) {
		if rate > 0 {
			e.sampleRate = rate
		}
	}
}

// WithNotificationSink routes component notifications to sink.
// The default sink discards everything.
func WithNotificationSink(sink Sink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// New creates an engine context.
func New(opts ...Option) *Engine {
	e := &Engine{
		sampleRate: DefaultSampleRate,
		observers:  make(map[*Registration]RateObserver),
		sink:       discardSink{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// SampleRate returns the current sample rate in Hz.
func (e *Engine) SampleRate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sampleRate
}

// SetSampleRate updates the sample rate and synchronously notifies every
// registered observer with (newRate, oldRate). Non-positive rates are
// ignored. Observers are invoked outside audio processing by convention;
// the engine does not serialize against Transform calls.
func (e *Engine) SetSampleRate(rate float64) {
	if rate <= 0 {
		return
	}

	e.mu.Lock()
	old := e.sampleRate
	e.sampleRate = rate
	observers := make([]RateObserver, 0, len(e.observers))
	for _, o := range e.observers {
		observers = append(observers, o)
	}
	e.mu.Unlock()

	for _, o := range observers {
		o.SampleRateChanged(rate, old)
	}
}

// Notify forwards a notification to the configured sink.
func (e *Engine) Notify(severity Severity, message string) {
	e.sink.Notify(Notification{Severity: severity, Message: message})
}

// Registration is a handle for one observer subscription. Closing it
// removes the observer; Close is idempotent and safe after engine reuse.
type Registration struct {
	engine *Engine
	once   sync.Once
}

// Observe subscribes o to sample-rate changes and returns the handle that
// releases the subscription. Safe for concurrent use.
func (e *Engine) Observe(o RateObserver) *Registration {
	reg := &Registration{engine: e}

	e.mu.Lock()
	e.observers[reg] = o
	e.mu.Unlock()

	return reg
}

// NumObservers returns the number of currently registered observers.
func (e *Engine) NumObservers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.observers)
}

// Close unregisters the observer associated with this handle.
func (r *Registration) Close() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		r.engine.mu.Lock()
		delete(r.engine.observers, r)
		r.engine.mu.Unlock()
	})
}
