package engine

import (
	"sync"
	"testing"
)

type recordingObserver struct {
	calls [][2]float64
}

func (r *recordingObserver) SampleRateChanged(newRate, oldRate float64) {
	r.calls = append(r.calls, [2]float64{newRate, oldRate})
}

func TestNew_Defaults(t *testing.T) {
	e := New()
	if got := e.SampleRate(); got != DefaultSampleRate {
		t.Fatalf("default sample rate: got %v, want %v", got, DefaultSampleRate)
	}
	if got := e.NumObservers(); got != 0 {
		t.Fatalf("initial observers: got %d, want 0", got)
	}
}

func TestWithSampleRate(t *testing.T) {
	e := New(WithSampleRate(48000))
	if got := e.SampleRate(); got != 48000 {
		t.Fatalf("sample rate: got %v, want 48000", got)
	}

	// Non-positive rates are ignored.
	e = New(WithSampleRate(-1))
	if got := e.SampleRate(); got != DefaultSampleRate {
		t.Fatalf("sample rate after invalid option: got %v, want %v", got, DefaultSampleRate)
	}
}

func TestSetSampleRate_NotifiesObservers(t *testing.T) {
	e := New(WithSampleRate(44100))

	var obs recordingObserver
	reg := e.Observe(&obs)
	defer reg.Close()

	e.SetSampleRate(48000)
	if len(obs.calls) != 1 {
		t.Fatalf("calls: got %d, want 1", len(obs.calls))
	}
	if obs.calls[0] != [2]float64{48000, 44100} {
		t.Fatalf("call args: got %v, want [48000 44100]", obs.calls[0])
	}

	// Non-positive rates are ignored entirely.
	e.SetSampleRate(0)
	e.SetSampleRate(-48000)
	if len(obs.calls) != 1 {
		t.Fatalf("calls after invalid rates: got %d, want 1", len(obs.calls))
	}
	if got := e.SampleRate(); got != 48000 {
		t.Fatalf("rate after invalid sets: got %v, want 48000", got)
	}
}

func TestRegistration_Close(t *testing.T) {
	e := New()

	var obs recordingObserver
	reg := e.Observe(&obs)
	if got := e.NumObservers(); got != 1 {
		t.Fatalf("observers: got %d, want 1", got)
	}

	reg.Close()
	if got := e.NumObservers(); got != 0 {
		t.Fatalf("observers after Close: got %d, want 0", got)
	}

	e.SetSampleRate(88200)
	if len(obs.calls) != 0 {
		t.Fatalf("closed observer notified: %v", obs.calls)
	}

	reg.Close() // idempotent
	var nilReg *Registration
	nilReg.Close() // nil-safe
}

func TestObserve_Concurrent(t *testing.T) {
	e := New()

	const n = 32
	regs := make([]*Registration, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			regs[i] = e.Observe(&recordingObserver{})
		}()
	}
	wg.Wait()

	if got := e.NumObservers(); got != n {
		t.Fatalf("observers: got %d, want %d", got, n)
	}

	wg = sync.WaitGroup{}
	for _, reg := range regs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Close()
		}()
	}
	wg.Wait()

	if got := e.NumObservers(); got != 0 {
		t.Fatalf("observers after close: got %d, want 0", got)
	}
}

func TestNotify_ForwardsToSink(t *testing.T) {
	var got []Notification
	e := New(WithNotificationSink(SinkFunc(func(n Notification) {
		got = append(got, n)
	})))

	e.Notify(SeverityWarning, "stale coefficients")
	if len(got) != 1 {
		t.Fatalf("notifications: got %d, want 1", len(got))
	}
	want := Notification{Severity: SeverityWarning, Message: "stale coefficients"}
	if got[0] != want {
		t.Fatalf("notification: got %+v, want %+v", got[0], want)
	}
}

func TestNotify_DefaultSinkDiscards(t *testing.T) {
	e := New()
	// Must not panic without a configured sink.
	e.Notify(SeverityWarning, "dropped")
}

func TestSeverity_String(t *testing.T) {
	if got := SeverityWarning.String(); got != "warning" {
		t.Fatalf("String: got %q, want %q", got, "warning")
	}
	if got := Severity(99).String(); got != "unknown" {
		t.Fatalf("String: got %q, want %q", got, "unknown")
	}
}
