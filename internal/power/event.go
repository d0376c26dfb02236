// Package power carries fire-and-forget power requests from the UI to
// whatever owns the display and the radio.
package power

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Kind is the requested power transition.
type Kind string

const (
	// Sleep blanks the display until the next input.
	Sleep Kind = "sleep"
	// Stop shuts the UI down so another firmware can take over.
	Stop Kind = "stop"
)

// Event is a single power request.
type Event struct {
	Kind      Kind
	Timestamp time.Time
}

// Sink receives power requests. Notify must not block the caller.
type Sink interface {
	Notify(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Notify calls f.
func (f SinkFunc) Notify(ev Event) {
	f(ev)
}

// ChanSink sends events to a channel.
type ChanSink struct {
	Ch chan<- Event
}

// Notify sends the event to the channel (non-blocking; drops if full).
func (s *ChanSink) Notify(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case s.Ch <- ev:
	default:
		// Channel full; a request is already pending.
	}
}

// LogSink logs each event and passes it on to Next, if set.
type LogSink struct {
	Logger *log.Logger
	Next   Sink
}

// Notify implements Sink.
func (s *LogSink) Notify(ev Event) {
	if s.Logger != nil {
		s.Logger.Info("power request", "kind", ev.Kind)
	}
	if s.Next != nil {
		s.Next.Notify(ev)
	}
}

// Forward calls fn for every event on ch until ctx is done or ch is closed.
func Forward(ctx context.Context, ch <-chan Event, fn func(Event)) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			fn(ev)
		}
	}
}
