package notifymock

import (
	"context"
	"sync"

	"approvalflow-backend/internal/domain/event"
)

var _ event.Notifier = (*Recorder)(nil)

// Recorder collects emitted events so tests can assert on names, order and
// payload fields.
type Recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func New() *Recorder { return &Recorder{} }

func (r *Recorder) Emit(_ context.Context, name string, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event.Event{Name: name, Payload: payload})
}

func (r *Recorder) Events() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Names returns just the event names in emission order.
func (r *Recorder) Names() []string {
	evs := r.Events()
	out := make([]string, 0, len(evs))
	for _, e := range evs {
		out = append(out, e.Name)
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
