package event

import "context"

// Event names kept stable for downstream consumers.
const (
	RequestCreated   = "request.created"
	RequestWithdrawn = "request.withdrawn"
	RequestCompleted = "request.completed"
	StepStarted      = "step.started"
	ActionTaken      = "action.taken"
)

// Notifier is the fire-and-forget sink the engine reports state changes
// to. Implementations must never fail the triggering transition: at-most-
// once delivery, errors swallowed and logged on their side.
type Notifier interface {
	Emit(ctx context.Context, name string, payload map[string]any)
}

// Event pairs a name with its payload so the engine can queue
// notifications during a transaction and flush them after commit.
type Event struct {
	Name    string
	Payload map[string]any
}
