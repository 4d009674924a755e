package request

import (
	"context"
	"time"
)

// Filter is the read-side query contract shared by the listing endpoints.
type Filter struct {
	Status       Status
	Priority     string
	EntityType   string
	RequesterID  string
	WorkflowCode string
	// Free-text match over title and description.
	Search   string
	DateFrom *time.Time
	DateTo   *time.Time

	SortBy  string
	SortDir string
	Page    int
	Limit   int
}

// Normalize applies the listing defaults: page/limit 1/10, newest first,
// unrecognized sort columns fall back to created_at.
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	switch f.SortBy {
	case "created_at", "updated_at", "submitted_at", "due_date", "title", "priority", "status":
	default:
		f.SortBy = "created_at"
	}
	if f.SortDir != "ASC" && f.SortDir != "asc" {
		f.SortDir = "DESC"
	}
}

func (f Filter) Offset() int { return (f.Page - 1) * f.Limit }

type Repository interface {
	Create(ctx context.Context, r *Request) error
	CreateInstances(ctx context.Context, instances []*StepInstance) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	// GetByRequestIDForUpdate locks the row for the transaction, which
	// serializes lifecycle mutations per request.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Request, error)
	// GetAggregate loads the request with its step instances (ordered by
	// step_order) and their actions.
	GetAggregate(ctx context.Context, requestID string) (*Request, error)
	GetInstance(ctx context.Context, requestNumericID uint64, stepOrder int) (*StepInstance, error)
	GetActionByApprover(ctx context.Context, stepInstanceID uint64, approverID string) (*Action, error)
	CreateAction(ctx context.Context, a *Action) error
	// Save* enforce the lock_version check; a stale write returns a
	// conflict error instead of silently overwriting.
	Save(ctx context.Context, r *Request) error
	SaveInstance(ctx context.Context, si *StepInstance) error

	Find(ctx context.Context, f Filter) ([]Request, int64, error)
	// FindPendingFor returns requests whose current step instance is
	// PENDING and lists userID among its assigned approvers.
	FindPendingFor(ctx context.Context, userID string, f Filter) ([]Request, int64, error)
}
