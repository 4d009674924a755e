package delegation

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, d *Delegation) error
	GetByDelegationID(ctx context.Context, delegationID string) (*Delegation, error)
	// FindActive returns delegations from fromUserID that are switched on,
	// whose window contains at, and whose scope matches workflowCode
	// ("" = any scope).
	FindActive(ctx context.Context, fromUserID, workflowCode string, at time.Time) ([]Delegation, error)
	// FindOverlapping returns active delegations for the same
	// (from, to, scope) triple whose window overlaps [start, end]
	// inclusively.
	FindOverlapping(ctx context.Context, fromUserID, toUserID string, workflowCode *string, start, end time.Time) ([]Delegation, error)
	ListByUser(ctx context.Context, fromUserID string) ([]Delegation, error)
	Save(ctx context.Context, d *Delegation) error
	SoftDelete(ctx context.Context, id uint64) error
	// DeactivateExpired flips delegation_active off for every delegation
	// whose end_date <= now. Safe to run repeatedly and concurrently.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
