package request

import (
	"context"

	domain "approvalflow-backend/internal/domain/request"
)

// Find lists requests by the shared filter contract (defaults: page 1,
// limit 10, created_at DESC; unknown sort columns fall back to created_at).
func (u *Usecase) Find(ctx context.Context, f domain.Filter) (*PageDTO, error) {
	f.Normalize()
	rows, total, err := u.requests.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	return page(rows, total, f), nil
}

// MyRequests lists requests submitted by userID.
func (u *Usecase) MyRequests(ctx context.Context, userID string, f domain.Filter) (*PageDTO, error) {
	f.RequesterID = userID
	return u.Find(ctx, f)
}

// PendingFor lists requests waiting on userID: current step instance
// PENDING with userID in its assigned approver snapshot. Delegates see
// these only once they act — the pending queue matches the static list.
func (u *Usecase) PendingFor(ctx context.Context, userID string, f domain.Filter) (*PageDTO, error) {
	f.Normalize()
	rows, total, err := u.requests.FindPendingFor(ctx, userID, f)
	if err != nil {
		return nil, err
	}
	return page(rows, total, f), nil
}

func page(rows []domain.Request, total int64, f domain.Filter) *PageDTO {
	items := make([]RequestDTO, 0, len(rows))
	for i := range rows {
		items = append(items, *toDTO(&rows[i], false))
	}
	return &PageDTO{Items: items, Total: total, Page: f.Page, Limit: f.Limit}
}
