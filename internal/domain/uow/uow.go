package uow

import (
	"context"

	"approvalflow-backend/internal/domain/comment"
	"approvalflow-backend/internal/domain/delegation"
	"approvalflow-backend/internal/domain/request"
	"approvalflow-backend/internal/domain/workflow"
)

type Repos struct {
	Workflows   workflow.Repository
	Requests    request.Repository
	Delegations delegation.Repository
	Comments    comment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the request row up-front, then pass it in — this
	// serializes concurrent takeAction/withdraw calls on one request
	WithinRequestTx(ctx context.Context, requestID string, fn func(r Repos, req *request.Request) error) error
}
