package uowmock

import (
	"context"
	"errors"
	"testing"

	"approvalflow-backend/internal/domain/request"
	"approvalflow-backend/internal/domain/uow"
	"approvalflow-backend/internal/testutil/requestmock"
	"approvalflow-backend/internal/testutil/workflowmock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	wfs := &workflowmock.Repo{}
	reqs := &requestmock.Repo{}
	repos := uow.Repos{Workflows: wfs, Requests: reqs}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			if fn == nil {
				t.Fatalf("WithinTx: fn is nil")
			}
			// simulate transaction body
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Workflows != wfs || r.Requests != reqs {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_WithinTx_PropagatesError(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("boom")

	m := &UoW{
		WithinTxFn: func(context.Context, func(uow.Repos) error) error {
			return sentinel
		},
	}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, sentinel) {
		t.Fatalf("WithinTx: want %v, got %v", sentinel, err)
	}
}

func TestUoW_Default_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := New() // no funcs set
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinRequestTx(ctx, "x", func(uow.Repos, *request.Request) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinRequestTx default: want errUnimplemented, got %v", err)
	}
}

func TestPassthrough_WithinRequestTx(t *testing.T) {
	ctx := context.Background()
	lock := &request.Request{ID: 7, RequestID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}

	reqs := &requestmock.Repo{
		GetByRequestIDForUpdateFn: func(_ context.Context, requestID string) (*request.Request, error) {
			if requestID != lock.RequestID {
				t.Fatalf("Passthrough: requestID mismatch, got %s", requestID)
			}
			return lock, nil
		},
	}
	m := Passthrough(uow.Repos{Requests: reqs})

	innerCalled := false
	err := m.WithinRequestTx(ctx, lock.RequestID, func(r uow.Repos, req *request.Request) error {
		innerCalled = true
		if r.Requests != reqs {
			t.Fatalf("Passthrough: repos not forwarded")
		}
		if req != lock {
			t.Fatalf("Passthrough: request not forwarded correctly: %+v", req)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Passthrough: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("Passthrough: inner fn not called")
	}
}

func TestPassthrough_WithinRequestTx_LoadFailure(t *testing.T) {
	ctx := context.Background()
	sentinel := errors.New("not found")

	reqs := &requestmock.Repo{
		GetByRequestIDForUpdateFn: func(context.Context, string) (*request.Request, error) {
			return nil, sentinel
		},
	}
	m := Passthrough(uow.Repos{Requests: reqs})

	err := m.WithinRequestTx(ctx, "nope", func(uow.Repos, *request.Request) error {
		t.Fatalf("fn must not run when the load fails")
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Passthrough load failure: want %v, got %v", sentinel, err)
	}
}

func TestUoW_Reset(t *testing.T) {
	m := Passthrough(uow.Repos{})
	if m.WithinTxFn == nil || m.WithinRequestTxFn == nil {
		t.Fatalf("Passthrough should assign both funcs")
	}
	m.Reset()
	if m.WithinTxFn != nil || m.WithinRequestTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}
