package requestmock

import (
	"context"
	"errors"
	"testing"

	domain "approvalflow-backend/internal/domain/request"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	r := &domain.Request{RequestID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Request) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != r {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, r); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, r); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_GetByRequestIDForUpdate(t *testing.T) {
	ctx := context.Background()
	want := &domain.Request{RequestID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"}

	// Uses provided func
	called := false
	m := &Repo{
		GetByRequestIDForUpdateFn: func(gotCtx context.Context, requestID string) (*domain.Request, error) {
			called = true
			if gotCtx != ctx {
				t.Fatalf("GetByRequestIDForUpdate ctx mismatch")
			}
			if requestID != want.RequestID {
				t.Fatalf("GetByRequestIDForUpdate requestID mismatch: got %s", requestID)
			}
			return want, nil
		},
	}
	got, err := m.GetByRequestIDForUpdate(ctx, want.RequestID)
	if err != nil {
		t.Fatalf("GetByRequestIDForUpdate: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetByRequestIDForUpdate: want %+v, got %+v", want, got)
	}
	if !called {
		t.Fatalf("GetByRequestIDForUpdateFn not called")
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	got, err = m.GetByRequestIDForUpdate(ctx, want.RequestID)
	if err != context.Canceled {
		t.Fatalf("GetByRequestIDForUpdate default: want context.Canceled, got %v", err)
	}
	if got != nil {
		t.Fatalf("GetByRequestIDForUpdate default: want nil request, got %+v", got)
	}
}

func TestRepo_GetInstance(t *testing.T) {
	ctx := context.Background()
	want := &domain.StepInstance{ID: 3, RequestID: 1, StepOrder: 2}

	// Uses provided func
	m := &Repo{
		GetInstanceFn: func(_ context.Context, requestNumericID uint64, stepOrder int) (*domain.StepInstance, error) {
			if requestNumericID != 1 || stepOrder != 2 {
				t.Fatalf("GetInstance args mismatch: %d/%d", requestNumericID, stepOrder)
			}
			return want, nil
		},
	}
	got, err := m.GetInstance(ctx, 1, 2)
	if err != nil {
		t.Fatalf("GetInstance: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetInstance: want %+v, got %+v", want, got)
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	if _, err := m.GetInstance(ctx, 1, 2); err != context.Canceled {
		t.Fatalf("GetInstance default: want context.Canceled, got %v", err)
	}
}

func TestRepo_Find(t *testing.T) {
	ctx := context.Background()

	// Uses provided func
	m := &Repo{
		FindFn: func(_ context.Context, f domain.Filter) ([]domain.Request, int64, error) {
			if f.Status != domain.StatusPending {
				t.Fatalf("Find filter mismatch: %+v", f)
			}
			return []domain.Request{{ID: 1}}, 1, nil
		},
	}
	rows, total, err := m.Find(ctx, domain.Filter{Status: domain.StatusPending})
	if err != nil {
		t.Fatalf("Find: unexpected err: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("Find: rows=%d total=%d", len(rows), total)
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	if _, _, err := m.Find(ctx, domain.Filter{}); err != context.Canceled {
		t.Fatalf("Find default: want context.Canceled, got %v", err)
	}
}
