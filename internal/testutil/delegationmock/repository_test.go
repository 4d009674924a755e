package delegationmock

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "approvalflow-backend/internal/domain/delegation"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	d := &domain.Delegation{FromUserID: "alice", ToUserID: "bob"}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Delegation) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != d {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, d); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, d); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

// FindActive and FindOverlapping default to an empty result rather than
// context.Canceled: most tests want "no delegations registered" without
// wiring anything.
func TestRepo_RegistryDefaultsAreEmpty(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	m := &Repo{}

	rows, err := m.FindActive(ctx, "alice", "EXP-APPROVAL", now)
	if err != nil || rows != nil {
		t.Fatalf("FindActive default: want (nil, nil), got (%v, %v)", rows, err)
	}

	rows, err = m.FindOverlapping(ctx, "alice", "bob", nil, now, now.Add(time.Hour))
	if err != nil || rows != nil {
		t.Fatalf("FindOverlapping default: want (nil, nil), got (%v, %v)", rows, err)
	}

	n, err := m.DeactivateExpired(ctx, now)
	if err != nil || n != 0 {
		t.Fatalf("DeactivateExpired default: want (0, nil), got (%d, %v)", n, err)
	}
}

func TestRepo_GetByDelegationID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Delegation{DelegationID: "cccccccccccccccccccccccccccccccc"}

	// Uses provided func
	m := &Repo{
		GetByDelegationIDFn: func(_ context.Context, delegationID string) (*domain.Delegation, error) {
			if delegationID != want.DelegationID {
				t.Fatalf("GetByDelegationID id mismatch: got %s", delegationID)
			}
			return want, nil
		},
	}
	got, err := m.GetByDelegationID(ctx, want.DelegationID)
	if err != nil {
		t.Fatalf("GetByDelegationID: unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("GetByDelegationID: want %+v, got %+v", want, got)
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	if _, err := m.GetByDelegationID(ctx, want.DelegationID); err != context.Canceled {
		t.Fatalf("GetByDelegationID default: want context.Canceled, got %v", err)
	}
}
