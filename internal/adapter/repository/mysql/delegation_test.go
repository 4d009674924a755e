package mysql

import (
	"context"
	"testing"
	"time"

	delDomain "approvalflow-backend/internal/domain/delegation"
	"approvalflow-backend/pkg/id"
)

func strPtr(s string) *string { return &s }

func makeDelegation(from, to string, code *string, start, end time.Time) *delDomain.Delegation {
	return &delDomain.Delegation{
		DelegationID:     id.NewID32(),
		FromUserID:       from,
		ToUserID:         to,
		WorkflowCode:     code,
		StartDate:        start,
		EndDate:          end,
		DelegationActive: true,
		IsActive:         true,
	}
}

func TestDelegationRepository_FindActive(t *testing.T) {
	db := openTestDB(t)
	repo := NewDelegationRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	unscoped := makeDelegation("alice", "bob", nil, past, future)
	scoped := makeDelegation("alice", "carol", strPtr("EXP-APPROVAL"), past, future)
	otherScope := makeDelegation("alice", "dave", strPtr("PO-APPROVAL"), past, future)
	expired := makeDelegation("alice", "erin", nil, past.Add(-48*time.Hour), past)
	switchedOff := makeDelegation("alice", "frank", nil, past, future)
	switchedOff.DelegationActive = false

	for _, d := range []*delDomain.Delegation{unscoped, scoped, otherScope, expired, switchedOff} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.FindActive(ctx, "alice", "EXP-APPROVAL", now)
	if err != nil {
		t.Fatalf("FindActive: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("scoped query: %d rows", len(got))
	}
	tos := map[string]bool{}
	for _, d := range got {
		tos[d.ToUserID] = true
	}
	if !tos["bob"] || !tos["carol"] {
		t.Fatalf("scoped query: %v", tos)
	}

	// empty code matches every scope
	got, err = repo.FindActive(ctx, "alice", "", now)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("unscoped query: %d rows", len(got))
	}

	// window boundaries are inclusive
	got, err = repo.FindActive(ctx, "alice", "", future)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("at end boundary: %d rows", len(got))
	}
}

func TestDelegationRepository_FindOverlapping(t *testing.T) {
	db := openTestDB(t)
	repo := NewDelegationRepository(db)
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	if err := repo.Create(ctx, makeDelegation("alice", "bob", nil, start, end)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, makeDelegation("alice", "bob", strPtr("EXP-APPROVAL"), start, end)); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name       string
		code       *string
		start, end time.Time
		want       int
	}{
		{"same window same scope", nil, start, end, 1},
		{"touching end boundary", nil, end, end.Add(24 * time.Hour), 1},
		{"touching start boundary", nil, start.Add(-24 * time.Hour), start, 1},
		{"disjoint after", nil, end.Add(time.Hour), end.Add(48 * time.Hour), 0},
		{"different scope", strPtr("PO-APPROVAL"), start, end, 0},
		{"matching scope", strPtr("EXP-APPROVAL"), start, end, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.FindOverlapping(ctx, "alice", "bob", tc.code, tc.start, tc.end)
			if err != nil {
				t.Fatalf("FindOverlapping: %v", err)
			}
			if len(got) != tc.want {
				t.Fatalf("rows=%d, want %d", len(got), tc.want)
			}
		})
	}
}

func TestDelegationRepository_DeactivateExpired(t *testing.T) {
	db := openTestDB(t)
	repo := NewDelegationRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	expired := makeDelegation("alice", "bob", nil, now.Add(-72*time.Hour), now.Add(-time.Hour))
	current := makeDelegation("alice", "carol", nil, now.Add(-time.Hour), now.Add(72*time.Hour))
	for _, d := range []*delDomain.Delegation{expired, current} {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	n, err := repo.DeactivateExpired(ctx, now)
	if err != nil {
		t.Fatalf("DeactivateExpired: %v", err)
	}
	if n != 1 {
		t.Fatalf("first sweep n=%d", n)
	}

	// second sweep matches nothing
	n, err = repo.DeactivateExpired(ctx, now)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("second sweep n=%d", n)
	}

	got, err := repo.GetByDelegationID(ctx, current.DelegationID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.DelegationActive {
		t.Fatal("current delegation was deactivated")
	}
}

func TestDelegationRepository_SoftDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewDelegationRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	d := makeDelegation("alice", "bob", nil, now, now.Add(time.Hour))
	if err := repo.Create(ctx, d); err != nil {
		t.Fatal(err)
	}
	if err := repo.SoftDelete(ctx, d.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	rows, err := repo.ListByUser(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("deleted delegation still listed: %+v", rows)
	}
}
