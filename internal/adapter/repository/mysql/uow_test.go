package mysql

import (
	"context"
	"errors"
	"testing"

	reqDomain "approvalflow-backend/internal/domain/request"
	"approvalflow-backend/internal/domain/uow"

	"gorm.io/gorm"
)

func TestGormUoW_Commit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	req := makeRequest("committed")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.Requests.Create(ctx, req)
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if _, err := NewRequestRepository(db).GetByRequestID(ctx, req.RequestID); err != nil {
		t.Fatalf("after commit: %v", err)
	}
}

func TestGormUoW_Rollback(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	req := makeRequest("rolled back")
	boom := errors.New("boom")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithinTx err: %v", err)
	}

	_, err = NewRequestRepository(db).GetByRequestID(ctx, req.RequestID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound after rollback, got %v", err)
	}
}

func TestGormUoW_WithinRequestTx(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	seeded := makeRequest("locked")
	if err := NewRequestRepository(db).Create(ctx, seeded); err != nil {
		t.Fatal(err)
	}

	err := u.WithinRequestTx(ctx, seeded.RequestID, func(r uow.Repos, req *reqDomain.Request) error {
		if req.RequestID != seeded.RequestID {
			t.Fatalf("loaded %s", req.RequestID)
		}
		req.Status = reqDomain.StatusWithdrawn
		return r.Requests.Save(ctx, req)
	})
	if err != nil {
		t.Fatalf("WithinRequestTx: %v", err)
	}

	got, err := NewRequestRepository(db).GetByRequestID(ctx, seeded.RequestID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != reqDomain.StatusWithdrawn {
		t.Fatalf("status=%s", got.Status)
	}

	// unknown request id surfaces the record-not-found from the lock load
	err = u.WithinRequestTx(ctx, "ffffffffffffffffffffffffffffffff", func(uow.Repos, *reqDomain.Request) error {
		t.Fatal("fn must not run for an unknown request")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}
