package mysql

import (
	"context"
	"fmt"

	"approvalflow-backend/internal/domain/apperr"
	reqDomain "approvalflow-backend/internal/domain/request"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, req *reqDomain.Request) error {
	return r.db.WithContext(ctx).Omit("StepInstances").Create(req).Error
}

func (r *RequestRepository) CreateInstances(ctx context.Context, instances []*reqDomain.StepInstance) error {
	return r.db.WithContext(ctx).Create(instances).Error
}

func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*reqDomain.Request, error) {
	var out reqDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *RequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*reqDomain.Request, error) {
	q := r.db.WithContext(ctx)
	// sqlite has no SELECT ... FOR UPDATE; its single-writer lock covers
	// the test path.
	if q.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out reqDomain.Request
	res := q.Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *RequestRepository) GetAggregate(ctx context.Context, requestID string) (*reqDomain.Request, error) {
	var out reqDomain.Request
	res := r.db.WithContext(ctx).
		Preload("StepInstances", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Preload("StepInstances.Actions", func(db *gorm.DB) *gorm.DB {
			return db.Order("action_date ASC, id ASC")
		}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *RequestRepository) GetInstance(ctx context.Context, requestNumericID uint64, stepOrder int) (*reqDomain.StepInstance, error) {
	var out reqDomain.StepInstance
	res := r.db.WithContext(ctx).
		Where("request_id = ? AND step_order = ?", requestNumericID, stepOrder).
		First(&out)
	return &out, res.Error
}

func (r *RequestRepository) GetActionByApprover(ctx context.Context, stepInstanceID uint64, approverID string) (*reqDomain.Action, error) {
	var out reqDomain.Action
	res := r.db.WithContext(ctx).
		Where("step_instance_id = ? AND approver_id = ?", stepInstanceID, approverID).
		First(&out)
	return &out, res.Error
}

func (r *RequestRepository) CreateAction(ctx context.Context, a *reqDomain.Action) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// Save updates every column under a lock_version check; a stale write
// surfaces a conflict instead of overwriting.
func (r *RequestRepository) Save(ctx context.Context, req *reqDomain.Request) error {
	prev := req.LockVersion
	req.LockVersion = prev + 1
	res := r.db.WithContext(ctx).
		Model(&reqDomain.Request{}).
		Where("id = ? AND lock_version = ?", req.ID, prev).
		Select("*").Omit("id", "created_at", "StepInstances").
		Updates(req)
	if res.Error != nil {
		req.LockVersion = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		req.LockVersion = prev
		return apperr.Conflict("request %s was modified concurrently", req.RequestID)
	}
	return nil
}

func (r *RequestRepository) SaveInstance(ctx context.Context, si *reqDomain.StepInstance) error {
	prev := si.LockVersion
	si.LockVersion = prev + 1
	res := r.db.WithContext(ctx).
		Model(&reqDomain.StepInstance{}).
		Where("id = ? AND lock_version = ?", si.ID, prev).
		Select("*").Omit("id", "created_at", "Actions").
		Updates(si)
	if res.Error != nil {
		si.LockVersion = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		si.LockVersion = prev
		return apperr.Conflict("step instance %d was modified concurrently", si.ID)
	}
	return nil
}

func (r *RequestRepository) Find(ctx context.Context, f reqDomain.Filter) ([]reqDomain.Request, int64, error) {
	q := r.applyFilter(r.db.WithContext(ctx).Model(&reqDomain.Request{}), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []reqDomain.Request
	err := q.
		Order(fmt.Sprintf("%s %s", f.SortBy, f.SortDir)).
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *RequestRepository) FindPendingFor(ctx context.Context, userID string, f reqDomain.Filter) ([]reqDomain.Request, int64, error) {
	q := r.applyFilter(r.db.WithContext(ctx).Model(&reqDomain.Request{}), f).
		Joins("JOIN approval_step_instances si ON si.request_id = approval_requests.id AND si.step_order = approval_requests.current_step_order").
		Where("approval_requests.status = ?", reqDomain.StatusPending).
		Where("si.status = ?", reqDomain.InstancePending).
		// approvers are stored as a JSON array of quoted ids; LIKE on the
		// quoted form stays portable across mysql and sqlite
		Where("si.assigned_approvers LIKE ?", `%"`+userID+`"%`)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []reqDomain.Request
	err := q.
		Order(fmt.Sprintf("approval_requests.%s %s", f.SortBy, f.SortDir)).
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *RequestRepository) applyFilter(q *gorm.DB, f reqDomain.Filter) *gorm.DB {
	if f.Status != "" {
		q = q.Where("approval_requests.status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}
	if f.EntityType != "" {
		q = q.Where("entity_type = ?", f.EntityType)
	}
	if f.RequesterID != "" {
		q = q.Where("requester_id = ?", f.RequesterID)
	}
	if f.WorkflowCode != "" {
		q = q.Where("workflow_code = ?", f.WorkflowCode)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("(title LIKE ? OR approval_requests.description LIKE ?)", like, like)
	}
	if f.DateFrom != nil {
		q = q.Where("approval_requests.created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("approval_requests.created_at <= ?", *f.DateTo)
	}
	return q
}
