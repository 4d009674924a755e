package mysql

import (
	"context"
	"time"

	delDomain "approvalflow-backend/internal/domain/delegation"

	"gorm.io/gorm"
)

type DelegationRepository struct{ db *gorm.DB }

func NewDelegationRepository(db *gorm.DB) *DelegationRepository {
	return &DelegationRepository{db: db}
}

func (r *DelegationRepository) Create(ctx context.Context, d *delDomain.Delegation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DelegationRepository) GetByDelegationID(ctx context.Context, delegationID string) (*delDomain.Delegation, error) {
	var out delDomain.Delegation
	res := r.db.WithContext(ctx).
		Where("delegation_id = ?", delegationID).
		First(&out)
	return &out, res.Error
}

func (r *DelegationRepository) FindActive(ctx context.Context, fromUserID, workflowCode string, at time.Time) ([]delDomain.Delegation, error) {
	q := r.db.WithContext(ctx).
		Where("from_user_id = ? AND delegation_active = ? AND is_active = ?", fromUserID, true, true).
		Where("start_date <= ? AND end_date >= ?", at, at)
	if workflowCode != "" {
		// scoped to this code, or unscoped (null = wildcard)
		q = q.Where("(workflow_code IS NULL OR workflow_code = ?)", workflowCode)
	}
	var out []delDomain.Delegation
	err := q.Find(&out).Error
	return out, err
}

func (r *DelegationRepository) FindOverlapping(ctx context.Context, fromUserID, toUserID string, workflowCode *string, start, end time.Time) ([]delDomain.Delegation, error) {
	q := r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		Where("delegation_active = ? AND is_active = ?", true, true).
		// inclusive-boundary overlap test
		Where("start_date <= ? AND end_date >= ?", end, start)
	if workflowCode == nil {
		q = q.Where("workflow_code IS NULL")
	} else {
		q = q.Where("workflow_code = ?", *workflowCode)
	}
	var out []delDomain.Delegation
	err := q.Find(&out).Error
	return out, err
}

func (r *DelegationRepository) ListByUser(ctx context.Context, fromUserID string) ([]delDomain.Delegation, error) {
	var out []delDomain.Delegation
	err := r.db.WithContext(ctx).
		Where("from_user_id = ?", fromUserID).
		Order("start_date DESC").
		Find(&out).Error
	return out, err
}

func (r *DelegationRepository) Save(ctx context.Context, d *delDomain.Delegation) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DelegationRepository) SoftDelete(ctx context.Context, id uint64) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Model(&delDomain.Delegation{}).Where("id = ?", id).Update("is_active", false).Error; err != nil {
		return err
	}
	return tx.Delete(&delDomain.Delegation{}, id).Error
}

// DeactivateExpired is a pure conditional update: the predicate is stable,
// so repeated or concurrent sweeps match zero rows the second time.
func (r *DelegationRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&delDomain.Delegation{}).
		Where("delegation_active = ? AND end_date <= ?", true, now).
		Update("delegation_active", false)
	return res.RowsAffected, res.Error
}
