package mysql

import (
	"context"

	cmtDomain "approvalflow-backend/internal/domain/comment"

	"gorm.io/gorm"
)

type CommentRepository struct{ db *gorm.DB }

func NewCommentRepository(db *gorm.DB) *CommentRepository { return &CommentRepository{db: db} }

func (r *CommentRepository) Create(ctx context.Context, c *cmtDomain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CommentRepository) GetByID(ctx context.Context, id uint64) (*cmtDomain.Comment, error) {
	var out cmtDomain.Comment
	res := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&out)
	return &out, res.Error
}

func (r *CommentRepository) ListActiveByRequest(ctx context.Context, requestNumericID uint64) ([]cmtDomain.Comment, error) {
	var out []cmtDomain.Comment
	err := r.db.WithContext(ctx).
		Where("request_id = ? AND is_active = ?", requestNumericID, true).
		Order("comment_date ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *CommentRepository) Save(ctx context.Context, c *cmtDomain.Comment) error {
	return r.db.WithContext(ctx).Save(c).Error
}
