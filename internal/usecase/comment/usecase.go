package comment

import (
	"context"
	"errors"
	"time"

	"approvalflow-backend/internal/domain/apperr"
	domain "approvalflow-backend/internal/domain/comment"
	reqdomain "approvalflow-backend/internal/domain/request"

	"gorm.io/gorm"
)

type CreateInput struct {
	RequestID       string // public request id
	UserID          string
	UserName        string
	Content         string
	ParentCommentID *uint64
}

type CommentDTO struct {
	ID              uint64        `json:"id"`
	ParentCommentID *uint64       `json:"parent_comment_id,omitempty"`
	UserID          string        `json:"user_id"`
	UserName        string        `json:"user_name,omitempty"`
	Content         string        `json:"content"`
	CommentDate     time.Time     `json:"comment_date"`
	Replies         []*CommentDTO `json:"replies,omitempty"`
}

// Usecase is the comment trail: threaded notes on a request, independent
// of the approval state machine.
type Usecase struct {
	comments domain.Repository
	requests reqdomain.Repository
}

func NewUsecase(comments domain.Repository, requests reqdomain.Repository) *Usecase {
	return &Usecase{comments: comments, requests: requests}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*CommentDTO, error) {
	if in.UserID == "" || in.Content == "" {
		return nil, apperr.Validation("user_id and content are required")
	}
	req, err := u.requests.GetByRequestID(ctx, in.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("request %s not found", in.RequestID)
		}
		return nil, err
	}
	if in.ParentCommentID != nil {
		parent, err := u.comments.GetByID(ctx, *in.ParentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validation("parent comment %d not found", *in.ParentCommentID)
			}
			return nil, err
		}
		if parent.RequestID != req.ID {
			return nil, apperr.Validation("parent comment belongs to another request")
		}
	}

	c := &domain.Comment{
		RequestID:       req.ID,
		ParentCommentID: in.ParentCommentID,
		UserID:          in.UserID,
		UserName:        in.UserName,
		Content:         in.Content,
		CommentDate:     time.Now().UTC(),
		IsActive:        true,
	}
	if err := u.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

// Update edits a comment's content. Author-only.
func (u *Usecase) Update(ctx context.Context, commentID uint64, userID, content string) (*CommentDTO, error) {
	if content == "" {
		return nil, apperr.Validation("content is required")
	}
	c, err := u.get(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, apperr.Forbidden("only the comment author may edit it")
	}
	c.Content = content
	if err := u.comments.Save(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

// Delete flips the comment inactive. Author-only; never removes the row.
func (u *Usecase) Delete(ctx context.Context, commentID uint64, userID string) error {
	c, err := u.get(ctx, commentID)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return apperr.Forbidden("only the comment author may delete it")
	}
	c.IsActive = false
	return u.comments.Save(ctx, c)
}

// Thread returns root comments with nested replies, ordered by
// comment_date ascending. Two passes: id→node map, then parent linking.
// Comments whose parent is missing or filtered out are dropped, not
// surfaced as orphans.
func (u *Usecase) Thread(ctx context.Context, requestID string) ([]*CommentDTO, error) {
	req, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("request %s not found", requestID)
		}
		return nil, err
	}
	rows, err := u.comments.ListActiveByRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*CommentDTO, len(rows))
	for i := range rows {
		byID[rows[i].ID] = toDTO(&rows[i])
	}
	roots := make([]*CommentDTO, 0, len(rows))
	for i := range rows {
		node := byID[rows[i].ID]
		if rows[i].ParentCommentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := byID[*rows[i].ParentCommentID]; ok {
			parent.Replies = append(parent.Replies, node)
		}
	}
	return roots, nil
}

func (u *Usecase) get(ctx context.Context, commentID uint64) (*domain.Comment, error) {
	c, err := u.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("comment %d not found", commentID)
		}
		return nil, err
	}
	return c, nil
}

func toDTO(c *domain.Comment) *CommentDTO {
	return &CommentDTO{
		ID:              c.ID,
		ParentCommentID: c.ParentCommentID,
		UserID:          c.UserID,
		UserName:        c.UserName,
		Content:         c.Content,
		CommentDate:     c.CommentDate,
	}
}
