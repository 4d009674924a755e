package comment

import "context"

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id uint64) (*Comment, error)
	// ListActiveByRequest returns active comments for a request ordered by
	// comment_date ascending (the order the thread builder expects).
	ListActiveByRequest(ctx context.Context, requestNumericID uint64) ([]Comment, error)
	Save(ctx context.Context, c *Comment) error
}
