package comment

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"id"`
	RequestID       uint64         `gorm:"not null;index" json:"-"`
	ParentCommentID *uint64        `gorm:"index" json:"parent_comment_id,omitempty"`
	UserID          string         `gorm:"size:64;not null" json:"user_id"`
	UserName        string         `gorm:"size:200" json:"user_name"`
	Content         string         `gorm:"type:text;not null" json:"content"`
	CommentDate     time.Time      `gorm:"not null" json:"comment_date"`
	IsActive        bool           `gorm:"not null;default:true" json:"is_active"`
	LockVersion     int            `gorm:"not null;default:0" json:"-"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Populated in memory when building a thread; never persisted.
	Replies []*Comment `gorm:"-" json:"replies,omitempty"`
}

func (Comment) TableName() string { return "request_comments" }
