package models

import (
	"time"

	"github.com/google/uuid"
)

type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReaderID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_like_reader_blog;not null" json:"reader_id"`
	BlogID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_like_reader_blog;not null" json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follow_pair;not null" json:"follower_id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follow_pair;not null" json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
