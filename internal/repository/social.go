package repository

import (
	"context"

	"github.com/bloghub/bloghub/internal/models"
	"github.com/bloghub/bloghub/internal/storage"
	"github.com/google/uuid"
)

type SocialRepository struct {
	db *storage.Postgres
}

func NewSocialRepository(db *storage.Postgres) *SocialRepository {
	return &SocialRepository{db: db}
}

// Records a like; already-liked is a no-op.
func (r *SocialRepository) LikeBlog(ctx context.Context, readerID, blogID uuid.UUID) error {
	var like models.Like
	return r.db.DB.WithContext(ctx).
		Where(models.Like{ReaderID: readerID, BlogID: blogID}).
		FirstOrCreate(&like).Error
}

func (r *SocialRepository) CountLikes(ctx context.Context, blogID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.Like{}).
		Where("blog_id = ?", blogID).
		Count(&count).Error

	return count, err
}

// Records a follow; already-following is a no-op.
func (r *SocialRepository) FollowAuthor(ctx context.Context, followerID, authorID uuid.UUID) error {
	var follow models.Follow
	return r.db.DB.WithContext(ctx).
		Where(models.Follow{FollowerID: followerID, AuthorID: authorID}).
		FirstOrCreate(&follow).Error
}
