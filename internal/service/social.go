package service

import (
	"context"

	"github.com/bloghub/bloghub/internal/apperr"
	"github.com/bloghub/bloghub/internal/models"
	"github.com/bloghub/bloghub/internal/repository"
	"github.com/google/uuid"
)

type SocialService struct {
	repo  *repository.SocialRepository
	blogs BlogStore
	users UserStore
}

func NewSocialService(repo *repository.SocialRepository, blogs BlogStore, users UserStore) *SocialService {
	return &SocialService{
		repo:  repo,
		blogs: blogs,
		users: users,
	}
}

// Records a like; idempotent per (reader, blog).
func (s *SocialService) LikeBlog(ctx context.Context, reader *models.User, blogID string) error {
	id, err := uuid.Parse(blogID)
	if err != nil {
		return apperr.Validation("invalid blog_id")
	}

	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if blog == nil {
		return apperr.NotFound("No such blog exists")
	}

	return s.repo.LikeBlog(ctx, reader.ID, blog.ID)
}

// Records a follow; idempotent per (follower, author). Following
// yourself is rejected.
func (s *SocialService) FollowAuthor(ctx context.Context, follower *models.User, authorID string) error {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return err
	}
	if author == nil {
		return apperr.NotFound("Author not found")
	}

	if author.ID == follower.ID {
		return apperr.Validation("you cannot follow yourself")
	}

	return s.repo.FollowAuthor(ctx, follower.ID, author.ID)
}
