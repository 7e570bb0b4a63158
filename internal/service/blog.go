package service

import (
	"context"
	"strings"

	"github.com/bloghub/bloghub/internal/apperr"
	"github.com/bloghub/bloghub/internal/guard"
	"github.com/bloghub/bloghub/internal/models"
	"github.com/bloghub/bloghub/internal/pagination"
	"github.com/google/uuid"
)

// Narrow store interfaces so the resolution and ownership rules are
// unit-testable against in-memory fakes. The gorm repositories satisfy
// them.

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type BlogStore interface {
	Create(ctx context.Context, blog *models.Blog) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*models.Blog, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, page, size int) ([]models.Blog, int64, error)
	ListAll(ctx context.Context) ([]models.Blog, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryResolver interface {
	FindByNames(ctx context.Context, names []string) ([]models.Category, error)
}

type TagResolver interface {
	GetOrCreate(ctx context.Context, name string) (*models.Tag, error)
}

type LikeCounter interface {
	CountLikes(ctx context.Context, blogID uuid.UUID) (int64, error)
}

type BlogService struct {
	users      UserStore
	blogs      BlogStore
	categories CategoryResolver
	tags       TagResolver
	likes      LikeCounter
}

func NewBlogService(users UserStore, blogs BlogStore, categories CategoryResolver, tags TagResolver, likes LikeCounter) *BlogService {
	return &BlogService{
		users:      users,
		blogs:      blogs,
		categories: categories,
		tags:       tags,
		likes:      likes,
	}
}

type CreateBlogInput struct {
	Title   string
	Content string
	Status  int
}

// Creates a blog for the given author. Category names are resolved by
// case-folded exact match against existing categories; unknown names
// silently associate nothing. Tag names are get-or-create, also
// case-folded.
func (s *BlogService) Create(ctx context.Context, authorID string, in CreateBlogInput, categoryNames, tagNames []string) (*models.Blog, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.ValidationFields("invalid blog data", map[string]string{"title": "this field is required"})
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, apperr.ValidationFields("invalid blog data", map[string]string{"content": "this field is required"})
	}
	if in.Status != models.StatusDraft && in.Status != models.StatusPublished {
		return nil, apperr.ValidationFields("invalid blog data", map[string]string{"status": "must be 0 (draft) or 1 (published)"})
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperr.NotFound("Author not found")
	}

	categories, err := s.categories.FindByNames(ctx, foldNames(categoryNames))
	if err != nil {
		return nil, err
	}

	var tags []models.Tag
	for _, name := range foldNames(tagNames) {
		tag, err := s.tags.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	blog := &models.Blog{
		Title:      in.Title,
		Content:    in.Content,
		Status:     in.Status,
		AuthorID:   author.ID,
		Categories: categories,
		Tags:       tags,
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// Retrieves one page of the author's own blogs, newest first.
func (s *BlogService) ListOwn(ctx context.Context, authorID uuid.UUID, page int) ([]models.Blog, int64, error) {
	return s.blogs.ListByAuthor(ctx, authorID, page, pagination.DefaultPageSize)
}

// Retrieves every blog, newest first, without pagination. The asymmetry
// with ListOwn is intentional observed behavior.
func (s *BlogService) ListPublic(ctx context.Context) ([]models.Blog, error) {
	return s.blogs.ListAll(ctx)
}

// Retrieves one blog's full detail by slug, including its like count.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	blog, err := s.blogs.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, apperr.NotFound("No such blog exists")
	}

	likes, err := s.likes.CountLikes(ctx, blog.ID)
	if err != nil {
		return nil, err
	}
	blog.Likes = likes

	return blog, nil
}

// Deletes a blog. The blog is looked up first so an absent id is an
// explicit NotFound; then the ownership guard decides.
func (s *BlogService) Delete(ctx context.Context, blogID string, actor *models.User) error {
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

	if !guard.CanMutate(blog, actor) {
		return apperr.Permission("only the blog's author or an admin may delete it")
	}

	return s.blogs.Delete(ctx, id)
}

// Changes a blog's status. Gated by the author role at the endpoint
// level only; no resource-ownership check is applied here.
func (s *BlogService) ChangeStatus(ctx context.Context, blogID string, status int) error {
	if status != models.StatusDraft && status != models.StatusPublished {
		return apperr.Validation("status must be 0 (draft) or 1 (published)")
	}

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

	return s.blogs.UpdateStatus(ctx, id, status)
}

// Lowercases names and drops duplicates and blanks.
func foldNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string

	for _, name := range names {
		folded := strings.ToLower(strings.TrimSpace(name))
		if folded == "" || seen[folded] {
			continue
		}
		seen[folded] = true
		out = append(out, folded)
	}

	return out
}
