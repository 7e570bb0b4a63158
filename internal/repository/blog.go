package repository

import (
	"context"

	"github.com/bloghub/bloghub/internal/models"
	"github.com/bloghub/bloghub/internal/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogRepository struct {
	db *storage.Postgres
}

func NewBlogRepository(db *storage.Postgres) *BlogRepository {
	return &BlogRepository{db: db}
}

// Inserts a blog along with its category and tag associations.
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	return r.db.DB.WithContext(ctx).Create(blog).Error
}

func (r *BlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&blog).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}

	return &blog, err
}

func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.DB.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&blog).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}

	return &blog, err
}

// Retrieves one page of an author's blogs, newest first.
func (r *BlogRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, page, size int) ([]models.Blog, int64, error) {
	var total int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.Blog{}).
		Where("author_id = ?", authorID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var blogs []models.Blog
	err = r.db.DB.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		Where("author_id = ?", authorID).
		Order("created_at DESC, updated_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&blogs).Error

	return blogs, total, err
}

// Retrieves every blog, newest first, without pagination.
func (r *BlogRepository) ListAll(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.DB.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		Order("created_at DESC, updated_at DESC").
		Find(&blogs).Error

	return blogs, err
}

func (r *BlogRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status int) error {
	return r.db.DB.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.DB.WithContext(ctx).
		Select("Categories", "Tags").
		Delete(&models.Blog{ID: id}).Error
}
