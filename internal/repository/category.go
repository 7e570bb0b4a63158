package repository

import (
	"context"

	"github.com/bloghub/bloghub/internal/models"
	"github.com/bloghub/bloghub/internal/storage"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *storage.Postgres
}

func NewCategoryRepository(db *storage.Postgres) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// A category row annotated with its computed blog count.
type CategoryWithCount struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	BlogCount int64  `json:"blog_count"`
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.DB.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&category).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}

	return &category, err
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.DB.WithContext(ctx).
		Where("name = ?", name).
		First(&category).Error

	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}

	return &category, err
}

// Resolves categories by exact name match. Names not present simply do
// not appear in the result; nothing is created here.
func (r *CategoryRepository) FindByNames(ctx context.Context, names []string) ([]models.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var categories []models.Category
	err := r.db.DB.WithContext(ctx).
		Where("name IN ?", names).
		Find(&categories).Error

	return categories, err
}

// Retrieves one page of categories with their associated blog counts.
func (r *CategoryRepository) ListWithCounts(ctx context.Context, page, size int) ([]CategoryWithCount, int64, error) {
	var total int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.Category{}).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var rows []CategoryWithCount
	err = r.db.DB.WithContext(ctx).
		Model(&models.Category{}).
		Select("categories.id, categories.name, categories.slug, COUNT(blog_categories.blog_id) AS blog_count").
		Joins("LEFT JOIN blog_categories ON blog_categories.category_id = categories.id").
		Group("categories.id").
		Order("categories.id").
		Limit(size).
		Offset((page - 1) * size).
		Scan(&rows).Error

	return rows, total, err
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Category{}).Error
}
