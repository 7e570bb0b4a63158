package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/bloghub/bloghub/internal/apperr"
	"github.com/bloghub/bloghub/internal/models"
	"github.com/bloghub/bloghub/internal/pagination"
	"github.com/bloghub/bloghub/internal/repository"
)

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	ListWithCounts(ctx context.Context, page, size int) ([]repository.CategoryWithCount, int64, error)
	Delete(ctx context.Context, id uint) error
}

type CategoryService struct {
	store CategoryStore
}

func NewCategoryService(store CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

// Creates a category. Names are stored lowercase so later lookups with
// any casing resolve to the same category; the slug is derived on save.
func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	folded := strings.ToLower(strings.TrimSpace(name))
	if folded == "" {
		return nil, apperr.ValidationFields("invalid category", map[string]string{"name": "this field is required"})
	}

	existing, err := s.store.FindByName(ctx, folded)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ValidationFields("invalid category", map[string]string{"name": "category with this name already exists"})
	}

	category := &models.Category{Name: folded}
	if err := s.store.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Retrieves one page of categories annotated with blog counts.
func (s *CategoryService) List(ctx context.Context, page int) ([]repository.CategoryWithCount, int64, error) {
	return s.store.ListWithCounts(ctx, page, pagination.DefaultPageSize)
}

// Deletes a category by id and returns its name for the response.
func (s *CategoryService) Delete(ctx context.Context, idStr string) (string, error) {
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return "", apperr.Validation("invalid category_id")
	}

	category, err := s.store.FindByID(ctx, uint(id))
	if err != nil {
		return "", err
	}
	if category == nil {
		return "", apperr.NotFound("No such category exists")
	}

	if err := s.store.Delete(ctx, category.ID); err != nil {
		return "", err
	}

	return category.Name, nil
}
