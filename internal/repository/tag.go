package repository

import (
	"context"

	"github.com/bloghub/bloghub/internal/models"
	"github.com/bloghub/bloghub/internal/storage"
)

type TagRepository struct {
	db *storage.Postgres
}

func NewTagRepository(db *storage.Postgres) *TagRepository {
	return &TagRepository{db: db}
}

// Returns the tag with the given name, creating it when unseen. Repeated
// use of the same name never duplicates it.
func (r *TagRepository) GetOrCreate(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.DB.WithContext(ctx).
		Where(models.Tag{Name: name}).
		FirstOrCreate(&tag).Error
	if err != nil {
		return nil, err
	}

	return &tag, nil
}
