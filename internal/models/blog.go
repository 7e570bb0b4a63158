package models

import (
	"time"

	"github.com/bloghub/bloghub/internal/slug"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = 0
	StatusPublished = 1
)

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex" json:"slug"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}

	return nil
}

func (Category) TableName() string {
	return "categories"
}

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

func (Tag) TableName() string {
	return "tags"
}

type Blog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title      string     `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Slug       string     `gorm:"size:200;uniqueIndex" json:"slug"`
	Content    string     `gorm:"type:text" json:"content"`
	Status     int        `gorm:"default:0" json:"status"`
	AuthorID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"author_id"`
	Author     *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Categories []Category `gorm:"many2many:blog_categories" json:"categories"`
	Tags       []Tag      `gorm:"many2many:blog_tags" json:"tags"`
	Likes      int64      `gorm:"-" json:"likes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Slug is derived from the title once, at creation, when not supplied.
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Slug == "" {
		b.Slug = slug.Make(b.Title)
	}

	return nil
}

func (Blog) TableName() string {
	return "blogs"
}
