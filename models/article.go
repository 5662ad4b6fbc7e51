package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article statuses.
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// Tag labels blog articles and acts as a filter facet on the blog listing.
type Tag struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`

	Articles []Article `json:"articles,omitempty" gorm:"many2many:article_tags"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Tag) BeforeSave(tx *gorm.DB) error {
	if t.Slug == "" {
		t.Slug = Slugify(t.Name)
	}
	return nil
}

// Article represents a blog article with derived reading time.
type Article struct {
	ID               uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title            string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug             string     `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Excerpt          string     `json:"excerpt" db:"excerpt" gorm:"type:text;not null;default:''"`
	Content          string     `json:"content" db:"content" gorm:"type:text;not null;default:''"`
	FeaturedImageURL string     `json:"featured_image_url" db:"featured_image_url" gorm:"type:text;not null;default:''"`
	Status           string     `json:"status" db:"status" gorm:"type:text;not null;default:draft;index"`
	IsFeatured       bool       `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	ReadingTime      int        `json:"reading_time" db:"reading_time" gorm:"not null;default:1"`
	PublishedAt      *time.Time `json:"published_at,omitempty" db:"published_at" gorm:"index"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`

	Tags []Tag `json:"tags,omitempty" gorm:"many2many:article_tags"`
}

// IsPublished reports whether the article is visible on the public blog.
func (a Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// BeforeSave derives the slug and recomputes reading time on every write.
// Reading time is recomputed unconditionally whenever content is present so
// edits can never leave a stale estimate behind.
func (a *Article) BeforeSave(tx *gorm.DB) error {
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	if a.Status == "" {
		a.Status = ArticleStatusDraft
	}
	if a.Content != "" {
		a.ReadingTime = ReadingTime(a.Content)
	}
	if a.ReadingTime < 1 {
		a.ReadingTime = 1
	}
	return nil
}

// Publish marks the article published, setting the publication timestamp
// only the first time.
func (a *Article) Publish(now time.Time) {
	a.Status = ArticleStatusPublished
	if a.PublishedAt == nil {
		a.PublishedAt = &now
	}
}
