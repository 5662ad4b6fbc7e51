package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectCategory groups projects on the listing page.
type ProjectCategory struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	SortOrder int       `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

func (c *ProjectCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *ProjectCategory) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return nil
}

// Project represents a portfolio project with its linked tools.
type Project struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string     `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string     `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	Category    string     `json:"category" db:"category" gorm:"type:text;not null;default:''"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty" db:"category_id" gorm:"type:uuid;index"`
	ImageURL    string     `json:"image_url" db:"image_url" gorm:"type:text;not null;default:''"`
	LiveURL     string     `json:"live_url" db:"live_url" gorm:"type:text;not null;default:''"`
	GithubURL   string     `json:"github_url" db:"github_url" gorm:"type:text;not null;default:''"`

	IsFeatured     bool `json:"is_featured" db:"is_featured" gorm:"not null;default:false"`
	ShowOnHomepage bool `json:"show_on_homepage" db:"show_on_homepage" gorm:"not null"`
	SortOrder      int  `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	ProjectCategory *ProjectCategory `json:"project_category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Tools           []Tool           `json:"tools,omitempty" gorm:"many2many:project_tools"`
}

// DisplayCategory returns the linked category's name when present, falling
// back to the legacy free-text category field.
func (p Project) DisplayCategory() string {
	if p.ProjectCategory != nil {
		return p.ProjectCategory.Name
	}
	return p.Category
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Project) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	return nil
}
