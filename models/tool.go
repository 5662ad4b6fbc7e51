package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tool categories.
const (
	ToolCategoryFrontend = "frontend"
	ToolCategoryBackend  = "backend"
	ToolCategoryDevops   = "devops"
	ToolCategoryDatabase = "database"
	ToolCategoryCloud    = "cloud"
	ToolCategoryOther    = "other"
)

// ToolCategoryLabels maps category keys to their display labels.
var ToolCategoryLabels = map[string]string{
	ToolCategoryFrontend: "Frontend",
	ToolCategoryBackend:  "Backend",
	ToolCategoryDevops:   "DevOps",
	ToolCategoryDatabase: "Database",
	ToolCategoryCloud:    "Cloud",
	ToolCategoryOther:    "Other",
}

// Tool represents a technology or skill shown on the site and linked to
// projects.
type Tool struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null;default:other"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	IconPath    string    `json:"icon_path" db:"icon_path" gorm:"type:text;not null;default:''"`
	Color       string    `json:"color" db:"color" gorm:"type:text;not null;default:''"`
	Link        string    `json:"link" db:"link" gorm:"type:text;not null;default:''"`
	IsActive    bool      `json:"is_active" db:"is_active" gorm:"not null"`
	SortOrder   int       `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	Projects []Project `json:"projects,omitempty" gorm:"many2many:project_tools"`
}

// CategoryLabel returns the display label for the tool's category. Unknown
// keys are returned verbatim so legacy rows still render.
func (t Tool) CategoryLabel() string {
	if label, ok := ToolCategoryLabels[t.Category]; ok {
		return label
	}
	return t.Category
}

func (t *Tool) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Tool) BeforeSave(tx *gorm.DB) error {
	if t.Slug == "" {
		t.Slug = Slugify(t.Name)
	}
	if t.Category == "" {
		t.Category = ToolCategoryOther
	}
	return nil
}
