package database

import (
	"strings"

	"github.com/google/uuid"
	"github.com/johnkalayu/portfolio-backend/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ProjectFilter narrows the project listing. Zero-valued fields are ignored.
// Tool matches the linked tools by slug or case-insensitive name; a value
// matching no tool yields an empty result set, not an error.
type ProjectFilter struct {
	Query        string
	CategorySlug string
	Tool         string
	FeaturedOnly bool
	HomepageOnly bool
	Limit        int
}

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// List returns projects matching the filter, deduplicated by primary key and
// ordered by (sort_order asc, created_at desc). The many-to-many join can
// emit a project once per matching tool, hence the dedup before returning.
func (r *ProjectRepo) List(filter ProjectFilter) ([]*models.Project, error) {
	tx := r.db.Model(&models.Project{}).
		Preload("Tools").
		Preload("ProjectCategory")

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(projects.title) LIKE ? OR LOWER(projects.description) LIKE ?", pattern, pattern)
	}
	if filter.CategorySlug != "" {
		tx = tx.Joins("JOIN project_categories ON project_categories.id = projects.category_id").
			Where("project_categories.slug = ?", filter.CategorySlug)
	}
	if tool := strings.TrimSpace(filter.Tool); tool != "" {
		tx = tx.Joins("JOIN project_tools ON project_tools.project_id = projects.id").
			Joins("JOIN tools ON tools.id = project_tools.tool_id").
			Where("tools.slug = ? OR LOWER(tools.name) = LOWER(?)", tool, tool)
	}
	if filter.FeaturedOnly {
		tx = tx.Where("projects.is_featured = ?", true)
	}
	if filter.HomepageOnly {
		tx = tx.Where("projects.show_on_homepage = ?", true)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var projects []*models.Project
	err := tx.Order("projects.sort_order ASC, projects.created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return lo.UniqBy(projects, func(p *models.Project) uuid.UUID { return p.ID }), nil
}

// FindByID returns a project by its ID with tools and category preloaded.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Tools").Preload("ProjectCategory").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a project by its slug with tools and category preloaded.
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Tools").Preload("ProjectCategory").First(&project, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Save persists the project's scalar fields and replaces its tool
// associations in one transaction, so either both commit or neither does.
func (r *ProjectRepo) Save(project *models.Project, toolIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(project).Error; err != nil {
			return err
		}
		if toolIDs == nil {
			return nil
		}
		var tools []models.Tool
		if len(toolIDs) > 0 {
			if err := tx.Find(&tools, "id IN ?", toolIDs).Error; err != nil {
				return err
			}
		}
		return tx.Model(project).Association("Tools").Replace(tools)
	})
}

// Delete removes a project and its tool links.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{ID: id}).Association("Tools").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all project categories in display order.
func (r *CategoryRepo) FindAll() ([]*models.ProjectCategory, error) {
	var categories []*models.ProjectCategory
	err := r.db.Order("sort_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

// FindBySlug returns a category by its slug.
func (r *CategoryRepo) FindBySlug(slug string) (*models.ProjectCategory, error) {
	var category models.ProjectCategory
	err := r.db.First(&category, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Save inserts or updates a category.
func (r *CategoryRepo) Save(category *models.ProjectCategory) error {
	return r.db.Save(category).Error
}

// Delete removes a category. Projects referencing it keep their legacy
// free-text category via ON DELETE SET NULL.
func (r *CategoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectCategory{}, "id = ?", id).Error
}
