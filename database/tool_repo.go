package database

import (
	"github.com/google/uuid"
	"github.com/johnkalayu/portfolio-backend/models"
	"gorm.io/gorm"
)

type ToolRepo struct {
	db *gorm.DB
}

func NewToolRepo(db *gorm.DB) *ToolRepo {
	return &ToolRepo{db}
}

// FindAll returns every tool in display order.
func (r *ToolRepo) FindAll() ([]*models.Tool, error) {
	var tools []*models.Tool
	err := r.db.Order("sort_order ASC, name ASC").Find(&tools).Error
	return tools, err
}

// ListActive returns active tools in display order.
func (r *ToolRepo) ListActive() ([]*models.Tool, error) {
	var tools []*models.Tool
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC, name ASC").Find(&tools).Error
	return tools, err
}

// FindByName matches a tool by case-insensitive exact name.
func (r *ToolRepo) FindByName(name string) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.First(&tool, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// FindByID returns a tool by its ID.
func (r *ToolRepo) FindByID(id uuid.UUID) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.First(&tool, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tool, nil
}

// Save inserts or updates a tool.
func (r *ToolRepo) Save(tool *models.Tool) error {
	return r.db.Save(tool).Error
}

// Delete removes a tool and its project links.
func (r *ToolRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Tool{ID: id}).Association("Projects").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Tool{}, "id = ?", id).Error
	})
}
