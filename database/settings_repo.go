package database

import (
	"errors"
	"strings"

	"github.com/johnkalayu/portfolio-backend/models"
	"gorm.io/gorm"
)

type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo {
	return &SettingsRepo{db}
}

// Get returns the singleton settings row, creating it with defaults on first
// access. Concurrent first calls cannot create two rows: the insert targets
// the pinned primary key, so the loser of the race hits a duplicate-key
// error and re-reads instead of failing.
func (r *SettingsRepo) Get() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.First(&settings, "id = ?", models.SiteSettingsID).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.DefaultSiteSettings()
	if err := r.db.Create(&settings).Error; err != nil {
		if isDuplicateKey(err) {
			err = r.db.First(&settings, "id = ?", models.SiteSettingsID).Error
			if err != nil {
				return nil, err
			}
			return &settings, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Save updates the singleton row. The model's BeforeSave hook pins the ID,
// so whatever identifier the caller supplied is ignored.
func (r *SettingsRepo) Save(settings *models.SiteSettings) error {
	return r.db.Save(settings).Error
}

// isDuplicateKey matches the unique-violation message text across the
// postgres and sqlite drivers.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
