package database

import (
	"github.com/google/uuid"
	"github.com/johnkalayu/portfolio-backend/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add inserts a new contact message.
func (r *ContactRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// FindAll returns all contact messages, newest first.
func (r *ContactRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// ListUnread returns unread messages, newest first.
func (r *ContactRepo) ListUnread() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Where("read = ?", false).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// MarkRead flips the read flag. Messages are otherwise immutable after
// creation.
func (r *ContactRepo) MarkRead(id uuid.UUID) error {
	result := r.db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a contact message.
func (r *ContactRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContactMessage{}, "id = ?", id).Error
}
