package database

import (
	"github.com/google/uuid"
	"github.com/johnkalayu/portfolio-backend/models"
	"gorm.io/gorm"
)

// resumeOrder is the display ordering shared by dated resume entries:
// current positions first, then most recent, then explicit order.
const resumeOrder = "is_current DESC, start_date DESC, sort_order ASC"

type ResumeRepo struct {
	db *gorm.DB
}

func NewResumeRepo(db *gorm.DB) *ResumeRepo {
	return &ResumeRepo{db}
}

// Experiences returns all work experiences in resume order.
func (r *ResumeRepo) Experiences() ([]*models.WorkExperience, error) {
	var entries []*models.WorkExperience
	err := r.db.Order(resumeOrder).Find(&entries).Error
	return entries, err
}

// Educations returns all education entries in resume order.
func (r *ResumeRepo) Educations() ([]*models.Education, error) {
	var entries []*models.Education
	err := r.db.Order(resumeOrder).Find(&entries).Error
	return entries, err
}

// Certifications returns all certifications, most recently issued first.
func (r *ResumeRepo) Certifications() ([]*models.Certification, error) {
	var entries []*models.Certification
	err := r.db.Order("issued_at DESC, sort_order ASC").Find(&entries).Error
	return entries, err
}

// SaveExperience inserts or updates a work experience entry.
func (r *ResumeRepo) SaveExperience(entry *models.WorkExperience) error {
	return r.db.Save(entry).Error
}

// SaveEducation inserts or updates an education entry.
func (r *ResumeRepo) SaveEducation(entry *models.Education) error {
	return r.db.Save(entry).Error
}

// SaveCertification inserts or updates a certification entry.
func (r *ResumeRepo) SaveCertification(entry *models.Certification) error {
	return r.db.Save(entry).Error
}

// DeleteExperience removes a work experience entry.
func (r *ResumeRepo) DeleteExperience(id uuid.UUID) error {
	return r.db.Delete(&models.WorkExperience{}, "id = ?", id).Error
}

// DeleteEducation removes an education entry.
func (r *ResumeRepo) DeleteEducation(id uuid.UUID) error {
	return r.db.Delete(&models.Education{}, "id = ?", id).Error
}

// DeleteCertification removes a certification entry.
func (r *ResumeRepo) DeleteCertification(id uuid.UUID) error {
	return r.db.Delete(&models.Certification{}, "id = ?", id).Error
}

type TestimonialRepo struct {
	db *gorm.DB
}

func NewTestimonialRepo(db *gorm.DB) *TestimonialRepo {
	return &TestimonialRepo{db}
}

// ListActive returns active testimonials in display order.
func (r *TestimonialRepo) ListActive() ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC").Find(&testimonials).Error
	return testimonials, err
}

// FindAll returns every testimonial, for admin use.
func (r *TestimonialRepo) FindAll() ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial
	err := r.db.Order("sort_order ASC").Find(&testimonials).Error
	return testimonials, err
}

// Save inserts or updates a testimonial.
func (r *TestimonialRepo) Save(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

// Delete removes a testimonial.
func (r *TestimonialRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Testimonial{}, "id = ?", id).Error
}
