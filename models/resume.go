package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkExperience is a resume entry for a position held.
type WorkExperience struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Company     string     `json:"company" db:"company" gorm:"type:text;not null"`
	Role        string     `json:"role" db:"role" gorm:"type:text;not null"`
	Location    string     `json:"location" db:"location" gorm:"type:text;not null;default:''"`
	Description string     `json:"description" db:"description" gorm:"type:text;not null;default:''"`
	StartDate   time.Time  `json:"start_date" db:"start_date" gorm:"not null"`
	EndDate     *time.Time `json:"end_date,omitempty" db:"end_date"`
	IsCurrent   bool       `json:"is_current" db:"is_current" gorm:"not null;default:false"`
	SortOrder   int        `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
}

func (e *WorkExperience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Education is a resume entry for a degree or program.
type Education struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Institution string     `json:"institution" db:"institution" gorm:"type:text;not null"`
	Degree      string     `json:"degree" db:"degree" gorm:"type:text;not null"`
	Field       string     `json:"field" db:"field" gorm:"type:text;not null;default:''"`
	StartDate   time.Time  `json:"start_date" db:"start_date" gorm:"not null"`
	EndDate     *time.Time `json:"end_date,omitempty" db:"end_date"`
	IsCurrent   bool       `json:"is_current" db:"is_current" gorm:"not null;default:false"`
	SortOrder   int        `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Certification is a resume entry for a professional certification.
type Certification struct {
	ID            uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name          string     `json:"name" db:"name" gorm:"type:text;not null"`
	Issuer        string     `json:"issuer" db:"issuer" gorm:"type:text;not null;default:''"`
	CredentialURL string     `json:"credential_url" db:"credential_url" gorm:"type:text;not null;default:''"`
	IssuedAt      time.Time  `json:"issued_at" db:"issued_at" gorm:"not null"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	SortOrder     int        `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
}

func (c *Certification) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Testimonial is a short quote shown on the resume page.
type Testimonial struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	AuthorName string    `json:"author_name" db:"author_name" gorm:"type:text;not null"`
	AuthorRole string    `json:"author_role" db:"author_role" gorm:"type:text;not null;default:''"`
	Quote      string    `json:"quote" db:"quote" gorm:"type:text;not null"`
	IsActive   bool      `json:"is_active" db:"is_active" gorm:"not null"`
	SortOrder  int       `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
