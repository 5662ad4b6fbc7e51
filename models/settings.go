package models

import "gorm.io/gorm"

// SiteSettingsID is the pinned primary key of the singleton settings row.
// Every save targets this ID so a second row can never be created.
const SiteSettingsID = 1

// SiteSettings holds site-wide configurable text. Exactly one row exists;
// the accessor in the database package creates it on first access.
type SiteSettings struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey"`
	AuthorName  string `json:"author_name" db:"author_name" gorm:"type:text;not null;default:''"`
	AuthorEmail string `json:"author_email" db:"author_email" gorm:"type:text;not null;default:''"`
	AuthorTitle string `json:"author_title" db:"author_title" gorm:"type:text;not null;default:''"`
	AuthorBio   string `json:"author_bio" db:"author_bio" gorm:"type:text;not null;default:''"`
	LinkedinURL string `json:"linkedin_url" db:"linkedin_url" gorm:"type:text;not null;default:''"`
	GithubURL   string `json:"github_url" db:"github_url" gorm:"type:text;not null;default:''"`
	ResumeURL   string `json:"resume_url" db:"resume_url" gorm:"type:text;not null;default:''"`
}

// BeforeSave pins the primary key regardless of what ID the caller supplied.
func (s *SiteSettings) BeforeSave(tx *gorm.DB) error {
	s.ID = SiteSettingsID
	return nil
}

// DefaultSiteSettings returns the field values used when the singleton row
// is created on first access.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:          SiteSettingsID,
		AuthorName:  "Joni K",
		AuthorEmail: "johngezae@yahoo.com",
		AuthorTitle: "AI Enthusiast",
		LinkedinURL: "https://www.linkedin.com/in/joni-kalayu/",
		GithubURL:   "https://github.com/Johnkalayu",
	}
}
