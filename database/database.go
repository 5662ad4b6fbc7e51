package database

import (
	"github.com/johnkalayu/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	toolRepo        *ToolRepo
	categoryRepo    *CategoryRepo
	projectRepo     *ProjectRepo
	tagRepo         *TagRepo
	articleRepo     *ArticleRepo
	contactRepo     *ContactRepo
	settingsRepo    *SettingsRepo
	resumeRepo      *ResumeRepo
	testimonialRepo *TestimonialRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance.
func New(db *gorm.DB) Database {
	return Database{
		toolRepo:        NewToolRepo(db),
		categoryRepo:    NewCategoryRepo(db),
		projectRepo:     NewProjectRepo(db),
		tagRepo:         NewTagRepo(db),
		articleRepo:     NewArticleRepo(db),
		contactRepo:     NewContactRepo(db),
		settingsRepo:    NewSettingsRepo(db),
		resumeRepo:      NewResumeRepo(db),
		testimonialRepo: NewTestimonialRepo(db),
	}
}

// Migrate creates or updates the schema for every entity, including the
// many-to-many join tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tool{},
		&models.ProjectCategory{},
		&models.Project{},
		&models.Tag{},
		&models.Article{},
		&models.ContactMessage{},
		&models.SiteSettings{},
		&models.WorkExperience{},
		&models.Education{},
		&models.Certification{},
		&models.Testimonial{},
	)
}

// Accessor methods for each repository

func (d Database) ToolRepo() *ToolRepo {
	return d.toolRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) SettingsRepo() *SettingsRepo {
	return d.settingsRepo
}

func (d Database) ResumeRepo() *ResumeRepo {
	return d.resumeRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}
