package database

import (
	"strings"

	"github.com/google/uuid"
	"github.com/johnkalayu/portfolio-backend/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ArticlesPerPage is the fixed blog listing page size.
const ArticlesPerPage = 9

// ArticleFilter narrows the published-article listing.
type ArticleFilter struct {
	Query   string
	TagSlug string
}

// Pagination describes one page of a clamped listing. Out-of-range page
// requests are clamped to the nearest valid page rather than erroring.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

type ArticleRepo struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) *ArticleRepo {
	return &ArticleRepo{db}
}

func (r *ArticleRepo) publishedScope(filter ArticleFilter) *gorm.DB {
	tx := r.db.Model(&models.Article{}).
		Where("articles.status = ?", models.ArticleStatusPublished)

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(articles.title) LIKE ? OR LOWER(articles.excerpt) LIKE ?", pattern, pattern)
	}
	if filter.TagSlug != "" {
		tx = tx.Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.slug = ?", filter.TagSlug)
	}
	return tx
}

// ListPublished returns one page of published articles, newest first. The
// requested page is clamped into the valid range, so page 999 of a two-page
// listing returns page two.
func (r *ArticleRepo) ListPublished(filter ArticleFilter, page int) ([]*models.Article, Pagination, error) {
	var total int64
	if err := r.publishedScope(filter).Distinct("articles.id").Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	totalPages := int((total + ArticlesPerPage - 1) / ArticlesPerPage)
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	var articles []*models.Article
	err := r.publishedScope(filter).
		Preload("Tags").
		Order("articles.published_at DESC").
		Offset((page - 1) * ArticlesPerPage).
		Limit(ArticlesPerPage).
		Find(&articles).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	articles = lo.UniqBy(articles, func(a *models.Article) uuid.UUID { return a.ID })

	return articles, Pagination{
		Page:       page,
		PerPage:    ArticlesPerPage,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// FindPublishedBySlug returns a published article by slug. Drafts behave as
// if they do not exist.
func (r *ArticleRepo) FindPublishedBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Tags").
		First(&article, "slug = ? AND status = ?", slug, models.ArticleStatusPublished).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindByID returns an article regardless of status, for admin use.
func (r *ArticleRepo) FindByID(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Tags").First(&article, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindAll returns every article regardless of status, for admin use.
func (r *ArticleRepo) FindAll() ([]*models.Article, error) {
	var articles []*models.Article
	err := r.db.Preload("Tags").Order("created_at DESC").Find(&articles).Error
	return articles, err
}

// Save persists the article's scalar fields and replaces its tag
// associations in one transaction.
func (r *ArticleRepo) Save(article *models.Article, tagIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(article).Error; err != nil {
			return err
		}
		if tagIDs == nil {
			return nil
		}
		var tags []models.Tag
		if len(tagIDs) > 0 {
			if err := tx.Find(&tags, "id IN ?", tagIDs).Error; err != nil {
				return err
			}
		}
		return tx.Model(article).Association("Tags").Replace(tags)
	})
}

// Delete removes an article and its tag links.
func (r *ArticleRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Article{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, "id = ?", id).Error
	})
}

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns all tags alphabetically.
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// FindBySlug returns a tag by its slug.
func (r *TagRepo) FindBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetOrCreate returns the tag with the given name, creating it if absent.
func (r *TagRepo) GetOrCreate(name string) (*models.Tag, error) {
	tag := models.Tag{Name: name, Slug: models.Slugify(name)}
	err := r.db.Where("slug = ?", tag.Slug).FirstOrCreate(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Delete removes a tag and its article links.
func (r *TagRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Tag{ID: id}).Association("Articles").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, "id = ?", id).Error
	})
}
