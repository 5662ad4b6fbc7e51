package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/johnkalayu/portfolio-backend/database"
	"github.com/johnkalayu/portfolio-backend/errs"
	"github.com/johnkalayu/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type articleHandler struct {
	responder   Responder
	logger      zerolog.Logger
	articleRepo *database.ArticleRepo
	tagRepo     *database.TagRepo
}

func newArticleHandler(articleRepo *database.ArticleRepo, tagRepo *database.TagRepo) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		articleRepo: articleRepo,
		tagRepo:     tagRepo,
	}
}

// blogListingContext is the payload behind the blog listing pages.
type blogListingContext struct {
	Articles   []*models.Article   `json:"articles"`
	Pagination database.Pagination `json:"pagination"`
	Tag        *models.Tag         `json:"tag,omitempty"`
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// listArticles serves the paginated published-article listing.
func (h articleHandler) listArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ArticleFilter{Query: r.URL.Query().Get("q")}

		articles, pagination, err := h.articleRepo.ListPublished(filter, pageParam(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "articles", err))
			return
		}

		h.responder.WriteJSON(w, blogListingContext{
			Articles:   articles,
			Pagination: pagination,
		})
	}
}

// listArticlesByTag serves the tag-filtered listing. An unknown tag slug is
// a 404: the tag page itself does not exist.
func (h articleHandler) listArticlesByTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagSlug := chi.URLParam(r, "tagSlug")

		tag, err := h.tagRepo.FindBySlug(tagSlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("tag"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "tag", err))
			return
		}

		articles, pagination, err := h.articleRepo.ListPublished(database.ArticleFilter{TagSlug: tagSlug}, pageParam(r))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "articles", err))
			return
		}

		h.responder.WriteJSON(w, blogListingContext{
			Articles:   articles,
			Pagination: pagination,
			Tag:        tag,
		})
	}
}

// getArticle serves one published article by slug; drafts 404.
func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		article, err := h.articleRepo.FindPublishedBySlug(slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("article"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "article", err))
			return
		}

		h.responder.WriteJSON(w, article)
	}
}
