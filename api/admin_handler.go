package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/johnkalayu/portfolio-backend/database"
	"github.com/johnkalayu/portfolio-backend/errs"
	"github.com/johnkalayu/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// adminHandler implements the JWT-guarded CRUD surface that replaces the
// original framework-generated admin panel.
type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newAdminHandler(db database.Database) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// decodeBody decodes a JSON request body into dst, reporting a bad-request
// error on malformed payloads.
func (h adminHandler) decodeBody(w http.ResponseWriter, r *http.Request, dst any, payloadName string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Error().Err(err).Str("payload", payloadName).Msg("Failed to decode request body")
		h.responder.WriteError(w, errs.Malformed(payloadName))
		return false
	}
	return true
}

// parseID parses a uuid path parameter, reporting a bad-request error when
// missing or malformed.
func (h adminHandler) parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing "+param))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		h.responder.WriteError(w, errs.NewInvalidFieldError(param, "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func (h adminHandler) writeCreated(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	h.responder.WriteJSON(w, data)
}

func (h adminHandler) writeDeleted(w http.ResponseWriter, entity string) {
	h.responder.WriteJSON(w, map[string]string{
		"status":  "success",
		"message": entity + " deleted successfully",
	})
}

// --- Tools ---

func (h adminHandler) listTools() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tools, err := h.db.ToolRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "tools", err))
			return
		}
		h.responder.WriteJSON(w, tools)
	}
}

// toolPayload carries the active flag as a pointer so an omitted is_active
// can be told apart from an explicit false.
type toolPayload struct {
	models.Tool
	IsActive *bool `json:"is_active"`
}

func (h adminHandler) createTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload toolPayload
		if !h.decodeBody(w, r, &payload, "tool") {
			return
		}
		if payload.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		tool := payload.Tool
		tool.IsActive = true
		if payload.IsActive != nil {
			tool.IsActive = *payload.IsActive
		}
		if err := h.db.ToolRepo().Save(&tool); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "tool", err))
			return
		}
		h.writeCreated(w, tool)
	}
}

func (h adminHandler) updateTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "toolID")
		if !ok {
			return
		}
		existing, err := h.db.ToolRepo().FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tool", err))
			return
		}

		var payload toolPayload
		if !h.decodeBody(w, r, &payload, "tool") {
			return
		}
		tool := payload.Tool
		tool.ID = id
		tool.IsActive = existing.IsActive
		if payload.IsActive != nil {
			tool.IsActive = *payload.IsActive
		}
		if err := h.db.ToolRepo().Save(&tool); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "tool", err))
			return
		}
		h.responder.WriteJSON(w, tool)
	}
}

func (h adminHandler) deleteTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "toolID")
		if !ok {
			return
		}
		if err := h.db.ToolRepo().Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "tool", err))
			return
		}
		h.writeDeleted(w, "tool")
	}
}

// --- Project categories ---

func (h adminHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.db.CategoryRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "project categories", err))
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

func (h adminHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.ProjectCategory
		if !h.decodeBody(w, r, &category, "project category") {
			return
		}
		if category.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if err := h.db.CategoryRepo().Save(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project category", err))
			return
		}
		h.writeCreated(w, category)
	}
}

func (h adminHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "categoryID")
		if !ok {
			return
		}
		if err := h.db.CategoryRepo().Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project category", err))
			return
		}
		h.writeDeleted(w, "project category")
	}
}

// --- Projects ---

// projectPayload is a project plus the IDs of the tools to link. A nil
// tool_ids leaves the existing associations untouched; an empty list clears
// them. The homepage flag is a pointer so an omitted value can default to
// visible.
type projectPayload struct {
	models.Project
	ToolIDs        []uuid.UUID `json:"tool_ids"`
	ShowOnHomepage *bool       `json:"show_on_homepage"`
}

func (h adminHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectPayload
		if !h.decodeBody(w, r, &payload, "project") {
			return
		}
		if payload.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		payload.Project.Tools = nil
		payload.Project.ShowOnHomepage = payload.ShowOnHomepage == nil || *payload.ShowOnHomepage
		if err := h.db.ProjectRepo().Save(&payload.Project, payload.ToolIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.db.ProjectRepo().FindByID(payload.Project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		h.writeCreated(w, created)
	}
}

func (h adminHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "projectID")
		if !ok {
			return
		}
		existing, err := h.db.ProjectRepo().FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		var payload projectPayload
		if !h.decodeBody(w, r, &payload, "project") {
			return
		}
		payload.Project.ID = id
		payload.Project.Tools = nil
		payload.Project.ShowOnHomepage = existing.ShowOnHomepage
		if payload.ShowOnHomepage != nil {
			payload.Project.ShowOnHomepage = *payload.ShowOnHomepage
		}

		if err := h.db.ProjectRepo().Save(&payload.Project, payload.ToolIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.db.ProjectRepo().FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

func (h adminHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "projectID")
		if !ok {
			return
		}
		if err := h.db.ProjectRepo().Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}
		h.writeDeleted(w, "project")
	}
}

// --- Articles ---

// articlePayload is an article plus the names of its tags. Tags are created
// on the fly when absent so the admin UI can free-type them.
type articlePayload struct {
	models.Article
	TagNames []string `json:"tag_names"`
}

func (h adminHandler) resolveTagIDs(names []string) ([]uuid.UUID, error) {
	if names == nil {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		tag, err := h.db.TagRepo().GetOrCreate(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

func (h adminHandler) listTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.db.TagRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "tags", err))
			return
		}
		h.responder.WriteJSON(w, tags)
	}
}

func (h adminHandler) deleteTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "tagID")
		if !ok {
			return
		}
		if err := h.db.TagRepo().Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "tag", err))
			return
		}
		h.writeDeleted(w, "tag")
	}
}

func (h adminHandler) listArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := h.db.ArticleRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "articles", err))
			return
		}
		h.responder.WriteJSON(w, articles)
	}
}

func (h adminHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload articlePayload
		if !h.decodeBody(w, r, &payload, "article") {
			return
		}
		if payload.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		tagIDs, err := h.resolveTagIDs(payload.TagNames)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "tags", err))
			return
		}

		payload.Article.Tags = nil
		if err := h.db.ArticleRepo().Save(&payload.Article, tagIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "article", err))
			return
		}

		created, err := h.db.ArticleRepo().FindByID(payload.Article.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "article", err))
			return
		}
		h.writeCreated(w, created)
	}
}

func (h adminHandler) updateArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "articleID")
		if !ok {
			return
		}
		existing, err := h.db.ArticleRepo().FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "article", err))
			return
		}

		var payload articlePayload
		if !h.decodeBody(w, r, &payload, "article") {
			return
		}
		payload.Article.ID = id
		payload.Article.Tags = nil
		// Publication timestamp is owned by the publish endpoint.
		payload.Article.PublishedAt = existing.PublishedAt
		payload.Article.Status = existing.Status

		tagIDs, err := h.resolveTagIDs(payload.TagNames)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "tags", err))
			return
		}

		if err := h.db.ArticleRepo().Save(&payload.Article, tagIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "article", err))
			return
		}

		updated, err := h.db.ArticleRepo().FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "article", err))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

func (h adminHandler) publishArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "articleID")
		if !ok {
			return
		}
		article, err := h.db.ArticleRepo().FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "article", err))
			return
		}

		article.Publish(time.Now().UTC())
		if err := h.db.ArticleRepo().Save(article, nil); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("publish", "article", err))
			return
		}
		h.responder.WriteJSON(w, article)
	}
}

func (h adminHandler) deleteArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "articleID")
		if !ok {
			return
		}
		if err := h.db.ArticleRepo().Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "article", err))
			return
		}
		h.writeDeleted(w, "article")
	}
}

// --- Contact messages ---

func (h adminHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.db.ContactRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "contact messages", err))
			return
		}
		h.responder.WriteJSON(w, messages)
	}
}

func (h adminHandler) markMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "messageID")
		if !ok {
			return
		}
		if err := h.db.ContactRepo().MarkRead(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("contact message"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update", "contact message", err))
			return
		}
		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}

func (h adminHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "messageID")
		if !ok {
			return
		}
		if err := h.db.ContactRepo().Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact message", err))
			return
		}
		h.writeDeleted(w, "contact message")
	}
}

// --- Settings ---

func (h adminHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.db.SettingsRepo().Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "site settings", err))
			return
		}
		h.responder.WriteJSON(w, settings)
	}
}

func (h adminHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings models.SiteSettings
		if !h.decodeBody(w, r, &settings, "site settings") {
			return
		}
		// Save pins the singleton ID whatever the payload carried.
		if err := h.db.SettingsRepo().Save(&settings); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "site settings", err))
			return
		}
		h.responder.WriteJSON(w, settings)
	}
}

// --- Resume entries ---

func (h adminHandler) listExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.db.ResumeRepo().Experiences()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "work experiences", err))
			return
		}
		h.responder.WriteJSON(w, entries)
	}
}

func (h adminHandler) listEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.db.ResumeRepo().Educations()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "education entries", err))
			return
		}
		h.responder.WriteJSON(w, entries)
	}
}

func (h adminHandler) listCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.db.ResumeRepo().Certifications()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "certifications", err))
			return
		}
		h.responder.WriteJSON(w, entries)
	}
}

func (h adminHandler) saveExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry models.WorkExperience
		if !h.decodeBody(w, r, &entry, "work experience") {
			return
		}
		if err := h.db.ResumeRepo().SaveExperience(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "work experience", err))
			return
		}
		h.responder.WriteJSON(w, entry)
	}
}

func (h adminHandler) saveEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry models.Education
		if !h.decodeBody(w, r, &entry, "education entry") {
			return
		}
		if err := h.db.ResumeRepo().SaveEducation(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "education entry", err))
			return
		}
		h.responder.WriteJSON(w, entry)
	}
}

func (h adminHandler) saveCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry models.Certification
		if !h.decodeBody(w, r, &entry, "certification") {
			return
		}
		if err := h.db.ResumeRepo().SaveCertification(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "certification", err))
			return
		}
		h.responder.WriteJSON(w, entry)
	}
}

func (h adminHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "experienceID")
		if !ok {
			return
		}
		if err := h.db.ResumeRepo().DeleteExperience(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "work experience", err))
			return
		}
		h.writeDeleted(w, "work experience")
	}
}

func (h adminHandler) deleteEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "educationID")
		if !ok {
			return
		}
		if err := h.db.ResumeRepo().DeleteEducation(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "education entry", err))
			return
		}
		h.writeDeleted(w, "education entry")
	}
}

func (h adminHandler) deleteCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "certificationID")
		if !ok {
			return
		}
		if err := h.db.ResumeRepo().DeleteCertification(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "certification", err))
			return
		}
		h.writeDeleted(w, "certification")
	}
}

// testimonialPayload carries the active flag as a pointer; omitted means
// active.
type testimonialPayload struct {
	models.Testimonial
	IsActive *bool `json:"is_active"`
}

func (h adminHandler) listTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonials, err := h.db.TestimonialRepo().FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "testimonials", err))
			return
		}
		h.responder.WriteJSON(w, testimonials)
	}
}

func (h adminHandler) saveTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload testimonialPayload
		if !h.decodeBody(w, r, &payload, "testimonial") {
			return
		}
		testimonial := payload.Testimonial
		testimonial.IsActive = payload.IsActive == nil || *payload.IsActive
		if err := h.db.TestimonialRepo().Save(&testimonial); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "testimonial", err))
			return
		}
		h.responder.WriteJSON(w, testimonial)
	}
}

func (h adminHandler) deleteTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.parseID(w, r, "testimonialID")
		if !ok {
			return
		}
		if err := h.db.TestimonialRepo().Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "testimonial", err))
			return
		}
		h.writeDeleted(w, "testimonial")
	}
}
