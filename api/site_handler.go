package api

import (
	"net/http"

	"github.com/johnkalayu/portfolio-backend/database"
	"github.com/johnkalayu/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// homepageProjectLimit caps how many projects the home page shows.
const homepageProjectLimit = 6

type siteHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newSiteHandler(db database.Database) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// homeContext is the payload behind the home page.
type homeContext struct {
	Settings *models.SiteSettings `json:"settings"`
	Tools    []*models.Tool       `json:"tools"`
	Projects []*models.Project    `json:"projects"`
}

// home serves the home page context: settings, active tools, and the
// homepage project selection.
func (h siteHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.db.SettingsRepo().Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "site settings", err))
			return
		}

		tools, err := h.db.ToolRepo().ListActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "tools", err))
			return
		}

		projects, err := h.db.ProjectRepo().List(database.ProjectFilter{
			HomepageOnly: true,
			Limit:        homepageProjectLimit,
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "projects", err))
			return
		}

		h.responder.WriteJSON(w, homeContext{
			Settings: settings,
			Tools:    tools,
			Projects: projects,
		})
	}
}

// resumeContext is the payload behind the resume page.
type resumeContext struct {
	Settings       *models.SiteSettings     `json:"settings"`
	Experiences    []*models.WorkExperience `json:"experiences"`
	Education      []*models.Education      `json:"education"`
	Certifications []*models.Certification  `json:"certifications"`
	Testimonials   []*models.Testimonial    `json:"testimonials"`
}

// resume serves the resume page context with every section in its contract
// ordering.
func (h siteHandler) resume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.db.SettingsRepo().Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "site settings", err))
			return
		}

		experiences, err := h.db.ResumeRepo().Experiences()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "work experiences", err))
			return
		}

		education, err := h.db.ResumeRepo().Educations()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "education entries", err))
			return
		}

		certifications, err := h.db.ResumeRepo().Certifications()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "certifications", err))
			return
		}

		testimonials, err := h.db.TestimonialRepo().ListActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "testimonials", err))
			return
		}

		h.responder.WriteJSON(w, resumeContext{
			Settings:       settings,
			Experiences:    experiences,
			Education:      education,
			Certifications: certifications,
			Testimonials:   testimonials,
		})
	}
}
