package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/johnkalayu/portfolio-backend/database"
	"github.com/johnkalayu/portfolio-backend/errs"
	"github.com/johnkalayu/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type projectHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projectRepo  *database.ProjectRepo
	toolRepo     *database.ToolRepo
	categoryRepo *database.CategoryRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, toolRepo *database.ToolRepo, categoryRepo *database.CategoryRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projectRepo:  projectRepo,
		toolRepo:     toolRepo,
		categoryRepo: categoryRepo,
	}
}

func projectToJSON(p *models.Project) ProjectJSON {
	link := p.LiveURL
	if link == "" {
		link = p.GithubURL
	}
	return ProjectJSON{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Link:        link,
		Tools: lo.Map(p.Tools, func(t models.Tool, _ int) ProjectToolJSON {
			return ProjectToolJSON{Name: t.Name, Category: t.Category}
		}),
	}
}

// projectsByTool serves the public JSON projection, optionally filtered by a
// case-insensitive exact tool name. An unknown tool yields a 404 error shape,
// never a fault.
func (h projectHandler) projectsByTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolName := strings.TrimSpace(r.URL.Query().Get("tool"))

		filter := database.ProjectFilter{}
		if toolName != "" {
			if _, err := h.toolRepo.FindByName(toolName); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					w.Header().Set("Content-Type", "application/json; charset=utf-8")
					w.WriteHeader(http.StatusNotFound)
					h.responder.WriteJSON(w, map[string]string{
						"error": fmt.Sprintf("Tool '%s' not found", toolName),
					})
					return
				}
				h.responder.WriteError(w, wrapDatabaseError("find", "tool", err))
				return
			}
			filter.Tool = toolName
		}

		projects, err := h.projectRepo.List(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "projects", err))
			return
		}

		response := ProjectsResponse{
			Projects: lo.Map(projects, func(p *models.Project, _ int) ProjectJSON {
				return projectToJSON(p)
			}),
		}
		if response.Projects == nil {
			response.Projects = []ProjectJSON{}
		}

		h.responder.WriteJSON(w, response)
	}
}

// getProject serves one project by slug with its category and tools loaded.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		project, err := h.projectRepo.FindBySlug(slug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFound("project"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// projectListingContext is the payload behind the project listing page.
type projectListingContext struct {
	Projects   []*models.Project         `json:"projects"`
	Categories []*models.ProjectCategory `json:"categories"`
	Tools      []*models.Tool            `json:"tools"`
	Filter     map[string]string         `json:"filter"`
}

// listProjects serves the filtered project listing page context:
// ?q= free text, ?category= category slug, ?tech= tool slug or name,
// ?featured=true to restrict to featured projects.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		featured, _ := strconv.ParseBool(query.Get("featured"))
		filter := database.ProjectFilter{
			Query:        query.Get("q"),
			CategorySlug: query.Get("category"),
			Tool:         query.Get("tech"),
			FeaturedOnly: featured,
		}

		projects, err := h.projectRepo.List(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "projects", err))
			return
		}

		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "project categories", err))
			return
		}

		tools, err := h.toolRepo.ListActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "tools", err))
			return
		}

		h.responder.WriteJSON(w, projectListingContext{
			Projects:   projects,
			Categories: categories,
			Tools:      tools,
			Filter: map[string]string{
				"q":        filter.Query,
				"category": filter.CategorySlug,
				"tech":     filter.Tool,
				"featured": query.Get("featured"),
			},
		})
	}
}
