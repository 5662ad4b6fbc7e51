package api

import (
	"net/http"

	"github.com/johnkalayu/portfolio-backend/database"
	"github.com/johnkalayu/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type toolHandler struct {
	responder Responder
	logger    zerolog.Logger
	toolRepo  *database.ToolRepo
}

func newToolHandler(toolRepo *database.ToolRepo) toolHandler {
	logger := log.With().Str("handlerName", "toolHandler").Logger()

	return toolHandler{
		responder: NewResponder(logger),
		logger:    logger,
		toolRepo:  toolRepo,
	}
}

// defaultTools is served when the store has no active tool rows yet, so a
// fresh deployment still renders a sensible skills section.
var defaultTools = []ToolJSON{
	{Name: "AWS", Category: "Cloud", Description: "Amazon Web Services - Cloud computing platform", IconURL: "/static/image/tools/aws.png"},
	{Name: "Docker", Category: "DevOps", Description: "Container platform for building and deploying applications", IconURL: "/static/image/tools/docker.png"},
	{Name: "Kubernetes", Category: "DevOps", Description: "Container orchestration platform", IconURL: "/static/image/tools/kubernetes.png"},
	{Name: "Terraform", Category: "DevOps", Description: "Infrastructure as Code tool", IconURL: "/static/image/tools/terraform.png"},
	{Name: "Jenkins", Category: "DevOps", Description: "Automation server for CI/CD pipelines", IconURL: "/static/image/tools/jenkins.png"},
	{Name: "Ansible", Category: "DevOps", Description: "Configuration management and automation tool", IconURL: "/static/image/tools/ansible.png"},
	{Name: "Prometheus", Category: "DevOps", Description: "Monitoring and alerting toolkit", IconURL: "/static/image/tools/prometheus.png"},
	{Name: "Grafana", Category: "DevOps", Description: "Analytics and monitoring platform", IconURL: "/static/image/tools/grafana.png"},
	{Name: "Python", Category: "Backend", Description: "High-level programming language", IconURL: "/static/image/tools/python.png"},
	{Name: "PostgreSQL", Category: "Database", Description: "Advanced open-source relational database", IconURL: "/static/image/tools/postgresql.png"},
}

func toolToJSON(t *models.Tool) ToolJSON {
	return ToolJSON{
		Name:        t.Name,
		Category:    t.CategoryLabel(),
		Description: t.Description,
		IconURL:     t.IconPath,
		Color:       t.Color,
		Link:        t.Link,
	}
}

// listTools serves the active tools as JSON, falling back to the built-in
// list when the store is empty.
func (h toolHandler) listTools() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tools, err := h.toolRepo.ListActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "tools", err))
			return
		}

		if len(tools) == 0 {
			h.logger.Debug().Msg("No active tools in store, serving built-in fallback list")
			h.responder.WriteJSON(w, defaultTools)
			return
		}

		h.responder.WriteJSON(w, lo.Map(tools, func(t *models.Tool, _ int) ToolJSON {
			return toolToJSON(t)
		}))
	}
}
