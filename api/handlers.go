package api

import (
	"github.com/johnkalayu/portfolio-backend/database"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	siteHandler    siteHandler
	toolHandler    toolHandler
	projectHandler projectHandler
	articleHandler articleHandler
	contactHandler contactHandler
	adminHandler   adminHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, cfg map[string]string) *routeHandlers {
	return &routeHandlers{
		siteHandler:    newSiteHandler(database),
		toolHandler:    newToolHandler(database.ToolRepo()),
		projectHandler: newProjectHandler(database.ProjectRepo(), database.ToolRepo(), database.CategoryRepo()),
		articleHandler: newArticleHandler(database.ArticleRepo(), database.TagRepo()),
		contactHandler: newContactHandler(database.ContactRepo(), cfg),
		adminHandler:   newAdminHandler(database),
	}
}
