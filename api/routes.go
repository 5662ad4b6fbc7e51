package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site endpoints and the JWT-guarded admin API.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.siteHandler.home())
		r.Get("/resume", handlers.siteHandler.resume())

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{slug}", handlers.projectHandler.getProject())
		r.Get("/blog", handlers.articleHandler.listArticles())
		r.Get("/blog/tag/{tagSlug}", handlers.articleHandler.listArticlesByTag())
		r.Get("/blog/{slug}", handlers.articleHandler.getArticle())

		r.Post("/contact", handlers.contactHandler.submit())

		r.Get("/api/projects", handlers.projectHandler.projectsByTool())
		r.Get("/api/tools", handlers.toolHandler.listTools())
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(auth.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/tools", handlers.adminHandler.listTools())
		r.Post("/tools", handlers.adminHandler.createTool())
		r.Put("/tools/{toolID}", handlers.adminHandler.updateTool())
		r.Delete("/tools/{toolID}", handlers.adminHandler.deleteTool())

		r.Get("/categories", handlers.adminHandler.listCategories())
		r.Post("/categories", handlers.adminHandler.createCategory())
		r.Delete("/categories/{categoryID}", handlers.adminHandler.deleteCategory())

		r.Post("/projects", handlers.adminHandler.createProject())
		r.Put("/projects/{projectID}", handlers.adminHandler.updateProject())
		r.Delete("/projects/{projectID}", handlers.adminHandler.deleteProject())

		r.Get("/tags", handlers.adminHandler.listTags())
		r.Delete("/tags/{tagID}", handlers.adminHandler.deleteTag())

		r.Get("/articles", handlers.adminHandler.listArticles())
		r.Post("/articles", handlers.adminHandler.createArticle())
		r.Put("/articles/{articleID}", handlers.adminHandler.updateArticle())
		r.Post("/articles/{articleID}/publish", handlers.adminHandler.publishArticle())
		r.Delete("/articles/{articleID}", handlers.adminHandler.deleteArticle())

		r.Get("/messages", handlers.adminHandler.listMessages())
		r.Post("/messages/{messageID}/read", handlers.adminHandler.markMessageRead())
		r.Delete("/messages/{messageID}", handlers.adminHandler.deleteMessage())

		r.Get("/settings", handlers.adminHandler.getSettings())
		r.Put("/settings", handlers.adminHandler.updateSettings())

		r.Get("/experiences", handlers.adminHandler.listExperiences())
		r.Post("/experiences", handlers.adminHandler.saveExperience())
		r.Delete("/experiences/{experienceID}", handlers.adminHandler.deleteExperience())
		r.Get("/education", handlers.adminHandler.listEducation())
		r.Post("/education", handlers.adminHandler.saveEducation())
		r.Delete("/education/{educationID}", handlers.adminHandler.deleteEducation())
		r.Get("/certifications", handlers.adminHandler.listCertifications())
		r.Post("/certifications", handlers.adminHandler.saveCertification())
		r.Delete("/certifications/{certificationID}", handlers.adminHandler.deleteCertification())
		r.Get("/testimonials", handlers.adminHandler.listTestimonials())
		r.Post("/testimonials", handlers.adminHandler.saveTestimonial())
		r.Delete("/testimonials/{testimonialID}", handlers.adminHandler.deleteTestimonial())
	})
}
