package api

import "github.com/google/uuid"

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status,omitempty"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// ToolJSON is the public projection of a tool.
type ToolJSON struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
	Color       string `json:"color"`
	Link        string `json:"link"`
}

// ProjectToolJSON is the tool shape embedded in the projects projection.
type ProjectToolJSON struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ProjectJSON is the public projection of a project.
type ProjectJSON struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Link        string            `json:"link"`
	Tools       []ProjectToolJSON `json:"tools"`
}

// ProjectsResponse wraps the projects projection.
type ProjectsResponse struct {
	Projects []ProjectJSON `json:"projects"`
}
