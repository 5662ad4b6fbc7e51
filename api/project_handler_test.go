package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/johnkalayu/portfolio-backend/database"
	"github.com/johnkalayu/portfolio-backend/models"
)

func seedProjectWithTools(t *testing.T, db database.Database, title string, tools ...*models.Tool) *models.Project {
	t.Helper()

	toolIDs := make([]uuid.UUID, 0, len(tools))
	for _, tool := range tools {
		if tool.ID == uuid.Nil {
			if err := db.ToolRepo().Save(tool); err != nil {
				t.Fatalf("save tool %s: %v", tool.Name, err)
			}
		}
		toolIDs = append(toolIDs, tool.ID)
	}

	project := &models.Project{Title: title, LiveURL: "https://example.com/" + models.Slugify(title)}
	if err := db.ProjectRepo().Save(project, toolIDs); err != nil {
		t.Fatalf("save project %s: %v", title, err)
	}
	return project
}

func TestProjectsByToolFilters(t *testing.T) {
	db := openTestDB(t)
	router := newTestRouter(t, db, nil)

	docker := &models.Tool{Name: "Docker", Category: models.ToolCategoryDevops, IsActive: true}
	terraform := &models.Tool{Name: "Terraform", Category: models.ToolCategoryDevops, IsActive: true}
	seedProjectWithTools(t, db, "Cluster Dashboard", docker, terraform)
	seedProjectWithTools(t, db, "Static Site", terraform)

	// Tool name matching is case-insensitive.
	req := httptest.NewRequest(http.MethodGet, "/api/projects?tool=dOcKeR", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp ProjectsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(resp.Projects))
	}
	if resp.Projects[0].Title != "Cluster Dashboard" {
		t.Errorf("title = %q, want Cluster Dashboard", resp.Projects[0].Title)
	}

	// The full related-tool list comes back, not just the filtering tool.
	if len(resp.Projects[0].Tools) != 2 {
		t.Errorf("got %d tools, want 2", len(resp.Projects[0].Tools))
	}
}

func TestProjectsByToolUnknownTool(t *testing.T) {
	db := openTestDB(t)
	router := newTestRouter(t, db, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/projects?tool=Rust", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got := resp["error"]; got != "Tool 'Rust' not found" {
		t.Errorf("error = %q, want Tool 'Rust' not found", got)
	}
}

func TestProjectsByToolEmptyStore(t *testing.T) {
	db := openTestDB(t)
	router := newTestRouter(t, db, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	// An empty catalog serializes as an empty list, not null.
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(raw["projects"]) != "[]" {
		t.Errorf("projects = %s, want []", raw["projects"])
	}
}

func TestListProjectsFeaturedFilter(t *testing.T) {
	db := openTestDB(t)
	router := newTestRouter(t, db, nil)

	featured := &models.Project{Title: "Cluster Dashboard", IsFeatured: true, ShowOnHomepage: true}
	if err := db.ProjectRepo().Save(featured, nil); err != nil {
		t.Fatalf("save project: %v", err)
	}
	plain := &models.Project{Title: "Static Site", ShowOnHomepage: true}
	if err := db.ProjectRepo().Save(plain, nil); err != nil {
		t.Fatalf("save project: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/projects?featured=true", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var listing projectListingContext
	if err := json.NewDecoder(rec.Body).Decode(&listing); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listing.Projects) != 1 || listing.Projects[0].Title != "Cluster Dashboard" {
		t.Fatalf("featured listing = %+v, want only Cluster Dashboard", listing.Projects)
	}
	if listing.Filter["featured"] != "true" {
		t.Errorf("filter echo = %q, want true", listing.Filter["featured"])
	}

	// Without the parameter both projects come back.
	req = httptest.NewRequest(http.MethodGet, "/projects", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if err := json.NewDecoder(rec.Body).Decode(&listing); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listing.Projects) != 2 {
		t.Errorf("unfiltered listing has %d projects, want 2", len(listing.Projects))
	}
}

func TestGetProjectBySlug(t *testing.T) {
	db := openTestDB(t)
	router := newTestRouter(t, db, nil)

	seedProjectWithTools(t, db, "Cluster Dashboard")

	req := httptest.NewRequest(http.MethodGet, "/projects/cluster-dashboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var project models.Project
	if err := json.NewDecoder(rec.Body).Decode(&project); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if project.Title != "Cluster Dashboard" {
		t.Errorf("title = %q, want Cluster Dashboard", project.Title)
	}

	req = httptest.NewRequest(http.MethodGet, "/projects/no-such-project", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
