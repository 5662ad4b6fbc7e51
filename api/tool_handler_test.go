package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnkalayu/portfolio-backend/models"
)

func TestListToolsFallsBackWhenEmpty(t *testing.T) {
	db := openTestDB(t)
	router := newTestRouter(t, db, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var tools []ToolJSON
	if err := json.NewDecoder(rec.Body).Decode(&tools); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(tools) != len(defaultTools) {
		t.Fatalf("got %d tools, want the %d built-ins", len(tools), len(defaultTools))
	}
	if tools[0].Name != "AWS" {
		t.Errorf("first tool = %q, want AWS", tools[0].Name)
	}
}

func TestListToolsServesStoredTools(t *testing.T) {
	db := openTestDB(t)
	router := newTestRouter(t, db, nil)

	stored := &models.Tool{Name: "Grafana", Category: models.ToolCategoryDevops, IsActive: true}
	if err := db.ToolRepo().Save(stored); err != nil {
		t.Fatalf("save tool: %v", err)
	}
	inactive := &models.Tool{Name: "Chef", Category: models.ToolCategoryDevops, IsActive: false}
	if err := db.ToolRepo().Save(inactive); err != nil {
		t.Fatalf("save tool: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/tools", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var tools []ToolJSON
	if err := json.NewDecoder(rec.Body).Decode(&tools); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(tools) != 1 {
		t.Fatalf("got %d tools, want 1", len(tools))
	}
	if tools[0].Name != "Grafana" {
		t.Errorf("tool = %q, want Grafana", tools[0].Name)
	}
	// Category keys render as display labels.
	if tools[0].Category != "DevOps" {
		t.Errorf("category = %q, want DevOps", tools[0].Category)
	}
}
