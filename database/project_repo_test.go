package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/johnkalayu/portfolio-backend/models"
)

func seedCatalog(t *testing.T, db Database) (docker, kubernetes, terraform *models.Tool) {
	t.Helper()

	docker = &models.Tool{Name: "Docker", Category: models.ToolCategoryDevops}
	kubernetes = &models.Tool{Name: "Kubernetes", Category: models.ToolCategoryDevops}
	terraform = &models.Tool{Name: "Terraform", Category: models.ToolCategoryDevops}
	for _, tool := range []*models.Tool{docker, kubernetes, terraform} {
		if err := db.ToolRepo().Save(tool); err != nil {
			t.Fatalf("save tool %s: %v", tool.Name, err)
		}
	}
	return docker, kubernetes, terraform
}

func saveProject(t *testing.T, db Database, project *models.Project, tools ...*models.Tool) {
	t.Helper()

	ids := make([]uuid.UUID, len(tools))
	for i, tool := range tools {
		ids[i] = tool.ID
	}
	if err := db.ProjectRepo().Save(project, ids); err != nil {
		t.Fatalf("save project %s: %v", project.Title, err)
	}
}

func TestProjectListFiltersByToolNameCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	docker, kubernetes, _ := seedCatalog(t, db)

	saveProject(t, db, &models.Project{Title: "Microservices Platform"}, docker, kubernetes)
	saveProject(t, db, &models.Project{Title: "Monitoring Stack"}, kubernetes)

	projects, err := db.ProjectRepo().List(ProjectFilter{Tool: "docker"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(projects))
	}
	if projects[0].Title != "Microservices Platform" {
		t.Errorf("got %q", projects[0].Title)
	}
	// The full related-tool list comes back, not just the filtering tool.
	if len(projects[0].Tools) != 2 {
		t.Errorf("got %d tools on match, want full list of 2", len(projects[0].Tools))
	}
}

func TestProjectListFiltersByToolSlug(t *testing.T) {
	db := openTestDB(t)
	docker, _, _ := seedCatalog(t, db)

	saveProject(t, db, &models.Project{Title: "Cloud Infrastructure Automation"}, docker)

	projects, err := db.ProjectRepo().List(ProjectFilter{Tool: "docker"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(projects))
	}
}

func TestProjectListUnmatchedToolYieldsEmptySet(t *testing.T) {
	db := openTestDB(t)
	docker, _, _ := seedCatalog(t, db)
	saveProject(t, db, &models.Project{Title: "Cloud Infrastructure Automation"}, docker)

	projects, err := db.ProjectRepo().List(ProjectFilter{Tool: "cobol"})
	if err != nil {
		t.Fatalf("unmatched filter must not error: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("got %d projects, want 0", len(projects))
	}
}

func TestProjectListDeduplicatesAcrossJoin(t *testing.T) {
	db := openTestDB(t)
	docker, kubernetes, terraform := seedCatalog(t, db)

	saveProject(t, db, &models.Project{Title: "DevOps Pipeline"}, docker, kubernetes, terraform)

	projects, err := db.ProjectRepo().List(ProjectFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("project with three tools listed %d times, want 1", len(projects))
	}
}

func TestProjectListFreeTextSearch(t *testing.T) {
	db := openTestDB(t)

	saveProject(t, db, &models.Project{
		Title:       "Monitoring Stack",
		Description: "Prometheus and Grafana dashboards",
	})
	saveProject(t, db, &models.Project{Title: "E-Commerce Application"})

	// Case-insensitive, matches description too.
	projects, err := db.ProjectRepo().List(ProjectFilter{Query: "GRAFANA"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "Monitoring Stack" {
		t.Fatalf("free-text search got %d results", len(projects))
	}
}

func TestProjectListFiltersByCategorySlug(t *testing.T) {
	db := openTestDB(t)

	category := &models.ProjectCategory{Name: "Web Development"}
	if err := db.CategoryRepo().Save(category); err != nil {
		t.Fatalf("save category: %v", err)
	}
	saveProject(t, db, &models.Project{Title: "Client Portfolio Website", CategoryID: &category.ID})
	saveProject(t, db, &models.Project{Title: "Smart Parking Assistant"})

	projects, err := db.ProjectRepo().List(ProjectFilter{CategorySlug: "web-development"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "Client Portfolio Website" {
		t.Fatalf("category filter got %d results", len(projects))
	}
	if got := projects[0].DisplayCategory(); got != "Web Development" {
		t.Errorf("DisplayCategory = %q", got)
	}
}

func TestProjectListOrdering(t *testing.T) {
	db := openTestDB(t)

	old := &models.Project{Title: "Older", SortOrder: 1}
	saveProject(t, db, old)
	newer := &models.Project{Title: "Newer", SortOrder: 1}
	saveProject(t, db, newer)
	pinned := &models.Project{Title: "Pinned", SortOrder: 0}
	saveProject(t, db, pinned)

	// Give the middle project an older creation time to exercise the tiebreak.
	if err := db.ProjectRepo().db.Model(old).Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	projects, err := db.ProjectRepo().List(ProjectFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"Pinned", "Newer", "Older"}
	if len(projects) != len(want) {
		t.Fatalf("got %d projects", len(projects))
	}
	for i, title := range want {
		if projects[i].Title != title {
			t.Errorf("position %d = %q, want %q", i, projects[i].Title, title)
		}
	}
}

func TestProjectListFeaturedOnly(t *testing.T) {
	db := openTestDB(t)

	saveProject(t, db, &models.Project{Title: "Showcase", IsFeatured: true})
	saveProject(t, db, &models.Project{Title: "Side Project"})

	projects, err := db.ProjectRepo().List(ProjectFilter{FeaturedOnly: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "Showcase" {
		t.Fatalf("featured filter got %d results", len(projects))
	}
}

func TestProjectTitlesMayRepeat(t *testing.T) {
	db := openTestDB(t)

	saveProject(t, db, &models.Project{Title: "Portfolio Website"})
	// Same title, distinct slug. Only the slug is the uniqueness contract.
	saveProject(t, db, &models.Project{Title: "Portfolio Website", Slug: "portfolio-website-v2"})

	projects, err := db.ProjectRepo().List(ProjectFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
}

func TestProjectSlugDerivedFromTitle(t *testing.T) {
	db := openTestDB(t)

	saveProject(t, db, &models.Project{Title: "FinanceMe: DevOps Capstone Project"})

	project, err := db.ProjectRepo().FindBySlug("financeme-devops-capstone-project")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if project.Title != "FinanceMe: DevOps Capstone Project" {
		t.Errorf("got %q", project.Title)
	}
}

func TestProjectSaveReplacesToolAssociations(t *testing.T) {
	db := openTestDB(t)
	docker, kubernetes, terraform := seedCatalog(t, db)

	project := &models.Project{Title: "Cloud Infrastructure Automation"}
	saveProject(t, db, project, docker, kubernetes)

	if err := db.ProjectRepo().Save(project, []uuid.UUID{terraform.ID}); err != nil {
		t.Fatalf("resave: %v", err)
	}

	reloaded, err := db.ProjectRepo().FindByID(project.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(reloaded.Tools) != 1 || reloaded.Tools[0].Name != "Terraform" {
		t.Errorf("tools after replace = %+v", reloaded.Tools)
	}
}
