package api

import (
	"fmt"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/johnkalayu/portfolio-backend/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a fresh in-memory sqlite database, migrated for all
// entities. Each test gets its own database keyed by test name so parallel
// connections from the pool see the same data.
func openTestDB(t *testing.T) database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return database.New(db)
}

// newTestRouter builds the full router over a test database with an explicit
// config map, bypassing the environment.
func newTestRouter(t *testing.T, db database.Database, cfg map[string]string) *chi.Mux {
	t.Helper()
	if cfg == nil {
		cfg = map[string]string{}
	}
	return newRouter(db, withConfig(cfg))
}
