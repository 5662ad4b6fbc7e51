package database

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/johnkalayu/portfolio-backend/models"
	"gorm.io/gorm"
)

func publishArticle(t *testing.T, db Database, article *models.Article, publishedAt time.Time, tags ...*models.Tag) {
	t.Helper()

	article.Publish(publishedAt)
	ids := make([]uuid.UUID, len(tags))
	for i, tag := range tags {
		ids[i] = tag.ID
	}
	if err := db.ArticleRepo().Save(article, ids); err != nil {
		t.Fatalf("save article %s: %v", article.Title, err)
	}
}

func TestArticlePaginationClampsOutOfRangePages(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		publishArticle(t, db, &models.Article{
			Title:   fmt.Sprintf("Post %02d", i),
			Content: "short",
		}, base.Add(time.Duration(i)*time.Hour))
	}

	articles, page, err := db.ArticleRepo().ListPublished(ArticleFilter{}, 999)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if page.Page != 2 {
		t.Errorf("page = %d, want clamp to 2", page.Page)
	}
	if page.TotalPages != 2 || page.TotalItems != 10 {
		t.Errorf("pagination = %+v", page)
	}
	if len(articles) != 1 {
		t.Errorf("last page has %d items, want 1", len(articles))
	}

	// Page zero and negatives clamp up to the first page.
	articles, page, err = db.ArticleRepo().ListPublished(ArticleFilter{}, -3)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if page.Page != 1 || len(articles) != ArticlesPerPage {
		t.Errorf("page = %d with %d items", page.Page, len(articles))
	}
}

func TestArticleListingExcludesDrafts(t *testing.T) {
	db := openTestDB(t)

	publishArticle(t, db, &models.Article{Title: "Published Post", Content: "x"}, time.Now())
	if err := db.ArticleRepo().Save(&models.Article{Title: "Draft Post", Content: "x"}, nil); err != nil {
		t.Fatalf("save draft: %v", err)
	}

	articles, page, err := db.ArticleRepo().ListPublished(ArticleFilter{}, 1)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if page.TotalItems != 1 || len(articles) != 1 {
		t.Fatalf("got %d items, want 1", len(articles))
	}
	if articles[0].Title != "Published Post" {
		t.Errorf("got %q", articles[0].Title)
	}

	if _, err := db.ArticleRepo().FindPublishedBySlug("draft-post"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("draft lookup err = %v, want record not found", err)
	}
}

func TestArticleListingNewestFirst(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	publishArticle(t, db, &models.Article{Title: "First", Content: "x"}, base)
	publishArticle(t, db, &models.Article{Title: "Second", Content: "x"}, base.AddDate(0, 0, 1))

	articles, _, err := db.ArticleRepo().ListPublished(ArticleFilter{}, 1)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(articles) != 2 || articles[0].Title != "Second" {
		t.Fatalf("ordering wrong: %+v", articles)
	}
}

func TestArticleTagFilter(t *testing.T) {
	db := openTestDB(t)

	django, err := db.TagRepo().GetOrCreate("Django")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}

	publishArticle(t, db, &models.Article{Title: "Tagged", Content: "x"}, time.Now(), django)
	publishArticle(t, db, &models.Article{Title: "Untagged", Content: "x"}, time.Now())

	articles, page, err := db.ArticleRepo().ListPublished(ArticleFilter{TagSlug: "django"}, 1)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if page.TotalItems != 1 || len(articles) != 1 || articles[0].Title != "Tagged" {
		t.Fatalf("tag filter got %d items", len(articles))
	}

	// Unknown tag slug filters to an empty page, not an error.
	articles, _, err = db.ArticleRepo().ListPublished(ArticleFilter{TagSlug: "nope"}, 1)
	if err != nil || len(articles) != 0 {
		t.Fatalf("unknown tag: items=%d err=%v", len(articles), err)
	}
}

func TestArticleReadingTimePersistedOnSave(t *testing.T) {
	db := openTestDB(t)

	article := &models.Article{
		Title:   "Long Read",
		Content: strings.TrimSpace(strings.Repeat("word ", 400)),
	}
	publishArticle(t, db, article, time.Now())

	reloaded, err := db.ArticleRepo().FindPublishedBySlug("long-read")
	if err != nil {
		t.Fatalf("FindPublishedBySlug: %v", err)
	}
	if reloaded.ReadingTime != 2 {
		t.Errorf("ReadingTime = %d, want 2", reloaded.ReadingTime)
	}

	// Shrinking the content recomputes on the next save.
	reloaded.Content = "fifty words or so"
	if err := db.ArticleRepo().Save(reloaded, nil); err != nil {
		t.Fatalf("resave: %v", err)
	}
	again, err := db.ArticleRepo().FindPublishedBySlug("long-read")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.ReadingTime != 1 {
		t.Errorf("ReadingTime after edit = %d, want 1", again.ReadingTime)
	}
}

func TestArticleGetOrCreateTagIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	first, err := db.TagRepo().GetOrCreate("Web Development")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	second, err := db.TagRepo().GetOrCreate("Web Development")
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("tag created twice: %s vs %s", first.ID, second.ID)
	}
	if second.Slug != "web-development" {
		t.Errorf("Slug = %q", second.Slug)
	}
}
