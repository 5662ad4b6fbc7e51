package models

import (
	"strings"
	"testing"
)

func TestReadingTime(t *testing.T) {
	cases := []struct {
		name  string
		words int
		want  int
	}{
		{"empty content floors to one minute", 0, 1},
		{"fifty words floors to one minute", 50, 1},
		{"just under one minute", 199, 1},
		{"exactly one minute", 200, 1},
		{"four hundred words is two minutes", 400, 2},
		{"floor not round", 599, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tc.words))
			if got := ReadingTime(content); got != tc.want {
				t.Errorf("ReadingTime(%d words) = %d, want %d", tc.words, got, tc.want)
			}
		})
	}
}

func TestReadingTimeCountsWhitespaceDelimitedTokens(t *testing.T) {
	content := "one\ttwo\nthree   four\n\nfive"
	if got := ReadingTime(content); got != 1 {
		t.Errorf("ReadingTime = %d, want 1", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Docker", "docker"},
		{"Web Development", "web-development"},
		{"Three.js", "three-js"},
		{"  CI/CD  Pipelines ", "ci-cd-pipelines"},
		{"Go 1.23", "go-1-23"},
		{"---", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestArticleBeforeSaveRecomputesReadingTime(t *testing.T) {
	a := Article{
		Title:       "Building My DevOps Portfolio",
		Content:     strings.Repeat("word ", 400),
		ReadingTime: 99, // stale value must be overwritten
	}
	if err := a.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if a.ReadingTime != 2 {
		t.Errorf("ReadingTime = %d, want 2", a.ReadingTime)
	}
	if a.Slug != "building-my-devops-portfolio" {
		t.Errorf("Slug = %q, want derived slug", a.Slug)
	}
	if a.Status != ArticleStatusDraft {
		t.Errorf("Status = %q, want draft default", a.Status)
	}
}

func TestProjectDisplayCategory(t *testing.T) {
	p := Project{Category: "DevOps in Banking and Finance"}
	if got := p.DisplayCategory(); got != "DevOps in Banking and Finance" {
		t.Errorf("DisplayCategory legacy fallback = %q", got)
	}

	p.ProjectCategory = &ProjectCategory{Name: "DevOps"}
	if got := p.DisplayCategory(); got != "DevOps" {
		t.Errorf("DisplayCategory linked = %q, want DevOps", got)
	}
}
