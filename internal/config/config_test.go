package config

import (
	"os"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_APP_PORT"

	_ = os.Unsetenv(key)
	if got := getEnv(key, "3000"); got != "3000" {
		t.Fatalf("getEnv(%q) = %q, want default", key, got)
	}

	t.Setenv(key, "8080")
	if got := getEnv(key, "3000"); got != "8080" {
		t.Fatalf("getEnv(%q) = %q, want env value", key, got)
	}
}

func TestLoadReadsEnv(t *testing.T) {
	t.Setenv("APP_PORT", "1234")
	t.Setenv("DATA_FILE", "/tmp/x.json")

	cfg := Load()
	if cfg.AppPort != "1234" {
		t.Fatalf("AppPort = %q", cfg.AppPort)
	}
	if cfg.DataFile != "/tmp/x.json" {
		t.Fatalf("DataFile = %q", cfg.DataFile)
	}
}

func TestCategoriesTaxonomyIsFixed(t *testing.T) {
	cats := Categories()
	if len(cats) != 6 {
		t.Fatalf("got %d categories, want 6", len(cats))
	}

	ids := map[string]bool{}
	for _, c := range cats {
		if c.ID == "" || c.Name == "" || c.Icon == "" {
			t.Fatalf("incomplete category: %+v", c)
		}
		ids[c.ID] = true
	}
	for _, want := range []string{"official", "releases", "tech", "tutorials", "articles", "community"} {
		if !ids[want] {
			t.Fatalf("missing category %q", want)
		}
	}
}

func TestSourcesAreWellFormed(t *testing.T) {
	known := map[SourceKind]bool{KindFeed: true, KindPage: true, KindReleases: true, KindOrg: true}
	catIDs := map[string]bool{}
	for _, c := range Categories() {
		catIDs[c.ID] = true
	}

	for _, s := range Sources() {
		if s.Name == "" || s.URL == "" {
			t.Fatalf("source missing name or url: %+v", s)
		}
		if !known[s.Kind] {
			t.Fatalf("source %s has unknown kind %q", s.Name, s.Kind)
		}
		if !catIDs[s.Category] {
			t.Fatalf("source %s has unknown category %q", s.Name, s.Category)
		}
		if s.Kind == KindPage && s.Selector == "" {
			t.Fatalf("page source %s needs a selector", s.Name)
		}
		if s.Kind == KindOrg && s.Keyword == "" {
			t.Fatalf("org source %s needs a keyword", s.Name)
		}
	}
}
