package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"claudenews/internal/config"
)

const sampleReleases = `<html><body><div data-hpc>
<div class="Box-row">
  <a class="Link--primary" href="/anthropics/claude-code/releases/tag/v1.2.0">v1.2.0</a>
  <relative-time datetime="2025-05-01T12:00:00Z"></relative-time>
  <div class="markdown-body">Bug fixes and faster startup</div>
</div>
<div class="Box-row">
  <a class="Link--primary" href="/anthropics/claude-code/releases/tag/v1.1.0">v1.1.0</a>
</div>
</div></body></html>`

func TestReleaseFetcherTagsReleases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(sampleReleases))
	}))
	defer srv.Close()

	f := newReleaseFetcher(config.Source{Name: "GitHub Claude Code", URL: srv.URL, Category: "releases", Kind: config.KindReleases})

	items, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	first := items[0]
	if first.Title != "Claude Code v1.2.0" {
		t.Fatalf("title = %q", first.Title)
	}
	if first.Link != "https://github.com/anthropics/claude-code/releases/tag/v1.2.0" {
		t.Fatalf("link = %q", first.Link)
	}
	if !first.IsRelease || first.Relevance != 100 {
		t.Fatalf("release tagging lost: isRelease=%v relevance=%d", first.IsRelease, first.Relevance)
	}
	if first.Description != "Bug fixes and faster startup" {
		t.Fatalf("description = %q", first.Description)
	}
	wantDate := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	if !first.PubDate.Equal(wantDate) {
		t.Fatalf("pubDate = %v, want %v", first.PubDate, wantDate)
	}

	if items[1].Description != "New release available" {
		t.Fatalf("empty body should get the default description, got %q", items[1].Description)
	}
}
