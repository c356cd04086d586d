package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"claudenews/internal/config"
)

const sampleOrg = `<html><body>
<a itemprop="name codeRepository" href="/anthropics/claude-code">claude-code</a>
<a itemprop="name codeRepository" href="/anthropics/courses">courses</a>
<a itemprop="name codeRepository" href="/anthropics/claude-cookbooks">claude-cookbooks</a>
</body></html>`

func TestOrgFetcherFiltersByKeyword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(sampleOrg))
	}))
	defer srv.Close()

	f := newOrgFetcher(config.Source{Name: "GitHub Anthropic", URL: srv.URL, Category: "releases", Kind: config.KindOrg, Keyword: "claude"})

	items, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	// "courses" does not contain the keyword.
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	first := items[0]
	if first.Title != "Anthropic Repository: claude-code" {
		t.Fatalf("title = %q", first.Title)
	}
	if first.Link != "https://github.com/anthropics/claude-code" {
		t.Fatalf("link = %q", first.Link)
	}
	if first.Relevance != orgRelevance {
		t.Fatalf("relevance = %d, want %d", first.Relevance, orgRelevance)
	}
}
