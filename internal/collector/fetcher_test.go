package collector

import (
	"testing"

	"claudenews/internal/config"
)

func TestNewDispatchesByKind(t *testing.T) {
	kinds := []config.SourceKind{config.KindFeed, config.KindPage, config.KindReleases, config.KindOrg}

	for _, kind := range kinds {
		f, err := New(config.Source{Name: "x", URL: "https://example.com", Kind: kind})
		if err != nil {
			t.Fatalf("New(%s): %v", kind, err)
		}
		switch kind {
		case config.KindFeed:
			if _, ok := f.(*feedFetcher); !ok {
				t.Fatalf("kind %s built %T", kind, f)
			}
		case config.KindPage:
			if _, ok := f.(*pageFetcher); !ok {
				t.Fatalf("kind %s built %T", kind, f)
			}
		case config.KindReleases:
			if _, ok := f.(*releaseFetcher); !ok {
				t.Fatalf("kind %s built %T", kind, f)
			}
		case config.KindOrg:
			if _, ok := f.(*orgFetcher); !ok {
				t.Fatalf("kind %s built %T", kind, f)
			}
		}
	}
}

func TestNewRejectsUnknownKind(t *testing.T) {
	if _, err := New(config.Source{Name: "x", Kind: "carrier-pigeon"}); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}

func TestNewAllBuildsEveryConfiguredSource(t *testing.T) {
	fetchers, err := NewAll(config.Sources())
	if err != nil {
		t.Fatalf("NewAll: %v", err)
	}
	if len(fetchers) != len(config.Sources()) {
		t.Fatalf("built %d fetchers for %d sources", len(fetchers), len(config.Sources()))
	}
}
