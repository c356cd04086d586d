package collector

import (
	"context"
	"fmt"
	"time"

	"claudenews/internal/config"
	"claudenews/internal/model"
)

const (
	fetchTimeout = 15 * time.Second
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// Per-source item caps so one noisy source cannot dominate a cycle.
	maxPageItems    = 20
	maxReleaseItems = 10
	maxOrgItems     = 5

	// Page blocks with titles this short are navigation noise.
	minTitleLen = 5
)

// Fetcher pulls and normalizes items from one configured source. A failed
// fetch is isolated to its source and never aborts the overall cycle.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]model.Article, error)
}

// New builds the fetcher variant for a source. Dispatch by kind happens once
// at configuration load, not per call.
func New(src config.Source) (Fetcher, error) {
	switch src.Kind {
	case config.KindFeed:
		return newFeedFetcher(src), nil
	case config.KindPage:
		return newPageFetcher(src), nil
	case config.KindReleases:
		return newReleaseFetcher(src), nil
	case config.KindOrg:
		return newOrgFetcher(src), nil
	default:
		return nil, fmt.Errorf("collector: unknown source kind %q for %s", src.Kind, src.Name)
	}
}

// NewAll builds fetchers for every configured source.
func NewAll(sources []config.Source) ([]Fetcher, error) {
	fetchers := make([]Fetcher, 0, len(sources))
	for _, src := range sources {
		f, err := New(src)
		if err != nil {
			return nil, err
		}
		fetchers = append(fetchers, f)
	}
	return fetchers, nil
}
