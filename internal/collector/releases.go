package collector

import (
	"context"
	"fmt"

	"github.com/gocolly/colly/v2"

	"claudenews/internal/config"
	"claudenews/internal/model"
)

const maxReleaseBodyRunes = 300

// releaseFetcher scrapes a GitHub release index. Every release is tagged
// isRelease and carries maximal relevance: releases are always news.
type releaseFetcher struct {
	src config.Source
}

func newReleaseFetcher(src config.Source) *releaseFetcher {
	return &releaseFetcher{src: src}
}

func (r *releaseFetcher) Name() string { return r.src.Name }

func (r *releaseFetcher) Fetch(ctx context.Context) ([]model.Article, error) {
	c := newCollector()
	out := make([]model.Article, 0, maxReleaseItems)

	c.OnHTML(`[data-hpc] .Box-row, .release, [class*="Box-row"]`, func(e *colly.HTMLElement) {
		if len(out) >= maxReleaseItems {
			return
		}

		title := firstText(e, `a.Link--primary, .release-title, a[href*="/releases/tag"]`)
		if title == "" {
			return
		}

		link := absoluteURL(firstAttr(e, `a.Link--primary, .release-title a, a[href*="/releases/tag"]`, "href"), "https://github.com")
		pub := parseDate(firstAttr(e, "relative-time", "datetime"))

		body := cleanText(truncateRunes(firstText(e, `.markdown-body, [class*="markdown"]`), maxReleaseBodyRunes))
		if body == "" {
			body = "New release available"
		}

		out = append(out, model.Article{
			ID:          makeID(link, title),
			Title:       "Claude Code " + title,
			Link:        link,
			Description: body,
			PubDate:     pub,
			Source:      r.src.Name,
			Category:    r.src.Category,
			Relevance:   100,
			IsRelease:   true,
		})
	})

	if err := c.Visit(r.src.URL); err != nil {
		return nil, fmt.Errorf("releases %s: %w", r.src.Name, err)
	}
	return out, nil
}
