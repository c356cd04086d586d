package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"claudenews/internal/config"
	"claudenews/internal/model"
)

// Repositories matched off an org listing are relevant but not breaking
// news, so they get a fixed score below the release tier.
const orgRelevance = 80

// orgFetcher scrapes a GitHub organization listing and keeps repositories
// whose display name contains the configured keyword.
type orgFetcher struct {
	src config.Source
}

func newOrgFetcher(src config.Source) *orgFetcher {
	return &orgFetcher{src: src}
}

func (o *orgFetcher) Name() string { return o.src.Name }

func (o *orgFetcher) Fetch(ctx context.Context) ([]model.Article, error) {
	c := newCollector()
	out := make([]model.Article, 0, maxOrgItems)
	now := time.Now().UTC()

	c.OnHTML(`[itemprop="name codeRepository"], .repo, [class*="repo"]`, func(e *colly.HTMLElement) {
		if len(out) >= maxOrgItems {
			return
		}

		name := strings.TrimSpace(e.Text)
		if name == "" || !strings.Contains(strings.ToLower(name), o.src.Keyword) {
			return
		}

		link := absoluteURL(strings.TrimSpace(e.Attr("href")), "https://github.com")

		out = append(out, model.Article{
			ID:          makeID(link, name),
			Title:       "Anthropic Repository: " + name,
			Link:        link,
			Description: "Official Anthropic repository for " + name,
			PubDate:     now,
			Source:      o.src.Name,
			Category:    o.src.Category,
			Relevance:   orgRelevance,
		})
	})

	if err := c.Visit(o.src.URL); err != nil {
		return nil, fmt.Errorf("org %s: %w", o.src.Name, err)
	}
	return out, nil
}
