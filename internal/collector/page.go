package collector

import (
	"context"
	"fmt"

	"github.com/gocolly/colly/v2"

	"claudenews/internal/config"
	"claudenews/internal/model"
	"claudenews/internal/relevance"
)

// pageFetcher scrapes a generic HTML page: the configured selector picks
// candidate article blocks, each block yields title/link/summary/date.
type pageFetcher struct {
	src config.Source
}

func newPageFetcher(src config.Source) *pageFetcher {
	return &pageFetcher{src: src}
}

func (p *pageFetcher) Name() string { return p.src.Name }

func (p *pageFetcher) Fetch(ctx context.Context) ([]model.Article, error) {
	c := newCollector()
	out := make([]model.Article, 0, maxPageItems)

	c.OnHTML(p.src.Selector, func(e *colly.HTMLElement) {
		if len(out) >= maxPageItems {
			return
		}

		title := firstText(e, "h1, h2, h3, .title")
		if len(title) <= minTitleLen {
			return
		}

		link := absoluteURL(firstAttr(e, "a", "href"), p.src.URL)
		desc := cleanText(firstText(e, "p, .summary, .excerpt"))
		pub := parseDate(firstAttr(e, "time, .date", "datetime"))

		out = append(out, model.Article{
			ID:          makeID(link, title),
			Title:       title,
			Link:        link,
			Description: desc,
			PubDate:     pub,
			Source:      p.src.Name,
			Category:    p.src.Category,
			Relevance:   relevance.Score(title, desc),
		})
	})

	if err := c.Visit(p.src.URL); err != nil {
		return nil, fmt.Errorf("page %s: %w", p.src.Name, err)
	}
	return out, nil
}
