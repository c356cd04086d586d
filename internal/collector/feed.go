package collector

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"claudenews/internal/config"
	"claudenews/internal/model"
	"claudenews/internal/relevance"
)

// feedFetcher parses a syndication feed (RSS/Atom) with gofeed.
type feedFetcher struct {
	src    config.Source
	parser *gofeed.Parser
}

func newFeedFetcher(src config.Source) *feedFetcher {
	p := gofeed.NewParser()
	p.UserAgent = userAgent
	return &feedFetcher{src: src, parser: p}
}

func (f *feedFetcher) Name() string { return f.src.Name }

func (f *feedFetcher) Fetch(ctx context.Context) ([]model.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(f.src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", f.src.Name, err)
	}

	out := make([]model.Article, 0, len(feed.Items))
	for _, it := range feed.Items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			title = "Untitled"
		}

		desc := it.Description
		if desc == "" {
			desc = it.Content
		}
		desc = cleanText(desc)

		pub := time.Now().UTC()
		if it.PublishedParsed != nil {
			pub = it.PublishedParsed.UTC()
		} else if it.UpdatedParsed != nil {
			pub = it.UpdatedParsed.UTC()
		}

		out = append(out, model.Article{
			ID:          makeID(it.Link, title),
			Title:       title,
			Link:        it.Link,
			Description: desc,
			PubDate:     pub,
			Source:      f.src.Name,
			Category:    f.src.Category,
			Relevance:   relevance.Score(title, desc),
			Thumbnail:   itemThumbnail(it),
		})
	}
	return out, nil
}

var imgSrcRe = regexp.MustCompile(`<img[^>]+src="([^"]+)"`)

// itemThumbnail probes the usual places feeds hide an image: the enclosure,
// the media:content extension, then the first <img> in embedded content.
// Best effort only; source markup changes break this silently.
func itemThumbnail(it *gofeed.Item) string {
	for _, enc := range it.Enclosures {
		if enc.URL != "" {
			return enc.URL
		}
	}

	if media, ok := it.Extensions["media"]; ok {
		for _, ext := range media["content"] {
			if u := ext.Attrs["url"]; u != "" {
				return u
			}
		}
	}

	if m := imgSrcRe.FindStringSubmatch(it.Content); m != nil {
		return m[1]
	}
	return ""
}
