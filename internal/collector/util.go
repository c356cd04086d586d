package collector

import (
	"crypto/sha1"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

const maxDescriptionRunes = 500

// makeID hashes the link into a stable article ID, falling back to the title
// when a source has no link.
func makeID(link, title string) string {
	s := link
	if s == "" {
		s = title
	}
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:])
}

// cleanText strips markup, collapses whitespace and bounds the length.
func cleanText(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	out := strings.Join(strings.Fields(b.String()), " ")
	return truncateRunes(out, maxDescriptionRunes)
}

func truncateRunes(s string, limit int) string {
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

// absoluteURL resolves href against base when it is relative.
func absoluteURL(href, base string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}

// parseDate reads an RFC3339-ish datetime attribute, falling back to now.
func parseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}

func newCollector() *colly.Collector {
	c := colly.NewCollector(colly.UserAgent(userAgent))
	c.SetRequestTimeout(fetchTimeout)
	return c
}

// firstText mirrors "find first matching child, take its text": colly's
// ChildText concatenates every match, which mangles multi-heading blocks.
func firstText(e *colly.HTMLElement, selector string) string {
	return strings.TrimSpace(e.DOM.Find(selector).First().Text())
}

func firstAttr(e *colly.HTMLElement, selector, attr string) string {
	v, _ := e.DOM.Find(selector).First().Attr(attr)
	return strings.TrimSpace(v)
}
