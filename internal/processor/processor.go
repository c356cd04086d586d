// Package processor merges one cycle's combined adapter output into the
// filtered, deduplicated, ranked list that becomes the next snapshot.
package processor

import (
	"sort"
	"strings"

	"claudenews/internal/model"
)

const (
	// Items scoring below this are off-topic noise.
	minRelevance = 5

	dedupKeyLen = 50
)

// Process filters, deduplicates and ranks in that order. Dedup is first-wins
// over the input order, so the first source to report a story keeps it. The
// result is in final serve order; the query side never re-sorts.
func Process(items []model.Article) []model.Article {
	kept := make([]model.Article, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, it := range items {
		if it.Relevance < minRelevance {
			continue
		}
		key := DedupKey(it.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, it)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Relevance != kept[j].Relevance {
			return kept[i].Relevance > kept[j].Relevance
		}
		return kept[i].PubDate.After(kept[j].PubDate)
	})

	return kept
}

// DedupKey normalizes a title so the same story from different sources
// collapses: lowercase, ASCII alphanumerics only, capped at 50 characters.
func DedupKey(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= dedupKeyLen {
				break
			}
		}
	}
	return b.String()
}
