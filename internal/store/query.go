package store

import (
	"math"
	"strings"
	"time"

	"claudenews/internal/model"
)

const defaultLimit = 20

type QueryOptions struct {
	Category     string
	Search       string
	MinRelevance int
	Page         int
	Limit        int
}

type QueryResult struct {
	Articles   []model.Article `json:"articles"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

// Query filters and paginates the current snapshot. The snapshot is already
// in serve order, so matches are returned as-is. A page beyond range yields
// an empty slice, not an error.
func (s *Store) Query(opts QueryOptions) QueryResult {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}

	snap := s.snap.Load()
	term := strings.ToLower(opts.Search)

	matched := make([]model.Article, 0, len(snap.Articles))
	for _, a := range snap.Articles {
		if opts.Category != "" && a.Category != opts.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(a.Title), term) &&
			!strings.Contains(strings.ToLower(a.Description), term) {
			continue
		}
		if a.Relevance < opts.MinRelevance {
			continue
		}
		matched = append(matched, a)
	}

	total := len(matched)
	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return QueryResult{
		Articles:   matched[start:end],
		Total:      total,
		Page:       opts.Page,
		TotalPages: (total + opts.Limit - 1) / opts.Limit,
	}
}

type Stats struct {
	TotalArticles int            `json:"totalArticles"`
	LastUpdated   time.Time      `json:"lastUpdated"`
	Categories    map[string]int `json:"categories"`
	AvgRelevance  int            `json:"avgRelevance"`
}

// StatsReport aggregates the current snapshot in a single pass.
func (s *Store) StatsReport() Stats {
	snap := s.snap.Load()

	counts := make(map[string]int)
	sum := 0
	for _, a := range snap.Articles {
		counts[a.Category]++
		sum += a.Relevance
	}

	st := Stats{
		TotalArticles: len(snap.Articles),
		LastUpdated:   snap.LastUpdated,
		Categories:    counts,
	}
	if st.TotalArticles > 0 {
		st.AvgRelevance = int(math.Round(float64(sum) / float64(st.TotalArticles)))
	}
	return st
}
