// Package aggregator runs one ingestion cycle end to end: fan out to every
// source, rank whatever came back, swap the snapshot and report what is new.
package aggregator

import (
	"context"
	"log"
	"sync"
	"time"

	"claudenews/internal/collector"
	"claudenews/internal/model"
	"claudenews/internal/processor"
	"claudenews/internal/store"
)

// Result reports one completed ingestion cycle.
type Result struct {
	TotalArticles int `json:"totalArticles"`
	NewCount      int `json:"newCount"`
}

type Aggregator struct {
	fetchers []collector.Fetcher
	store    *store.Store
}

func New(fetchers []collector.Fetcher, st *store.Store) *Aggregator {
	return &Aggregator{fetchers: fetchers, store: st}
}

// Run executes one full cycle. Source failures are logged and contribute
// zero items; even a cycle where every source fails completes and produces a
// (possibly empty) snapshot rather than aborting.
func (a *Aggregator) Run(ctx context.Context) Result {
	log.Println("aggregator: start fetch...")
	start := time.Now()

	// One result slot per fetcher: the merge below walks slots in configured
	// source order, which keeps first-wins dedup deterministic regardless of
	// which fetch finishes first.
	results := make([][]model.Article, len(a.fetchers))

	var wg sync.WaitGroup
	for i, f := range a.fetchers {
		wg.Add(1)
		go func(i int, f collector.Fetcher) {
			defer wg.Done()
			items, err := f.Fetch(ctx)
			if err != nil {
				log.Printf("aggregator: fetch %s error: %v", f.Name(), err)
				return
			}
			results[i] = items
		}(i, f)
	}
	wg.Wait()

	var all []model.Article
	for _, items := range results {
		all = append(all, items...)
	}

	ranked := processor.Process(all)
	snap := &model.Snapshot{
		LastUpdated: time.Now().UTC(),
		Count:       len(ranked),
		Articles:    ranked,
	}

	prev := a.store.Snapshot()
	a.store.Replace(snap)
	newCount := store.DiffNewCount(prev, snap)

	log.Printf("aggregator: fetched %d articles (%d new) in %.2fs",
		len(ranked), newCount, time.Since(start).Seconds())

	return Result{TotalArticles: len(ranked), NewCount: newCount}
}
