// Package scheduler drives ingestion cycles on a timer and on demand,
// enforcing single-flight execution.
package scheduler

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"claudenews/internal/aggregator"
)

// ErrFetchInProgress is returned when a cycle is requested while another is
// in flight. It is an "already running" signal, not a failure.
var ErrFetchInProgress = errors.New("refresh already in progress")

// Both specs invoke the same guarded cycle; when they coincide at midnight
// the guard lets exactly one run.
const (
	sixHourSpec  = "0 */6 * * *"
	midnightSpec = "0 0 * * *"
)

type Scheduler struct {
	cron     *cron.Cron
	agg      *aggregator.Aggregator
	running  atomic.Bool
	fetching atomic.Bool
}

func New(agg *aggregator.Aggregator) (*Scheduler, error) {
	s := &Scheduler{cron: cron.New(), agg: agg}

	for _, spec := range []string{sixHourSpec, midnightSpec} {
		if _, err := s.cron.AddFunc(spec, s.scheduledRun); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Start arms the timers.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.running.Store(true)
	log.Println("scheduler: started, fetching news every 6 hours")
}

// Stop disarms the timers. A cycle already in flight is not cancelled.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.running.Store(false)
	log.Println("scheduler: stopped")
}

// RunCycle runs one guarded ingestion cycle. At most one cycle executes at a
// time; a call while another is in flight returns ErrFetchInProgress
// immediately and performs no work. The guard is released on every path.
func (s *Scheduler) RunCycle(ctx context.Context) (aggregator.Result, error) {
	if !s.fetching.CompareAndSwap(false, true) {
		return aggregator.Result{}, ErrFetchInProgress
	}
	defer s.fetching.Store(false)

	return s.agg.Run(ctx), nil
}

func (s *Scheduler) scheduledRun() {
	if _, err := s.RunCycle(context.Background()); errors.Is(err, ErrFetchInProgress) {
		log.Println("scheduler: fetch already in progress, skipping")
	}
}

type Status struct {
	Running  bool       `json:"running"`
	Fetching bool       `json:"fetching"`
	NextRun  *time.Time `json:"nextRun,omitempty"`
}

// CurrentStatus reports whether timers are armed, whether a cycle is in
// flight, and the earliest upcoming timer fire.
func (s *Scheduler) CurrentStatus() Status {
	st := Status{
		Running:  s.running.Load(),
		Fetching: s.fetching.Load(),
	}
	if !st.Running {
		return st
	}

	var next time.Time
	for _, e := range s.cron.Entries() {
		if e.Next.IsZero() {
			continue
		}
		if next.IsZero() || e.Next.Before(next) {
			next = e.Next
		}
	}
	if !next.IsZero() {
		st.NextRun = &next
	}
	return st
}
