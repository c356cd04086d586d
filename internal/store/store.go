// Package store owns the current article snapshot: atomic swap for writers,
// lock-free reads for queries, best-effort persistence underneath.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"claudenews/internal/model"
)

const (
	snapshotKey    = "claudenews:snapshot"
	backendTimeout = 3 * time.Second
)

// Store holds the current immutable snapshot. Queries read it lock-free;
// Replace is the only writer and is serialized by the scheduler's guard.
type Store struct {
	snap atomic.Pointer[model.Snapshot]
	file string
	rdb  *redis.Client
}

// New builds a store persisting to redis when an address is configured,
// otherwise to a JSON file.
func New(file, redisAddr string) *Store {
	s := &Store{file: file}
	s.snap.Store(&model.Snapshot{})

	if redisAddr != "" {
		s.rdb = redis.NewClient(&redis.Options{Addr: redisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
		defer cancel()
		if err := s.rdb.Ping(ctx).Err(); err != nil {
			log.Printf("store: warn: redis ping failed: %v", err)
		}
	}
	return s
}

// Load reads the persisted snapshot at startup. Missing or corrupt data is
// never fatal: the store stays empty and Load reports false.
func (s *Store) Load() bool {
	data, err := s.read()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) && !errors.Is(err, redis.Nil) {
			log.Printf("store: load error: %v", err)
		}
		return false
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("store: corrupt snapshot, starting empty: %v", err)
		return false
	}

	snap.Count = len(snap.Articles)
	s.snap.Store(&snap)
	log.Printf("store: loaded %d articles", snap.Count)
	return true
}

// Snapshot returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Snapshot() *model.Snapshot {
	return s.snap.Load()
}

// Replace swaps in the new snapshot and persists it. A failed write is
// logged, never propagated: the in-memory snapshot keeps serving queries and
// the next successful cycle retries the save.
func (s *Store) Replace(snap *model.Snapshot) {
	s.snap.Store(snap)

	if err := s.persist(snap); err != nil {
		log.Printf("store: save error: %v", err)
		return
	}
	log.Printf("store: saved %d articles", snap.Count)
}

// DiffNewCount counts article IDs present in next but absent from prev.
func DiffNewCount(prev, next *model.Snapshot) int {
	known := make(map[string]struct{}, len(prev.Articles))
	for _, a := range prev.Articles {
		known[a.ID] = struct{}{}
	}

	n := 0
	for _, a := range next.Articles {
		if _, ok := known[a.ID]; !ok {
			n++
		}
	}
	return n
}

func (s *Store) read() ([]byte, error) {
	if s.rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
		defer cancel()
		return s.rdb.Get(ctx, snapshotKey).Bytes()
	}
	return os.ReadFile(s.file)
}

func (s *Store) persist(snap *model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	if s.rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
		defer cancel()
		return s.rdb.Set(ctx, snapshotKey, data, 0).Err()
	}

	if err := os.MkdirAll(filepath.Dir(s.file), 0o755); err != nil {
		return err
	}
	// Write-then-rename so a crash mid-write never leaves a corrupt file.
	tmp := s.file + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.file)
}
