package model

import "time"

// Article is the canonical record every source normalizes into.
// ID is a stable hash of the link (or the title when there is no link);
// collisions simply merge entries.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	PubDate     time.Time `json:"pubDate"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	Relevance   int       `json:"relevance"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	IsRelease   bool      `json:"isRelease,omitempty"`
}

// Snapshot is the full ordered article list produced by one ingestion cycle.
// A snapshot is never mutated in place; each cycle builds a brand-new one
// that atomically replaces the previous.
type Snapshot struct {
	LastUpdated time.Time `json:"lastUpdated"`
	Count       int       `json:"count"`
	Articles    []Article `json:"articles"`
}
