package processor

import (
	"strings"
	"testing"
	"time"

	"claudenews/internal/model"
)

func TestDedupKeyNormalizesCaseAndPunctuation(t *testing.T) {
	a := DedupKey("Claude Code 2.0 released")
	b := DedupKey("claude code 2.0 released!!")
	if a != b {
		t.Fatalf("keys differ: %q vs %q", a, b)
	}
	if a != "claudecode20released" {
		t.Fatalf("unexpected key: %q", a)
	}
}

func TestDedupKeyCapsLength(t *testing.T) {
	key := DedupKey(strings.Repeat("abc", 40))
	if len(key) != 50 {
		t.Fatalf("key length = %d, want 50", len(key))
	}
}

func TestProcessFirstSourceWinsOnDuplicateTitles(t *testing.T) {
	now := time.Now()
	out := Process([]model.Article{
		{ID: "1", Title: "Claude Code 2.0 released", Source: "Hacker News", Relevance: 55, PubDate: now},
		{ID: "2", Title: "claude code 2.0 released!!", Source: "Reddit AI", Relevance: 90, PubDate: now},
	})

	if len(out) != 1 {
		t.Fatalf("expected 1 article after dedupe, got %d", len(out))
	}
	if out[0].Source != "Hacker News" {
		t.Fatalf("first source should win, got %q", out[0].Source)
	}
}

func TestProcessDropsBelowRelevanceFloor(t *testing.T) {
	out := Process([]model.Article{
		{ID: "1", Title: "barely on topic", Relevance: 5},
		{ID: "2", Title: "off topic", Relevance: 4},
	})

	if len(out) != 1 {
		t.Fatalf("expected 1 article, got %d", len(out))
	}
	if out[0].ID != "1" {
		t.Fatalf("wrong survivor: %q", out[0].ID)
	}
}

func TestProcessOrdersByRelevanceThenDate(t *testing.T) {
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	out := Process([]model.Article{
		{ID: "low", Title: "low score", Relevance: 10, PubDate: newer},
		{ID: "tie-old", Title: "tie but older", Relevance: 80, PubDate: older},
		{ID: "tie-new", Title: "tie but newer", Relevance: 80, PubDate: newer},
	})

	want := []string{"tie-new", "tie-old", "low"}
	if len(out) != len(want) {
		t.Fatalf("expected %d articles, got %d", len(want), len(out))
	}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("position %d = %q, want %q", i, out[i].ID, id)
		}
	}
}

func TestProcessEmptyInput(t *testing.T) {
	if out := Process(nil); len(out) != 0 {
		t.Fatalf("expected empty output, got %d items", len(out))
	}
}
