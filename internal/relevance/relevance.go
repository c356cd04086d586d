// Package relevance scores how close a piece of text is to Claude Code news.
package relevance

import "strings"

// Keyword tiers with fixed weights. A text matching keywords from several
// tiers accumulates all of them; the sum is clamped to [0,100].
var tiers = []struct {
	weight   int
	keywords []string
}{
	{50, []string{"claude code", "claude-code", "claude cli", "anthropic cli", "claude terminal", "@anthropic/claude-code"}},
	{30, []string{"claude agent", "claude mcp", "model context protocol", "claude sdk", "claude desktop", "claude computer use"}},
	{15, []string{"claude 3", "claude api", "anthropic api", "claude sonnet", "claude opus", "claude haiku", "claude 3.5"}},
	{5, []string{"claude", "anthropic", "ai coding", "llm coding", "ai assistant"}},
}

// Score rates a title/content pair from 0 to 100. Matching is
// case-insensitive substring containment; the function is pure.
func Score(title, content string) int {
	text := strings.ToLower(title + " " + content)

	score := 0
	for _, tier := range tiers {
		for _, kw := range tier.keywords {
			if strings.Contains(text, kw) {
				score += tier.weight
			}
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}
