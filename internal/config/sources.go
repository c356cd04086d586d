package config

// SourceKind selects the fetcher variant for a source.
type SourceKind string

const (
	KindFeed     SourceKind = "feed"     // syndication feed (RSS/Atom)
	KindPage     SourceKind = "page"     // generic HTML page with a block selector
	KindReleases SourceKind = "releases" // GitHub release index
	KindOrg      SourceKind = "org"      // GitHub organization repo listing
)

// Source describes one remote source. The list is loaded once at process
// start and never mutated by ingestion.
type Source struct {
	Name     string
	URL      string
	Category string
	Kind     SourceKind
	Selector string // page kind only: CSS selector for candidate article blocks
	Keyword  string // org kind only: display-name filter
}

// Sources returns the full source table for Claude Code news.
func Sources() []Source {
	return []Source{
		{Name: "Hacker News", URL: "https://hnrss.org/newest?q=claude+code+OR+anthropic+claude+OR+claude+ai", Category: "tech", Kind: KindFeed},
		{Name: "Hacker News Claude", URL: "https://hnrss.org/newest?q=claude", Category: "tech", Kind: KindFeed},
		{Name: "Reddit AI", URL: "https://www.reddit.com/r/artificial/search.rss?q=claude&restrict_sr=on&sort=new&t=week", Category: "community", Kind: KindFeed},
		{Name: "Reddit LocalLLaMA", URL: "https://www.reddit.com/r/LocalLLaMA/search.rss?q=claude&restrict_sr=on&sort=new&t=week", Category: "community", Kind: KindFeed},
		{Name: "Reddit ClaudeAI", URL: "https://www.reddit.com/r/ClaudeAI/new.rss", Category: "community", Kind: KindFeed},
		{Name: "Reddit MachineLearning", URL: "https://www.reddit.com/r/MachineLearning/search.rss?q=claude+OR+anthropic&restrict_sr=on&sort=new&t=week", Category: "community", Kind: KindFeed},
		{Name: "Dev.to Claude", URL: "https://dev.to/feed/tag/claude", Category: "tutorials", Kind: KindFeed},
		{Name: "Dev.to Anthropic", URL: "https://dev.to/feed/tag/anthropic", Category: "tutorials", Kind: KindFeed},
		{Name: "Medium AI", URL: "https://medium.com/feed/tag/claude-ai", Category: "articles", Kind: KindFeed},
		{Name: "TechCrunch AI", URL: "https://techcrunch.com/tag/anthropic/feed/", Category: "tech", Kind: KindFeed},
		{Name: "The Verge AI", URL: "https://www.theverge.com/rss/ai-artificial-intelligence/index.xml", Category: "tech", Kind: KindFeed},
		{Name: "Ars Technica AI", URL: "https://feeds.arstechnica.com/arstechnica/technology-lab", Category: "tech", Kind: KindFeed},
		{Name: "VentureBeat AI", URL: "https://venturebeat.com/category/ai/feed/", Category: "tech", Kind: KindFeed},
		{Name: "Google News Claude", URL: "https://news.google.com/rss/search?q=claude+code+anthropic&hl=en-US&gl=US&ceid=US:en", Category: "articles", Kind: KindFeed},
		{Name: "Google News Claude AI", URL: "https://news.google.com/rss/search?q=claude+ai+anthropic&hl=en-US&gl=US&ceid=US:en", Category: "articles", Kind: KindFeed},
		{Name: "Anthropic Blog", URL: "https://www.anthropic.com/news", Category: "official", Kind: KindPage,
			Selector: `article, .post, .news-item, [class*="post"], [class*="article"]`},
		{Name: "GitHub Claude Code", URL: "https://github.com/anthropics/claude-code/releases", Category: "releases", Kind: KindReleases},
		{Name: "GitHub Anthropic", URL: "https://github.com/anthropics", Category: "releases", Kind: KindOrg, Keyword: "claude"},
	}
}

// Category is one entry of the fixed taxonomy served to clients.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Categories returns the static 6-entry taxonomy. It is configuration, not
// derived from data.
func Categories() []Category {
	return []Category{
		{ID: "official", Name: "Official News", Icon: "megaphone"},
		{ID: "releases", Name: "Releases", Icon: "rocket"},
		{ID: "tech", Name: "Tech News", Icon: "cpu"},
		{ID: "tutorials", Name: "Tutorials", Icon: "book-open"},
		{ID: "articles", Name: "Articles", Icon: "file-text"},
		{ID: "community", Name: "Community", Icon: "users"},
	}
}
