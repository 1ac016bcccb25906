package a11y

import "context"

// Fetcher retrieves HTML content from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML content from the given URL.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// SitemapService discovers page URLs from a site's sitemap.
type SitemapService interface {
	// DiscoverURLs finds all URLs under baseURL from the site's sitemap.
	// Returns an empty slice (not nil) if no sitemaps are found.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}

// PageContent is the raw content extracted from one upstream criteria page.
// Section values are HTML fragments keyed by the Section* constants; videos
// is already JSON and passes through untouched.
type PageContent struct {
	Label         string
	CategoryLabel string
	Sections      map[string]string
	Videos        []byte
}

// PageExtractor pulls criteria content out of an upstream page.
type PageExtractor interface {
	// Extract parses a criteria page and returns its content.
	// Returns EINVALID if the page does not look like a criteria page.
	Extract(html string) (*PageContent, error)
}

// Converter transforms HTML fragments into markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// ArtifactWriter persists a refreshed collection artifact.
type ArtifactWriter interface {
	// Write serializes the collection to the configured path. Returns false
	// when the artifact is unchanged and nothing was written.
	Write(collection Collection) (bool, error)
}

// VisitedFilter deduplicates page URLs during a refresh run.
type VisitedFilter interface {
	// Add records a URL as visited.
	Add(url string)

	// Test returns true if the URL may have been visited already.
	Test(url string) bool
}
