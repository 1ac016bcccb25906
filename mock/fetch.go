package mock

import (
	"context"

	"github.com/accessibleweb/a11y"
)

var _ a11y.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of a11y.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ a11y.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of a11y.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}

var _ a11y.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of a11y.PageExtractor.
type PageExtractor struct {
	ExtractFn func(html string) (*a11y.PageContent, error)
}

func (e *PageExtractor) Extract(html string) (*a11y.PageContent, error) {
	return e.ExtractFn(html)
}

var _ a11y.Converter = (*Converter)(nil)

// Converter is a mock implementation of a11y.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ a11y.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of a11y.ArtifactWriter.
type ArtifactWriter struct {
	WriteFn func(collection a11y.Collection) (bool, error)
}

func (w *ArtifactWriter) Write(collection a11y.Collection) (bool, error) {
	return w.WriteFn(collection)
}
