// Package crawl orchestrates the refresh of the criteria catalog from
// its upstream site. It coordinates sitemap discovery, rate-limited
// fetching, content extraction, and markdown conversion.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/accessibleweb/a11y"
	"golang.org/x/sync/errgroup"
)

// Refresher rebuilds a criteria collection from the upstream site.
type Refresher struct {
	Sitemaps    a11y.SitemapService
	Fetcher     a11y.Fetcher
	Extractor   a11y.PageExtractor
	Converter   a11y.Converter
	Limiter     a11y.DomainLimiter
	Visited     a11y.VisitedFilter
	Logger      *slog.Logger
	Concurrency int
	RetryDelays []time.Duration
}

// Stats holds the outcome of a refresh run.
type Stats struct {
	Discovered int
	Fetched    int
	Skipped    int
	Failed     int
}

// pageKey locates a criteria page within the collection tree.
type pageKey struct {
	platform  a11y.Platform
	category  string
	component string
}

// pageResult holds the outcome of processing a single criteria page.
type pageResult struct {
	position int
	key      pageKey
	url      string
	content  *a11y.PageContent
	markdown map[string]string
	err      error
}

// Refresh discovers all criteria pages under baseURL and rebuilds the
// collection from them. Page order within a category follows sitemap
// order, as does category order within a platform.
func (r *Refresher) Refresh(ctx context.Context, baseURL string) (a11y.Collection, *Stats, error) {
	urls, err := r.Sitemaps.DiscoverURLs(ctx, baseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	stats := &Stats{Discovered: len(urls)}

	// Keep only well-formed criteria page URLs, deduplicated.
	type target struct {
		url string
		key pageKey
	}
	var targets []target
	for _, pageURL := range urls {
		key, ok := parsePageURL(baseURL, pageURL)
		if !ok {
			stats.Skipped++
			continue
		}
		if r.Visited != nil {
			if r.Visited.Test(pageURL) {
				stats.Skipped++
				continue
			}
			r.Visited.Add(pageURL)
		}
		targets = append(targets, target{url: pageURL, key: key})
	}

	if len(targets) == 0 {
		return a11y.Collection{}, stats, nil
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	resultCh := make(chan pageResult, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, tgt := range targets {
			i, tgt := i, tgt
			g.Go(func() error {
				resultCh <- r.processPage(gctx, i, tgt.url, tgt.key)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]pageResult, len(targets))
	for result := range resultCh {
		results[result.position] = result
		if result.err != nil {
			stats.Failed++
			if r.Logger != nil {
				r.Logger.Warn("criteria page failed", "url", result.url, "error", result.err)
			}
			continue
		}
		stats.Fetched++
	}

	collection := assemble(results)

	if r.Logger != nil {
		r.Logger.Info("refresh complete",
			"discovered", stats.Discovered,
			"fetched", stats.Fetched,
			"skipped", stats.Skipped,
			"failed", stats.Failed,
		)
	}

	return collection, stats, nil
}

// processPage fetches one criteria page and converts its sections to
// markdown.
func (r *Refresher) processPage(ctx context.Context, position int, pageURL string, key pageKey) pageResult {
	result := pageResult{position: position, key: key, url: pageURL}

	if r.Limiter != nil {
		if u, err := url.Parse(pageURL); err == nil {
			if err := r.Limiter.Wait(ctx, u.Host); err != nil {
				result.err = err
				return result
			}
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = defaultRetryDelays()
	}
	html, err := fetchWithRetry(ctx, r.Fetcher, pageURL, delays)
	if err != nil {
		result.err = err
		return result
	}

	content, err := r.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}
	result.content = content

	result.markdown = make(map[string]string, len(content.Sections))
	for name, fragment := range content.Sections {
		md, err := r.Converter.Convert(fragment)
		if err != nil {
			result.err = fmt.Errorf("convert %s section: %w", name, err)
			return result
		}
		result.markdown[name] = md
	}

	return result
}

// parsePageURL maps a page URL to its place in the collection tree.
// Criteria pages live at {base}/{platform}/{category}/{component}.
func parsePageURL(baseURL, pageURL string) (pageKey, bool) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return pageKey{}, false
	}
	page, err := url.Parse(pageURL)
	if err != nil {
		return pageKey{}, false
	}

	rel := strings.TrimPrefix(strings.Trim(page.Path, "/"), strings.Trim(base.Path, "/"))
	parts := strings.Split(strings.Trim(rel, "/"), "/")
	if len(parts) != 3 {
		return pageKey{}, false
	}

	platform := a11y.ParsePlatform(parts[0])
	if !platform.Valid() || parts[1] == "" || parts[2] == "" {
		return pageKey{}, false
	}

	return pageKey{platform: platform, category: parts[1], component: parts[2]}, true
}

// assemble builds the collection tree from successful page results,
// preserving the order pages were discovered in.
func assemble(results []pageResult) a11y.Collection {
	collection := a11y.Collection{}
	categories := make(map[a11y.Platform]map[string]*a11y.Category)

	for _, result := range results {
		if result.err != nil {
			continue
		}

		byName, ok := categories[result.key.platform]
		if !ok {
			byName = make(map[string]*a11y.Category)
			categories[result.key.platform] = byName
		}

		category, ok := byName[result.key.category]
		if !ok {
			category = &a11y.Category{
				Name:  result.key.category,
				Label: labelFromSlug(result.key.category),
			}
			byName[result.key.category] = category
			collection[result.key.platform] = append(collection[result.key.platform], category)
		}
		if result.content.CategoryLabel != "" {
			category.Label = result.content.CategoryLabel
		}

		component := &a11y.Component{
			Name:                  result.key.component,
			Label:                 result.content.Label,
			GeneralNotes:          result.markdown[a11y.SectionGeneralNotes],
			Gherkin:               result.markdown[a11y.SectionGherkin],
			Condensed:             result.markdown[a11y.SectionCondensed],
			DeveloperNotes:        result.markdown[a11y.SectionDeveloperNotes],
			AndroidDeveloperNotes: result.markdown[a11y.SectionAndroidDeveloperNotes],
			IOSDeveloperNotes:     result.markdown[a11y.SectionIOSDeveloperNotes],
			Videos:                result.content.Videos,
		}
		category.Components = append(category.Components, component)
	}

	return collection
}

// labelFromSlug derives a display label from a URL path segment, used
// until a page supplies the real breadcrumb label.
func labelFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
