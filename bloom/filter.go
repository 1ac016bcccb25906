// Package bloom deduplicates criteria page URLs during a refresh run.
package bloom

import (
	"strings"

	"github.com/accessibleweb/a11y"
	"github.com/bits-and-blooms/bloom/v3"
)

var _ a11y.VisitedFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for URL deduplication. URLs are
// normalized before hashing so that fragment and trailing-slash
// variants of the same page count as one visit.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected URLs with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL as visited.
func (f *Filter) Add(url string) {
	f.f.AddString(normalize(url))
}

// Test returns true if the URL may have been visited already.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(normalize(url))
}

// EstimatedCount returns the approximate number of visited URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

func normalize(url string) string {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		url = url[:i]
	}
	return strings.TrimSuffix(url, "/")
}
