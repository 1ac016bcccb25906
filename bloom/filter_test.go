package bloom_test

import (
	"fmt"
	"testing"

	"github.com/accessibleweb/a11y/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://example.com/web/controls/button"))

	f.Add("https://example.com/web/controls/button")

	assert.True(t, f.Test("https://example.com/web/controls/button"))
	assert.False(t, f.Test("https://example.com/web/controls/checkbox"))
}

func TestFilter_NormalizesURLVariants(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	f.Add("https://example.com/web/controls/button")

	assert.True(t, f.Test("https://example.com/web/controls/button/"))
	assert.True(t, f.Test("https://example.com/web/controls/button#gherkin"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("https://example.com/web/controls/button")
	f.Add("https://example.com/web/controls/checkbox")
	f.Add("https://example.com/web/forms/text-input")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	for i := 0; i < 1000; i++ {
		f.Add(fmt.Sprintf("https://example.com/web/page-%d", i))
	}

	falsePositives := 0
	for i := 0; i < 1000; i++ {
		if f.Test(fmt.Sprintf("https://example.com/native/page-%d", i)) {
			falsePositives++
		}
	}

	// Sized for 1% false positives; allow generous headroom.
	assert.Less(t, falsePositives, 50)
}
