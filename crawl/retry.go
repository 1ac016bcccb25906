package crawl

import (
	"context"
	"time"

	"github.com/accessibleweb/a11y"
)

// defaultRetryDelays are the backoff delays for fetch retries.
func defaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry attempts a fetch with backoff delays between attempts.
// One initial attempt plus one retry per delay.
func fetchWithRetry(ctx context.Context, fetcher a11y.Fetcher, url string, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= len(delays) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return "", lastErr
}
