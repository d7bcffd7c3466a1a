// Package feed fetches RSS and Atom sources and converts their items to
// entries the analysis layer understands.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/scout/pkg/content"
	"github.com/umputun/scout/pkg/domain"
)

// Fetcher retrieves and parses RSS/Atom feeds
type Fetcher struct {
	client    *http.Client
	userAgent string
	sanitizer *content.Sanitizer
}

// NewFetcher creates a feed fetcher with the given timeout and user agent
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: content.NewSanitizer(),
	}
}

// Fetch retrieves a feed and converts its items to entries. Items without a
// usable publication date are dropped, titles and summaries come back as
// plain text. Transient HTTP failures are retried with backoff.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]domain.Entry, error) {
	var parsed *gofeed.Feed
	retrier := repeater.NewBackoff(3, 100*time.Millisecond, repeater.WithMaxDelay(time.Second))
	err := retrier.Do(ctx, func() error {
		var e error
		parsed, e = f.fetch(ctx, url)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", url, err)
	}

	entries := make([]domain.Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		published, ok := itemPublished(item)
		if !ok {
			continue // the report window needs a date
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		entries = append(entries, domain.Entry{
			Title:     f.sanitizer.Plain(item.Title),
			Link:      item.Link,
			Summary:   f.sanitizer.Plain(summary),
			Published: published,
		})
	}
	return entries, nil
}

// fetch does a single HTTP round trip and parses the response as a feed.
// Charset conversion is left to the feed parser, it resolves the document
// encoding on its own.
func (f *Fetcher) fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	setRequestHeaders(req, f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return parsed, nil
}

// itemPublished picks the publication time, falling back to the update time
func itemPublished(item *gofeed.Item) (time.Time, bool) {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed, true
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed, true
	}
	return time.Time{}, false
}
