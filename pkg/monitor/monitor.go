// Package monitor orchestrates a single run of the suggestion pipeline:
// collect entries from all configured sources, cut them to the report
// window and hand them to the analysis layer.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/scout/pkg/analysis"
	"github.com/umputun/scout/pkg/config"
	"github.com/umputun/scout/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . EntryStore

// ConfigProvider provides sources and scoring weights
type ConfigProvider interface {
	GetSources() []config.Source
	GetTopicWeights() map[string]float64
	GetMonitorConfig() config.MonitorConfig
}

// Fetcher retrieves and parses a single feed
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]domain.Entry, error)
}

// EntryStore caches fetched entries between runs
type EntryStore interface {
	Load(ctx context.Context, source string) ([]domain.Entry, bool, error)
	Store(ctx context.Context, source string, entries []domain.Entry) error
	StoreError(ctx context.Context, source, errMsg string) error
}

// Monitor collects entries from configured sources and builds reports
type Monitor struct {
	config  ConfigProvider
	fetcher Fetcher
	store   EntryStore
}

// New creates a monitor wired to configuration, fetcher and entry cache
func New(cfg ConfigProvider, fetcher Fetcher, store EntryStore) *Monitor {
	return &Monitor{config: cfg, fetcher: fetcher, store: store}
}

// Run fetches all sources and produces a report for the last days window.
// Sources are fetched concurrently but entries stay in configured source
// order, clustering depends on it. Individual source failures are logged
// and cached, the run proceeds with what it has.
func (m *Monitor) Run(ctx context.Context, days int) (*domain.Report, error) {
	sources := m.config.GetSources()
	lgr.Printf("[INFO] monitoring %d sources, last %d days", len(sources), days)

	results := make([][]domain.Entry, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.config.GetMonitorConfig().MaxWorkers)

	for i, src := range sources {
		g.Go(func() error {
			results[i] = m.collect(gctx, src)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collect entries: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	var entries []domain.Entry
	for i := range results {
		for _, e := range results[i] {
			if e.Published.Before(cutoff) {
				continue
			}
			entries = append(entries, e)
		}
	}

	suggestions := analysis.Suggest(entries, m.config.GetTopicWeights())
	if suggestions == nil {
		suggestions = []domain.Suggestion{}
	}

	lgr.Printf("[INFO] collected %d entries in window, %d suggestions", len(entries), len(suggestions))
	return &domain.Report{Generated: time.Now(), Days: days, Suggestions: suggestions}, nil
}

// collect returns entries for one source, served from cache when fresh.
// A fetch failure is cached as an empty result so a broken feed is left
// alone until the cache expires.
func (m *Monitor) collect(ctx context.Context, src config.Source) []domain.Entry {
	cached, ok, err := m.store.Load(ctx, src.Name)
	if err != nil {
		lgr.Printf("[WARN] cache load failed for %s: %v", src.Name, err)
	}
	if err == nil && ok {
		lgr.Printf("[DEBUG] cache hit for %s: %d entries", src.Name, len(cached))
		return m.tag(cached, src)
	}

	lgr.Printf("[INFO] fetching %s", src.Name)
	entries, err := m.fetcher.Fetch(ctx, src.Feed)
	if err != nil {
		lgr.Printf("[WARN] fetch failed for %s: %v", src.Name, err)
		if serr := m.store.StoreError(ctx, src.Name, err.Error()); serr != nil {
			lgr.Printf("[WARN] cache store failed for %s: %v", src.Name, serr)
		}
		return nil
	}
	lgr.Printf("[INFO] fetched %d entries from %s", len(entries), src.Name)

	if err := m.store.Store(ctx, src.Name, entries); err != nil {
		lgr.Printf("[WARN] cache store failed for %s: %v", src.Name, err)
	}
	return m.tag(entries, src)
}

// tag stamps entries with the source identity from config
func (m *Monitor) tag(entries []domain.Entry, src config.Source) []domain.Entry {
	res := make([]domain.Entry, len(entries))
	copy(res, entries)
	for i := range res {
		res[i].Source = src.Name
		res[i].SourceTopics = src.Topics
	}
	return res
}
