// Package scheduler refreshes the suggestion report on a fixed interval
// and keeps the most recent result available for readers.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/scout/pkg/domain"
)

//go:generate moq -out mocks/monitor.go -pkg mocks -skip-ensure -fmt goimports . Monitor
//go:generate moq -out mocks/cache_cleaner.go -pkg mocks -skip-ensure -fmt goimports . CacheCleaner

// Monitor produces suggestion reports on demand.
type Monitor interface {
	Run(ctx context.Context, days int) (*domain.Report, error)
}

// CacheCleaner prunes stale entries from the entry cache.
type CacheCleaner interface {
	Cleanup(ctx context.Context, cutoff time.Time) (int64, error)
}

// Scheduler periodically rebuilds the suggestion report and prunes cache
// entries that fell out of the monitoring window. The last successful
// report stays available between refreshes.
type Scheduler struct {
	monitor        Monitor
	cleaner        CacheCleaner
	updateInterval time.Duration
	days           int

	mu     sync.RWMutex
	latest *domain.Report

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	UpdateInterval time.Duration
	Days           int
}

// NewScheduler creates a scheduler, zero config values fall back to defaults
func NewScheduler(monitor Monitor, cleaner CacheCleaner, cfg Config) *Scheduler {
	if cfg.UpdateInterval == 0 {
		cfg.UpdateInterval = 30 * time.Minute
	}
	if cfg.Days == 0 {
		cfg.Days = 7
	}

	return &Scheduler{
		monitor:        monitor,
		cleaner:        cleaner,
		updateInterval: cfg.UpdateInterval,
		days:           cfg.Days,
	}
}

// Start begins periodic refreshes, the first refresh runs immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.refreshWorker(ctx)

	lgr.Printf("[INFO] scheduler started, refresh every %v covering %d days", s.updateInterval, s.days)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Latest returns the most recent report, nil before the first refresh completes
func (s *Scheduler) Latest() *domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// RefreshNow rebuilds the report outside the regular schedule and stores
// it as the latest result.
func (s *Scheduler) RefreshNow(ctx context.Context) (*domain.Report, error) {
	report, err := s.monitor.Run(ctx, s.days)
	if err != nil {
		return nil, fmt.Errorf("refresh report: %w", err)
	}

	s.mu.Lock()
	s.latest = report
	s.mu.Unlock()
	return report, nil
}

// refreshWorker runs refreshes until the context is canceled
func (s *Scheduler) refreshWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	// run immediately on start
	s.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

// refresh rebuilds the report and prunes entries older than the window.
// Failures keep the previous report in place.
func (s *Scheduler) refresh(ctx context.Context) {
	report, err := s.RefreshNow(ctx)
	if err != nil {
		lgr.Printf("[ERROR] scheduled refresh failed: %v", err)
		return
	}
	lgr.Printf("[INFO] report refreshed, %d suggestions", len(report.Suggestions))

	cutoff := time.Now().AddDate(0, 0, -s.days)
	removed, err := s.cleaner.Cleanup(ctx, cutoff)
	if err != nil {
		lgr.Printf("[WARN] cache cleanup failed: %v", err)
		return
	}
	if removed > 0 {
		lgr.Printf("[INFO] cache cleanup removed %d stale entries", removed)
	}
}
