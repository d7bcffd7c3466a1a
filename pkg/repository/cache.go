package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/scout/pkg/domain"
)

// entrySQL represents a cached entry for SQL operations
type entrySQL struct {
	ID        int64     `db:"id"`
	Source    string    `db:"source"`
	Title     string    `db:"title"`
	Link      string    `db:"link"`
	Summary   string    `db:"summary"`
	Published time.Time `db:"published"`
}

// SourceState describes the cached fetch state of a single source
type SourceState struct {
	Name       string    `db:"name" json:"name"`
	FetchedAt  time.Time `db:"fetched_at" json:"fetched_at"`
	EntryCount int       `db:"entry_count" json:"entry_count"`
	LastError  string    `db:"last_error" json:"last_error,omitempty"`
}

// Store replaces cached entries for a source after a successful fetch
func (c *Cache) Store(ctx context.Context, source string, entries []domain.Entry) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := c.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin store tx: %w", err)}
		}
		defer func() { _ = tx.Rollback() }()

		upsert := `
			INSERT INTO sources (name, fetched_at, entry_count, last_error)
			VALUES (?, ?, ?, '')
			ON CONFLICT(name) DO UPDATE SET
				fetched_at = excluded.fetched_at,
				entry_count = excluded.entry_count,
				last_error = ''
		`
		if _, err = tx.ExecContext(ctx, upsert, source, time.Now().UTC(), len(entries)); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("upsert source %s: %w", source, err)}
		}

		if _, err = tx.ExecContext(ctx, "DELETE FROM entries WHERE source = ?", source); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("clear entries for %s: %w", source, err)}
		}

		insert := `
			INSERT INTO entries (source, title, link, summary, published)
			VALUES (:source, :title, :link, :summary, :published)
		`
		for _, e := range entries {
			rec := entrySQL{Source: source, Title: e.Title, Link: e.Link, Summary: e.Summary, Published: e.Published.UTC()}
			if _, err = tx.NamedExecContext(ctx, insert, rec); err != nil {
				if isLockError(err) {
					return err
				}
				return &criticalError{err: fmt.Errorf("insert entry %s: %w", e.Link, err)}
			}
		}

		if err = tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit store for %s: %w", source, err)}
		}
		return nil
	})
}

// StoreError records a failed fetch. The source is cached with no entries so
// it is not retried until the cache expires.
func (c *Cache) StoreError(ctx context.Context, source, errMsg string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := c.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin store error tx: %w", err)}
		}
		defer func() { _ = tx.Rollback() }()

		upsert := `
			INSERT INTO sources (name, fetched_at, entry_count, last_error)
			VALUES (?, ?, 0, ?)
			ON CONFLICT(name) DO UPDATE SET
				fetched_at = excluded.fetched_at,
				entry_count = 0,
				last_error = excluded.last_error
		`
		if _, err = tx.ExecContext(ctx, upsert, source, time.Now().UTC(), errMsg); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("upsert source error %s: %w", source, err)}
		}

		if _, err = tx.ExecContext(ctx, "DELETE FROM entries WHERE source = ?", source); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("clear entries for %s: %w", source, err)}
		}

		if err = tx.Commit(); err != nil {
			if isLockError(err) {
				return err
			}
			return &criticalError{err: fmt.Errorf("commit store error for %s: %w", source, err)}
		}
		return nil
	})
}

// Load returns cached entries for a source. The boolean reports a cache hit,
// a source fetched within the TTL window. Entries keep their feed order. A
// hit with no entries means the last fetch failed and is negatively cached.
func (c *Cache) Load(ctx context.Context, source string) ([]domain.Entry, bool, error) {
	var state SourceState
	err := c.db.GetContext(ctx, &state,
		"SELECT name, fetched_at, entry_count, last_error FROM sources WHERE name = ?", source)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get source %s: %w", source, err)
	}
	if time.Since(state.FetchedAt) > c.ttl {
		return nil, false, nil
	}

	var recs []entrySQL
	if err := c.db.SelectContext(ctx, &recs,
		"SELECT * FROM entries WHERE source = ? ORDER BY id", source); err != nil {
		return nil, false, fmt.Errorf("load entries for %s: %w", source, err)
	}

	entries := make([]domain.Entry, 0, len(recs))
	for _, r := range recs {
		entries = append(entries, domain.Entry{
			Title:     r.Title,
			Link:      r.Link,
			Summary:   r.Summary,
			Published: r.Published,
			Source:    r.Source,
		})
	}
	return entries, true, nil
}

// States returns fetch state for all known sources ordered by name
func (c *Cache) States(ctx context.Context) ([]SourceState, error) {
	var states []SourceState
	if err := c.db.SelectContext(ctx, &states,
		"SELECT name, fetched_at, entry_count, last_error FROM sources ORDER BY name"); err != nil {
		return nil, fmt.Errorf("get source states: %w", err)
	}
	return states, nil
}

// Cleanup drops entries published before the cutoff and returns the number
// of removed rows
func (c *Cache) Cleanup(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM entries WHERE published < ?", cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("cleanup entries: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup rows affected: %w", err)
	}
	return removed, nil
}
