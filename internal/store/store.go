// Package store owns the current record set: one load cycle fetches CSV
// text, runs it through the parser, and replaces the set wholesale. On
// failure the last good set is kept (or the sample dataset when there is
// none yet), so consumers always see a well-formed, non-empty set and no
// load error ever escapes to them.
package store

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/luispauloloureiro/unfdashboard/internal/metrics"
	"github.com/luispauloloureiro/unfdashboard/internal/model"
	"github.com/luispauloloureiro/unfdashboard/internal/parser"
	"github.com/luispauloloureiro/unfdashboard/internal/source"
)

// Source supplies raw CSV text. Implemented by source.SheetFetcher and
// source.FileSource.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// Store holds the current record set behind a read lock. The slice is
// replaced on load, never mutated, so readers can hold onto a snapshot
// across several pipeline calls.
type Store struct {
	mu          sync.RWMutex
	src         Source
	records     []model.Record
	lastRefresh time.Time
	lastErr     string
	fallback    bool
	now         func() time.Time
}

// New creates a Store seeded with the sample dataset, so the dashboard
// has data before the first load completes.
func New(src Source) *Store {
	return &Store{
		src:      src,
		records:  source.Sample(),
		fallback: true,
		now:      time.Now,
	}
}

// Load runs one fetch-tokenize-normalize cycle and swaps in the result.
// Errors never propagate: a failed or empty load keeps the previous set
// and records the failure for the presentation layer to display.
func (s *Store) Load(ctx context.Context) model.Refresh {
	text, err := s.src.Fetch(ctx)
	if err != nil {
		return s.fail("load failed: " + err.Error())
	}

	records := parser.Normalize(parser.Tokenize(text))
	if len(records) == 0 {
		return s.fail("load produced no data rows")
	}

	s.mu.Lock()
	s.records = records
	s.lastRefresh = s.now()
	s.lastErr = ""
	s.fallback = false
	refresh := model.Refresh{At: s.lastRefresh, Total: len(records)}
	s.mu.Unlock()

	metrics.LoadsTotal.WithLabelValues("success").Inc()
	metrics.RecordsLoaded.Set(float64(len(records)))
	metrics.LastRefreshTS.Set(float64(refresh.At.Unix()))
	metrics.UsingFallback.Set(0)
	return refresh
}

// fail records a load failure, keeping the last good set. The sample
// dataset seeded at construction covers the first-failure case.
func (s *Store) fail(msg string) model.Refresh {
	log.Printf("store: %s", msg)

	s.mu.Lock()
	s.lastErr = msg
	refresh := model.Refresh{
		At:       s.now(),
		Total:    len(s.records),
		Fallback: s.fallback,
		Err:      msg,
	}
	s.mu.Unlock()

	metrics.LoadsTotal.WithLabelValues("failure").Inc()
	if refresh.Fallback {
		metrics.UsingFallback.Set(1)
	}
	return refresh
}

// Records returns the current record set. Callers must not mutate it.
func (s *Store) Records() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// LastRefresh returns the time of the last successful load, zero before
// the first one.
func (s *Store) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh
}

// LastError returns the message of the most recent failed load, empty
// after a successful one.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// UsingFallback reports whether the sample dataset is being served.
func (s *Store) UsingFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}
