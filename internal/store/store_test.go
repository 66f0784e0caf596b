package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/luispauloloureiro/unfdashboard/internal/model"
)

// fakeSource returns canned text or a canned error and counts calls.
type fakeSource struct {
	text  string
	err   error
	calls int64
}

func (f *fakeSource) Fetch(ctx context.Context) (string, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

const goodCSV = "SERVIDOR,USUARIO,PLAYER,EVENTO,DATA,HORA\n" +
	"EU22,romario2816,Kursliov,Stand,19/11/2025,14:08\n" +
	"EU22,romario2816,Kursliov,Wb,19/11/2025,15:07\n"

func TestStoreSeededWithSample(t *testing.T) {
	s := New(&fakeSource{})

	if len(s.Records()) != 5 {
		t.Errorf("expected 5 sample records before first load, got %d", len(s.Records()))
	}
	if !s.UsingFallback() {
		t.Error("expected fallback flag before first load")
	}
}

func TestStoreLoadReplacesSet(t *testing.T) {
	s := New(&fakeSource{text: goodCSV})

	refresh := s.Load(context.Background())

	if refresh.Err != "" {
		t.Fatalf("unexpected error: %s", refresh.Err)
	}
	if refresh.Total != 2 {
		t.Errorf("expected 2 records, got %d", refresh.Total)
	}
	if len(s.Records()) != 2 {
		t.Errorf("expected record set replaced, got %d records", len(s.Records()))
	}
	if s.UsingFallback() {
		t.Error("fallback flag must clear after a successful load")
	}
	if s.LastError() != "" {
		t.Errorf("expected empty last error, got %q", s.LastError())
	}
	if s.LastRefresh().IsZero() {
		t.Error("expected last refresh time to be set")
	}
}

func TestStoreFailureKeepsSample(t *testing.T) {
	s := New(&fakeSource{err: errors.New("boom")})

	refresh := s.Load(context.Background())

	if refresh.Err == "" {
		t.Fatal("expected a load error to be reported")
	}
	if !refresh.Fallback {
		t.Error("expected fallback flag on first failure")
	}
	if len(s.Records()) != 5 {
		t.Errorf("expected sample dataset retained, got %d records", len(s.Records()))
	}
	if s.LastError() == "" {
		t.Error("expected last error recorded")
	}
}

func TestStoreFailureKeepsLastGoodSet(t *testing.T) {
	src := &fakeSource{text: goodCSV}
	s := New(src)
	s.Load(context.Background())

	src.err = errors.New("network down")
	refresh := s.Load(context.Background())

	if len(s.Records()) != 2 {
		t.Errorf("expected last good set retained, got %d records", len(s.Records()))
	}
	if refresh.Fallback {
		t.Error("a retained real set is not the fallback dataset")
	}
	if refresh.Total != 2 {
		t.Errorf("expected refresh to report retained total 2, got %d", refresh.Total)
	}
}

func TestStoreEmptyCSVIsDegradationNotReplacement(t *testing.T) {
	src := &fakeSource{text: goodCSV}
	s := New(src)
	s.Load(context.Background())

	src.text = "SERVIDOR,PLAYER\n\n"
	refresh := s.Load(context.Background())

	if refresh.Err == "" {
		t.Error("expected zero-data-row load to be reported")
	}
	if len(s.Records()) != 2 {
		t.Errorf("expected previous set retained, got %d records", len(s.Records()))
	}
}

func TestRefresherRearmAndStop(t *testing.T) {
	src := &fakeSource{text: goodCSV}
	s := New(src)

	var notified int64
	r := NewRefresher(s, 10*time.Millisecond, func(model.Refresh) {
		atomic.AddInt64(&notified, 1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Arming twice must replace the first schedule, not stack a second.
	r.Start(ctx)
	r.Start(ctx)

	time.Sleep(60 * time.Millisecond)
	r.Stop()

	loads := atomic.LoadInt64(&src.calls)
	if loads == 0 {
		t.Fatal("expected scheduled loads to run")
	}
	if atomic.LoadInt64(&notified) == 0 {
		t.Error("expected refresh notifications")
	}

	// After Stop no schedule may remain, from either Start call.
	time.Sleep(40 * time.Millisecond)
	if atomic.LoadInt64(&src.calls) != loads {
		t.Errorf("expected no loads after Stop, got %d more", atomic.LoadInt64(&src.calls)-loads)
	}
}
