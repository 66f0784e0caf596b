package store

import (
	"context"
	"sync"
	"time"

	"github.com/luispauloloureiro/unfdashboard/internal/model"
)

// DefaultRefreshInterval matches the dashboard's 30-minute reload cadence.
const DefaultRefreshInterval = 30 * time.Minute

// Refresher reloads the store on a fixed interval. Starting a schedule
// cancels any previously started one, so repeated setup calls never
// accumulate duplicate timers.
type Refresher struct {
	mu       sync.Mutex
	cancel   context.CancelFunc
	store    *Store
	interval time.Duration
	notify   func(model.Refresh)
}

// NewRefresher creates a Refresher. notify, if non-nil, is called with
// the outcome of every scheduled load (manual loads go through the store
// directly and are not reported here).
func NewRefresher(st *Store, interval time.Duration, notify func(model.Refresh)) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		store:    st,
		interval: interval,
		notify:   notify,
	}
}

// Start arms the refresh schedule, replacing any schedule armed earlier.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	go r.run(ctx)
}

// Stop cancels the current schedule, if any.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Refresher) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh := r.store.Load(ctx)
			if r.notify != nil {
				r.notify(refresh)
			}
		}
	}
}
