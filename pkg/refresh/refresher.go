// Package refresh periodically reloads a snapshot and recomputes the
// wellness views from it. The engine stays pure; all timing lives here.
package refresh

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/unowned-ai/moodlog/pkg/logger"
	"github.com/unowned-ai/moodlog/pkg/wellness"
)

// Result is one published computation.
type Result struct {
	Views      wellness.Views `json:"views"`
	Window     string         `json:"window"`
	TakenAt    time.Time      `json:"taken_at"`
	ComputedAt time.Time      `json:"computed_at"`
}

// Loader fetches a fresh immutable snapshot.
type Loader func(ctx context.Context) (wellness.Snapshot, error)

// Refresher recomputes views on a fixed interval. Results are published
// last-write-wins: a computation that started earlier never replaces one
// that started later.
type Refresher struct {
	Interval time.Duration
	Clock    Clock
	Load     Loader
	// Publish, when set, receives every result that becomes the latest, in
	// sequence order. Calls never overlap; Publish must not call Refresh.
	Publish func(Result)
	Log     *logger.Logger

	// pubMu serializes the ordering check with Publish.
	pubMu sync.Mutex

	mu      sync.RWMutex
	query   wellness.Query
	latest  Result
	hasLast bool
	lastSeq uint64

	seq atomic.Uint64
}

// SetQuery changes the window and location used by subsequent refreshes.
func (r *Refresher) SetQuery(q wellness.Query) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.query = q
}

func (r *Refresher) currentQuery() wellness.Query {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.query
}

// Latest returns the most recently published result.
func (r *Refresher) Latest() (Result, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest, r.hasLast
}

// Refresh loads one snapshot and publishes its views. When loading fails the
// previous result stays published and the error is returned.
func (r *Refresher) Refresh(ctx context.Context) (Result, error) {
	if r.Load == nil {
		return Result{}, errors.New("refresh: no loader configured")
	}
	seq := r.seq.Add(1)
	q := r.currentQuery()

	snap, err := r.Load(ctx)
	if err != nil {
		r.log().Warn("Snapshot load failed, keeping previous views", "error", err)
		return Result{}, err
	}

	res := Result{
		Views:      snap.Views(q),
		Window:     q.Window.String(),
		TakenAt:    snap.TakenAt,
		ComputedAt: r.clock().Now(),
	}

	r.pubMu.Lock()
	defer r.pubMu.Unlock()

	r.mu.Lock()
	stale := seq < r.lastSeq
	if !stale {
		r.latest, r.hasLast, r.lastSeq = res, true, seq
	}
	r.mu.Unlock()

	if stale {
		r.log().Debug("Dropping superseded computation", "seq", seq)
		return res, nil
	}
	if r.Publish != nil {
		r.Publish(res)
	}
	return res, nil
}

// Run computes once immediately and then on every tick until ctx is done.
// Load errors are logged and do not stop the loop.
func (r *Refresher) Run(ctx context.Context) error {
	if r.Interval <= 0 {
		return errors.New("refresh: interval must be positive")
	}

	ticker := r.clock().NewTicker(r.Interval)
	defer ticker.Stop()

	r.log().Info("Refresher started", "interval", r.Interval.String())
	_, _ = r.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			r.log().Info("Refresher stopped")
			return nil
		case <-ticker.C:
			_, _ = r.Refresh(ctx)
		}
	}
}

func (r *Refresher) clock() Clock {
	if r.Clock == nil {
		return RealClock()
	}
	return r.Clock
}

func (r *Refresher) log() *logger.Logger {
	if r.Log == nil {
		return logger.Nop()
	}
	return r.Log
}
