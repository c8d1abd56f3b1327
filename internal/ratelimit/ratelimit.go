package ratelimit

import (
	"sync"
	"time"
)

// sweepThreshold is the store size above which a check also evicts
// expired windows before touching its own key.
const sweepThreshold = 1000

// Window is one fixed-window counter for a key.
type Window struct {
	Count   int
	ResetAt time.Time
}

// Store holds per-key windows. The default is an in-process map, which
// means limits are per instance and not shared across a fleet.
type Store interface {
	Get(key string) (Window, bool)
	Set(key string, w Window)
	Delete(key string)
	Len() int
}

type memStore struct {
	windows map[string]Window
}

func newMemStore() *memStore {
	return &memStore{windows: make(map[string]Window)}
}

func (s *memStore) Get(key string) (Window, bool) {
	w, ok := s.windows[key]
	return w, ok
}

func (s *memStore) Set(key string, w Window) { s.windows[key] = w }

func (s *memStore) Delete(key string) { delete(s.windows, key) }

func (s *memStore) Len() int { return len(s.windows) }

func (s *memStore) keys() []string {
	keys := make([]string, 0, len(s.windows))
	for k := range s.windows {
		keys = append(keys, k)
	}
	return keys
}

// Result describes the outcome of a single quota check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	Reset      time.Time
	RetryAfter time.Duration
}

// Limiter implements a simple in-memory fixed-window rate limiter.
// Expired windows are swept opportunistically on the request path once
// the store grows past sweepThreshold, so there is no background timer.
type Limiter struct {
	mu     sync.Mutex
	store  Store
	window time.Duration
	max    int
	now    func() time.Time
}

// NewLimiter creates a rate limiter with the specified window and max requests.
func NewLimiter(window time.Duration, max int) *Limiter {
	return &Limiter{
		store:  newMemStore(),
		window: window,
		max:    max,
		now:    time.Now,
	}
}

// WithStore swaps the backing store, for deployments that want windows
// shared outside the process.
func (l *Limiter) WithStore(s Store) *Limiter {
	l.store = s
	return l
}

// WithNow overrides the clock.
func (l *Limiter) WithNow(now func() time.Time) *Limiter {
	l.now = now
	return l
}

// Check counts a request against the key's current window and reports
// whether it fits under the limit.
func (l *Limiter) Check(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.store.Len() > sweepThreshold {
		l.sweep(now)
	}

	w, ok := l.store.Get(key)
	if !ok || !now.Before(w.ResetAt) {
		w = Window{Count: 1, ResetAt: now.Add(l.window)}
		l.store.Set(key, w)
		return Result{
			Allowed:   true,
			Limit:     l.max,
			Remaining: l.max - 1,
			Reset:     w.ResetAt,
		}
	}

	w.Count++
	l.store.Set(key, w)

	if w.Count > l.max {
		return Result{
			Limit:      l.max,
			Remaining:  0,
			Reset:      w.ResetAt,
			RetryAfter: w.ResetAt.Sub(now),
		}
	}

	return Result{
		Allowed:   true,
		Limit:     l.max,
		Remaining: l.max - w.Count,
		Reset:     w.ResetAt,
	}
}

// remaining reports how many requests the key has left without counting one.
func (l *Limiter) remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.store.Get(key)
	if !ok || !l.now().Before(w.ResetAt) {
		return l.max
	}
	if rem := l.max - w.Count; rem > 0 {
		return rem
	}
	return 0
}

func (l *Limiter) sweep(now time.Time) {
	ms, ok := l.store.(*memStore)
	if !ok {
		return
	}
	for _, key := range ms.keys() {
		if w, ok := ms.Get(key); ok && !now.Before(w.ResetAt) {
			ms.Delete(key)
		}
	}
}
