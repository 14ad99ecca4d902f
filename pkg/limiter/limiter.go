package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter is an in-memory sliding-window admission limiter. It tracks a
// window-start timestamp and an admitted-request count per arbitrary key
// (e.g. a client IP) and admits at most maxRequests per window per key.
type MemoryLimiter struct {
	mu          sync.Mutex
	windows     map[string]*window
	window      time.Duration
	maxRequests int
}

type window struct {
	start time.Time
	count int
}

// NewMemoryLimiter constructs a MemoryLimiter with the specified sliding
// window duration and the maximum number of admissions within that window.
func NewMemoryLimiter(windowSize time.Duration, maxRequests int) *MemoryLimiter {
	return &MemoryLimiter{
		windows:     make(map[string]*window),
		window:      windowSize,
		maxRequests: maxRequests,
	}
}

// Admit reports whether the request identified by key may proceed at the
// given instant. A rejected request is not counted: rejections never extend
// or reset the key's window. The check-and-increment runs under the limiter
// lock so concurrent requests for the same key observe a total order.
func (l *MemoryLimiter) Admit(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.windows[key]

	if !ok || now.Sub(current.start) >= l.window {
		l.windows[key] = &window{start: now, count: 1}
		return true
	}

	if current.count < l.maxRequests {
		current.count++
		return true
	}

	return false
}

// Sweep evicts keys whose window started more than idleWindows window
// durations before now and reports how many were removed. Records are
// otherwise kept for the process lifetime, so the sweep is what bounds the
// map when many distinct clients come and go.
func (l *MemoryLimiter) Sweep(now time.Time, idleWindows int) int {
	if idleWindows < 1 {
		idleWindows = 1
	}

	cutoff := l.window * time.Duration(idleWindows)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0

	for key, current := range l.windows {
		if now.Sub(current.start) >= cutoff {
			delete(l.windows, key)
			removed++
		}
	}

	return removed
}

// Tracked reports how many keys currently hold a window record.
func (l *MemoryLimiter) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.windows)
}
