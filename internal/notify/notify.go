// Package notify maintains the process-wide queue of timed, auto-dismissing
// user messages.
//
// Each enqueued notification owns an independent expiry timer; timers are
// never coalesced, and two notifications with identical text remain distinct
// entries. The clock is injectable so tests advance virtual time instead of
// sleeping.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification for display.
type Kind int

const (
	Info Kind = iota
	Success
	Warning
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// DefaultDuration is how long a notification stays visible when the caller
// does not pick a duration.
const DefaultDuration = 5 * time.Second

// fadeAllowance extends every expiry so the UI can fade the entry out before
// it is removed.
const fadeAllowance = 300 * time.Millisecond

// Notification is one visible entry in the queue.
type Notification struct {
	ID        int64
	Message   string
	Kind      Kind
	CreatedAt time.Time
	Duration  time.Duration
}

// Queue is an ordered set of notifications with per-entry expiry. All methods
// are safe to call concurrently; expiry callbacks fire off the caller's
// goroutine.
type Queue struct {
	mu      sync.Mutex
	entries []Notification
	lastID  int64

	now   func() time.Time
	after func(time.Duration, func())
}

// NewQueue creates a queue driven by the real clock.
func NewQueue() *Queue {
	return &Queue{
		now: time.Now,
		after: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// NewQueueWithClock creates a queue with an injected clock and scheduler,
// used by tests to advance virtual time deterministically.
func NewQueueWithClock(now func() time.Time, after func(time.Duration, func())) *Queue {
	return &Queue{now: now, after: after}
}

// Enqueue appends a notification and schedules its autonomous expiry after
// duration plus the fade allowance. A zero duration skips the expiry timer,
// keeping the entry until it is dismissed. A negative duration falls back to
// [DefaultDuration]. Returns the entry's unique, strictly increasing id.
func (q *Queue) Enqueue(message string, kind Kind, duration time.Duration) int64 {
	if duration < 0 {
		duration = DefaultDuration
	}

	q.mu.Lock()
	created := q.now()

	// Time-seeded but strictly increasing even when two entries land on the
	// same millisecond.
	id := created.UnixMilli()
	if id <= q.lastID {
		id = q.lastID + 1
	}
	q.lastID = id

	q.entries = append(q.entries, Notification{
		ID:        id,
		Message:   message,
		Kind:      kind,
		CreatedAt: created,
		Duration:  duration,
	})
	q.mu.Unlock()

	if duration > 0 {
		q.after(duration+fadeAllowance, func() {
			q.Dismiss(id)
		})
	}

	return id
}

// Info enqueues an informational message with the default duration.
func (q *Queue) Info(message string) int64 {
	return q.Enqueue(message, Info, DefaultDuration)
}

// Success enqueues a success message with the default duration.
func (q *Queue) Success(message string) int64 {
	return q.Enqueue(message, Success, DefaultDuration)
}

// Warning enqueues a warning message with the default duration.
func (q *Queue) Warning(message string) int64 {
	return q.Enqueue(message, Warning, DefaultDuration)
}

// Error enqueues an error message with the default duration.
func (q *Queue) Error(message string) int64 {
	return q.Enqueue(message, Error, DefaultDuration)
}

// Dismiss removes the entry immediately regardless of its scheduled expiry.
// Dismissing an id that is absent is a no-op.
func (q *Queue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, n := range q.entries {
		if n.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return
		}
	}
}

// Current returns a snapshot of the visible notifications in insertion order.
func (q *Queue) Current() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	snapshot := make([]Notification, len(q.entries))
	copy(snapshot, q.entries)
	return snapshot
}

// Len returns the number of visible notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}
