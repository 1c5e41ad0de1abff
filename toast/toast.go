// Package toast keeps an in-memory, insertion-ordered queue of transient
// notifications with timer-driven auto-removal.
package toast

import (
	"math"
	"sync"
	"time"
)

// DefaultDuration is applied when a pushed toast carries no duration.
const DefaultDuration = 3500 * time.Millisecond

// Toast is one visible notification.
type Toast struct {
	ID          int
	Title       string
	Description string
	Variant     string
	Duration    time.Duration
}

// Options describes a notification to push. Zero values fall back to
// defaults; a non-positive or non-finite DurationMS keeps the toast visible
// until it is dismissed explicitly.
type Options struct {
	Title       string
	Description string
	Variant     string
	DurationMS  float64
	HasDuration bool
}

// Queue is an ordered set of live toasts. Multiple toasts may be visible at
// once. Safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	nextID int
	items  []Toast
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a toast, assigns it the next id in sequence, and, when its
// duration is a positive finite number, schedules automatic removal after
// that duration. It returns the assigned id.
func (q *Queue) Push(opts Options) int {
	duration := DefaultDuration
	autoDismiss := true
	if opts.HasDuration {
		if opts.DurationMS > 0 && !math.IsInf(opts.DurationMS, 1) && !math.IsNaN(opts.DurationMS) {
			duration = time.Duration(opts.DurationMS * float64(time.Millisecond))
		} else {
			duration = 0
			autoDismiss = false
		}
	}

	variant := opts.Variant
	if variant == "" {
		variant = "default"
	}

	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.items = append(q.items, Toast{
		ID:          id,
		Title:       opts.Title,
		Description: opts.Description,
		Variant:     variant,
		Duration:    duration,
	})
	q.mu.Unlock()

	if autoDismiss {
		time.AfterFunc(duration, func() { q.Dismiss(id) })
	}

	return id
}

// Dismiss removes the toast with the given id. Dismissing an id that is
// already gone is a no-op, which also covers an auto-removal timer firing
// after an explicit dismissal.
func (q *Queue) Dismiss(id int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, item := range q.items {
		if item.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// List returns the visible toasts in insertion order.
func (q *Queue) List() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, len(q.items))
	copy(out, q.items)
	return out
}
