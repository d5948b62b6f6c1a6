// Package debounce coalesces rapid input changes into a single evaluation
// after a quiescence window, and keeps the short history of committed
// searches. Every submission gets a monotonically increasing sequence
// number; results are compared against the latest sequence at delivery time
// and discarded when superseded, so a slow evaluation can never overwrite
// the results of a newer one.
package debounce

import (
	"strings"
	"sync"
	"time"
)

// DefaultDelay is the quiescence window between the last input change and
// the evaluation it triggers.
const DefaultDelay = 300 * time.Millisecond

// Debouncer schedules one pending evaluation at a time. Submitting new text
// resets the window and supersedes whatever was pending.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	seq     uint64
	pending string
	run     func(seq uint64, text string)
}

// New returns a debouncer that calls run once the input has been quiet for
// delay. A delay of zero or less uses DefaultDelay. The run callback fires
// on a timer goroutine.
func New(delay time.Duration, run func(seq uint64, text string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay, run: run}
}

// Submit records the latest input text and (re)starts the quiescence timer.
// It returns the sequence number assigned to this submission.
func (d *Debouncer) Submit(text string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.pending = text
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(seq)
	})
	return seq
}

// Flush fires the pending evaluation immediately, bypassing the remainder
// of the quiescence window. It is a no-op when nothing is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	seq := d.seq
	d.mu.Unlock()
	d.fire(seq)
}

// Cancel drops the pending evaluation without firing it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Accept reports whether a result produced under seq is still current.
// Callers check this at delivery time and drop superseded results.
func (d *Debouncer) Accept(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return seq == d.seq
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq {
		// A newer submission restarted the window.
		d.mu.Unlock()
		return
	}
	text := d.pending
	d.timer = nil
	d.mu.Unlock()

	if d.run != nil {
		d.run(seq, text)
	}
}

// DefaultHistorySize caps how many recent searches are retained.
const DefaultHistorySize = 5

// History is the most-recent-first list of committed search terms. Terms
// are deduplicated case-insensitively; recommitting an old term moves it to
// the front.
type History struct {
	mu    sync.Mutex
	limit int
	terms []string
}

// NewHistory returns a history holding at most limit terms. A limit of zero
// or less uses DefaultHistorySize.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &History{limit: limit}
}

// Commit records a search term that produced results the user saw. Blank
// terms are ignored.
func (h *History) Commit(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	lower := strings.ToLower(term)
	for i, existing := range h.terms {
		if strings.ToLower(existing) == lower {
			h.terms = append(h.terms[:i], h.terms[i+1:]...)
			break
		}
	}
	h.terms = append([]string{term}, h.terms...)
	if len(h.terms) > h.limit {
		h.terms = h.terms[:h.limit]
	}
}

// Recent returns a copy of the history, most recent first.
func (h *History) Recent() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.terms))
	copy(out, h.terms)
	return out
}
