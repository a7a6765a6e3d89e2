package analysis

import (
	"complaintbox/backend/internal/models"
	"context"
	"sync"
	"time"
)

// Debouncer classifies a description only after it has stopped changing for
// the configured delay. Each Update supersedes the previous one: its pending
// timer is stopped, its in-flight request is cancelled, and a late response
// from an older generation is dropped.
type Debouncer struct {
	delay     time.Duration
	suggester *Suggester
	onResult  func(models.Category)

	mu      sync.Mutex
	gen     uint64
	timer   *time.Timer
	cancel  context.CancelFunc
	stopped bool
}

// NewDebouncer creates a Debouncer that calls onResult with each accepted
// suggestion.
func NewDebouncer(delay time.Duration, s *Suggester, onResult func(models.Category)) *Debouncer {
	return &Debouncer{delay: delay, suggester: s, onResult: onResult}
}

// Update records the latest description text.
func (d *Debouncer) Update(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.supersedeLocked()
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen, text) })
}

// Stop cancels any pending or in-flight suggestion. Updates after Stop are
// ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.supersedeLocked()
	d.gen++
}

func (d *Debouncer) supersedeLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Debouncer) fire(gen uint64, text string) {
	d.mu.Lock()
	if gen != d.gen || d.stopped {
		d.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.mu.Unlock()

	category, ok := d.suggester.Suggest(ctx, text)
	cancel()

	d.mu.Lock()
	current := gen == d.gen && !d.stopped
	d.mu.Unlock()

	if ok && current && d.onResult != nil {
		d.onResult(category)
	}
}
