package progress

import (
	"context"
	"sync"
	"sync/atomic"
)

// Progress is the observable, cancellable handle for one in-flight load.
// Workers update the counters; the UI loop reads them while rendering.
type Progress struct {
	total     atomic.Int64
	completed atomic.Int64
	cancelled atomic.Bool

	cancel   context.CancelFunc
	done     chan struct{}
	doneOnce sync.Once
}

// New returns a handle whose Cancel calls cancel. cancel may be nil.
func New(cancel context.CancelFunc) *Progress {
	p := &Progress{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	p.total.Store(-1)
	return p
}

// SetTotal records the expected byte count. Negative means unknown.
func (p *Progress) SetTotal(n int64) {
	p.total.Store(n)
}

// Add advances the completed byte count.
func (p *Progress) Add(n int64) {
	p.completed.Add(n)
}

// Total returns the expected byte count, or -1 if unknown.
func (p *Progress) Total() int64 {
	return p.total.Load()
}

// Completed returns the bytes read so far.
func (p *Progress) Completed() int64 {
	return p.completed.Load()
}

// Fraction returns completed/total clamped to [0,1], or -1 when the total is unknown.
func (p *Progress) Fraction() float64 {
	total := p.total.Load()
	if total < 0 {
		return -1
	}
	if total == 0 {
		return 1
	}
	f := float64(p.completed.Load()) / float64(total)
	if f > 1 {
		f = 1
	}
	return f
}

// Cancel requests cancellation of the underlying load. Safe to call repeatedly.
func (p *Progress) Cancel() {
	if p.cancelled.Swap(true) {
		return
	}
	if p.cancel != nil {
		p.cancel()
	}
}

// Cancelled reports whether Cancel was called.
func (p *Progress) Cancelled() bool {
	return p.cancelled.Load()
}

// Finish marks the load as finished. Safe to call repeatedly.
func (p *Progress) Finish() {
	p.doneOnce.Do(func() { close(p.done) })
}

// Done returns a channel that is closed once the load has finished.
func (p *Progress) Done() <-chan struct{} {
	return p.done
}

// Finished reports whether Finish was called.
func (p *Progress) Finished() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}
