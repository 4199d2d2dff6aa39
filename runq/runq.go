// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package runq queues closures for deferred execution on the goroutine
// that drives the queue.
//
// Producers hand work to the loop with [Queue.Put]; the loop calls
// [Queue.RunClosures] between its other duties, running a bounded batch
// each time so that a flood of closures cannot starve the rest of the loop.
// [Queue.Close] runs whatever is left on shutdown.
//
// A Queue is owned by a single goroutine and does no locking.
package runq

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/eapache/queue"

	"code.hybscloud.com/closure"
)

var (
	// ErrNilClosure is returned by Put for a nil closure.
	ErrNilClosure = errors.New("runq: nil closure")
	// ErrStopped is returned by Put once the queue has been closed.
	ErrStopped = errors.New("runq: queue closed")
)

// Queue is a FIFO of closures waiting to run.
type Queue struct {
	cfg     config
	timed   bool
	pending *queue.Queue
	closed  bool
	ran     uint64
}

// New returns an empty queue.
func New(opts ...Option) *Queue {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Queue{
		cfg:     cfg,
		timed:   cfg.slow > 0 && cfg.logger.Enabled(context.Background(), slog.LevelWarn),
		pending: queue.New(),
	}
}

// Put appends c to the queue. The queue takes ownership of c and runs it
// once from a later RunClosures or Close.
func (q *Queue) Put(c closure.Closure) error {
	if c == nil {
		return ErrNilClosure
	}
	if q.closed {
		return ErrStopped
	}
	q.pending.Add(c)
	return nil
}

// PutFunc queues fn as a one-shot closure.
func (q *Queue) PutFunc(fn func()) error {
	if fn == nil {
		return ErrNilClosure
	}
	return q.Put(closure.Wrap(fn))
}

// Len returns the number of queued closures.
func (q *Queue) Len() int { return q.pending.Length() }

// Ran returns the number of closures run so far.
func (q *Queue) Ran() uint64 { return q.ran }

// Closed reports whether Close has been called.
func (q *Queue) Closed() bool { return q.closed }

// RunClosures runs up to one batch of queued closures in FIFO order and
// returns how many ran. Closures queued while the batch runs wait for the
// next call.
//
// A closure that panics is already off the queue; the panic propagates
// and the remaining closures stay queued. A closure may itself call
// RunClosures or Close; the outer batch then stops at the empty queue.
func (q *Queue) RunClosures() int {
	limit := min(q.pending.Length(), q.cfg.batch)
	n := 0
	for i := range limit {
		// a closure may have drained the queue through RunClosures or Close
		if q.pending.Length() == 0 {
			break
		}
		c := q.pending.Remove().(closure.Closure)
		n++
		q.ran++
		if !q.timed {
			c.Run()
			continue
		}
		start := time.Now()
		c.Run()
		if elapsed := time.Since(start); elapsed > q.cfg.slow {
			q.cfg.logger.Warn("runq: slow closure",
				slog.Int("index", i),
				slog.Duration("elapsed", elapsed),
				slog.Duration("threshold", q.cfg.slow))
		}
	}
	return n
}

// Close runs every queued closure, including those queued by closures it
// runs, then refuses further work. It returns the number of closures run.
func (q *Queue) Close() int {
	total := 0
	for {
		n := q.RunClosures()
		if n == 0 {
			break
		}
		total += n
		q.cfg.logger.Debug("runq: running closures on close", slog.Int("count", total))
	}
	if total > 2*q.cfg.batch {
		q.cfg.logger.Warn("runq: many closures run on close",
			slog.Int("count", total),
			slog.Int("batch", q.cfg.batch))
	}
	q.closed = true
	return total
}
