// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alarm

import (
	"container/heap"
	"errors"
	"log/slog"
	"reflect"
	"time"

	"code.hybscloud.com/closure"
)

var (
	// ErrNilClosure is returned when registering a nil closure.
	ErrNilClosure = errors.New("alarm: nil closure")
	// ErrNotPermanent is returned by Alarm.Setup for a one-shot closure.
	ErrNotPermanent = errors.New("alarm: closure is not permanent")
	// ErrNotComparable is returned when registering a closure that cannot
	// serve as its own handle, such as a func type with a Run method.
	ErrNotComparable = errors.New("alarm: closure is not comparable")
	// ErrNotSet is returned when starting an Alarm with no closure.
	ErrNotSet = errors.New("alarm: no closure set")
)

// Option customizes a Set.
type Option func(*Set)

// WithLogger sets the logger used for debug traces. Logging is disabled by default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Set) {
		if l != nil {
			s.logger = l
		}
	}
}

// Set holds closures waiting for a deadline.
//
// Closures are identified by their handle: registering a closure that is
// already waiting moves its deadline. Handles must be comparable, which
// every closure built by package closure is; Register rejects others.
//
// A Set is driven by a single goroutine calling RunDue and does no locking.
type Set struct {
	pending entries
	byRef   map[closure.Closure]*entry
	seq     uint64
	logger  *slog.Logger
}

type entry struct {
	c     closure.Closure
	at    time.Time
	seq   uint64
	index int
}

// NewSet returns an empty Set.
func NewSet(opts ...Option) *Set {
	s := &Set{
		byRef:  make(map[closure.Closure]*entry),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register arranges for c to run from the first RunDue whose time is not
// before at. If c is already registered its deadline is replaced.
func (s *Set) Register(c closure.Closure, at time.Time) error {
	if c == nil {
		return ErrNilClosure
	}
	if !isComparable(c) {
		return ErrNotComparable
	}
	s.seq++
	if e, ok := s.byRef[c]; ok && e.index >= 0 {
		e.at, e.seq = at, s.seq
		heap.Fix(&s.pending, e.index)
		return nil
	}
	e := &entry{c: c, at: at, seq: s.seq}
	s.byRef[c] = e
	heap.Push(&s.pending, e)
	return nil
}

// Unregister removes c. It reports whether c was registered.
func (s *Set) Unregister(c closure.Closure) bool {
	if !isComparable(c) {
		return false
	}
	e, ok := s.byRef[c]
	if !ok {
		return false
	}
	delete(s.byRef, c)
	if e.index >= 0 {
		heap.Remove(&s.pending, e.index)
	}
	return true
}

// Deadline returns the deadline c is registered for.
func (s *Set) Deadline(c closure.Closure) (time.Time, bool) {
	if !isComparable(c) {
		return time.Time{}, false
	}
	e, ok := s.byRef[c]
	if !ok {
		return time.Time{}, false
	}
	return e.at, true
}

// Len returns the number of registered closures.
func (s *Set) Len() int { return len(s.byRef) }

// Next returns the earliest deadline.
func (s *Set) Next() (time.Time, bool) {
	if len(s.pending) == 0 {
		return time.Time{}, false
	}
	return s.pending[0].at, true
}

// RunDue runs, in deadline order, every closure due at now and returns
// how many ran. Each closure is unregistered before it runs.
//
// Closures registered while RunDue is running wait for the next call, even
// when already due. A due closure unregistered by an earlier one is skipped.
// If a closure panics, the due closures after it stay registered.
func (s *Set) RunDue(now time.Time) int {
	var due []*entry
	for len(s.pending) > 0 && !s.pending[0].at.After(now) {
		due = append(due, heap.Pop(&s.pending).(*entry))
	}
	n, i := 0, 0
	defer func() {
		// A panicking closure leaves the rest of the due entries registered.
		for _, e := range due[i:] {
			if s.byRef[e.c] == e {
				heap.Push(&s.pending, e)
			}
		}
	}()
	for i < len(due) {
		e := due[i]
		i++
		if s.byRef[e.c] != e {
			continue
		}
		delete(s.byRef, e.c)
		n++
		e.c.Run()
	}
	if n > 0 {
		s.logger.Debug("alarm: ran due closures", slog.Int("count", n), slog.Time("now", now))
	}
	return n
}

// isComparable reports whether c can be used as a map key without panicking.
func isComparable(c closure.Closure) bool {
	return c == nil || reflect.ValueOf(c).Comparable()
}

// entries is a min-heap ordered by deadline, then registration order.
type entries []*entry

func (h entries) Len() int { return len(h) }

func (h entries) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h entries) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entries) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entries) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}
