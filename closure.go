// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import "go.uber.org/atomic"

const (
	errRunTwice    = "closure: one-shot closure run twice"
	errNilFunction = "closure: nil function"
	errNilReceiver = "closure: nil receiver"
)

// Closure is a deferred, parameter-free unit of work.
//
// A one-shot closure runs at most once; a permanent closure runs any number
// of times and is never consumed by running it.
type Closure interface {
	Run()
	IsPermanent() bool
}

// Kind tags the target a closure invokes.
type Kind uint8

const (
	// KindFunc targets a free function.
	KindFunc Kind = iota
	// KindMethod targets a method on a mutable receiver.
	KindMethod
	// KindConstMethod targets a method on a receiver it cannot mutate.
	KindConstMethod
)

func (k Kind) String() string {
	switch k {
	case KindFunc:
		return "func"
	case KindMethod:
		return "method"
	case KindConstMethod:
		return "const-method"
	default:
		return "unknown"
	}
}

// State is the lifecycle state of a closure.
type State uint8

const (
	// Armed closures can be run.
	Armed State = iota
	// Consumed is terminal and only reachable by one-shot closures.
	Consumed
)

func (s State) String() string {
	if s == Consumed {
		return "consumed"
	}
	return "armed"
}

// cell carries the permanence contract shared by every closure shape.
type cell struct {
	id        uint64
	permanent bool
	used      atomic.Bool
}

func (c *cell) init(permanent bool) {
	c.id = nextID()
	c.permanent = permanent
}

// acquire admits one run, panicking on a consumed one-shot closure.
func (c *cell) acquire() {
	if !c.tryAcquire() {
		panic(errRunTwice)
	}
}

func (c *cell) tryAcquire() bool {
	return c.permanent || !c.used.Swap(true)
}

// IsPermanent reports whether the closure survives being run.
func (c *cell) IsPermanent() bool { return c.permanent }

// ID returns the process-unique identifier assigned at construction.
func (c *cell) ID() uint64 { return c.id }

// State reports whether the closure can still be run.
func (c *cell) State() State {
	if !c.permanent && c.used.Load() {
		return Consumed
	}
	return Armed
}

// consume marks an armed one-shot closure used without running it and
// reports whether this call did so.
func (c *cell) consume() bool {
	return !c.permanent && !c.used.Swap(true)
}

// Call is a closure over a bound argument tuple P.
// Construct it with [NewCallback] or [NewPermanentCallback].
type Call[P any] struct {
	cell
	kind   Kind
	invoke func(*P)
	args   P
}

// NewCallback returns a one-shot closure for b.
// The closure runs at most once; running it again panics.
func NewCallback[P any](b Binding[P]) *Call[P] {
	return newCall(false, b)
}

// NewPermanentCallback returns a permanent closure for b.
func NewPermanentCallback[P any](b Binding[P]) *Call[P] {
	return newCall(true, b)
}

func newCall[P any](permanent bool, b Binding[P]) *Call[P] {
	c := &Call[P]{kind: b.target.kind, invoke: b.target.invoke, args: b.args}
	c.init(permanent)
	return c
}

// Wrap returns a one-shot closure running fn.
func Wrap(fn func()) *Call[Args0] {
	return NewCallback(Func0(fn))
}

// WrapPermanent returns a permanent closure running fn.
func WrapPermanent(fn func()) *Call[Args0] {
	return NewPermanentCallback(Func0(fn))
}

// Run invokes the target with the bound arguments in the order they were bound.
// A one-shot closure releases its target and arguments afterwards.
// Panics if a one-shot closure has already been run or discarded.
func (c *Call[P]) Run() {
	c.acquire()
	c.run()
}

// TryRun is the non-panicking form of Run.
// Returns false, without invoking anything, if the closure is consumed.
func (c *Call[P]) TryRun() bool {
	if !c.tryAcquire() {
		return false
	}
	c.run()
	return true
}

func (c *Call[P]) run() {
	if c.permanent {
		c.invoke(&c.args)
		return
	}
	invoke, args := c.invoke, c.args
	c.invoke = nil
	var zero P
	c.args = zero
	invoke(&args)
}

// Discard consumes a one-shot closure without running it and releases its
// target and arguments. It has no effect on permanent closures, whose owner
// simply drops them.
func (c *Call[P]) Discard() {
	if c.consume() {
		c.invoke = nil
		var zero P
		c.args = zero
	}
}

// Kind returns the kind of target the closure invokes.
func (c *Call[P]) Kind() Kind { return c.kind }
