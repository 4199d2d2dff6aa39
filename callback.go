// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

// Callbacks split their arguments into two groups: values bound when the
// callback is made, and a value X supplied on every run. The target always
// receives the bound values first and the call-time value last.
// Several call-time values travel together as an ArgsN tuple.

// Callback is a deferred unit of work taking a call-time argument.
type Callback[X any] interface {
	Run(x X)
	IsPermanent() bool
}

// ResultCallback is a deferred unit of work taking a call-time argument
// and producing a value of type R.
type ResultCallback[X, R any] interface {
	Run(x X) R
	IsPermanent() bool
}

// CallbackBinding pairs a call-time target with its bound arguments.
type CallbackBinding[P, X any] struct {
	kind   Kind
	invoke func(*P, X)
	args   P
}

// Kind returns the kind of the bound target.
func (b CallbackBinding[P, X]) Kind() Kind { return b.kind }

// Args returns a copy of the bound arguments.
func (b CallbackBinding[P, X]) Args() P { return b.args }

// ResultCallbackBinding pairs a value-returning call-time target with its
// bound arguments.
type ResultCallbackBinding[P, X, R any] struct {
	kind   Kind
	invoke func(*P, X) R
	args   P
}

// Kind returns the kind of the bound target.
func (b ResultCallbackBinding[P, X, R]) Kind() Kind { return b.kind }

// Args returns a copy of the bound arguments.
func (b ResultCallbackBinding[P, X, R]) Args() P { return b.args }

// CallbackCall implements [Callback].
type CallbackCall[P, X any] struct {
	cell
	kind   Kind
	invoke func(*P, X)
	args   P
}

// NewCallbackX returns a one-shot callback for b.
func NewCallbackX[P, X any](b CallbackBinding[P, X]) *CallbackCall[P, X] {
	return newCallbackCall(false, b)
}

// NewPermanentCallbackX returns a permanent callback for b.
// Every run reuses the same bound arguments with a fresh call-time value.
func NewPermanentCallbackX[P, X any](b CallbackBinding[P, X]) *CallbackCall[P, X] {
	return newCallbackCall(true, b)
}

func newCallbackCall[P, X any](permanent bool, b CallbackBinding[P, X]) *CallbackCall[P, X] {
	c := &CallbackCall[P, X]{kind: b.kind, invoke: b.invoke, args: b.args}
	c.init(permanent)
	return c
}

// Run invokes the target with the bound arguments followed by x.
// Panics if a one-shot callback has already been run or discarded.
func (c *CallbackCall[P, X]) Run(x X) {
	c.acquire()
	c.run(x)
}

// TryRun is the non-panicking form of Run.
func (c *CallbackCall[P, X]) TryRun(x X) bool {
	if !c.tryAcquire() {
		return false
	}
	c.run(x)
	return true
}

func (c *CallbackCall[P, X]) run(x X) {
	if c.permanent {
		c.invoke(&c.args, x)
		return
	}
	invoke, args := c.invoke, c.args
	c.invoke = nil
	var zero P
	c.args = zero
	invoke(&args, x)
}

// Discard consumes a one-shot callback without running it and releases its
// target and arguments.
func (c *CallbackCall[P, X]) Discard() {
	if c.consume() {
		c.invoke = nil
		var zero P
		c.args = zero
	}
}

// Kind returns the kind of target the callback invokes.
func (c *CallbackCall[P, X]) Kind() Kind { return c.kind }

// ResultCallbackCall implements [ResultCallback].
type ResultCallbackCall[P, X, R any] struct {
	cell
	kind   Kind
	invoke func(*P, X) R
	args   P
}

// NewResultCallbackX returns a one-shot result callback for b.
func NewResultCallbackX[P, X, R any](b ResultCallbackBinding[P, X, R]) *ResultCallbackCall[P, X, R] {
	return newResultCallbackCall(false, b)
}

// NewPermanentResultCallbackX returns a permanent result callback for b.
func NewPermanentResultCallbackX[P, X, R any](b ResultCallbackBinding[P, X, R]) *ResultCallbackCall[P, X, R] {
	return newResultCallbackCall(true, b)
}

func newResultCallbackCall[P, X, R any](permanent bool, b ResultCallbackBinding[P, X, R]) *ResultCallbackCall[P, X, R] {
	c := &ResultCallbackCall[P, X, R]{kind: b.kind, invoke: b.invoke, args: b.args}
	c.init(permanent)
	return c
}

// Run invokes the target with the bound arguments followed by x and
// returns its result verbatim.
// Panics if a one-shot callback has already been run or discarded.
func (c *ResultCallbackCall[P, X, R]) Run(x X) R {
	c.acquire()
	return c.run(x)
}

// TryRun returns (result, true), or (zero, false) if the callback is consumed.
func (c *ResultCallbackCall[P, X, R]) TryRun(x X) (R, bool) {
	if !c.tryAcquire() {
		var zero R
		return zero, false
	}
	return c.run(x), true
}

func (c *ResultCallbackCall[P, X, R]) run(x X) R {
	if c.permanent {
		return c.invoke(&c.args, x)
	}
	invoke, args := c.invoke, c.args
	c.invoke = nil
	var zero P
	c.args = zero
	return invoke(&args, x)
}

// Discard consumes a one-shot callback without running it and releases its
// target and arguments.
func (c *ResultCallbackCall[P, X, R]) Discard() {
	if c.consume() {
		c.invoke = nil
		var zero P
		c.args = zero
	}
}

// Kind returns the kind of target the callback invokes.
func (c *ResultCallbackCall[P, X, R]) Kind() Kind { return c.kind }

// Curry fixes the call-time argument of cb, yielding a Closure.
// The closure shares permanence and consumption with cb.
func Curry[X any](cb Callback[X], x X) Closure {
	return &curried[X]{cb: cb, x: x}
}

type curried[X any] struct {
	cb Callback[X]
	x  X
}

func (c *curried[X]) Run()              { c.cb.Run(c.x) }
func (c *curried[X]) IsPermanent() bool { return c.cb.IsPermanent() }
