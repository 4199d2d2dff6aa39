// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

// ResultClosure is a deferred unit of work producing a value of type R.
type ResultClosure[R any] interface {
	Run() R
	IsPermanent() bool
}

// ResultBinding pairs a value-returning target with its bound arguments.
type ResultBinding[P, R any] struct {
	kind   Kind
	invoke func(*P) R
	args   P
}

// Kind returns the kind of the bound target.
func (b ResultBinding[P, R]) Kind() Kind { return b.kind }

// Args returns a copy of the bound arguments.
func (b ResultBinding[P, R]) Args() P { return b.args }

// ResultCall is a closure returning the target's result.
// Construct it with [NewResultCallback] or [NewPermanentResultCallback].
type ResultCall[P, R any] struct {
	cell
	kind   Kind
	invoke func(*P) R
	args   P
}

// NewResultCallback returns a one-shot closure for b.
func NewResultCallback[P, R any](b ResultBinding[P, R]) *ResultCall[P, R] {
	return newResultCall(false, b)
}

// NewPermanentResultCallback returns a permanent closure for b.
func NewPermanentResultCallback[P, R any](b ResultBinding[P, R]) *ResultCall[P, R] {
	return newResultCall(true, b)
}

func newResultCall[P, R any](permanent bool, b ResultBinding[P, R]) *ResultCall[P, R] {
	c := &ResultCall[P, R]{kind: b.kind, invoke: b.invoke, args: b.args}
	c.init(permanent)
	return c
}

// Run invokes the target and returns its result verbatim.
// Panics if a one-shot closure has already been run or discarded.
func (c *ResultCall[P, R]) Run() R {
	c.acquire()
	return c.run()
}

// TryRun returns (result, true), or (zero, false) if the closure is consumed.
func (c *ResultCall[P, R]) TryRun() (R, bool) {
	if !c.tryAcquire() {
		var zero R
		return zero, false
	}
	return c.run(), true
}

func (c *ResultCall[P, R]) run() R {
	if c.permanent {
		return c.invoke(&c.args)
	}
	invoke, args := c.invoke, c.args
	c.invoke = nil
	var zero P
	c.args = zero
	return invoke(&args)
}

// Discard consumes a one-shot closure without running it and releases its
// target and arguments.
func (c *ResultCall[P, R]) Discard() {
	if c.consume() {
		c.invoke = nil
		var zero P
		c.args = zero
	}
}

// Kind returns the kind of target the closure invokes.
func (c *ResultCall[P, R]) Kind() Kind { return c.kind }

// Result adapts a ResultClosure to a Closure that discards the result.
// The adapter shares permanence and consumption with rc.
func Result[R any](rc ResultClosure[R]) Closure {
	return &resultClosure[R]{rc}
}

type resultClosure[R any] struct {
	rc ResultClosure[R]
}

func (r *resultClosure[R]) Run()              { _ = r.rc.Run() }
func (r *resultClosure[R]) IsPermanent() bool { return r.rc.IsPermanent() }
