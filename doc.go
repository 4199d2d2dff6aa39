// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package closure provides typed, bound function objects with one-shot
// and permanent invocation semantics.
//
// A closure bundles a target (a free function, or a method and the
// receiver it is called on) with arguments bound when the closure is made.
// Running the closure calls the target with those arguments, in the order
// they were bound, on the caller's goroutine.
//
// # Bindings
//
// A [Binding] pairs a [Target] with a bound-argument tuple ([Args0] to
// [Args9]). Binders exist for each arity and each [Kind] of target:
//
//   - [Func0] … [Func9]: free functions ([KindFunc])
//   - [Method0] … [Method9]: pointer-receiver method expressions such as
//     (*T).M; the method may mutate the receiver ([KindMethod])
//   - [ConstMethod0] … [ConstMethod9]: value-receiver method expressions
//     such as T.M; the method sees *recv as of each run but works on a
//     copy, so it cannot mutate the receiver ([KindConstMethod])
//   - [Apply], [ApplyMethod], [ApplyConstMethod]: bind a whole tuple of any
//     type at once
//
// Bound arguments are copied into the binding. Receivers are referenced,
// not owned: the closure calls the method on whatever *recv is at run time.
//
// # One-shot and Permanent
//
//   - [NewCallback]: one-shot closure; runs at most once
//   - [NewPermanentCallback]: permanent closure; runs any number of times
//   - [Wrap], [WrapPermanent]: adapt a plain func()
//
// [Call.Run] on a consumed one-shot closure panics. [Call.TryRun] reports
// false instead, and [Call.Discard] consumes a one-shot closure without
// running it. A one-shot closure drops its target and arguments once run,
// leaving them to the garbage collector. Running a permanent closure does
// not allocate.
//
// Lifecycle: every closure starts [Armed]; a one-shot closure moves to
// [Consumed] on its first run or discard and never leaves it.
//
// # Results and Call-time Arguments
//
// The extended families keep the same contract and add a result, a
// call-time argument, or both:
//
//   - [ResultClosure]: Run() R, built by [NewResultCallback] from
//     ResultFuncN, ResultMethodN, ResultConstMethodN
//   - [Callback]: Run(x X), built by [NewCallbackX] from CallbackFuncN,
//     CallbackMethodN, CallbackConstMethodN
//   - [ResultCallback]: Run(x X) R, built by [NewResultCallbackX] from
//     ResultCallbackFuncN, ResultCallbackMethodN, ResultCallbackConstMethodN
//
// The target receives the bound arguments first and x last. [Curry] fixes
// x to turn a Callback into a Closure; [Result] drops the result of a
// ResultClosure.
//
// # Concurrency
//
// Run does no locking. Whatever the target touches is the target's
// business. The one-shot flag alone is atomic, so racing runs of a
// one-shot closure still call the target once.
//
// # Example
//
//	type Counter struct{ n int }
//	func (c *Counter) Add(d int) { c.n += d }
//
//	var c Counter
//	add := closure.NewPermanentCallback(closure.Method1(&c, (*Counter).Add, 2))
//	add.Run()
//	add.Run()
//	// c.n == 4
//
//	var log []string
//	record := func(s string) { log = append(log, s) }
//	once := closure.NewCallback(closure.Func1(record, "done"))
//	once.Run()    // log == ["done"]
//	once.TryRun() // false
package closure
