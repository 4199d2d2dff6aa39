// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

// Binders for the result and call-time families, bound arity 0 to 3.
// Larger bound groups travel as one tuple value through the one-argument binders.

// ResultFunc0 binds a value-returning fn to no arguments.
func ResultFunc0[R any](fn func() R) ResultBinding[Args0, R] {
	checkFunc(fn == nil)
	return ResultBinding[Args0, R]{kind: KindFunc, invoke: func(*Args0) R { return fn() }, args: Args0{}}
}

// ResultFunc1 binds a value-returning fn to one argument.
func ResultFunc1[R, T0 any](fn func(T0) R, p0 T0) ResultBinding[Args1[T0], R] {
	checkFunc(fn == nil)
	return ResultBinding[Args1[T0], R]{kind: KindFunc, invoke: func(p *Args1[T0]) R { return fn(p.V0) }, args: Args1[T0]{p0}}
}

// ResultFunc2 binds a value-returning fn to two arguments.
func ResultFunc2[R, T0, T1 any](fn func(T0, T1) R, p0 T0, p1 T1) ResultBinding[Args2[T0, T1], R] {
	checkFunc(fn == nil)
	return ResultBinding[Args2[T0, T1], R]{kind: KindFunc, invoke: func(p *Args2[T0, T1]) R { return fn(p.V0, p.V1) }, args: Args2[T0, T1]{p0, p1}}
}

// ResultFunc3 binds a value-returning fn to three arguments.
func ResultFunc3[R, T0, T1, T2 any](fn func(T0, T1, T2) R, p0 T0, p1 T1, p2 T2) ResultBinding[Args3[T0, T1, T2], R] {
	checkFunc(fn == nil)
	return ResultBinding[Args3[T0, T1, T2], R]{kind: KindFunc, invoke: func(p *Args3[T0, T1, T2]) R { return fn(p.V0, p.V1, p.V2) }, args: Args3[T0, T1, T2]{p0, p1, p2}}
}

// ResultMethod0 binds a value-returning method on recv to no arguments.
func ResultMethod0[C, R any](recv *C, fn func(*C) R) ResultBinding[Args0, R] {
	checkMethod(recv, fn == nil)
	return ResultBinding[Args0, R]{kind: KindMethod, invoke: func(*Args0) R { return fn(recv) }, args: Args0{}}
}

// ResultMethod1 binds a value-returning method on recv to one argument.
func ResultMethod1[C, R, T0 any](recv *C, fn func(*C, T0) R, p0 T0) ResultBinding[Args1[T0], R] {
	checkMethod(recv, fn == nil)
	return ResultBinding[Args1[T0], R]{kind: KindMethod, invoke: func(p *Args1[T0]) R { return fn(recv, p.V0) }, args: Args1[T0]{p0}}
}

// ResultMethod2 binds a value-returning method on recv to two arguments.
func ResultMethod2[C, R, T0, T1 any](recv *C, fn func(*C, T0, T1) R, p0 T0, p1 T1) ResultBinding[Args2[T0, T1], R] {
	checkMethod(recv, fn == nil)
	return ResultBinding[Args2[T0, T1], R]{kind: KindMethod, invoke: func(p *Args2[T0, T1]) R { return fn(recv, p.V0, p.V1) }, args: Args2[T0, T1]{p0, p1}}
}

// ResultMethod3 binds a value-returning method on recv to three arguments.
func ResultMethod3[C, R, T0, T1, T2 any](recv *C, fn func(*C, T0, T1, T2) R, p0 T0, p1 T1, p2 T2) ResultBinding[Args3[T0, T1, T2], R] {
	checkMethod(recv, fn == nil)
	return ResultBinding[Args3[T0, T1, T2], R]{kind: KindMethod, invoke: func(p *Args3[T0, T1, T2]) R { return fn(recv, p.V0, p.V1, p.V2) }, args: Args3[T0, T1, T2]{p0, p1, p2}}
}

// ResultConstMethod0 binds a value-returning, value-receiver method on recv to no arguments.
func ResultConstMethod0[C, R any](recv *C, fn func(C) R) ResultBinding[Args0, R] {
	checkMethod(recv, fn == nil)
	return ResultBinding[Args0, R]{kind: KindConstMethod, invoke: func(*Args0) R { return fn(*recv) }, args: Args0{}}
}

// ResultConstMethod1 binds a value-returning, value-receiver method on recv to one argument.
func ResultConstMethod1[C, R, T0 any](recv *C, fn func(C, T0) R, p0 T0) ResultBinding[Args1[T0], R] {
	checkMethod(recv, fn == nil)
	return ResultBinding[Args1[T0], R]{kind: KindConstMethod, invoke: func(p *Args1[T0]) R { return fn(*recv, p.V0) }, args: Args1[T0]{p0}}
}

// ResultConstMethod2 binds a value-returning, value-receiver method on recv to two arguments.
func ResultConstMethod2[C, R, T0, T1 any](recv *C, fn func(C, T0, T1) R, p0 T0, p1 T1) ResultBinding[Args2[T0, T1], R] {
	checkMethod(recv, fn == nil)
	return ResultBinding[Args2[T0, T1], R]{kind: KindConstMethod, invoke: func(p *Args2[T0, T1]) R { return fn(*recv, p.V0, p.V1) }, args: Args2[T0, T1]{p0, p1}}
}

// ResultConstMethod3 binds a value-returning, value-receiver method on recv to three arguments.
func ResultConstMethod3[C, R, T0, T1, T2 any](recv *C, fn func(C, T0, T1, T2) R, p0 T0, p1 T1, p2 T2) ResultBinding[Args3[T0, T1, T2], R] {
	checkMethod(recv, fn == nil)
	return ResultBinding[Args3[T0, T1, T2], R]{kind: KindConstMethod, invoke: func(p *Args3[T0, T1, T2]) R { return fn(*recv, p.V0, p.V1, p.V2) }, args: Args3[T0, T1, T2]{p0, p1, p2}}
}

// CallbackFunc0 binds fn to no arguments, leaving the last parameter to each run.
func CallbackFunc0[X any](fn func(X)) CallbackBinding[Args0, X] {
	checkFunc(fn == nil)
	return CallbackBinding[Args0, X]{kind: KindFunc, invoke: func(_ *Args0, x X) { fn(x) }, args: Args0{}}
}

// CallbackFunc1 binds fn to one argument, leaving the last parameter to each run.
func CallbackFunc1[T0, X any](fn func(T0, X), p0 T0) CallbackBinding[Args1[T0], X] {
	checkFunc(fn == nil)
	return CallbackBinding[Args1[T0], X]{kind: KindFunc, invoke: func(p *Args1[T0], x X) { fn(p.V0, x) }, args: Args1[T0]{p0}}
}

// CallbackFunc2 binds fn to two arguments, leaving the last parameter to each run.
func CallbackFunc2[T0, T1, X any](fn func(T0, T1, X), p0 T0, p1 T1) CallbackBinding[Args2[T0, T1], X] {
	checkFunc(fn == nil)
	return CallbackBinding[Args2[T0, T1], X]{kind: KindFunc, invoke: func(p *Args2[T0, T1], x X) { fn(p.V0, p.V1, x) }, args: Args2[T0, T1]{p0, p1}}
}

// CallbackFunc3 binds fn to three arguments, leaving the last parameter to each run.
func CallbackFunc3[T0, T1, T2, X any](fn func(T0, T1, T2, X), p0 T0, p1 T1, p2 T2) CallbackBinding[Args3[T0, T1, T2], X] {
	checkFunc(fn == nil)
	return CallbackBinding[Args3[T0, T1, T2], X]{kind: KindFunc, invoke: func(p *Args3[T0, T1, T2], x X) { fn(p.V0, p.V1, p.V2, x) }, args: Args3[T0, T1, T2]{p0, p1, p2}}
}

// CallbackMethod0 binds a method on recv to no arguments, leaving the last parameter to each run.
func CallbackMethod0[C, X any](recv *C, fn func(*C, X)) CallbackBinding[Args0, X] {
	checkMethod(recv, fn == nil)
	return CallbackBinding[Args0, X]{kind: KindMethod, invoke: func(_ *Args0, x X) { fn(recv, x) }, args: Args0{}}
}

// CallbackMethod1 binds a method on recv to one argument, leaving the last parameter to each run.
func CallbackMethod1[C, T0, X any](recv *C, fn func(*C, T0, X), p0 T0) CallbackBinding[Args1[T0], X] {
	checkMethod(recv, fn == nil)
	return CallbackBinding[Args1[T0], X]{kind: KindMethod, invoke: func(p *Args1[T0], x X) { fn(recv, p.V0, x) }, args: Args1[T0]{p0}}
}

// CallbackMethod2 binds a method on recv to two arguments, leaving the last parameter to each run.
func CallbackMethod2[C, T0, T1, X any](recv *C, fn func(*C, T0, T1, X), p0 T0, p1 T1) CallbackBinding[Args2[T0, T1], X] {
	checkMethod(recv, fn == nil)
	return CallbackBinding[Args2[T0, T1], X]{kind: KindMethod, invoke: func(p *Args2[T0, T1], x X) { fn(recv, p.V0, p.V1, x) }, args: Args2[T0, T1]{p0, p1}}
}

// CallbackMethod3 binds a method on recv to three arguments, leaving the last parameter to each run.
func CallbackMethod3[C, T0, T1, T2, X any](recv *C, fn func(*C, T0, T1, T2, X), p0 T0, p1 T1, p2 T2) CallbackBinding[Args3[T0, T1, T2], X] {
	checkMethod(recv, fn == nil)
	return CallbackBinding[Args3[T0, T1, T2], X]{kind: KindMethod, invoke: func(p *Args3[T0, T1, T2], x X) { fn(recv, p.V0, p.V1, p.V2, x) }, args: Args3[T0, T1, T2]{p0, p1, p2}}
}

// CallbackConstMethod0 binds a value-receiver method on recv to no arguments, leaving the last parameter to each run.
func CallbackConstMethod0[C, X any](recv *C, fn func(C, X)) CallbackBinding[Args0, X] {
	checkMethod(recv, fn == nil)
	return CallbackBinding[Args0, X]{kind: KindConstMethod, invoke: func(_ *Args0, x X) { fn(*recv, x) }, args: Args0{}}
}

// CallbackConstMethod1 binds a value-receiver method on recv to one argument, leaving the last parameter to each run.
func CallbackConstMethod1[C, T0, X any](recv *C, fn func(C, T0, X), p0 T0) CallbackBinding[Args1[T0], X] {
	checkMethod(recv, fn == nil)
	return CallbackBinding[Args1[T0], X]{kind: KindConstMethod, invoke: func(p *Args1[T0], x X) { fn(*recv, p.V0, x) }, args: Args1[T0]{p0}}
}

// CallbackConstMethod2 binds a value-receiver method on recv to two arguments, leaving the last parameter to each run.
func CallbackConstMethod2[C, T0, T1, X any](recv *C, fn func(C, T0, T1, X), p0 T0, p1 T1) CallbackBinding[Args2[T0, T1], X] {
	checkMethod(recv, fn == nil)
	return CallbackBinding[Args2[T0, T1], X]{kind: KindConstMethod, invoke: func(p *Args2[T0, T1], x X) { fn(*recv, p.V0, p.V1, x) }, args: Args2[T0, T1]{p0, p1}}
}

// CallbackConstMethod3 binds a value-receiver method on recv to three arguments, leaving the last parameter to each run.
func CallbackConstMethod3[C, T0, T1, T2, X any](recv *C, fn func(C, T0, T1, T2, X), p0 T0, p1 T1, p2 T2) CallbackBinding[Args3[T0, T1, T2], X] {
	checkMethod(recv, fn == nil)
	return CallbackBinding[Args3[T0, T1, T2], X]{kind: KindConstMethod, invoke: func(p *Args3[T0, T1, T2], x X) { fn(*recv, p.V0, p.V1, p.V2, x) }, args: Args3[T0, T1, T2]{p0, p1, p2}}
}

// ResultCallbackFunc0 binds a value-returning fn to no arguments, leaving the last parameter to each run.
func ResultCallbackFunc0[R, X any](fn func(X) R) ResultCallbackBinding[Args0, X, R] {
	checkFunc(fn == nil)
	return ResultCallbackBinding[Args0, X, R]{kind: KindFunc, invoke: func(_ *Args0, x X) R { return fn(x) }, args: Args0{}}
}

// ResultCallbackFunc1 binds a value-returning fn to one argument, leaving the last parameter to each run.
func ResultCallbackFunc1[R, T0, X any](fn func(T0, X) R, p0 T0) ResultCallbackBinding[Args1[T0], X, R] {
	checkFunc(fn == nil)
	return ResultCallbackBinding[Args1[T0], X, R]{kind: KindFunc, invoke: func(p *Args1[T0], x X) R { return fn(p.V0, x) }, args: Args1[T0]{p0}}
}

// ResultCallbackFunc2 binds a value-returning fn to two arguments, leaving the last parameter to each run.
func ResultCallbackFunc2[R, T0, T1, X any](fn func(T0, T1, X) R, p0 T0, p1 T1) ResultCallbackBinding[Args2[T0, T1], X, R] {
	checkFunc(fn == nil)
	return ResultCallbackBinding[Args2[T0, T1], X, R]{kind: KindFunc, invoke: func(p *Args2[T0, T1], x X) R { return fn(p.V0, p.V1, x) }, args: Args2[T0, T1]{p0, p1}}
}

// ResultCallbackFunc3 binds a value-returning fn to three arguments, leaving the last parameter to each run.
func ResultCallbackFunc3[R, T0, T1, T2, X any](fn func(T0, T1, T2, X) R, p0 T0, p1 T1, p2 T2) ResultCallbackBinding[Args3[T0, T1, T2], X, R] {
	checkFunc(fn == nil)
	return ResultCallbackBinding[Args3[T0, T1, T2], X, R]{kind: KindFunc, invoke: func(p *Args3[T0, T1, T2], x X) R { return fn(p.V0, p.V1, p.V2, x) }, args: Args3[T0, T1, T2]{p0, p1, p2}}
}

// ResultCallbackMethod0 binds a value-returning method on recv to no arguments, leaving the last parameter to each run.
func ResultCallbackMethod0[C, R, X any](recv *C, fn func(*C, X) R) ResultCallbackBinding[Args0, X, R] {
	checkMethod(recv, fn == nil)
	return ResultCallbackBinding[Args0, X, R]{kind: KindMethod, invoke: func(_ *Args0, x X) R { return fn(recv, x) }, args: Args0{}}
}

// ResultCallbackMethod1 binds a value-returning method on recv to one argument, leaving the last parameter to each run.
func ResultCallbackMethod1[C, R, T0, X any](recv *C, fn func(*C, T0, X) R, p0 T0) ResultCallbackBinding[Args1[T0], X, R] {
	checkMethod(recv, fn == nil)
	return ResultCallbackBinding[Args1[T0], X, R]{kind: KindMethod, invoke: func(p *Args1[T0], x X) R { return fn(recv, p.V0, x) }, args: Args1[T0]{p0}}
}

// ResultCallbackMethod2 binds a value-returning method on recv to two arguments, leaving the last parameter to each run.
func ResultCallbackMethod2[C, R, T0, T1, X any](recv *C, fn func(*C, T0, T1, X) R, p0 T0, p1 T1) ResultCallbackBinding[Args2[T0, T1], X, R] {
	checkMethod(recv, fn == nil)
	return ResultCallbackBinding[Args2[T0, T1], X, R]{kind: KindMethod, invoke: func(p *Args2[T0, T1], x X) R { return fn(recv, p.V0, p.V1, x) }, args: Args2[T0, T1]{p0, p1}}
}

// ResultCallbackMethod3 binds a value-returning method on recv to three arguments, leaving the last parameter to each run.
func ResultCallbackMethod3[C, R, T0, T1, T2, X any](recv *C, fn func(*C, T0, T1, T2, X) R, p0 T0, p1 T1, p2 T2) ResultCallbackBinding[Args3[T0, T1, T2], X, R] {
	checkMethod(recv, fn == nil)
	return ResultCallbackBinding[Args3[T0, T1, T2], X, R]{kind: KindMethod, invoke: func(p *Args3[T0, T1, T2], x X) R { return fn(recv, p.V0, p.V1, p.V2, x) }, args: Args3[T0, T1, T2]{p0, p1, p2}}
}

// ResultCallbackConstMethod0 binds a value-returning, value-receiver method on recv to no arguments, leaving the last parameter to each run.
func ResultCallbackConstMethod0[C, R, X any](recv *C, fn func(C, X) R) ResultCallbackBinding[Args0, X, R] {
	checkMethod(recv, fn == nil)
	return ResultCallbackBinding[Args0, X, R]{kind: KindConstMethod, invoke: func(_ *Args0, x X) R { return fn(*recv, x) }, args: Args0{}}
}

// ResultCallbackConstMethod1 binds a value-returning, value-receiver method on recv to one argument, leaving the last parameter to each run.
func ResultCallbackConstMethod1[C, R, T0, X any](recv *C, fn func(C, T0, X) R, p0 T0) ResultCallbackBinding[Args1[T0], X, R] {
	checkMethod(recv, fn == nil)
	return ResultCallbackBinding[Args1[T0], X, R]{kind: KindConstMethod, invoke: func(p *Args1[T0], x X) R { return fn(*recv, p.V0, x) }, args: Args1[T0]{p0}}
}

// ResultCallbackConstMethod2 binds a value-returning, value-receiver method on recv to two arguments, leaving the last parameter to each run.
func ResultCallbackConstMethod2[C, R, T0, T1, X any](recv *C, fn func(C, T0, T1, X) R, p0 T0, p1 T1) ResultCallbackBinding[Args2[T0, T1], X, R] {
	checkMethod(recv, fn == nil)
	return ResultCallbackBinding[Args2[T0, T1], X, R]{kind: KindConstMethod, invoke: func(p *Args2[T0, T1], x X) R { return fn(*recv, p.V0, p.V1, x) }, args: Args2[T0, T1]{p0, p1}}
}

// ResultCallbackConstMethod3 binds a value-returning, value-receiver method on recv to three arguments, leaving the last parameter to each run.
func ResultCallbackConstMethod3[C, R, T0, T1, T2, X any](recv *C, fn func(C, T0, T1, T2, X) R, p0 T0, p1 T1, p2 T2) ResultCallbackBinding[Args3[T0, T1, T2], X, R] {
	checkMethod(recv, fn == nil)
	return ResultCallbackBinding[Args3[T0, T1, T2], X, R]{kind: KindConstMethod, invoke: func(p *Args3[T0, T1, T2], x X) R { return fn(*recv, p.V0, p.V1, p.V2, x) }, args: Args3[T0, T1, T2]{p0, p1, p2}}
}
