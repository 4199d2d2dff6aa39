// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

// Bound-argument tuples. Field Vi holds the i-th bound argument.
//
// The FuncN, MethodN and ConstMethodN binders below pair a target with N
// bound arguments. Method binders take a method expression:
// (*T).M for a pointer-receiver method, T.M for a value-receiver method.
// Pass any closure built from them to NewCallback or NewPermanentCallback.

// Args0 is the empty tuple.
type Args0 struct{}

// Args1 holds one bound argument.
type Args1[T0 any] struct {
	V0 T0
}

// Args2 holds two bound arguments.
type Args2[T0, T1 any] struct {
	V0 T0
	V1 T1
}

// Args3 holds three bound arguments.
type Args3[T0, T1, T2 any] struct {
	V0 T0
	V1 T1
	V2 T2
}

// Args4 holds four bound arguments.
type Args4[T0, T1, T2, T3 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
}

// Args5 holds five bound arguments.
type Args5[T0, T1, T2, T3, T4 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Args6 holds six bound arguments.
type Args6[T0, T1, T2, T3, T4, T5 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// Args7 holds seven bound arguments.
type Args7[T0, T1, T2, T3, T4, T5, T6 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

// Args8 holds eight bound arguments.
type Args8[T0, T1, T2, T3, T4, T5, T6, T7 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

// Args9 holds nine bound arguments.
type Args9[T0, T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

// Func0 binds a function taking no arguments.
func Func0(fn func()) Binding[Args0] {
	checkFunc(fn == nil)
	return bind(KindFunc, func(*Args0) { fn() }, Args0{})
}

// Method0 binds a method on recv to no arguments.
func Method0[C any](recv *C, fn func(*C)) Binding[Args0] {
	checkMethod(recv, fn == nil)
	return bind(KindMethod, func(*Args0) { fn(recv) }, Args0{})
}

// ConstMethod0 binds a value-receiver method on recv to no arguments.
func ConstMethod0[C any](recv *C, fn func(C)) Binding[Args0] {
	checkMethod(recv, fn == nil)
	return bind(KindConstMethod, func(*Args0) { fn(*recv) }, Args0{})
}

// Func1 binds fn to one argument.
func Func1[T0 any](fn func(T0), p0 T0) Binding[Args1[T0]] {
	checkFunc(fn == nil)
	return bind(KindFunc, func(p *Args1[T0]) { fn(p.V0) }, Args1[T0]{p0})
}

// Method1 binds a method on recv to one argument.
func Method1[C, T0 any](recv *C, fn func(*C, T0), p0 T0) Binding[Args1[T0]] {
	checkMethod(recv, fn == nil)
	return bind(KindMethod, func(p *Args1[T0]) { fn(recv, p.V0) }, Args1[T0]{p0})
}

// ConstMethod1 binds a value-receiver method on recv to one argument.
func ConstMethod1[C, T0 any](recv *C, fn func(C, T0), p0 T0) Binding[Args1[T0]] {
	checkMethod(recv, fn == nil)
	return bind(KindConstMethod, func(p *Args1[T0]) { fn(*recv, p.V0) }, Args1[T0]{p0})
}

// Func2 binds fn to two arguments.
func Func2[T0, T1 any](fn func(T0, T1), p0 T0, p1 T1) Binding[Args2[T0, T1]] {
	checkFunc(fn == nil)
	return bind(KindFunc, func(p *Args2[T0, T1]) { fn(p.V0, p.V1) }, Args2[T0, T1]{p0, p1})
}

// Method2 binds a method on recv to two arguments.
func Method2[C, T0, T1 any](recv *C, fn func(*C, T0, T1), p0 T0, p1 T1) Binding[Args2[T0, T1]] {
	checkMethod(recv, fn == nil)
	return bind(KindMethod, func(p *Args2[T0, T1]) { fn(recv, p.V0, p.V1) }, Args2[T0, T1]{p0, p1})
}

// ConstMethod2 binds a value-receiver method on recv to two arguments.
func ConstMethod2[C, T0, T1 any](recv *C, fn func(C, T0, T1), p0 T0, p1 T1) Binding[Args2[T0, T1]] {
	checkMethod(recv, fn == nil)
	return bind(KindConstMethod, func(p *Args2[T0, T1]) { fn(*recv, p.V0, p.V1) }, Args2[T0, T1]{p0, p1})
}

// Func3 binds fn to three arguments.
func Func3[T0, T1, T2 any](fn func(T0, T1, T2), p0 T0, p1 T1, p2 T2) Binding[Args3[T0, T1, T2]] {
	checkFunc(fn == nil)
	return bind(KindFunc, func(p *Args3[T0, T1, T2]) { fn(p.V0, p.V1, p.V2) }, Args3[T0, T1, T2]{p0, p1, p2})
}

// Method3 binds a method on recv to three arguments.
func Method3[C, T0, T1, T2 any](recv *C, fn func(*C, T0, T1, T2), p0 T0, p1 T1, p2 T2) Binding[Args3[T0, T1, T2]] {
	checkMethod(recv, fn == nil)
	return bind(KindMethod, func(p *Args3[T0, T1, T2]) { fn(recv, p.V0, p.V1, p.V2) }, Args3[T0, T1, T2]{p0, p1, p2})
}

// ConstMethod3 binds a value-receiver method on recv to three arguments.
func ConstMethod3[C, T0, T1, T2 any](recv *C, fn func(C, T0, T1, T2), p0 T0, p1 T1, p2 T2) Binding[Args3[T0, T1, T2]] {
	checkMethod(recv, fn == nil)
	return bind(KindConstMethod, func(p *Args3[T0, T1, T2]) { fn(*recv, p.V0, p.V1, p.V2) }, Args3[T0, T1, T2]{p0, p1, p2})
}

// Func4 binds fn to four arguments.
func Func4[T0, T1, T2, T3 any](fn func(T0, T1, T2, T3), p0 T0, p1 T1, p2 T2, p3 T3) Binding[Args4[T0, T1, T2, T3]] {
	checkFunc(fn == nil)
	return bind(KindFunc, func(p *Args4[T0, T1, T2, T3]) { fn(p.V0, p.V1, p.V2, p.V3) }, Args4[T0, T1, T2, T3]{p0, p1, p2, p3})
}

// Method4 binds a method on recv to four arguments.
func Method4[C, T0, T1, T2, T3 any](recv *C, fn func(*C, T0, T1, T2, T3), p0 T0, p1 T1, p2 T2, p3 T3) Binding[Args4[T0, T1, T2, T3]] {
	checkMethod(recv, fn == nil)
	return bind(KindMethod, func(p *Args4[T0, T1, T2, T3]) { fn(recv, p.V0, p.V1, p.V2, p.V3) }, Args4[T0, T1, T2, T3]{p0, p1, p2, p3})
}

// ConstMethod4 binds a value-receiver method on recv to four arguments.
func ConstMethod4[C, T0, T1, T2, T3 any](recv *C, fn func(C, T0, T1, T2, T3), p0 T0, p1 T1, p2 T2, p3 T3) Binding[Args4[T0, T1, T2, T3]] {
	checkMethod(recv, fn == nil)
	return bind(KindConstMethod, func(p *Args4[T0, T1, T2, T3]) { fn(*recv, p.V0, p.V1, p.V2, p.V3) }, Args4[T0, T1, T2, T3]{p0, p1, p2, p3})
}

// Func5 binds fn to five arguments.
func Func5[T0, T1, T2, T3, T4 any](fn func(T0, T1, T2, T3, T4), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4) Binding[Args5[T0, T1, T2, T3, T4]] {
	checkFunc(fn == nil)
	return bind(KindFunc, func(p *Args5[T0, T1, T2, T3, T4]) { fn(p.V0, p.V1, p.V2, p.V3, p.V4) }, Args5[T0, T1, T2, T3, T4]{p0, p1, p2, p3, p4})
}

// Method5 binds a method on recv to five arguments.
func Method5[C, T0, T1, T2, T3, T4 any](recv *C, fn func(*C, T0, T1, T2, T3, T4), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4) Binding[Args5[T0, T1, T2, T3, T4]] {
	checkMethod(recv, fn == nil)
	return bind(KindMethod, func(p *Args5[T0, T1, T2, T3, T4]) { fn(recv, p.V0, p.V1, p.V2, p.V3, p.V4) }, Args5[T0, T1, T2, T3, T4]{p0, p1, p2, p3, p4})
}

// ConstMethod5 binds a value-receiver method on recv to five arguments.
func ConstMethod5[C, T0, T1, T2, T3, T4 any](recv *C, fn func(C, T0, T1, T2, T3, T4), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4) Binding[Args5[T0, T1, T2, T3, T4]] {
	checkMethod(recv, fn == nil)
	return bind(KindConstMethod, func(p *Args5[T0, T1, T2, T3, T4]) { fn(*recv, p.V0, p.V1, p.V2, p.V3, p.V4) }, Args5[T0, T1, T2, T3, T4]{p0, p1, p2, p3, p4})
}

// Func6 binds fn to six arguments.
func Func6[T0, T1, T2, T3, T4, T5 any](fn func(T0, T1, T2, T3, T4, T5), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5) Binding[Args6[T0, T1, T2, T3, T4, T5]] {
	checkFunc(fn == nil)
	return bind(KindFunc, func(p *Args6[T0, T1, T2, T3, T4, T5]) { fn(p.V0, p.V1, p.V2, p.V3, p.V4, p.V5) }, Args6[T0, T1, T2, T3, T4, T5]{p0, p1, p2, p3, p4, p5})
}

// Method6 binds a method on recv to six arguments.
func Method6[C, T0, T1, T2, T3, T4, T5 any](recv *C, fn func(*C, T0, T1, T2, T3, T4, T5), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5) Binding[Args6[T0, T1, T2, T3, T4, T5]] {
	checkMethod(recv, fn == nil)
	return bind(KindMethod, func(p *Args6[T0, T1, T2, T3, T4, T5]) { fn(recv, p.V0, p.V1, p.V2, p.V3, p.V4, p.V5) }, Args6[T0, T1, T2, T3, T4, T5]{p0, p1, p2, p3, p4, p5})
}

// ConstMethod6 binds a value-receiver method on recv to six arguments.
func ConstMethod6[C, T0, T1, T2, T3, T4, T5 any](recv *C, fn func(C, T0, T1, T2, T3, T4, T5), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5) Binding[Args6[T0, T1, T2, T3, T4, T5]] {
	checkMethod(recv, fn == nil)
	return bind(KindConstMethod, func(p *Args6[T0, T1, T2, T3, T4, T5]) { fn(*recv, p.V0, p.V1, p.V2, p.V3, p.V4, p.V5) }, Args6[T0, T1, T2, T3, T4, T5]{p0, p1, p2, p3, p4, p5})
}

// Func7 binds fn to seven arguments.
func Func7[T0, T1, T2, T3, T4, T5, T6 any](fn func(T0, T1, T2, T3, T4, T5, T6), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5, p6 T6) Binding[Args7[T0, T1, T2, T3, T4, T5, T6]] {
	checkFunc(fn == nil)
	return bind(KindFunc, func(p *Args7[T0, T1, T2, T3, T4, T5, T6]) { fn(p.V0, p.V1, p.V2, p.V3, p.V4, p.V5, p.V6) }, Args7[T0, T1, T2, T3, T4, T5, T6]{p0, p1, p2, p3, p4, p5, p6})
}

// Method7 binds a method on recv to seven arguments.
func Method7[C, T0, T1, T2, T3, T4, T5, T6 any](recv *C, fn func(*C, T0, T1, T2, T3, T4, T5, T6), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5, p6 T6) Binding[Args7[T0, T1, T2, T3, T4, T5, T6]] {
	checkMethod(recv, fn == nil)
	return bind(KindMethod, func(p *Args7[T0, T1, T2, T3, T4, T5, T6]) { fn(recv, p.V0, p.V1, p.V2, p.V3, p.V4, p.V5, p.V6) }, Args7[T0, T1, T2, T3, T4, T5, T6]{p0, p1, p2, p3, p4, p5, p6})
}

// ConstMethod7 binds a value-receiver method on recv to seven arguments.
func ConstMethod7[C, T0, T1, T2, T3, T4, T5, T6 any](recv *C, fn func(C, T0, T1, T2, T3, T4, T5, T6), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5, p6 T6) Binding[Args7[T0, T1, T2, T3, T4, T5, T6]] {
	checkMethod(recv, fn == nil)
	return bind(KindConstMethod, func(p *Args7[T0, T1, T2, T3, T4, T5, T6]) { fn(*recv, p.V0, p.V1, p.V2, p.V3, p.V4, p.V5, p.V6) }, Args7[T0, T1, T2, T3, T4, T5, T6]{p0, p1, p2, p3, p4, p5, p6})
}

// Func8 binds fn to eight arguments.
func Func8[T0, T1, T2, T3, T4, T5, T6, T7 any](fn func(T0, T1, T2, T3, T4, T5, T6, T7), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5, p6 T6, p7 T7) Binding[Args8[T0, T1, T2, T3, T4, T5, T6, T7]] {
	checkFunc(fn == nil)
	return bind(KindFunc, func(p *Args8[T0, T1, T2, T3, T4, T5, T6, T7]) { fn(p.V0, p.V1, p.V2, p.V3, p.V4, p.V5, p.V6, p.V7) }, Args8[T0, T1, T2, T3, T4, T5, T6, T7]{p0, p1, p2, p3, p4, p5, p6, p7})
}

// Method8 binds a method on recv to eight arguments.
func Method8[C, T0, T1, T2, T3, T4, T5, T6, T7 any](recv *C, fn func(*C, T0, T1, T2, T3, T4, T5, T6, T7), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5, p6 T6, p7 T7) Binding[Args8[T0, T1, T2, T3, T4, T5, T6, T7]] {
	checkMethod(recv, fn == nil)
	return bind(KindMethod, func(p *Args8[T0, T1, T2, T3, T4, T5, T6, T7]) { fn(recv, p.V0, p.V1, p.V2, p.V3, p.V4, p.V5, p.V6, p.V7) }, Args8[T0, T1, T2, T3, T4, T5, T6, T7]{p0, p1, p2, p3, p4, p5, p6, p7})
}

// ConstMethod8 binds a value-receiver method on recv to eight arguments.
func ConstMethod8[C, T0, T1, T2, T3, T4, T5, T6, T7 any](recv *C, fn func(C, T0, T1, T2, T3, T4, T5, T6, T7), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5, p6 T6, p7 T7) Binding[Args8[T0, T1, T2, T3, T4, T5, T6, T7]] {
	checkMethod(recv, fn == nil)
	return bind(KindConstMethod, func(p *Args8[T0, T1, T2, T3, T4, T5, T6, T7]) { fn(*recv, p.V0, p.V1, p.V2, p.V3, p.V4, p.V5, p.V6, p.V7) }, Args8[T0, T1, T2, T3, T4, T5, T6, T7]{p0, p1, p2, p3, p4, p5, p6, p7})
}

// Func9 binds fn to nine arguments.
func Func9[T0, T1, T2, T3, T4, T5, T6, T7, T8 any](fn func(T0, T1, T2, T3, T4, T5, T6, T7, T8), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5, p6 T6, p7 T7, p8 T8) Binding[Args9[T0, T1, T2, T3, T4, T5, T6, T7, T8]] {
	checkFunc(fn == nil)
	return bind(KindFunc, func(p *Args9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) { fn(p.V0, p.V1, p.V2, p.V3, p.V4, p.V5, p.V6, p.V7, p.V8) }, Args9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{p0, p1, p2, p3, p4, p5, p6, p7, p8})
}

// Method9 binds a method on recv to nine arguments.
func Method9[C, T0, T1, T2, T3, T4, T5, T6, T7, T8 any](recv *C, fn func(*C, T0, T1, T2, T3, T4, T5, T6, T7, T8), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5, p6 T6, p7 T7, p8 T8) Binding[Args9[T0, T1, T2, T3, T4, T5, T6, T7, T8]] {
	checkMethod(recv, fn == nil)
	return bind(KindMethod, func(p *Args9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) { fn(recv, p.V0, p.V1, p.V2, p.V3, p.V4, p.V5, p.V6, p.V7, p.V8) }, Args9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{p0, p1, p2, p3, p4, p5, p6, p7, p8})
}

// ConstMethod9 binds a value-receiver method on recv to nine arguments.
func ConstMethod9[C, T0, T1, T2, T3, T4, T5, T6, T7, T8 any](recv *C, fn func(C, T0, T1, T2, T3, T4, T5, T6, T7, T8), p0 T0, p1 T1, p2 T2, p3 T3, p4 T4, p5 T5, p6 T6, p7 T7, p8 T8) Binding[Args9[T0, T1, T2, T3, T4, T5, T6, T7, T8]] {
	checkMethod(recv, fn == nil)
	return bind(KindConstMethod, func(p *Args9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) { fn(*recv, p.V0, p.V1, p.V2, p.V3, p.V4, p.V5, p.V6, p.V7, p.V8) }, Args9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{p0, p1, p2, p3, p4, p5, p6, p7, p8})
}
