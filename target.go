// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

// Target is the callable endpoint of a closure over bound tuple P.
//
// The invoker unpacks the tuple into positional arguments. Method targets
// capture their receiver inside the invoker; the receiver is referenced,
// not owned, and the caller keeps it meaningful for the closure's lifetime.
type Target[P any] struct {
	kind   Kind
	invoke func(*P)
}

// Kind returns the target kind.
func (t Target[P]) Kind() Kind { return t.kind }

// Binding pairs a target with the argument tuple bound to it.
// Arguments are copied when the binding is made.
type Binding[P any] struct {
	target Target[P]
	args   P
}

// Kind returns the kind of the bound target.
func (b Binding[P]) Kind() Kind { return b.target.kind }

// Args returns a copy of the bound arguments.
func (b Binding[P]) Args() P { return b.args }

// Apply binds fn to a whole argument tuple.
// It is the arity-free form of the FuncN binders: P may be any value,
// typically a caller-defined struct.
func Apply[P any](fn func(P), args P) Binding[P] {
	checkFunc(fn == nil)
	return bind(KindFunc, func(p *P) { fn(*p) }, args)
}

// ApplyMethod binds a method expression on recv to a whole argument tuple.
func ApplyMethod[C, P any](recv *C, fn func(*C, P), args P) Binding[P] {
	checkMethod(recv, fn == nil)
	return bind(KindMethod, func(p *P) { fn(recv, *p) }, args)
}

// ApplyConstMethod binds a value-receiver method expression on recv to a
// whole argument tuple. The method observes *recv as of each run and
// works on a copy of it.
func ApplyConstMethod[C, P any](recv *C, fn func(C, P), args P) Binding[P] {
	checkMethod(recv, fn == nil)
	return bind(KindConstMethod, func(p *P) { fn(*recv, *p) }, args)
}

func bind[P any](kind Kind, invoke func(*P), args P) Binding[P] {
	return Binding[P]{target: Target[P]{kind: kind, invoke: invoke}, args: args}
}

func checkFunc(isNil bool) {
	if isNil {
		panic(errNilFunction)
	}
}

func checkMethod[C any](recv *C, isNil bool) {
	if recv == nil {
		panic(errNilReceiver)
	}
	checkFunc(isNil)
}
