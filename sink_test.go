// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure_test

import "code.hybscloud.com/closure"

// sink records the arguments it is called with. The pointer-receiver
// methods also count calls on the receiver; the value-receiver methods
// count on a copy, which must never be observed.
type sink struct {
	log   *[]int
	calls int
}

func newSink() *sink { return &sink{log: new([]int)} }

func (s *sink) put0() {
	s.calls++
	*s.log = append(*s.log, 0)
}

func (s sink) peek0() {
	s.calls++
	*s.log = append(*s.log, 0)
}

func (s *sink) put1(a0 int) {
	s.calls++
	*s.log = append(*s.log, a0)
}

func (s sink) peek1(a0 int) {
	s.calls++
	*s.log = append(*s.log, a0)
}

func (s *sink) put2(a0, a1 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1)
}

func (s sink) peek2(a0, a1 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1)
}

func (s *sink) put3(a0, a1, a2 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2)
}

func (s sink) peek3(a0, a1, a2 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2)
}

func (s *sink) put4(a0, a1, a2, a3 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3)
}

func (s sink) peek4(a0, a1, a2, a3 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3)
}

func (s *sink) put5(a0, a1, a2, a3, a4 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3, a4)
}

func (s sink) peek5(a0, a1, a2, a3, a4 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3, a4)
}

func (s *sink) put6(a0, a1, a2, a3, a4, a5 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3, a4, a5)
}

func (s sink) peek6(a0, a1, a2, a3, a4, a5 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3, a4, a5)
}

func (s *sink) put7(a0, a1, a2, a3, a4, a5, a6 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3, a4, a5, a6)
}

func (s sink) peek7(a0, a1, a2, a3, a4, a5, a6 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3, a4, a5, a6)
}

func (s *sink) put8(a0, a1, a2, a3, a4, a5, a6, a7 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3, a4, a5, a6, a7)
}

func (s sink) peek8(a0, a1, a2, a3, a4, a5, a6, a7 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3, a4, a5, a6, a7)
}

func (s *sink) put9(a0, a1, a2, a3, a4, a5, a6, a7, a8 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3, a4, a5, a6, a7, a8)
}

func (s sink) peek9(a0, a1, a2, a3, a4, a5, a6, a7, a8 int) {
	s.calls++
	*s.log = append(*s.log, a0, a1, a2, a3, a4, a5, a6, a7, a8)
}

// arityCase builds a closure of one kind and arity over a fresh sink.
type arityCase struct {
	name  string
	kind  closure.Kind
	args  []int
	build func(s *sink, permanent bool) closure.Closure
}

func newClosure[P any](b closure.Binding[P], permanent bool) closure.Closure {
	if permanent {
		return closure.NewPermanentCallback(b)
	}
	return closure.NewCallback(b)
}

var arityCases = []arityCase{
	{
		name: "func0", kind: closure.KindFunc, args: []int{0},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Func0(func() { *s.log = append(*s.log, 0) }), permanent)
		},
	},
	{
		name: "method0", kind: closure.KindMethod, args: []int{0},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Method0(s, (*sink).put0), permanent)
		},
	},
	{
		name: "constMethod0", kind: closure.KindConstMethod, args: []int{0},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.ConstMethod0(s, sink.peek0), permanent)
		},
	},
	{
		name: "func1", kind: closure.KindFunc, args: []int{11},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Func1(func(a0 int) { *s.log = append(*s.log, a0) }, 11), permanent)
		},
	},
	{
		name: "method1", kind: closure.KindMethod, args: []int{11},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Method1(s, (*sink).put1, 11), permanent)
		},
	},
	{
		name: "constMethod1", kind: closure.KindConstMethod, args: []int{11},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.ConstMethod1(s, sink.peek1, 11), permanent)
		},
	},
	{
		name: "func2", kind: closure.KindFunc, args: []int{21, 22},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Func2(func(a0, a1 int) { *s.log = append(*s.log, a0, a1) }, 21, 22), permanent)
		},
	},
	{
		name: "method2", kind: closure.KindMethod, args: []int{21, 22},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Method2(s, (*sink).put2, 21, 22), permanent)
		},
	},
	{
		name: "constMethod2", kind: closure.KindConstMethod, args: []int{21, 22},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.ConstMethod2(s, sink.peek2, 21, 22), permanent)
		},
	},
	{
		name: "func3", kind: closure.KindFunc, args: []int{31, 32, 33},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Func3(func(a0, a1, a2 int) { *s.log = append(*s.log, a0, a1, a2) }, 31, 32, 33), permanent)
		},
	},
	{
		name: "method3", kind: closure.KindMethod, args: []int{31, 32, 33},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Method3(s, (*sink).put3, 31, 32, 33), permanent)
		},
	},
	{
		name: "constMethod3", kind: closure.KindConstMethod, args: []int{31, 32, 33},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.ConstMethod3(s, sink.peek3, 31, 32, 33), permanent)
		},
	},
	{
		name: "func4", kind: closure.KindFunc, args: []int{41, 42, 43, 44},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Func4(func(a0, a1, a2, a3 int) { *s.log = append(*s.log, a0, a1, a2, a3) }, 41, 42, 43, 44), permanent)
		},
	},
	{
		name: "method4", kind: closure.KindMethod, args: []int{41, 42, 43, 44},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Method4(s, (*sink).put4, 41, 42, 43, 44), permanent)
		},
	},
	{
		name: "constMethod4", kind: closure.KindConstMethod, args: []int{41, 42, 43, 44},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.ConstMethod4(s, sink.peek4, 41, 42, 43, 44), permanent)
		},
	},
	{
		name: "func5", kind: closure.KindFunc, args: []int{51, 52, 53, 54, 55},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Func5(func(a0, a1, a2, a3, a4 int) { *s.log = append(*s.log, a0, a1, a2, a3, a4) }, 51, 52, 53, 54, 55), permanent)
		},
	},
	{
		name: "method5", kind: closure.KindMethod, args: []int{51, 52, 53, 54, 55},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Method5(s, (*sink).put5, 51, 52, 53, 54, 55), permanent)
		},
	},
	{
		name: "constMethod5", kind: closure.KindConstMethod, args: []int{51, 52, 53, 54, 55},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.ConstMethod5(s, sink.peek5, 51, 52, 53, 54, 55), permanent)
		},
	},
	{
		name: "func6", kind: closure.KindFunc, args: []int{61, 62, 63, 64, 65, 66},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Func6(func(a0, a1, a2, a3, a4, a5 int) { *s.log = append(*s.log, a0, a1, a2, a3, a4, a5) }, 61, 62, 63, 64, 65, 66), permanent)
		},
	},
	{
		name: "method6", kind: closure.KindMethod, args: []int{61, 62, 63, 64, 65, 66},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Method6(s, (*sink).put6, 61, 62, 63, 64, 65, 66), permanent)
		},
	},
	{
		name: "constMethod6", kind: closure.KindConstMethod, args: []int{61, 62, 63, 64, 65, 66},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.ConstMethod6(s, sink.peek6, 61, 62, 63, 64, 65, 66), permanent)
		},
	},
	{
		name: "func7", kind: closure.KindFunc, args: []int{71, 72, 73, 74, 75, 76, 77},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Func7(func(a0, a1, a2, a3, a4, a5, a6 int) { *s.log = append(*s.log, a0, a1, a2, a3, a4, a5, a6) }, 71, 72, 73, 74, 75, 76, 77), permanent)
		},
	},
	{
		name: "method7", kind: closure.KindMethod, args: []int{71, 72, 73, 74, 75, 76, 77},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Method7(s, (*sink).put7, 71, 72, 73, 74, 75, 76, 77), permanent)
		},
	},
	{
		name: "constMethod7", kind: closure.KindConstMethod, args: []int{71, 72, 73, 74, 75, 76, 77},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.ConstMethod7(s, sink.peek7, 71, 72, 73, 74, 75, 76, 77), permanent)
		},
	},
	{
		name: "func8", kind: closure.KindFunc, args: []int{81, 82, 83, 84, 85, 86, 87, 88},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Func8(func(a0, a1, a2, a3, a4, a5, a6, a7 int) { *s.log = append(*s.log, a0, a1, a2, a3, a4, a5, a6, a7) }, 81, 82, 83, 84, 85, 86, 87, 88), permanent)
		},
	},
	{
		name: "method8", kind: closure.KindMethod, args: []int{81, 82, 83, 84, 85, 86, 87, 88},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Method8(s, (*sink).put8, 81, 82, 83, 84, 85, 86, 87, 88), permanent)
		},
	},
	{
		name: "constMethod8", kind: closure.KindConstMethod, args: []int{81, 82, 83, 84, 85, 86, 87, 88},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.ConstMethod8(s, sink.peek8, 81, 82, 83, 84, 85, 86, 87, 88), permanent)
		},
	},
	{
		name: "func9", kind: closure.KindFunc, args: []int{91, 92, 93, 94, 95, 96, 97, 98, 99},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Func9(func(a0, a1, a2, a3, a4, a5, a6, a7, a8 int) { *s.log = append(*s.log, a0, a1, a2, a3, a4, a5, a6, a7, a8) }, 91, 92, 93, 94, 95, 96, 97, 98, 99), permanent)
		},
	},
	{
		name: "method9", kind: closure.KindMethod, args: []int{91, 92, 93, 94, 95, 96, 97, 98, 99},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.Method9(s, (*sink).put9, 91, 92, 93, 94, 95, 96, 97, 98, 99), permanent)
		},
	},
	{
		name: "constMethod9", kind: closure.KindConstMethod, args: []int{91, 92, 93, 94, 95, 96, 97, 98, 99},
		build: func(s *sink, permanent bool) closure.Closure {
			return newClosure(closure.ConstMethod9(s, sink.peek9, 91, 92, 93, 94, 95, 96, 97, 98, 99), permanent)
		},
	},
}
