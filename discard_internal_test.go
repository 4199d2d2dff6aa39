// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package closure

import "testing"

type holder struct{ n int }

func (h *holder) bump(d int) { h.n += d }

func TestDiscardReleasesBinding(t *testing.T) {
	h := &holder{}
	big := make([]byte, 1<<10)

	c := NewCallback(Method1(h, (*holder).bump, 1))
	c.Discard()
	if c.invoke != nil || c.State() != Consumed {
		t.Fatal("Call: Discard kept the target")
	}

	rc := NewResultCallback(ResultFunc1(func(b []byte) int { return len(b) }, big))
	rc.Discard()
	if rc.invoke != nil || rc.args.V0 != nil {
		t.Fatal("ResultCall: Discard kept the binding")
	}

	cb := NewCallbackX(CallbackFunc1(func(b []byte, x int) {}, big))
	cb.Discard()
	if cb.invoke != nil || cb.args.V0 != nil {
		t.Fatal("CallbackCall: Discard kept the binding")
	}

	rcb := NewResultCallbackX(ResultCallbackFunc1(func(b []byte, x int) int { return x }, big))
	rcb.Discard()
	if rcb.invoke != nil || rcb.args.V0 != nil {
		t.Fatal("ResultCallbackCall: Discard kept the binding")
	}
	if _, ok := rcb.TryRun(1); ok {
		t.Fatal("TryRun succeeded after Discard")
	}
}

func TestDiscardPermanentKeepsBinding(t *testing.T) {
	h := &holder{}
	c := NewPermanentCallback(Method1(h, (*holder).bump, 2))
	c.Discard()
	if c.invoke == nil {
		t.Fatal("Discard released a permanent closure's target")
	}
	c.Run()
	if h.n != 2 {
		t.Fatalf("n = %d, want 2", h.n)
	}
}

func TestDiscardAfterRunIsNoop(t *testing.T) {
	n := 0
	c := Wrap(func() { n++ })
	c.Run()
	c.Discard()
	if n != 1 || c.State() != Consumed {
		t.Fatalf("n = %d, state = %v", n, c.State())
	}
}
