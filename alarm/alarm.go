// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package alarm

import (
	"log/slog"
	"time"

	"code.hybscloud.com/closure"
)

// Alarm runs one permanent closure after a timeout, optionally repeating.
//
// The alarm registers its own permanent fire closure in a Set; whoever
// drives the Set with RunDue drives the alarm. An Alarm holds one closure
// at a time.
type Alarm struct {
	set   *Set
	clock func() time.Time
	fire  *closure.Call[closure.Args0]

	target  closure.Closure
	timeout time.Duration
	repeat  bool

	started   bool
	firing    bool
	lastStart time.Time
	lastFire  time.Time
}

// New returns an Alarm scheduling through set. A nil clock means time.Now.
func New(set *Set, clock func() time.Time) *Alarm {
	if clock == nil {
		clock = time.Now
	}
	a := &Alarm{set: set, clock: clock}
	a.fire = closure.NewPermanentCallback(closure.Method0(a, (*Alarm).onFire))
	return a
}

// Setup clears any previous closure and sets c to run timeout after each
// start. With repeat, the alarm restarts itself after every fire. With
// start, the timer starts right away; otherwise call Start.
//
// c must be permanent: it may run many times and the alarm never consumes it.
func (a *Alarm) Setup(c closure.Closure, timeout time.Duration, repeat, start bool) error {
	if c == nil {
		return ErrNilClosure
	}
	if !c.IsPermanent() {
		return ErrNotPermanent
	}
	a.Clear()
	a.target = c
	a.timeout = timeout
	a.repeat = repeat
	if start {
		return a.Start()
	}
	return nil
}

// IsSet reports whether a closure is set.
func (a *Alarm) IsSet() bool { return a.target != nil }

// IsStarted reports whether a closure is set and its timer is running.
func (a *Alarm) IsStarted() bool { return a.IsSet() && a.started }

// Timeout returns the current timeout.
func (a *Alarm) Timeout() time.Duration { return a.timeout }

// LastStart returns when the timer was last started.
func (a *Alarm) LastStart() time.Time { return a.lastStart }

// LastFire returns when the alarm last fired.
func (a *Alarm) LastFire() time.Time { return a.lastFire }

// Start starts or restarts the timer; the alarm fires timeout from now.
func (a *Alarm) Start() error {
	if !a.IsSet() {
		return ErrNotSet
	}
	now := a.clock()
	if err := a.set.Register(a.fire, now.Add(a.timeout)); err != nil {
		return err
	}
	a.started = true
	a.lastStart = now
	a.set.logger.Debug("alarm: start", slog.Duration("timeout", a.timeout), slog.Bool("repeat", a.repeat))
	return nil
}

// Stop stops the timer. A stopped alarm keeps its closure.
// The timer is not running while the closure runs, so Stop called from the
// closure does nothing and a repeating alarm rearms; use Clear there.
func (a *Alarm) Stop() {
	if !a.IsStarted() {
		return
	}
	a.set.Unregister(a.fire)
	a.started = false
	a.set.logger.Debug("alarm: stop")
}

// ResetTimeout changes the timeout and restarts the timer.
// A one-time alarm that already fired will fire again.
func (a *Alarm) ResetTimeout(timeout time.Duration) error {
	if !a.IsSet() {
		return ErrNotSet
	}
	a.timeout = timeout
	return a.Start()
}

// Release stops the alarm and hands its closure back to the caller.
func (a *Alarm) Release() closure.Closure {
	a.Stop()
	c := a.target
	a.target = nil
	return c
}

// Clear stops the alarm and drops its closure.
func (a *Alarm) Clear() {
	a.Stop()
	a.target = nil
	a.repeat = false
}

// Firing reports whether the alarm's closure is running.
func (a *Alarm) Firing() bool { return a.firing }

func (a *Alarm) onFire() {
	a.lastFire = a.clock()
	a.started = false
	c := a.target
	if c == nil {
		return
	}

	a.firing = true
	defer func() { a.firing = false }()
	c.Run()

	// cleared or replaced from inside Run
	if a.target != c {
		return
	}
	if a.repeat && !a.started {
		_ = a.Start()
	}
}
