package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced Clock for tests. Timers fire only from Advance.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	fake    *Fake
	id      int
	when    time.Time
	fn      func()
	stopped bool
	fired   bool
}

// NewFake returns a Fake clock positioned at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{fake: f, id: f.seq, when: f.now.Add(d), fn: fn}
	f.timers = append(f.timers, t)
	return t
}

// Advance moves the clock forward by d and fires every timer that falls due,
// earliest deadline first. Callbacks run without the clock lock held, so they
// may arm or stop other timers; timers armed by a callback fire in the same
// Advance if they fall due before the target time.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now.Add(d)

	for {
		next := f.nextDueLocked(target)
		if next == nil {
			break
		}
		if next.when.After(f.now) {
			f.now = next.when
		}
		next.fired = true

		f.mu.Unlock()
		next.fn()
		f.mu.Lock()
	}

	f.now = target
	f.compactLocked()
	f.mu.Unlock()
}

// Active returns the number of timers that are armed and have not fired.
func (f *Fake) Active() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, t := range f.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (f *Fake) nextDueLocked(target time.Time) *fakeTimer {
	var next *fakeTimer
	for _, t := range f.timers {
		if t.stopped || t.fired || t.when.After(target) {
			continue
		}
		if next == nil || t.when.Before(next.when) || (t.when.Equal(next.when) && t.id < next.id) {
			next = t
		}
	}
	return next
}

func (f *Fake) compactLocked() {
	alive := f.timers[:0]
	for _, t := range f.timers {
		if !t.stopped && !t.fired {
			alive = append(alive, t)
		}
	}
	f.timers = alive
}

func (t *fakeTimer) Stop() bool {
	t.fake.mu.Lock()
	defer t.fake.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
