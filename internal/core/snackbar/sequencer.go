// Package snackbar sequences transient notifications so that at most one is
// visible at a time.
//
// A Sequencer is a state machine with three inputs (Enqueue, RequestClose,
// NotifyTransitionComplete) and one observable output (State). Rendering is
// left to subscribers: they show State.Current while State.Visible is true,
// play an exit transition when it turns false, and report the end of that
// transition with NotifyTransitionComplete.
package snackbar

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/uikit/internal/core/notify"
	"github.com/colonyops/uikit/pkg/clock"
)

// Close reasons understood by RequestClose.
const (
	// ReasonClickAway is reported for clicks outside the notification. It
	// never dismisses anything.
	ReasonClickAway = "clickaway"
	ReasonTimeout   = "timeout"
	ReasonDismiss   = "dismiss"
	ReasonAction    = "action"
)

// State is a snapshot of the sequencer.
type State struct {
	// Current is the notification occupying the display slot, or nil.
	Current *notify.Queued
	// Visible is false while Current is closing.
	Visible bool
	// Pending is the number of notifications waiting for the slot.
	Pending int
}

// Key returns the key of the current notification, or 0 when the slot is empty.
func (s State) Key() uint64 {
	if s.Current == nil {
		return 0
	}
	return s.Current.Key
}

// Subscriber receives every published State.
type Subscriber func(State)

type subscription struct {
	id int
	fn Subscriber
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithClock sets the clock used for timestamps and auto-hide timers.
func WithClock(c clock.Clock) Option {
	return func(s *Sequencer) { s.clock = c }
}

// WithDefaultAutoHide sets the auto-hide duration applied to requests that do
// not set one. Zero or negative disables the default.
func WithDefaultAutoHide(d time.Duration) Option {
	return func(s *Sequencer) { s.autoHide = d }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Sequencer) { s.log = l }
}

// Sequencer serializes notifications into a single display slot. It is safe
// for concurrent use.
type Sequencer struct {
	clock    clock.Clock
	log      zerolog.Logger
	autoHide time.Duration

	mu       sync.Mutex
	nextKey  uint64
	pending  []notify.Queued
	current  *notify.Queued
	visible  bool
	timer    clock.Timer
	closed   bool
	subs     []subscription
	nextSub  int

	// reconciling is set while the promotion loop runs. Mutations that land
	// in that window mark the state dirty and let the running loop promote
	// and publish, so promotion never interleaves with itself.
	reconciling bool
	dirty       bool
}

// New creates an idle Sequencer.
func New(opts ...Option) *Sequencer {
	s := &Sequencer{
		clock: clock.Real{},
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enqueue appends req to the pending sequence and returns the key assigned
// to it. Keys are strictly increasing for the lifetime of the Sequencer.
// After Close the request is dropped and 0 is returned.
func (s *Sequencer) Enqueue(req notify.Request) uint64 {
	var key uint64
	s.update(func() bool {
		if s.closed {
			return false
		}
		s.nextKey++
		key = s.nextKey
		if req.Action != nil {
			action := *req.Action
			req.Action = &action
		}
		s.pending = append(s.pending, notify.Queued{
			Request:    req,
			Key:        key,
			EnqueuedAt: s.clock.Now(),
		})
		s.log.Debug().Uint64("key", key).Int("pending", len(s.pending)).Msg("notification enqueued")
		return true
	})
	return key
}

// RequestClose starts the close transition of the visible notification.
// ReasonClickAway is ignored.
func (s *Sequencer) RequestClose(reason string) {
	if reason == ReasonClickAway {
		return
	}

	s.update(func() bool {
		if s.current == nil || !s.visible {
			return false
		}
		s.hideLocked(reason)
		return true
	})
}

// NotifyTransitionComplete reports that the exit transition of the current
// notification has finished. The slot is cleared and the next pending
// notification, if any, is promoted.
func (s *Sequencer) NotifyTransitionComplete() {
	s.update(func() bool {
		if s.current == nil {
			return false
		}
		s.log.Debug().Uint64("key", s.current.Key).Msg("notification cleared")
		s.stopTimerLocked()
		s.current = nil
		s.visible = false
		return true
	})
}

// State returns a snapshot of the sequencer.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive every state change. Callbacks run
// serially and outside the sequencer lock, so they may call back into the
// Sequencer. The returned function removes the subscription.
func (s *Sequencer) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Close discards all state. The Sequencer ignores further input.
func (s *Sequencer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.stopTimerLocked()
	s.pending = nil
	s.current = nil
	s.visible = false
	s.subs = nil
}

// update applies mutate under the lock, then runs the promotion loop unless
// another caller is already running it.
func (s *Sequencer) update(mutate func() bool) {
	s.mu.Lock()
	if mutate() {
		s.dirty = true
	}
	if s.reconciling {
		s.mu.Unlock()
		return
	}

	s.reconciling = true
	for {
		if s.promoteLocked() {
			s.dirty = true
		}
		if !s.dirty || s.closed {
			break
		}
		s.dirty = false

		state := s.snapshotLocked()
		subs := make([]subscription, len(s.subs))
		copy(subs, s.subs)

		s.mu.Unlock()
		for _, sub := range subs {
			sub.fn(state)
		}
		s.mu.Lock()
	}
	s.reconciling = false
	s.mu.Unlock()
}

// promoteLocked performs one promotion step and reports whether it changed
// the state.
func (s *Sequencer) promoteLocked() bool {
	if s.closed || len(s.pending) == 0 {
		return false
	}

	switch {
	case s.current == nil:
		next := s.pending[0]
		s.pending[0] = notify.Queued{}
		s.pending = s.pending[1:]

		s.current = &next
		s.visible = true
		s.armTimerLocked(next)

		s.log.Debug().
			Uint64("key", next.Key).
			Str("severity", string(next.Severity.Resolve())).
			Int("pending", len(s.pending)).
			Msg("notification promoted")
		return true
	case s.visible:
		s.hideLocked("superseded")
		return true
	default:
		return false
	}
}

func (s *Sequencer) hideLocked(reason string) {
	s.stopTimerLocked()
	s.visible = false
	s.log.Debug().Uint64("key", s.current.Key).Str("reason", reason).Msg("notification closing")
}

func (s *Sequencer) armTimerLocked(q notify.Queued) {
	d := q.AutoHide
	if d == 0 {
		d = s.autoHide
	}
	if d <= 0 {
		return
	}

	key := q.Key
	s.timer = s.clock.AfterFunc(d, func() { s.expire(key) })
}

func (s *Sequencer) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// expire closes the notification identified by key if it is still the
// visible one. Timers that lose a race with another close are no-ops.
func (s *Sequencer) expire(key uint64) {
	s.update(func() bool {
		if s.current == nil || s.current.Key != key || !s.visible {
			return false
		}
		s.timer = nil
		s.hideLocked(ReasonTimeout)
		return true
	})
}

func (s *Sequencer) snapshotLocked() State {
	st := State{Visible: s.visible, Pending: len(s.pending)}
	if s.current != nil {
		cur := *s.current
		if cur.Action != nil {
			action := *cur.Action
			cur.Action = &action
		}
		st.Current = &cur
	}
	return st
}
