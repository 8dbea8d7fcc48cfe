package timer

import (
	"context"
	"time"

	"github.com/ayoisaiah/meow/internal/config"
)

// manualScheduler fires callbacks only when the test asks it to.
type manualScheduler struct {
	pending map[Handle]func()
	delays  []time.Duration
	order   []Handle
	last    Handle
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{
		pending: make(map[Handle]func()),
	}
}

func (s *manualScheduler) Schedule(delay time.Duration, fn func()) Handle {
	s.last++
	s.pending[s.last] = fn
	s.order = append(s.order, s.last)
	s.delays = append(s.delays, delay)

	return s.last
}

func (s *manualScheduler) Cancel(h Handle) {
	delete(s.pending, h)
}

// step fires the oldest pending callback and reports whether there was one.
func (s *manualScheduler) step() bool {
	for len(s.order) > 0 {
		h := s.order[0]
		s.order = s.order[1:]

		fn, ok := s.pending[h]
		if !ok {
			continue
		}

		delete(s.pending, h)
		fn()

		return true
	}

	return false
}

// drain fires callbacks until none are left and returns how many ran.
func (s *manualScheduler) drain() int {
	var n int

	for s.step() {
		n++
	}

	return n
}

// recordingSurface keeps every value written to the board.
type recordingSurface struct {
	Board
	timers []string
}

func (r *recordingSurface) SetTimer(text string) {
	r.timers = append(r.timers, text)
	r.Board.SetTimer(text)
}

type notification struct {
	title string
	body  string
}

type fakeNotifier struct {
	err  error
	sent []notification
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.sent = append(f.sent, notification{title, body})
	return f.err
}

type fakeAlarm struct {
	err   error
	plays int
}

func (f *fakeAlarm) Play() error {
	f.plays++
	return f.err
}

type fakeAck struct {
	shown []notification
}

func (f *fakeAck) Acknowledge(title, body string) error {
	f.shown = append(f.shown, notification{title, body})
	return nil
}

type fakeHook struct {
	runs []config.SessionType
}

func (f *fakeHook) Run(_ context.Context, name config.SessionType) error {
	f.runs = append(f.runs, name)
	return nil
}

// fixture wires a controller to fakes.
type fixture struct {
	ctrl     *Controller
	sched    *manualScheduler
	surface  *recordingSurface
	notifier *fakeNotifier
	alarm    *fakeAlarm
	ack      *fakeAck
	hook     *fakeHook
	effects  []Effect
}

func newFixture() *fixture {
	f := &fixture{
		sched:    newManualScheduler(),
		surface:  &recordingSurface{},
		notifier: &fakeNotifier{},
		alarm:    &fakeAlarm{},
		ack:      &fakeAck{},
		hook:     &fakeHook{},
	}

	f.ctrl = NewController(f.surface, f.sched, Collaborators{
		Notifier: f.notifier,
		Alarm:    f.alarm,
		Ack:      f.ack,
		Hook:     f.hook,
		Report: func(e Effect) {
			f.effects = append(f.effects, e)
		},
	})

	return f
}

// startAndFinish starts the next interval and lets it run to zero.
func (f *fixture) startAndFinish() {
	f.ctrl.Start()
	f.sched.drain()
}
