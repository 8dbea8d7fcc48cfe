package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks after a delay. A callback runs at most once and
// never after it has been cancelled.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Handle
	Cancel(h Handle)
}

// FireMsg is delivered by the event loop when a scheduled delay elapses.
type FireMsg struct {
	Handle Handle
}

// LoopScheduler schedules callbacks on the bubbletea event loop. Every
// callback runs inside Update, so they never race with key handling.
type LoopScheduler struct {
	pending map[Handle]func()
	cmds    []tea.Cmd
	last    Handle
}

func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{
		pending: make(map[Handle]func()),
	}
}

func (s *LoopScheduler) Schedule(delay time.Duration, fn func()) Handle {
	s.last++
	h := s.last

	s.pending[h] = fn
	s.cmds = append(s.cmds, tea.Tick(delay, func(time.Time) tea.Msg {
		return FireMsg{Handle: h}
	}))

	return h
}

func (s *LoopScheduler) Cancel(h Handle) {
	delete(s.pending, h)
}

// Fire runs the callback registered under h if it is still pending.
func (s *LoopScheduler) Fire(h Handle) bool {
	fn, ok := s.pending[h]
	if !ok {
		return false
	}

	delete(s.pending, h)

	fn()

	return true
}

// Pending reports the number of callbacks waiting to fire.
func (s *LoopScheduler) Pending() int {
	return len(s.pending)
}

// Flush returns the commands queued since the last call.
func (s *LoopScheduler) Flush() []tea.Cmd {
	cmds := s.cmds
	s.cmds = nil

	return cmds
}
