// Package timer runs the Pomodoro cycle: the countdown, the session
// controller that classifies intervals, and the terminal model that
// displays them
package timer

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/meow/internal/config"
	"github.com/ayoisaiah/meow/internal/ui"
)

const windowTitle = "Study with my Cat"

// Options configures a Model.
type Options struct {
	Notifier Notifier
	Alarm    Alarm
	Hook     Hook
	Report   func(Effect)
	Cat      string
	Style    ui.Style
}

// effectMsg carries the outcome of a side effect run off the event loop.
type effectMsg struct {
	effect Effect
}

// Model is the bubbletea model for the timer window.
type Model struct {
	board    *Board
	ctrl     *Controller
	sched    *LoopScheduler
	modal    *huh.Form
	help     help.Model
	progress progress.Model
	keys     keymap
	cmds     []tea.Cmd
	cat      string
	style    ui.Style
}

// New creates the timer model in its idle state.
func New(opts Options) *Model {
	m := &Model{
		board: &Board{},
		sched: NewLoopScheduler(),
		help:  help.New(),
		progress: progress.New(
			progress.WithSolidFill(string(opts.Style.Accent(config.Work))),
			progress.WithoutPercentage(),
		),
		keys:  newKeymap(),
		cat:   opts.Cat,
		style: opts.Style,
	}

	m.ctrl = NewController(m.board, m.sched, Collaborators{
		Notifier: opts.Notifier,
		Alarm:    opts.Alarm,
		Ack:      m,
		Hook:     opts.Hook,
		Dispatch: m.dispatch,
		Report:   opts.Report,
	})

	return m
}

// dispatch runs the acknowledgment on the event loop and everything else
// as a command so slow notifiers never stall the countdown.
func (m *Model) dispatch(kind EffectKind, fn func() error) {
	if kind == EffectAck {
		m.ctrl.Report(Effect{Kind: kind, Err: fn()})
		return
	}

	m.cmds = append(m.cmds, func() tea.Msg {
		return effectMsg{effect: Effect{Kind: kind, Err: fn()}}
	})
}

// Acknowledge opens a modal that stays until the user dismisses it.
func (m *Model) Acknowledge(title, body string) error {
	m.modal = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(title).
				Description(body).
				Next(true).
				NextLabel("OK"),
		),
	).WithShowHelp(false)

	m.cmds = append(m.cmds, m.modal.Init())

	return nil
}

// Controller returns the session controller driven by the model.
func (m *Model) Controller() *Controller {
	return m.ctrl
}

// Board returns the values on display.
func (m *Model) Board() Board {
	return *m.board
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

// flush returns every command queued while handling a message.
func (m *Model) flush() tea.Cmd {
	cmds := append(m.cmds, m.sched.Flush()...)
	m.cmds = nil

	return tea.Batch(cmds...)
}
