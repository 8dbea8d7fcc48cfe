package timer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const (
	padding  = 2
	maxWidth = 60
)

// handleKeyPress maps keys to controller actions. Start and pause are
// ignored while the board shows them as disabled.
func (m *Model) handleKeyPress(msg tea.KeyMsg) {
	m.syncKeys()

	switch {
	case key.Matches(msg, m.keys.start):
		m.ctrl.Start()
	case key.Matches(msg, m.keys.pause):
		m.ctrl.Pause()
	case key.Matches(msg, m.keys.reset):
		m.ctrl.Reset()
	}

	m.syncKeys()
}

func (m *Model) syncKeys() {
	m.keys.start.SetEnabled(m.board.StartEnabled)
	m.keys.pause.SetEnabled(m.board.PauseEnabled)
}

// updateModal forwards a message to the open modal and closes it once it
// has been dismissed.
func (m *Model) updateModal(msg tea.Msg) {
	form, cmd := m.modal.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.modal = f
	}

	m.cmds = append(m.cmds, cmd)

	if m.modal.State != huh.StateNormal {
		m.modal = nil
	}
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.progress.Width = msg.Width - padding*2 - 4
	if m.progress.Width > maxWidth {
		m.progress.Width = maxWidth
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FireMsg:
		m.sched.Fire(msg.Handle)

		return m, m.flush()

	case effectMsg:
		m.ctrl.Report(msg.effect)

		return m, m.flush()

	case tea.WindowSizeMsg:
		m.handleResize(msg)
	}

	if m.modal != nil {
		if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		m.updateModal(msg)

		return m, m.flush()
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(k, m.keys.quit) {
			m.ctrl.Pause()

			return m, tea.Quit
		}

		m.handleKeyPress(k)
	}

	return m, m.flush()
}
