package timer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

func (m *Model) timerView() string {
	var s strings.Builder

	accent := m.style.Accent(m.ctrl.Current())

	s.WriteString(m.style.Main.Foreground(accent).Render(m.board.Title))

	if m.cat != "" {
		s.WriteString("\n\n" + m.style.Cat.Render(m.cat))
	}

	s.WriteString("\n\n" + m.style.Tip.Render(m.board.Tip))
	s.WriteString("\n\n" + m.style.Main.Render(m.board.Timer))

	if !m.ctrl.Running() && m.ctrl.Reps() > 0 && m.board.StartEnabled {
		s.WriteString(" " + m.style.Hint.Render("[Stopped]"))
	}

	s.WriteString("\n" + m.style.Secondary.Render(m.board.Session))

	m.progress.FullColor = string(accent)

	s.WriteString("\n\n" + m.progress.ViewAs(m.ctrl.Progress()))

	if m.board.Marks != "" {
		s.WriteString("\n\n" + m.style.Marks.Render(m.board.Marks))
	}

	s.WriteString("\n\n" + m.helpView())

	return s.String()
}

func (m *Model) helpView() string {
	m.syncKeys()

	return m.help.ShortHelpView([]key.Binding{
		m.keys.start,
		m.keys.pause,
		m.keys.reset,
		m.keys.quit,
	})
}

func (m *Model) View() string {
	if m.modal != nil {
		return m.style.Base.Render(m.modal.View())
	}

	return m.style.Base.Render(m.timerView())
}
