// Package ui holds the colours and styles shared by the terminal views
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/meow/internal/config"
)

const (
	tipWidth = 40

	darkText  = lipgloss.Color("#F5F5F5")
	lightText = lipgloss.Color("#1C1C1C")
	darkHint  = lipgloss.Color("#8A8A8A")
	lightHint = lipgloss.Color("#6C6C6C")
)

// Style groups the lipgloss styles used to draw the timer.
type Style struct {
	accents   map[config.SessionType]lipgloss.Color
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Cat       lipgloss.Style
	Tip       lipgloss.Style
	Marks     lipgloss.Style
}

// NewStyle builds the styles from the display settings.
func NewStyle(cfg *config.Config) Style {
	text, hint := lightText, lightHint
	if cfg.Display.DarkTheme {
		text, hint = darkText, darkHint
	}

	accents := map[config.SessionType]lipgloss.Color{
		config.Work:       lipgloss.Color(cfg.Color(config.Work)),
		config.ShortBreak: lipgloss.Color(cfg.Color(config.ShortBreak)),
		config.LongBreak:  lipgloss.Color(cfg.Color(config.LongBreak)),
	}

	return Style{
		accents:   accents,
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		Secondary: lipgloss.NewStyle().Foreground(text),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Cat:       lipgloss.NewStyle().Foreground(accents[config.Work]),
		Tip:       lipgloss.NewStyle().Italic(true).Foreground(hint).Width(tipWidth),
		Marks:     lipgloss.NewStyle().Bold(true).Foreground(accents[config.ShortBreak]),
	}
}

// Accent returns the colour associated with a session type.
func (s Style) Accent(name config.SessionType) lipgloss.Color {
	if c, ok := s.accents[name]; ok {
		return c
	}

	return s.accents[config.Work]
}
