package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles is the lipgloss palette for one theme.
type styles struct {
	title    lipgloss.Style
	success  lipgloss.Style
	pending  lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	errorMsg lipgloss.Style
	selected lipgloss.Style
	grabbed  lipgloss.Style
	done     lipgloss.Style
	header   lipgloss.Style
	border   lipgloss.Style
	button   lipgloss.Style

	boxChecked   string
	boxUnchecked string
	handle       string
}

func newStyles(theme string) styles {
	s := styles{
		title:    lipgloss.NewStyle().Bold(true),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:    lipgloss.NewStyle().Faint(true),
		errorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		grabbed:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		border:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		button:   lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder()),

		boxChecked:   "☑",
		boxUnchecked: "☐",
		handle:       "↕",
	}

	switch strings.ToLower(theme) {
	case "neon":
		s.title = s.title.Foreground(lipgloss.Color("201"))
		s.accent = s.accent.Foreground(lipgloss.Color("51"))
		s.grabbed = s.grabbed.Foreground(lipgloss.Color("226"))
		s.boxChecked, s.boxUnchecked, s.handle = "◼", "◻", "⠿"
	case "mono":
		plain := lipgloss.NewStyle()
		s.success, s.pending, s.accent, s.border = plain, plain, plain, plain
		s.errorMsg = plain.Bold(true)
		s.grabbed = plain.Bold(true).Underline(true)
		s.boxChecked, s.boxUnchecked, s.handle = "[x]", "[ ]", "="
	}
	return s
}

func (s styles) cell() lipgloss.Style { return lipgloss.NewStyle().Padding(0, 1) }
