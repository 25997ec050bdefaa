package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/todo"
)

const (
	colHandle = iota
	_ // index
	colText
	colStatus
	colCheck
	colActions
)

const (
	textReserve  = 56
	minTextWidth = 12
)

func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.formView())
	b.WriteString("\n")

	if m.store.Len() == 0 {
		b.WriteString(s.muted.Render("No items yet. Press a to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.tableView())
		b.WriteString("\n")
	}

	if footer := m.paginationView(); footer != "" {
		b.WriteString(footer)
		b.WriteString("\n")
	}

	if m.status != "" {
		if m.statusErr {
			b.WriteString(s.errorMsg.Render("✖ " + m.status))
		} else {
			b.WriteString(s.success.Render("✔ " + m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.helpView())
	return panelString(b.String())
}

func (m Model) header() string {
	s := m.styles
	done, pending := stats(m.store.Items())
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		s.title.Render("Todos"),
		s.success.Render("✔"), done,
		s.pending.Render("•"), pending,
		s.accent.Render("Total"), done+pending,
	)
}

func (m Model) formView() string {
	s := m.styles
	btn := s.button.Render(submitLabel(m.mode))
	if strings.TrimSpace(m.input.Value()) == "" {
		btn = s.button.Faint(true).Render(submitLabel(m.mode))
	}

	title := formTitle(m.mode)
	if m.focus != focusInput {
		title = s.muted.Render(title)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", btn)
	bar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return bar.Render(title + "\n" + row)
}

// visibleRows returns the rows for the current page. While an item is being
// moved the rows preview the order a drop would produce.
func (m Model) visibleRows() (rows []model.Item, offset int) {
	items := m.store.Items()
	if m.grabbed != "" {
		if from := m.store.Index(m.grabbed); from >= 0 {
			items = todo.MoveItem(items, from, m.cursor)
		}
	}
	start, _ := m.pager.Bounds(len(items))
	return todo.Visible(m.pager, items), start
}

// textWidth is the room left for the TEXT column once the other columns and
// the panel borders are laid out.
func (m Model) textWidth() int {
	return max(m.width-textReserve, minTextWidth)
}

func (m Model) tableView() string {
	s := m.styles
	rows, offset := m.visibleRows()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers("MOVE", "#", "TEXT", "STATUS", "DONE", "ACTIONS")

	for i, it := range rows {
		handle := s.handle
		if it.ID == m.grabbed {
			handle = "▶" + handle
		}
		box := s.boxUnchecked
		if it.Status.Done() {
			box = s.boxChecked
		}
		text := runewidth.Truncate(capitalize(it.Text), m.textWidth(), "…")
		t.Row(handle, strconv.Itoa(offset+i+1), text, string(it.Status), box, "e edit · d del")
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return s.header
		}
		if row < 0 || row >= len(rows) {
			return s.cell()
		}
		it := rows[row]
		st := s.cell()
		switch col {
		case colText:
			if it.Status.Done() {
				st = st.Inherit(s.done)
			}
		case colStatus:
			if it.Status.Done() {
				st = st.Inherit(s.success)
			} else {
				st = st.Inherit(s.pending)
			}
		case colHandle, colCheck, colActions:
			st = st.Inherit(s.muted)
		}
		if offset+row == m.cursor && m.focus == focusTable {
			if m.grabbed != "" {
				return st.Inherit(s.grabbed)
			}
			return st.Inherit(s.selected)
		}
		return st
	})

	return t.String()
}

// paginationView renders Previous/page/Next, only when there is more than one page.
func (m Model) paginationView() string {
	n := m.store.Len()
	if todo.TotalPages(n) <= 1 {
		return ""
	}
	s := m.styles
	prev, next := "‹ Previous", "Next ›"
	if m.pager.HasPrev() {
		prev = s.accent.Render(prev)
	} else {
		prev = s.muted.Render(prev)
	}
	if m.pager.HasNext(n) {
		next = s.accent.Render(next)
	} else {
		next = s.muted.Render(next)
	}
	page := s.title.Render(strconv.Itoa(m.pager.Page()))
	return fmt.Sprintf("%s   %s   %s", prev, page, next)
}

func (m Model) helpView() string {
	var km help.KeyMap = tableKeys{m.keys}
	switch {
	case m.focus == focusInput:
		km = formKeys{m.keys}
	case m.grabbed != "":
		km = grabKeys{m.keys}
	}
	return m.help.View(km)
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(strings.TrimRight(inner, "\n"))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.Status.Done() {
			done++
		} else {
			pending++
		}
	}
	return
}
