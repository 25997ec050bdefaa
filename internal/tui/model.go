package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/todo"
)

type focus int

const (
	focusTable focus = iota
	focusInput
)

// Options tune the interactive view.
type Options struct {
	Theme     string
	CharLimit int
}

// Model is the Bubble Tea model for the todo table. All state lives in the
// store; the model only tracks cursor, page, form and grab state.
type Model struct {
	store *todo.Store
	log   zerolog.Logger

	keys   keyMap
	styles styles
	help   help.Model

	input textinput.Model
	mode  FormMode
	focus focus

	pager  todo.Pager
	cursor int // index into the full list

	grabbed string // id of the item being moved, empty when idle

	status    string
	statusErr bool

	width int
}

// New builds the view over store.
func New(store *todo.Store, opt Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter todo text"
	ti.CharLimit = opt.CharLimit
	if ti.CharLimit <= 0 {
		ti.CharLimit = 200
	}

	return Model{
		store:  store,
		log:    logging.Component("tui"),
		keys:   defaultKeyMap(),
		styles: newStyles(opt.Theme),
		help:   help.New(),
		input:  ti,
		mode:   Creating{},
		focus:  focusTable,
		width:  80,
	}
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(store *todo.Store, opt Options) error {
	p := tea.NewProgram(New(store, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Mode reports whether the form is creating or editing.
func (m Model) Mode() FormMode { return m.mode }

// Page is the 1-based page being shown.
func (m Model) Page() int { return m.pager.Page() }

// Cursor is the selected row as an index into the full list.
func (m Model) Cursor() int { return m.cursor }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-16, 10)
		return m, nil

	case tea.KeyMsg:
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		if m.grabbed != "" {
			return m.updateGrab(msg)
		}
		return m.updateTable(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		return m.submit(), nil
	case key.Matches(msg, m.keys.Cancel):
		return m.resetForm(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Prev):
		m.prevPage()
	case key.Matches(msg, m.keys.Next):
		m.nextPage()
	case key.Matches(msg, m.keys.Add):
		m.mode = Creating{}
		m.input.SetValue("")
		cmd := m.focusInput()
		return m, cmd
	case key.Matches(msg, m.keys.Edit):
		if it, ok := m.selected(); ok {
			m.mode = Editing{ID: it.ID}
			m.input.SetValue(it.Text)
			m.input.CursorEnd()
			cmd := m.focusInput()
			return m, cmd
		}
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			_, err := m.store.Toggle(it.ID)
			m.report(err, "")
		}
	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			_, err := m.store.Remove(it.ID)
			m.report(err, "removed")
			m.clamp()
		}
	case key.Matches(msg, m.keys.Grab):
		if it, ok := m.selected(); ok {
			m.grabbed = it.ID
		}
	}
	return m, nil
}

// updateGrab handles keys while an item is lifted. The cursor is the drop
// target; the store is only touched on drop. Quitting drops nothing.
func (m Model) updateGrab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.grabbed = ""
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.cursor = max(m.store.Index(m.grabbed), 0)
		m.pager.SetPage(m.cursor)
		m.grabbed = ""
	case key.Matches(msg, m.keys.Drop):
		m = m.drop()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Prev):
		m.prevPage()
	case key.Matches(msg, m.keys.Next):
		m.nextPage()
	}
	return m, nil
}

// drop moves the grabbed item to the position of the item currently under
// the cursor. Positions are over the whole list, not the visible page.
func (m Model) drop() Model {
	items := m.store.Items()
	id := m.grabbed
	m.grabbed = ""
	if m.cursor < 0 || m.cursor >= len(items) {
		return m
	}
	moved, err := m.store.Move(id, items[m.cursor].ID)
	if moved {
		m.log.Debug().Str("id", id).Int("to", m.cursor).Msg("moved")
	}
	m.report(err, "")
	m.cursor = max(m.store.Index(id), 0)
	m.pager.SetPage(m.cursor)
	return m
}

func (m Model) submit() Model {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		// submit is disabled while the input is blank
		return m
	}

	switch mode := m.mode.(type) {
	case Creating:
		it, err := m.store.Add(text)
		m.report(err, "added")
		if i := m.store.Index(it.ID); i >= 0 {
			m.cursor = i
			m.pager.SetPage(i)
		}
	case Editing:
		_, err := m.store.Edit(mode.ID, model.TextPatch(text))
		m.report(err, "saved")
	}
	return m.resetForm()
}

func (m Model) resetForm() Model {
	m.mode = Creating{}
	m.input.SetValue("")
	m.input.Blur()
	m.focus = focusTable
	return m
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	m.status = ""
	return m.input.Focus()
}

func (m Model) selected() (model.Item, bool) {
	items := m.store.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return model.Item{}, false
	}
	return items[m.cursor], true
}

func (m *Model) moveCursor(delta int) {
	n := m.store.Len()
	if n == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.pager.SetPage(m.cursor)
}

func (m *Model) prevPage() {
	if m.pager.Prev() {
		m.cursor, _ = m.pager.Bounds(m.store.Len())
	}
}

func (m *Model) nextPage() {
	if m.pager.Next(m.store.Len()) {
		m.cursor, _ = m.pager.Bounds(m.store.Len())
	}
}

// clamp keeps cursor and page inside the list after it shrinks.
func (m *Model) clamp() {
	n := m.store.Len()
	m.pager.Clamp(n)
	m.cursor = min(max(m.cursor, 0), max(n-1, 0))
	start, end := m.pager.Bounds(n)
	if n > 0 && (m.cursor < start || m.cursor >= end) {
		m.pager.SetPage(m.cursor)
	}
}

func (m *Model) report(err error, ok string) {
	if err != nil {
		m.log.Error().Err(err).Msg("store")
		m.status, m.statusErr = err.Error(), true
		return
	}
	m.status, m.statusErr = ok, false
}
