// Package ui is the Bubble Tea front end: a month grid, a seven-day
// timeline with an hour cursor, the per-day todo pane, and the event
// edit dialog. All state changes happen inside Update; navigation
// rebuilds the whole view state from the store rather than patching it.
package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jiyoungv/haru/internal/config"
	"github.com/jiyoungv/haru/internal/datekey"
	"github.com/jiyoungv/haru/internal/session"
	"github.com/jiyoungv/haru/internal/store"
)

type viewMode int

const (
	viewWeek viewMode = iota
	viewMonth
)

type pane int

const (
	paneTimeline pane = iota
	paneTodos
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type Model struct {
	store *store.Store
	theme Theme
	loc   *time.Location

	width, height int
	now           time.Time // wall clock, refreshed by the 1s tick
	today         time.Time // captured at view start

	view viewMode
	pane pane

	// week view focus/selection
	focusedDate time.Time
	weekStart   time.Time
	hourCursor  int

	// month view
	monthYear   int
	monthMonth  time.Month
	monthCursor int

	// todo pane; cursor == len(items) is the trailing empty input
	todoCursor  int
	todoInput   textinput.Model
	todoEditing bool

	// edit dialog
	sess  *session.Session
	edits [5]textinput.Model
	field int

	status string
}

// New builds the initial model centered on target.
func New(st *store.Store, cfg config.Config, target time.Time) Model {
	loc := cfg.Location()
	now := time.Now().In(loc)

	ti := textinput.New()
	ti.Placeholder = "new todo"
	ti.CharLimit = 200

	m := Model{
		store:      st,
		theme:      DefaultTheme,
		loc:        loc,
		now:        now,
		today:      datekey.StartOfDay(now),
		hourCursor: 9,
		todoInput:  ti,
	}
	m.navigate(target)
	return m
}

// Run starts the program over an opened store.
func Run(st *store.Store, cfg config.Config, target time.Time) error {
	p := tea.NewProgram(New(st, cfg, target), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return tick() }

// navigate is the sole way the focused date changes: it resets the week
// view around the target, the way the original reloaded the page with a
// new date parameter.
func (m *Model) navigate(target time.Time) {
	m.focusedDate = datekey.StartOfDay(target.In(m.loc))
	m.weekStart = datekey.WeekStart(m.focusedDate)
	m.view = viewWeek
	m.pane = paneTimeline
	m.todoCursor = 0
	m.todoEditing = false
	m.todoInput.Reset()
	m.todoInput.Blur()
	m.sess = nil
	m.status = ""
}

func (m Model) focusedKey() datekey.Key { return datekey.Of(m.focusedDate) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg).In(m.loc)
		return m, tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.sess != nil {
			return m.updateModal(msg)
		}
		switch m.view {
		case viewMonth:
			return m.updateMonth(msg)
		default:
			if m.pane == paneTodos {
				return m.updateTodos(msg)
			}
			return m.updateWeek(msg)
		}
	}
	return m, nil
}

func (m Model) updateWeek(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left":
		m.navigate(m.focusedDate.AddDate(0, 0, -1))
	case "right":
		m.navigate(m.focusedDate.AddDate(0, 0, 1))
	case "shift+left", "pgup", "[":
		m.navigate(m.focusedDate.AddDate(0, 0, -7))
	case "shift+right", "pgdown", "]":
		m.navigate(m.focusedDate.AddDate(0, 0, 7))
	case "up":
		if m.hourCursor > 0 {
			m.hourCursor--
		}
	case "down":
		if m.hourCursor < 23 {
			m.hourCursor++
		}
	case "g":
		m.navigate(m.today)
	case "1", "2", "3", "4", "5", "6", "7":
		// Jump straight to a column, like clicking its day header.
		n := int(msg.String()[0] - '1')
		m.navigate(m.weekStart.AddDate(0, 0, n))
	case "m":
		m.view = viewMonth
		m.monthYear = m.focusedDate.Year()
		m.monthMonth = m.focusedDate.Month()
		m.monthCursor = monthCursorFor(m.focusedDate)
	case "tab", "t":
		m.pane = paneTodos
		m.todoCursor = len(m.store.ListTodos(m.focusedKey()))
		m.todoInput.Focus()
	case "enter":
		m.openSlot()
	}
	return m, nil
}

// openSlot mirrors the original click rules: an occupied slot opens the
// first overlapping event for editing, an empty one opens a create
// session seeded with the slot hour.
func (m *Model) openSlot() {
	key := m.focusedKey()
	col := m.focusedColumn()
	if ev, ok := col.EventAtHour(m.hourCursor); ok {
		m.sess = session.NewEdit(key, ev)
	} else {
		m.sess = session.NewCreate(key, m.hourCursor)
	}
	m.setupModalInputs()
}

func monthCursorFor(d time.Time) int {
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
	return int(first.Weekday()) + d.Day() - 1
}

func (m Model) updateMonth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "m":
		m.view = viewWeek
	case "left":
		if m.monthCursor > 0 {
			m.monthCursor--
		}
	case "right":
		if m.monthCursor < 41 {
			m.monthCursor++
		}
	case "up":
		if m.monthCursor >= 7 {
			m.monthCursor -= 7
		}
	case "down":
		if m.monthCursor <= 34 {
			m.monthCursor += 7
		}
	case "[":
		m.monthMonth--
		if m.monthMonth < time.January {
			m.monthMonth = time.December
			m.monthYear--
		}
		m.monthCursor = 0
	case "]":
		m.monthMonth++
		if m.monthMonth > time.December {
			m.monthMonth = time.January
			m.monthYear++
		}
		m.monthCursor = 0
	case "enter":
		cells := m.monthCells()
		if c := cells[m.monthCursor]; !c.Blank {
			m.navigate(time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, m.loc))
		}
	}
	return m, nil
}

func (m Model) updateTodos(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := m.focusedKey()
	items := m.store.ListTodos(key)

	switch msg.String() {
	case "esc":
		if m.todoEditing {
			m.todoEditing = false
			m.todoInput.Reset()
			m.todoCursor = len(items)
			return m, nil
		}
		m.pane = paneTimeline
		m.todoInput.Blur()
		return m, nil
	case "tab":
		if !m.todoEditing {
			m.pane = paneTimeline
			m.todoInput.Blur()
			return m, nil
		}
	case "up":
		if !m.todoEditing && m.todoCursor > 0 {
			m.todoCursor--
			return m, nil
		}
	case "down":
		if !m.todoEditing && m.todoCursor < len(items) {
			m.todoCursor++
			return m, nil
		}
	case " ":
		if !m.todoEditing && m.todoCursor < len(items) {
			item := items[m.todoCursor]
			checked := !item.Checked
			if err := m.store.UpdateTodo(key, item.ID, nil, &checked); err != nil {
				m.status = err.Error()
			}
			return m, nil
		}
	case "enter":
		return m.commitTodo(items)
	}

	// Everything else edits the input: either the trailing empty field
	// or an item under edit.
	if m.todoEditing || m.todoCursor == len(items) {
		var cmd tea.Cmd
		m.todoInput, cmd = m.todoInput.Update(msg)
		return m, cmd
	}

	// A printable key on an existing item starts editing its content.
	if msg.String() == "e" && m.todoCursor < len(items) {
		m.todoEditing = true
		m.todoInput.SetValue(items[m.todoCursor].Content)
		m.todoInput.CursorEnd()
		m.todoInput.Focus()
	}
	return m, nil
}

func (m Model) commitTodo(items []store.TodoItem) (tea.Model, tea.Cmd) {
	key := m.focusedKey()
	value := m.todoInput.Value()

	if m.todoEditing {
		// Committing an emptied item deletes it.
		if err := m.store.UpdateTodo(key, items[m.todoCursor].ID, &value, nil); err != nil {
			m.status = err.Error()
		}
		m.todoEditing = false
		m.todoInput.Reset()
		m.todoCursor = len(m.store.ListTodos(key))
		return m, nil
	}

	if m.todoCursor == len(items) {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return m, nil
		}
		if _, err := m.store.AppendTodo(key, trimmed, false); err != nil {
			m.status = err.Error()
		}
		m.todoInput.Reset()
		m.todoCursor = len(m.store.ListTodos(key))
	}
	return m, nil
}
