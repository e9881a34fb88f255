package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jiyoungv/haru/internal/calendar"
	"github.com/jiyoungv/haru/internal/version"
)

const colWidth = 12

func (m Model) monthCells() []calendar.MonthCell {
	return calendar.BuildMonth(m.monthYear, m.monthMonth, m.now, m.store)
}

func (m Model) weekColumns() [7]calendar.DayColumn {
	return calendar.BuildWeek(m.weekStart, m.focusedDate, m.store)
}

func (m Model) focusedColumn() calendar.DayColumn {
	cols := m.weekColumns()
	for _, c := range cols {
		if c.IsFocused {
			return c
		}
	}
	return cols[0]
}

func (m Model) View() string {
	var body string
	switch {
	case m.sess != nil:
		body = m.viewModal()
	case m.view == viewMonth:
		body = m.viewMonth()
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.viewWeek(), "  ", m.viewTodos())
	}

	parts := []string{m.viewHeader(), "", body, "", m.viewFooter()}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewHeader() string {
	clock := m.now.Format("2006-01-02 15:04:05")
	focused := m.focusedDate.Format("Monday, Jan 2 2006")
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Title.Render(clock),
		m.theme.Hint.Render("  ·  "),
		m.theme.Value.Render(focused),
	)
}

func (m Model) viewFooter() string {
	var hint string
	switch {
	case m.sess != nil:
		hint = "tab field · enter next/save · esc cancel"
	case m.view == viewMonth:
		hint = "arrows move · [/] month · enter open week · esc back · q quit"
	case m.pane == paneTodos:
		hint = "up/down move · space check · e edit · enter save · esc back"
	default:
		hint = "←/→ day · [/] week · 1-7 jump · ↑/↓ hour · enter edit slot · m month · tab todos · g today · q quit"
	}
	line := m.theme.Hint.Render(hint)
	if m.status != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Error.Render(m.status), "  ", line)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, line, "  ", m.theme.Hint.Render(version.GetShortVersion()))
}

// viewMonth draws the fixed 42-cell grid, six rows of seven.
func (m Model) viewMonth() string {
	cells := m.monthCells()

	title := m.theme.Title.Render(fmt.Sprintf("%s %d", m.monthMonth, m.monthYear))
	var header strings.Builder
	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		header.WriteString(m.theme.Label.Render(pad(wd, 6)))
	}

	rows := []string{title, header.String()}
	for r := 0; r < 6; r++ {
		var row strings.Builder
		for c := 0; c < 7; c++ {
			idx := r*7 + c
			cell := cells[idx]
			text := "      "
			if !cell.Blank {
				marker := " "
				if cell.HasActivity {
					marker = m.theme.Marker.Render("•")
				}
				day := fmt.Sprintf("%2d", cell.Day)
				switch {
				case idx == m.monthCursor:
					day = m.theme.Cursor.Render(day)
				case cell.IsToday:
					day = m.theme.Today.Render(day)
				}
				text = " " + day + marker + "  "
			} else if idx == m.monthCursor {
				text = " " + m.theme.Cursor.Render("  ") + "   "
			}
			row.WriteString(text)
		}
		rows = append(rows, row.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// viewWeek draws seven hour columns side by side. Events occupy their
// start hour row with a bar and title, and bars alone on continuation
// rows; the hour cursor highlights in the focused column only.
func (m Model) viewWeek() string {
	cols := m.weekColumns()

	headers := make([]string, 7)
	grids := make([][calendar.HoursPerDay]string, 7)
	for i, col := range cols {
		short := fmt.Sprintf("%s %d.%d", col.Date.Weekday().String()[:3], int(col.Date.Month()), col.Date.Day())
		label := pad(short, colWidth)
		if col.IsFocused {
			label = m.theme.Focused.Render(label)
		} else {
			label = m.theme.Label.Render(label)
		}
		headers[i] = label
		grids[i] = m.renderColumn(col)
	}

	lines := []string{"      " + strings.Join(headers, " ")}
	for hour := 0; hour < calendar.HoursPerDay; hour++ {
		gutter := m.theme.Hint.Render(fmt.Sprintf("%02d:00 ", hour))
		row := make([]string, 7)
		for i := range grids {
			row[i] = grids[i][hour]
		}
		lines = append(lines, gutter+strings.Join(row, " "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderColumn(col calendar.DayColumn) [calendar.HoursPerDay]string {
	var rows [calendar.HoursPerDay]string
	for h := 0; h < calendar.HoursPerDay; h++ {
		rows[h] = pad("", colWidth)
	}
	for _, ev := range col.Events {
		startHour := ev.StartMinutes / 60
		endHour := (ev.EndMinutes + 59) / 60
		for h := startHour; h < endHour && h < calendar.HoursPerDay; h++ {
			if h == startHour {
				rows[h] = m.theme.EventBar.Render(pad("▌"+ev.Title, colWidth))
			} else {
				rows[h] = m.theme.EventBar.Render(pad("▌", colWidth))
			}
		}
	}
	if col.IsFocused {
		rows[m.hourCursor] = m.theme.Cursor.Render(stripAnsiPad(rows[m.hourCursor]))
	}
	return rows
}

// stripAnsiPad re-renders the cursor row as plain padded text so the
// reverse-video style applies to the whole cell.
func stripAnsiPad(s string) string {
	return pad(stripAnsi(s), colWidth)
}

func stripAnsi(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (m Model) viewTodos() string {
	key := m.focusedKey()
	items := m.store.ListTodos(key)

	rows := []string{m.theme.Title.Render("Todo · " + string(key))}
	n := 0
	for i, item := range items {
		n++
		mark := "[ ]"
		content := item.Content
		if item.Checked {
			mark = "[v]"
			content = m.theme.Checked.Render(content)
		}
		if m.todoEditing && m.pane == paneTodos && i == m.todoCursor {
			rows = append(rows, fmt.Sprintf("%d. %s %s", n, mark, m.todoInput.View()))
			continue
		}
		line := fmt.Sprintf("%d. %s %s", n, mark, content)
		if m.pane == paneTodos && !m.todoEditing && i == m.todoCursor {
			line = m.theme.Cursor.Render(line)
		}
		rows = append(rows, line)
	}

	// Trailing empty field, the affordance for adding a new item.
	trailing := m.todoInput.View()
	if m.todoEditing {
		trailing = m.theme.Blank.Render("…")
	} else if m.pane == paneTodos && m.todoCursor == len(items) {
		trailing = m.theme.Cursor.Render(" ") + trailing
	}
	rows = append(rows, trailing)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func pad(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}
