package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jiyoungv/haru/internal/session"
)

const (
	fieldTitle = iota
	fieldStartHour
	fieldStartMinute
	fieldEndHour
	fieldEndMinute
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Start hour", "Start min", "End hour", "End min"}

func (m *Model) setupModalInputs() {
	values := [fieldCount]string{
		m.sess.Title,
		m.sess.StartHour,
		m.sess.StartMinute,
		m.sess.EndHour,
		m.sess.EndMinute,
	}
	for i := range m.edits {
		ti := textinput.New()
		ti.SetValue(values[i])
		ti.CursorEnd()
		if i == fieldTitle {
			ti.CharLimit = 120
			ti.Width = 30
		} else {
			ti.CharLimit = 2
			ti.Width = 4
		}
		m.edits[i] = ti
	}
	m.field = fieldTitle
	m.edits[fieldTitle].Focus()
}

func (m *Model) focusField(i int) {
	m.edits[m.field].Blur()
	m.field = i
	m.edits[m.field].Focus()
	m.edits[m.field].CursorEnd()
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.sess = nil
		return m, nil
	case "tab", "down":
		m.focusField((m.field + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.focusField((m.field + fieldCount - 1) % fieldCount)
		return m, nil
	case "ctrl+d":
		if m.sess.Editing() {
			if err := m.sess.Delete(m.store); err != nil {
				m.status = err.Error()
			}
			m.sess = nil
		}
		return m, nil
	case "enter":
		// Enter walks the fields; on the last one it saves, the way the
		// original dialog chained its inputs.
		if m.field < fieldCount-1 {
			m.focusField(m.field + 1)
			return m, nil
		}
		return m.submitModal()
	}

	var cmd tea.Cmd
	m.edits[m.field], cmd = m.edits[m.field].Update(msg)
	if m.field != fieldTitle {
		// Time fields take at most two digits, nothing else.
		m.edits[m.field].SetValue(session.SanitizeField(m.edits[m.field].Value()))
		m.edits[m.field].CursorEnd()
	}
	return m, cmd
}

func (m Model) submitModal() (tea.Model, tea.Cmd) {
	m.sess.Title = m.edits[fieldTitle].Value()
	m.sess.StartHour = m.edits[fieldStartHour].Value()
	m.sess.StartMinute = m.edits[fieldStartMinute].Value()
	m.sess.EndHour = m.edits[fieldEndHour].Value()
	m.sess.EndMinute = m.edits[fieldEndMinute].Value()

	_, err := m.sess.Submit(m.store)
	switch {
	case errors.Is(err, session.ErrRejected):
		// Hard validation gate: nothing saves, the dialog stays open.
		return m, nil
	case err != nil:
		m.status = err.Error()
	}
	m.sess = nil
	return m, nil
}

func (m Model) viewModal() string {
	header := "Add event"
	hint := "enter next/save · esc cancel"
	if m.sess.Editing() {
		header = "Edit event"
		hint = "enter next/save · ctrl+d delete · esc cancel"
	}

	rows := []string{
		m.theme.Title.Render(header),
		m.theme.Hint.Render(string(m.sess.Date)),
		"",
	}
	for i := 0; i < fieldCount; i++ {
		label := m.theme.Label.Render(fieldLabels[i] + ": ")
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, m.edits[i].View()))
	}
	rows = append(rows, "", m.theme.Hint.Render(hint))

	return m.theme.Border.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
