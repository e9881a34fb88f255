package ui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jiyoungv/haru/internal/config"
	"github.com/jiyoungv/haru/internal/db"
	"github.com/jiyoungv/haru/internal/store"
)

func setupTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	dbh, err := db.OpenAt(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	st, err := store.Open(dbh)
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	cfg := config.Default()
	target := time.Date(2025, time.October, 22, 0, 0, 0, 0, time.Local)
	return New(st, cfg, target), st
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func key(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestArrowKeysMoveFocusByDay(t *testing.T) {
	m, _ := setupTestModel(t)
	if m.focusedKey() != "2025-10-22" {
		t.Fatalf("initial focus = %s", m.focusedKey())
	}

	m = press(t, m, key("right"))
	if m.focusedKey() != "2025-10-23" {
		t.Fatalf("after right focus = %s", m.focusedKey())
	}

	m = press(t, m, key("left"), key("left"))
	if m.focusedKey() != "2025-10-21" {
		t.Fatalf("after lefts focus = %s", m.focusedKey())
	}
	// Week start follows the focus across a week boundary.
	m = press(t, m, key("left"), key("left"), key("left"))
	if got := m.weekStart.Weekday(); got != time.Sunday {
		t.Fatalf("week start weekday = %v", got)
	}
	if m.focusedKey() != "2025-10-18" {
		t.Fatalf("focus = %s", m.focusedKey())
	}
}

func TestEnterOnEmptySlotCreatesEventThroughModal(t *testing.T) {
	m, st := setupTestModel(t)

	// Move the hour cursor from 9 to 14, then open the slot.
	m = press(t, m, key("down"), key("down"), key("down"), key("down"), key("down"))
	if m.hourCursor != 14 {
		t.Fatalf("hour cursor = %d", m.hourCursor)
	}
	m = press(t, m, key("enter"))
	if m.sess == nil || m.sess.Editing() {
		t.Fatalf("expected a create session, got %+v", m.sess)
	}
	if m.sess.StartHour != "14" || m.sess.EndHour != "15" {
		t.Fatalf("seed = %s-%s", m.sess.StartHour, m.sess.EndHour)
	}

	m = typeText(t, m, "Standup")
	// Enter walks the four time fields, the final enter saves.
	m = press(t, m, key("enter"), key("enter"), key("enter"), key("enter"), key("enter"))
	if m.sess != nil {
		t.Fatalf("session still open after save")
	}

	evs := st.ListEvents("2025-10-22")
	if len(evs) != 1 {
		t.Fatalf("expected 1 event, got %d", len(evs))
	}
	if evs[0].Title != "Standup" || evs[0].StartTime != "14:00" || evs[0].EndTime != "15:00" {
		t.Fatalf("stored event = %+v", evs[0])
	}
}

func TestEnterOnOccupiedSlotOpensEditSession(t *testing.T) {
	m, st := setupTestModel(t)
	if err := st.UpsertEvent("2025-10-22", store.Event{
		ID: "5", Title: "Planning", StartTime: "09:00", EndTime: "10:00",
	}); err != nil {
		t.Fatalf("UpsertEvent failed: %v", err)
	}

	// Cursor starts at hour 9, which the event occupies.
	m = press(t, m, key("enter"))
	if m.sess == nil || !m.sess.Editing() || m.sess.EditingID != "5" {
		t.Fatalf("expected edit session for id 5, got %+v", m.sess)
	}
}

func TestRejectedSubmitKeepsModalOpenAndStoreUnchanged(t *testing.T) {
	m, st := setupTestModel(t)

	m = press(t, m, key("enter")) // open create at hour 9
	// No title: walk every field and try to save.
	m = press(t, m, key("enter"), key("enter"), key("enter"), key("enter"), key("enter"))
	if m.sess == nil {
		t.Fatalf("rejected submit closed the session")
	}
	if got := st.ListEvents("2025-10-22"); len(got) != 0 {
		t.Fatalf("rejected submit stored %+v", got)
	}

	m = press(t, m, key("esc"))
	if m.sess != nil {
		t.Fatalf("esc did not close the session")
	}
}

func TestTodoPaneAddsAndTogglesItems(t *testing.T) {
	m, st := setupTestModel(t)

	m = press(t, m, key("tab"))
	if m.pane != paneTodos {
		t.Fatalf("tab did not focus the todo pane")
	}

	m = typeText(t, m, "Buy milk")
	m = press(t, m, key("enter"))

	items := st.ListTodos("2025-10-22")
	if len(items) != 1 || items[0].Content != "Buy milk" || items[0].Checked {
		t.Fatalf("unexpected todos: %+v", items)
	}
	// Cursor sits on the fresh trailing empty field.
	if m.todoCursor != 1 {
		t.Fatalf("todo cursor = %d", m.todoCursor)
	}

	// Move up to the item and toggle it.
	m = press(t, m, key("up"), key(" "))
	items = st.ListTodos("2025-10-22")
	if !items[0].Checked {
		t.Fatalf("space did not check the item")
	}
}

func TestMonthViewEnterNavigatesToDay(t *testing.T) {
	m, _ := setupTestModel(t)

	m = press(t, m, key("m"))
	if m.view != viewMonth {
		t.Fatalf("m did not open the month view")
	}
	// Cursor starts on the focused day's cell.
	cells := m.monthCells()
	if c := cells[m.monthCursor]; c.Blank || c.Day != 22 {
		t.Fatalf("month cursor on %+v", c)
	}

	m = press(t, m, key("right"), key("enter"))
	if m.view != viewWeek {
		t.Fatalf("enter did not return to the week view")
	}
	if m.focusedKey() != "2025-10-23" {
		t.Fatalf("focus after month navigation = %s", m.focusedKey())
	}
}
