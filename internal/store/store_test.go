package store

import (
	"path/filepath"
	"testing"

	"github.com/jiyoungv/haru/internal/datekey"
	"github.com/jiyoungv/haru/internal/db"
)

const day = datekey.Key("2025-10-22")

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbh, err := db.OpenAt(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() {
		if err := dbh.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	s, err := Open(dbh)
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	return s
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestUpsertEventAppendsThenReplacesInPlace(t *testing.T) {
	s := setupTestStore(t)

	a := Event{ID: "a", Title: "Standup", StartTime: "09:00", EndTime: "09:30"}
	b := Event{ID: "b", Title: "Review", StartTime: "14:00", EndTime: "15:00"}
	if err := s.UpsertEvent(day, a); err != nil {
		t.Fatalf("UpsertEvent failed: %v", err)
	}
	if err := s.UpsertEvent(day, b); err != nil {
		t.Fatalf("UpsertEvent failed: %v", err)
	}

	a.EndTime = "10:00"
	if err := s.UpsertEvent(day, a); err != nil {
		t.Fatalf("UpsertEvent replace failed: %v", err)
	}

	evs := s.ListEvents(day)
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if evs[0].ID != "a" || evs[0].EndTime != "10:00" {
		t.Fatalf("replace did not preserve position: %+v", evs)
	}
	if evs[1].ID != "b" {
		t.Fatalf("second entry moved: %+v", evs)
	}
}

func TestUpsertEventIdempotent(t *testing.T) {
	s := setupTestStore(t)
	ev := Event{ID: "x", Title: "Lunch", StartTime: "12:00", EndTime: "13:00"}
	if err := s.UpsertEvent(day, ev); err != nil {
		t.Fatalf("UpsertEvent failed: %v", err)
	}
	if err := s.UpsertEvent(day, ev); err != nil {
		t.Fatalf("UpsertEvent failed: %v", err)
	}
	if got := len(s.ListEvents(day)); got != 1 {
		t.Fatalf("expected 1 event after identical upserts, got %d", got)
	}
}

func TestDeleteEventAbsentIDIsNoop(t *testing.T) {
	s := setupTestStore(t)
	ev := Event{ID: "x", Title: "Lunch", StartTime: "12:00", EndTime: "13:00"}
	if err := s.UpsertEvent(day, ev); err != nil {
		t.Fatalf("UpsertEvent failed: %v", err)
	}
	if err := s.DeleteEvent(day, "missing"); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
	evs := s.ListEvents(day)
	if len(evs) != 1 || evs[0].ID != "x" {
		t.Fatalf("list changed by no-op delete: %+v", evs)
	}
}

func TestDeleteEventPrunesEmptyDay(t *testing.T) {
	s := setupTestStore(t)
	if err := s.UpsertEvent(day, Event{ID: "x", Title: "T", StartTime: "08:00", EndTime: "09:00"}); err != nil {
		t.Fatalf("UpsertEvent failed: %v", err)
	}
	if err := s.DeleteEvent(day, "x"); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
	if s.HasAnyActivity(day) {
		t.Fatalf("day still reports activity after deleting its only event")
	}
}

func TestHasAnyActivity(t *testing.T) {
	s := setupTestStore(t)
	other := datekey.Key("2025-10-23")

	if s.HasAnyActivity(day) {
		t.Fatalf("fresh day reports activity")
	}
	if err := s.UpsertEvent(day, Event{ID: "x", Title: "T", StartTime: "08:00", EndTime: "09:00"}); err != nil {
		t.Fatalf("UpsertEvent failed: %v", err)
	}
	if !s.HasAnyActivity(day) {
		t.Fatalf("day with an event reports no activity")
	}
	if _, err := s.AppendTodo(other, "buy milk", false); err != nil {
		t.Fatalf("AppendTodo failed: %v", err)
	}
	if !s.HasAnyActivity(other) {
		t.Fatalf("day with a todo reports no activity")
	}
	if s.HasAnyActivity("2025-10-24") {
		t.Fatalf("untouched day reports activity")
	}
}

func TestAppendTodoAssignsUniqueIDs(t *testing.T) {
	s := setupTestStore(t)
	first, err := s.AppendTodo(day, "one", false)
	if err != nil {
		t.Fatalf("AppendTodo failed: %v", err)
	}
	second, err := s.AppendTodo(day, "two", true)
	if err != nil {
		t.Fatalf("AppendTodo failed: %v", err)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("ids not unique: %q vs %q", first.ID, second.ID)
	}
	items := s.ListTodos(day)
	if len(items) != 2 || items[0].Content != "one" || !items[1].Checked {
		t.Fatalf("unexpected todos: %+v", items)
	}
}

func TestUpdateTodoContentAndChecked(t *testing.T) {
	s := setupTestStore(t)
	item, err := s.AppendTodo(day, "draft", false)
	if err != nil {
		t.Fatalf("AppendTodo failed: %v", err)
	}

	if err := s.UpdateTodo(day, item.ID, strp("final"), nil); err != nil {
		t.Fatalf("UpdateTodo content failed: %v", err)
	}
	if err := s.UpdateTodo(day, item.ID, nil, boolp(true)); err != nil {
		t.Fatalf("UpdateTodo checked failed: %v", err)
	}

	items := s.ListTodos(day)
	if len(items) != 1 || items[0].Content != "final" || !items[0].Checked {
		t.Fatalf("unexpected todos: %+v", items)
	}

	// Absent ID is a silent no-op.
	if err := s.UpdateTodo(day, "missing", strp("x"), nil); err != nil {
		t.Fatalf("UpdateTodo on missing id failed: %v", err)
	}
	if got := len(s.ListTodos(day)); got != 1 {
		t.Fatalf("no-op update changed the list: %d items", got)
	}
}

func TestUpdateTodoTrimToEmptyDeletes(t *testing.T) {
	s := setupTestStore(t)
	item, err := s.AppendTodo(day, "ephemeral", false)
	if err != nil {
		t.Fatalf("AppendTodo failed: %v", err)
	}
	if err := s.UpdateTodo(day, item.ID, strp("   "), nil); err != nil {
		t.Fatalf("UpdateTodo failed: %v", err)
	}
	if got := s.ListTodos(day); len(got) != 0 {
		t.Fatalf("expected empty list after trim-to-empty, got %+v", got)
	}
	if s.HasAnyActivity(day) {
		t.Fatalf("pruned day still reports activity")
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	dbh, err := db.OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	s, err := Open(dbh)
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	if err := s.UpsertEvent(day, Event{ID: "x", Title: "Dinner", StartTime: "19:00", EndTime: "20:00"}); err != nil {
		t.Fatalf("UpsertEvent failed: %v", err)
	}
	if _, err := s.AppendTodo(day, "pack bag", false); err != nil {
		t.Fatalf("AppendTodo failed: %v", err)
	}
	if err := dbh.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}

	dbh2, err := db.OpenAt(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer dbh2.Close()
	s2, err := Open(dbh2)
	if err != nil {
		t.Fatalf("store.Open after reopen failed: %v", err)
	}
	evs := s2.ListEvents(day)
	if len(evs) != 1 || evs[0].Title != "Dinner" {
		t.Fatalf("events did not survive reopen: %+v", evs)
	}
	todos := s2.ListTodos(day)
	if len(todos) != 1 || todos[0].Content != "pack bag" {
		t.Fatalf("todos did not survive reopen: %+v", todos)
	}
}

func TestMalformedBlobLoadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	dbh, err := db.OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	defer dbh.Close()

	if err := db.PutBlob(dbh, "events", []byte("{not json")); err != nil {
		t.Fatalf("PutBlob failed: %v", err)
	}
	s, err := Open(dbh)
	if err != nil {
		t.Fatalf("store.Open on garbage blob failed: %v", err)
	}
	if got := s.ListEvents(day); len(got) != 0 {
		t.Fatalf("expected empty collection, got %+v", got)
	}
	// The store must stay writable afterwards.
	if err := s.UpsertEvent(day, Event{ID: "x", Title: "T", StartTime: "08:00", EndTime: "09:00"}); err != nil {
		t.Fatalf("UpsertEvent after garbage load failed: %v", err)
	}
}
