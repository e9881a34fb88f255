// Package store owns the two date-keyed collections, events and todos,
// and keeps them durable. Collections live in memory and are written
// back whole, as one JSON blob each, after every mutation; readers that
// run after a mutating call always observe the new state.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jiyoungv/haru/internal/datekey"
	"github.com/jiyoungv/haru/internal/db"
)

const (
	eventsBlob = "events"
	todosBlob  = "todos"
)

// Event is a titled, time-bounded interval attached to one day.
// StartTime and EndTime are zero-padded "HH:MM"; callers must not hand
// the store an event whose start is not strictly before its end (the
// edit session is the validation gate). Within a day, IDs are unique
// and list order is insertion order; the store never re-sorts by time.
type Event struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TodoItem is a checkbox-style text item attached to one day.
type TodoItem struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Checked bool   `json:"checked"`
}

// Store holds both collections over a durable blob store.
type Store struct {
	dbh    *sql.DB
	events map[datekey.Key][]Event
	todos  map[datekey.Key][]TodoItem
}

// Open reads both blobs once. A missing or malformed blob loads as an
// empty collection, never an error.
func Open(dbh *sql.DB) (*Store, error) {
	s := &Store{
		dbh:    dbh,
		events: map[datekey.Key][]Event{},
		todos:  map[datekey.Key][]TodoItem{},
	}
	if err := loadBlob(dbh, eventsBlob, &s.events); err != nil {
		return nil, err
	}
	if err := loadBlob(dbh, todosBlob, &s.todos); err != nil {
		return nil, err
	}
	if s.events == nil {
		s.events = map[datekey.Key][]Event{}
	}
	if s.todos == nil {
		s.todos = map[datekey.Key][]TodoItem{}
	}
	return s, nil
}

func loadBlob[T any](dbh *sql.DB, name string, dst *T) error {
	data, err := db.GetBlob(dbh, name)
	if err != nil {
		return fmt.Errorf("read blob %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	// Garbage on disk degrades to an empty collection.
	_ = json.Unmarshal(data, dst)
	return nil
}

func (s *Store) persistEvents() error {
	data, err := json.Marshal(s.events)
	if err != nil {
		return err
	}
	return db.PutBlob(s.dbh, eventsBlob, data)
}

func (s *Store) persistTodos() error {
	data, err := json.Marshal(s.todos)
	if err != nil {
		return err
	}
	return db.PutBlob(s.dbh, todosBlob, data)
}

// ListEvents returns the day's events in insertion order. The slice is
// a copy; mutating it does not touch the store.
func (s *Store) ListEvents(k datekey.Key) []Event {
	evs := s.events[k]
	out := make([]Event, len(evs))
	copy(out, evs)
	return out
}

// UpsertEvent replaces the entry matching ev.ID in place, preserving
// its position, or appends when no entry matches. Persists before
// returning.
func (s *Store) UpsertEvent(k datekey.Key, ev Event) error {
	evs := s.events[k]
	replaced := false
	for i := range evs {
		if evs[i].ID == ev.ID {
			evs[i] = ev
			replaced = true
			break
		}
	}
	if !replaced {
		evs = append(evs, ev)
	}
	s.events[k] = evs
	return s.persistEvents()
}

// DeleteEvent removes the matching event. An absent ID is a silent
// no-op, not an error; a stale reference must not break the session.
func (s *Store) DeleteEvent(k datekey.Key, id string) error {
	evs := s.events[k]
	kept := evs[:0]
	for _, ev := range evs {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	if len(kept) == len(evs) {
		return nil
	}
	if len(kept) == 0 {
		delete(s.events, k)
	} else {
		s.events[k] = kept
	}
	return s.persistEvents()
}

// ListTodos returns the day's todo items in insertion order, as a copy.
func (s *Store) ListTodos(k datekey.Key) []TodoItem {
	items := s.todos[k]
	out := make([]TodoItem, len(items))
	copy(out, items)
	return out
}

// AppendTodo adds a new item to the end of the day's list and returns it.
func (s *Store) AppendTodo(k datekey.Key, content string, checked bool) (TodoItem, error) {
	item := TodoItem{
		ID:      uuid.NewString(),
		Content: content,
		Checked: checked,
	}
	s.todos[k] = append(s.todos[k], item)
	return item, s.persistTodos()
}

// UpdateTodo applies whichever of newContent/newChecked is non-nil to
// the matching item. Content trimmed down to empty deletes the item
// instead; an absent ID is a silent no-op.
func (s *Store) UpdateTodo(k datekey.Key, id string, newContent *string, newChecked *bool) error {
	items := s.todos[k]
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	if newContent != nil {
		if strings.TrimSpace(*newContent) == "" {
			items = append(items[:idx], items[idx+1:]...)
			if len(items) == 0 {
				delete(s.todos, k)
			} else {
				s.todos[k] = items
			}
			return s.persistTodos()
		}
		items[idx].Content = *newContent
	}
	if newChecked != nil {
		items[idx].Checked = *newChecked
	}
	s.todos[k] = items
	return s.persistTodos()
}

// HasAnyActivity reports whether the day has at least one event or todo.
// The month grid uses this for its presence markers.
func (s *Store) HasAnyActivity(k datekey.Key) bool {
	return len(s.events[k]) > 0 || len(s.todos[k]) > 0
}
