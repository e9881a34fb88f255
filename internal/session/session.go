// Package session holds the transient state of one in-flight event
// edit. A session validates its fields on submit and only then touches
// the store; a rejected submit changes nothing and leaves the session
// open.
package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jiyoungv/haru/internal/datekey"
	"github.com/jiyoungv/haru/internal/store"
)

// ErrRejected means the submitted fields failed validation. The caller
// shows nothing; the dialog simply stays open.
var ErrRejected = errors.New("edit rejected")

// defaultStartHour seeds a create session opened without an hour slot.
const defaultStartHour = 9

// Session is the modal's field state. Time fields hold raw text so the
// dialog can round-trip whatever the user typed; they become numbers
// only at submit.
type Session struct {
	Date      datekey.Key
	EditingID string // non-empty: submit replaces this event

	Title       string
	StartHour   string
	StartMinute string
	EndHour     string
	EndMinute   string
}

// NewCreate opens a blank session for the day, seeded from the clicked
// hour slot. hour < 0 means no slot context; start defaults to 9:00.
// End is always start+1:00.
func NewCreate(date datekey.Key, hour int) *Session {
	if hour < 0 {
		hour = defaultStartHour
	}
	return &Session{
		Date:        date,
		StartHour:   strconv.Itoa(hour),
		StartMinute: "0",
		EndHour:     strconv.Itoa(hour + 1),
		EndMinute:   "0",
	}
}

// NewEdit opens a session prefilled from an existing event.
func NewEdit(date datekey.Key, ev store.Event) *Session {
	s := &Session{
		Date:      date,
		EditingID: ev.ID,
		Title:     ev.Title,
	}
	if start, err := datekey.ClockMinutes(ev.StartTime); err == nil {
		s.StartHour, s.StartMinute = strconv.Itoa(start/60), strconv.Itoa(start%60)
	}
	if end, err := datekey.ClockMinutes(ev.EndTime); err == nil {
		s.EndHour, s.EndMinute = strconv.Itoa(end/60), strconv.Itoa(end%60)
	}
	return s
}

// Editing reports whether submit will replace an existing event.
func (s *Session) Editing() bool { return s.EditingID != "" }

// SanitizeField strips non-digits and clamps to two characters. The
// dialog applies it to the time fields on every keystroke.
func SanitizeField(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == 2 {
			break
		}
	}
	return b.String()
}

// Submit validates the fields and commits to the store. The gate is all
// or nothing: empty title, a non-numeric or out-of-range time field, a
// missing date context, or start >= end all reject without touching the
// store. On success the saved event is returned and the session is done.
func (s *Session) Submit(st *store.Store) (store.Event, error) {
	title := strings.TrimSpace(s.Title)
	if title == "" || s.Date == "" {
		return store.Event{}, ErrRejected
	}

	sh, err1 := strconv.Atoi(strings.TrimSpace(s.StartHour))
	sm, err2 := strconv.Atoi(strings.TrimSpace(s.StartMinute))
	eh, err3 := strconv.Atoi(strings.TrimSpace(s.EndHour))
	em, err4 := strconv.Atoi(strings.TrimSpace(s.EndMinute))
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return store.Event{}, ErrRejected
	}
	if sh < 0 || sh > 23 || eh < 0 || eh > 23 || sm < 0 || sm > 59 || em < 0 || em > 59 {
		return store.Event{}, ErrRejected
	}
	if sh*60+sm >= eh*60+em {
		return store.Event{}, ErrRejected
	}

	ev := store.Event{
		ID:        s.EditingID,
		Title:     title,
		StartTime: datekey.Clock(sh, sm),
		EndTime:   datekey.Clock(eh, em),
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if err := st.UpsertEvent(s.Date, ev); err != nil {
		return store.Event{}, err
	}
	return ev, nil
}

// Delete removes the event under edit. Only an editing session can
// delete; a create session has nothing to remove.
func (s *Session) Delete(st *store.Store) error {
	if !s.Editing() {
		return nil
	}
	return st.DeleteEvent(s.Date, s.EditingID)
}
