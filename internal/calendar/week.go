package calendar

import (
	"fmt"
	"time"

	"github.com/jiyoungv/haru/internal/datekey"
	"github.com/jiyoungv/haru/internal/store"
)

// HoursPerDay is the number of hour slots in a timeline column.
const HoursPerDay = 24

const minutesPerDay = 24 * 60

// EventSource lists a day's events in insertion order.
type EventSource interface {
	ListEvents(k datekey.Key) []store.Event
}

// PlacedEvent is an event with its presentational offsets into a
// 24-hour column. The fractions are derived at build time, never stored.
type PlacedEvent struct {
	store.Event
	StartMinutes   int
	EndMinutes     int
	TopFraction    float64
	HeightFraction float64
}

// DayColumn is one of the seven timeline columns. Exactly one column of
// a built week is focused; that column also backs the todo pane.
type DayColumn struct {
	Key       datekey.Key
	Date      time.Time
	Label     string
	IsFocused bool
	Events    []PlacedEvent
}

// BuildWeek derives the seven columns starting at weekStart (a Sunday
// at midnight). The column whose key equals the focused date's key is
// marked focused.
func BuildWeek(weekStart, focused time.Time, src EventSource) [7]DayColumn {
	focusedKey := datekey.Of(focused)
	var cols [7]DayColumn
	for i := range cols {
		day := weekStart.AddDate(0, 0, i)
		k := datekey.Of(day)
		col := DayColumn{
			Key:       k,
			Date:      day,
			Label:     fmt.Sprintf("%s %d.%d", day.Weekday(), int(day.Month()), day.Day()),
			IsFocused: k == focusedKey,
		}
		if src != nil {
			for _, ev := range src.ListEvents(k) {
				col.Events = append(col.Events, place(ev))
			}
		}
		cols[i] = col
	}
	return cols
}

func place(ev store.Event) PlacedEvent {
	start, err := datekey.ClockMinutes(ev.StartTime)
	if err != nil {
		start = 0
	}
	end, err := datekey.ClockMinutes(ev.EndTime)
	if err != nil {
		end = start
	}
	return PlacedEvent{
		Event:          ev,
		StartMinutes:   start,
		EndMinutes:     end,
		TopFraction:    float64(start) / minutesPerDay,
		HeightFraction: float64(end-start) / minutesPerDay,
	}
}

// HourOccupied reports whether any event overlaps the hour slot. An
// occupied slot does not open a blank create session; the event block
// itself is the click target.
func (c DayColumn) HourOccupied(hour int) bool {
	lo, hi := hour*60, (hour+1)*60
	for _, ev := range c.Events {
		if ev.StartMinutes < hi && ev.EndMinutes > lo {
			return true
		}
	}
	return false
}

// EventAtHour returns the first event overlapping the hour slot, in
// insertion order, matching which block would take the click.
func (c DayColumn) EventAtHour(hour int) (store.Event, bool) {
	lo, hi := hour*60, (hour+1)*60
	for _, ev := range c.Events {
		if ev.StartMinutes < hi && ev.EndMinutes > lo {
			return ev.Event, true
		}
	}
	return store.Event{}, false
}
