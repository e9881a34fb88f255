// Package calendar derives the two read-side views of the store: the
// 42-cell month grid and the seven-column week timeline. Both are
// rebuilt whole from their inputs on every render; the grids are cheap
// and an incremental path would only buy bugs.
package calendar

import (
	"time"

	"github.com/jiyoungv/haru/internal/datekey"
)

// MonthCells is the fixed grid size: 6 rows of 7, enough for any month
// at any starting weekday. Months that need the 6th row (a 31-day month
// starting on Friday or Saturday, or a 30-day month starting on
// Saturday) spill into it; everything after the last day stays blank.
const MonthCells = 42

// ActivitySource answers whether a day has any events or todos.
type ActivitySource interface {
	HasAnyActivity(k datekey.Key) bool
}

// MonthCell is one slot of the month grid. Blank cells pad the grid
// before the 1st and after the last day.
type MonthCell struct {
	Blank       bool
	Year        int
	Month       time.Month
	Day         int
	Key         datekey.Key
	IsToday     bool
	HasActivity bool
}

// BuildMonth lays out year/month as a Sunday-first grid. now is the
// clock captured at view start; it decides IsToday.
func BuildMonth(year int, month time.Month, now time.Time, src ActivitySource) []MonthCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday())

	cells := make([]MonthCell, 0, MonthCells)
	for i := 0; i < leading; i++ {
		cells = append(cells, MonthCell{Blank: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		k := datekey.FromParts(year, int(month), day, now.Location())
		cells = append(cells, MonthCell{
			Year:        year,
			Month:       month,
			Day:         day,
			Key:         k,
			IsToday:     year == now.Year() && month == now.Month() && day == now.Day(),
			HasActivity: src != nil && src.HasAnyActivity(k),
		})
	}
	for len(cells) < MonthCells {
		cells = append(cells, MonthCell{Blank: true})
	}
	return cells
}
