package schedule

import (
	"testing"
	"time"

	"github.com/jiyoungv/haru/internal/config"
)

func TestNextAtSkipsNonWorkdaysAndHolidays(t *testing.T) {
	cfg := config.Default()
	cfg.Reminder.Time = "08:30"
	cfg.Reminder.Workdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	cfg.Reminder.Timezone = "UTC"

	// Friday 2025-10-24 at 09:00: past today's slot, Sat/Sun skipped.
	now := time.Date(2025, time.October, 24, 9, 0, 0, 0, time.UTC)
	next := NextAt(now, cfg)
	want := time.Date(2025, time.October, 27, 8, 30, 0, 0, time.UTC) // Monday
	if !next.Equal(want) {
		t.Fatalf("NextAt = %v, want %v", next, want)
	}

	// Declaring Monday a holiday pushes to Tuesday.
	cfg.Reminder.Holidays = []string{"2025-10-27"}
	next = NextAt(now, cfg)
	want = time.Date(2025, time.October, 28, 8, 30, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("NextAt with holiday = %v, want %v", next, want)
	}
}

func TestNextAtSameDayBeforeSlot(t *testing.T) {
	cfg := config.Default()
	cfg.Reminder.Time = "17:00"
	cfg.Reminder.Workdays = []string{"Fri"}
	cfg.Reminder.Timezone = "UTC"

	now := time.Date(2025, time.October, 24, 9, 0, 0, 0, time.UTC) // Friday morning
	next := NextAt(now, cfg)
	want := time.Date(2025, time.October, 24, 17, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("NextAt = %v, want %v", next, want)
	}
}
