package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert("haru", message, "")
}

// FormatDailyAgenda builds the morning reminder from today's counts.
func FormatDailyAgenda(events, openTodos int) (string, string) {
	title := "Today's agenda"
	msg := fmt.Sprintf("%d events and %d open todos today.", events, openTodos)
	if events == 0 && openTodos == 0 {
		msg = "Nothing scheduled today."
	}
	return title, msg
}
