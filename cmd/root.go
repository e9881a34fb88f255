package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jiyoungv/haru/internal/config"
	"github.com/jiyoungv/haru/internal/datekey"
	"github.com/jiyoungv/haru/internal/db"
	"github.com/jiyoungv/haru/internal/notify"
	"github.com/jiyoungv/haru/internal/schedule"
	"github.com/jiyoungv/haru/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "haru",
	Short: "Calendar & per-day todo tracking",
}

func Execute() error { return rootCmd.Execute() }

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Reminder.Enabled && os.Getenv("HARU_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			go func() {
				schedule.RunConfigured(ctx, cfg, func() {
					events, todos := todayCounts(cfg)
					title, msg := notify.FormatDailyAgenda(events, todos)
					_ = notify.Info(title, msg)
				})
			}()
			// On process exit the signal context cancels the loop.
			_ = cancel
		}
		return nil
	}

	rootCmd.AddCommand(weekCmd, monthCmd, eventCmd, todoCmd, agendaCmd, tuiCmd)
}

// todayCounts reads today's event count and open-todo count for the
// reminder. Failures degrade to zero; a reminder must never crash.
func todayCounts(cfg config.Config) (int, int) {
	dbh, err := db.Open()
	if err != nil {
		return 0, 0
	}
	defer dbh.Close()
	st, err := store.Open(dbh)
	if err != nil {
		return 0, 0
	}
	key := datekey.Of(time.Now().In(cfg.Location()))
	open := 0
	for _, item := range st.ListTodos(key) {
		if !item.Checked {
			open++
		}
	}
	return len(st.ListEvents(key)), open
}
