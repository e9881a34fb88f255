package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jiyoungv/haru/internal/config"
	"github.com/jiyoungv/haru/internal/datekey"
	"github.com/jiyoungv/haru/internal/db"
	"github.com/jiyoungv/haru/internal/session"
	"github.com/jiyoungv/haru/internal/store"
	"github.com/jiyoungv/haru/internal/utils"
	"github.com/spf13/cobra"
)

var (
	eventDate   string
	eventStart  string
	eventEnd    string
	eventID     string
	eventFormat string
	eventIDs    bool
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage events",
}

var eventAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a time-boxed event",
	Long: `Examples:
	haru event add "Standup" --start 09:00 --end 09:30
	haru event add "Dinner" --date tomorrow --start 19:00 --end 20:30`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, dbh, key, err := openStoreAt(eventDate)
		if err != nil {
			return err
		}
		defer dbh.Close()

		// Funnel through the same validation gate the dialog uses.
		sess := session.NewCreate(key, -1)
		sess.Title = strings.Join(args, " ")
		if err := seedClock(sess, eventStart, eventEnd); err != nil {
			return err
		}
		ev, err := sess.Submit(st)
		if errors.Is(err, session.ErrRejected) {
			return fmt.Errorf("invalid event: need a title and start < end within 00:00-23:59")
		}
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s %s-%s on %s.\n", ev.Title, ev.StartTime, ev.EndTime, key)
		return nil
	},
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's events",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, dbh, key, err := openStoreAt(eventDate)
		if err != nil {
			return err
		}
		defer dbh.Close()

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Format = utils.OutputFormat(eventFormat)
		renderConfig.ShowID = eventIDs
		out, err := utils.NewRenderer(renderConfig).RenderEvents(key, st.ListEvents(key))
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var eventDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an event by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		if eventID == "" {
			return fmt.Errorf("--id is required (see: haru event list --ids)")
		}
		st, dbh, key, err := openStoreAt(eventDate)
		if err != nil {
			return err
		}
		defer dbh.Close()

		// Deleting an id that is not there is a quiet no-op.
		if err := st.DeleteEvent(key, eventID); err != nil {
			return err
		}
		fmt.Println("Deleted.")
		return nil
	},
}

// openStoreAt opens the store and resolves a --date value to a key.
func openStoreAt(date string) (*store.Store, *sql.DB, datekey.Key, error) {
	cfg, _ := config.Load()
	target := utils.ParseTargetOrToday(date, cfg.Location())

	dbh, err := db.Open()
	if err != nil {
		return nil, nil, "", err
	}
	st, err := store.Open(dbh)
	if err != nil {
		_ = dbh.Close()
		return nil, nil, "", err
	}
	return st, dbh, datekey.Of(target), nil
}

// seedClock splits "HH:MM" flags into the session's hour/minute fields.
func seedClock(sess *session.Session, start, end string) error {
	sm, err := datekey.ClockMinutes(start)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	em, err := datekey.ClockMinutes(end)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}
	sess.StartHour, sess.StartMinute = strconv.Itoa(sm/60), strconv.Itoa(sm%60)
	sess.EndHour, sess.EndMinute = strconv.Itoa(em/60), strconv.Itoa(em%60)
	return nil
}

func init() {
	eventCmd.AddCommand(eventAddCmd, eventListCmd, eventDeleteCmd)

	eventCmd.PersistentFlags().StringVar(&eventDate, "date", "", "Day (YYYY-M-D, today, tomorrow, ...)")
	eventAddCmd.Flags().StringVar(&eventStart, "start", "09:00", "Start time HH:MM")
	eventAddCmd.Flags().StringVar(&eventEnd, "end", "10:00", "End time HH:MM")
	eventDeleteCmd.Flags().StringVar(&eventID, "id", "", "Event id")
	eventListCmd.Flags().StringVar(&eventFormat, "format", "default", "Output format: default, json, quiet")
	eventListCmd.Flags().BoolVar(&eventIDs, "ids", false, "Show event ids")
}
