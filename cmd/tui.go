package cmd

import (
	"github.com/jiyoungv/haru/internal/config"
	"github.com/jiyoungv/haru/internal/db"
	"github.com/jiyoungv/haru/internal/store"
	"github.com/jiyoungv/haru/internal/ui"
	"github.com/jiyoungv/haru/internal/utils"
	"github.com/spf13/cobra"
)

var tuiDate string

// tuiCmd launches the Bubble Tea TUI.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the calendar TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()

		st, err := store.Open(dbh)
		if err != nil {
			return err
		}

		// A bad --date falls back to today, same as a bad URL date did.
		target := utils.ParseTargetOrToday(tuiDate, cfg.Location())
		return ui.Run(st, cfg, target)
	},
}

func init() {
	tuiCmd.Flags().StringVar(&tuiDate, "date", "", "Focus date (YYYY-M-D, today, tomorrow, ...)")
}
