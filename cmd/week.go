package cmd

import (
	"fmt"

	"github.com/jiyoungv/haru/internal/calendar"
	"github.com/jiyoungv/haru/internal/config"
	"github.com/jiyoungv/haru/internal/datekey"
	"github.com/jiyoungv/haru/internal/db"
	"github.com/jiyoungv/haru/internal/store"
	"github.com/jiyoungv/haru/internal/utils"
	"github.com/spf13/cobra"
)

var (
	weekDate    string
	weekFormat  string
	weekNoColor bool
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the week around a date",
	Long: `Examples:
	haru week                        # this week
	haru week --date 2025-10-22      # the week containing that day
	haru week --date tomorrow`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		loc := cfg.Location()

		focused := utils.ParseTargetOrToday(weekDate, loc)
		weekStart := datekey.WeekStart(focused)

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()
		st, err := store.Open(dbh)
		if err != nil {
			return err
		}

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Format = utils.OutputFormat(weekFormat)
		if weekNoColor {
			renderConfig.Color = false
		}
		renderer := utils.NewRenderer(renderConfig)

		cols := calendar.BuildWeek(weekStart, focused, st)
		for _, col := range cols {
			if renderConfig.Format == utils.FormatDefault {
				mark := "  "
				if col.IsFocused {
					mark = "* "
				}
				fmt.Println(mark + col.Label)
				for _, ev := range col.Events {
					fmt.Printf("    %s-%s  %s\n", ev.StartTime, ev.EndTime, ev.Title)
				}
				continue
			}
			evs := make([]store.Event, len(col.Events))
			for i, ev := range col.Events {
				evs[i] = ev.Event
			}
			out, err := renderer.RenderEvents(col.Key, evs)
			if err != nil {
				return err
			}
			fmt.Print(out)
		}
		return nil
	},
}

func init() {
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Focus date (YYYY-M-D, today, tomorrow, ...)")
	weekCmd.Flags().StringVar(&weekFormat, "format", "default", "Output format: default, json, quiet")
	weekCmd.Flags().BoolVar(&weekNoColor, "no-color", false, "Disable colored output")
}
