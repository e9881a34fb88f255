package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/jiyoungv/haru/internal/calendar"
	"github.com/jiyoungv/haru/internal/config"
	"github.com/jiyoungv/haru/internal/db"
	"github.com/jiyoungv/haru/internal/store"
	"github.com/spf13/cobra"
)

var (
	monthYear  int
	monthMonth int
)

// monthCmd prints the 42-cell month grid. Days with any events or
// todos carry a dot marker; today is bracketed.
var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show a month grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.Load()
		now := time.Now().In(cfg.Location())

		year, month := monthYear, time.Month(monthMonth)
		if year == 0 {
			year = now.Year()
		}
		if monthMonth == 0 {
			month = now.Month()
		}
		if month < time.January || month > time.December {
			return fmt.Errorf("invalid month %d", monthMonth)
		}

		dbh, err := db.Open()
		if err != nil {
			return err
		}
		defer dbh.Close()
		st, err := store.Open(dbh)
		if err != nil {
			return err
		}

		cells := calendar.BuildMonth(year, month, now, st)

		fmt.Printf("%s %d\n", month, year)
		fmt.Println(" Sun   Mon   Tue   Wed   Thu   Fri   Sat")
		for row := 0; row < 6; row++ {
			var sb strings.Builder
			for col := 0; col < 7; col++ {
				cell := cells[row*7+col]
				switch {
				case cell.Blank:
					sb.WriteString("      ")
				case cell.IsToday:
					sb.WriteString(fmt.Sprintf("[%2d]%s ", cell.Day, marker(cell)))
				default:
					sb.WriteString(fmt.Sprintf(" %2d %s ", cell.Day, marker(cell)))
				}
			}
			line := strings.TrimRight(sb.String(), " ")
			if line != "" {
				fmt.Println(line)
			}
		}
		return nil
	},
}

func marker(c calendar.MonthCell) string {
	if c.HasActivity {
		return "•"
	}
	return " "
}

func init() {
	monthCmd.Flags().IntVar(&monthYear, "year", 0, "Year (default: current)")
	monthCmd.Flags().IntVar(&monthMonth, "month", 0, "Month 1-12 (default: current)")
}
