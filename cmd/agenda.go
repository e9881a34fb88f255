package cmd

import (
	"fmt"

	"github.com/jiyoungv/haru/internal/utils"
	"github.com/spf13/cobra"
)

var agendaDate string

// agendaCmd prints one day's events and checklist together.
var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Show a day's events and todos",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, dbh, key, err := openStoreAt(agendaDate)
		if err != nil {
			return err
		}
		defer dbh.Close()

		renderer := utils.NewRenderer(utils.DefaultRenderConfig())
		events, err := renderer.RenderEvents(key, st.ListEvents(key))
		if err != nil {
			return err
		}
		todos, err := renderer.RenderTodos(key, st.ListTodos(key))
		if err != nil {
			return err
		}
		fmt.Print(events)
		fmt.Print(todos)
		return nil
	},
}

func init() {
	agendaCmd.Flags().StringVar(&agendaDate, "date", "", "Day (YYYY-M-D, today, tomorrow, ...)")
}
