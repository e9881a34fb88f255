package cmd

import (
	"fmt"
	"strings"

	"github.com/jiyoungv/haru/internal/utils"
	"github.com/spf13/cobra"
)

var (
	todoDate    string
	todoID      string
	todoContent string
	todoFormat  string
	todoIDs     bool
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage a day's checklist",
}

var todoAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Add a checklist item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := strings.TrimSpace(strings.Join(args, " "))
		if content == "" {
			return fmt.Errorf("empty todo content")
		}
		st, dbh, key, err := openStoreAt(todoDate)
		if err != nil {
			return err
		}
		defer dbh.Close()

		if _, err := st.AppendTodo(key, content, false); err != nil {
			return err
		}
		fmt.Printf("Added to %s.\n", key)
		return nil
	},
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, dbh, key, err := openStoreAt(todoDate)
		if err != nil {
			return err
		}
		defer dbh.Close()

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Format = utils.OutputFormat(todoFormat)
		renderConfig.ShowID = todoIDs
		out, err := utils.NewRenderer(renderConfig).RenderTodos(key, st.ListTodos(key))
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var todoCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Mark an item done",
	RunE:  func(cmd *cobra.Command, args []string) error { return setChecked(true) },
}

var todoUncheckCmd = &cobra.Command{
	Use:   "uncheck",
	Short: "Mark an item not done",
	RunE:  func(cmd *cobra.Command, args []string) error { return setChecked(false) },
}

var todoEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Rewrite an item's content",
	Long:  "Editing an item down to empty text removes it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if todoID == "" {
			return fmt.Errorf("--id is required (see: haru todo list --ids)")
		}
		st, dbh, key, err := openStoreAt(todoDate)
		if err != nil {
			return err
		}
		defer dbh.Close()

		if err := st.UpdateTodo(key, todoID, &todoContent, nil); err != nil {
			return err
		}
		if strings.TrimSpace(todoContent) == "" {
			fmt.Println("Removed.")
		} else {
			fmt.Println("Updated.")
		}
		return nil
	},
}

func setChecked(checked bool) error {
	if todoID == "" {
		return fmt.Errorf("--id is required (see: haru todo list --ids)")
	}
	st, dbh, key, err := openStoreAt(todoDate)
	if err != nil {
		return err
	}
	defer dbh.Close()

	if err := st.UpdateTodo(key, todoID, nil, &checked); err != nil {
		return err
	}
	fmt.Println("Saved.")
	return nil
}

func init() {
	todoCmd.AddCommand(todoAddCmd, todoListCmd, todoCheckCmd, todoUncheckCmd, todoEditCmd)

	todoCmd.PersistentFlags().StringVar(&todoDate, "date", "", "Day (YYYY-M-D, today, tomorrow, ...)")
	todoCmd.PersistentFlags().StringVar(&todoID, "id", "", "Todo id")
	todoEditCmd.Flags().StringVar(&todoContent, "content", "", "New content (empty removes the item)")
	todoListCmd.Flags().StringVar(&todoFormat, "format", "default", "Output format: default, json, quiet")
	todoListCmd.Flags().BoolVar(&todoIDs, "ids", false, "Show todo ids")
}
