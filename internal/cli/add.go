package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskplan/internal/model"
)

var flagAddStatus string

var addCmd = &cobra.Command{
	Use:   "add <quick-add text>",
	Short: "Add a task from quick-add syntax",
	Long: `Add a task using the quick-add syntax:

  taskplan add "Fix login !h @web #bug >morgen"

Tokens: !h/!m/!l priority, @project, #tag, >deadline
(heute, morgen, today, tomorrow or YYYY-MM-DD).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := model.Status(flagAddStatus)
		if !status.IsValid() {
			return fmt.Errorf("unknown status %q", flagAddStatus)
		}

		s, _, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		task, err := s.CreateFromQuickAdd(cmd.Context(), strings.Join(args, " "), status)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %q (%s, %s)\n", task.Title, task.Status, task.Priority)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&flagAddStatus, "status", string(model.StatusTodo), "initial status (todo, inprogress, done)")
	rootCmd.AddCommand(addCmd)
}
