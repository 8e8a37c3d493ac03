package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskplan/internal/model"
	"github.com/sandeepkv93/taskplan/internal/store"
)

var (
	flagListStatus   string
	flagListPriority string
	flagListSearch   string
	flagListSort     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, _, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		s.SetSearch(flagListSearch)
		if flagListPriority != "" {
			if err := s.SetPriorityFilter(model.Priority(flagListPriority)); err != nil {
				return err
			}
		}
		if flagListSort != "" {
			if err := s.SetSortBy(store.SortBy(flagListSort)); err != nil {
				return err
			}
		}

		tasks := s.FilteredTasks()
		if flagListStatus != "" {
			status := model.Status(flagListStatus)
			if !status.IsValid() {
				return fmt.Errorf("unknown status %q", flagListStatus)
			}
			tasks = s.TasksByStatus(status)
		}

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			fmt.Fprintln(out, "no tasks")
			return nil
		}
		for _, task := range tasks {
			check := " "
			if task.Completed {
				check = "x"
			}
			line := fmt.Sprintf("[%s] %-11s %-6s %s", check, task.Status, task.Priority, task.Title)
			var meta []string
			if task.Deadline != "" {
				meta = append(meta, ">"+task.Deadline)
			}
			for _, tag := range task.Tags {
				meta = append(meta, "#"+tag)
			}
			if len(meta) > 0 {
				line += "  " + strings.Join(meta, " ")
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagListStatus, "status", "", "filter by status (todo, inprogress, done)")
	listCmd.Flags().StringVar(&flagListPriority, "priority", "", "filter by priority (low, medium, high)")
	listCmd.Flags().StringVar(&flagListSearch, "search", "", "filter by search text")
	listCmd.Flags().StringVar(&flagListSort, "sort", "", "sort order (created, priority, deadline)")
	rootCmd.AddCommand(listCmd)
}
