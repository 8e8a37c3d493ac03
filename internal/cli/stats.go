package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskplan/internal/views"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, _, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		stats := s.Stats()
		fmt.Fprintln(cmd.OutOrStdout(), views.RenderStats(views.StatsData{
			Total:          stats.Total,
			Todo:           stats.Todo,
			InProgress:     stats.InProgress,
			Done:           stats.Done,
			Overdue:        stats.Overdue,
			CompletedToday: stats.CompletedToday,
			TotalPomodoros: stats.TotalPomodoros,
		}))
		return nil
	},
}

var flagClearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all tasks, projects and preferences",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !flagClearYes {
			fmt.Fprint(cmd.OutOrStdout(), "delete ALL data? type yes to confirm: ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
		}

		s, _, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		if err := s.ClearAll(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "all data cleared")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&flagClearYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(clearCmd)
}
