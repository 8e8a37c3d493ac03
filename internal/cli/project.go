package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var flagProjectColor string

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		project, err := s.CreateProject(cmd.Context(), strings.Join(args, " "), flagProjectColor)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created project %q (%s)\n", project.Name, project.Color)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects with open task counts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, _, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		projects := s.Projects()
		if len(projects) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no projects")
			return nil
		}
		counts := s.TaskCountByProject()
		for _, project := range projects {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s  %d open\n", project.Name, project.Color, counts[project.ID])
		}
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a project (its tasks are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		name := strings.ToLower(args[0])
		for _, project := range s.Projects() {
			if strings.ToLower(project.Name) == name {
				if _, err := s.DeleteProject(cmd.Context(), project.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted project %q\n", project.Name)
				return nil
			}
		}
		return fmt.Errorf("no project named %q", args[0])
	},
}

func init() {
	projectAddCmd.Flags().StringVar(&flagProjectColor, "color", "", "hex color, e.g. #6366f1")
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}
