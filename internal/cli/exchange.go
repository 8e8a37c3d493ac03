package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var flagExportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks and projects to a JSON backup",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, _, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		data, err := s.Export()
		if err != nil {
			return err
		}

		path := flagExportOutput
		if path == "" {
			path = fmt.Sprintf("taskplan_backup_%s.json", time.Now().Format("2006-01-02"))
		}
		if path == "-" {
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", path)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tasks and projects from a JSON backup",
	Long: `Import a backup created by taskplan export. Task and project lists
are replaced wholesale; a backup that omits one of them leaves the
current data untouched. An invalid file changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}

		s, _, closeStore, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeStore()

		if err := s.Import(cmd.Context(), data); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d tasks, %d projects\n", len(s.Tasks()), len(s.Projects()))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "output file (- for stdout)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
