package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskplan/internal/update"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive planner (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	s, cfg, closeStore, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	m := update.NewModel(s, update.RuntimeConfig{
		PollInterval: cfg.ReminderPollInterval,
		Notifier:     update.ExecDesktopNotifier{Command: cfg.NotifyCommand},
	})
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
