package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/calc/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive calculator menu in a terminal UI",
	Long: `Interactive calculator menu in a terminal UI.

Same single interaction as the plain menu: choose an operation, enter its
numbers separated by spaces and press enter. Esc or ctrl+c quits.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	result, err := tui.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), renderer)
	if errors.Is(err, tui.ErrAborted) {
		return nil
	}
	if err != nil {
		return err
	}
	logger.Debug("tui finished", "result", result)
	return nil
}
