package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-creeps/internal/platform/tui"
	"github.com/vovakirdan/tui-creeps/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse run history interactively",
	Long: `Open the scoreboard: best runs per mode with the enemy kinds that
ended them. Use Left/Right to switch modes, S to toggle best and recent
runs, and Q to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("open runs database: %w", err)
		}
		defer store.Close()

		_, err = tui.RunScoreboard(store, terminalConfig())
		return err
	},
}
