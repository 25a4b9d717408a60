package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-creeps/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or check game configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use: the built-in defaults merged
with --config and --difficulty.

Examples:
  creeps config show --difficulty hard
  creeps config show --config ./my-creeps.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadCreeps(flagConfig)
		if err != nil {
			return err
		}
		if flagDifficulty != "" {
			config.ApplyCreepsPreset(&cfg, config.ParsePreset(flagDifficulty))
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in default config with comments",
	Long: `Print the annotated built-in config. It is a good starting point for a
custom file:

  creeps config defaults > ~/.arcade/configs/creeps.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML())
		return err
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadCreeps(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configCheckCmd)
}
