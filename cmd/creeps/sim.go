package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-creeps/internal/core"
	"github.com/vovakirdan/tui-creeps/internal/games/creeps"
	"github.com/vovakirdan/tui-creeps/internal/registry"
	"github.com/vovakirdan/tui-creeps/internal/storage"
)

var (
	flagSimTicks  int
	flagSimPolicy string
	flagSimMode   string
	flagSimSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run a mode without a terminal UI. A scripted policy stands in for the
player and the run stops at game over or after --ticks ticks.

Policies:
  idle   - never moves
  circle - cycles up, right, down, left
  flee   - steers away from the nearest enemy

Examples:
  creeps sim --seed 42
  creeps sim --ticks 18000 --policy flee --log-level debug
  creeps sim --mode creeps_classic --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimPolicy, "policy", "flee", "Input policy: "+policyNames())
	simCmd.Flags().StringVar(&flagSimMode, "mode", creeps.IDSurvival, "Mode to simulate")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the finished run in the database")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}
	pol, err := parsePolicy(flagSimPolicy)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := registry.Create(flagSimMode)
	if err != nil {
		return err
	}
	game, ok := g.(*creeps.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot run headless", flagSimMode)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	game.Reset(cfg)

	sim := game.Sim()
	for sim.Ticks() < flagSimTicks && game.RunState() == creeps.Playing {
		game.Step(pol(sim))
	}

	out := cmd.OutOrStdout()
	row := func(label, format string, args ...any) {
		fmt.Fprintf(out, "%-9s "+format+"\n", append([]any{label + ":"}, args...)...)
	}
	row("Mode", "%s", game.Title())
	row("Policy", "%s", flagSimPolicy)
	row("Seed", "%d", game.Seed())
	row("Ticks", "%d (%.1fs)", sim.Ticks(), float64(sim.Ticks())*cfg.Delta())
	row("Score", "%d", sim.Score())
	row("Enemies", "%d", sim.EnemyCount())

	summary, over := game.Summary()
	if over {
		row("Outcome", "hit by %s", summary.KilledBy)
	} else {
		row("Outcome", "survived")
	}

	if !flagSimSave {
		return nil
	}
	if !over {
		logger.Info("run still in progress, not saved")
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open runs database: %w", err)
	}
	defer store.Close()

	if err := store.SaveSummary(summary); err != nil {
		return err
	}
	logger.Info("run saved", "id", summary.ID, "score", summary.Score)
	return nil
}
