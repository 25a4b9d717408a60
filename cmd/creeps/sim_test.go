package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-creeps/internal/games/creeps"
)

func TestRunSimPrintsSummary(t *testing.T) {
	saved := []any{flagSimTicks, flagSimPolicy, flagSimMode, flagSimSave, flagSeed, flagFPS, flagLogLevel, flagLogFile}
	t.Cleanup(func() {
		flagSimTicks = saved[0].(int)
		flagSimPolicy = saved[1].(string)
		flagSimMode = saved[2].(string)
		flagSimSave = saved[3].(bool)
		flagSeed = saved[4].(int64)
		flagFPS = saved[5].(int)
		flagLogLevel = saved[6].(string)
		flagLogFile = saved[7].(string)
		creeps.SetLogger(nil)
	})

	flagSimTicks = 60
	flagSimPolicy = "idle"
	flagSimMode = creeps.IDClassic
	flagSimSave = false
	flagSeed = 7
	flagFPS = 60
	flagLogLevel = "error"
	flagLogFile = filepath.Join(t.TempDir(), "sim.log")

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runSim(cmd, nil))

	got := out.String()
	for _, want := range []string{
		"Mode:     Creeps Classic\n",
		"Policy:   idle\n",
		"Seed:     7\n",
		"Ticks:    60 (1.0s)\n",
		"Outcome:  survived\n",
	} {
		assert.Contains(t, got, want)
	}
}

func TestRunSimRejectsBadFlags(t *testing.T) {
	ticks, policy := flagSimTicks, flagSimPolicy
	t.Cleanup(func() { flagSimTicks, flagSimPolicy = ticks, policy })

	flagSimTicks = 0
	assert.ErrorContains(t, runSim(&cobra.Command{}, nil), "--ticks")

	flagSimTicks = 10
	flagSimPolicy = "teleport"
	assert.Error(t, runSim(&cobra.Command{}, nil))
}
