package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopper/game"
)

func TestLoad_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	st, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 448.0, st.FieldWidth)
	assert.Equal(t, 32.0, st.RowHeight)
	assert.Equal(t, 3, st.Lives)
	assert.Equal(t, 5, st.ScoresToWin)
	assert.Equal(t, 30, st.TimerMax)
	assert.Equal(t, 5, st.HomeCount)

	require.Len(t, st.TrafficLanes, 5)
	assert.Equal(t, game.KindBus, st.TrafficLanes[1].Kind)
	assert.Equal(t, game.DirRight, st.TrafficLanes[1].Dir)
	assert.Equal(t, 2, st.TrafficLanes[1].MaxCount)

	require.Len(t, st.RiverLanes, 5)
	assert.Equal(t, game.KindLog, st.RiverLanes[0].Kind)
	assert.Equal(t, game.KindTurtle, st.RiverLanes[1].Kind)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"lives": 5,
		"timerSeconds": 45,
		"traffic": [
			{ "kind": "car", "dir": "left", "speed": 2.0, "max": 1 }
		]
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hopper.cfg.json"), []byte(cfg), 0644))

	st, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 5, st.Lives)
	assert.Equal(t, 45, st.TimerMax)
	require.Len(t, st.TrafficLanes, 1)
	assert.Equal(t, game.KindCar, st.TrafficLanes[0].Kind)
	assert.Equal(t, game.DirLeft, st.TrafficLanes[0].Dir)
	assert.Equal(t, 2.0, st.TrafficLanes[0].Speed)
	assert.Equal(t, 1, st.TrafficLanes[0].MaxCount)

	// Untouched sections keep their defaults.
	assert.Equal(t, 5, st.ScoresToWin)
	require.Len(t, st.RiverLanes, 5)
}

func TestLoad_RejectsUnknownVehicleKind(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{ "traffic": [ { "kind": "tank", "dir": "left", "speed": 1, "max": 1 } ] }`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hopper.cfg.json"), []byte(cfg), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tank")
}

func TestLoad_RejectsInvalidGameSetup(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{ "lives": 0 }`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hopper.cfg.json"), []byte(cfg), 0644))

	_, err := Load(dir)
	require.Error(t, err)
}
