package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/wavepick/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
}

func TestLoad_NoFileNoFlags_MatchesDefault(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), *cfg)
}

func TestLoad_FileOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wavepick.yaml")
	yaml := "driver:\n  max_runtime_millis: 1234\nelite:\n  size: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1234), cfg.Driver.MaxRuntimeMillis)
	require.Equal(t, 7, cfg.Elite.Size)
	require.Equal(t, config.Default().Tabu, cfg.Tabu)
}

func TestLoad_FlagOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wavepick.yaml")
	require.NoError(t, os.WriteFile(path, []byte("elite:\n  size: 7\n"), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--elite.size=9"}))

	cfg, err := config.Load(path, fs)
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Elite.Size)
}

func TestValidate_RejectsBadStrategy(t *testing.T) {
	cfg := config.Default()
	cfg.Bandit.Strategy = "nonsense"
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsOutOfRangePerturbation(t *testing.T) {
	cfg := config.Default()
	cfg.Driver.PerturbationStrength = 1.5
	require.Error(t, cfg.Validate())
}

func TestSelectorConfig_MapsStrategy(t *testing.T) {
	cfg := config.Default()
	cfg.Bandit.Strategy = "epsilon_greedy"
	sc := cfg.Bandit.SelectorConfig()
	require.Equal(t, cfg.Bandit.Epsilon, sc.Epsilon)
}
