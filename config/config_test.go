package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Missing(t *testing.T) {
	t.Setenv(config.EnvInputs, "")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Inputs)
	assert.NotNil(t, cfg.Answers)
}

func TestLoad(t *testing.T) {
	t.Setenv(config.EnvInputs, "")
	path := write(t, `
inputs: data
answers:
  1: {part1: 142, part2: 281}
  20: {part1: 32000000}
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "data"), cfg.Inputs)

	require.Contains(t, cfg.Answers, 1)
	require.NotNil(t, cfg.Answers[1].Part2)
	assert.Equal(t, int64(281), *cfg.Answers[1].Part2)
	assert.Equal(t, int64(32000000), *cfg.Answers[20].Part1)
	assert.Nil(t, cfg.Answers[20].Part2)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvInputs, "/srv/aoc")
	cfg, err := config.Load(write(t, "inputs: data\n"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/aoc", cfg.Inputs)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(config.EnvInputs, "")
	_, err := config.Load(write(t, "answers:\n  42: {part1: 1}\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(write(t, "answers: [1, 2\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
