// Copyright 2025 The CarPullers Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("input", DefaultInput, "")
	flags.Bool("verbose", false, "")
	flags.Bool("progress", true, "")
	require.NoError(t, flags.Parse(args))

	return flags
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load(newFlags(t))
		require.NoError(t, err)
		assert.Equal(t, &Config{Input: "car-pullers.json", Progress: true}, cfg)
	})

	t.Run("no flags", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, "car-pullers.json", cfg.Input)
	})

	t.Run("environment", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("CARPULLERS_INPUT", "env.json")
		t.Setenv("CARPULLERS_VERBOSE", "true")

		cfg, err := Load(newFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "env.json", cfg.Input)
		assert.True(t, cfg.Verbose)
	})

	t.Run("config file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.WriteFile("carpullers.yaml", []byte("input: file.json\nprogress: false\n"), 0o600))

		cfg, err := Load(newFlags(t))
		require.NoError(t, err)
		assert.Equal(t, "file.json", cfg.Input)
		assert.False(t, cfg.Progress)
	})

	t.Run("flag wins", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.WriteFile("carpullers.yaml", []byte("input: file.json\n"), 0o600))
		t.Setenv("CARPULLERS_INPUT", "env.json")

		cfg, err := Load(newFlags(t, "--input", "flag.json"))
		require.NoError(t, err)
		assert.Equal(t, "flag.json", cfg.Input)
	})

	t.Run("broken config file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.WriteFile("carpullers.yaml", []byte("input: [unterminated\n"), 0o600))

		_, err := Load(newFlags(t))
		require.Error(t, err)
	})
}
