package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpdiagram/internal/config"
)

func TestInitConfigPrecedence(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "cpdiagram.yml")
	body := "data: fromfile\nlog-level: debug\ndefaults:\n  number-size: 20\n  axis-v: y\n"
	require.NoError(t, os.WriteFile(cfgFile, []byte(body), 0o644))
	t.Setenv("CPD_LOG_LEVEL", "warn")
	t.Setenv("CPD_DEFAULTS_EXTEND_LENGTH", "1500")

	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--data", "fromflag"}))
	v := viper.New()
	require.NoError(t, initConfig(cmd, v, cfgFile))

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "fromflag", cfg.DataDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "cpdiagram.log", cfg.LogFile)
	assert.InDelta(t, 4.0, cfg.ExportScale, 1e-9)
	assert.InDelta(t, 20.0, cfg.Defaults.NumberSize, 1e-9)
	assert.InDelta(t, 1500.0, cfg.Defaults.ExtendLength, 1e-9)
	assert.Equal(t, "y", cfg.Defaults.AxisV)
}

func TestInitConfigMissingFile(t *testing.T) {
	cmd := newRootCmd()
	err := initConfig(cmd, viper.New(), filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestRootRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}
