package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/germanamz/bullcow/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardValues_Defaults(t *testing.T) {
	cfg, err := defaultWizardValues().toConfig()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestWizardValues_ToConfig(t *testing.T) {
	v := wizardValues{
		MaxLines:   " 30 ",
		MaxColumns: "72",
		WordList:   " words.txt ",
		Debug:      true,
		LogLevel:   "debug",
	}

	cfg, err := v.toConfig()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.MaxLines)
	assert.Equal(t, 72, cfg.MaxColumns)
	assert.Equal(t, "words.txt", cfg.WordList)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestWizardValues_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		v       wizardValues
		wantErr string
	}{
		{name: "not a number", v: wizardValues{MaxLines: "many", LogLevel: "info"}, wantErr: "max lines"},
		{name: "zero lines", v: wizardValues{MaxLines: "0", LogLevel: "info"}, wantErr: "max_lines"},
		{name: "bad columns", v: wizardValues{MaxLines: "5", MaxColumns: "wide", LogLevel: "info"}, wantErr: "max columns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.v.toConfig()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestWizardValidators(t *testing.T) {
	assert.NoError(t, validatePositive("3"))
	assert.Error(t, validatePositive("0"))
	assert.Error(t, validatePositive("x"))

	assert.NoError(t, validateNonNegative(""))
	assert.NoError(t, validateNonNegative("0"))
	assert.Error(t, validateNonNegative("-1"))

	assert.NoError(t, validateWordList(""))
	assert.Error(t, validateWordList(filepath.Join(t.TempDir(), "missing.txt")))
}

func TestInit_Defaults(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, ".bullcow")

	out, err := execute(t, "", "init", "--defaults", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized "+dir)

	cfg, err := config.Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = os.Stat(filepath.Join(dir, "local"))
	assert.NoError(t, err)
}

func TestInit_KeepsExistingConfig(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, ".bullcow")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("debug: true\n"), 0o600))

	out, err := execute(t, "", "init", "--defaults", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "debug: true\n", string(data))
}

func TestInit_ExistingDirWithoutConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".bullcow")
	require.NoError(t, os.MkdirAll(dir, 0o750))

	out, err := execute(t, "", "init", "--defaults", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote config into existing "+dir)
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
}
