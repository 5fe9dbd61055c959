package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig points the default config lookups at an empty directory.
// Not safe for parallel tests: it changes the process environment.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"THEMEC_OUTPUT", "THEMEC_STRICT", "THEMEC_LOG_LEVEL", "THEMEC_FORMAT", "THEMEC_UI"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := loadConfig(viper.New(), "", "")

	require.NoError(t, err)
	assert.Equal(t, &Config{LogLevel: "info", Format: "text", UI: "dark"}, cfg)
}

func TestLoadConfig_ConfigFile(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: themes.bin\nstrict: true\nui: light\n"), 0o644))

	cfg, err := loadConfig(viper.New(), path, "")

	require.NoError(t, err)
	assert.Equal(t, "themes.bin", cfg.Output)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "light", cfg.UI)
}

func TestLoadConfig_DefaultConfigDir(t *testing.T) {
	dir := isolateConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "themec"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themec", "themec.yaml"), []byte("format: jsonl\n"), 0o644))

	cfg, err := loadConfig(viper.New(), "", "")

	require.NoError(t, err)
	assert.Equal(t, "jsonl", cfg.Format)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: from-file.bin\n"), 0o644))
	t.Setenv("THEMEC_OUTPUT", "from-env.bin")
	t.Setenv("THEMEC_LOG_LEVEL", "debug")

	cfg, err := loadConfig(viper.New(), path, "")

	require.NoError(t, err)
	assert.Equal(t, "from-env.bin", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := isolateConfig(t)
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("THEMEC_UI=light\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("THEMEC_UI") })

	cfg, err := loadConfig(viper.New(), "", envFile)

	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI)
}

func TestLoadConfig_MissingEnvFileIgnored(t *testing.T) {
	dir := isolateConfig(t)

	_, err := loadConfig(viper.New(), "", filepath.Join(dir, ".env"))

	require.NoError(t, err)
}

func TestLoadConfig_MissingExplicitConfig(t *testing.T) {
	dir := isolateConfig(t)

	_, err := loadConfig(viper.New(), filepath.Join(dir, "nope.yaml"), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadConfig_InvalidUI(t *testing.T) {
	isolateConfig(t)
	t.Setenv("THEMEC_UI", "neon")

	_, err := loadConfig(viper.New(), "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid ui "neon"`)
}

func TestLoadSample(t *testing.T) {
	t.Parallel()

	t.Run("builtin sample when no path is given", func(t *testing.T) {
		t.Parallel()

		sample, err := loadSample("")

		require.NoError(t, err)
		assert.Equal(t, "Go", sample.Language)
		assert.NotEmpty(t, sample.Source)
	})

	t.Run("detects language from file name", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "snippet.py")
		require.NoError(t, os.WriteFile(path, []byte("print('hi')\n"), 0o644))

		sample, err := loadSample(path)

		require.NoError(t, err)
		assert.Equal(t, "Python", sample.Language)
		assert.Equal(t, "print('hi')\n", sample.Source)
	})

	t.Run("detects language from content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deploy")
		require.NoError(t, os.WriteFile(path, []byte("#!/bin/bash\necho hi\n"), 0o644))

		sample, err := loadSample(path)

		require.NoError(t, err)
		assert.Equal(t, "Bash", sample.Language)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := loadSample(filepath.Join(t.TempDir(), "nope.go"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
