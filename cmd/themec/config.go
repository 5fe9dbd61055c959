package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/themec/fs"
	dv "github.com/fwojciec/themec/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment variables, e.g. THEMEC_OUTPUT.
const envPrefix = "THEMEC"

// Config keys shared by flags, environment and config file.
const (
	keyOutput   = "output"
	keyStrict   = "strict"
	keyLogLevel = "log-level"
	keyFormat   = "format"
	keyUI       = "ui"
)

// Config holds the resolved settings for one invocation.
// Precedence: flag > environment (.env included) > config file > default.
type Config struct {
	Output   string
	Strict   bool
	LogLevel string
	Format   string // inspect output: text or jsonl
	UI       string // dark or light
}

// UITheme returns the lipgloss UI colors selected by UI.
func (c *Config) UITheme() dv.Theme {
	if c.UI == "light" {
		return dv.LightTheme()
	}
	return dv.DarkTheme()
}

// loadConfig reads envFile (if it exists), binds the environment, and reads
// configFile or, when empty, themec.yaml from the working directory or
// fs.DefaultConfigDir().
func loadConfig(v *viper.Viper, configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyFormat, "text")
	v.SetDefault(keyUI, "dark")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("themec")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := fs.DefaultConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{
		Output:   v.GetString(keyOutput),
		Strict:   v.GetBool(keyStrict),
		LogLevel: v.GetString(keyLogLevel),
		Format:   v.GetString(keyFormat),
		UI:       v.GetString(keyUI),
	}
	if cfg.UI != "dark" && cfg.UI != "light" {
		return nil, fmt.Errorf("invalid ui %q: want dark or light", cfg.UI)
	}
	return cfg, nil
}
