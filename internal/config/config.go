// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Passgen settings from defaults, passgen.yaml, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/toeirei/passgen/internal/engine"
)

// Config holds every user-tunable setting.
type Config struct {
	Length           int           `mapstructure:"length" yaml:"length"`
	Count            int           `mapstructure:"count" yaml:"count"`
	Mode             string        `mapstructure:"mode" yaml:"mode"`
	GuessesPerSecond float64       `mapstructure:"guesses_per_second" yaml:"guesses_per_second"`
	Language         string        `mapstructure:"language" yaml:"language"`
	Copy             bool          `mapstructure:"copy" yaml:"copy"`
	CopyFeedback     time.Duration `mapstructure:"copy_feedback" yaml:"copy_feedback"`
	Verbose          bool          `mapstructure:"verbose" yaml:"verbose"`
}

// Defaults returns the default value of every key, suitable for LoadConfig.
func Defaults() map[string]any {
	return map[string]any{
		"length":             13,
		"count":              1,
		"mode":               string(engine.ModeShuffle),
		"guesses_per_second": engine.DefaultGuessesPerSecond,
		"language":           "en",
		"copy":               false,
		"copy_feedback":      2 * time.Second,
		"verbose":            false,
	}
}

// Default returns a Config populated from Defaults.
func Default() Config {
	return Config{
		Length:           13,
		Count:            1,
		Mode:             string(engine.ModeShuffle),
		GuessesPerSecond: engine.DefaultGuessesPerSecond,
		Language:         "en",
		CopyFeedback:     2 * time.Second,
	}
}

// Validate checks settings that would otherwise fail late. The length itself
// is validated by the engine so that it reports the proper error kind.
func (c Config) Validate() error {
	var errs []error
	if _, err := engine.ParseMode(c.Mode); err != nil {
		errs = append(errs, err)
	}
	if c.GuessesPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("guesses_per_second must be positive, got %g", c.GuessesPerSecond))
	}
	if c.Count < 1 {
		errs = append(errs, fmt.Errorf("count must be at least 1, got %d", c.Count))
	}
	if c.CopyFeedback <= 0 {
		errs = append(errs, fmt.Errorf("copy_feedback must be positive, got %s", c.CopyFeedback))
	}
	return errors.Join(errs...)
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Passgen")
		default: // Linux, macOS, etc.
			configDir = "/etc/passgen"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "passgen")
	}

	return filepath.Join(configDir, "passgen.yaml"), nil
}

// LoadConfig builds a T from defaults, the first passgen.yaml found (or the
// explicit file at configFile), PASSGEN_* environment variables and the
// flags of cmd. Flag names map to keys with dashes replaced by underscores.
// A missing config file is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("passgen")
	v.SetConfigType("yaml")
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("passgen")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		var bindErr error
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return c, bindErr
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

// WriteConfigFile writes c as YAML to the user (or system) config path,
// creating the directory if needed, and returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", err
	}
	return path, nil
}
