// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/cronedit/cronedit/lib/cron"
	"github.com/cronedit/cronedit/lib/gentleselect"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "CRONEDIT_CONFIG"

// Config is the complete cronedit configuration.
type Config struct {
	// Initial is the expression the editor starts with.
	// Default: "* * * * *"
	Initial string `yaml:"initial"`

	// URLSet is the endpoint that receives saved expressions. Empty
	// disables saving.
	URLSet string `yaml:"url_set"`

	// MultiFrequency enables comma lists in each category's frequency
	// field.
	MultiFrequency bool `yaml:"multi_frequency"`

	// FrequencyOptions labels each list length. Empty means the
	// built-in "once" through "four times".
	FrequencyOptions []FrequencyOption `yaml:"frequency_options"`

	// CustomValues are extra period choices that stand for a fixed
	// value, listed before the built-in periods.
	CustomValues []CustomValue `yaml:"custom_values"`

	// Effects are shared by every select.
	Effects EffectsConfig `yaml:"effects"`

	// Selects overrides the layout of individual selects.
	Selects SelectsConfig `yaml:"selects"`

	// LogLevel is the minimum level written to the log output.
	// Default: info
	LogLevel string `yaml:"log_level"`
}

// FrequencyOption labels one multi-frequency list length.
type FrequencyOption struct {
	Count int    `yaml:"count"`
	Label string `yaml:"label"`
}

// CustomValue is a period choice that stands for a fixed value.
type CustomValue struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// EffectsConfig overrides the default open and close effects. Unset
// fields keep the defaults.
type EffectsConfig struct {
	OpenSpeed      *Speed `yaml:"open_speed,omitempty"`
	CloseSpeed     *Speed `yaml:"close_speed,omitempty"`
	OpenEffect     string `yaml:"open_effect,omitempty"`
	CloseEffect    string `yaml:"close_effect,omitempty"`
	HideOnMouseOut *bool  `yaml:"hide_on_mouse_out,omitempty"`
}

// SelectsConfig overrides the layout of each select. Zero fields keep
// the defaults.
type SelectsConfig struct {
	Minute     gentleselect.Layout `yaml:"minute"`
	TimeHour   gentleselect.Layout `yaml:"time_hour"`
	DayOfMonth gentleselect.Layout `yaml:"dom"`
	Month      gentleselect.Layout `yaml:"month"`
	DayOfWeek  gentleselect.Layout `yaml:"dow"`
	TimeMinute gentleselect.Layout `yaml:"time_minute"`
}

// Speed is an animation duration written either as integer
// milliseconds or as "slow" or "fast".
type Speed time.Duration

// UnmarshalYAML accepts integer milliseconds or a named speed.
func (speed *Speed) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: speed must be a number or \"slow\" or \"fast\"", node.Line)
	}
	parsed, err := gentleselect.ParseSpeed(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*speed = Speed(parsed)
	return nil
}

// Duration returns the speed as a time.Duration.
func (speed Speed) Duration() time.Duration {
	return time.Duration(speed)
}

// Default returns the default configuration. Loading a file merges
// into these values.
func Default() *Config {
	return &Config{
		Initial:  "* * * * *",
		LogLevel: "info",
	}
}

// Load loads configuration from the CRONEDIT_CONFIG environment
// variable. Fails if the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your cronedit config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. The format
// is chosen by extension: .json and .jsonc are JSONC, anything else is
// YAML.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("config: loading %s: %w", path, err)
	}
	cfg.URLSet = expandVars(cfg.URLSet)
	return cfg, nil
}

// loadFile decodes one file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		// JSON is a subset of YAML, so the stripped text decodes with
		// the same tags and custom unmarshalers.
		data = jsonc.ToJSON(data)
	}
	return yaml.Unmarshal(data, c)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns from the
// process environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}

// Grammar returns the cron grammar the configuration calls for: the
// strict grammar, or lists as long as the longest frequency option.
func (c *Config) Grammar() cron.Grammar {
	if !c.MultiFrequency {
		return cron.Strict
	}
	longest := 4
	if len(c.FrequencyOptions) > 0 {
		longest = 1
		for _, option := range c.FrequencyOptions {
			if option.Count > longest {
				longest = option.Count
			}
		}
	}
	return cron.Grammar{MaxListLength: longest}
}

// ApplyEffects returns base with every set field of the effects
// config applied.
func (c *Config) ApplyEffects(base gentleselect.Effects) (gentleselect.Effects, error) {
	effects := c.Effects
	if effects.OpenSpeed != nil {
		base.OpenSpeed = effects.OpenSpeed.Duration()
	}
	if effects.CloseSpeed != nil {
		base.CloseSpeed = effects.CloseSpeed.Duration()
	}
	if effects.OpenEffect != "" {
		effect, err := gentleselect.ParseEffect(effects.OpenEffect)
		if err != nil {
			return base, fmt.Errorf("config: effects.open_effect: %w", err)
		}
		base.OpenEffect = effect
	}
	if effects.CloseEffect != "" {
		effect, err := gentleselect.ParseEffect(effects.CloseEffect)
		if err != nil {
			return base, fmt.Errorf("config: effects.close_effect: %w", err)
		}
		base.CloseEffect = effect
	}
	if effects.HideOnMouseOut != nil {
		base.HideOnMouseOut = *effects.HideOnMouseOut
	}
	return base, nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if _, _, err := c.Grammar().Classify(c.Initial); err != nil {
		errs = append(errs, fmt.Errorf("initial: %w", err))
	}

	if c.URLSet != "" {
		parsed, err := url.Parse(c.URLSet)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			errs = append(errs, fmt.Errorf("url_set must be an absolute http or https URL, got %q", c.URLSet))
		}
	}

	seen := make(map[int]bool)
	for index, option := range c.FrequencyOptions {
		if option.Count < 1 {
			errs = append(errs, fmt.Errorf("frequency_options[%d].count must be at least 1", index))
		}
		if seen[option.Count] {
			errs = append(errs, fmt.Errorf("frequency_options[%d].count %d is listed twice", index, option.Count))
		}
		seen[option.Count] = true
		if option.Label == "" {
			errs = append(errs, fmt.Errorf("frequency_options[%d].label is required", index))
		}
	}

	for index, custom := range c.CustomValues {
		if custom.Label == "" {
			errs = append(errs, fmt.Errorf("custom_values[%d].label is required", index))
		}
		if custom.Value == "" {
			errs = append(errs, fmt.Errorf("custom_values[%d].value is required", index))
		}
	}

	if _, err := c.ApplyEffects(gentleselect.DefaultEffects()); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
