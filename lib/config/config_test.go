// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/cronedit/cronedit/lib/cron"
	"github.com/cronedit/cronedit/lib/gentleselect"
	"github.com/cronedit/cronedit/lib/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Initial != "* * * * *" {
		t.Errorf("expected initial=* * * * *, got %q", cfg.Initial)
	}
	if cfg.URLSet != "" {
		t.Errorf("expected no url_set, got %q", cfg.URLSet)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad_RequiresEnvironmentVariable(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when CRONEDIT_CONFIG not set, got nil")
	}
	if !strings.HasPrefix(err.Error(), "CRONEDIT_CONFIG environment variable not set") {
		t.Errorf("unexpected error message %q", err)
	}
}

func TestLoad_WithEnvironmentVariable(t *testing.T) {
	path := testutil.WriteFile(t, "cronedit.yaml", `
initial: "9 10 * * *"
url_set: "http://localhost:8080/set/"
`)
	t.Setenv(EnvironmentVariable, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Initial != "9 10 * * *" {
		t.Errorf("initial = %q", cfg.Initial)
	}
	if cfg.URLSet != "http://localhost:8080/set/" {
		t.Errorf("url_set = %q", cfg.URLSet)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := testutil.WriteFile(t, "cronedit.yaml", `
initial: "0 9 * * 1,3,5"
multi_frequency: true
frequency_options:
  - count: 1
    label: once
  - count: 3
    label: thrice
custom_values:
  - label: at reboot
    value: "@reboot"
effects:
  open_speed: fast
  close_speed: 100
  open_effect: fade
  hide_on_mouse_out: false
selects:
  minute:
    item_width: 5
    title: Past the hour
log_level: debug
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if !cfg.MultiFrequency || len(cfg.FrequencyOptions) != 2 || cfg.FrequencyOptions[1].Label != "thrice" {
		t.Errorf("frequency options = %+v", cfg.FrequencyOptions)
	}
	if grammar := cfg.Grammar(); grammar.MaxListLength != 3 {
		t.Errorf("grammar list length = %d, want 3", grammar.MaxListLength)
	}
	if len(cfg.CustomValues) != 1 || cfg.CustomValues[0].Value != "@reboot" {
		t.Errorf("custom values = %+v", cfg.CustomValues)
	}
	if cfg.Selects.Minute.ItemWidth != 5 || cfg.Selects.Minute.Title != "Past the hour" {
		t.Errorf("minute layout = %+v", cfg.Selects.Minute)
	}

	effects, err := cfg.ApplyEffects(gentleselect.DefaultEffects())
	if err != nil {
		t.Fatal(err)
	}
	want := gentleselect.Effects{
		OpenSpeed:      gentleselect.SpeedFast,
		CloseSpeed:     100 * time.Millisecond,
		OpenEffect:     gentleselect.EffectFade,
		CloseEffect:    gentleselect.EffectSlide,
		HideOnMouseOut: false,
	}
	if effects != want {
		t.Errorf("effects = %+v, want %+v", effects, want)
	}

	if level, err := cfg.Level(); err != nil || level != slog.LevelDebug {
		t.Errorf("Level() = %v, %v; want debug", level, err)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	path := testutil.WriteFile(t, "cronedit.jsonc", `{
  // Saved through the local API.
  "initial": "1 2 3 4 *",
  "url_set": "http://localhost/set/",
  "effects": {
    "open_speed": "slow", /* named speed */
    "close_speed": 0,
  },
  "selects": {"dom": {"rows": 8, "item_width": 4}},
}`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Initial != "1 2 3 4 *" {
		t.Errorf("initial = %q", cfg.Initial)
	}
	if cfg.Effects.OpenSpeed == nil || cfg.Effects.OpenSpeed.Duration() != gentleselect.SpeedSlow {
		t.Errorf("open_speed = %v, want slow", cfg.Effects.OpenSpeed)
	}
	if cfg.Effects.CloseSpeed == nil || cfg.Effects.CloseSpeed.Duration() != 0 {
		t.Errorf("close_speed = %v, want 0", cfg.Effects.CloseSpeed)
	}
	if cfg.Selects.DayOfMonth.Rows != 8 {
		t.Errorf("dom rows = %d, want 8", cfg.Selects.DayOfMonth.Rows)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level default lost: %q", cfg.LogLevel)
	}
}

func TestLoadFile_BadSpeed(t *testing.T) {
	path := testutil.WriteFile(t, "cronedit.yaml", "effects:\n  open_speed: brisk\n")
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "brisk") {
		t.Errorf("LoadFile = %v, want an error naming the bad speed", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/cronedit.yaml"); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestExpandURL(t *testing.T) {
	t.Setenv("CRONEDIT_TEST_HOST", "cron.example.com")
	path := testutil.WriteFile(t, "cronedit.yaml", `url_set: "https://${CRONEDIT_TEST_HOST}/set/?port=${CRONEDIT_TEST_PORT:-443}"`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "https://cron.example.com/set/?port=443"; cfg.URLSet != want {
		t.Errorf("url_set = %q, want %q", cfg.URLSet, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"bad_initial", func(c *Config) { c.Initial = "60 10 * * *" }, "col 1"},
		{"unsupported_initial", func(c *Config) { c.Initial = "* * 1 * *" }, "unsupported"},
		{"list_without_multi_frequency", func(c *Config) { c.Initial = "0 9 * * 1,2" }, "initial"},
		{"relative_url", func(c *Config) { c.URLSet = "/set/" }, "url_set"},
		{"zero_frequency", func(c *Config) {
			c.MultiFrequency = true
			c.FrequencyOptions = []FrequencyOption{{Count: 0, Label: "never"}}
		}, "count must be at least 1"},
		{"duplicate_frequency", func(c *Config) {
			c.FrequencyOptions = []FrequencyOption{{Count: 2, Label: "twice"}, {Count: 2, Label: "double"}}
		}, "listed twice"},
		{"custom_without_value", func(c *Config) { c.CustomValues = []CustomValue{{Label: "reboot"}} }, "custom_values[0].value"},
		{"bad_effect", func(c *Config) { c.Effects.CloseEffect = "wipe" }, "close_effect"},
		{"bad_level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.modify(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, test.wantErr)
			}
		})
	}
}

func TestGrammar(t *testing.T) {
	cfg := Default()
	if cfg.Grammar() != cron.Strict {
		t.Errorf("default grammar = %+v, want strict", cfg.Grammar())
	}
	cfg.MultiFrequency = true
	if cfg.Grammar().MaxListLength != 4 {
		t.Errorf("multi-frequency default list length = %d, want 4", cfg.Grammar().MaxListLength)
	}
}
