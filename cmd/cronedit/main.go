// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// cronedit is an interactive terminal editor for cron schedules. It
// shows a schedule as a sentence ("week on Monday at 30 minutes past
// 9am") whose words are selects, and prints the edited expression on
// exit.
//
// With a save URL configured (url_set in the config file, or --url),
// a save control appears whenever the schedule differs from the last
// saved one; saving posts the expression as the form field "cron".
//
// The classify subcommand checks an expression without opening the
// editor:
//
//	cronedit classify "30 9 * * 1"
//	cronedit classify --json --multi-frequency 2 "0 9,17 * * *"
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/cronedit/cronedit/cmd/cronedit/cli"
	"github.com/cronedit/cronedit/lib/config"
	"github.com/cronedit/cronedit/lib/cron"
	"github.com/cronedit/cronedit/lib/cronui"
	"github.com/cronedit/cronedit/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Commands that print their own output return an ExitError
		// with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		switch args[0] {
		case "--version":
			fmt.Fprintf(stdout, "cronedit %s\n", version.Full())
			return nil
		case "classify":
			return runClassify(args[1:], stdout, stderr)
		}
	}
	return runEditor(args, stdout, stderr)
}

// editorParams holds the editor's flags. Flags that are set override
// the config file.
type editorParams struct {
	cli.JSONOutput
	ConfigPath     string
	Initial        string
	URL            string
	MultiFrequency bool
	NoColor        bool
	LogOutput      string
}

func runEditor(args []string, stdout, stderr io.Writer) error {
	var params editorParams
	flagSet := pflag.NewFlagSet("cronedit", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&params.ConfigPath, "config", "", "path to config file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&params.Initial, "initial", "", "starting cron expression")
	flagSet.StringVar(&params.URL, "url", "", "endpoint that saved expressions are posted to")
	flagSet.BoolVar(&params.MultiFrequency, "multi-frequency", false, "allow several values in each schedule's frequency field")
	flagSet.BoolVar(&params.NoColor, "no-color", false, "draw without colors")
	flagSet.StringVar(&params.LogOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolVar(&params.OutputJSON, "json", false, "print the final state as JSON")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stderr, flagSet)
			return nil
		}
		return cli.Validation("%w", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return cli.Validation("unexpected argument: %s", rest[0]).
			WithHint("Quote the expression and pass it with --initial, e.g. --initial \"30 9 * * 1\".")
	}

	configuration, err := loadConfig(params.ConfigPath)
	if err != nil {
		return cli.Validation("%w", err)
	}
	if flagSet.Changed("initial") {
		configuration.Initial = params.Initial
	}
	if flagSet.Changed("url") {
		configuration.URLSet = params.URL
	}
	if flagSet.Changed("multi-frequency") {
		configuration.MultiFrequency = params.MultiFrequency
	}
	if err := configuration.Validate(); err != nil {
		return cli.Validation("%w", err).
			WithHint("Fix the settings above in the config file or the matching flags.")
	}

	logger, closeLog, err := editorLogger(configuration, params.LogOutput)
	if err != nil {
		return err
	}
	defer closeLog()

	options, err := widgetOptions(configuration, logger)
	if err != nil {
		return cli.Validation("%w", err)
	}
	if params.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	widget, err := cronui.New(options)
	if err != nil {
		return cli.Validation("%w", err)
	}
	program := tea.NewProgram(widget, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return cli.Internal("running editor: %w", err)
	}

	result := editorResult{
		Value:   widget.Value(),
		Saved:   widget.SavedValue(),
		Changed: widget.Changed(),
	}
	if category, ok := widget.Category(); ok {
		result.Category = string(category)
	}
	if done, err := params.EmitJSON(stdout, result); done {
		return err
	}
	fmt.Fprintln(stdout, result.Value)
	return nil
}

// editorResult is the --json output of an editing session.
type editorResult struct {
	Value    string `json:"value"`
	Category string `json:"category,omitempty"`
	Saved    string `json:"saved"`
	Changed  bool   `json:"changed"`
}

// loadConfig reads the config file named by path, or by the
// environment variable when path is empty. With neither set, the
// defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if os.Getenv(config.EnvironmentVariable) != "" {
		return config.Load()
	}
	return config.Default(), nil
}

// editorLogger returns the logger the editor runs with. The editor
// owns the terminal, so records go to the --log-output file or
// nowhere.
func editorLogger(configuration *config.Config, logOutput string) (*slog.Logger, func(), error) {
	if logOutput == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	level, err := configuration.Level()
	if err != nil {
		return nil, nil, cli.Validation("%w", err)
	}
	logger, closer, err := cli.NewFileLogger(logOutput, level)
	if err != nil {
		return nil, nil, cli.Validation("cannot open log file %s: %w", logOutput, err)
	}
	return logger.With("command", "cronedit"), closer, nil
}

// widgetOptions layers the configuration over the widget defaults.
func widgetOptions(configuration *config.Config, logger *slog.Logger) (cronui.Options, error) {
	options := cronui.DefaultOptions()
	options.Initial = configuration.Initial
	options.URLSet = configuration.URLSet
	options.MultiFrequency = configuration.MultiFrequency
	options.Logger = logger

	if len(configuration.FrequencyOptions) > 0 {
		options.FrequencyOptions = nil
		for _, frequency := range configuration.FrequencyOptions {
			options.FrequencyOptions = append(options.FrequencyOptions, cronui.Frequency{Count: frequency.Count, Label: frequency.Label})
		}
	}
	for _, custom := range configuration.CustomValues {
		options.CustomValues = append(options.CustomValues, cronui.CustomValue{Label: custom.Label, Value: custom.Value})
	}

	effects, err := configuration.ApplyEffects(options.Effects)
	if err != nil {
		return options, err
	}
	options.Effects = effects

	selects := configuration.Selects
	options.Minute = options.Minute.Merge(selects.Minute)
	options.TimeHour = options.TimeHour.Merge(selects.TimeHour)
	options.DayOfMonth = options.DayOfMonth.Merge(selects.DayOfMonth)
	options.Month = options.Month.Merge(selects.Month)
	options.DayOfWeek = options.DayOfWeek.Merge(selects.DayOfWeek)
	options.TimeMinute = options.TimeMinute.Merge(selects.TimeMinute)
	return options, nil
}

func printHelp(out io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(out, `cronedit: edit a cron schedule as a sentence.

Supported schedules (one per period):
  minute  * * * * *
  hour    M * * * *
  day     M H * * *
  week    M H * * D
  month   M H d * *
  year    M H d m *

Usage:
  cronedit [flags]
  cronedit classify [--json] [--multi-frequency N] EXPRESSION

Examples:
  # Edit the default schedule and print the result
  cronedit

  # Start from a weekly schedule and save to a server
  cronedit --initial "30 9 * * 1" --url https://example.com/schedule

Keys:
  tab/shift+tab  move between words     enter  open the focused word
  ctrl+s         save                   q      quit

Categories: %v

Flags:
`, cron.Categories())
	flagSet.SetOutput(out)
	flagSet.PrintDefaults()
}
