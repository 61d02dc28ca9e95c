// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

// gentleselect shows a popup grid of choices in the terminal and
// prints the chosen value. Items come from arguments ("VALUE=LABEL")
// or a file of "VALUE<TAB>LABEL" lines:
//
//	gentleselect --columns 2 --item-width 9 1=January 2=February 3=March
//	gentleselect --items months.tsv --title "Month"
//
// The exit status is 1 when the dialog is closed without a choice.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/cronedit/cronedit/cmd/cronedit/cli"
	"github.com/cronedit/cronedit/lib/gentleselect"
	"github.com/cronedit/cronedit/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type pickerParams struct {
	ItemsPath string
	Initial   string
	Effect    string
	Speed     string
	NoColor   bool
	Layout    gentleselect.Layout
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "--version" {
		fmt.Fprintf(stdout, "gentleselect %s\n", version.Info())
		return nil
	}

	selectBox, params, err := parseArgs(args, stderr)
	if err != nil || selectBox == nil {
		return err
	}
	if params.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	model := newPicker(selectBox)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return cli.Internal("running picker: %w", err)
	}
	if !model.chosen {
		return &cli.ExitError{Code: 1}
	}
	fmt.Fprintln(stdout, selectBox.Value())
	return nil
}

// parseArgs builds the select described by the command line. A nil
// select with a nil error means help was printed.
func parseArgs(args []string, stderr io.Writer) (*gentleselect.Select, pickerParams, error) {
	params := pickerParams{Layout: gentleselect.Layout{MinWidth: gentleselect.DefaultMinWidth}}
	flagSet := pflag.NewFlagSet("gentleselect", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&params.ItemsPath, "items", "", "read items from this file (\"-\" for stdin)")
	flagSet.StringVar(&params.Initial, "initial", "", "value selected when the dialog opens")
	flagSet.IntVar(&params.Layout.Columns, "columns", 0, "number of grid columns (requires --item-width)")
	flagSet.IntVar(&params.Layout.Rows, "rows", 0, "number of grid rows (requires --item-width)")
	flagSet.IntVar(&params.Layout.ItemWidth, "item-width", 0, "cell width in columns")
	flagSet.IntVar(&params.Layout.MinWidth, "min-width", gentleselect.DefaultMinWidth, "minimum dialog width")
	flagSet.StringVar(&params.Layout.Title, "title", "", "title shown above the grid")
	flagSet.StringVar(&params.Effect, "effect", string(gentleselect.EffectSlide), "open and close effect: slide or fade")
	flagSet.StringVar(&params.Speed, "speed", "", "effect speed: slow, fast, or milliseconds such as 250")
	flagSet.BoolVar(&params.NoColor, "no-color", false, "draw without colors")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stderr, flagSet)
			return nil, params, nil
		}
		return nil, params, cli.Validation("%w", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil, params, nil
	}

	var items []gentleselect.Item
	for _, argument := range flagSet.Args() {
		item, err := parseItemArgument(argument)
		if err != nil {
			return nil, params, cli.Validation("%w", err)
		}
		items = append(items, item)
	}
	if params.ItemsPath != "" {
		fileItems, err := loadItems(params.ItemsPath)
		if err != nil {
			return nil, params, cli.Validation("reading items from %s: %w", params.ItemsPath, err)
		}
		items = append(items, fileItems...)
	}
	if len(items) == 0 {
		return nil, params, cli.Validation("no items to choose from").
			WithHint("Pass items as VALUE=LABEL arguments or with --items FILE.")
	}

	options := gentleselect.DefaultOptions()
	options.Layout = params.Layout
	effect, err := gentleselect.ParseEffect(params.Effect)
	if err != nil {
		return nil, params, cli.Validation("--effect: %w", err)
	}
	options.OpenEffect = effect
	options.CloseEffect = effect
	if params.Speed != "" {
		speed, err := gentleselect.ParseSpeed(params.Speed)
		if err != nil {
			return nil, params, cli.Validation("--speed: %w", err)
		}
		options.OpenSpeed = speed
		options.CloseSpeed = speed
	}

	selectBox, err := gentleselect.New("picker", items, options)
	if err != nil {
		return nil, params, cli.Validation("%w", err)
	}
	if params.Initial != "" && !selectBox.SetValue(params.Initial) {
		return nil, params, cli.Validation("--initial %q is not one of the item values", params.Initial)
	}
	return selectBox, params, nil
}

func loadItems(path string) ([]gentleselect.Item, error) {
	if path == "-" {
		return readItems(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readItems(file)
}

func printHelp(out io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(out, `gentleselect: choose one value from a popup grid.

Usage:
  gentleselect [flags] VALUE[=LABEL]...

Keys:
  arrows  move     enter  choose     esc  close
  type to jump to the best-matching label

Flags:
`)
	flagSet.SetOutput(out)
	flagSet.PrintDefaults()
}
