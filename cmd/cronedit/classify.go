// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	cronschedule "github.com/robfig/cron/v3"
	"github.com/spf13/pflag"

	"github.com/cronedit/cronedit/cmd/cronedit/cli"
	"github.com/cronedit/cronedit/lib/cron"
)

// standardCronHint follows a rejection of an expression that standard
// cron accepts. maxListLength is the grammar's longest list.
func standardCronHint(maxListLength int) string {
	if maxListLength <= 1 {
		return "This is valid cron, but the editor only supports one value per field " +
			"and the six schedule shapes listed by cronedit --help."
	}
	return fmt.Sprintf("This is valid cron, but the editor only supports a list of up to %d values "+
		"in the field the schedule repeats on, one value in every other field, "+
		"and the six schedule shapes listed by cronedit --help.", maxListLength)
}

type classifyParams struct {
	cli.JSONOutput
	MultiFrequency int
}

// classifyResult is the --json output of classify. On failure only
// Expression and the error fields are set.
type classifyResult struct {
	Expression   string       `json:"expression"`
	Category     string       `json:"category,omitempty"`
	Values       *cron.Values `json:"values,omitempty"`
	Error        string       `json:"error,omitempty"`
	ErrorKind    string       `json:"error_kind,omitempty"`
	Column       int          `json:"column,omitempty"`
	StandardCron bool         `json:"standard_cron,omitempty"`
}

func runClassify(args []string, stdout, stderr io.Writer) error {
	var params classifyParams
	flagSet := pflag.NewFlagSet("cronedit classify", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVar(&params.OutputJSON, "json", false, "output as JSON")
	flagSet.IntVar(&params.MultiFrequency, "multi-frequency", 1, "longest list allowed in the frequency field (1 disables lists)")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return cli.Validation("%w", err)
	}

	// Accept the expression quoted as one argument or as five fields.
	rest := flagSet.Args()
	var text string
	switch len(rest) {
	case 1:
		text = rest[0]
	case 5:
		text = strings.Join(rest, " ")
	default:
		return cli.Validation("classify takes one expression, got %d arguments", len(rest)).
			WithHint("Quote the expression: cronedit classify \"30 9 * * 1\"")
	}
	if params.MultiFrequency < 1 {
		return cli.Validation("--multi-frequency must be at least 1, got %d", params.MultiFrequency)
	}

	grammar := cron.Grammar{MaxListLength: params.MultiFrequency}
	result := classifyResult{Expression: text}
	category, expression, err := grammar.Classify(text)
	if err != nil {
		result.Error = err.Error()
		result.ErrorKind, result.Column = describeError(err)
		result.StandardCron = isStandardCron(text)
		if done, jsonErr := params.EmitJSON(stdout, result); done {
			if jsonErr != nil {
				return jsonErr
			}
			return &cli.ExitError{Code: 1}
		}
		fmt.Fprintln(stderr, err)
		if result.StandardCron {
			fmt.Fprintf(stderr, "\n%s\n", standardCronHint(params.MultiFrequency))
		}
		return &cli.ExitError{Code: 1}
	}

	values := cron.ToFields(category, expression)
	result.Category = string(category)
	result.Values = &values

	if done, err := params.EmitJSON(stdout, result); done {
		return err
	}
	fmt.Fprintf(stdout, "category: %s\n", category)
	for _, field := range cron.Fields() {
		if selection := values.Get(field); !selection.IsWildcard() {
			fmt.Fprintf(stdout, "%s: %s\n", field, selection)
		}
	}
	return nil
}

// describeError names the kind of classification failure and its
// column, 0 when the error has none.
func describeError(err error) (string, int) {
	var syntaxError *cron.SyntaxError
	var rangeError *cron.RangeError
	var unsupported *cron.UnsupportedFormatError
	switch {
	case errors.As(err, &syntaxError):
		return "syntax", syntaxError.Column
	case errors.As(err, &rangeError):
		return "range", rangeError.Column
	case errors.As(err, &unsupported):
		return "unsupported", 0
	}
	return "unknown", 0
}

// isStandardCron reports whether a standard five-field cron parser
// accepts text.
func isStandardCron(text string) bool {
	_, err := cronschedule.ParseStandard(text)
	return err == nil
}
