// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cronedit/cronedit/lib/gentleselect"
)

// parseItemArgument reads "VALUE=LABEL", or a bare "VALUE" that is its
// own label.
func parseItemArgument(argument string) (gentleselect.Item, error) {
	value, label, found := strings.Cut(argument, "=")
	if !found {
		label = value
	}
	if value == "" {
		return gentleselect.Item{}, fmt.Errorf("item %q has an empty value", argument)
	}
	return gentleselect.Item{Label: label, Value: value}, nil
}

// readItems reads one item per line as "VALUE<TAB>LABEL" or a bare
// "VALUE". Blank lines and lines starting with # are skipped.
func readItems(reader io.Reader) ([]gentleselect.Item, error) {
	var items []gentleselect.Item
	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		value, label, found := strings.Cut(line, "\t")
		if !found {
			label = value
		}
		if value == "" {
			return nil, fmt.Errorf("line %d: empty value", lineNumber)
		}
		items = append(items, gentleselect.Item{Label: label, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
