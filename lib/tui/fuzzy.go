// Copyright 2026 The Cronedit Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult is the outcome of matching a pattern against one label.
// A zero Score means no match.
type FuzzyResult struct {
	Score     int
	Positions []int // Rune offsets of matched characters in the text.
}

// FuzzyMatch scores text against pattern with fzf's V2 algorithm. Both
// sides are lowercased, so matching is case-insensitive regardless of
// how the pattern was typed. A nil slab is allowed; callers matching
// many labels per keystroke can pass one to avoid allocation.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}
	lowered := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, positions := algo.FuzzyMatchV2(false, false, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}
	match := FuzzyResult{Score: result.Score}
	if positions != nil {
		match.Positions = *positions
	}
	return match
}

// BestFuzzyMatch returns the index of the label that scores highest
// against pattern, or -1 if nothing matches. Ties go to the earlier
// label, so a grid's reading order breaks them.
func BestFuzzyMatch(labels []string, pattern []rune) int {
	best := -1
	bestScore := 0
	slab := util.MakeSlab(100*1024, 2048)
	for index, label := range labels {
		result := FuzzyMatch(label, pattern, slab)
		if result.Score > bestScore {
			best = index
			bestScore = result.Score
		}
	}
	return best
}
