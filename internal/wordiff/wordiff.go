// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package wordiff computes word-level diffs between two versions of a line.
package wordiff

import (
	"strings"
	"unicode"
)

// =============================================================================
// TAGS
// =============================================================================

// Tag classifies a token (and later a segment) after alignment.
type Tag int

const (
	// TagEqual marks tokens present on both sides in matching order
	TagEqual Tag = iota
	// TagChanged marks tokens unique to one side
	TagChanged
)

// String returns the string representation of a tag.
func (t Tag) String() string {
	switch t {
	case TagEqual:
		return "equal"
	case TagChanged:
		return "changed"
	default:
		return "unknown"
	}
}

// =============================================================================
// SEGMENTS
// =============================================================================

// Segment is a run of same-tag tokens merged into one renderable unit.
//
// Invariants, guaranteed by construction:
//   - concatenating a side's segment texts reproduces that side's line
//   - no two adjacent segments share the same Type
//   - Text is never empty
type Segment struct {
	Text string // Concatenated token text
	Type Tag    // equal or changed
}

// Result holds the per-side segment lists for one compared line pair.
// It carries no state beyond the call that produced it.
type Result struct {
	OldSegments []Segment
	NewSegments []Segment
}

// =============================================================================
// TOKENIZER
// =============================================================================

// charClass is the tokenizer's character classification.
type charClass int

const (
	classSpace charClass = iota // whitespace run
	classWord                   // letters, digits, underscore
	classPunct                  // any other character, one token each
)

// classify returns the tokenizer class for a rune.
func classify(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// Tokenize splits a line into atomic tokens: maximal whitespace runs,
// maximal word runs, and single punctuation characters. Tokenization is
// lossless - concatenating the tokens reproduces the line exactly.
// An empty line yields no tokens.
func Tokenize(line string) []string {
	if line == "" {
		return nil
	}

	var tokens []string
	var current strings.Builder
	currentClass := classPunct

	for _, r := range line {
		class := classify(r)

		// Punctuation never extends a token; class changes always flush.
		if current.Len() > 0 && (class != currentClass || class == classPunct) {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
		currentClass = class
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// =============================================================================
// ALIGNMENT
// =============================================================================

// Align tags each token of both sequences as equal or changed using a
// longest-common-subsequence alignment. Tokens participating in the LCS
// are equal; everything else is changed. Runs in O(len(old)*len(new)).
func Align(oldTokens, newTokens []string) (oldTags, newTags []Tag) {
	m, n := len(oldTokens), len(newTokens)

	oldTags = make([]Tag, m)
	newTags = make([]Tag, n)
	for i := range oldTags {
		oldTags[i] = TagChanged
	}
	for j := range newTags {
		newTags[j] = TagChanged
	}

	if m == 0 || n == 0 {
		return oldTags, newTags
	}

	// DP table of LCS lengths
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if oldTokens[i-1] == newTokens[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	// Backtrack, tagging matched positions on both sides
	i, j := m, n
	for i > 0 && j > 0 {
		if oldTokens[i-1] == newTokens[j-1] {
			oldTags[i-1] = TagEqual
			newTags[j-1] = TagEqual
			i--
			j--
		} else if dp[i-1][j] >= dp[i][j-1] {
			i--
		} else {
			j--
		}
	}

	return oldTags, newTags
}

// =============================================================================
// SEGMENT MERGING
// =============================================================================

// MergeSegments collapses consecutive same-tag tokens into single segments.
// tokens and tags must be index-aligned, as produced by Tokenize and Align.
func MergeSegments(tokens []string, tags []Tag) []Segment {
	if len(tokens) == 0 {
		return nil
	}

	var segments []Segment
	var text strings.Builder
	currentTag := tags[0]

	for i, token := range tokens {
		if tags[i] != currentTag {
			segments = append(segments, Segment{Text: text.String(), Type: currentTag})
			text.Reset()
			currentTag = tags[i]
		}
		text.WriteString(token)
	}
	segments = append(segments, Segment{Text: text.String(), Type: currentTag})

	return segments
}

// =============================================================================
// PIPELINE
// =============================================================================

// Compute runs the full word-diff pipeline for one old/new line pair:
// tokenize both sides, align, and merge each side's tagged tokens into
// segments. This is the entry point callers should use.
func Compute(oldLine, newLine string) Result {
	oldTokens := Tokenize(oldLine)
	newTokens := Tokenize(newLine)

	oldTags, newTags := Align(oldTokens, newTokens)

	return Result{
		OldSegments: MergeSegments(oldTokens, oldTags),
		NewSegments: MergeSegments(newTokens, newTags),
	}
}
