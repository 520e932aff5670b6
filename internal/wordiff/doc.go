// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package wordiff computes word-level diffs between two versions of a line.
//
// Given the old and new text of a single changed line, the package explains
// why the two versions differ by splitting each side into atomic tokens
// (word runs, whitespace runs, single punctuation characters), aligning the
// token sequences with a longest-common-subsequence pass, and merging runs
// of same-classification tokens into renderable segments.
//
// # Key Types
//
//   - Tag: Classification of a token or segment (equal, changed)
//   - Segment: Merged run of same-tag tokens with its text
//   - Result: Old-side and new-side segment lists for one line pair
//
// # Usage
//
// Compute segments for a changed line pair:
//
//	result := wordiff.Compute("foo(bar)", "foo(baz)")
//	for _, seg := range result.NewSegments {
//		render(seg.Text, seg.Type)
//	}
//
// All functions are pure and total: any pair of strings produces a valid
// result, and concatenating a side's segments reproduces that side's input
// exactly.
package wordiff
