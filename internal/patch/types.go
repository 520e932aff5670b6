// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package patch parses unified diff text into structured file and hunk data.
package patch

// =============================================================================
// LINE TYPES
// =============================================================================

// LineType represents the type of a diff line.
type LineType int

const (
	// LineContext represents unchanged context lines
	LineContext LineType = iota
	// LineAdded represents added lines
	LineAdded
	// LineRemoved represents removed lines
	LineRemoved
)

// String returns the string representation of a line type.
func (t LineType) String() string {
	switch t {
	case LineContext:
		return "context"
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Prefix returns the diff prefix character for this line type.
func (t LineType) Prefix() string {
	switch t {
	case LineContext:
		return " "
	case LineAdded:
		return "+"
	case LineRemoved:
		return "-"
	default:
		return " "
	}
}

// =============================================================================
// STRUCTURED DIFF
// =============================================================================

// Line represents a single line within a hunk.
type Line struct {
	Type    LineType // Type of line (added, removed, context)
	Content string   // The line content without its prefix character
	OldNum  int      // Line number in the old file (0 if added)
	NewNum  int      // Line number in the new file (0 if removed)
}

// Hunk represents a contiguous block of changes within a file diff.
type Hunk struct {
	OldStart int    // Starting line in the old file
	OldCount int    // Number of old-file lines covered
	NewStart int    // Starting line in the new file
	NewCount int    // Number of new-file lines covered
	Header   string // Trailing section heading from the @@ line, if any
	Lines    []Line // The actual diff lines
}

// File represents the diff for a single file.
type File struct {
	OldName  string // Path on the old side
	NewName  string // Path on the new side
	Status   string // "added", "deleted", "modified", "renamed"
	IsBinary bool   // True for binary file notices
	Hunks    []Hunk // The diff hunks
}

// Stats holds aggregate statistics for one file diff.
type Stats struct {
	Additions int // Number of added lines
	Deletions int // Number of removed lines
}

// Stats computes addition/deletion counts across all hunks.
func (f *File) Stats() Stats {
	var stats Stats
	for _, hunk := range f.Hunks {
		for _, line := range hunk.Lines {
			switch line.Type {
			case LineAdded:
				stats.Additions++
			case LineRemoved:
				stats.Deletions++
			}
		}
	}
	return stats
}

// =============================================================================
// CHANGED-LINE PAIRING
// =============================================================================

// PairKind classifies one entry of PairChangedLines.
type PairKind int

const (
	// PairModified pairs a removed line with the added line replacing it
	PairModified PairKind = iota
	// PairRemoved is a removed line with no replacement
	PairRemoved
	// PairAdded is an added line with no removed counterpart
	PairAdded
)

// Pair is one old/new line pairing extracted from a hunk. Modified pairs
// are what the word-level diff engine consumes; pure additions and
// removals render as whole-line changes. Old is zero for PairAdded and
// New is zero for PairRemoved.
type Pair struct {
	Old  Line
	New  Line
	Kind PairKind
}

// PairRun pairs one run of changed lines (removals followed by additions,
// no context lines) position by position. Extra lines on the longer side
// become pure removals or additions.
func PairRun(run []Line) []Pair {
	var removed, added []Line
	for _, line := range run {
		switch line.Type {
		case LineRemoved:
			removed = append(removed, line)
		case LineAdded:
			added = append(added, line)
		}
	}

	n := len(removed)
	if len(added) > n {
		n = len(added)
	}

	var pairs []Pair
	for i := 0; i < n; i++ {
		switch {
		case i < len(removed) && i < len(added):
			pairs = append(pairs, Pair{Old: removed[i], New: added[i], Kind: PairModified})
		case i < len(removed):
			pairs = append(pairs, Pair{Old: removed[i], Kind: PairRemoved})
		default:
			pairs = append(pairs, Pair{New: added[i], Kind: PairAdded})
		}
	}
	return pairs
}

// PairChangedLines pairs every changed run in a hunk via PairRun. Context
// lines end the current run.
func PairChangedLines(h Hunk) []Pair {
	var pairs []Pair
	var run []Line

	for _, line := range h.Lines {
		if line.Type == LineContext {
			pairs = append(pairs, PairRun(run)...)
			run = run[:0]
			continue
		}
		run = append(run, line)
	}
	return append(pairs, PairRun(run)...)
}
