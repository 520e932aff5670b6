// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conflict parses merge-conflict markers into renderable structure.
package conflict

import "strings"

// =============================================================================
// CONFLICT MARKERS
// =============================================================================

// Git's standard three-way merge markers. Opening, base, and closing markers
// carry a trailing label which is ignored; the separator is bare.
const (
	markerOurs   = "<<<<<<<"
	markerBase   = "|||||||"
	markerSplit  = "======="
	markerTheirs = ">>>>>>>"
)

// =============================================================================
// CONFLICT REGION
// =============================================================================

// Region is one conflict block extracted from conflict-marked content.
//
// StartLine and EndLine are 0-based indices of the opening and closing
// marker lines in the original content. Base is empty when the content had
// no ||||||| section (a two-way conflict).
type Region struct {
	Ours      []string // Lines between <<<<<<< and ||||||| (or =======)
	Base      []string // Lines between ||||||| and =======
	Theirs    []string // Lines between ======= and >>>>>>>
	StartLine int      // Index of the <<<<<<< line
	EndLine   int      // Index of the >>>>>>> line
}

// =============================================================================
// PARSER STATE MACHINE
// =============================================================================

// parseState is the parser's position relative to conflict markers.
type parseState int

const (
	stateOutside parseState = iota // Not inside any conflict block
	stateInOurs                    // After <<<<<<<, before ||||||| or =======
	stateInBase                    // After |||||||, before =======
	stateInTheirs                  // After =======, before >>>>>>>
)

// ParseMarkers scans content for git-style conflict blocks and returns the
// regions in source order. Content outside conflict blocks is not retained.
//
// The parser is a four-state machine and never fails: marker lines that
// appear in an unexpected state are treated as ordinary content, and a
// region whose <<<<<<< is never closed by >>>>>>> is discarded entirely
// (its lines read as common content downstream). Files without markers,
// including empty content, yield no regions.
func ParseMarkers(content string) []Region {
	lines := strings.Split(content, "\n")

	var regions []Region
	var current Region
	state := stateOutside

	for i, line := range lines {
		switch state {
		case stateOutside:
			if strings.HasPrefix(line, markerOurs) {
				current = Region{StartLine: i}
				state = stateInOurs
			}

		case stateInOurs:
			switch {
			case strings.HasPrefix(line, markerBase):
				state = stateInBase
			case line == markerSplit:
				state = stateInTheirs
			default:
				current.Ours = append(current.Ours, line)
			}

		case stateInBase:
			if line == markerSplit {
				state = stateInTheirs
			} else {
				current.Base = append(current.Base, line)
			}

		case stateInTheirs:
			if strings.HasPrefix(line, markerTheirs) {
				current.EndLine = i
				regions = append(regions, current)
				state = stateOutside
			} else {
				current.Theirs = append(current.Theirs, line)
			}
		}
	}

	return regions
}
