// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conflict parses merge-conflict markers into renderable structure.
package conflict

import "strings"

// =============================================================================
// THREE-WAY CHUNKS
// =============================================================================

// ChunkKind distinguishes the two chunk variants.
type ChunkKind int

const (
	// KindCommon is a run of lines outside any conflict block
	KindCommon ChunkKind = iota
	// KindConflict is one parsed conflict region
	KindConflict
)

// String returns the string representation of a chunk kind.
func (k ChunkKind) String() string {
	switch k {
	case KindCommon:
		return "common"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Chunk is one element of a file's three-way view: either a run of common
// lines or a conflict region, in source order. Lines is set only for
// KindCommon chunks; Region only for KindConflict chunks.
type Chunk struct {
	Kind   ChunkKind
	Lines  []string
	Region Region
}

// =============================================================================
// VIEW BUILDING
// =============================================================================

// BuildThreeWayView turns raw conflict-marked content into the ordered chunk
// sequence a renderer consumes: untouched line runs interleaved with parsed
// conflict regions.
//
// Common chunks are never empty and never adjacent to each other; two
// conflict chunks are adjacent exactly when their blocks touch in the
// source. Content without conflicts becomes a single common chunk holding
// every line (empty content is one common chunk with one empty line).
func BuildThreeWayView(content string) []Chunk {
	lines := strings.Split(content, "\n")
	regions := ParseMarkers(content)

	var chunks []Chunk
	pos := 0

	for _, region := range regions {
		if pos < region.StartLine {
			chunks = append(chunks, Chunk{Kind: KindCommon, Lines: lines[pos:region.StartLine]})
		}
		chunks = append(chunks, Chunk{Kind: KindConflict, Region: region})
		pos = region.EndLine + 1
	}

	if pos < len(lines) {
		chunks = append(chunks, Chunk{Kind: KindCommon, Lines: lines[pos:]})
	}

	return chunks
}

// =============================================================================
// COUNTING
// =============================================================================

// CountConflicts returns the number of conflict chunks in a view.
func CountConflicts(chunks []Chunk) int {
	count := 0
	for _, chunk := range chunks {
		if chunk.Kind == KindConflict {
			count++
		}
	}
	return count
}
