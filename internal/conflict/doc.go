// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conflict parses merge-conflict markers into renderable structure.
//
// The package turns the raw text of a file containing git-style conflict
// markers (<<<<<<<, optional |||||||, =======, >>>>>>>) into an ordered
// sequence of chunks: runs of untouched common lines interleaved with
// structured conflict regions split into ours/base/theirs sides.
//
// # Key Types
//
//   - Region: One conflict block with its three sides and marker line bounds
//   - Chunk: Either a run of common lines or one conflict region
//   - ChunkKind: Tag distinguishing the two chunk variants
//
// # Usage
//
// Build the chunk sequence for a conflicted file:
//
//	chunks := conflict.BuildThreeWayView(content)
//	fmt.Printf("%d conflicts\n", conflict.CountConflicts(chunks))
//
// Parsing never fails. Malformed marker sequences degrade to common
// content; a block whose opening marker is never closed is treated as no
// conflict at all, so its lines render as ordinary text.
package conflict
