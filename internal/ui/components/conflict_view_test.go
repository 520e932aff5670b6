// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the lazyreview TUI.
package components

import (
	"strings"
	"testing"

	"github.com/tauantcamargo/lazyreview-sub002/internal/conflict"
)

const sampleConflict = "common top\n" +
	"<<<<<<< HEAD\nour line\n||||||| merged\nbase line\n=======\ntheir line\n>>>>>>> feature\n" +
	"common bottom"

func TestConflictView_RendersAllSections(t *testing.T) {
	chunks := conflict.BuildThreeWayView(sampleConflict)
	view := NewConflictView(chunks, "sample.txt")
	view.SetWidth(60)

	output := stripped(view.View())

	for _, want := range []string{
		"common top",
		"<<<<<<< ours",
		"our line",
		"||||||| base",
		"base line",
		"=======",
		"their line",
		">>>>>>> theirs",
		"common bottom",
		"conflict 1 of 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q\n%s", want, output)
		}
	}
}

func TestConflictView_TwoWayOmitsBasePane(t *testing.T) {
	chunks := conflict.BuildThreeWayView("<<<<<<< HEAD\nours\n=======\ntheirs\n>>>>>>> x")
	view := NewConflictView(chunks, "file.txt")

	output := stripped(view.View())

	if strings.Contains(output, "||||||| base") {
		t.Error("Two-way conflict should not render a base pane")
	}
}

func TestConflictView_EmptySidePlaceholder(t *testing.T) {
	chunks := conflict.BuildThreeWayView("<<<<<<< HEAD\n=======\ntheirs\n>>>>>>> x")
	view := NewConflictView(chunks, "file.txt")

	if !strings.Contains(stripped(view.View()), "(empty)") {
		t.Error("Empty ours side should render a placeholder")
	}
}

func TestConflictView_ConflictCount(t *testing.T) {
	content := "<<<<<<< H\na\n=======\nb\n>>>>>>> x\nmid\n<<<<<<< H\nc\n=======\nd\n>>>>>>> y"
	view := NewConflictView(conflict.BuildThreeWayView(content), "f.txt")

	if view.ConflictCount() != 2 {
		t.Errorf("Expected 2 conflicts, got %d", view.ConflictCount())
	}
}

func TestConflictView_ConflictOffsets(t *testing.T) {
	chunks := conflict.BuildThreeWayView(sampleConflict)
	view := NewConflictView(chunks, "sample.txt")

	offsets := view.ConflictOffsets()
	if len(offsets) != 1 {
		t.Fatalf("Expected 1 offset, got %v", offsets)
	}
	// One common line precedes the conflict.
	if offsets[0] != 1 {
		t.Errorf("Expected conflict at rendered line 1, got %d", offsets[0])
	}
}

func TestConflictView_FoldsLongCommonRuns(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "line")
	}
	content := strings.Join(lines, "\n") + "\n<<<<<<< H\na\n=======\nb\n>>>>>>> x"

	view := NewConflictView(conflict.BuildThreeWayView(content), "f.txt")
	view.SetContextLines(2)

	output := stripped(view.View())
	if !strings.Contains(output, "... 6 lines ...") {
		t.Errorf("Expected 6 folded lines, got:\n%s", output)
	}

	// Folding off renders everything.
	view.SetContextLines(0)
	if strings.Contains(stripped(view.View()), "...") {
		t.Error("Expected no folding when context lines is 0")
	}
}

func TestConflictView_SetChunksReplacesContent(t *testing.T) {
	view := NewConflictView(conflict.BuildThreeWayView("plain"), "f.txt")
	if view.ConflictCount() != 0 {
		t.Fatal("Expected no conflicts initially")
	}

	view.SetChunks(conflict.BuildThreeWayView("<<<<<<< H\na\n=======\nb\n>>>>>>> x"))
	if view.ConflictCount() != 1 {
		t.Error("Expected 1 conflict after SetChunks")
	}
}
