// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package review provides the interactive review session for the TUI.
package review

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tauantcamargo/lazyreview-sub002/internal/conflict"
	"github.com/tauantcamargo/lazyreview-sub002/internal/config"
	"github.com/tauantcamargo/lazyreview-sub002/internal/patch"
)

const conflictedFile = "top\n" +
	"<<<<<<< HEAD\nours one\n=======\ntheirs one\n>>>>>>> a\n" +
	"middle\n" +
	"<<<<<<< HEAD\nours two\n=======\ntheirs two\n>>>>>>> b\n" +
	"bottom"

const sampleDiff = `diff --git a/main.go b/main.go
--- a/main.go
+++ b/main.go
@@ -1,3 +1,3 @@
 package main
-var count = 1
+var count = 2
`

func newTestConflictModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.UI.SyntaxHighlight = false
	chunks := conflict.BuildThreeWayView(conflictedFile)
	return NewConflictModel(chunks, "file.txt", conflictedFile, cfg, false)
}

func newTestDiffModel(t *testing.T) Model {
	t.Helper()
	files := patch.Parse(sampleDiff)
	if len(files) != 1 {
		t.Fatalf("Expected 1 parsed file, got %d", len(files))
	}
	return NewDiffModel(files, config.Default())
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestModel_LoadingBeforeWindowSize(t *testing.T) {
	m := newTestConflictModel(t)
	if !strings.Contains(m.View(), "Loading") {
		t.Error("Expected loading placeholder before the first WindowSizeMsg")
	}
}

func TestModel_ConflictViewShowsContent(t *testing.T) {
	m := sized(t, newTestConflictModel(t))

	output := stripAnsi(m.View())
	for _, want := range []string{"top", "ours one", "theirs two", "bottom", "conflict 1/2"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestModel_DiffViewShowsContent(t *testing.T) {
	m := sized(t, newTestDiffModel(t))

	output := stripAnsi(m.View())
	for _, want := range []string{"main.go", "package main", "1 file"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c", "esc"} {
		m := sized(t, newTestConflictModel(t))
		_, cmd := m.Update(keyMsg(key))
		if cmd == nil {
			t.Errorf("Expected %q to quit", key)
		}
	}
}

func TestModel_NextPrevConflictWraps(t *testing.T) {
	m := sized(t, newTestConflictModel(t))

	updated, _ := m.Update(keyMsg("n"))
	m = updated.(Model)
	if m.current != 1 {
		t.Errorf("Expected current=1 after n, got %d", m.current)
	}

	updated, _ = m.Update(keyMsg("n"))
	m = updated.(Model)
	if m.current != 0 {
		t.Errorf("Expected wrap to 0 after second n, got %d", m.current)
	}

	updated, _ = m.Update(keyMsg("p"))
	m = updated.(Model)
	if m.current != 1 {
		t.Errorf("Expected wrap back to 1 after p, got %d", m.current)
	}
}

func TestModel_WordDiffToggle(t *testing.T) {
	m := sized(t, newTestDiffModel(t))

	before := m.diffViews[0].WordDiff()
	updated, _ := m.Update(keyMsg("w"))
	m = updated.(Model)
	if m.diffViews[0].WordDiff() == before {
		t.Error("Expected w to toggle word-level highlighting")
	}
}

func TestModel_ChunksReloaded(t *testing.T) {
	m := sized(t, newTestConflictModel(t))

	reloaded := conflict.BuildThreeWayView("no conflicts here")
	updated, _ := m.Update(ChunksReloadedMsg{Chunks: reloaded})
	m = updated.(Model)

	output := stripAnsi(m.View())
	if !strings.Contains(output, "no conflicts here") {
		t.Error("Expected reloaded content in the view")
	}
	if !strings.Contains(output, "no conflicts") {
		t.Error("Expected status bar to report no conflicts")
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := sized(t, newTestConflictModel(t))

	updated, _ := m.Update(keyMsg("?"))
	m = updated.(Model)
	if !strings.Contains(stripAnsi(m.View()), "next/prev conflict") {
		t.Error("Expected help line after pressing ?")
	}
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripAnsi(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}
