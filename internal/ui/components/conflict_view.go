// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the lazyreview TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tauantcamargo/lazyreview-sub002/internal/conflict"
	"github.com/tauantcamargo/lazyreview-sub002/internal/ui/styles"
	"github.com/tauantcamargo/lazyreview-sub002/internal/util"
)

// =============================================================================
// CONFLICT VIEW
// =============================================================================

// ConflictView renders a file's three-way view: common text interleaved
// with labeled ours/base/theirs panes for each conflict region.
type ConflictView struct {
	chunks       []conflict.Chunk
	path         string
	width        int
	tabWidth     int
	contextLines int          // 0 disables common-run folding
	highlighter  *Highlighter // nil disables syntax highlighting
}

// NewConflictView creates a conflict view for a chunk sequence.
func NewConflictView(chunks []conflict.Chunk, path string) *ConflictView {
	return &ConflictView{
		chunks:   chunks,
		path:     path,
		width:    80,
		tabWidth: 4,
	}
}

// SetWidth sets the render width.
func (cv *ConflictView) SetWidth(width int) {
	cv.width = width
}

// SetTabWidth sets the tab expansion width.
func (cv *ConflictView) SetTabWidth(width int) {
	cv.tabWidth = width
}

// SetContextLines folds long common runs down to n lines of context on
// each side of a conflict. Zero disables folding.
func (cv *ConflictView) SetContextLines(n int) {
	cv.contextLines = n
}

// EnableSyntaxHighlight turns on chroma highlighting for common text,
// using the view's file path to pick a lexer.
func (cv *ConflictView) EnableSyntaxHighlight(sample string) {
	cv.highlighter = NewHighlighter(cv.path, sample)
}

// SetChunks replaces the chunk sequence, e.g. after a file reload.
func (cv *ConflictView) SetChunks(chunks []conflict.Chunk) {
	cv.chunks = chunks
}

// ConflictCount returns the number of conflict chunks in the view.
func (cv *ConflictView) ConflictCount() int {
	return conflict.CountConflicts(cv.chunks)
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the full chunk sequence.
func (cv *ConflictView) View() string {
	var content strings.Builder

	conflictIdx := 0
	total := cv.ConflictCount()

	for _, chunk := range cv.chunks {
		switch chunk.Kind {
		case conflict.KindCommon:
			content.WriteString(cv.renderCommon(chunk.Lines))
		case conflict.KindConflict:
			conflictIdx++
			content.WriteString(cv.renderConflict(chunk.Region, conflictIdx, total))
		}
	}

	return content.String()
}

// ConflictOffsets returns the rendered line offset at which each conflict
// chunk starts; the review model uses these to jump between conflicts.
func (cv *ConflictView) ConflictOffsets() []int {
	var offsets []int
	line := 0

	conflictIdx := 0
	total := cv.ConflictCount()

	for _, chunk := range cv.chunks {
		switch chunk.Kind {
		case conflict.KindCommon:
			line += lipgloss.Height(cv.renderCommon(chunk.Lines)) - 1
		case conflict.KindConflict:
			offsets = append(offsets, line)
			conflictIdx++
			line += lipgloss.Height(cv.renderConflict(chunk.Region, conflictIdx, total)) - 1
		}
	}

	return offsets
}

// renderCommon renders a run of unconflicted lines, folding the middle of
// runs longer than twice the context window.
func (cv *ConflictView) renderCommon(lines []string) string {
	var content strings.Builder

	if cv.contextLines > 0 && len(lines) > 2*cv.contextLines+1 {
		hidden := len(lines) - 2*cv.contextLines
		content.WriteString(cv.renderCommonLines(lines[:cv.contextLines]))
		content.WriteString(styles.Help.Render(fmt.Sprintf("  ... %d lines ...", hidden)))
		content.WriteString("\n")
		content.WriteString(cv.renderCommonLines(lines[len(lines)-cv.contextLines:]))
		return content.String()
	}

	return cv.renderCommonLines(lines)
}

// renderCommonLines renders unconflicted lines without folding.
func (cv *ConflictView) renderCommonLines(lines []string) string {
	var content strings.Builder
	for _, line := range lines {
		text := util.ExpandTabs(line, cv.tabWidth)
		if cv.highlighter != nil {
			content.WriteString(cv.highlighter.Line(text))
		} else {
			content.WriteString(styles.ContextLine.Render(text))
		}
		content.WriteString("\n")
	}
	return content.String()
}

// renderConflict renders one conflict region as labeled panes separated by
// styled marker lines.
func (cv *ConflictView) renderConflict(region conflict.Region, index, total int) string {
	var content strings.Builder

	counter := styles.Help.Render(fmt.Sprintf("  conflict %d of %d", index, total))
	content.WriteString(styles.ConflictMarker.Render("<<<<<<< ours") + counter)
	content.WriteString("\n")
	content.WriteString(cv.renderPane(region.Ours, styles.OursPane))

	if len(region.Base) > 0 {
		content.WriteString(styles.ConflictMarker.Render("||||||| base"))
		content.WriteString("\n")
		content.WriteString(cv.renderPane(region.Base, styles.BasePane))
	}

	content.WriteString(styles.ConflictMarker.Render("======="))
	content.WriteString("\n")
	content.WriteString(cv.renderPane(region.Theirs, styles.TheirsPane))

	content.WriteString(styles.ConflictMarker.Render(">>>>>>> theirs"))
	content.WriteString("\n")

	return content.String()
}

// renderPane renders one side of a conflict with its background tint. An
// empty side renders as a single dimmed placeholder so the pane reads as
// deliberately empty rather than missing.
func (cv *ConflictView) renderPane(lines []string, style lipgloss.Style) string {
	if len(lines) == 0 {
		return styles.Help.Render("(empty)") + "\n"
	}

	var content strings.Builder
	for _, line := range lines {
		text := util.ExpandTabs(line, cv.tabWidth)
		content.WriteString(style.Render(util.PadRight(text, cv.width)))
		content.WriteString("\n")
	}
	return content.String()
}
