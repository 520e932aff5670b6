// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the lazyreview TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tauantcamargo/lazyreview-sub002/internal/patch"
	"github.com/tauantcamargo/lazyreview-sub002/internal/ui/styles"
	"github.com/tauantcamargo/lazyreview-sub002/internal/util"
	"github.com/tauantcamargo/lazyreview-sub002/internal/wordiff"
)

// =============================================================================
// DIFF VIEW
// =============================================================================

// DiffView renders a parsed file diff with optional word-level highlighting
// inside changed line pairs.
type DiffView struct {
	file     patch.File
	width    int
	wordDiff bool
	tabWidth int
}

// NewDiffView creates a diff view for one parsed file.
func NewDiffView(file patch.File) *DiffView {
	return &DiffView{
		file:     file,
		width:    80,
		wordDiff: true,
		tabWidth: 4,
	}
}

// SetWidth sets the render width.
func (dv *DiffView) SetWidth(width int) {
	dv.width = width
}

// SetWordDiff toggles word-level highlighting.
func (dv *DiffView) SetWordDiff(enabled bool) {
	dv.wordDiff = enabled
}

// SetTabWidth sets the tab expansion width.
func (dv *DiffView) SetTabWidth(width int) {
	dv.tabWidth = width
}

// WordDiff reports whether word-level highlighting is active.
func (dv *DiffView) WordDiff() bool {
	return dv.wordDiff
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the complete file diff.
func (dv *DiffView) View() string {
	var content strings.Builder

	content.WriteString(dv.renderHeader())
	content.WriteString("\n")

	if dv.file.IsBinary {
		content.WriteString(styles.Help.Render("Binary file not shown"))
		content.WriteString("\n")
		return content.String()
	}
	if len(dv.file.Hunks) == 0 {
		content.WriteString(styles.Help.Render("No changes"))
		content.WriteString("\n")
		return content.String()
	}

	for i, hunk := range dv.file.Hunks {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(dv.renderHunk(hunk))
	}

	return content.String()
}

// renderHeader renders the file path line with change stats.
func (dv *DiffView) renderHeader() string {
	name := dv.file.NewName
	if dv.file.Status == "deleted" {
		name = dv.file.OldName
	}
	header := styles.FilePath.Render(name)

	if dv.file.Status == "renamed" {
		header = styles.FilePath.Render(dv.file.OldName+" -> "+dv.file.NewName)
	}

	stats := dv.file.Stats()
	var parts []string
	parts = append(parts, header)
	if stats.Additions > 0 {
		parts = append(parts, styles.AddedLine.Render(fmt.Sprintf("+%d", stats.Additions)))
	}
	if stats.Deletions > 0 {
		parts = append(parts, styles.RemovedLine.Render(fmt.Sprintf("-%d", stats.Deletions)))
	}
	return strings.Join(parts, " ")
}

// renderHunk renders one hunk: its @@ header, then lines in order, with
// changed runs optionally refined by word-level segments.
func (dv *DiffView) renderHunk(hunk patch.Hunk) string {
	var content strings.Builder

	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
	if hunk.Header != "" {
		header += " " + hunk.Header
	}
	content.WriteString(styles.HunkHeader.Render(header))
	content.WriteString("\n")

	i := 0
	for i < len(hunk.Lines) {
		line := hunk.Lines[i]

		if line.Type == patch.LineContext {
			content.WriteString(dv.renderContextLine(line))
			content.WriteString("\n")
			i++
			continue
		}

		// Collect the full changed run (removals then additions).
		runStart := i
		for i < len(hunk.Lines) && hunk.Lines[i].Type != patch.LineContext {
			i++
		}
		content.WriteString(dv.renderChangedRun(hunk.Lines[runStart:i]))
	}

	return content.String()
}

// renderContextLine renders an unchanged line with both line numbers.
func (dv *DiffView) renderContextLine(line patch.Line) string {
	gutter := styles.LineNumber.Render(fmt.Sprintf("%4d %4d", line.OldNum, line.NewNum))
	text := util.ExpandTabs(line.Content, dv.tabWidth)
	return gutter + " " + styles.ContextLine.Render(" "+text)
}

// renderChangedRun renders one run of removed and added lines, paired by
// patch.PairRun. With word diff enabled, modified pairs get segment-level
// emphasis so only the tokens that differ stand out; unpaired lines render
// as whole-line changes.
func (dv *DiffView) renderChangedRun(run []patch.Line) string {
	pairs := patch.PairRun(run)

	var content strings.Builder

	for _, pair := range pairs {
		if pair.Kind == patch.PairAdded {
			continue
		}
		gutter := styles.LineNumber.Render(fmt.Sprintf("%4d     ", pair.Old.OldNum))
		content.WriteString(gutter + " ")
		if dv.wordDiff && pair.Kind == patch.PairModified {
			result := wordiff.Compute(pair.Old.Content, pair.New.Content)
			content.WriteString(dv.renderSegments("-", result.OldSegments, styles.RemovedLine, styles.RemovedWord))
		} else {
			content.WriteString(styles.RemovedLine.Render("-" + util.ExpandTabs(pair.Old.Content, dv.tabWidth)))
		}
		content.WriteString("\n")
	}

	for _, pair := range pairs {
		if pair.Kind == patch.PairRemoved {
			continue
		}
		gutter := styles.LineNumber.Render(fmt.Sprintf("     %4d", pair.New.NewNum))
		content.WriteString(gutter + " ")
		if dv.wordDiff && pair.Kind == patch.PairModified {
			result := wordiff.Compute(pair.Old.Content, pair.New.Content)
			content.WriteString(dv.renderSegments("+", result.NewSegments, styles.AddedLine, styles.AddedWord))
		} else {
			content.WriteString(styles.AddedLine.Render("+" + util.ExpandTabs(pair.New.Content, dv.tabWidth)))
		}
		content.WriteString("\n")
	}

	return content.String()
}

// renderSegments renders one side of a word-diff result: equal segments in
// the line style, changed segments in the emphasis style.
func (dv *DiffView) renderSegments(prefix string, segments []wordiff.Segment, lineStyle, wordStyle lipgloss.Style) string {
	var content strings.Builder
	content.WriteString(lineStyle.Render(prefix))

	for _, seg := range segments {
		text := util.ExpandTabs(seg.Text, dv.tabWidth)
		if seg.Type == wordiff.TagChanged {
			content.WriteString(wordStyle.Render(text))
		} else {
			content.WriteString(lineStyle.Render(text))
		}
	}

	return content.String()
}
