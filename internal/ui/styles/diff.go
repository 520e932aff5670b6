// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the lazyreview TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// SHARED DIFF STYLES
// =============================================================================

// Pre-built styles for diff rendering. Built once; lipgloss styles are
// immutable values so sharing them across components is safe.
var (
	// FilePath renders file headers in diff views
	FilePath = lipgloss.NewStyle().Foreground(Cyan).Bold(true)

	// HunkHeader renders @@ range lines
	HunkHeader = lipgloss.NewStyle().Foreground(Cyan).Background(SurfaceDim).Bold(true).Padding(0, 1)

	// LineNumber renders gutter line numbers
	LineNumber = lipgloss.NewStyle().Foreground(TextMuted)

	// ContextLine renders unchanged lines
	ContextLine = lipgloss.NewStyle().Foreground(TextSecondary)

	// AddedLine / RemovedLine tint whole changed lines
	AddedLine   = lipgloss.NewStyle().Foreground(AddedFg).Background(AddedBg)
	RemovedLine = lipgloss.NewStyle().Foreground(RemovedFg).Background(RemovedBg)

	// AddedWord / RemovedWord emphasize changed segments within a line
	AddedWord   = lipgloss.NewStyle().Foreground(AddedFg).Background(AddedWordBg).Bold(true)
	RemovedWord = lipgloss.NewStyle().Foreground(RemovedFg).Background(RemovedWordBg).Bold(true)

	// ConflictMarker renders the <<<<<<< / ======= / >>>>>>> separators
	ConflictMarker = lipgloss.NewStyle().Foreground(Amber).Bold(true)

	// Pane label styles for the three conflict sides
	OursPaneLabel   = lipgloss.NewStyle().Foreground(OursLabel).Bold(true)
	BasePaneLabel   = lipgloss.NewStyle().Foreground(BaseLabel).Bold(true)
	TheirsPaneLabel = lipgloss.NewStyle().Foreground(TheirsLabel).Bold(true)

	// Pane body styles
	OursPane   = lipgloss.NewStyle().Background(OursBg)
	BasePane   = lipgloss.NewStyle().Background(BaseBg)
	TheirsPane = lipgloss.NewStyle().Background(TheirsBg)

	// StatusBar renders the bottom status line
	StatusBar = lipgloss.NewStyle().Foreground(TextSecondary).Background(SurfaceDim).Padding(0, 1)

	// Help renders key hints
	Help = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)
)
