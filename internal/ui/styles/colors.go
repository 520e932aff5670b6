// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the lazyreview TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Purple - Primary accent, headers, selections
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - File paths, hunk headers, info
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Additions, success states
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Deletions, errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Conflict markers, warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators, subtle backgrounds
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Line numbers, hints, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// =============================================================================
// DIFF COLORS
// =============================================================================

// Added line tint (whole-line background for additions)
var AddedBg = lipgloss.AdaptiveColor{Light: "#DCFCE7", Dark: "#0E2818"}
var AddedFg = lipgloss.AdaptiveColor{Light: "#166534", Dark: "#86EFAC"}

// Removed line tint (whole-line background for deletions)
var RemovedBg = lipgloss.AdaptiveColor{Light: "#FEE2E2", Dark: "#2D1214"}
var RemovedFg = lipgloss.AdaptiveColor{Light: "#991B1B", Dark: "#FCA5A5"}

// Changed-word emphasis: stronger backgrounds layered on the line tints so
// equal segments read as context and changed segments pop.
var AddedWordBg = lipgloss.AdaptiveColor{Light: "#86EFAC", Dark: "#14532D"}
var RemovedWordBg = lipgloss.AdaptiveColor{Light: "#FCA5A5", Dark: "#7F1D1D"}

// =============================================================================
// CONFLICT PANE COLORS
// =============================================================================

// Ours pane (current branch side)
var OursLabel = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}
var OursBg = lipgloss.AdaptiveColor{Light: "#ECFEFF", Dark: "#0C2328"}

// Base pane (common ancestor)
var BaseLabel = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}
var BaseBg = lipgloss.AdaptiveColor{Light: "#F9FAFB", Dark: "#1C1C2A"}

// Theirs pane (incoming side)
var TheirsLabel = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
var TheirsBg = lipgloss.AdaptiveColor{Light: "#F5F3FF", Dark: "#221A33"}
