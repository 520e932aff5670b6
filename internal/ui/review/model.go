// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package review provides the interactive review session for the TUI.
package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tauantcamargo/lazyreview-sub002/internal/conflict"
	"github.com/tauantcamargo/lazyreview-sub002/internal/config"
	"github.com/tauantcamargo/lazyreview-sub002/internal/patch"
	"github.com/tauantcamargo/lazyreview-sub002/internal/ui/components"
	"github.com/tauantcamargo/lazyreview-sub002/internal/ui/styles"
)

// =============================================================================
// REVIEW MODES
// =============================================================================

// Mode selects what the review session displays.
type Mode int

const (
	// ModeDiff reviews a parsed unified diff
	ModeDiff Mode = iota
	// ModeConflicts reviews a conflicted file's three-way view
	ModeConflicts
)

// =============================================================================
// MESSAGES
// =============================================================================

// ChunksReloadedMsg carries a freshly parsed three-way view after the
// watched file changed on disk.
type ChunksReloadedMsg struct {
	Chunks []conflict.Chunk
}

// =============================================================================
// REVIEW MODEL
// =============================================================================

// Model is the Bubble Tea model for a review session.
type Model struct {
	mode Mode
	cfg  *config.Config

	// Diff mode state
	diffViews []*components.DiffView

	// Conflict mode state
	conflictView *components.ConflictView
	offsets      []int // Rendered line offset of each conflict
	current      int   // Index of the focused conflict
	watching     bool

	// Shared UI state
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	showHelp bool
}

// NewDiffModel creates a review session over parsed diff files.
func NewDiffModel(files []patch.File, cfg *config.Config) Model {
	var views []*components.DiffView
	for _, file := range files {
		view := components.NewDiffView(file)
		view.SetWordDiff(cfg.UI.WordDiff)
		view.SetTabWidth(cfg.UI.TabWidth)
		views = append(views, view)
	}

	return Model{
		mode:      ModeDiff,
		cfg:       cfg,
		diffViews: views,
	}
}

// NewConflictModel creates a review session over a conflicted file.
func NewConflictModel(chunks []conflict.Chunk, path, sample string, cfg *config.Config, watching bool) Model {
	view := components.NewConflictView(chunks, path)
	view.SetTabWidth(cfg.UI.TabWidth)
	view.SetContextLines(cfg.UI.ContextLines)
	if cfg.UI.SyntaxHighlight {
		view.EnableSyntaxHighlight(sample)
	}

	return Model{
		mode:         ModeConflicts,
		cfg:          cfg,
		conflictView: view,
		watching:     watching,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refreshContent()
		m.ready = true
		return m, nil

	case ChunksReloadedMsg:
		if m.mode == ModeConflicts {
			m.conflictView.SetChunks(msg.Chunks)
			m.refreshContent()
			if m.current >= len(m.offsets) {
				m.current = 0
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey processes one key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "?":
		m.showHelp = !m.showHelp
		m.resize()
		return m, nil

	case "w":
		if m.mode == ModeDiff {
			for _, view := range m.diffViews {
				view.SetWordDiff(!view.WordDiff())
			}
			m.refreshContent()
		}
		return m, nil

	case "n":
		if m.mode == ModeConflicts && len(m.offsets) > 0 {
			m.current = (m.current + 1) % len(m.offsets)
			m.viewport.SetYOffset(m.offsets[m.current])
		}
		return m, nil

	case "p":
		if m.mode == ModeConflicts && len(m.offsets) > 0 {
			m.current = (m.current - 1 + len(m.offsets)) % len(m.offsets)
			m.viewport.SetYOffset(m.offsets[m.current])
		}
		return m, nil

	case "g":
		m.viewport.GotoTop()
		return m, nil

	case "G":
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// resize recalculates the viewport dimensions from the window size.
// Layout: content viewport + status bar (1 line) + optional help (1 line).
func (m *Model) resize() {
	chrome := 1
	if m.showHelp {
		chrome++
	}
	height := m.height - chrome
	if height < 1 {
		height = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, height)
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
}

// refreshContent re-renders the underlying views into the viewport.
func (m *Model) refreshContent() {
	width := m.width
	if width <= 0 {
		width = 80
	}

	switch m.mode {
	case ModeDiff:
		var sections []string
		for _, view := range m.diffViews {
			view.SetWidth(width)
			sections = append(sections, view.View())
		}
		m.viewport.SetContent(strings.Join(sections, "\n"))

	case ModeConflicts:
		m.conflictView.SetWidth(width)
		m.viewport.SetContent(m.conflictView.View())
		m.offsets = m.conflictView.ConflictOffsets()
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(m.viewport.View())
	content.WriteString("\n")
	content.WriteString(m.renderStatusBar())

	if m.showHelp {
		content.WriteString("\n")
		content.WriteString(m.renderHelp())
	}

	return content.String()
}

// renderStatusBar renders the bottom status line.
func (m Model) renderStatusBar() string {
	var left string
	switch m.mode {
	case ModeDiff:
		files := len(m.diffViews)
		noun := "file"
		if files != 1 {
			noun = "files"
		}
		left = fmt.Sprintf("%d %s", files, noun)

	case ModeConflicts:
		total := m.conflictView.ConflictCount()
		if total == 0 {
			left = "no conflicts"
		} else {
			left = fmt.Sprintf("conflict %d/%d", m.current+1, total)
		}
		if m.watching {
			left += "  (watching)"
		}
	}

	scroll := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	return styles.StatusBar.Render(left + "  " + scroll + "  ? help")
}

// renderHelp renders the key hint line.
func (m Model) renderHelp() string {
	switch m.mode {
	case ModeConflicts:
		return styles.Help.Render("n/p next/prev conflict  g/G top/bottom  q quit")
	default:
		return styles.Help.Render("w toggle word diff  g/G top/bottom  q quit")
	}
}
