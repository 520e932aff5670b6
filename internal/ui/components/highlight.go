// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the lazyreview TUI.
package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// Highlighter applies chroma syntax highlighting to source lines, with the
// lexer chosen once per file.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewHighlighter builds a highlighter for the given file name. When the
// name matches no known lexer the content sample is analysed instead; the
// fallback lexer passes text through unstyled.
func NewHighlighter(filename, sample string) *Highlighter {
	lexer := lexers.Match(filename)
	if lexer == nil && sample != "" {
		lexer = lexers.Analyse(sample)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	return &Highlighter{lexer: lexer, style: style}
}

// Line returns one source line with ANSI syntax highlighting applied.
// Highlighting failures fall back to the plain text.
func (h *Highlighter) Line(line string) string {
	if line == "" {
		return line
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, h.style, iterator); err != nil {
		return line
	}

	// Chroma appends a newline for the final token; trim so callers keep
	// control of line joining.
	return strings.TrimRight(buf.String(), "\n")
}
