// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command table and argument parsing for lazyreview.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	// CmdDiff reviews a unified diff from a file or stdin
	CmdDiff Command = iota
	// CmdConflicts reviews a conflicted file as a three-way view
	CmdConflicts
	// CmdVersion prints version information
	CmdVersion
	// CmdHelp prints usage
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Path is the input file. "-" or "" means stdin for the diff command.
	Path string

	// Watch re-parses the conflicted file whenever it changes on disk.
	Watch bool

	// Plain forces non-interactive text output even on a TTY.
	Plain bool

	// NoColor disables colored output.
	NoColor bool

	// Width overrides the detected terminal width. 0 means auto.
	Width int
}

const usageText = `# lazyreview

Word-level diff review and merge-conflict inspection for the terminal.

## Usage

    lazyreview diff [file|-]       Review a unified diff (stdin when omitted)
    lazyreview conflicts <file>    Three-way view of a conflicted file
    lazyreview version             Print version information
    lazyreview help                Show this help

## Flags

    --watch        Re-parse the conflicted file when it changes (conflicts only)
    --plain        Print structured text instead of starting the TUI
    --no-color     Disable colored output (NO_COLOR is also honored)
    --width N      Override the detected terminal width

## Examples

    git diff | lazyreview diff
    lazyreview diff changes.patch
    lazyreview conflicts internal/server/router.go --watch

Config lives at ~/.lazyreview/config.toml.
`

// Parse parses os.Args and returns the command and its arguments.
func Parse() (Command, Args, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses raw arguments (without the program name).
func ParseArgs(raw []string) (Command, Args, error) {
	parser := NewArgParser(raw)

	args := Args{
		Watch:   parser.BoolFlag("watch"),
		Plain:   parser.BoolFlag("plain"),
		NoColor: parser.BoolFlag("no-color"),
		Width:   parser.FlagIntOrDefault("width", 0),
	}
	if args.Width < 0 {
		return CmdHelp, args, &UsageError{Message: "--width must be non-negative"}
	}

	if parser.BoolFlag("help") || parser.BoolFlag("h") {
		return CmdHelp, args, nil
	}
	if parser.BoolFlag("version") || parser.BoolFlag("v") {
		return CmdVersion, args, nil
	}

	if parser.PositionalCount() == 0 {
		return CmdHelp, args, nil
	}

	cmd := strings.ToLower(parser.Positional(0))
	switch cmd {
	case "diff", "d":
		args.Path = parser.Positional(1)
		return CmdDiff, args, nil

	case "conflicts", "conflict", "c":
		args.Path = parser.Positional(1)
		if args.Path == "" {
			return CmdConflicts, args, &UsageError{Message: "conflicts requires a file argument"}
		}
		return CmdConflicts, args, nil

	case "version":
		return CmdVersion, args, nil

	case "help":
		return CmdHelp, args, nil

	default:
		return CmdHelp, args, &UsageError{Message: fmt.Sprintf("unknown command: %s", cmd)}
	}
}

// =============================================================================
// HELP AND VERSION OUTPUT
// =============================================================================

// PrintUsage prints the help text. On a TTY the markdown is rendered
// with glamour; piped output gets the raw text.
func PrintUsage() {
	if IsStdoutTTY() && ColorsEnabled() {
		fmt.Print(renderMarkdown(usageText))
		return
	}
	fmt.Print(usageText)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("lazyreview version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// renderMarkdown renders markdown for terminal display. Returns the
// original content if rendering fails.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(GetTerminalWidth()),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
