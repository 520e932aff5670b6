// lazyreview - Word-level diff review and merge-conflict inspection.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tauantcamargo/lazyreview-sub002/internal/cli"
	"github.com/tauantcamargo/lazyreview-sub002/internal/config"
	"github.com/tauantcamargo/lazyreview-sub002/internal/conflict"
	"github.com/tauantcamargo/lazyreview-sub002/internal/patch"
	"github.com/tauantcamargo/lazyreview-sub002/internal/ui/review"
	"github.com/tauantcamargo/lazyreview-sub002/internal/util"
	"github.com/tauantcamargo/lazyreview-sub002/internal/watch"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args, err := cli.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		cli.PrintUsage()
		os.Exit(cli.ExitCode(err))
	}

	if args.NoColor || !cli.ColorsEnabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	switch cmd {
	case cli.CmdDiff:
		if err := runDiff(args); err != nil {
			cli.Fail(err)
		}
	case cli.CmdConflicts:
		if err := runConflicts(args); err != nil {
			cli.Fail(err)
		}
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}

// loadConfig loads the user config, falling back to defaults on error.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		return config.Default()
	}
	return cfg
}

// =============================================================================
// DIFF COMMAND
// =============================================================================

func runDiff(args cli.Args) error {
	input, err := readDiffInput(args.Path)
	if err != nil {
		return err
	}

	files := patch.Parse(input)
	if len(files) == 0 {
		fmt.Println("No changes.")
		return nil
	}

	if args.Plain || !cli.IsStdoutTTY() {
		printPlainDiff(files, plainWidth(args))
		return nil
	}

	cfg := loadConfig()
	model := review.NewDiffModel(files, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// readDiffInput reads the unified diff from a file, or stdin for "" / "-".
func readDiffInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", &cli.InputError{Path: "stdin", Err: err}
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &cli.InputError{Path: path, Err: err}
	}
	return string(data), nil
}

// printPlainDiff writes structured text output for piped or --plain use.
func printPlainDiff(files []patch.File, width int) {
	for _, file := range files {
		stats := file.Stats()
		fmt.Printf("%s (+%d -%d)\n", file.NewName, stats.Additions, stats.Deletions)

		if file.IsBinary {
			fmt.Println("  binary file")
			continue
		}

		for _, hunk := range file.Hunks {
			fmt.Printf("  @@ -%d,%d +%d,%d @@ %s\n",
				hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount, hunk.Header)
			for _, line := range hunk.Lines {
				text := util.TruncateWidth(line.Content, width-3)
				fmt.Printf("  %s%s\n", line.Type.Prefix(), text)
			}
		}
	}
}

// =============================================================================
// CONFLICTS COMMAND
// =============================================================================

func runConflicts(args cli.Args) error {
	data, err := os.ReadFile(args.Path)
	if err != nil {
		return &cli.InputError{Path: args.Path, Err: err}
	}
	content := string(data)

	chunks := conflict.BuildThreeWayView(content)
	cfg := loadConfig()

	if args.Plain || !cli.IsStdoutTTY() {
		printPlainConflicts(args.Path, chunks)
		return nil
	}

	model := review.NewConflictModel(chunks, args.Path, content, cfg, args.Watch)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if args.Watch {
		debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
		watcher, err := watch.New(args.Path, debounce, func(chunks []conflict.Chunk) {
			program.Send(review.ChunksReloadedMsg{Chunks: chunks})
		})
		if err != nil {
			return err
		}
		if err := watcher.Watch(); err != nil {
			return err
		}
		defer watcher.Close()
	}

	_, err = program.Run()
	return err
}

// printPlainConflicts writes the three-way structure as text.
func printPlainConflicts(path string, chunks []conflict.Chunk) {
	total := conflict.CountConflicts(chunks)
	noun := "conflicts"
	if total == 1 {
		noun = "conflict"
	}
	fmt.Printf("%s: %d %s\n", path, total, noun)

	index := 0
	for _, chunk := range chunks {
		if chunk.Kind == conflict.KindCommon {
			continue
		}
		index++
		region := chunk.Region
		fmt.Printf("\nconflict %d of %d (lines %d-%d)\n", index, total, region.StartLine+1, region.EndLine+1)
		fmt.Printf("  ours:   %s\n", summarizeSide(region.Ours))
		if len(region.Base) > 0 {
			fmt.Printf("  base:   %s\n", summarizeSide(region.Base))
		}
		fmt.Printf("  theirs: %s\n", summarizeSide(region.Theirs))
	}
}

// summarizeSide renders one side of a conflict as a single line.
func summarizeSide(lines []string) string {
	if len(lines) == 0 {
		return "(empty)"
	}
	if len(lines) == 1 {
		return lines[0]
	}
	return fmt.Sprintf("%s ... (%d lines)", strings.TrimSpace(lines[0]), len(lines))
}

// plainWidth resolves the output width for plain mode.
func plainWidth(args cli.Args) int {
	if args.Width > 0 {
		return args.Width
	}
	return cli.GetTerminalWidth()
}
