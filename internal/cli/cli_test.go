// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestParseArgs_Diff(t *testing.T) {
	tests := []struct {
		name     string
		raw      []string
		wantPath string
	}{
		{"with file", []string{"diff", "changes.patch"}, "changes.patch"},
		{"stdin dash", []string{"diff", "-"}, "-"},
		{"no file means stdin", []string{"diff"}, ""},
		{"short alias", []string{"d", "changes.patch"}, "changes.patch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := ParseArgs(tt.raw)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if cmd != CmdDiff {
				t.Errorf("Expected CmdDiff, got %v", cmd)
			}
			if args.Path != tt.wantPath {
				t.Errorf("Expected path %q, got %q", tt.wantPath, args.Path)
			}
		})
	}
}

func TestParseArgs_Conflicts(t *testing.T) {
	cmd, args, err := ParseArgs([]string{"conflicts", "main.go", "--watch"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cmd != CmdConflicts {
		t.Errorf("Expected CmdConflicts, got %v", cmd)
	}
	if args.Path != "main.go" {
		t.Errorf("Expected path main.go, got %q", args.Path)
	}
	if !args.Watch {
		t.Error("Expected --watch to be set")
	}
}

func TestParseArgs_ConflictsRequiresFile(t *testing.T) {
	_, _, err := ParseArgs([]string{"conflicts"})
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("Expected UsageError, got %v", err)
	}
}

func TestParseArgs_GlobalFlags(t *testing.T) {
	_, args, err := ParseArgs([]string{"diff", "f.patch", "--no-color", "--plain", "--width", "120"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !args.NoColor || !args.Plain {
		t.Error("Expected --no-color and --plain to be set")
	}
	if args.Width != 120 {
		t.Errorf("Expected width 120, got %d", args.Width)
	}
}

func TestParseArgs_WidthEquals(t *testing.T) {
	_, args, err := ParseArgs([]string{"diff", "--width=100"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if args.Width != 100 {
		t.Errorf("Expected width 100, got %d", args.Width)
	}
}

func TestParseArgs_VersionAndHelp(t *testing.T) {
	for _, raw := range [][]string{{"version"}, {"--version"}, {"-v"}} {
		cmd, _, err := ParseArgs(raw)
		if err != nil || cmd != CmdVersion {
			t.Errorf("Expected CmdVersion for %v, got %v (err %v)", raw, cmd, err)
		}
	}
	for _, raw := range [][]string{{"help"}, {"--help"}, {"-h"}, {}} {
		cmd, _, err := ParseArgs(raw)
		if err != nil || cmd != CmdHelp {
			t.Errorf("Expected CmdHelp for %v, got %v (err %v)", raw, cmd, err)
		}
	}
}

func TestParseArgs_UnknownCommand(t *testing.T) {
	cmd, _, err := ParseArgs([]string{"blame"})
	if cmd != CmdHelp {
		t.Errorf("Expected CmdHelp fallback, got %v", cmd)
	}
	var usageErr *UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("Expected UsageError, got %v", err)
	}
	if !strings.Contains(err.Error(), "blame") {
		t.Errorf("Expected error to name the command, got %q", err.Error())
	}
}

func TestArgParser_FlagForms(t *testing.T) {
	p := NewArgParser([]string{"conflicts", "a.go", "--width", "90", "--watch", "--plain=true"})

	if p.Positional(0) != "conflicts" || p.Positional(1) != "a.go" {
		t.Error("Positional arguments not preserved")
	}
	if p.Flag("width") != "90" {
		t.Errorf("Expected width=90, got %q", p.Flag("width"))
	}
	if !p.BoolFlag("watch") {
		t.Error("Expected watch flag")
	}
	if !p.BoolFlag("plain") {
		t.Error("Expected plain=true to parse as a boolean flag")
	}
	if p.PositionalCount() != 2 {
		t.Errorf("Expected 2 positionals, got %d", p.PositionalCount())
	}
}

func TestArgParser_BoolFlagDoesNotEatPositional(t *testing.T) {
	// --watch is boolean; the following file name must stay positional.
	p := NewArgParser([]string{"conflicts", "--watch", "a.go"})
	if !p.BoolFlag("watch") {
		t.Error("Expected watch flag")
	}
	if p.Positional(1) != "a.go" {
		t.Errorf("Expected a.go as second positional, got %q", p.Positional(1))
	}
}

func TestArgParser_OutOfBounds(t *testing.T) {
	p := NewArgParser([]string{"diff"})
	if p.Positional(5) != "" {
		t.Error("Expected empty string for out-of-bounds positional")
	}
	if p.Flag("missing") != "" {
		t.Error("Expected empty string for missing flag")
	}
	if p.FlagIntOrDefault("missing", 7) != 7 {
		t.Error("Expected default for missing int flag")
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != ExitSuccess {
		t.Error("Expected ExitSuccess for nil error")
	}
	if ExitCode(&UsageError{Message: "bad"}) != ExitUsageError {
		t.Error("Expected ExitUsageError")
	}
	if ExitCode(&InputError{Path: "x", Err: errors.New("no")}) != ExitInputError {
		t.Error("Expected ExitInputError")
	}
	if ExitCode(errors.New("other")) != ExitGeneralError {
		t.Error("Expected ExitGeneralError")
	}
}
