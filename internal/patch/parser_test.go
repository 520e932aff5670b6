// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package patch parses unified diff text into structured file and hunk data.
package patch

import (
	"testing"
)

const simpleDiff = `diff --git a/greet.go b/greet.go
index 5d3a9f1..8c2be11 100644
--- a/greet.go
+++ b/greet.go
@@ -1,4 +1,4 @@ func Greet
 package main
 
-func greet() string { return "hi" }
+func greet() string { return "hello" }
 // end
`

func TestParse_Empty(t *testing.T) {
	if files := Parse(""); len(files) != 0 {
		t.Errorf("Expected no files for empty input, got %d", len(files))
	}
}

func TestParse_NoDiffContent(t *testing.T) {
	if files := Parse("random text\nnothing diff-like"); len(files) != 0 {
		t.Errorf("Expected no files, got %d", len(files))
	}
}

func TestParse_SimpleModified(t *testing.T) {
	files := Parse(simpleDiff)

	if len(files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(files))
	}

	f := files[0]
	if f.OldName != "greet.go" || f.NewName != "greet.go" {
		t.Errorf("Expected greet.go/greet.go, got %s/%s", f.OldName, f.NewName)
	}
	if f.Status != "modified" {
		t.Errorf("Expected status 'modified', got %q", f.Status)
	}
	if len(f.Hunks) != 1 {
		t.Fatalf("Expected 1 hunk, got %d", len(f.Hunks))
	}

	h := f.Hunks[0]
	if h.OldStart != 1 || h.OldCount != 4 || h.NewStart != 1 || h.NewCount != 4 {
		t.Errorf("Unexpected hunk bounds: %+v", h)
	}
	if h.Header != "func Greet" {
		t.Errorf("Expected header 'func Greet', got %q", h.Header)
	}
	if len(h.Lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d: %+v", len(h.Lines), h.Lines)
	}

	if h.Lines[2].Type != LineRemoved || h.Lines[2].OldNum != 3 {
		t.Errorf("Line 2: expected removed old line 3, got %+v", h.Lines[2])
	}
	if h.Lines[3].Type != LineAdded || h.Lines[3].NewNum != 3 {
		t.Errorf("Line 3: expected added new line 3, got %+v", h.Lines[3])
	}
}

func TestParse_AddedAndDeletedStatus(t *testing.T) {
	added := "diff --git a/new.txt b/new.txt\n--- /dev/null\n+++ b/new.txt\n@@ -0,0 +1 @@\n+content\n"
	deleted := "diff --git a/gone.txt b/gone.txt\n--- a/gone.txt\n+++ /dev/null\n@@ -1 +0,0 @@\n-content\n"

	files := Parse(added)
	if len(files) != 1 || files[0].Status != "added" {
		t.Errorf("Expected added status, got %+v", files)
	}

	files = Parse(deleted)
	if len(files) != 1 || files[0].Status != "deleted" {
		t.Errorf("Expected deleted status, got %+v", files)
	}
}

func TestParse_Renamed(t *testing.T) {
	input := "diff --git a/old_name.go b/new_name.go\n" +
		"similarity index 95%\n" +
		"rename from old_name.go\n" +
		"rename to new_name.go\n"

	files := Parse(input)
	if len(files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(files))
	}
	if files[0].Status != "renamed" || files[0].OldName != "old_name.go" || files[0].NewName != "new_name.go" {
		t.Errorf("Unexpected rename result: %+v", files[0])
	}
}

func TestParse_Binary(t *testing.T) {
	input := "diff --git a/logo.png b/logo.png\nBinary files a/logo.png and b/logo.png differ\n"

	files := Parse(input)
	if len(files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(files))
	}
	if !files[0].IsBinary {
		t.Error("Expected binary file")
	}
	if len(files[0].Hunks) != 0 {
		t.Errorf("Expected no hunks for binary file, got %d", len(files[0].Hunks))
	}
}

func TestParse_MultipleFiles(t *testing.T) {
	input := simpleDiff +
		"diff --git a/other.go b/other.go\n--- a/other.go\n+++ b/other.go\n@@ -1 +1 @@\n-a\n+b\n"

	files := Parse(input)
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	if files[1].OldName != "other.go" {
		t.Errorf("Expected other.go, got %s", files[1].OldName)
	}
}

func TestFileStats(t *testing.T) {
	files := Parse(simpleDiff)
	if len(files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(files))
	}

	stats := files[0].Stats()
	if stats.Additions != 1 {
		t.Errorf("Expected 1 addition, got %d", stats.Additions)
	}
	if stats.Deletions != 1 {
		t.Errorf("Expected 1 deletion, got %d", stats.Deletions)
	}
}

func TestPairChangedLines_Modified(t *testing.T) {
	hunk := Hunk{Lines: []Line{
		{Type: LineContext, Content: "ctx"},
		{Type: LineRemoved, Content: "old a"},
		{Type: LineRemoved, Content: "old b"},
		{Type: LineAdded, Content: "new a"},
		{Type: LineAdded, Content: "new b"},
		{Type: LineContext, Content: "ctx"},
	}}

	pairs := PairChangedLines(hunk)
	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d: %+v", len(pairs), pairs)
	}
	if pairs[0].Kind != PairModified || pairs[0].Old.Content != "old a" || pairs[0].New.Content != "new a" {
		t.Errorf("Pair 0: got %+v", pairs[0])
	}
	if pairs[1].Kind != PairModified || pairs[1].Old.Content != "old b" || pairs[1].New.Content != "new b" {
		t.Errorf("Pair 1: got %+v", pairs[1])
	}
}

func TestPairRun_PreservesLineNumbers(t *testing.T) {
	run := []Line{
		{Type: LineRemoved, Content: "old", OldNum: 10},
		{Type: LineAdded, Content: "new", NewNum: 12},
	}

	pairs := PairRun(run)
	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Old.OldNum != 10 || pairs[0].New.NewNum != 12 {
		t.Errorf("Expected line numbers to survive pairing, got %+v", pairs[0])
	}
}

func TestPairChangedLines_UnevenRuns(t *testing.T) {
	hunk := Hunk{Lines: []Line{
		{Type: LineRemoved, Content: "old"},
		{Type: LineAdded, Content: "new"},
		{Type: LineAdded, Content: "extra"},
	}}

	pairs := PairChangedLines(hunk)
	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Kind != PairModified {
		t.Errorf("Pair 0: expected modified, got %+v", pairs[0])
	}
	if pairs[1].Kind != PairAdded || pairs[1].New.Content != "extra" {
		t.Errorf("Pair 1: expected pure addition of 'extra', got %+v", pairs[1])
	}
}

func TestPairChangedLines_ContextSplitsRuns(t *testing.T) {
	// A context line between a removal and an addition keeps them unpaired.
	hunk := Hunk{Lines: []Line{
		{Type: LineRemoved, Content: "old"},
		{Type: LineContext, Content: "ctx"},
		{Type: LineAdded, Content: "new"},
	}}

	pairs := PairChangedLines(hunk)
	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Kind != PairRemoved || pairs[1].Kind != PairAdded {
		t.Errorf("Expected removed then added, got %+v", pairs)
	}
}

func TestLineType_Strings(t *testing.T) {
	tests := []struct {
		lineType LineType
		str      string
		prefix   string
	}{
		{LineContext, "context", " "},
		{LineAdded, "added", "+"},
		{LineRemoved, "removed", "-"},
	}

	for _, tt := range tests {
		if tt.lineType.String() != tt.str {
			t.Errorf("Expected %s, got %s", tt.str, tt.lineType.String())
		}
		if tt.lineType.Prefix() != tt.prefix {
			t.Errorf("Expected %q, got %q", tt.prefix, tt.lineType.Prefix())
		}
	}
}
