// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package patch parses unified diff text into structured file and hunk data.
package patch

import (
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// UNIFIED DIFF PARSING
// =============================================================================

var (
	diffHeaderRe = regexp.MustCompile(`^diff --git a/(.+) b/(.+)$`)
	hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@(.*)$`)
	renameFromRe = regexp.MustCompile(`^rename from (.+)$`)
	renameToRe   = regexp.MustCompile(`^rename to (.+)$`)
	binaryRe     = regexp.MustCompile(`^Binary files (.+) and (.+) differ$`)
)

// Parse parses unified diff text (git diff output) into per-file diffs.
//
// Parsing is lenient: lines that fit no known diff construct are skipped,
// and a malformed hunk ends at the first line it cannot attribute. Empty
// or unrecognizable input yields an empty result, never a failure.
func Parse(input string) []File {
	if input == "" {
		return nil
	}

	lines := strings.Split(input, "\n")
	var files []File
	i := 0

	for i < len(lines) {
		m := diffHeaderRe.FindStringSubmatch(lines[i])
		if m == nil {
			i++
			continue
		}

		file := File{
			OldName: m[1],
			NewName: m[2],
		}
		i++

		parseExtendedHeader(&file, lines, &i)

		for i < len(lines) {
			if strings.HasPrefix(lines[i], "diff --git ") {
				break
			}
			hm := hunkHeaderRe.FindStringSubmatch(lines[i])
			if hm == nil {
				i++
				continue
			}
			file.Hunks = append(file.Hunks, parseHunk(hm, lines, &i))
		}

		if file.Status == "" {
			file.Status = "modified"
		}
		files = append(files, file)
	}

	return files
}

// parseExtendedHeader consumes the lines between a diff --git header and
// the first hunk: rename notices, binary notices, and the ---/+++ pair.
// It sets the file's status when those lines determine it.
func parseExtendedHeader(file *File, lines []string, i *int) {
	for *i < len(lines) {
		line := lines[*i]

		if strings.HasPrefix(line, "diff --git ") || strings.HasPrefix(line, "@@ ") {
			return
		}

		if rm := renameFromRe.FindStringSubmatch(line); rm != nil {
			file.OldName = rm[1]
			file.Status = "renamed"
			*i++
			continue
		}
		if rm := renameToRe.FindStringSubmatch(line); rm != nil {
			file.NewName = rm[1]
			file.Status = "renamed"
			*i++
			continue
		}

		if binaryRe.MatchString(line) {
			file.IsBinary = true
			*i++
			return
		}

		if strings.HasPrefix(line, "--- ") {
			file.OldName = parseFileName(line[4:])
			*i++
			if *i < len(lines) && strings.HasPrefix(lines[*i], "+++ ") {
				file.NewName = parseFileName(lines[*i][4:])
				*i++
			}
			if file.Status == "" {
				switch {
				case file.OldName == "/dev/null":
					file.Status = "added"
				case file.NewName == "/dev/null":
					file.Status = "deleted"
				default:
					file.Status = "modified"
				}
			}
			return
		}

		*i++
	}
}

// parseFileName extracts the path from a --- or +++ value, stripping the
// a/ or b/ prefix git adds.
func parseFileName(s string) string {
	s = strings.TrimSpace(s)
	if s == "/dev/null" {
		return "/dev/null"
	}
	if strings.HasPrefix(s, "a/") || strings.HasPrefix(s, "b/") {
		return s[2:]
	}
	return s
}

// parseHunk parses one hunk starting at its @@ header line, advancing i
// past every line that belongs to it.
func parseHunk(hm []string, lines []string, i *int) Hunk {
	hunk := Hunk{
		OldStart: atoiDefault(hm[1], 1),
		OldCount: atoiDefault(hm[2], 1),
		NewStart: atoiDefault(hm[3], 1),
		NewCount: atoiDefault(hm[4], 1),
		Header:   strings.TrimSpace(hm[5]),
	}

	oldNum := hunk.OldStart
	newNum := hunk.NewStart
	*i++ // past the @@ line

	for *i < len(lines) {
		line := lines[*i]

		if strings.HasPrefix(line, "@@ ") || strings.HasPrefix(line, "diff --git ") {
			break
		}
		if strings.HasPrefix(line, `\ No newline at end of file`) {
			*i++
			continue
		}
		if len(line) == 0 {
			// Either end of input or a context line with empty content;
			// inside a hunk git always emits at least the prefix, so stop.
			*i++
			break
		}

		content := line[1:]
		switch line[0] {
		case ' ':
			hunk.Lines = append(hunk.Lines, Line{Type: LineContext, Content: content, OldNum: oldNum, NewNum: newNum})
			oldNum++
			newNum++
		case '+':
			hunk.Lines = append(hunk.Lines, Line{Type: LineAdded, Content: content, NewNum: newNum})
			newNum++
		case '-':
			hunk.Lines = append(hunk.Lines, Line{Type: LineRemoved, Content: content, OldNum: oldNum})
			oldNum++
		default:
			return hunk
		}

		*i++
	}

	return hunk
}

// atoiDefault parses s as an int, returning def for empty or invalid input.
func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
