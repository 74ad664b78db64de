// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const defaultContextLines = 2

// Diff returns a line-oriented diff of before and after. Changed lines are
// prefixed with "-" or "+"; up to contextLines unchanged lines are kept on
// each side of a change and longer unchanged runs are collapsed to "...".
// Returns "" when the texts are equal.
func Diff(path, before, after string, contextLines int) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", path, path)

	for i, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writePrefixed(&buf, "-", lines)
		case diffmatchpatch.DiffInsert:
			writePrefixed(&buf, "+", lines)
		case diffmatchpatch.DiffEqual:
			writeContext(&buf, lines, contextLines, i == 0, i == len(diffs)-1)
		}
	}
	return buf.String()
}

// writeContext emits the unchanged lines adjacent to a change. first and
// last mark runs with no change before or after them.
func writeContext(buf *strings.Builder, lines []string, n int, first, last bool) {
	var head, tail []string
	switch {
	case first && last:
		return
	case first:
		tail = lastN(lines, n)
	case last:
		head = firstN(lines, n)
	default:
		if len(lines) <= 2*n {
			head = lines
		} else {
			head, tail = lines[:n], lines[len(lines)-n:]
		}
	}

	writePrefixed(buf, " ", head)
	if len(head)+len(tail) < len(lines) {
		buf.WriteString("...\n")
	}
	writePrefixed(buf, " ", tail)
}

func writePrefixed(buf *strings.Builder, prefix string, lines []string) {
	for _, l := range lines {
		buf.WriteString(prefix)
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
}

// splitLines splits text into lines, dropping the empty element produced
// by a terminal newline.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func firstN(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}

func lastN(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[len(lines)-n:]
}
