// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package javasrc

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/go-fieldinject/pkg/types"
)

// listFieldRe matches a generic List field declaration such as
// "private List<Item> items;".
var listFieldRe = regexp.MustCompile(`List\s*<.*?>\s+\w+\s*;`)

// finder inspects the file and returns an insertion point when its
// strategy applies.
type finder func(content string, lines []string, anchor string) (types.InsertionPoint, bool)

// finders are evaluated in order; the first one that applies wins.
var finders = []finder{
	findAnchor,
	findCollection,
	findClassEnd,
}

// Locate computes where a new field block belongs in content. It returns
// false only when no strategy applies, which happens when the content has
// no closing brace at all.
func Locate(content, anchor string) (types.InsertionPoint, bool) {
	lines := strings.Split(content, "\n")
	for _, f := range finders {
		if pt, ok := f(content, lines, anchor); ok {
			return pt, true
		}
	}
	return types.InsertionPoint{}, false
}

// findAnchor returns the first line that mentions the anchor and carries a
// statement terminator.
func findAnchor(_ string, lines []string, anchor string) (types.InsertionPoint, bool) {
	if anchor == "" {
		return types.InsertionPoint{}, false
	}
	for i, line := range lines {
		if strings.Contains(line, anchor) && strings.Contains(line, ";") {
			return types.InsertionPoint{Tier: types.TierAnchor, Line: i}, true
		}
	}
	return types.InsertionPoint{}, false
}

// findCollection returns the line holding the first List<...> declaration.
func findCollection(content string, _ []string, _ string) (types.InsertionPoint, bool) {
	loc := listFieldRe.FindStringIndex(content)
	if loc == nil {
		return types.InsertionPoint{}, false
	}
	line := strings.Count(content[:loc[0]], "\n")
	return types.InsertionPoint{Tier: types.TierCollection, Line: line}, true
}

// findClassEnd returns the offset of the last closing brace.
func findClassEnd(content string, _ []string, _ string) (types.InsertionPoint, bool) {
	idx := strings.LastIndex(content, "}")
	if idx < 0 {
		return types.InsertionPoint{}, false
	}
	return types.InsertionPoint{Tier: types.TierClassEnd, Line: -1, Offset: idx}, true
}

// Splice inserts block into content at pt.
//
//   - TierAnchor: after the anchor line, separated from it by one blank line.
//   - TierCollection: before the collection line, followed by one blank line.
//   - TierClassEnd: on its own lines directly before the closing brace.
func Splice(content string, block types.Block, pt types.InsertionPoint) string {
	switch pt.Tier {
	case types.TierAnchor:
		lines := strings.Split(content, "\n")
		out := make([]string, 0, len(lines)+len(block.Lines)+1)
		out = append(out, lines[:pt.Line+1]...)
		out = append(out, "")
		out = append(out, block.Lines...)
		out = append(out, lines[pt.Line+1:]...)
		return strings.Join(out, "\n")

	case types.TierCollection:
		lines := strings.Split(content, "\n")
		out := make([]string, 0, len(lines)+len(block.Lines)+1)
		out = append(out, lines[:pt.Line]...)
		out = append(out, block.Lines...)
		out = append(out, "")
		out = append(out, lines[pt.Line:]...)
		return strings.Join(out, "\n")

	case types.TierClassEnd:
		return content[:pt.Offset] + "\n" + block.Text() + "\n" + content[pt.Offset:]
	}
	return content
}
