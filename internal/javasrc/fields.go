// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package javasrc

import (
	"regexp"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// minAnchorSimilarity is the lowest score at which a declared field is
// suggested as the intended anchor.
const minAnchorSimilarity = 0.5

// fieldDeclRe captures the name of a field declared with an access
// modifier, e.g. "  private List<Item> items;" or "protected int n = 0;".
var fieldDeclRe = regexp.MustCompile(`(?m)^\s*(?:private|protected|public)\s+(?:static\s+|final\s+)*[\w.<>,?\[\] ]+?\s+(\w+)\s*[;=]`)

// DeclaredFields returns the names of the fields declared in content, in
// order of appearance.
func DeclaredFields(content string) []string {
	var names []string
	for _, m := range fieldDeclRe.FindAllStringSubmatch(content, -1) {
		names = append(names, m[1])
	}
	return names
}

// ClosestField returns the declared field whose name is most similar to
// anchor, or "" when nothing is similar enough to be a plausible typo.
func ClosestField(content, anchor string) string {
	if anchor == "" {
		return ""
	}
	var best string
	var bestSim float64
	for _, name := range DeclaredFields(content) {
		if s := similarity(name, anchor); s > bestSim {
			best, bestSim = name, s
		}
	}
	if bestSim < minAnchorSimilarity {
		return ""
	}
	return best
}

// similarity computes the Levenshtein-based similarity ratio between two
// strings. Returns a value between 0.0 and 1.0.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
