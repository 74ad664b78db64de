// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"
	"path/filepath"
	"strings"
)

const maxSubjectLength = 72

// GenerateMessage creates a conventional commit message for a field
// injection: a "feat:" subject, the list of modified files, and the
// trailer used by Undo to recognize the commit.
func GenerateMessage(entity, variable, typeName string, modifiedFiles []string) string {
	msg := buildSubject(entity, variable, typeName)
	if body := buildBody(modifiedFiles); body != "" {
		msg += "\n\n" + body
	}
	return msg + "\n\n" + trailer
}

// buildSubject creates the first line of the commit message.
// Format: "feat: add <type> <variable> field to <entity>" (max 72 chars).
func buildSubject(entity, variable, typeName string) string {
	subject := fmt.Sprintf("feat: add %s %s field", typeName, variable)
	if entity != "" {
		subject += " to " + entity
	}
	if len(subject) > maxSubjectLength {
		subject = subject[:maxSubjectLength-3] + "..."
	}
	return subject
}

// buildBody lists the modified files by base name.
func buildBody(modifiedFiles []string) string {
	if len(modifiedFiles) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("Modified files:\n")
	for _, f := range modifiedFiles {
		buf.WriteString(fmt.Sprintf("- %s\n", filepath.Base(f)))
	}
	return strings.TrimRight(buf.String(), "\n")
}
