// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package javasrc

import (
	"fmt"
	"strings"
)

// DefaultEnumPackage is the package enum types are imported from when the
// caller does not configure one.
const DefaultEnumPackage = "tw.com.softleader.jasmine.enums"

// ImportStatement returns the import line for an enum type.
func ImportStatement(enumPackage, typeName string) string {
	if enumPackage == "" {
		enumPackage = DefaultEnumPackage
	}
	return fmt.Sprintf("import %s.%s;", enumPackage, typeName)
}

// EnsureImport returns content with an import for typeName added directly
// after the package declaration, followed by a blank line. The content is
// returned unchanged when typeName is primitive, when the exact import
// statement is already present, or when there is no package declaration.
func EnsureImport(content, typeName, enumPackage string) string {
	if IsPrimitive(typeName) {
		return content
	}

	stmt := ImportStatement(enumPackage, typeName)
	if strings.Contains(content, stmt) {
		return content
	}

	lines := strings.Split(content, "\n")
	pkgLine := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "package ") {
			pkgLine = i
			break
		}
	}
	if pkgLine < 0 {
		return content
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, lines[:pkgLine+1]...)
	out = append(out, stmt, "")
	out = append(out, lines[pkgLine+1:]...)
	return strings.Join(out, "\n")
}
