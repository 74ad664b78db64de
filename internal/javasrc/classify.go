// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package javasrc performs line-oriented edits on Java source text: type
// classification, import maintenance, and locating where a new field
// declaration belongs. It never parses the source into a syntax tree.
package javasrc

// builtinTypes is the closed set of Java types that need neither an import
// nor an enum mapping.
var builtinTypes = map[string]bool{
	"String":        true,
	"int":           true,
	"Integer":       true,
	"long":          true,
	"Long":          true,
	"double":        true,
	"Double":        true,
	"float":         true,
	"Float":         true,
	"boolean":       true,
	"Boolean":       true,
	"byte":          true,
	"Byte":          true,
	"short":         true,
	"Short":         true,
	"char":          true,
	"Character":     true,
	"BigDecimal":    true,
	"LocalDateTime": true,
	"LocalDate":     true,
	"LocalTime":     true,
}

// IsPrimitive reports whether typeName is a built-in value type. Any other
// name is treated as a user-defined enum. Matching is exact and
// case-sensitive.
func IsPrimitive(typeName string) bool {
	return builtinTypes[typeName]
}
