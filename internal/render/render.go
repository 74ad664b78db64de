// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render builds the text block for a new field: its doc comment,
// the decorations its file family requires, and the declaration itself.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/petar-djukic/go-fieldinject/internal/javasrc"
	"github.com/petar-djukic/go-fieldinject/pkg/types"
)

// DefaultIndent is the number of spaces prefixed to every block line.
const DefaultIndent = 2

// exampleClauseRe matches the example clause of a description decoration.
var exampleClauseRe = regexp.MustCompile(`, example = "[^"]*"`)

// Renderer renders field blocks with a fixed indentation.
type Renderer struct {
	indent string
}

// New returns a Renderer that indents every line by indent spaces. A
// non-positive indent selects DefaultIndent.
func New(indent int) *Renderer {
	if indent <= 0 {
		indent = DefaultIndent
	}
	return &Renderer{indent: strings.Repeat(" ", indent)}
}

// Render returns the block for spec in a file of the given family. The
// boolean is false when the family requires input the FieldSpec does not carry;
// callers must then leave the file untouched.
func (r *Renderer) Render(spec types.FieldSpec, family types.Family) (types.Block, bool) {
	decs, ok := decorations(spec, family)
	if !ok {
		return types.Block{}, false
	}

	lines := make([]string, 0, len(decs)+2)
	lines = append(lines, fmt.Sprintf("%s/** %s */", r.indent, spec.Documentation))
	for _, d := range decs {
		lines = append(lines, r.indent+d)
	}
	lines = append(lines, fmt.Sprintf("%sprivate %s %s;", r.indent, spec.TypeName, spec.VariableName))
	return types.Block{Lines: lines}, true
}

// decorations returns the unindented decoration lines for a family. ok is
// false when the family needs caller input that is missing.
func decorations(spec types.FieldSpec, family types.Family) ([]string, bool) {
	switch family {
	case types.FamilyEntity:
		out := []string{fmt.Sprintf(`@Column(name = "%s")`, spec.DBColumnName)}
		if !javasrc.IsPrimitive(spec.TypeName) {
			out = append(out, "@Enumerated(EnumType.STRING)")
		}
		return out, true

	case types.FamilyCriteria:
		if spec.Decoration == "" {
			return nil, false
		}
		return single(spec.Decoration), true

	case types.FamilyQueryRequest:
		if spec.Decoration == "" {
			return nil, false
		}
		return nil, true

	case types.FamilyDto, types.FamilyGenericRequest:
		return single(schemaDecoration(spec)), true

	default: // FamilyOther
		return nil, true
	}
}

// schemaDecoration builds the description decoration, adding the example
// clause only when an example was supplied.
func schemaDecoration(spec types.FieldSpec) string {
	s := fmt.Sprintf(`@Schema(description = "%s"`, spec.Documentation)
	if spec.Example != "" {
		s += fmt.Sprintf(`, example = "%s"`, spec.Example)
	}
	return s + ")"
}

// single normalizes a caller-supplied or synthesized decoration string. A
// description decoration that does not mention "example" has its first
// example clause removed; no other form is rewritten.
func single(decoration string) []string {
	if strings.Contains(decoration, "@Schema") && !strings.Contains(decoration, "example") {
		if loc := exampleClauseRe.FindStringIndex(decoration); loc != nil {
			decoration = decoration[:loc[0]] + decoration[loc[1]:]
		}
	}
	if decoration == "" {
		return nil
	}
	return []string{decoration}
}
