// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across go-fieldinject packages.
package types

import (
	"errors"
	"strings"
)

// ErrInvalidFieldSpec is returned by FieldSpec.Validate when a required
// attribute is missing.
var ErrInvalidFieldSpec = errors.New("invalid field spec")

// FieldSpec describes the field to inject. It is built once per request and
// never mutated.
type FieldSpec struct {
	EntityName    string // Table/entity name used to derive candidate file names
	DBColumnName  string // Column name for the persistence mapping
	TypeName      string // Java type of the field (required)
	VariableName  string // Java field name (required)
	Documentation string // Text of the single-line doc comment
	Example       string // Optional example value for description decorations
	Decoration    string // Optional free-form decoration text (criteria files)
	Anchor        string // Optional existing field name to insert after
}

// Validate checks the invariants of a FieldSpec.
func (s FieldSpec) Validate() error {
	if strings.TrimSpace(s.TypeName) == "" {
		return errors.Join(ErrInvalidFieldSpec, errors.New("type name is required"))
	}
	if strings.TrimSpace(s.VariableName) == "" {
		return errors.Join(ErrInvalidFieldSpec, errors.New("variable name is required"))
	}
	return nil
}

// Family identifies the structural role of a target file, inferred from
// its file name suffix.
type Family int

const (
	FamilyOther          Family = iota // No decoration rules apply
	FamilyEntity                       // Persistence entity
	FamilyCriteria                     // Query criteria
	FamilyQueryRequest                 // Query request payload
	FamilyDto                          // Data transfer object
	FamilyGenericRequest               // Create/save/replace request payload
)

// String returns the human-readable name of the family.
func (f Family) String() string {
	switch f {
	case FamilyEntity:
		return "entity"
	case FamilyCriteria:
		return "criteria"
	case FamilyQueryRequest:
		return "query_request"
	case FamilyDto:
		return "dto"
	case FamilyGenericRequest:
		return "request"
	case FamilyOther:
		return "other"
	default:
		return "unknown"
	}
}

// Block is the rendered text unit spliced into a target file: a doc
// comment, zero or more decoration lines, and the field declaration.
type Block struct {
	Lines []string
}

// Text joins the block lines with newlines. The result has no trailing
// newline.
func (b Block) Text() string {
	return strings.Join(b.Lines, "\n")
}

// Tier identifies which insertion strategy located the insertion point.
type Tier int

const (
	TierAnchor     Tier = iota // After the line declaring the anchor field
	TierCollection             // Before the first List<...> field declaration
	TierClassEnd               // Before the last closing brace
)

func (t Tier) String() string {
	switch t {
	case TierAnchor:
		return "anchor"
	case TierCollection:
		return "collection"
	case TierClassEnd:
		return "class_end"
	default:
		return "unknown"
	}
}

// InsertionPoint is where a block is spliced into a file.
type InsertionPoint struct {
	Tier   Tier // Strategy that produced the point
	Line   int  // 0-based line index (TierAnchor, TierCollection)
	Offset int  // Byte offset of the closing brace (TierClassEnd)
}
