// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package family maps entity names to candidate file names and file names
// to their structural family.
package family

import (
	"strings"

	"github.com/petar-djukic/go-fieldinject/pkg/types"
)

// suffixes are appended to the entity name to form the candidate file
// names, in search order.
var suffixes = []string{
	"Dto.java",
	"ReplaceRequest.java",
	"CreateRequest.java",
	"SaveRequest.java",
	"SaveCmd.java",
	"Criteria.java",
	"Vo.java",
	"Entity.java",
	"QueryRequest.java",
}

// CandidateNames returns the exact file names searched for an entity.
func CandidateNames(entity string) []string {
	names := make([]string, len(suffixes))
	for i, s := range suffixes {
		names[i] = entity + s
	}
	return names
}

// Classify returns the family of a file from its base name. Rules are
// checked in order; every name maps to exactly one family.
func Classify(fileName string) types.Family {
	switch {
	case strings.HasSuffix(fileName, "Entity.java"):
		return types.FamilyEntity
	case strings.HasSuffix(fileName, "Criteria.java"):
		return types.FamilyCriteria
	case strings.HasSuffix(fileName, "QueryRequest.java"):
		return types.FamilyQueryRequest
	case strings.HasSuffix(fileName, "Dto.java"):
		return types.FamilyDto
	case strings.Contains(fileName, "Request.java"):
		return types.FamilyGenericRequest
	default:
		return types.FamilyOther
	}
}
