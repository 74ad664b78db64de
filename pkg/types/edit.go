// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Edit is a fully computed change to a single file. Original is the content
// read from disk; Updated is the content after both the import and the
// field insertion.
type Edit struct {
	FilePath string // Absolute or root-relative path of the target file
	Original string // Content before the edit
	Updated  string // Content after the edit
}

// Changed reports whether the edit alters the file content.
func (e Edit) Changed() bool {
	return e.Original != e.Updated
}

// ApplyResult describes the outcome of persisting a single edit.
type ApplyResult struct {
	FilePath string // File that was modified
	Written  bool   // False when the persister only previewed the change
	Diff     string // Unified-style preview of the change (may be empty)
}

// Persister persists a computed Edit. The file writer and the dry-run
// previewer both implement this interface.
type Persister interface {
	Persist(edit Edit) (*ApplyResult, error)
}
