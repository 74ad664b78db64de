// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package editor persists computed file edits. FileWriter replaces files
// atomically; Previewer renders a diff and leaves the disk untouched.
package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/petar-djukic/go-fieldinject/pkg/types"
)

// Verify interface compliance at compile time.
var (
	_ types.Persister = (*FileWriter)(nil)
	_ types.Persister = (*Previewer)(nil)
)

// FileWriter writes edits to disk. It implements types.Persister.
type FileWriter struct{}

// Persist writes the updated content of edit atomically. An edit that does
// not change the content is not written.
func (w *FileWriter) Persist(edit types.Edit) (*types.ApplyResult, error) {
	if !edit.Changed() {
		return &types.ApplyResult{FilePath: edit.FilePath}, nil
	}
	if err := atomicWrite(edit.FilePath, []byte(edit.Updated)); err != nil {
		return nil, fmt.Errorf("writing %s: %w", edit.FilePath, err)
	}
	return &types.ApplyResult{
		FilePath: edit.FilePath,
		Written:  true,
	}, nil
}

// Previewer renders edits as diffs without writing. It implements
// types.Persister.
type Previewer struct {
	// ContextLines is the number of unchanged lines shown around each
	// change. Defaults to 2 if zero.
	ContextLines int
}

// Persist returns the diff of edit; the file is not modified.
func (p *Previewer) Persist(edit types.Edit) (*types.ApplyResult, error) {
	ctx := p.ContextLines
	if ctx <= 0 {
		ctx = defaultContextLines
	}
	return &types.ApplyResult{
		FilePath: edit.FilePath,
		Diff:     Diff(edit.FilePath, edit.Original, edit.Updated, ctx),
	}, nil
}

// atomicWrite writes data to a temp file in the same directory, then renames
// it to the target path. This prevents partial writes from corrupting files.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	// Preserve original file permissions if the file exists.
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, ".field-injector-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
