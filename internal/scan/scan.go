// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scan finds candidate files under a project root by exact name.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// skipDirs are directory names never descended into. Build output
// directories such as target and build are not listed: Java packages may
// use those names.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Find walks root recursively and returns the paths of all regular files
// whose base name equals one of names. A symlink counts when it resolves to
// a regular file. Unreadable directories are skipped.
// The result is sorted. The walk stops early if ctx is cancelled.
func Find(ctx context.Context, root string, names []string) ([]string, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if want[d.Name()] && isRegular(path, d) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(found)
	return found, nil
}

// isRegular reports whether d is a regular file, following a symlink to
// its target.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
