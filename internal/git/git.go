// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git provides dirty-file checks, auto-commit, and undo for
// injected fields.
package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

const trailer = "Generated-By: field-injector"

// ErrNotInjectorCommit is returned when undo targets a commit not made by
// the injector.
var ErrNotInjectorCommit = errors.New("not a field-injector commit")

// ErrNoGit is returned when the directory is not inside a git repository.
var ErrNoGit = errors.New("not a git repository")

// Repo wraps a go-git repository for the operations we need.
type Repo struct {
	repo *gogit.Repository
	root string // Absolute worktree root
}

// Open opens the git repository containing dir, searching parent
// directories for the .git entry. Returns ErrNoGit if there is none.
func Open(dir string) (*Repo, error) {
	r, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}

	root, err := canonical(wt.Filesystem.Root())
	if err != nil {
		return nil, err
	}
	return &Repo{repo: r, root: root}, nil
}

// DirtyFiles returns those of paths that have staged, unstaged, or
// untracked changes. Paths outside the worktree are ignored.
func (r *Repo) DirtyFiles(paths []string) ([]string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}

	var dirty []string
	for _, p := range paths {
		rel, ok := r.relative(p)
		if !ok {
			continue
		}
		st, found := status[rel]
		if !found {
			continue
		}
		if st.Staging != gogit.Unmodified || st.Worktree != gogit.Unmodified {
			dirty = append(dirty, p)
		}
	}
	return dirty, nil
}

// IsInjectorCommit checks whether the HEAD commit was made by the injector
// by looking for its trailer.
func (r *Repo) IsInjectorCommit() (bool, error) {
	msg, err := r.lastCommitMessage()
	if err != nil {
		return false, err
	}
	return strings.Contains(msg, trailer), nil
}

// lastCommitMessage returns the message of the HEAD commit.
func (r *Repo) lastCommitMessage() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("getting commit: %w", err)
	}
	return commit.Message, nil
}

// relative converts path to a slash-separated path relative to the
// worktree root. ok is false for paths outside the worktree.
func (r *Repo) relative(path string) (string, bool) {
	abs, err := canonical(path)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// canonical returns the absolute, symlink-resolved form of path.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
