// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	authorName  = "field-injector"
	authorEmail = "noreply@field-injector"
)

// ErrUnrelatedStaged is returned by Commit when the index already holds
// changes to files other than the ones being committed.
var ErrUnrelatedStaged = errors.New("index has unrelated staged changes")

// Commit stages exactly the given files and commits them with msg. Files
// outside the worktree are an error. Commit refuses to run when other paths
// are already staged, since the commit would carry them too.
func (r *Repo) Commit(files []string, msg string) error {
	if len(files) == 0 {
		return nil
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	rels := make(map[string]bool, len(files))
	for _, f := range files {
		rel, ok := r.relative(f)
		if !ok {
			return fmt.Errorf("staging %s: outside worktree %s", f, r.root)
		}
		rels[rel] = true
	}

	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("getting status: %w", err)
	}
	var unrelated []string
	for path, st := range status {
		if rels[path] || st.Staging == gogit.Unmodified || st.Staging == gogit.Untracked {
			continue
		}
		unrelated = append(unrelated, path)
	}
	if len(unrelated) > 0 {
		sort.Strings(unrelated)
		return fmt.Errorf("%w: %s", ErrUnrelatedStaged, strings.Join(unrelated, ", "))
	}

	for rel := range rels {
		if _, err := wt.Add(rel); err != nil {
			return fmt.Errorf("staging %s: %w", rel, err)
		}
	}

	_, err = wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	return nil
}

// Undo reverts the last commit if it was made by the injector (identified
// by its trailer). Uses git reset --soft HEAD~1 to preserve changes in the
// working tree.
func (r *Repo) Undo() error {
	ok, err := r.IsInjectorCommit()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotInjectorCommit
	}

	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return fmt.Errorf("getting commit: %w", err)
	}

	if commit.NumParents() == 0 {
		return fmt.Errorf("cannot undo: HEAD is the initial commit")
	}

	parent, err := commit.Parent(0)
	if err != nil {
		return fmt.Errorf("getting parent commit: %w", err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	err = wt.Reset(&gogit.ResetOptions{
		Commit: parent.Hash,
		Mode:   gogit.SoftReset,
	})
	if err != nil {
		return fmt.Errorf("resetting to parent: %w", err)
	}

	return nil
}
