// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package injector wires family classification, rendering, import editing,
// and insertion into a batch that injects one field into every candidate
// file of a project.
package injector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/petar-djukic/go-fieldinject/internal/editor"
	"github.com/petar-djukic/go-fieldinject/internal/family"
	"github.com/petar-djukic/go-fieldinject/internal/javasrc"
	"github.com/petar-djukic/go-fieldinject/internal/render"
	"github.com/petar-djukic/go-fieldinject/internal/scan"
	"github.com/petar-djukic/go-fieldinject/pkg/types"
)

var (
	// ErrInvalidRoot is returned when the project root does not exist or is
	// not a directory. No file is processed.
	ErrInvalidRoot = errors.New("invalid project root")

	// ErrNoInsertionPoint is reported for a file that has no place a field
	// can go (no closing brace).
	ErrNoInsertionPoint = errors.New("no insertion point")
)

// Deps holds injected dependencies for the injector. Zero values select
// the defaults noted on each field.
type Deps struct {
	Renderer    *render.Renderer // Default render.New(render.DefaultIndent)
	Persister   types.Persister  // Default &editor.FileWriter{}
	Events      types.Events     // Default types.NopEvents{}
	EnumPackage string           // Default javasrc.DefaultEnumPackage

	// Preflight, when set, inspects the discovered files before any edit
	// and returns warnings to record. It cannot veto the batch.
	Preflight func(found []string) []string
}

// Result holds the outcome of one batch.
type Result struct {
	Root       string            // Project root that was searched
	Candidates []string          // File names searched for
	Found      []string          // Paths discovered on disk
	Modified   []string          // Paths edited (or previewed)
	Skipped    []string          // Paths the renderer produced no block for
	Warnings   []string          // Per-file failures, in processing order
	Diffs      map[string]string // Previews keyed by path (dry run only)
}

// Success reports whether at least one file was modified.
func (r *Result) Success() bool {
	return len(r.Modified) > 0
}

// Injector runs field injections.
type Injector struct {
	deps Deps
}

// New creates an Injector, filling unset dependencies with defaults.
func New(deps Deps) *Injector {
	if deps.Renderer == nil {
		deps.Renderer = render.New(render.DefaultIndent)
	}
	if deps.Persister == nil {
		deps.Persister = &editor.FileWriter{}
	}
	if deps.Events == nil {
		deps.Events = types.NopEvents{}
	}
	if deps.EnumPackage == "" {
		deps.EnumPackage = javasrc.DefaultEnumPackage
	}
	return &Injector{deps: deps}
}

// Run finds every file under root named in names and injects spec into
// each. A failure on one file is recorded as a warning and the batch
// continues. ctx is honored while scanning; once editing starts the batch
// runs to completion.
func (in *Injector) Run(ctx context.Context, root string, spec types.FieldSpec, names []string) (*Result, error) {
	result := &Result{Root: root, Candidates: names}

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		err := fmt.Errorf("%w: %s does not exist or is not a directory", ErrInvalidRoot, root)
		in.deps.Events.Error(err)
		return result, err
	}

	found, err := scan.Find(ctx, root, names)
	if err != nil {
		err = fmt.Errorf("scanning %s: %w", root, err)
		in.deps.Events.Error(err)
		return result, err
	}
	result.Found = found

	if in.deps.Preflight != nil {
		for _, w := range in.deps.Preflight(found) {
			in.deps.Events.Warning(root, errors.New(w))
			result.Warnings = append(result.Warnings, w)
		}
	}

	for _, path := range found {
		applied, skipped, err := in.injectFile(path, spec)
		switch {
		case err != nil:
			in.deps.Events.Warning(path, err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("Error processing %s: %v", path, err))
		case skipped:
			result.Skipped = append(result.Skipped, path)
		default:
			result.Modified = append(result.Modified, path)
			if applied.Diff != "" {
				if result.Diffs == nil {
					result.Diffs = make(map[string]string)
				}
				result.Diffs[path] = applied.Diff
			}
		}
	}

	return result, nil
}

// injectFile runs the per-file pipeline: classify, read, import, render,
// locate, splice, persist. skipped is true when the family produced no
// block; the file is then left untouched.
func (in *Injector) injectFile(path string, spec types.FieldSpec) (*types.ApplyResult, bool, error) {
	fam := family.Classify(filepath.Base(path))

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	original := string(raw)

	content := javasrc.EnsureImport(original, spec.TypeName, in.deps.EnumPackage)

	block, ok := in.deps.Renderer.Render(spec, fam)
	if !ok {
		in.deps.Events.FileSkipped(path, fam, "no decoration text for "+fam.String()+" file")
		return nil, true, nil
	}

	pt, ok := javasrc.Locate(content, spec.Anchor)
	if !ok {
		return nil, false, ErrNoInsertionPoint
	}
	if spec.Anchor != "" && pt.Tier != types.TierAnchor {
		in.deps.Events.AnchorMissed(path, spec.Anchor, javasrc.ClosestField(content, spec.Anchor))
	}

	applied, err := in.deps.Persister.Persist(types.Edit{
		FilePath: path,
		Original: original,
		Updated:  javasrc.Splice(content, block, pt),
	})
	if err != nil {
		return nil, false, err
	}

	in.deps.Events.FileProcessed(path, fam, pt.Tier)
	return applied, false, nil
}
