// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package fieldinject

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/petar-djukic/go-fieldinject/internal/editor"
	"github.com/petar-djukic/go-fieldinject/internal/family"
	gitpkg "github.com/petar-djukic/go-fieldinject/internal/git"
	"github.com/petar-djukic/go-fieldinject/internal/injector"
	"github.com/petar-djukic/go-fieldinject/internal/render"
	"github.com/petar-djukic/go-fieldinject/pkg/types"
)

// New validates the config and returns a ready-to-use Injector.
func New(cfg Config) (Injector, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var persister types.Persister = &editor.FileWriter{}
	if cfg.DryRun {
		persister = &editor.Previewer{}
	}

	deps := injector.Deps{
		Renderer:    render.New(cfg.Indent),
		Persister:   persister,
		Events:      &injector.SlogEvents{Logger: cfg.Logger},
		EnumPackage: cfg.EnumPackage,
	}
	if cfg.CheckDirty {
		deps.Preflight = dirtyWarnings
	}

	return &injectorAdapter{cfg: cfg, inj: injector.New(deps)}, nil
}

// injectorAdapter adapts internal/injector.Injector to the public Injector
// interface.
type injectorAdapter struct {
	cfg Config
	inj *injector.Injector
}

func (a *injectorAdapter) Inject(ctx context.Context, req Request) (*Response, error) {
	req = normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		return &Response{Message: err.Error()}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	spec := types.FieldSpec{
		EntityName:    req.TableName,
		DBColumnName:  req.DBFieldName,
		TypeName:      req.JavaType,
		VariableName:  req.VariableName,
		Documentation: req.Javadoc,
		Example:       req.Example,
		Decoration:    req.Spec,
		Anchor:        req.TargetVariable,
	}

	result, err := a.inj.Run(ctx, req.ProjectPath, spec, family.CandidateNames(req.TableName))
	if err != nil {
		if errors.Is(err, injector.ErrInvalidRoot) {
			err = fmt.Errorf("%w: %v", ErrInvalidProjectPath, err)
		}
		return &Response{Message: fmt.Sprintf("Injection failed: %v", err)}, err
	}

	if a.cfg.Commit && !a.cfg.DryRun && result.Success() {
		if err := commit(req.ProjectPath, spec, result.Modified); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("auto-commit failed: %v", err))
		}
	}

	return &Response{
		Success:       result.Success(),
		Message:       buildMessage(result, a.cfg.DryRun),
		ModifiedFiles: result.Modified,
		Warnings:      result.Warnings,
		Diffs:         result.Diffs,
	}, nil
}

// dirtyWarnings reports candidate files with uncommitted changes. Projects
// outside git produce no warnings.
func dirtyWarnings(found []string) []string {
	if len(found) == 0 {
		return nil
	}
	repo, err := gitpkg.Open(filepath.Dir(found[0]))
	if err != nil {
		return nil
	}
	dirty, err := repo.DirtyFiles(found)
	if err != nil {
		return []string{fmt.Sprintf("git status failed: %v", err)}
	}
	var warnings []string
	for _, p := range dirty {
		warnings = append(warnings, fmt.Sprintf("%s has uncommitted changes", p))
	}
	return warnings
}

// commit records the modified files in the project's git repository.
func commit(projectPath string, spec types.FieldSpec, modified []string) error {
	repo, err := gitpkg.Open(projectPath)
	if err != nil {
		return err
	}
	msg := gitpkg.GenerateMessage(spec.EntityName, spec.VariableName, spec.TypeName, modified)
	return repo.Commit(modified, msg)
}

// buildMessage renders the human-readable summary of a batch.
func buildMessage(result *injector.Result, dryRun bool) string {
	var b strings.Builder
	if result.Success() {
		if dryRun {
			b.WriteString("Would modify files:\n")
		} else {
			b.WriteString("Modified files:\n")
		}
		b.WriteString(strings.Join(result.Modified, "\n"))
		if len(result.Warnings) > 0 {
			b.WriteString("\n\nWarnings:\n")
			b.WriteString(strings.Join(result.Warnings, "\n"))
		}
		return b.String()
	}

	b.WriteString("No matching files were modified.\n")
	fmt.Fprintf(&b, "Search path: %s\n", result.Root)
	b.WriteString("Candidate files:\n")
	b.WriteString(strings.Join(result.Candidates, "\n"))
	if len(result.Warnings) > 0 {
		b.WriteString("\n\nErrors:\n")
		b.WriteString(strings.Join(result.Warnings, "\n"))
	}
	return b.String()
}

// normalizeRequest trims surrounding whitespace from identifiers and
// derives a missing variable name from the column name
// (ORDER_STATUS -> orderStatus).
func normalizeRequest(req Request) Request {
	req.TableName = strings.TrimSpace(req.TableName)
	req.DBFieldName = strings.TrimSpace(req.DBFieldName)
	req.JavaType = strings.TrimSpace(req.JavaType)
	req.VariableName = strings.TrimSpace(req.VariableName)
	req.TargetVariable = strings.TrimSpace(req.TargetVariable)
	if req.VariableName == "" && req.DBFieldName != "" {
		req.VariableName = inflect.CamelizeDownFirst(strings.ToLower(req.DBFieldName))
	}
	return req
}

// validateRequest checks that required fields are present.
func validateRequest(req Request) error {
	if req.TableName == "" {
		return fmt.Errorf("TableName is required")
	}
	if req.ProjectPath == "" {
		return fmt.Errorf("ProjectPath is required")
	}
	spec := types.FieldSpec{TypeName: req.JavaType, VariableName: req.VariableName}
	return spec.Validate()
}

// validateConfig checks config values.
func validateConfig(cfg Config) error {
	if cfg.Indent < 0 {
		return fmt.Errorf("Indent must not be negative, got %d", cfg.Indent)
	}
	if strings.ContainsAny(cfg.EnumPackage, " ;\n") {
		return fmt.Errorf("EnumPackage %q is not a valid package name", cfg.EnumPackage)
	}
	if cfg.DryRun && cfg.Commit {
		return fmt.Errorf("DryRun and Commit are mutually exclusive")
	}
	return nil
}
