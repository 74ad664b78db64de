// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fieldinject is the public interface for go-fieldinject: it adds a
// field declaration to every Java data class derived from one table name
// (entity, DTO, criteria, request types) in a project.
package fieldinject

import (
	"context"
	"errors"
	"log/slog"
)

// Error types for the fieldinject API.
var (
	ErrInvalidConfig      = errors.New("invalid config")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidProjectPath = errors.New("invalid project path")
)

// Config configures an Injector.
type Config struct {
	Indent      int          // Spaces before each inserted line (default 2)
	EnumPackage string       // Package enum types are imported from
	DryRun      bool         // Compute diffs instead of writing files
	CheckDirty  bool         // Warn about candidate files with uncommitted git changes
	Commit      bool         // Commit modified files to git after a successful run
	Logger      *slog.Logger // Destination for structured events (default slog.Default())
}

// Request describes one field to inject. TableName, JavaType and
// ProjectPath are required; VariableName is derived from DBFieldName when
// empty.
type Request struct {
	TableName      string `json:"tableName" yaml:"table"`
	DBFieldName    string `json:"dbFieldName" yaml:"column"`
	JavaType       string `json:"javaType" yaml:"type"`
	VariableName   string `json:"variableName" yaml:"var"`
	Javadoc        string `json:"javadoc" yaml:"doc"`
	Example        string `json:"example,omitempty" yaml:"example"`
	Spec           string `json:"spec,omitempty" yaml:"decoration"`
	ProjectPath    string `json:"projectPath" yaml:"project"`
	TargetVariable string `json:"targetVariable,omitempty" yaml:"after"`
}

// Response holds the outcome of Inject.
type Response struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	ModifiedFiles []string          `json:"modifiedFiles,omitempty"`
	Warnings      []string          `json:"warnings,omitempty"`
	Diffs         map[string]string `json:"diffs,omitempty"`
}

// Injector injects fields into a project.
type Injector interface {
	// Inject finds the candidate files for req.TableName under
	// req.ProjectPath and inserts the field into each. Per-file failures are
	// reported in the Response; an error is returned only when the request
	// itself is invalid or the project path cannot be searched.
	Inject(ctx context.Context, req Request) (*Response, error)
}
