// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package injector

import (
	"log/slog"

	"github.com/petar-djukic/go-fieldinject/pkg/types"
)

// SlogEvents reports injector events as structured log records.
type SlogEvents struct {
	Logger *slog.Logger // Defaults to slog.Default() if nil
}

var _ types.Events = (*SlogEvents)(nil)

func (e *SlogEvents) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

func (e *SlogEvents) FileProcessed(path string, fam types.Family, tier types.Tier) {
	e.logger().Info("field inserted", "path", path, "family", fam.String(), "tier", tier.String())
}

func (e *SlogEvents) FileSkipped(path string, fam types.Family, reason string) {
	e.logger().Debug("file skipped", "path", path, "family", fam.String(), "reason", reason)
}

func (e *SlogEvents) AnchorMissed(path, anchor, closest string) {
	attrs := []any{"path", path, "anchor", anchor}
	if closest != "" {
		attrs = append(attrs, "closest", closest)
	}
	e.logger().Info("anchor not found, using fallback", attrs...)
}

func (e *SlogEvents) Warning(path string, err error) {
	e.logger().Warn("file not modified", "path", path, "error", err)
}

func (e *SlogEvents) Error(err error) {
	e.logger().Error("injection aborted", "error", err)
}
