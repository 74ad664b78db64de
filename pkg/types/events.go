// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Events receives progress notifications from the injector. Implementations
// must not block; the injector calls them synchronously.
type Events interface {
	// FileProcessed is called after a file was edited (or previewed).
	FileProcessed(path string, family Family, tier Tier)
	// FileSkipped is called when the renderer produced no block for a file.
	FileSkipped(path string, family Family, reason string)
	// AnchorMissed is called when an anchor was given but not found in a
	// file. closest is the most similar declared field name, or empty.
	AnchorMissed(path, anchor, closest string)
	// Warning is called for per-file failures that do not stop the batch.
	Warning(path string, err error)
	// Error is called for failures that abort the whole request.
	Error(err error)
}

// NopEvents discards all events.
type NopEvents struct{}

func (NopEvents) FileProcessed(string, Family, Tier)  {}
func (NopEvents) FileSkipped(string, Family, string)  {}
func (NopEvents) AnchorMissed(string, string, string) {}
func (NopEvents) Warning(string, error)               {}
func (NopEvents) Error(error)                         {}

var _ Events = NopEvents{}
