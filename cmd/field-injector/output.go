// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/petar-djukic/go-fieldinject/pkg/fieldinject"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
)

// printResponse writes resp to w, either as indented JSON or as colored
// status lines followed by any dry-run diffs.
func printResponse(w io.Writer, resp *fieldinject.Response, asJSON bool) {
	if asJSON {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			fmt.Fprintf(w, "Error marshaling response: %v\n", err)
			return
		}
		fmt.Fprintln(w, string(out))
		return
	}

	if resp.Success {
		okColor.Fprintln(w, resp.Message)
	} else {
		failColor.Fprintln(w, resp.Message)
	}

	paths := make([]string, 0, len(resp.Diffs))
	for p := range resp.Diffs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintln(w)
		fmt.Fprint(w, resp.Diffs[p])
	}
}

// printWarning writes a single highlighted warning line.
func printWarning(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, "warning: "+format+"\n", args...)
}
