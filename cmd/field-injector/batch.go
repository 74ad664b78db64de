// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/go-fieldinject/pkg/fieldinject"
)

// newBatchCmd creates the "batch" command.
func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Inject every field listed in a YAML file",
		Long: `Batch reads a YAML list of fields and injects them in order:

  - table: Order
    column: ORDER_STATUS
    type: Status
    doc: Order status

A request without "project" uses --project.`,
		RunE: runBatch,
	}

	cmd.Flags().StringP("file", "f", "", "YAML file of fields (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

// readBatch decodes a YAML list of requests. Requests without a project
// inherit defaultProject.
func readBatch(r io.Reader, defaultProject string) ([]fieldinject.Request, error) {
	var reqs []fieldinject.Request
	if err := yaml.NewDecoder(r).Decode(&reqs); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding batch: %w", err)
	}
	for i := range reqs {
		if reqs[i].ProjectPath == "" {
			reqs[i].ProjectPath = defaultProject
		}
	}
	return reqs, nil
}

// runBatch executes each request in the batch file. Every request runs even
// when an earlier one fails.
func runBatch(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	reqs, err := readBatch(f, viper.GetString("project"))
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		printWarning(cmd.ErrOrStderr(), "no fields in %s", path)
		return nil
	}

	cfg, err := configFromViper()
	if err != nil {
		return err
	}
	inj, err := fieldinject.New(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	out := cmd.OutOrStdout()
	asJSON := viper.GetBool("json")
	failed := 0
	for i, req := range reqs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !asJSON {
			color.New(color.Bold).Fprintf(out, "[%d/%d] %s.%s\n", i+1, len(reqs), req.TableName, displayName(req))
		}
		resp, err := inj.Inject(ctx, req)
		if resp != nil {
			printResponse(out, resp, asJSON)
		}
		if err != nil || !resp.Success {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fields were not injected", failed, len(reqs))
	}
	return nil
}

func displayName(req fieldinject.Request) string {
	if req.VariableName != "" {
		return req.VariableName
	}
	return req.DBFieldName
}
