// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/go-fieldinject/pkg/fieldinject"
)

// errNotModified makes the process exit non-zero when no file changed.
var errNotModified = errors.New("no files were modified")

// newInjectCmd creates the "inject" command.
func newInjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject",
		Short: "Inject one field",
		Long:  "Inject adds the field to every class named after the table: <Table>Entity, <Table>Dto, <Table>Criteria, and the request types.",
		RunE:  runInject,
	}

	cmd.Flags().String("table", "", "Table (entity) name, e.g. Order (required)")
	cmd.Flags().String("column", "", "Database column name, e.g. ORDER_STATUS")
	cmd.Flags().String("type", "", "Java type of the field (required)")
	cmd.Flags().String("var", "", "Field name (derived from --column when empty)")
	cmd.Flags().String("doc", "", "Javadoc text")
	cmd.Flags().String("example", "", "Example value for @Schema")
	cmd.Flags().String("decoration", "", "Annotation for criteria classes, e.g. @Spec(...)")
	cmd.Flags().String("after", "", "Insert after this existing field")
	cmd.MarkFlagRequired("table")
	cmd.MarkFlagRequired("type")

	return cmd
}

// requestFromFlags maps the inject flags onto a Request.
func requestFromFlags(cmd *cobra.Command, project string) fieldinject.Request {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fieldinject.Request{
		TableName:      get("table"),
		DBFieldName:    get("column"),
		JavaType:       get("type"),
		VariableName:   get("var"),
		Javadoc:        get("doc"),
		Example:        get("example"),
		Spec:           get("decoration"),
		ProjectPath:    project,
		TargetVariable: get("after"),
	}
}

// runInject executes a single injection.
func runInject(cmd *cobra.Command, args []string) error {
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

	req := requestFromFlags(cmd, viper.GetString("project"))
	resp, err := inj.Inject(ctx, req)
	if resp != nil {
		printResponse(cmd.OutOrStdout(), resp, viper.GetBool("json"))
	}
	if err != nil {
		return err
	}
	if !resp.Success {
		return errNotModified
	}
	return nil
}
