// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/go-fieldinject/internal/family"
	gitpkg "github.com/petar-djukic/go-fieldinject/internal/git"
)

// newFamiliesCmd creates the "families" command.
func newFamiliesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "families",
		Short: "List the candidate files for a table and their families",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _ := cmd.Flags().GetString("table")
			return printFamilies(cmd.OutOrStdout(), table)
		},
	}
	cmd.Flags().String("table", "", "Table (entity) name (required)")
	cmd.MarkFlagRequired("table")
	return cmd
}

func printFamilies(w io.Writer, table string) error {
	if table == "" {
		return errors.New("table name is required")
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range family.CandidateNames(table) {
		fmt.Fprintf(tw, "%s\t%s\n", name, family.Classify(name))
	}
	return tw.Flush()
}

// newUndoCmd creates the "undo" command.
func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the last field-injector commit",
		Long:  "Undo performs a soft reset of the last commit if it was made by field-injector --commit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := gitpkg.Open(viper.GetString("project"))
			if err != nil {
				return fmt.Errorf("opening repository: %w", err)
			}

			if err := repo.Undo(); err != nil {
				return fmt.Errorf("undo failed: %w", err)
			}

			okColor.Fprintln(cmd.OutOrStdout(), "Successfully reverted last field-injector commit.")
			return nil
		},
	}
}
