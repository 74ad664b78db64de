// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command field-injector adds a field to every Java data class derived
// from one table name.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/go-fieldinject/pkg/fieldinject"
)

const version = "0.1.0"

func main() {
	// A .env file is optional.
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "field-injector",
		Short:         "Inject a field into Java data classes",
		Long:          "field-injector finds the entity, DTO, criteria, and request classes for a table and adds the same field to each, decorated for its role.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().String("project", ".", "Project root to search for Java files")
	rootCmd.PersistentFlags().Int("indent", 2, "Spaces before each inserted line")
	rootCmd.PersistentFlags().String("enum-package", "", "Package non-primitive types are imported from")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print diffs instead of writing files")
	rootCmd.PersistentFlags().Bool("commit", false, "Commit modified files to git")
	rootCmd.PersistentFlags().Bool("check-dirty", false, "Warn about candidate files with uncommitted changes")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	for _, name := range []string{"project", "indent", "enum-package", "dry-run", "commit", "check-dirty", "json", "log-level"} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Env vars: FIELD_INJECTOR_PROJECT, FIELD_INJECTOR_ENUM_PACKAGE, etc.
	viper.SetEnvPrefix("FIELD_INJECTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".field-injector")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newInjectCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newFamiliesCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// configFromViper builds the injector config from flags, env, and the
// config file.
func configFromViper() (fieldinject.Config, error) {
	logger, err := newLogger(viper.GetString("log-level"))
	if err != nil {
		return fieldinject.Config{}, err
	}
	return fieldinject.Config{
		Indent:      viper.GetInt("indent"),
		EnumPackage: viper.GetString("enum-package"),
		DryRun:      viper.GetBool("dry-run"),
		CheckDirty:  viper.GetBool("check-dirty"),
		Commit:      viper.GetBool("commit"),
		Logger:      logger,
	}, nil
}

// newLogger returns a text logger on stderr at the named level.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print field-injector version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "field-injector %s\n", version)
		},
	}
}
