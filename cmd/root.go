/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for actigen.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/actigen/cmd/generate"
	"bennypowers.dev/actigen/cmd/list"
	"bennypowers.dev/actigen/cmd/suggest"
	"bennypowers.dev/actigen/cmd/validate"
	"bennypowers.dev/actigen/cmd/version"
	"bennypowers.dev/actigen/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "actigen",
	Short: "Generate Android activities",
	Long: `actigen generates the Kotlin source, data-binding layout, and manifest entry
for a new Android activity.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "Project root containing .config/actigen.yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress log messages")

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(suggest.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func setup(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	if quiet {
		logger.SetOutput(io.Discard)
	} else {
		logger.SetOutput(os.Stderr)
	}
	logger.SetVerbose(verbose)
	return nil
}
