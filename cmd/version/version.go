/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for actigen.
package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/actigen/internal/version"
)

// Cmd is the version cobra command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		short, _ := cmd.Flags().GetBool("short")
		info := version.Info()
		out := cmd.OutOrStdout()

		switch {
		case format == "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		case format != "text":
			return fmt.Errorf("unknown format %q, expected text or json", format)
		case short:
			_, err := fmt.Fprintln(out, info.Version)
			return err
		default:
			_, err := fmt.Fprintf(out, "actigen %s %s\n", version.Full(), info.GoVersion)
			return err
		}
	},
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
	Cmd.Flags().Bool("short", false, "Print only the version number")
}
