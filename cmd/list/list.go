/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for actigen.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"bennypowers.dev/actigen/cmd/params"
	"bennypowers.dev/actigen/project"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List layout resources",
	Long: `List the layout resources in the project's res/ directory, across every
layout qualifier directory such as layout-land or layout-sw600dp.
New layouts must not reuse any of these names.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("res", "", "Resource directory (default from config)")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, names")
}

func run(cmd *cobra.Command, args []string) error {
	resDir, _ := cmd.Flags().GetString("res")
	format, _ := cmd.Flags().GetString("format")

	filesystem := afero.NewOsFs()
	root := params.RootDir(cmd)
	if resDir == "" {
		cfg, err := params.LoadConfig(filesystem, root)
		if err != nil {
			return err
		}
		resDir = cfg.Resolve(root).Resources
	}

	resources, err := project.ListLayouts(filesystem, resDir)
	if err != nil {
		return fmt.Errorf("error listing layouts in %s: %w", resDir, err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return outputJSON(out, resources)
	case "names":
		return outputNames(out, resources)
	case "table":
		return outputTable(out, resources)
	default:
		return fmt.Errorf("unknown format %q, expected table, json, or names", format)
	}
}

// groupByName merges resources sharing a name into one row per name,
// listing every directory it appears in.
func groupByName(resources []project.Resource) (names []string, dirs map[string][]string) {
	dirs = make(map[string][]string)
	for _, r := range resources {
		if _, seen := dirs[r.Name]; !seen {
			names = append(names, r.Name)
		}
		dirs[r.Name] = append(dirs[r.Name], r.Dir)
	}
	return names, dirs
}

func outputTable(w io.Writer, resources []project.Resource) error {
	names, dirs := groupByName(resources)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%-40s %s\n", name, strings.Join(dirs[name], ", ")); err != nil {
			return err
		}
	}
	return nil
}

func outputNames(w io.Writer, resources []project.Resource) error {
	names, _ := groupByName(resources)
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, resources []project.Resource) error {
	output := make([]project.Resource, 0, len(resources))
	for _, r := range resources {
		r.Path = filepath.ToSlash(r.Path)
		output = append(output, r)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
