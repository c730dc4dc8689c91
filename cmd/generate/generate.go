/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for actigen.
package generate

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"bennypowers.dev/actigen/cmd/params"
	"bennypowers.dev/actigen/cmd/render"
	gen "bennypowers.dev/actigen/generate"
	"bennypowers.dev/actigen/internal/logger"
	"bennypowers.dev/actigen/project"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new activity",
	Long: `Generate the Kotlin source, layout resource, and manifest entry for a new activity.

The source and layout are written under the configured source and resource
roots. The manifest entry is printed for you to merge into AndroidManifest.xml,
or written to --manifest-out.`,
	Example: `  actigen generate -p com.example.app -a LoginActivity
  actigen generate -l activity_settings --launcher
  actigen generate -a ProfileActivity --no-layout --dry-run`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	params.Register(Cmd.Flags())
	Cmd.Flags().Bool("dry-run", false, "Print the generated files instead of writing them")
	Cmd.Flags().StringP("format", "f", "text", "Output format for --dry-run (text, json, names)")
	Cmd.Flags().String("manifest-out", "", "Write the manifest entry to this file instead of stdout")
	Cmd.Flags().Bool("force", false, "Overwrite existing files")
	Cmd.Flags().Bool("open", false, "Open the written files in $VISUAL or $EDITOR")
}

func run(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	formatFlag, _ := cmd.Flags().GetString("format")
	manifestOut, _ := cmd.Flags().GetString("manifest-out")
	force, _ := cmd.Flags().GetBool("force")
	open, _ := cmd.Flags().GetBool("open")

	format, err := render.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	filesystem := afero.NewOsFs()
	p, err := params.Resolve(cmd, filesystem)
	if err != nil {
		return err
	}

	if err := project.Check(filesystem, p.Paths.Resources, p.Request); err != nil {
		return err
	}

	result, err := gen.Generate(p.Request, p.Options)
	if err != nil {
		return err
	}

	writer := project.NewWriter(filesystem, p.Paths, force)
	target := func(f gen.File) string {
		return writer.Target(p.Request.PackageName, f)
	}
	out := cmd.OutOrStdout()

	if dryRun {
		return render.Artifacts(out, result.Files, format, target)
	}

	written, err := writer.Write(p.Request.PackageName, result, manifestOut)
	if err != nil {
		return err
	}
	for _, path := range written {
		logger.Info("wrote %s", path)
	}

	manifest, _ := result.Get(gen.KindManifest)
	if manifestOut != "" {
		logger.Info("merge %s into %s", manifestOut, target(manifest))
	} else {
		logger.Info("merge into %s:", target(manifest))
		if _, err := fmt.Fprint(out, manifest.Content); err != nil {
			return err
		}
	}

	if open {
		openFiles(cmd, writer, p.Request.PackageName, result)
	}
	return nil
}

func openFiles(cmd *cobra.Command, writer *project.Writer, packageName string, result *gen.Result) {
	editor := project.Editor()
	if editor == "" {
		logger.Warn("--open: set $VISUAL or $EDITOR to open generated files")
		return
	}
	var paths []string
	for _, f := range result.OpenOrder() {
		paths = append(paths, writer.Target(packageName, f))
	}
	if err := project.Open(cmd.Context(), editor, paths...); err != nil {
		logger.Warn("%v", err)
	}
}
