/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for actigen.
package validate

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"bennypowers.dev/actigen/cmd/params"
	"bennypowers.dev/actigen/project"
)

// ErrValidation indicates the parameters failed one or more checks.
var ErrValidation = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check activity parameters without writing anything",
	Long: `Check that the activity, layout, and package names are legal and that the
layout does not already exist. Accepts the same parameters as generate.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	params.Register(Cmd.Flags())
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := afero.NewOsFs()
	p, err := params.Resolve(cmd, filesystem)
	if err != nil {
		return err
	}

	if err := p.Request.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := project.Check(filesystem, p.Paths.Resources, p.Request); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "activity: %s\n", p.Request.QualifiedName())
	if p.Request.Layout.Generate() {
		fmt.Fprintf(out, "layout:   %s\n", p.Request.Layout.Name)
	} else {
		fmt.Fprintln(out, "layout:   (none)")
	}
	fmt.Fprintf(out, "launcher: %t\n", p.Request.Launcher)
	return nil
}
