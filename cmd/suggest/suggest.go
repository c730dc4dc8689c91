/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package suggest provides the suggest command for actigen.
package suggest

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"bennypowers.dev/actigen/cmd/params"
	"bennypowers.dev/actigen/naming"
)

// Cmd is the suggest cobra command.
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest matching activity and layout names",
	Long:  `Derive a layout name from an activity name, or an activity name from a layout name.`,
}

var layoutCmd = &cobra.Command{
	Use:     "layout <ActivityName>",
	Short:   "Suggest a layout name for an activity",
	Example: "  actigen suggest layout UserProfileActivity  # activity_user_profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runLayout,
}

var activityCmd = &cobra.Command{
	Use:     "activity <layout_name>",
	Short:   "Suggest an activity name for a layout",
	Example: "  actigen suggest activity activity_user_profile  # UserProfileActivity",
	Args:    cobra.ExactArgs(1),
	RunE:    runActivity,
}

func init() {
	layoutCmd.Flags().String("prefix", "", "Layout name prefix (default from config, or \"activity\")")

	Cmd.AddCommand(layoutCmd)
	Cmd.AddCommand(activityCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	prefix := naming.DefaultLayoutPrefix
	if cmd.Flags().Changed("prefix") {
		prefix, _ = cmd.Flags().GetString("prefix")
	} else {
		cfg, err := params.LoadConfig(afero.NewOsFs(), params.RootDir(cmd))
		if err != nil {
			return err
		}
		prefix = cfg.Template.LayoutPrefix
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), naming.LayoutFromActivityWithPrefix(args[0], prefix))
	return err
}

func runActivity(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), naming.ActivityFromLayout(args[0]))
	return err
}
