/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package manifest renders the manifest fragment declaring a new activity.
package manifest

import (
	_ "embed"
	"errors"

	"bennypowers.dev/actigen/activity"
	"bennypowers.dev/actigen/generate/renderer"
)

//go:embed manifest.xml.tmpl
var manifestTemplate string

var tmpl = renderer.Parse("manifest.xml", manifestTemplate)

// Renderer outputs an AndroidManifest.xml fragment to be merged into the
// project's manifest.
type Renderer struct{}

// New creates a new manifest renderer.
func New() *Renderer {
	return &Renderer{}
}

type data struct {
	Name     string
	Launcher bool
}

// Render declares packageName.activityName inside an <application> element.
// Launcher activities are exported and carry a MAIN/LAUNCHER intent filter;
// all others are self-closed and not exported.
func (r *Renderer) Render(packageName, activityName string, isLauncher bool) (string, error) {
	if err := errors.Join(
		activity.Required("packageName", packageName),
		activity.Required("activityName", activityName),
	); err != nil {
		return "", err
	}
	return renderer.Execute(tmpl, data{
		Name:     activity.Qualify(packageName, activityName),
		Launcher: isLauncher,
	})
}
