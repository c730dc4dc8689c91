/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package layout renders data-binding layout resources for new activities.
package layout

import (
	_ "embed"
	"errors"

	"bennypowers.dev/actigen/activity"
	"bennypowers.dev/actigen/generate/renderer"
)

//go:embed layout.xml.tmpl
var layoutTemplate string

var tmpl = renderer.Parse("layout.xml", layoutTemplate)

// Renderer outputs a layout document with an empty ConstraintLayout root
// bound to the activity through a data-binding variable.
type Renderer struct {
	opts renderer.Options
}

// New creates a new layout renderer with default options.
func New() *Renderer {
	return NewWithOptions(renderer.DefaultOptions())
}

// NewWithOptions creates a new layout renderer with the given options.
func NewWithOptions(opts renderer.Options) *Renderer {
	return &Renderer{opts: opts.WithDefaults()}
}

type data struct {
	Name       string
	Background string
}

// Render produces the layout for packageName.activityName.
func (r *Renderer) Render(packageName, activityName string) (string, error) {
	if err := errors.Join(
		activity.Required("packageName", packageName),
		activity.Required("activityName", activityName),
	); err != nil {
		return "", err
	}
	background, err := renderer.AndroidColor(r.opts.Background)
	if err != nil {
		return "", err
	}
	return renderer.Execute(tmpl, data{
		Name:       activity.Qualify(packageName, activityName),
		Background: background,
	})
}
