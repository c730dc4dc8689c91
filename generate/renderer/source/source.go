/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package source renders the Kotlin source file of a new activity.
//
// Two variants exist. Without a layout, the activity composes its UI in code
// with a themed Scaffold. With a layout, it binds the generated layout through
// a lazily created view-binding property.
package source

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"bennypowers.dev/actigen/activity"
	"bennypowers.dev/actigen/generate/renderer"
	"bennypowers.dev/actigen/naming"
)

var (
	//go:embed compose.kt.tmpl
	composeTemplate string

	//go:embed binding.kt.tmpl
	bindingTemplate string

	composeTmpl = renderer.Parse("compose.kt", composeTemplate)
	bindingTmpl = renderer.Parse("binding.kt", bindingTemplate)
)

// composeImports are needed by the in-code UI variant.
var composeImports = []string{
	"androidx.activity.compose.setContent",
	"androidx.compose.foundation.layout.fillMaxSize",
	"androidx.compose.material3.MaterialTheme",
	"androidx.compose.material3.Scaffold",
	"androidx.compose.ui.Modifier",
	"androidx.compose.ui.res.colorResource",
}

// Renderer outputs Kotlin activity classes.
type Renderer struct {
	opts renderer.Options
}

// New creates a new source renderer with default options.
func New() *Renderer {
	return NewWithOptions(renderer.DefaultOptions())
}

// NewWithOptions creates a new source renderer with the given options.
func NewWithOptions(opts renderer.Options) *Renderer {
	return &Renderer{opts: opts.WithDefaults()}
}

type data struct {
	Package        string
	Imports        []string
	Author         string
	Date           string
	Class          string
	Base           string
	ContainerColor string
	Binding        string
	Layout         string
}

// Render produces the activity source. The layout variant decides between
// in-code UI and a binding to the named layout. date is embedded verbatim.
func (r *Renderer) Render(date, packageName, activityName string, layout activity.Layout) (string, error) {
	if err := errors.Join(
		activity.Required("creationDate", date),
		activity.Required("packageName", packageName),
		activity.Required("activityName", activityName),
	); err != nil {
		return "", err
	}
	d := data{
		Package:        packageName,
		Author:         r.opts.Author,
		Date:           date,
		Class:          activityName,
		Base:           renderer.SimpleName(r.opts.BaseActivity),
		ContainerColor: r.opts.ContainerColor,
	}
	imports := []string{
		"android.os.Bundle",
		"dagger.hilt.android.AndroidEntryPoint",
		r.opts.ResourcePackage + ".R",
	}
	if strings.Contains(r.opts.BaseActivity, ".") {
		imports = append(imports, r.opts.BaseActivity)
	}

	var tmpl *template.Template
	switch layout.Kind {
	case activity.WithoutLayout:
		tmpl = composeTmpl
		imports = append(imports, composeImports...)
	case activity.WithLayout:
		if err := activity.Required("layoutName", layout.Name); err != nil {
			return "", err
		}
		tmpl = bindingTmpl
		d.Layout = layout.Name
		d.Binding = naming.BindingType(layout.Name)
		imports = append(imports, r.opts.ResourcePackage+".databinding."+d.Binding)
	default:
		return "", fmt.Errorf("unknown layout kind %d", layout.Kind)
	}

	slices.Sort(imports)
	d.Imports = slices.Compact(imports)
	return renderer.Execute(tmpl, d)
}

// RenderWithoutLayout produces an activity that composes its UI in code.
func (r *Renderer) RenderWithoutLayout(date, packageName, activityName string) (string, error) {
	return r.Render(date, packageName, activityName, activity.NoLayout())
}

// RenderWithLayout produces an activity bound to layoutName.
func (r *Renderer) RenderWithLayout(date, packageName, activityName, layoutName string) (string, error) {
	return r.Render(date, packageName, activityName, activity.LayoutNamed(layoutName))
}
