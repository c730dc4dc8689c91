/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package renderer provides options and template utilities shared by the
// manifest, source, and layout renderers.
package renderer

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/actigen/naming"
)

// Options configures project-specific values baked into generated files.
type Options struct {
	// Author is credited in the source file header.
	Author string

	// ResourcePackage is the package holding the app's R class and
	// generated data-binding types.
	ResourcePackage string

	// BaseActivity is the fully qualified superclass of generated activities.
	BaseActivity string

	// ContainerColor names the color resource used behind composed content.
	ContainerColor string

	// Background is the layout root's background color, in any CSS color syntax.
	Background string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Author:          "HOI",
		ResourcePackage: "com.example.testapplication",
		BaseActivity:    "com.example.testapplication.BaseActivity",
		ContainerColor:  "contents_bg",
		Background:      "#FFFFFF",
	}
}

// WithDefaults fills empty fields from DefaultOptions.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Author == "" {
		o.Author = d.Author
	}
	if o.ResourcePackage == "" {
		o.ResourcePackage = d.ResourcePackage
	}
	if o.BaseActivity == "" {
		o.BaseActivity = d.BaseActivity
	}
	if o.ContainerColor == "" {
		o.ContainerColor = d.ContainerColor
	}
	if o.Background == "" {
		o.Background = d.Background
	}
	return o
}

var funcs = template.FuncMap{
	"xml":           EscapeXML,
	"kotlinPackage": naming.EscapeKotlinPackage,
	"simpleName":    SimpleName,
}

// Parse parses a template with the shared helper functions. It panics on a
// malformed template, since templates are compiled into the binary.
func Parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

// Execute renders tmpl with data.
func Execute(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}

// SimpleName returns the last dot-separated segment of a qualified name.
func SimpleName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

// AndroidColor normalizes a CSS color to Android's #RRGGBB form, or
// #AARRGGBB when the color is translucent.
func AndroidColor(value string) (string, error) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", value, err)
	}
	r, g, b, a := c.RGBA255()
	if a == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b), nil
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", a, r, g, b), nil
}

// EscapeXML escapes special XML characters.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
