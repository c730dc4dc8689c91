/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package activity defines the inputs for generating a new activity.
package activity

import (
	"errors"
	"strings"
)

// LayoutKind tells whether a layout resource is generated alongside the activity.
type LayoutKind int

const (
	// WithoutLayout composes the UI in code; no layout file is written.
	WithoutLayout LayoutKind = iota

	// WithLayout generates a data-binding layout resource.
	WithLayout
)

// String returns the kind's name.
func (k LayoutKind) String() string {
	switch k {
	case WithLayout:
		return "WithLayout"
	default:
		return "WithoutLayout"
	}
}

// Layout selects between the two source-file variants. Name is only
// meaningful when Kind is WithLayout.
type Layout struct {
	Kind LayoutKind
	Name string
}

// NoLayout returns a Layout that generates no layout resource.
func NoLayout() Layout {
	return Layout{Kind: WithoutLayout}
}

// LayoutNamed returns a Layout that generates the named layout resource.
func LayoutNamed(name string) Layout {
	return Layout{Kind: WithLayout, Name: name}
}

// Generate reports whether a layout resource is generated.
func (l Layout) Generate() bool {
	return l.Kind == WithLayout
}

// Request carries the already-validated parameters for one generation pass.
type Request struct {
	// PackageName is the dot-separated package of the new activity.
	PackageName string

	// ActivityName is the class name, used verbatim.
	ActivityName string

	// Layout chooses whether a layout is generated and under what name.
	Layout Layout

	// Launcher adds a MAIN/LAUNCHER intent filter to the manifest entry.
	Launcher bool

	// CreationDate is a pre-formatted date embedded in the source header.
	CreationDate string
}

// QualifiedName returns PackageName.ActivityName.
func (r *Request) QualifiedName() string {
	return Qualify(r.PackageName, r.ActivityName)
}

// Qualify joins a package and a simple class name.
func Qualify(packageName, className string) string {
	if packageName == "" {
		return className
	}
	return packageName + "." + className
}

// Validate fails fast on absent required fields. It does not judge whether
// names are legal identifiers; that is the caller's business.
func (r *Request) Validate() error {
	if r == nil {
		return &RequestError{Field: "request", Reason: "is nil"}
	}
	errs := []error{
		Required("packageName", r.PackageName),
		Required("activityName", r.ActivityName),
		Required("creationDate", r.CreationDate),
	}
	switch r.Layout.Kind {
	case WithoutLayout:
	case WithLayout:
		if strings.TrimSpace(r.Layout.Name) == "" {
			errs = append(errs, &RequestError{Field: "layoutName", Reason: "is required when generating a layout"})
		}
	default:
		errs = append(errs, &RequestError{Field: "layout", Reason: "has an unknown kind"})
	}
	return errors.Join(errs...)
}
