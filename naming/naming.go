/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming derives suggested activity and layout names from one another.
//
// The two directions are approximate inverses: for a PascalCase activity name
// ending in "Activity", converting to a layout name and back yields the
// original name. For other shapes the functions degrade to a best-effort
// transformation and never fail.
package naming

import (
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// ActivitySuffix is the conventional suffix of activity class names.
	ActivitySuffix = "Activity"

	// DefaultLayoutPrefix is prepended to layout names derived from activities.
	DefaultLayoutPrefix = "activity"

	// DefaultActivity is suggested when there is nothing to derive from.
	DefaultActivity = "MainActivity"

	// DefaultLayout is the layout name matching DefaultActivity.
	DefaultLayout = "activity_main"

	// BindingSuffix is appended to generated view-binding type names.
	BindingSuffix = "Binding"
)

// LayoutFromActivity suggests a layout resource name for an activity,
// e.g. "MainActivity" -> "activity_main".
func LayoutFromActivity(activityName string) string {
	return LayoutFromActivityWithPrefix(activityName, DefaultLayoutPrefix)
}

// LayoutFromActivityWithPrefix is LayoutFromActivity with a custom prefix.
// An empty prefix yields the bare snake_case stem.
func LayoutFromActivityWithPrefix(activityName, prefix string) string {
	if activityName == "" {
		return ""
	}
	stem := strcase.ToSnake(StripActivitySuffix(activityName))
	switch {
	case stem == "":
		return prefix
	case prefix == "":
		return stem
	default:
		return prefix + "_" + stem
	}
}

// StripActivitySuffix removes a trailing "Activity" from name. A partially
// typed suffix ("MainActivi") is removed as well, so that suggestions made
// while the user is still typing don't leak suffix fragments into the layout
// name. A name that is nothing but the suffix is returned unchanged.
func StripActivitySuffix(name string) string {
	if len(name) < 2 {
		return name
	}
	start := strings.LastIndexByte(name, ActivitySuffix[0])
	if start <= 0 {
		return name
	}
	if strings.HasPrefix(ActivitySuffix, name[start:]) {
		return name[:start]
	}
	return name
}

// ActivityFromLayout suggests an activity class name for a layout resource,
// e.g. "activity_main" -> "MainActivity".
func ActivityFromLayout(layoutName string) string {
	// Casers carry state, so each call gets its own.
	title := cases.Title(language.Und, cases.NoLower)

	parts := make([]string, 0, strings.Count(layoutName, "_")+1)
	for _, segment := range strings.Split(layoutName, "_") {
		if segment == "" {
			continue
		}
		parts = append(parts, title.String(segment))
	}
	if len(parts) > 1 && parts[0] == ActivitySuffix {
		parts = parts[1:]
	}

	name := strings.Join(parts, "")
	if name == "" {
		return DefaultActivity
	}
	if !strings.HasSuffix(name, ActivitySuffix) {
		name += ActivitySuffix
	}
	return name
}

// BindingType returns the view-binding type name used for a layout,
// e.g. "activity_main" -> "MainActivityBinding".
func BindingType(layoutName string) string {
	return ActivityFromLayout(layoutName) + BindingSuffix
}
