/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package naming_test

import (
	"testing"

	"bennypowers.dev/actigen/naming"
)

func TestLayoutFromActivity(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MainActivity", "activity_main"},
		{"UserProfileActivity", "activity_user_profile"},
		{"SettingsActivity", "activity_settings"},
		{"MainActivi", "activity_main"},
		{"MainAct", "activity_main"},
		{"Main", "activity_main"},
		{"Activity", "activity_activity"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := naming.LayoutFromActivity(tt.input)
			if result != tt.expected {
				t.Errorf("LayoutFromActivity(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLayoutFromActivityWithPrefix(t *testing.T) {
	tests := []struct {
		input    string
		prefix   string
		expected string
	}{
		{"MainActivity", "screen", "screen_main"},
		{"MainActivity", "", "main"},
		{"UserProfileActivity", "activity", "activity_user_profile"},
	}

	for _, tt := range tests {
		t.Run(tt.input+"_"+tt.prefix, func(t *testing.T) {
			result := naming.LayoutFromActivityWithPrefix(tt.input, tt.prefix)
			if result != tt.expected {
				t.Errorf("LayoutFromActivityWithPrefix(%q, %q) = %q, expected %q",
					tt.input, tt.prefix, result, tt.expected)
			}
		})
	}
}

func TestStripActivitySuffix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MainActivity", "Main"},
		{"AboutActivity", "About"},
		{"MainActiv", "Main"},
		{"MainA", "Main"},
		{"Activity", "Activity"},
		{"Main", "Main"},
		{"MainActivityHelper", "MainActivityHelper"},
		{"A", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := naming.StripActivitySuffix(tt.input)
			if result != tt.expected {
				t.Errorf("StripActivitySuffix(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestActivityFromLayout(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"activity_main", "MainActivity"},
		{"activity_user_profile", "UserProfileActivity"},
		{"main_activity", "MainActivity"},
		{"settings", "SettingsActivity"},
		{"activity", "Activity"},
		{"activity__main", "MainActivity"},
		{"", "MainActivity"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := naming.ActivityFromLayout(tt.input)
			if result != tt.expected {
				t.Errorf("ActivityFromLayout(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNearInverse(t *testing.T) {
	names := []string{
		"MainActivity",
		"LoginActivity",
		"UserProfileActivity",
		"OrderHistoryDetailActivity",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			layout := naming.LayoutFromActivity(name)
			back := naming.ActivityFromLayout(layout)
			if back != name {
				t.Errorf("round trip %q -> %q -> %q", name, layout, back)
			}
		})
	}
}

func TestBindingType(t *testing.T) {
	if got := naming.BindingType("activity_main"); got != "MainActivityBinding" {
		t.Errorf("expected MainActivityBinding, got %q", got)
	}
	if got := naming.BindingType("activity_user_profile"); got != "UserProfileActivityBinding" {
		t.Errorf("expected UserProfileActivityBinding, got %q", got)
	}
}

func TestEscapeKotlinPackage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"com.example.app", "com.example.app"},
		{"com.example.in", "com.example.`in`"},
		{"com.fun.is.app", "com.`fun`.`is`.app"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := naming.EscapeKotlinPackage(tt.input)
			if result != tt.expected {
				t.Errorf("EscapeKotlinPackage(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
