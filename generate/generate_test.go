/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/actigen/activity"
	"bennypowers.dev/actigen/generate"
	"bennypowers.dev/actigen/generate/renderer"
)

func request(layout activity.Layout, launcher bool) *activity.Request {
	return &activity.Request{
		PackageName:  "com.example",
		ActivityName: "MainActivity",
		Layout:       layout,
		Launcher:     launcher,
		CreationDate: "Thursday, October 15, 2026",
	}
}

func TestGenerate_WithLayout(t *testing.T) {
	result, err := generate.Generate(request(activity.LayoutNamed("activity_main"), true), renderer.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Files, 3)

	kinds := []generate.Kind{result.Files[0].Kind, result.Files[1].Kind, result.Files[2].Kind}
	assert.Equal(t, []generate.Kind{generate.KindManifest, generate.KindSource, generate.KindLayout}, kinds)

	m, ok := result.Get(generate.KindManifest)
	require.True(t, ok)
	assert.Equal(t, "AndroidManifest.xml", m.Path)
	assert.Contains(t, m.Content, "android.intent.category.LAUNCHER")

	src, ok := result.Get(generate.KindSource)
	require.True(t, ok)
	assert.Equal(t, "MainActivity.kt", src.Path)
	assert.Contains(t, src.Content, "MainActivityBinding")

	lay, ok := result.Get(generate.KindLayout)
	require.True(t, ok)
	assert.Equal(t, "layout/activity_main.xml", lay.Path)
	assert.Contains(t, lay.Content, `type="com.example.MainActivity"`)

	open := result.OpenOrder()
	require.Len(t, open, 2)
	assert.Equal(t, generate.KindSource, open[0].Kind)
	assert.Equal(t, generate.KindLayout, open[1].Kind)
}

func TestGenerate_WithoutLayout(t *testing.T) {
	result, err := generate.Generate(request(activity.NoLayout(), false), renderer.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Files, 2)

	_, ok := result.Get(generate.KindLayout)
	assert.False(t, ok)

	src, _ := result.Get(generate.KindSource)
	assert.Contains(t, src.Content, "setContent {")

	m, _ := result.Get(generate.KindManifest)
	assert.Contains(t, m.Content, `android:exported="false" />`)

	assert.Len(t, result.OpenOrder(), 1)
}

func TestGenerate_InvalidRequest(t *testing.T) {
	req := request(activity.LayoutNamed(""), false)
	_, err := generate.Generate(req, renderer.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, activity.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "layoutName")
}

func TestGenerate_LayoutError(t *testing.T) {
	opts := renderer.DefaultOptions()
	opts.Background = "bogus"
	_, err := generate.Generate(request(activity.LayoutNamed("activity_main"), false), opts)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "error rendering layout"))

	// Without a layout the background is never consulted.
	_, err = generate.Generate(request(activity.NoLayout(), false), opts)
	assert.NoError(t, err)
}

func TestGenerate_Deterministic(t *testing.T) {
	req := request(activity.LayoutNamed("activity_main"), true)
	first, err := generate.Generate(req, renderer.DefaultOptions())
	require.NoError(t, err)
	second, err := generate.Generate(req, renderer.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "SettingsActivity.kt", generate.SourcePath("SettingsActivity"))
	assert.Equal(t, "layout/activity_settings.xml", generate.LayoutPath("activity_settings"))
}
