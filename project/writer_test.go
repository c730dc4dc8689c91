/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/actigen/config"
	"bennypowers.dev/actigen/generate"
)

var testPaths = config.Paths{
	Source:    "/project/app/src/main/java",
	Resources: "/project/app/src/main/res",
	Manifest:  "/project/app/src/main",
}

func testResult() *generate.Result {
	return &generate.Result{Files: []generate.File{
		{Kind: generate.KindManifest, Path: generate.ManifestFile, Content: "<manifest />\n"},
		{Kind: generate.KindSource, Path: generate.SourcePath("LoginActivity"), Content: "class LoginActivity\n"},
		{Kind: generate.KindLayout, Path: generate.LayoutPath("activity_login"), Content: "<layout />\n"},
	}}
}

func TestWriter_Target(t *testing.T) {
	w := NewWriter(afero.NewMemMapFs(), testPaths, false)
	result := testResult()

	assert.Equal(t, "/project/app/src/main/AndroidManifest.xml", w.Target("com.example", result.Files[0]))
	assert.Equal(t, "/project/app/src/main/java/com/example/LoginActivity.kt", w.Target("com.example", result.Files[1]))
	assert.Equal(t, "/project/app/src/main/res/layout/activity_login.xml", w.Target("com.example", result.Files[2]))
}

func TestWriter_Write(t *testing.T) {
	mfs := afero.NewMemMapFs()
	w := NewWriter(mfs, testPaths, false)

	written, err := w.Write("com.example", testResult(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/project/app/src/main/java/com/example/LoginActivity.kt",
		"/project/app/src/main/res/layout/activity_login.xml",
	}, written)

	content, err := afero.ReadFile(mfs, written[0])
	require.NoError(t, err)
	assert.Equal(t, "class LoginActivity\n", string(content))

	manifestWritten, err := afero.Exists(mfs, "/project/app/src/main/AndroidManifest.xml")
	require.NoError(t, err)
	assert.False(t, manifestWritten, "manifest fragments are not written")
}

func TestWriter_WriteRefusesOverwrite(t *testing.T) {
	mfs := afero.NewMemMapFs()
	layoutPath := "/project/app/src/main/res/layout/activity_login.xml"
	require.NoError(t, afero.WriteFile(mfs, layoutPath, []byte("original"), 0644))

	w := NewWriter(mfs, testPaths, false)
	written, err := w.Write("com.example", testResult(), "")
	assert.ErrorIs(t, err, ErrFileExists)
	assert.Empty(t, written)

	sourceWritten, err := afero.Exists(mfs, "/project/app/src/main/java/com/example/LoginActivity.kt")
	require.NoError(t, err)
	assert.False(t, sourceWritten, "nothing is written when any target exists")

	content, err := afero.ReadFile(mfs, layoutPath)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))
}

func TestWriter_WriteForce(t *testing.T) {
	mfs := afero.NewMemMapFs()
	layoutPath := "/project/app/src/main/res/layout/activity_login.xml"
	require.NoError(t, afero.WriteFile(mfs, layoutPath, []byte("original"), 0644))

	w := NewWriter(mfs, testPaths, true)
	_, err := w.Write("com.example", testResult(), "")
	require.NoError(t, err)

	content, err := afero.ReadFile(mfs, layoutPath)
	require.NoError(t, err)
	assert.Equal(t, "<layout />\n", string(content))
}

func TestWriter_WriteFile(t *testing.T) {
	mfs := afero.NewMemMapFs()
	w := NewWriter(mfs, testPaths, false)

	require.NoError(t, w.WriteFile("/out/fragment.xml", "<manifest />\n"))
	assert.ErrorIs(t, w.WriteFile("/out/fragment.xml", "<manifest />\n"), ErrFileExists)
}

func TestWriter_WriteManifestOut(t *testing.T) {
	mfs := afero.NewMemMapFs()
	w := NewWriter(mfs, testPaths, false)

	written, err := w.Write("com.example", testResult(), "/out/fragment.xml")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/out/fragment.xml",
		"/project/app/src/main/java/com/example/LoginActivity.kt",
		"/project/app/src/main/res/layout/activity_login.xml",
	}, written)

	content, err := afero.ReadFile(mfs, "/out/fragment.xml")
	require.NoError(t, err)
	assert.Equal(t, "<manifest />\n", string(content))
}

func TestWriter_WriteManifestOutExists(t *testing.T) {
	mfs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mfs, "/out/fragment.xml", []byte("mine"), 0644))

	w := NewWriter(mfs, testPaths, false)
	written, err := w.Write("com.example", testResult(), "/out/fragment.xml")
	assert.ErrorIs(t, err, ErrFileExists)
	assert.Empty(t, written)

	for _, path := range []string{
		"/project/app/src/main/java/com/example/LoginActivity.kt",
		"/project/app/src/main/res/layout/activity_login.xml",
	} {
		exists, err := afero.Exists(mfs, path)
		require.NoError(t, err)
		assert.False(t, exists, "%s must not be written", path)
	}
}
