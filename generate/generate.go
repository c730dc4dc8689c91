/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate renders every file belonging to a new activity.
package generate

import (
	"fmt"
	"path"

	"bennypowers.dev/actigen/activity"
	"bennypowers.dev/actigen/generate/renderer"
	"bennypowers.dev/actigen/generate/renderer/layout"
	"bennypowers.dev/actigen/generate/renderer/manifest"
	"bennypowers.dev/actigen/generate/renderer/source"
)

// Kind identifies a generated artifact.
type Kind string

const (
	// KindManifest is a fragment to merge into AndroidManifest.xml.
	KindManifest Kind = "manifest"

	// KindSource is the activity's Kotlin source.
	KindSource Kind = "source"

	// KindLayout is the activity's layout resource.
	KindLayout Kind = "layout"
)

// ManifestFile is the document the manifest fragment merges into.
const ManifestFile = "AndroidManifest.xml"

// File is one generated artifact. Path is relative to the root that the
// artifact's Kind belongs to: the manifest directory, the source root, or
// the resource root.
type File struct {
	Kind    Kind   `json:"kind"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Result holds the artifacts of one generation pass, in the order manifest,
// source, layout.
type Result struct {
	Files []File `json:"files"`
}

// Get returns the file of the given kind.
func (r *Result) Get(kind Kind) (File, bool) {
	for _, f := range r.Files {
		if f.Kind == kind {
			return f, true
		}
	}
	return File{}, false
}

// OpenOrder returns the files to show to the user once written: the source,
// then the layout if there is one.
func (r *Result) OpenOrder() []File {
	var files []File
	for _, kind := range []Kind{KindSource, KindLayout} {
		if f, ok := r.Get(kind); ok {
			files = append(files, f)
		}
	}
	return files
}

// SourcePath returns the source file path for an activity, relative to the
// package directory.
func SourcePath(activityName string) string {
	return activityName + ".kt"
}

// LayoutPath returns the layout resource path, relative to the resource root.
func LayoutPath(layoutName string) string {
	return path.Join("layout", layoutName+".xml")
}

// Generate validates req and renders its artifacts. The renderers are
// independent of one another; the layout renderer only runs when req asks
// for a layout.
func Generate(req *activity.Request, opts renderer.Options) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	manifestXML, err := manifest.New().Render(req.PackageName, req.ActivityName, req.Launcher)
	if err != nil {
		return nil, fmt.Errorf("error rendering manifest: %w", err)
	}

	src, err := source.NewWithOptions(opts).Render(req.CreationDate, req.PackageName, req.ActivityName, req.Layout)
	if err != nil {
		return nil, fmt.Errorf("error rendering source: %w", err)
	}

	result := &Result{Files: []File{
		{Kind: KindManifest, Path: ManifestFile, Content: manifestXML},
		{Kind: KindSource, Path: SourcePath(req.ActivityName), Content: src},
	}}

	if req.Layout.Generate() {
		layoutXML, err := layout.NewWithOptions(opts).Render(req.PackageName, req.ActivityName)
		if err != nil {
			return nil, fmt.Errorf("error rendering layout: %w", err)
		}
		result.Files = append(result.Files, File{
			Kind:    KindLayout,
			Path:    LayoutPath(req.Layout.Name),
			Content: layoutXML,
		})
	}

	return result, nil
}
