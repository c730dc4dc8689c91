/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project places generated activity files into an Android module.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"bennypowers.dev/actigen/config"
	"bennypowers.dev/actigen/generate"
)

// Writer writes generated files under a module's source and resource roots.
type Writer struct {
	fs    afero.Fs
	paths config.Paths
	force bool
}

// NewWriter creates a writer for the given roots. Unless force is set,
// existing files are never overwritten.
func NewWriter(filesystem afero.Fs, paths config.Paths, force bool) *Writer {
	return &Writer{fs: filesystem, paths: paths, force: force}
}

// Target returns where f belongs on disk for an activity in packageName.
func (w *Writer) Target(packageName string, f generate.File) string {
	switch f.Kind {
	case generate.KindSource:
		return filepath.Join(w.paths.PackageDir(packageName), f.Path)
	case generate.KindLayout:
		return filepath.Join(w.paths.Resources, f.Path)
	default:
		return filepath.Join(w.paths.Manifest, f.Path)
	}
}

// Write saves the source and layout files of result and returns their paths
// in write order. The manifest fragment is only written when manifestOut is
// set, and then to that path; merging it is left to the caller. No file is
// written if any target already exists.
func (w *Writer) Write(packageName string, result *generate.Result, manifestOut string) ([]string, error) {
	type pending struct {
		path    string
		content string
	}

	var files []pending
	for _, f := range result.Files {
		switch {
		case f.Kind != generate.KindManifest:
			files = append(files, pending{w.Target(packageName, f), f.Content})
		case manifestOut != "":
			files = append(files, pending{manifestOut, f.Content})
		}
	}

	for _, f := range files {
		if err := w.checkTarget(f.path); err != nil {
			return nil, err
		}
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		if err := w.WriteFile(f.path, f.content); err != nil {
			return written, err
		}
		written = append(written, f.path)
	}
	return written, nil
}

// WriteFile writes content to path, creating parent directories.
func (w *Writer) WriteFile(path, content string) error {
	if err := w.checkTarget(path); err != nil {
		return err
	}
	if err := w.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(w.fs, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

func (w *Writer) checkTarget(path string) error {
	if w.force {
		return nil
	}
	exists, err := afero.Exists(w.fs, path)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrFileExists, path)
	}
	return nil
}
