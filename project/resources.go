/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// layoutPattern matches layouts in every qualifier directory,
// e.g. layout/, layout-land/, layout-sw600dp/.
const layoutPattern = "layout*/*.xml"

// Resource is a layout resource found under a res/ directory.
type Resource struct {
	// Name is the resource name, i.e. the file name without extension.
	Name string `json:"name"`

	// Dir is the resource directory including qualifiers, e.g. "layout-land".
	Dir string `json:"dir"`

	// Path is the file's path on the filesystem.
	Path string `json:"path"`
}

// ListLayouts returns all layout resources under resDir, sorted by name then
// directory. A missing resDir yields no resources.
func ListLayouts(filesystem afero.Fs, resDir string) ([]Resource, error) {
	exists, err := afero.DirExists(filesystem, resDir)
	if err != nil || !exists {
		return nil, err
	}

	var resources []Resource
	err = afero.Walk(filesystem, resDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip directories we can't read
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(resDir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if matched, _ := doublestar.Match(layoutPattern, rel); !matched {
			return nil
		}

		dir, file, _ := strings.Cut(rel, "/")
		resources = append(resources, Resource{
			Name: strings.TrimSuffix(file, ".xml"),
			Dir:  dir,
			Path: path,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(resources, func(i, j int) bool {
		if resources[i].Name != resources[j].Name {
			return resources[i].Name < resources[j].Name
		}
		return resources[i].Dir < resources[j].Dir
	})
	return resources, nil
}

// LayoutExists reports whether a layout named name exists in any qualifier
// directory under resDir.
func LayoutExists(filesystem afero.Fs, resDir, name string) (bool, error) {
	resources, err := ListLayouts(filesystem, resDir)
	if err != nil {
		return false, err
	}
	for _, r := range resources {
		if r.Name == name {
			return true, nil
		}
	}
	return false, nil
}
