/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration for activity generation.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/actigen/generate/renderer"
	"bennypowers.dev/actigen/naming"
)

// ErrInvalidConfig indicates a config file could not be decoded.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the project configuration.
type Config struct {
	// Package is the default package for new activities.
	Package string `yaml:"package" json:"package"`

	// Author is credited in generated source headers.
	Author string `yaml:"author" json:"author"`

	// Locale selects the creation date style (BCP 47, e.g. "ko-KR").
	// Empty means the system locale.
	Locale string `yaml:"locale" json:"locale"`

	// Paths locates the module's source, resource, and manifest roots.
	Paths Paths `yaml:"paths" json:"paths"`

	// Template holds project-specific values baked into generated files.
	Template Template `yaml:"template" json:"template"`
}

// Paths are relative to the project root unless absolute.
type Paths struct {
	// Source is the Kotlin/Java source root; package directories are appended.
	Source string `yaml:"source" json:"source"`

	// Resources is the res/ directory.
	Resources string `yaml:"resources" json:"resources"`

	// Manifest is the directory containing AndroidManifest.xml.
	Manifest string `yaml:"manifest" json:"manifest"`
}

// Template configures the renderers.
type Template struct {
	ResourcePackage string `yaml:"resourcePackage" json:"resourcePackage"`
	BaseActivity    string `yaml:"baseActivity" json:"baseActivity"`
	ContainerColor  string `yaml:"containerColor" json:"containerColor"`
	Background      string `yaml:"background" json:"background"`

	// LayoutPrefix prefixes layout names suggested from activity names.
	LayoutPrefix string `yaml:"layoutPrefix" json:"layoutPrefix"`
}

// UnmarshalYAML accepts the shorthand `paths: app/src/main`, which expands
// to the standard Gradle module layout under that directory.
func (p *Paths) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*p = ModulePaths(node.Value)
		return nil
	}

	type rawPaths Paths
	return node.Decode((*rawPaths)(p))
}

// UnmarshalJSON handles both string and object forms for Paths.
func (p *Paths) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ModulePaths(s)
		return nil
	}

	type rawPaths Paths
	return json.Unmarshal(data, (*rawPaths)(p))
}

// ModulePaths returns the standard layout of a source set directory
// such as app/src/main.
func ModulePaths(dir string) Paths {
	return Paths{
		Source:    filepath.Join(dir, "java"),
		Resources: filepath.Join(dir, "res"),
		Manifest:  dir,
	}
}

// Default returns a config with default values.
func Default() *Config {
	defaults := renderer.DefaultOptions()
	return &Config{
		Author: defaults.Author,
		Paths:  ModulePaths(filepath.Join("app", "src", "main")),
		Template: Template{
			ResourcePackage: defaults.ResourcePackage,
			BaseActivity:    defaults.BaseActivity,
			ContainerColor:  defaults.ContainerColor,
			Background:      defaults.Background,
			LayoutPrefix:    naming.DefaultLayoutPrefix,
		},
	}
}

// RendererOptions returns renderer.Options with configuration applied.
func (c *Config) RendererOptions() renderer.Options {
	return renderer.Options{
		Author:          c.Author,
		ResourcePackage: c.Template.ResourcePackage,
		BaseActivity:    c.Template.BaseActivity,
		ContainerColor:  c.Template.ContainerColor,
		Background:      c.Template.Background,
	}.WithDefaults()
}

// Resolve returns c.Paths made absolute against rootDir.
func (c *Config) Resolve(rootDir string) Paths {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(rootDir, p)
	}
	return Paths{
		Source:    abs(c.Paths.Source),
		Resources: abs(c.Paths.Resources),
		Manifest:  abs(c.Paths.Manifest),
	}
}

// PackageDir returns the directory for packageName under the source root.
func (p Paths) PackageDir(packageName string) string {
	if packageName == "" {
		return p.Source
	}
	return filepath.Join(p.Source, filepath.Join(strings.Split(packageName, ".")...))
}

func invalid(path string, err error) error {
	return fmt.Errorf("%w %s: %w", ErrInvalidConfig, path, err)
}
