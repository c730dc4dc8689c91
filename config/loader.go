/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "actigen"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/actigen.{yaml,yml,json} from rootDir. Values
// absent from the file keep their defaults.
// Returns nil if no config found (not an error).
func Load(filesystem afero.Fs, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		exists, err := afero.Exists(filesystem, configPath)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}

		data, err := afero.ReadFile(filesystem, configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, invalid(configPath, err)
			}
		case ".json":
			// JSON configs may carry comments and trailing commas
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, invalid(configPath, err)
			}
		}

		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns the config under rootDir, or defaults if there is
// none. A config file that exists but cannot be decoded is an error.
func LoadOrDefault(filesystem afero.Fs, rootDir string) (*Config, error) {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return Default(), nil
	}
	return cfg, nil
}
