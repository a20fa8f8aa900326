// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// settings are the defaults a --config file may provide. Parameters given on
// the command line run after --config and override them.
type settings struct {
	Lines      int      `toml:"lines" yaml:"lines"`
	Grep       []string `toml:"grep" yaml:"grep"`
	IgnoreCase bool     `toml:"ignore_case" yaml:"ignore_case"`
}

// loadSettings reads a TOML or YAML settings file, picked by extension.
func loadSettings(path string) (*settings, error) {
	var s settings
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &s); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(content, &s); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml, .yaml or .yml)", ext)
	}
	if s.Lines < 0 {
		return nil, fmt.Errorf("%s: lines must not be negative", path)
	}
	return &s, nil
}
