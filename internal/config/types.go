// ProjectWizard - CLAUDE.md Project Setup Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads and saves ~/.config/projectwizard/config.yaml.
package config

import "time"

// Config is the top-level configuration (config.yaml).
type Config struct {
	Version  int            `yaml:"version"`
	Storage  StorageConfig  `yaml:"storage"`
	Autosave AutosaveConfig `yaml:"autosave"`
	Output   OutputConfig   `yaml:"output"`
	Preview  PreviewConfig  `yaml:"preview"`
}

// StorageConfig locates the saved wizard state.
type StorageConfig struct {
	Dir string `yaml:"dir,omitempty"` // defaults to KVDir()
	Key string `yaml:"key"`
}

// AutosaveConfig controls how often the wizard state is written.
type AutosaveConfig struct {
	Interval time.Duration `yaml:"interval"`
	Debounce time.Duration `yaml:"debounce"`
}

// OutputConfig controls where CLAUDE.md is written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// PreviewConfig controls terminal rendering of the document.
type PreviewConfig struct {
	Style string `yaml:"style"` // glamour style name
	Width int    `yaml:"width"`
}

// StorageDir returns the configured database directory or the default.
func (c *Config) StorageDir() string {
	if c.Storage.Dir != "" {
		return c.Storage.Dir
	}
	return KVDir()
}

// fillDefaults replaces zero or invalid values with their defaults so a
// partial config.yaml behaves like a complete one.
func fillDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Version == 0 {
		cfg.Version = def.Version
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = def.Storage.Key
	}
	if cfg.Autosave.Interval <= 0 {
		cfg.Autosave.Interval = def.Autosave.Interval
	}
	if cfg.Autosave.Debounce <= 0 {
		cfg.Autosave.Debounce = def.Autosave.Debounce
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = def.Output.Dir
	}
	if cfg.Preview.Style == "" {
		cfg.Preview.Style = def.Preview.Style
	}
	if cfg.Preview.Width <= 0 {
		cfg.Preview.Width = def.Preview.Width
	}
}
