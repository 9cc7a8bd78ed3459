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

package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// XDG-style directories for projectwizard.
var (
	// Home holds config.yaml (~/.config/projectwizard).
	Home string
	// Cache holds the wizard log (~/.cache/projectwizard).
	Cache string
	// Data holds the saved wizard state (~/.local/share/projectwizard).
	Data string
)

const appName = "projectwizard"

func init() {
	Home = filepath.Join(xdgConfig(), appName)
	Cache = filepath.Join(xdgCache(), appName)
	Data = filepath.Join(xdgData(), appName)
}

func xdgConfig() string {
	return xdgBase("XDG_CONFIG_HOME", "APPDATA", "", ".config")
}

func xdgCache() string {
	return xdgBase("XDG_CACHE_HOME", "LOCALAPPDATA", "cache", ".cache")
}

func xdgData() string {
	return xdgBase("XDG_DATA_HOME", "LOCALAPPDATA", "", filepath.Join(".local", "share"))
}

// xdgBase resolves a base directory: the XDG variable, then the Windows
// variable (plus winSub), then ~/fallback.
func xdgBase(xdgVar, winVar, winSub, fallback string) string {
	if v := os.Getenv(xdgVar); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		if v := os.Getenv(winVar); v != "" {
			return filepath.Join(v, winSub)
		}
	}
	return filepath.Join(homeDir(), fallback)
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

// ConfigFile returns the path to config.yaml.
func ConfigFile() string {
	return filepath.Join(Home, "config.yaml")
}

// KVDir returns the default directory of the snapshot database.
func KVDir() string {
	return filepath.Join(Data, "kv")
}

// LogFile returns where the interactive wizard writes log lines while the
// full-screen UI owns the terminal.
func LogFile() string {
	return filepath.Join(Cache, "wizard.log")
}
