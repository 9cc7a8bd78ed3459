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
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := "autosave:\n  interval: 30s\npreview:\n  style: light\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}

	want := DefaultConfig()
	want.Autosave.Interval = 30 * time.Second
	want.Preview.Style = "light"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Storage.Dir = "/var/lib/wizard"
	cfg.Output.Dir = "docs"
	cfg.Autosave.Debounce = 2 * time.Second

	if err := SaveConfigTo(cfg, path); err != nil {
		t.Fatalf("SaveConfigTo: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(raw), "debounce: 2s") {
		t.Errorf("durations should be written as strings:\n%s", raw)
	}

	got, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfigFrom(filepath.Join(dir, "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("missing file error = %v, want not-exist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("autosave: [1, 2"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfigFrom(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestStorageDir(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.StorageDir(); got != KVDir() {
		t.Errorf("StorageDir = %q, want %q", got, KVDir())
	}
	cfg.Storage.Dir = "/tmp/state"
	if got := cfg.StorageDir(); got != "/tmp/state" {
		t.Errorf("StorageDir = %q", got)
	}
}

func TestXDGOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	for name, tc := range map[string]struct{ got, want string }{
		"config": {xdgConfig(), "/xdg/config"},
		"cache":  {xdgCache(), "/xdg/cache"},
		"data":   {xdgData(), "/xdg/data"},
	} {
		if tc.got != tc.want {
			t.Errorf("%s = %q, want %q", name, tc.got, tc.want)
		}
	}
}

func TestXDGFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/dev")
	if got := xdgData(); got != filepath.Join("/home/dev", ".local", "share") {
		t.Errorf("xdgData = %q", got)
	}
}
