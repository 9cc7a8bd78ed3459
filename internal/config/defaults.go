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
	"time"

	"github.com/cloud-exit/projectwizard/internal/storage"
)

// DefaultConfig returns the configuration used when config.yaml is absent.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Storage: StorageConfig{
			Key: storage.DefaultKey,
		},
		Autosave: AutosaveConfig{
			Interval: 5 * time.Second,
			Debounce: 500 * time.Millisecond,
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Preview: PreviewConfig{
			Style: "dark",
			Width: 80,
		},
	}
}
