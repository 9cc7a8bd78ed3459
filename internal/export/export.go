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

// Package export hands a rendered document to the user: as a file on disk,
// on the system clipboard, or as a JSON dump of the answers.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// Filename is the name of the generated document.
const Filename = "CLAUDE.md"

// MediaType describes the generated document.
const MediaType = "text/markdown; charset=utf-8"

// ErrNoClipboard is returned when no clipboard utility is available.
var ErrNoClipboard = errors.New("no clipboard available (install xclip, xsel or wl-clipboard)")

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Download writes content to dir/CLAUDE.md, creating dir when needed, and
// returns the written path. An existing file is overwritten.
func Download(dir, content string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}
	path := filepath.Join(dir, Filename)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// CopyToClipboard places content on the system clipboard.
func CopyToClipboard(content string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	if err := writeClipboard(content); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// ExportJSON writes v to path as JSON indented by two spaces.
func ExportJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	out = append(out, '\n')
	return os.WriteFile(path, out, 0644)
}
