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

package platform

import (
	"errors"
	"strings"
	"testing"
)

func TestGetPlatform(t *testing.T) {
	got := GetPlatform()
	if !strings.HasPrefix(got, DetectOS()+"-") {
		t.Errorf("GetPlatform() = %q, want prefix %q", got, DetectOS()+"-")
	}
}

func TestClipboardHelperFor(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	installed := map[string]bool{"xsel": true, "pbcopy": true}
	lookPath = func(name string) (string, error) {
		if installed[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}

	tests := []struct {
		os   string
		want string
	}{
		{"linux", "xsel"},
		{"macos", "pbcopy"},
		{"windows", ""},
		{"unknown", ""},
	}
	for _, tc := range tests {
		if got := clipboardHelperFor(tc.os); got != tc.want {
			t.Errorf("clipboardHelperFor(%q) = %q, want %q", tc.os, got, tc.want)
		}
	}
}
