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

// Package platform provides OS, architecture and clipboard helper detection.
package platform

import (
	"os/exec"
	"runtime"
)

// DetectOS returns the current operating system as a normalized string.
func DetectOS() string {
	switch runtime.GOOS {
	case "darwin":
		return "macos"
	case "linux":
		return "linux"
	case "windows":
		return "windows"
	default:
		return "unknown"
	}
}

// DetectArch returns the current architecture as a normalized string.
func DetectArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "arm64"
	case "arm":
		return "armv7"
	default:
		return runtime.GOARCH
	}
}

// GetPlatform returns "os-arch" (e.g. "linux-x86_64").
func GetPlatform() string {
	return DetectOS() + "-" + DetectArch()
}

// clipboardHelpers lists the programs the clipboard writer shells out to,
// in the order it tries them.
var clipboardHelpers = map[string][]string{
	"linux":   {"wl-copy", "xclip", "xsel", "termux-clipboard-set"},
	"macos":   {"pbcopy"},
	"windows": {"clip.exe"},
}

var lookPath = exec.LookPath

// ClipboardHelper returns the first clipboard program found on PATH for
// the current OS, or "" when none is installed.
func ClipboardHelper() string {
	return clipboardHelperFor(DetectOS())
}

func clipboardHelperFor(osName string) string {
	for _, name := range clipboardHelpers[osName] {
		if _, err := lookPath(name); err == nil {
			return name
		}
	}
	return ""
}
