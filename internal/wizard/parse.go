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

package wizard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cloud-exit/projectwizard/internal/form"
)

// Free-text fields hold one record per line. These helpers convert between
// that text and the typed FormData values.

const commandSep = " - "

// ParseCommands reads "command - description" lines. The description is
// everything after the first separator. Blank lines are ignored.
func ParseCommands(text string) ([]form.Command, error) {
	out := []form.Command{}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmd, desc, ok := strings.Cut(line, commandSep)
		if !ok {
			return nil, fmt.Errorf("line %d: expected \"command - description\"", i+1)
		}
		out = append(out, form.Command{
			Command:     strings.TrimSpace(cmd),
			Description: strings.TrimSpace(desc),
		})
	}
	return out, nil
}

// FormatCommands is the inverse of ParseCommands.
func FormatCommands(cmds []form.Command) string {
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		lines = append(lines, c.Command+commandSep+c.Description)
	}
	return strings.Join(lines, "\n")
}

// ParseVersions reads "tool: version" lines. A repeated tool keeps the
// last version.
func ParseVersions(text string) (map[string]string, error) {
	out := map[string]string{}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, version, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		version = strings.TrimSpace(version)
		if !ok || name == "" || version == "" {
			return nil, fmt.Errorf("line %d: expected \"tool: version\"", i+1)
		}
		out[name] = version
	}
	return out, nil
}

// FormatVersions renders versions sorted by tool name.
func FormatVersions(versions map[string]string) string {
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, name+": "+versions[name])
	}
	return strings.Join(lines, "\n")
}

// ParseEnvVars reads "NAME | required | example | description" lines.
// Only NAME is mandatory; the second column accepts required/optional,
// yes/no or true/false and defaults to optional.
func ParseEnvVars(text string) ([]form.EnvVar, error) {
	out := []form.EnvVar{}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cols := strings.SplitN(line, "|", 4)
		for j := range cols {
			cols[j] = strings.TrimSpace(cols[j])
		}
		v := form.EnvVar{Name: cols[0]}
		if v.Name == "" {
			return nil, fmt.Errorf("line %d: missing variable name", i+1)
		}
		if len(cols) > 1 {
			req, err := parseRequired(cols[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			v.Required = req
		}
		if len(cols) > 2 {
			v.Example = cols[2]
		}
		if len(cols) > 3 {
			v.Description = cols[3]
		}
		out = append(out, v)
	}
	return out, nil
}

func parseRequired(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "required", "yes", "true", "y":
		return true, nil
	case "optional", "no", "false", "n", "":
		return false, nil
	}
	return false, fmt.Errorf("%q is not required or optional", s)
}

// FormatEnvVars is the inverse of ParseEnvVars. Trailing empty columns are
// dropped.
func FormatEnvVars(vars []form.EnvVar) string {
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		req := "optional"
		if v.Required {
			req = "required"
		}
		cols := []string{v.Name, req, v.Example, v.Description}
		for len(cols) > 2 && cols[len(cols)-1] == "" {
			cols = cols[:len(cols)-1]
		}
		lines = append(lines, strings.Join(cols, " | "))
	}
	return strings.Join(lines, "\n")
}

// ParseList splits on commas and newlines, dropping blank entries. It
// returns nil for an empty list.
func ParseList(text string) []string {
	var out []string
	for _, f := range strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == '\n' }) {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// ParseLines returns the non-blank lines of text, trimmed. The result is
// never nil.
func ParseLines(text string) []string {
	out := []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
