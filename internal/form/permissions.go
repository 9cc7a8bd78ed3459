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

package form

// Tool pairs a permission flag with the tool name written to CLAUDE.md.
type Tool struct {
	Key   string // permission field name (JSON)
	Label string // rendered tool name
}

// Tools is the fixed, ordered permission list.
var Tools = []Tool{
	{"edit", "Edit"},
	{"read", "Read"},
	{"write", "Write"},
	{"bash", "Bash"},
	{"gitCommit", "Bash(git commit)"},
	{"gitPush", "Bash(git push)"},
	{"glob", "Glob"},
	{"grep", "Grep"},
	{"mcpServers", "MCP Servers"},
	{"webFetch", "WebFetch"},
	{"webSearch", "WebSearch"},
}

// Allowed reports whether the permission with the given key is on.
func (p Permissions) Allowed(key string) bool {
	switch key {
	case "edit":
		return p.Edit
	case "read":
		return p.Read
	case "write":
		return p.Write
	case "bash":
		return p.Bash
	case "gitCommit":
		return p.GitCommit
	case "gitPush":
		return p.GitPush
	case "glob":
		return p.Glob
	case "grep":
		return p.Grep
	case "mcpServers":
		return p.MCPServers
	case "webFetch":
		return p.WebFetch
	case "webSearch":
		return p.WebSearch
	}
	return false
}

// Set turns the permission with the given key on or off. Unknown keys are ignored.
func (p *Permissions) Set(key string, on bool) {
	switch key {
	case "edit":
		p.Edit = on
	case "read":
		p.Read = on
	case "write":
		p.Write = on
	case "bash":
		p.Bash = on
	case "gitCommit":
		p.GitCommit = on
	case "gitPush":
		p.GitPush = on
	case "glob":
		p.Glob = on
	case "grep":
		p.Grep = on
	case "mcpServers":
		p.MCPServers = on
	case "webFetch":
		p.WebFetch = on
	case "webSearch":
		p.WebSearch = on
	}
}

// AllowedTools returns the labels of enabled permissions in Tools order.
func (p Permissions) AllowedTools() []string {
	var out []string
	for _, t := range Tools {
		if p.Allowed(t.Key) {
			out = append(out, t.Label)
		}
	}
	return out
}
