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

// DefaultPermissions returns the permissions a fresh wizard starts with.
func DefaultPermissions() Permissions {
	return Permissions{
		Edit:      true,
		Read:      true,
		Write:     true,
		GitCommit: true,
		Glob:      true,
		Grep:      true,
	}
}

// DefaultMCPServers returns the MCP server options offered on the
// advanced step, all disabled.
func DefaultMCPServers() []MCPServer {
	return []MCPServer{
		{Name: "Puppeteer (Browser Automation)"},
		{Name: "GitHub Integration"},
		{Name: "Filesystem Operations"},
		{Name: "Brave Search"},
	}
}

// Initial returns the answer set a new wizard starts from.
func Initial() FormData {
	return FormData{
		ProjectOverview: ProjectOverview{
			Type: TypeApp,
		},
		TechStack: TechStack{
			PackageManager: NPM,
		},
		CommonCommands: []Command{},
		CodeStyle: CodeStyle{
			ModuleSystem: "ES modules",
			Indentation:  IndentTwoSpaces,
			Patterns:     []string{},
		},
		Testing: Testing{
			CoverageTarget:   80,
			MockExternalAPIs: true,
			RunBeforeCommit:  true,
		},
		GitWorkflow: GitWorkflow{
			BranchNaming:         "feature/*, fix/*, chore/*",
			CommitFormat:         CommitConventional,
			RunTestsBeforeCommit: true,
			SquashBeforeMerge:    true,
		},
		Environment: Environment{
			RequiredVersions:     map[string]string{},
			EnvironmentVariables: []EnvVar{},
		},
		Advanced: Advanced{
			MCPServers:  DefaultMCPServers(),
			Permissions: DefaultPermissions(),
		},
	}
}
