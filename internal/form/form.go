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

// Package form defines the wizard answer set: the eight FormData sections,
// the fixed step sequence and the initial defaults.
package form

// ProjectType classifies the project being configured.
type ProjectType string

const (
	TypeAutomation    ProjectType = "automation"
	TypeClientProject ProjectType = "client-project"
	TypeApp           ProjectType = "app"
	TypeWebsite       ProjectType = "website"
	TypeLibrary       ProjectType = "library"
	TypeOther         ProjectType = "other"
)

// ProjectTypes lists every project type in display order.
var ProjectTypes = []ProjectType{
	TypeAutomation, TypeClientProject, TypeApp, TypeWebsite, TypeLibrary, TypeOther,
}

// PackageManager identifies the dependency tool used by the project.
type PackageManager string

const (
	NPM    PackageManager = "npm"
	PNPM   PackageManager = "pnpm"
	Yarn   PackageManager = "yarn"
	Bun    PackageManager = "bun"
	Pip    PackageManager = "pip"
	Poetry PackageManager = "poetry"
)

// PackageManagers lists every package manager in display order.
var PackageManagers = []PackageManager{NPM, PNPM, Yarn, Bun, Pip, Poetry}

// Indentation values accepted by CodeStyle.
const (
	IndentTwoSpaces  = "2 spaces"
	IndentFourSpaces = "4 spaces"
	IndentTabs       = "tabs"
)

// Indentations lists the indentation choices in display order.
var Indentations = []string{IndentTwoSpaces, IndentFourSpaces, IndentTabs}

// Commit formats accepted by GitWorkflow.
const (
	CommitConventional = "conventional"
	CommitCustom       = "custom"
)

// ProjectOverview is step 0.
type ProjectOverview struct {
	Name        string      `json:"name" yaml:"name" validate:"required,slug"`
	Type        ProjectType `json:"type" yaml:"type" validate:"oneof=automation client-project app website library other"`
	Description string      `json:"description" yaml:"description" validate:"min=10"`
}

// TechStack is step 1. An empty Framework means none.
type TechStack struct {
	Language           string         `json:"language" yaml:"language" validate:"required"`
	Framework          string         `json:"framework" yaml:"framework"`
	PackageManager     PackageManager `json:"packageManager" yaml:"packageManager" validate:"oneof=npm pnpm yarn bun pip poetry"`
	Runtime            string         `json:"runtime" yaml:"runtime" validate:"required"`
	CustomDependencies []string       `json:"customDependencies,omitempty" yaml:"customDependencies,omitempty"`
}

// Command is one entry of the CommonCommands step.
type Command struct {
	Command     string `json:"command" yaml:"command" validate:"required"`
	Description string `json:"description" yaml:"description" validate:"required"`
}

// CodeStyle is step 3.
type CodeStyle struct {
	ModuleSystem         string   `json:"moduleSystem" yaml:"moduleSystem" validate:"required"`
	Indentation          string   `json:"indentation" yaml:"indentation" validate:"indentation"`
	Patterns             []string `json:"patterns" yaml:"patterns"`
	AdditionalGuidelines string   `json:"additionalGuidelines,omitempty" yaml:"additionalGuidelines,omitempty"`
}

// Testing is step 4.
type Testing struct {
	Framework            string  `json:"framework" yaml:"framework" validate:"required"`
	CoverageTarget       float64 `json:"coverageTarget" yaml:"coverageTarget" validate:"gte=0,lte=100"`
	MockExternalAPIs     bool    `json:"mockExternalAPIs" yaml:"mockExternalAPIs"`
	RunBeforeCommit      bool    `json:"runBeforeCommit" yaml:"runBeforeCommit"`
	AdditionalGuidelines string  `json:"additionalGuidelines,omitempty" yaml:"additionalGuidelines,omitempty"`
}

// GitWorkflow is step 5. CustomCommitFormat is only read when CommitFormat
// is "custom".
type GitWorkflow struct {
	BranchNaming         string `json:"branchNaming" yaml:"branchNaming" validate:"required"`
	CommitFormat         string `json:"commitFormat" yaml:"commitFormat" validate:"oneof=conventional custom"`
	CustomCommitFormat   string `json:"customCommitFormat,omitempty" yaml:"customCommitFormat,omitempty"`
	RunTestsBeforeCommit bool   `json:"runTestsBeforeCommit" yaml:"runTestsBeforeCommit"`
	SquashBeforeMerge    bool   `json:"squashBeforeMerge" yaml:"squashBeforeMerge"`
}

// EnvVar describes one environment variable the project reads.
type EnvVar struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Required    bool   `json:"required" yaml:"required"`
	Example     string `json:"example,omitempty" yaml:"example,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Environment is step 6.
type Environment struct {
	RequiredVersions     map[string]string `json:"requiredVersions" yaml:"requiredVersions"`
	EnvironmentVariables []EnvVar          `json:"environmentVariables" yaml:"environmentVariables" validate:"dive"`
	SetupInstructions    string            `json:"setupInstructions,omitempty" yaml:"setupInstructions,omitempty"`
}

// MCPServer is a toggleable MCP server entry.
type MCPServer struct {
	Name    string `json:"name" yaml:"name"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// Permissions holds the tools the assistant may use without asking.
type Permissions struct {
	Edit       bool `json:"edit" yaml:"edit"`
	Read       bool `json:"read" yaml:"read"`
	Write      bool `json:"write" yaml:"write"`
	Bash       bool `json:"bash" yaml:"bash"`
	GitCommit  bool `json:"gitCommit" yaml:"gitCommit"`
	GitPush    bool `json:"gitPush" yaml:"gitPush"`
	Glob       bool `json:"glob" yaml:"glob"`
	Grep       bool `json:"grep" yaml:"grep"`
	MCPServers bool `json:"mcpServers" yaml:"mcpServers"`
	WebFetch   bool `json:"webFetch" yaml:"webFetch"`
	WebSearch  bool `json:"webSearch" yaml:"webSearch"`
}

// Advanced is step 7.
type Advanced struct {
	MCPServers    []MCPServer `json:"mcpServers" yaml:"mcpServers"`
	Permissions   Permissions `json:"permissions" yaml:"permissions"`
	ProjectQuirks string      `json:"projectQuirks,omitempty" yaml:"projectQuirks,omitempty"`
	FilesToAvoid  string      `json:"filesToAvoid,omitempty" yaml:"filesToAvoid,omitempty"`
}

// FormData is the full answer set. All eight sections are always present.
type FormData struct {
	ProjectOverview ProjectOverview `json:"projectOverview" yaml:"projectOverview"`
	TechStack       TechStack       `json:"techStack" yaml:"techStack"`
	CommonCommands  []Command       `json:"commonCommands" yaml:"commonCommands"`
	CodeStyle       CodeStyle       `json:"codeStyle" yaml:"codeStyle"`
	Testing         Testing         `json:"testing" yaml:"testing"`
	GitWorkflow     GitWorkflow     `json:"gitWorkflow" yaml:"gitWorkflow"`
	Environment     Environment     `json:"environment" yaml:"environment"`
	Advanced        Advanced        `json:"advanced" yaml:"advanced"`
}

// Clone returns a deep copy of fd.
func (fd FormData) Clone() FormData {
	out := fd
	out.TechStack.CustomDependencies = cloneStrings(fd.TechStack.CustomDependencies)
	if fd.CommonCommands != nil {
		out.CommonCommands = append([]Command{}, fd.CommonCommands...)
	}
	out.CodeStyle.Patterns = cloneStrings(fd.CodeStyle.Patterns)
	if fd.Environment.RequiredVersions != nil {
		out.Environment.RequiredVersions = make(map[string]string, len(fd.Environment.RequiredVersions))
		for k, v := range fd.Environment.RequiredVersions {
			out.Environment.RequiredVersions[k] = v
		}
	}
	if fd.Environment.EnvironmentVariables != nil {
		out.Environment.EnvironmentVariables = append([]EnvVar{}, fd.Environment.EnvironmentVariables...)
	}
	if fd.Advanced.MCPServers != nil {
		out.Advanced.MCPServers = append([]MCPServer{}, fd.Advanced.MCPServers...)
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

// EnabledMCPServers returns the enabled servers in list order.
func (a Advanced) EnabledMCPServers() []MCPServer {
	var out []MCPServer
	for _, s := range a.MCPServers {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}
