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
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/cloud-exit/projectwizard/internal/form"
)

// draft holds the editable text of every step. Forms bind to its fields
// and section turns them back into FormData values.
type draft struct {
	// project overview
	Name        string
	Type        form.ProjectType
	Description string

	// tech stack
	Language       string
	Framework      string
	PackageManager form.PackageManager
	Runtime        string
	Dependencies   string

	Commands string

	// code style
	ModuleSystem    string
	Indentation     string
	Patterns        string
	StyleGuidelines string

	// testing
	TestFramework   string
	Coverage        string
	MockAPIs        bool
	RunBeforeCommit bool
	TestGuidelines  string

	// git workflow
	BranchNaming       string
	CommitFormat       string
	CustomCommitFormat string
	RunTests           bool
	Squash             bool

	// environment
	Versions          string
	EnvVars           string
	SetupInstructions string

	// advanced
	servers      []form.MCPServer
	EnabledMCP   []string
	Permissions  []string
	Quirks       string
	FilesToAvoid string
}

func newDraft(fd form.FormData) *draft {
	d := &draft{
		Name:        fd.ProjectOverview.Name,
		Type:        fd.ProjectOverview.Type,
		Description: fd.ProjectOverview.Description,

		Language:       fd.TechStack.Language,
		Framework:      fd.TechStack.Framework,
		PackageManager: fd.TechStack.PackageManager,
		Runtime:        fd.TechStack.Runtime,
		Dependencies:   strings.Join(fd.TechStack.CustomDependencies, ", "),

		Commands: FormatCommands(fd.CommonCommands),

		ModuleSystem:    fd.CodeStyle.ModuleSystem,
		Indentation:     fd.CodeStyle.Indentation,
		Patterns:        strings.Join(fd.CodeStyle.Patterns, "\n"),
		StyleGuidelines: fd.CodeStyle.AdditionalGuidelines,

		TestFramework:   fd.Testing.Framework,
		Coverage:        strconv.FormatFloat(fd.Testing.CoverageTarget, 'f', -1, 64),
		MockAPIs:        fd.Testing.MockExternalAPIs,
		RunBeforeCommit: fd.Testing.RunBeforeCommit,
		TestGuidelines:  fd.Testing.AdditionalGuidelines,

		BranchNaming:       fd.GitWorkflow.BranchNaming,
		CommitFormat:       fd.GitWorkflow.CommitFormat,
		CustomCommitFormat: fd.GitWorkflow.CustomCommitFormat,
		RunTests:           fd.GitWorkflow.RunTestsBeforeCommit,
		Squash:             fd.GitWorkflow.SquashBeforeMerge,

		Versions:          FormatVersions(fd.Environment.RequiredVersions),
		EnvVars:           FormatEnvVars(fd.Environment.EnvironmentVariables),
		SetupInstructions: fd.Environment.SetupInstructions,

		servers:      append([]form.MCPServer{}, fd.Advanced.MCPServers...),
		Quirks:       fd.Advanced.ProjectQuirks,
		FilesToAvoid: fd.Advanced.FilesToAvoid,
	}
	for _, s := range fd.Advanced.MCPServers {
		if s.Enabled {
			d.EnabledMCP = append(d.EnabledMCP, s.Name)
		}
	}
	for _, tool := range form.Tools {
		if fd.Advanced.Permissions.Allowed(tool.Key) {
			d.Permissions = append(d.Permissions, tool.Key)
		}
	}
	return d
}

// section returns the step's answers in the shape UpdateFormData takes:
// a field map naming every field of the section, or a command list.
// Optional fields left blank are cleared.
func (d *draft) section(step form.Step) (any, error) {
	switch step {
	case form.StepProjectOverview:
		return map[string]any{
			"name":        strings.TrimSpace(d.Name),
			"type":        d.Type,
			"description": strings.TrimSpace(d.Description),
		}, nil

	case form.StepTechStack:
		return map[string]any{
			"language":           strings.TrimSpace(d.Language),
			"framework":          strings.TrimSpace(d.Framework),
			"packageManager":     d.PackageManager,
			"runtime":            strings.TrimSpace(d.Runtime),
			"customDependencies": ParseList(d.Dependencies),
		}, nil

	case form.StepCommonCommands:
		return ParseCommands(d.Commands)

	case form.StepCodeStyle:
		return map[string]any{
			"moduleSystem":         strings.TrimSpace(d.ModuleSystem),
			"indentation":          d.Indentation,
			"patterns":             ParseLines(d.Patterns),
			"additionalGuidelines": strings.TrimSpace(d.StyleGuidelines),
		}, nil

	case form.StepTesting:
		coverage, err := parseCoverage(d.Coverage)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"framework":            strings.TrimSpace(d.TestFramework),
			"coverageTarget":       coverage,
			"mockExternalAPIs":     d.MockAPIs,
			"runBeforeCommit":      d.RunBeforeCommit,
			"additionalGuidelines": strings.TrimSpace(d.TestGuidelines),
		}, nil

	case form.StepGitWorkflow:
		return map[string]any{
			"branchNaming":         strings.TrimSpace(d.BranchNaming),
			"commitFormat":         d.CommitFormat,
			"customCommitFormat":   strings.TrimSpace(d.CustomCommitFormat),
			"runTestsBeforeCommit": d.RunTests,
			"squashBeforeMerge":    d.Squash,
		}, nil

	case form.StepEnvironment:
		versions, err := ParseVersions(d.Versions)
		if err != nil {
			return nil, fmt.Errorf("required versions: %w", err)
		}
		vars, err := ParseEnvVars(d.EnvVars)
		if err != nil {
			return nil, fmt.Errorf("environment variables: %w", err)
		}
		return map[string]any{
			"requiredVersions":     versions,
			"environmentVariables": vars,
			"setupInstructions":    strings.TrimSpace(d.SetupInstructions),
		}, nil

	case form.StepAdvanced:
		enabled := make(map[string]bool, len(d.EnabledMCP))
		for _, name := range d.EnabledMCP {
			enabled[name] = true
		}
		servers := make([]form.MCPServer, 0, len(d.servers))
		for _, s := range d.servers {
			servers = append(servers, form.MCPServer{Name: s.Name, Enabled: enabled[s.Name]})
		}
		var perms form.Permissions
		for _, key := range d.Permissions {
			perms.Set(key, true)
		}
		return map[string]any{
			"mcpServers":    servers,
			"permissions":   perms,
			"projectQuirks": strings.TrimSpace(d.Quirks),
			"filesToAvoid":  strings.TrimSpace(d.FilesToAvoid),
		}, nil
	}
	return nil, fmt.Errorf("step %d has no form", step)
}

func parseCoverage(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("coverage target must be a number")
	}
	return v, nil
}

// group builds the form fields for step, bound to d.
func (d *draft) group(step form.Step) *huh.Group {
	var fields []huh.Field
	switch step {
	case form.StepProjectOverview:
		fields = []huh.Field{
			huh.NewInput().
				Title("Project name").
				Description("Lowercase letters, numbers and hyphens.").
				Placeholder("my-awesome-project").
				Value(&d.Name),
			huh.NewSelect[form.ProjectType]().
				Title("Project type").
				Options(enumOptions(form.ProjectTypes)...).
				Value(&d.Type),
			huh.NewText().
				Title("Description").
				Description("At least 10 characters.").
				Lines(3).
				Value(&d.Description),
		}

	case form.StepTechStack:
		fields = []huh.Field{
			huh.NewInput().Title("Language").Placeholder("TypeScript").Value(&d.Language),
			huh.NewInput().Title("Framework").Description("Leave blank for none.").Value(&d.Framework),
			huh.NewSelect[form.PackageManager]().
				Title("Package manager").
				Options(enumOptions(form.PackageManagers)...).
				Value(&d.PackageManager),
			huh.NewInput().Title("Runtime").Placeholder("Node.js 20+").Value(&d.Runtime),
			huh.NewInput().
				Title("Key dependencies").
				Description("Comma separated.").
				Value(&d.Dependencies),
		}

	case form.StepCommonCommands:
		fields = []huh.Field{
			huh.NewText().
				Title("Common commands").
				Description("One per line: command - description").
				Lines(8).
				Value(&d.Commands).
				Validate(func(s string) error {
					_, err := ParseCommands(s)
					return err
				}),
		}

	case form.StepCodeStyle:
		fields = []huh.Field{
			huh.NewInput().Title("Module system").Value(&d.ModuleSystem),
			huh.NewSelect[string]().
				Title("Indentation").
				Options(huh.NewOptions(form.Indentations...)...).
				Value(&d.Indentation),
			huh.NewText().
				Title("Patterns to follow").
				Description("One per line.").
				Lines(4).
				Value(&d.Patterns),
			huh.NewText().Title("Additional guidelines").Lines(3).Value(&d.StyleGuidelines),
		}

	case form.StepTesting:
		fields = []huh.Field{
			huh.NewInput().Title("Test framework").Placeholder("Vitest").Value(&d.TestFramework),
			huh.NewInput().
				Title("Coverage target (%)").
				Value(&d.Coverage).
				Validate(func(s string) error {
					_, err := parseCoverage(s)
					return err
				}),
			huh.NewConfirm().Title("Mock external APIs?").Value(&d.MockAPIs),
			huh.NewConfirm().Title("Run tests before commit?").Value(&d.RunBeforeCommit),
			huh.NewText().Title("Additional guidelines").Lines(3).Value(&d.TestGuidelines),
		}

	case form.StepGitWorkflow:
		fields = []huh.Field{
			huh.NewInput().Title("Branch naming").Value(&d.BranchNaming),
			huh.NewSelect[string]().
				Title("Commit format").
				Options(
					huh.NewOption("Conventional Commits", form.CommitConventional),
					huh.NewOption("Custom", form.CommitCustom),
				).
				Value(&d.CommitFormat),
			huh.NewInput().
				Title("Custom commit format").
				Description("Only used with the custom format.").
				Value(&d.CustomCommitFormat),
			huh.NewConfirm().Title("Run tests before commit?").Value(&d.RunTests),
			huh.NewConfirm().Title("Squash commits before merge?").Value(&d.Squash),
		}

	case form.StepEnvironment:
		fields = []huh.Field{
			huh.NewText().
				Title("Required versions").
				Description("One per line: tool: version").
				Lines(4).
				Value(&d.Versions).
				Validate(func(s string) error {
					_, err := ParseVersions(s)
					return err
				}),
			huh.NewText().
				Title("Environment variables").
				Description("One per line: NAME | required | example | description").
				Lines(5).
				Value(&d.EnvVars).
				Validate(func(s string) error {
					_, err := ParseEnvVars(s)
					return err
				}),
			huh.NewText().Title("Setup instructions").Lines(4).Value(&d.SetupInstructions),
		}

	case form.StepAdvanced:
		servers := make([]huh.Option[string], 0, len(d.servers))
		for _, s := range d.servers {
			servers = append(servers, huh.NewOption(s.Name, s.Name).Selected(slices.Contains(d.EnabledMCP, s.Name)))
		}
		perms := make([]huh.Option[string], 0, len(form.Tools))
		for _, tool := range form.Tools {
			perms = append(perms, huh.NewOption(tool.Label, tool.Key).Selected(slices.Contains(d.Permissions, tool.Key)))
		}
		fields = []huh.Field{
			huh.NewMultiSelect[string]().
				Title("MCP servers").
				Options(servers...).
				Value(&d.EnabledMCP),
			huh.NewMultiSelect[string]().
				Title("Allowed tools").
				Options(perms...).
				Value(&d.Permissions),
			huh.NewText().Title("Project quirks").Lines(3).Value(&d.Quirks),
			huh.NewInput().Title("Files to avoid").Placeholder("dist/, node_modules/").Value(&d.FilesToAvoid),
		}

	default:
		return nil
	}
	return huh.NewGroup(fields...)
}

func enumOptions[T ~string](values []T) []huh.Option[T] {
	opts := make([]huh.Option[T], len(values))
	for i, v := range values {
		opts[i] = huh.NewOption(string(v), v)
	}
	return opts
}
