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

// Package generate renders wizard answers as a CLAUDE.md document. Both
// renderers are pure: the same input always gives the same text.
package generate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cloud-exit/projectwizard/internal/form"
)

// Placeholder is what Progressive returns before any step is completed.
const Placeholder = "# Start filling out the wizard to see your CLAUDE.md preview\n\n" +
	"Your configuration will appear here as you complete each step."

// DateLayout formats the "Last Updated" footer date.
const DateLayout = "1/2/2006"

// doc collects output lines; String joins them with newlines.
type doc struct {
	lines []string
}

func (d *doc) add(lines ...string) {
	d.lines = append(d.lines, lines...)
}

func (d *doc) addf(format string, a ...any) {
	d.lines = append(d.lines, fmt.Sprintf(format, a...))
}

func (d *doc) empty() bool {
	return len(d.lines) == 0
}

func (d *doc) String() string {
	return strings.Join(d.lines, "\n")
}

// Full renders the complete document. now supplies the footer date.
func Full(fd form.FormData, now time.Time) string {
	var d doc

	d.addf("# %s - Claude Code Configuration\n", fd.ProjectOverview.Name)

	d.add("## Project Overview\n")
	d.addf("%s\n", fd.ProjectOverview.Description)
	d.addf("**Project Type:** %s\n", fd.ProjectOverview.Type)

	ts := fd.TechStack
	d.add("## Tech Stack\n")
	d.addf("- **Language:** %s", ts.Language)
	if ts.Framework != "" {
		d.addf("- **Framework:** %s", ts.Framework)
	}
	d.addf("- **Package Manager:** %s", ts.PackageManager)
	d.addf("- **Runtime:** %s", ts.Runtime)
	if len(ts.CustomDependencies) > 0 {
		d.addf("- **Key Dependencies:** %s", strings.Join(ts.CustomDependencies, ", "))
	}
	d.add("")

	if len(fd.CommonCommands) > 0 {
		writeCommands(&d, fd.CommonCommands)
	}

	cs := fd.CodeStyle
	d.add("## Code Style Guidelines\n")
	d.addf("- **Module System:** %s", cs.ModuleSystem)
	d.addf("- **Indentation:** %s", cs.Indentation)
	writePatterns(&d, cs.Patterns)
	if cs.AdditionalGuidelines != "" {
		d.add("\n" + cs.AdditionalGuidelines)
	}
	d.add("")

	t := fd.Testing
	d.add("## Testing Instructions\n")
	d.addf("- **Framework:** %s", t.Framework)
	d.addf("- **Coverage Target:** %s%%", formatPercent(t.CoverageTarget))
	d.addf("- **Mock External APIs:** %s", yesNo(t.MockExternalAPIs))
	d.addf("- **Run Before Commit:** %s", yesNo(t.RunBeforeCommit))
	if t.AdditionalGuidelines != "" {
		d.add("\n" + t.AdditionalGuidelines)
	}
	d.add("")

	g := fd.GitWorkflow
	d.add("## Git Workflow\n")
	d.addf("- **Branch Naming:** %s", g.BranchNaming)
	d.addf("- **Commit Format:** %s", commitFormat(g))
	d.addf("- **Run Tests Before Commit:** %s", yesNo(g.RunTestsBeforeCommit))
	d.addf("- **Squash Before Merge:** %s", yesNo(g.SquashBeforeMerge))
	d.add("")

	env := fd.Environment
	d.add("## Environment Setup\n")
	if len(env.RequiredVersions) > 0 {
		writeVersions(&d, env.RequiredVersions)
		d.add("")
	}
	if len(env.EnvironmentVariables) > 0 {
		d.add("**Environment Variables:**")
		for _, v := range env.EnvironmentVariables {
			badge := "(Optional)"
			if v.Required {
				badge = "(Required)"
			}
			d.addf("- `%s` %s", v.Name, badge)
			if v.Description != "" {
				d.addf("  - %s", v.Description)
			}
			if v.Example != "" {
				d.addf("  - Example: `%s`", v.Example)
			}
		}
		d.add("")
	}
	if env.SetupInstructions != "" {
		d.add("**Setup Instructions:**\n", env.SetupInstructions, "")
	}

	adv := fd.Advanced
	d.add("## Advanced Configuration\n")
	if servers := adv.EnabledMCPServers(); len(servers) > 0 {
		d.add("**MCP Servers:**")
		for _, s := range servers {
			d.add("- " + s.Name)
		}
		d.add("")
	}
	d.add("**Permissions (Auto-allowed Tools):**")
	d.add("- "+strings.Join(adv.Permissions.AllowedTools(), ", "), "")
	if adv.ProjectQuirks != "" {
		d.add("## Project-Specific Notes\n", adv.ProjectQuirks, "")
	}
	if adv.FilesToAvoid != "" {
		d.add("## Files to Avoid Modifying\n", adv.FilesToAvoid, "")
	}

	d.add("---\n")
	d.add("*Generated by Claude Code Project Setup Wizard*  ")
	d.addf("*Last Updated: %s*", now.Format(DateLayout))

	return d.String()
}

// Progressive renders only the sections whose step is in completed. The
// advanced step contributes its enabled MCP servers and nothing else.
func Progressive(fd form.FormData, completed form.StepSet) string {
	var d doc

	if completed.Has(form.StepProjectOverview) {
		po := fd.ProjectOverview
		d.addf("# %s - Claude Code Configuration\n", orDefault(po.Name, "[Project Name]"))
		d.add("## Project Overview\n")
		d.addf("%s\n", orDefault(po.Description, "[Project Description]"))
		d.addf("**Project Type:** %s\n", orDefault(string(po.Type), string(form.TypeApp)))
	}

	if completed.Has(form.StepTechStack) {
		ts := fd.TechStack
		d.add("## Tech Stack\n")
		addIf(&d, "- **Language:** %s", ts.Language)
		addIf(&d, "- **Framework:** %s", ts.Framework)
		addIf(&d, "- **Package Manager:** %s", string(ts.PackageManager))
		addIf(&d, "- **Runtime:** %s", ts.Runtime)
		d.add("")
	}

	if completed.Has(form.StepCommonCommands) && len(fd.CommonCommands) > 0 {
		writeCommands(&d, fd.CommonCommands)
	}

	if completed.Has(form.StepCodeStyle) {
		cs := fd.CodeStyle
		d.add("## Code Style Guidelines\n")
		d.addf("- **Module System:** %s", cs.ModuleSystem)
		d.addf("- **Indentation:** %s", cs.Indentation)
		writePatterns(&d, cs.Patterns)
		d.add("")
	}

	if completed.Has(form.StepTesting) {
		d.add("## Testing Instructions\n")
		d.addf("- **Framework:** %s", fd.Testing.Framework)
		d.addf("- **Coverage Target:** %s%%", formatPercent(fd.Testing.CoverageTarget))
		d.add("")
	}

	if completed.Has(form.StepGitWorkflow) {
		g := fd.GitWorkflow
		d.add("## Git Workflow\n")
		addIf(&d, "- **Branch Naming:** %s", g.BranchNaming)
		format := "Custom"
		if g.CommitFormat == form.CommitConventional {
			format = "Conventional Commits"
		}
		d.addf("- **Commit Format:** %s", format)
		d.add("")
	}

	if completed.Has(form.StepEnvironment) {
		d.add("## Environment Setup\n")
		if len(fd.Environment.RequiredVersions) > 0 {
			writeVersions(&d, fd.Environment.RequiredVersions)
		}
		d.add("")
	}

	if completed.Has(form.StepAdvanced) {
		if servers := fd.Advanced.EnabledMCPServers(); len(servers) > 0 {
			d.add("## MCP Servers\n")
			for _, s := range servers {
				d.add("- " + s.Name)
			}
			d.add("")
		}
	}

	if d.empty() {
		return Placeholder
	}
	return d.String()
}

func writeCommands(d *doc, cmds []form.Command) {
	d.add("## Common Commands\n")
	for _, c := range cmds {
		d.addf("- `%s` - %s", c.Command, c.Description)
	}
	d.add("")
}

func writePatterns(d *doc, patterns []string) {
	if len(patterns) == 0 {
		return
	}
	d.add("\n**Coding Patterns:**")
	for _, p := range patterns {
		d.add("- " + p)
	}
}

// writeVersions lists required versions sorted by tool name.
func writeVersions(d *doc, versions map[string]string) {
	keys := make([]string, 0, len(versions))
	for k := range versions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d.add("**Required Versions:**")
	for _, k := range keys {
		d.addf("- %s: %s", k, versions[k])
	}
}

func commitFormat(g form.GitWorkflow) string {
	switch {
	case g.CommitFormat == form.CommitConventional:
		return "Conventional Commits (feat:, fix:, chore:)"
	case g.CustomCommitFormat != "":
		return g.CustomCommitFormat
	default:
		return "Custom"
	}
}

func addIf(d *doc, format, value string) {
	if value != "" {
		d.addf(format, value)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// formatPercent prints whole numbers without a decimal point.
func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
