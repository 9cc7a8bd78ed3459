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
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/internal/store"
)

const sidebarWidth = 28

// sidebarLines lists every step with its marker, followed by the progress
// counter.
func sidebarLines(st store.State) []string {
	lines := make([]string, 0, form.StepCount+2)
	for _, si := range form.Steps {
		label := fmt.Sprintf("%d. %s", int(si.Step)+1, si.Title)
		switch {
		case si.Step == st.CurrentStep:
			lines = append(lines, sidebarActiveStyle.Render(">> "+label))
		case st.CompletedSteps.Has(si.Step):
			lines = append(lines, selectedStyle.Render(label+" ✓"))
		case st.SkippedSteps.Has(si.Step):
			lines = append(lines, skippedStyle.Render(label+" -"))
		default:
			lines = append(lines, dimStyle.Render(label))
		}
	}
	lines = append(lines, "", subtitleStyle.Render(progressLine(st)))
	return lines
}

func progressLine(st store.State) string {
	return fmt.Sprintf("%d / %d sections completed", st.SectionsCompleted(), form.SectionSteps)
}

func renderSidebar(st store.State) string {
	return sidebarStyle.Render(strings.Join(sidebarLines(st), "\n"))
}

// renderHeader places the sidebar next to the current step's title.
func renderHeader(st store.State) string {
	step := st.CurrentStep
	title := titleStyle.Render(fmt.Sprintf("Step %d of %d: %s", int(step)+1, form.StepCount, step.Title()))
	var note string
	switch {
	case st.SkippedSteps.Has(step):
		note = skippedStyle.Render("This step is marked as skipped.")
	case st.CompletedSteps.Has(step):
		note = selectedStyle.Render("This step is complete.")
	}
	if st.AppliedPreset != "" {
		note = strings.TrimSpace(note + "\n" + dimStyle.Render("Preset: "+string(st.AppliedPreset)))
	}
	right := lipgloss.JoinVertical(lipgloss.Left, title, note)
	return lipgloss.JoinHorizontal(lipgloss.Top, renderSidebar(st), " ", right)
}
