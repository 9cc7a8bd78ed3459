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

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/internal/store"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show wizard progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), false, func(s *store.Store) error {
				printStatus(cmd, s.State())
				return nil
			})
		},
	}
}

func printStatus(cmd *cobra.Command, st store.State) {
	out := cmd.OutOrStdout()

	name := st.FormData.ProjectOverview.Name
	if name == "" {
		name = "(unnamed)"
	}
	presetID := string(st.AppliedPreset)
	if presetID == "" {
		presetID = "none"
	}
	saved := "never"
	if st.LastSaved != nil {
		saved = st.LastSaved.Local().Format(time.DateTime)
	}

	fmt.Fprintf(out, "  %-16s %s\n", "Project:", name)
	fmt.Fprintf(out, "  %-16s %s\n", "Current step:", stepLabel(st.CurrentStep))
	fmt.Fprintf(out, "  %-16s %s\n", "Preset:", presetID)
	fmt.Fprintf(out, "  %-16s %s\n", "Last saved:", saved)
	fmt.Fprintf(out, "  %-16s %d / %d sections completed\n", "Progress:", st.SectionsCompleted(), form.SectionSteps)
	fmt.Fprintln(out)

	for _, si := range form.Steps {
		marker := " "
		if si.Step == st.CurrentStep {
			marker = ">"
		}
		fmt.Fprintf(out, "  %s %-22s %s\n", marker, stepLabel(si.Step), stepStatus(st, si.Step))
	}
}

func init() {
	rootCmd.AddCommand(newStatusCmd())
}
