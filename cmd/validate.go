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

	"github.com/spf13/cobra"

	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/internal/store"
	"github.com/cloud-exit/projectwizard/internal/validate"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [step]",
		Short: "Check the saved answers",
		Long:  "Validate one step, or every step that collects answers when none is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := make([]form.Step, 0, form.SectionSteps)
			if len(args) == 1 {
				step, err := parseStep(args[0])
				if err != nil {
					return err
				}
				steps = append(steps, step)
			} else {
				for i := 0; i < form.SectionSteps; i++ {
					steps = append(steps, form.Step(i))
				}
			}

			return withSession(cmd.Context(), false, func(s *store.Store) error {
				fd := s.State().FormData
				out := cmd.OutOrStdout()
				failed := 0
				for _, step := range steps {
					res := validate.FormStep(step, fd)
					if res.Success {
						fmt.Fprintf(out, "  ok    %s\n", stepLabel(step))
						continue
					}
					failed++
					fmt.Fprintf(out, "  FAIL  %s\n", stepLabel(step))
					for _, issue := range res.Issues {
						fmt.Fprintf(out, "        - %s\n", formatIssue(issue))
					}
				}
				if failed > 0 {
					return fmt.Errorf("%d step(s) failed validation", failed)
				}
				return nil
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(newValidateCmd())
}
