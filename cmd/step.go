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
	"errors"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/internal/store"
	"github.com/cloud-exit/projectwizard/internal/ui"
	"github.com/cloud-exit/projectwizard/internal/validate"
)

func newStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Move between steps and mark progress",
		Long:  "Steps are numbered 1 to 9 as in the wizard sidebar.",
	}
	cmd.AddCommand(newStepGotoCmd())
	cmd.AddCommand(newStepCompleteCmd())
	cmd.AddCommand(newStepSkipCmd())
	return cmd
}

func newStepGotoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goto <n>",
		Short: "Make step n the current step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := parseStep(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd.Context(), true, func(s *store.Store) error {
				s.SetCurrentStep(step)
				ui.Infof("Current step: %s", stepLabel(step))
				return nil
			})
		},
	}
}

func newStepCompleteCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "complete <n>",
		Short: "Mark step n as completed",
		Long: `Mark step n as completed. The step's answers are validated first, as the
wizard's Next button does; --force marks it regardless.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := parseStep(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd.Context(), true, func(s *store.Store) error {
				if !force {
					if res := validate.FormStep(step, s.State().FormData); !res.Success {
						for _, issue := range res.Issues {
							ui.ErrorNoExit(formatIssue(issue))
						}
						return errors.New("step has validation errors (use --force to mark it anyway)")
					}
				}
				s.MarkStepCompleted(step)
				ui.Successf("Completed %s", stepLabel(step))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip validation")
	return cmd
}

func newStepSkipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skip <n>",
		Short: "Toggle the skip mark on step n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := parseStep(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd.Context(), true, func(s *store.Store) error {
				s.ToggleSkipStep(step)
				if s.State().SkippedSteps.Has(step) {
					ui.Infof("Skipped %s", stepLabel(step))
				} else {
					ui.Infof("Unskipped %s", stepLabel(step))
				}
				return nil
			})
		},
	}
}

// stepStatus describes step for listings.
func stepStatus(st store.State, step form.Step) string {
	switch {
	case st.CompletedSteps.Has(step):
		return "completed"
	case st.SkippedSteps.Has(step):
		return "skipped"
	}
	return "pending"
}

func init() {
	rootCmd.AddCommand(newStepCmd())
}
