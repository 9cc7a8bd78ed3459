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
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/internal/store"
	"github.com/cloud-exit/projectwizard/internal/ui"
	"github.com/cloud-exit/projectwizard/internal/validate"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <section> <json|->",
		Short: "Update one section of the answers",
		Long: `Update a section with a JSON value. An object is merged into the section
field by field; an array replaces it (used for commonCommands). Pass "-" to
read the JSON from stdin.

Examples:
  projectwizard set techStack '{"language":"Go","runtime":"Go 1.24"}'
  projectwizard set commonCommands '[{"command":"make test","description":"Run tests"}]'
  projectwizard set 1 - < overview.json`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return sectionNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := parseSection(args[0])
			if err != nil {
				return err
			}
			raw := []byte(args[1])
			if args[1] == "-" {
				if raw, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			}
			var data any
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("parsing %s value: %w", section, err)
			}

			return withSession(cmd.Context(), true, func(s *store.Store) error {
				if err := s.UpdateFormData(section, data); err != nil {
					return err
				}
				ui.Successf("Updated %s", section)
				if res := validate.FormStep(section.Step(), s.State().FormData); !res.Success {
					for _, issue := range res.Issues {
						ui.Warnf("%s", formatIssue(issue))
					}
				}
				return nil
			})
		},
	}
}

func sectionNames() []string {
	names := make([]string, len(form.Sections))
	for i, sec := range form.Sections {
		names[i] = string(sec)
	}
	return names
}

func formatIssue(issue validate.Issue) string {
	if issue.Path == "" {
		return issue.Message
	}
	return issue.Path + ": " + issue.Message
}

func init() {
	rootCmd.AddCommand(newSetCmd())
}
