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

	"github.com/cloud-exit/projectwizard/internal/preset"
	"github.com/cloud-exit/projectwizard/internal/store"
	"github.com/cloud-exit/projectwizard/internal/ui"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "List or apply smart presets",
		Long: `Presets fill in the tech stack and common commands for a known project
type, along with typical code style, testing, git, environment and
advanced settings.`,
	}
	cmd.AddCommand(newPresetListCmd())
	cmd.AddCommand(newPresetApplyCmd())
	return cmd
}

func newPresetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List the built-in presets",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := preset.Default()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  %-14s %-16s %s\n", "ID", "NAME", "DESCRIPTION")
			fmt.Fprintf(out, "  %-14s %-16s %s\n", "--", "----", "-----------")
			for _, p := range cat.List() {
				fmt.Fprintf(out, "  %-14s %-16s %s\n", p.ID, p.Name, p.Description)
			}
			return nil
		},
	}
}

func newPresetApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <id>",
		Short: "Apply a preset to the saved answers",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			cat, err := preset.Default()
			if err != nil || len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			ids := []string{string(preset.Custom)}
			for _, id := range cat.IDs() {
				ids = append(ids, string(id))
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id := preset.ID(args[0])
			return withSession(cmd.Context(), true, func(s *store.Store) error {
				if err := s.ApplyPreset(id); err != nil {
					return err
				}
				if id == preset.Custom {
					ui.Info("Custom preset selected. Answers unchanged.")
					return nil
				}
				ui.Successf("Applied preset '%s'", id)
				return nil
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(newPresetCmd())
}
