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
	"os"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/projectwizard/internal/config"
	"github.com/cloud-exit/projectwizard/internal/ui"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove all projectwizard data",
	Long: `Remove the configuration, cache and saved wizard state. Generated
CLAUDE.md files are left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs := uninstallDirs()

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "This will remove:")
			for _, d := range dirs {
				fmt.Fprintf(out, "  - %s\n", d)
			}
			ok, err := confirm("Remove all projectwizard data?")
			if err != nil {
				return err
			}
			if !ok {
				ui.Info("Cancelled")
				return nil
			}
		}

		for _, d := range dirs {
			if err := os.RemoveAll(d); err != nil {
				ui.Warnf("Failed to remove %s: %v", d, err)
			}
		}
		ui.Success("ProjectWizard data removed.")
		return nil
	},
}

// uninstallDirs lists the directories owned by projectwizard, including a
// state store configured outside the data directory.
func uninstallDirs() []string {
	dirs := []string{config.Home, config.Cache, config.Data}
	if dir := cfg.StorageDir(); dir != config.KVDir() {
		dirs = append(dirs, dir)
	}
	return dirs
}

func init() {
	uninstallCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(uninstallCmd)
}
