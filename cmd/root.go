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

// Version is set by ldflags at build time.
var Version = "0.1.0"

// cfg is loaded before any command runs. Tests set it directly.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "projectwizard",
	Short: "CLAUDE.md project setup wizard",
	Long: `ProjectWizard walks through a project's overview, tech stack, commands,
code style, testing, git workflow, environment and tool permissions, and
writes the answers as a CLAUDE.md file. Answers are saved as you go.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.Flags().GetBool("verbose")
		ui.Verbose = v
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			ui.DisableColor()
		}

		if cfg == nil {
			path, _ := cmd.Flags().GetString("config")
			loaded, err := loadConfig(path)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "projectwizard version %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.ConfigFile()+")")

	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate("projectwizard version {{.Version}}\n")
	rootCmd.Version = Version
}

// loadConfig reads path, or the default config file when path is empty.
// A missing default file gives the default configuration.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		c, err := config.LoadConfigFrom(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return c, nil
	}
	if !config.ConfigExists() {
		return config.DefaultConfig(), nil
	}
	c, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", config.ConfigFile(), err)
	}
	return c, nil
}

// Execute runs the root command.
func Execute() {
	if err := config.EnsureDirs(); err != nil {
		ui.Warnf("Failed to create data directories: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
