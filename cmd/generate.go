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

	"github.com/cloud-exit/projectwizard/internal/export"
	"github.com/cloud-exit/projectwizard/internal/generate"
	"github.com/cloud-exit/projectwizard/internal/store"
	"github.com/cloud-exit/projectwizard/internal/ui"
)

// now is replaced in tests.
var now = time.Now

func newPreviewCmd() *cobra.Command {
	var full, pretty bool
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the CLAUDE.md preview",
		Long: `Print the document built from the completed steps. With --full the
whole document is printed, including sections whose steps are not complete.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), false, func(s *store.Store) error {
				st := s.State()
				doc := generate.Progressive(st.FormData, st.CompletedSteps)
				if full {
					doc = generate.Full(st.FormData, now())
				}
				if pretty {
					rendered, err := ui.RenderMarkdown(doc, cfg.Preview.Style, cfg.Preview.Width)
					if err != nil {
						return fmt.Errorf("rendering preview: %w", err)
					}
					doc = rendered
				}
				fmt.Fprintln(cmd.OutOrStdout(), doc)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "Print the complete document")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Render markdown for the terminal")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var dir string
	var stdout bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write CLAUDE.md",
		Long: `Write the complete CLAUDE.md built from the saved answers.

Examples:
  projectwizard generate              Write ./CLAUDE.md (or output.dir from config)
  projectwizard generate --dir ../app Write ../app/CLAUDE.md
  projectwizard generate --stdout     Print the document instead`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), false, func(s *store.Store) error {
				doc := generate.Full(s.State().FormData, now())
				if stdout {
					fmt.Fprintln(cmd.OutOrStdout(), doc)
					return nil
				}
				out := dir
				if out == "" {
					out = cfg.Output.Dir
				}
				path, err := export.Download(out, doc)
				if err != nil {
					return err
				}
				ui.Successf("Wrote %s", path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (default from config)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print to stdout instead of writing a file")
	return cmd
}

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy CLAUDE.md to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), false, func(s *store.Store) error {
				if err := export.CopyToClipboard(generate.Full(s.State().FormData, now())); err != nil {
					return err
				}
				ui.Success("Copied CLAUDE.md to the clipboard")
				return nil
			})
		},
	}
}

func newExportJSONCmd() *cobra.Command {
	var withState bool
	cmd := &cobra.Command{
		Use:   "export-json <file>",
		Short: "Export the answers as JSON",
		Long: `Write the saved answers to a JSON file. With --state the whole wizard
state is written, including step progress and the applied preset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), false, func(s *store.Store) error {
				st := s.State()
				var v any = st.FormData
				if withState {
					v = st
				}
				if err := export.ExportJSON(args[0], v); err != nil {
					return err
				}
				ui.Successf("Exported %s", args[0])
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&withState, "state", false, "Include step progress")
	return cmd
}

func init() {
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newExportJSONCmd())
}
