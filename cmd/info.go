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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/projectwizard/internal/config"
	"github.com/cloud-exit/projectwizard/internal/export"
	"github.com/cloud-exit/projectwizard/internal/platform"
	"github.com/cloud-exit/projectwizard/internal/preset"
	"github.com/cloud-exit/projectwizard/internal/ui"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show paths, configuration and storage usage",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		ui.Cecho("ProjectWizard", ui.Cyan)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-20s %s\n", "Version:", Version)
		fmt.Fprintf(out, "  %-20s %s\n", "Platform:", platform.GetPlatform())
		clip := platform.ClipboardHelper()
		if clip == "" {
			clip = "none found (copy is unavailable)"
		}
		fmt.Fprintf(out, "  %-20s %s\n", "Clipboard:", clip)
		fmt.Fprintf(out, "  %-20s %s\n", "Config file:", configState(config.ConfigFile()))
		fmt.Fprintf(out, "  %-20s %s\n", "Cache dir:", config.Cache)
		fmt.Fprintf(out, "  %-20s %s\n", "Data dir:", config.Data)
		fmt.Fprintln(out)

		ui.Cecho("Settings", ui.Cyan)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-20s %s\n", "Storage key:", cfg.Storage.Key)
		fmt.Fprintf(out, "  %-20s %s\n", "Autosave interval:", cfg.Autosave.Interval)
		fmt.Fprintf(out, "  %-20s %s\n", "Save debounce:", cfg.Autosave.Debounce)
		fmt.Fprintf(out, "  %-20s %s (%s)\n", "Output file:", filepath.Join(cfg.Output.Dir, export.Filename), export.MediaType)
		fmt.Fprintf(out, "  %-20s %s (width %d)\n", "Preview style:", cfg.Preview.Style, cfg.Preview.Width)
		fmt.Fprintln(out)

		ui.Cecho("Data Stores", ui.Cyan)
		fmt.Fprintln(out)
		dir := cfg.StorageDir()
		if size, err := dirSize(dir); err != nil || size == 0 {
			fmt.Fprintf(out, "  %-20s %s (empty)\n", "State store:", dir)
		} else {
			fmt.Fprintf(out, "  %-20s %s (%s)\n", "State store:", dir, formatBytes(size))
		}
		if fi, err := os.Stat(config.LogFile()); err == nil {
			fmt.Fprintf(out, "  %-20s %s (%s)\n", "Wizard log:", config.LogFile(), formatBytes(fi.Size()))
		}
		if cat, err := preset.Default(); err == nil {
			fmt.Fprintf(out, "  %-20s %d built in\n", "Presets:", len(cat.IDs()))
		}
	},
}

func configState(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path + " (not created, using defaults)"
	}
	return path
}

// dirSize walks a directory tree and returns the total size of regular files.
func dirSize(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			info, infoErr := d.Info()
			if infoErr != nil {
				return infoErr
			}
			total += info.Size()
		}
		return nil
	})
	return total, err
}

// formatBytes formats a byte count as a human-readable string.
func formatBytes(b int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case b >= gb:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
