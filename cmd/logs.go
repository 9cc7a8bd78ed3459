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
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/projectwizard/internal/config"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the wizard log",
	Long:  "Print the last lines of the log written while the interactive wizard runs.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("lines")
		path := config.LogFile()
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("no wizard log yet (%s)", path)
		}
		if err != nil {
			return err
		}
		defer f.Close()

		lines, err := tailLines(f, n)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "==> %s <==\n", path)
		for _, line := range lines {
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

// tailLines returns the last n lines of r.
func tailLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if len(ring) == n {
			ring = append(ring[:0], ring[1:]...)
		}
		ring = append(ring, sc.Text())
	}
	return ring, sc.Err()
}

func init() {
	logsCmd.Flags().IntP("lines", "n", 200, "Number of lines to show")
	rootCmd.AddCommand(logsCmd)
}
