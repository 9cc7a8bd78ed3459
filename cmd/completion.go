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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell autocompletion",
		Long: `Generate autocompletion for your shell.

If no shell is specified, the current shell is detected automatically.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: completionShells,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := detectShell()
			if len(args) > 0 {
				shell = args[0]
			}
			return writeCompletion(cmd.OutOrStdout(), shell)
		},
	}
}

func writeCompletion(w io.Writer, shell string) error {
	var (
		err   error
		hints []string
	)
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletionV2(w, true)
		hints = []string{
			"# To enable autocompletion, add this to your ~/.bashrc:",
			"#",
			"#   eval \"$(projectwizard completion bash)\"",
		}
	case "zsh":
		err = rootCmd.GenZshCompletion(w)
		hints = []string{
			"# To enable autocompletion, add this to your ~/.zshrc:",
			"#",
			"#   eval \"$(projectwizard completion zsh)\"",
		}
	case "fish":
		err = rootCmd.GenFishCompletion(w, true)
		hints = []string{
			"# To enable autocompletion, run:",
			"#",
			"#   projectwizard completion fish > ~/.config/fish/completions/projectwizard.fish",
		}
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell: %s (supported: %s)", shell, strings.Join(completionShells, ", "))
	}
	if err != nil {
		return fmt.Errorf("generating %s completion: %w", shell, err)
	}
	showHints(hints...)
	return nil
}

// detectShell returns the name of the user's login shell, defaulting to bash.
func detectShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		base := filepath.Base(sh)
		switch base {
		case "bash", "zsh", "fish":
			return base
		}
	}

	// Parent process name via /proc on Linux.
	ppidComm := fmt.Sprintf("/proc/%d/comm", os.Getppid())
	if data, err := os.ReadFile(ppidComm); err == nil {
		name := strings.TrimSpace(string(data))
		switch name {
		case "bash", "zsh", "fish":
			return name
		}
	}
	return "bash"
}

// showHints prints usage hints to stderr, but only when stdout is a terminal
// (i.e., not being piped to eval or redirected to a file).
func showHints(lines ...string) {
	if len(lines) == 0 || !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	fmt.Fprintln(os.Stderr)
	for _, line := range lines {
		fmt.Fprintln(os.Stderr, line)
	}
}

func init() {
	rootCmd.AddCommand(newCompletionCmd())
}
