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
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cloud-exit/projectwizard/internal/config"
	"github.com/cloud-exit/projectwizard/internal/ui"
	"github.com/cloud-exit/projectwizard/internal/wizard"
)

func newWizardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Run the interactive setup wizard",
		Long: `Run the interactive setup wizard. Previous answers are restored and
every change is saved automatically, so the wizard can be left and resumed
at any time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(cmd)
		},
	}
	cmd.Flags().String("dir", "", "Directory to write CLAUDE.md to (default from config)")
	cmd.Flags().Bool("accessible", false, "Use plain prompts instead of the full-screen forms")
	return cmd
}

func runWizard(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		ui.Warn("Non-interactive terminal detected.")
		ui.Info("Use 'projectwizard set', 'projectwizard step' and 'projectwizard generate' to script the wizard.")
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.close(context.Background())

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = cfg.Output.Dir
	}
	accessible, _ := cmd.Flags().GetBool("accessible")

	ui.Banner(cmd.OutOrStdout())
	restore := redirectLog()
	sess.store.StartAutoSave(ctx, cfg.Autosave.Interval)

	err = wizard.Run(ctx, sess.store, wizard.Options{
		OutputDir:  dir,
		Style:      cfg.Preview.Style,
		Width:      cfg.Preview.Width,
		Out:        cmd.OutOrStdout(),
		Accessible: accessible,
	})
	restore()

	switch {
	case errors.Is(err, wizard.ErrCancelled), errors.Is(err, context.Canceled):
		ui.Info("Wizard closed. Run 'projectwizard' to pick up where you left off.")
	case err != nil:
		return err
	}
	if err := sess.save(context.Background()); err != nil {
		return err
	}
	ui.Success("Answers saved.")
	return nil
}

// redirectLog sends ui output to the wizard log file while the forms own
// the terminal. The returned func restores the terminal streams.
func redirectLog() func() {
	path := config.LogFile()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		ui.Debugf("Not redirecting log: %v", err)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		ui.Debugf("Not redirecting log: %v", err)
		return func() {}
	}
	fmt.Fprintf(f, "--- wizard session %s ---\n", time.Now().Format(time.RFC3339))
	ui.SetOutput(f, f)
	return func() {
		ui.SetOutput(os.Stdout, os.Stderr)
		f.Close()
	}
}

func init() {
	rootCmd.AddCommand(newWizardCmd())
}
