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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloud-exit/projectwizard/internal/kvstore"
	"github.com/cloud-exit/projectwizard/internal/ui"
)

func newKVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Inspect the state database",
		Long:  "Low-level key-value operations on the saved wizard state, for debugging.",
	}

	cmd.AddCommand(newKVGetCmd())
	cmd.AddCommand(newKVListCmd())
	cmd.AddCommand(newKVDeleteCmd())
	return cmd
}

// withKV opens the state database for the duration of fn.
func withKV(fn func(kv *kvstore.Store) error) error {
	kv, err := openKVStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := kv.Close(); err != nil {
			ui.Warnf("Failed to close state store: %v", err)
		}
	}()
	return fn(kv)
}

func newKVGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKV(func(kv *kvstore.Store) error {
				val, err := kv.Get(args[0])
				if errors.Is(err, kvstore.ErrNotFound) {
					return fmt.Errorf("key %q not found", args[0])
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(val))
				return nil
			})
		},
	}
}

func newKVListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [prefix]",
		Short:   "List keys and value sizes",
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prefix string
			if len(args) > 0 {
				prefix = args[0]
			}
			return withKV(func(kv *kvstore.Store) error {
				count := 0
				err := kv.Iterate(prefix, func(key string, value []byte) error {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", key, formatBytes(int64(len(value))))
					count++
					return nil
				})
				if err != nil {
					return fmt.Errorf("listing keys: %w", err)
				}
				if count == 0 {
					ui.Info("No entries found")
				}
				return nil
			})
		},
	}
}

func newKVDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <key>",
		Short:   "Delete a key",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withKV(func(kv *kvstore.Store) error {
				if err := kv.Delete(args[0]); err != nil {
					return fmt.Errorf("deleting %q: %w", args[0], err)
				}
				ui.Successf("Deleted '%s'", args[0])
				return nil
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(newKVCmd())
}
