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
	"fmt"
	"strconv"
	"strings"

	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/internal/kvstore"
	"github.com/cloud-exit/projectwizard/internal/storage"
	"github.com/cloud-exit/projectwizard/internal/store"
	"github.com/cloud-exit/projectwizard/internal/ui"
)

// session is an open state database plus the store loaded from it.
type session struct {
	kv    *kvstore.Store
	store *store.Store
}

func openKVStore() (*kvstore.Store, error) {
	dir := cfg.StorageDir()
	kv, err := kvstore.Open(kvstore.Options{Dir: dir})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot acquire directory lock") {
			return nil, fmt.Errorf("state store %s is in use by another projectwizard process", dir)
		}
		return nil, fmt.Errorf("opening state store: %w", err)
	}
	return kv, nil
}

// openSession opens the state database and restores the saved state.
func openSession(ctx context.Context) (*session, error) {
	kv, err := openKVStore()
	if err != nil {
		return nil, err
	}
	st, err := store.New(store.Options{
		Storage:  storage.NewKV(kv),
		Key:      cfg.Storage.Key,
		Debounce: cfg.Autosave.Debounce,
	})
	if err != nil {
		kv.Close()
		return nil, err
	}
	loaded, err := st.LoadFromStorage(ctx)
	if err != nil {
		ui.Warn("Starting from a fresh wizard state.")
	}
	ui.Debugf("Opened %s (restored: %v)", cfg.StorageDir(), loaded)
	return &session{kv: kv, store: st}, nil
}

// save writes the state now. Commands call it after mutations that are
// not debounced by the store.
func (s *session) save(ctx context.Context) error {
	return s.store.SaveToStorage(ctx)
}

func (s *session) close(ctx context.Context) {
	if err := s.store.Close(ctx); err != nil {
		ui.Warnf("Failed to save wizard state: %v", err)
	}
	if err := s.kv.Close(); err != nil {
		ui.Warnf("Failed to close state store: %v", err)
	}
}

// withSession runs fn against the saved state. When save is set the state
// is written back after fn succeeds.
func withSession(ctx context.Context, save bool, fn func(s *store.Store) error) error {
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.close(ctx)

	if err := fn(sess.store); err != nil {
		return err
	}
	if save {
		return sess.save(ctx)
	}
	return nil
}

// parseStep reads a 1-based step number as shown in the sidebar.
func parseStep(arg string) (form.Step, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > form.StepCount {
		return 0, fmt.Errorf("invalid step %q: expected a number from 1 to %d", arg, form.StepCount)
	}
	return form.Step(n - 1), nil
}

// parseSection accepts a section name or its 1-based step number.
func parseSection(arg string) (form.Section, error) {
	for _, sec := range form.Sections {
		if strings.EqualFold(string(sec), arg) {
			return sec, nil
		}
	}
	if step, err := parseStep(arg); err == nil && step != form.StepReview {
		return form.Steps[step].Section, nil
	}
	return "", fmt.Errorf("%w %q (one of: %s)", form.ErrUnknownSection, arg, strings.Join(sectionNames(), ", "))
}

func stepLabel(step form.Step) string {
	return fmt.Sprintf("%d. %s", int(step)+1, step.Title())
}
