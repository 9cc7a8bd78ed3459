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

package kvstore

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Options{InMemory: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestSetGetOverwrite(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("state", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set("state", []byte("v2")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get("state")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v2" {
		t.Errorf("Get = %q, want v2", got)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete("never-set"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestIteratePrefix(t *testing.T) {
	s := openTestStore(t)
	for _, k := range []string{"claude-wizard-state", "claude-wizard-b", "other"} {
		if err := s.Set(k, []byte("x")); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}

	var got []string
	err := s.Iterate("claude-", func(key string, _ []byte) error {
		got = append(got, key)
		return nil
	})
	if err != nil {
		t.Fatalf("Iterate: %v", err)
	}
	want := []string{"claude-wizard-b", "claude-wizard-state"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Iterate keys mismatch (-want +got):\n%s", diff)
	}
}

func TestIterateStopsOnError(t *testing.T) {
	s := openTestStore(t)
	for _, k := range []string{"a", "b"} {
		if err := s.Set(k, []byte("1")); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	stop := errors.New("stop")
	var count int
	err := s.Iterate("", func(string, []byte) error {
		count++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("Iterate error = %v, want stop", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestReopenOnDisk(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(Options{Dir: dir})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Set("k", []byte("persisted")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	ro, err := Open(Options{Dir: dir, ReadOnly: true})
	if err != nil {
		t.Fatalf("Open read-only: %v", err)
	}
	defer ro.Close()
	got, err := ro.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("Get = %q, want persisted", got)
	}
}
