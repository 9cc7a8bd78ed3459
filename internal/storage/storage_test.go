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

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cloud-exit/projectwizard/internal/kvstore"
)

func openKV(t *testing.T) *KV {
	t.Helper()
	kv, err := kvstore.Open(kvstore.Options{InMemory: true})
	if err != nil {
		t.Fatalf("kvstore.Open: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return NewKV(kv)
}

func TestStorageRoundTrip(t *testing.T) {
	backends := map[string]Storage{
		"kv":     openKV(t),
		"memory": NewMemory(),
	}
	ctx := context.Background()

	for name, s := range backends {
		t.Run(name, func(t *testing.T) {
			got, err := s.Get(ctx, DefaultKey)
			if err != nil || got != nil {
				t.Fatalf("Get on empty store = %v, %v; want nil, nil", got, err)
			}

			in := &Snapshot{
				Version:   Version,
				LastSaved: "2026-01-02T03:04:05Z",
				State:     json.RawMessage(`{"currentStep":3}`),
			}
			if err := s.Set(ctx, DefaultKey, in); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err = s.Get(ctx, DefaultKey)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Version != Version || got.LastSaved != in.LastSaved || string(got.State) != `{"currentStep":3}` {
				t.Errorf("Get = %+v", got)
			}

			if err := s.Remove(ctx, DefaultKey); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if got, _ := s.Get(ctx, DefaultKey); got != nil {
				t.Errorf("Get after Remove = %+v, want nil", got)
			}
		})
	}
}

func TestKVCorruptSnapshot(t *testing.T) {
	kv, err := kvstore.Open(kvstore.Options{InMemory: true})
	if err != nil {
		t.Fatalf("kvstore.Open: %v", err)
	}
	defer kv.Close()

	if err := kv.Set(DefaultKey, []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, err = NewKV(kv).Get(context.Background(), DefaultKey)
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Get error = %v, want ErrCorrupt", err)
	}
}

func TestKVCancelledContext(t *testing.T) {
	s := openKV(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Set(ctx, DefaultKey, &Snapshot{Version: Version}); !errors.Is(err, context.Canceled) {
		t.Errorf("Set error = %v, want context.Canceled", err)
	}
}
