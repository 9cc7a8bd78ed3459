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

// Package storage persists versioned wizard snapshots under a string key.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/cloud-exit/projectwizard/internal/kvstore"
)

// Version is the snapshot format written by this build. Snapshots with a
// different version are discarded on load.
const Version = 1

// DefaultKey is the key the wizard state is stored under.
const DefaultKey = "claude-wizard-state"

// ErrCorrupt is returned by Get when the stored bytes are not a snapshot.
var ErrCorrupt = errors.New("corrupt snapshot")

// Snapshot is the stored envelope. State is opaque to this package.
type Snapshot struct {
	Version   int             `json:"version"`
	LastSaved string          `json:"lastSaved"`
	State     json.RawMessage `json:"state"`
}

// Storage reads and writes snapshots. Get returns nil, nil when nothing is
// stored under key.
type Storage interface {
	Get(ctx context.Context, key string) (*Snapshot, error)
	Set(ctx context.Context, key string, snap *Snapshot) error
	Remove(ctx context.Context, key string) error
}

// KV stores snapshots as JSON in a kvstore.
type KV struct {
	kv *kvstore.Store
}

// NewKV returns a Storage backed by kv. The caller keeps ownership of kv.
func NewKV(kv *kvstore.Store) *KV {
	return &KV{kv: kv}
}

func (s *KV) Get(ctx context.Context, key string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := s.kv.Get(key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return Decode(raw)
}

func (s *KV) Set(ctx context.Context, key string, snap *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := s.kv.Set(key, raw); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *KV) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.kv.Delete(key); err != nil {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

// Decode parses a stored snapshot.
func Decode(raw []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &snap, nil
}

// Memory keeps snapshots in process memory. It is used for one-shot
// commands that must not touch the on-disk store, and in tests.
type Memory struct {
	mu    sync.Mutex
	snaps map[string][]byte
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{snaps: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) (*Snapshot, error) {
	m.mu.Lock()
	raw, ok := m.snaps[key]
	m.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return Decode(raw)
}

func (m *Memory) Set(_ context.Context, key string, snap *Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	m.mu.Lock()
	m.snaps[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.snaps, key)
	m.mu.Unlock()
	return nil
}
