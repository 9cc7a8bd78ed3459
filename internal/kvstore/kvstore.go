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

// Package kvstore is a small string-keyed wrapper around BadgerDB used to
// keep wizard snapshots between sessions.
package kvstore

import (
	"errors"
	"fmt"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("key not found")

// Options configures Open.
type Options struct {
	Dir      string // database directory, unused when InMemory is set
	InMemory bool
	ReadOnly bool // skips the directory lock so a running wizard is not blocked
}

// Store is an open key-value database.
type Store struct {
	db     *badger.DB
	skipGC bool
}

// Open opens the database at opts.Dir, creating it when missing. A value
// log left half-written by a killed process is truncated by a short
// read-write open before the requested mode is retried.
func Open(opts Options) (*Store, error) {
	db, err := badger.Open(badgerOptions(opts))
	if err != nil && !opts.InMemory && needsRecovery(err) {
		rdb, rerr := badger.Open(badgerOptions(Options{Dir: opts.Dir}))
		if rerr != nil {
			return nil, fmt.Errorf("opening %s: %w", opts.Dir, err)
		}
		if cerr := rdb.Close(); cerr != nil {
			return nil, cerr
		}
		db, err = badger.Open(badgerOptions(opts))
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", opts.Dir, err)
	}
	return &Store{db: db, skipGC: opts.ReadOnly || opts.InMemory}, nil
}

func badgerOptions(opts Options) badger.Options {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		bopts = badger.DefaultOptions(opts.Dir)
	}
	bopts = bopts.WithLogger(nil)
	if opts.ReadOnly {
		bopts = bopts.WithReadOnly(true).WithBypassLockGuard(true)
	}
	return bopts
}

func needsRecovery(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Log truncate required") ||
		strings.Contains(msg, "MANIFEST has unsupported version")
}

// Get returns a copy of the value stored under key.
func (s *Store) Get(key string) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	return val, err
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Iterate calls fn for each key starting with prefix, in key order. A
// non-nil error from fn stops the walk and is returned.
func (s *Store) Iterate(prefix string, fn func(key string, value []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := fn(string(item.Key()), v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close compacts the value log and closes the database.
func (s *Store) Close() error {
	if !s.skipGC {
		// RunValueLogGC returns an error once nothing is left to rewrite.
		for s.db.RunValueLogGC(0.5) == nil {
		}
	}
	return s.db.Close()
}
