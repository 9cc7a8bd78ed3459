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

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/internal/preset"
	"github.com/cloud-exit/projectwizard/internal/storage"
	"github.com/cloud-exit/projectwizard/internal/ui"
)

// Defaults for Options and StartAutoSave.
const (
	DefaultDebounce         = 500 * time.Millisecond
	DefaultAutoSaveInterval = 5 * time.Second
)

// Options configures New. Zero values select the defaults.
type Options struct {
	Storage  storage.Storage // in-memory when nil
	Key      string          // storage.DefaultKey when empty
	Debounce time.Duration
	Presets  *preset.Catalog // the built-in catalog when nil
	Now      func() time.Time
}

type subscriber struct {
	id int
	fn func(Event)
}

// Store owns the wizard state. All methods are safe for concurrent use.
// Subscribers run on the goroutine that made the change, after the store's
// lock is released.
type Store struct {
	storage  storage.Storage
	key      string
	debounce time.Duration
	presets  *preset.Catalog
	now      func() time.Time

	mu       sync.Mutex
	state    State
	timer    *time.Timer
	gen      uint64 // bumped to invalidate a scheduled save
	pending  bool
	closed   bool
	subs     []subscriber
	nextSub  int
	stopAuto context.CancelFunc

	saveMu sync.Mutex // orders snapshot capture with the write
	wg     sync.WaitGroup
}

// New returns a Store holding InitialState. Call LoadFromStorage to restore
// a previous session.
func New(opts Options) (*Store, error) {
	s := &Store{
		storage:  opts.Storage,
		key:      opts.Key,
		debounce: opts.Debounce,
		presets:  opts.Presets,
		now:      opts.Now,
		state:    InitialState(),
	}
	if s.storage == nil {
		s.storage = storage.NewMemory()
	}
	if s.key == "" {
		s.key = storage.DefaultKey
	}
	if s.debounce <= 0 {
		s.debounce = DefaultDebounce
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.presets == nil {
		c, err := preset.Default()
		if err != nil {
			return nil, err
		}
		s.presets = c
	}
	return s, nil
}

// Presets returns the catalog ApplyPreset looks ids up in.
func (s *Store) Presets() *preset.Catalog {
	return s.presets
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn for every later change and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// publish must be called without s.mu held.
func (s *Store) publish(kind EventKind, st State) {
	s.mu.Lock()
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()
	for _, sub := range subs {
		sub.fn(Event{Kind: kind, State: st})
	}
}

// change runs fn under the lock and publishes kind if fn reports a change.
func (s *Store) change(kind EventKind, fn func(st *State) bool) {
	s.mu.Lock()
	if !fn(&s.state) {
		s.mu.Unlock()
		return
	}
	st := s.state.Clone()
	s.mu.Unlock()
	s.publish(kind, st)
}

// SetCurrentStep moves to step, clamped into the step sequence.
func (s *Store) SetCurrentStep(step form.Step) {
	s.change(EventStep, func(st *State) bool {
		st.CurrentStep = form.Clamp(step)
		return true
	})
}

// UpdateFormData changes one section. A slice replaces the section; any
// other value is shallow-merged over it, see form.FormData.Update. A save
// is scheduled after the debounce delay.
func (s *Store) UpdateFormData(section form.Section, data any) error {
	s.mu.Lock()
	if err := s.state.FormData.Update(section, data); err != nil {
		s.mu.Unlock()
		return err
	}
	s.scheduleSaveLocked()
	st := s.state.Clone()
	s.mu.Unlock()

	s.publish(EventForm, st)
	return nil
}

// MarkStepCompleted adds step to the completed set and removes it from
// the skipped set. Steps outside the sequence are ignored.
func (s *Store) MarkStepCompleted(step form.Step) {
	if !step.Valid() {
		return
	}
	s.change(EventSteps, func(st *State) bool {
		st.CompletedSteps.Add(step)
		st.SkippedSteps.Remove(step)
		return true
	})
}

// ToggleSkipStep unskips a skipped step. Otherwise it skips the step and
// removes it from the completed set.
func (s *Store) ToggleSkipStep(step form.Step) {
	if !step.Valid() {
		return
	}
	s.change(EventSteps, func(st *State) bool {
		if st.SkippedSteps.Has(step) {
			st.SkippedSteps.Remove(step)
			return true
		}
		st.SkippedSteps.Add(step)
		st.CompletedSteps.Remove(step)
		return true
	})
}

// ApplyPreset merges a preset into the form and marks the steps it fills
// as completed. preset.Custom does nothing. An unknown id is logged and
// returned as preset.ErrUnknown with the state unchanged.
func (s *Store) ApplyPreset(id preset.ID) error {
	if id == preset.Custom {
		return nil
	}
	p, err := s.presets.Get(id)
	if err != nil {
		ui.Warnf("Cannot apply preset: %v", err)
		return err
	}

	s.mu.Lock()
	fd, err := p.Apply(s.state.FormData)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state.FormData = fd
	for _, step := range preset.FilledSteps {
		s.state.CompletedSteps.Add(step)
		s.state.SkippedSteps.Remove(step)
	}
	s.state.AppliedPreset = id
	s.scheduleSaveLocked()
	st := s.state.Clone()
	s.mu.Unlock()

	s.publish(EventPreset, st)
	return nil
}

// Reset restores InitialState, drops any scheduled save and removes the
// stored snapshot. A storage failure is logged and returned; the in-memory
// reset happens regardless.
func (s *Store) Reset(ctx context.Context) error {
	s.saveMu.Lock()
	s.mu.Lock()
	s.state = InitialState()
	s.cancelScheduledLocked()
	st := s.state.Clone()
	s.mu.Unlock()
	err := s.storage.Remove(ctx, s.key)
	s.saveMu.Unlock()

	s.publish(EventReset, st)
	if err != nil {
		ui.Warnf("Failed to clear saved wizard state: %v", err)
		return fmt.Errorf("clearing saved state: %w", err)
	}
	return nil
}

// LoadFromStorage replaces the state with the stored snapshot and reports
// whether it did. A snapshot written with another format version is
// removed and ignored. An unreadable snapshot is removed and its decode
// error returned.
func (s *Store) LoadFromStorage(ctx context.Context) (bool, error) {
	snap, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, storage.ErrCorrupt) {
		ui.Warnf("Saved wizard state is unreadable: %v", err)
		s.discardSnapshot(ctx)
		return false, fmt.Errorf("loading saved state: %w", err)
	}
	if err != nil {
		ui.Warnf("Failed to load saved wizard state: %v", err)
		return false, fmt.Errorf("loading saved state: %w", err)
	}
	if snap == nil {
		return false, nil
	}
	if snap.Version != storage.Version {
		ui.Warnf("Discarding saved wizard state with format version %d (expected %d)", snap.Version, storage.Version)
		s.discardSnapshot(ctx)
		return false, nil
	}

	st := InitialState()
	if err := json.Unmarshal(snap.State, &st); err != nil {
		ui.Warnf("Saved wizard state is unreadable: %v", err)
		s.discardSnapshot(ctx)
		return false, fmt.Errorf("decoding saved state: %w", err)
	}
	normalize(&st)
	if st.LastSaved == nil {
		if t, err := time.Parse(time.RFC3339Nano, snap.LastSaved); err == nil {
			st.LastSaved = &t
		}
	}

	s.mu.Lock()
	s.state = st
	out := s.state.Clone()
	s.mu.Unlock()

	s.publish(EventLoaded, out)
	return true, nil
}

func (s *Store) discardSnapshot(ctx context.Context) {
	if err := s.storage.Remove(ctx, s.key); err != nil {
		ui.Warnf("Failed to remove stale wizard state: %v", err)
	}
}

// normalize repairs a decoded state so the store invariants hold.
func normalize(st *State) {
	st.CurrentStep = form.Clamp(st.CurrentStep)
	if st.CompletedSteps == nil {
		st.CompletedSteps = form.NewStepSet()
	}
	if st.SkippedSteps == nil {
		st.SkippedSteps = form.NewStepSet()
	}
	for step := range st.CompletedSteps {
		st.SkippedSteps.Remove(step)
	}
}

// SaveToStorage writes the current state and, on success, records the
// write time in LastSaved. Failures are logged and returned.
func (s *Store) SaveToStorage(ctx context.Context) error {
	st, err := s.save(ctx)
	if err != nil {
		ui.Warnf("Failed to save wizard state: %v", err)
		return err
	}
	s.publish(EventSaved, st)
	return nil
}

func (s *Store) save(ctx context.Context) (State, error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	now := s.now()
	st := s.State()
	st.LastSaved = &now

	raw, err := json.Marshal(st)
	if err != nil {
		return State{}, fmt.Errorf("encoding state: %w", err)
	}
	snap := &storage.Snapshot{
		Version:   storage.Version,
		LastSaved: now.UTC().Format(time.RFC3339Nano),
		State:     raw,
	}
	if err := s.storage.Set(ctx, s.key, snap); err != nil {
		return State{}, fmt.Errorf("saving state: %w", err)
	}

	s.mu.Lock()
	s.state.LastSaved = &now
	out := s.state.Clone()
	s.mu.Unlock()
	return out, nil
}

// StartAutoSave saves every interval until ctx is done or the store is
// closed. Only the first call has an effect.
func (s *Store) StartAutoSave(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultAutoSaveInterval
	}
	s.mu.Lock()
	if s.closed || s.stopAuto != nil {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.stopAuto = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !s.autoSaveTick(ctx) {
					return
				}
			}
		}
	}()
}

// autoSaveTick saves unless ctx is already done, in which case it reports
// false. select may pick a ready tick over a done context.
func (s *Store) autoSaveTick(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	_ = s.SaveToStorage(ctx)
	return true
}

// Close stops autosave, waits for in-flight saves and writes a scheduled
// save that had not fired yet. Mutations keep working after Close but are
// no longer persisted automatically.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	flush := s.pending
	s.cancelScheduledLocked()
	if s.stopAuto != nil {
		s.stopAuto()
	}
	s.mu.Unlock()

	s.wg.Wait()
	if flush {
		return s.SaveToStorage(ctx)
	}
	return nil
}

func (s *Store) scheduleSaveLocked() {
	if s.closed {
		return
	}
	s.cancelScheduledLocked()
	s.pending = true
	gen := s.gen
	s.timer = time.AfterFunc(s.debounce, func() { s.fireScheduled(gen) })
}

func (s *Store) cancelScheduledLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
	s.gen++
}

func (s *Store) fireScheduled(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.pending || s.closed {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.timer = nil
	s.wg.Add(1)
	s.mu.Unlock()

	defer s.wg.Done()
	_ = s.SaveToStorage(context.Background())
}
