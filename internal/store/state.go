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

// Package store holds the wizard state. A Store is created once per
// process, passed to whatever needs it, and is the only way to change the
// state. Changes are published to subscribers and persisted through a
// storage.Storage, debounced after edits and on a fixed interval.
package store

import (
	"time"

	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/internal/preset"
)

// State is the full wizard state.
type State struct {
	CurrentStep    form.Step     `json:"currentStep"`
	FormData       form.FormData `json:"formData"`
	CompletedSteps form.StepSet  `json:"completedSteps"`
	SkippedSteps   form.StepSet  `json:"skippedSteps"`
	LastSaved      *time.Time    `json:"lastSaved"`
	AppliedPreset  preset.ID     `json:"appliedPreset,omitempty"` // empty when none
}

// InitialState returns the state of a fresh wizard.
func InitialState() State {
	return State{
		CurrentStep:    form.StepProjectOverview,
		FormData:       form.Initial(),
		CompletedSteps: form.NewStepSet(),
		SkippedSteps:   form.NewStepSet(),
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.FormData = s.FormData.Clone()
	out.CompletedSteps = s.CompletedSteps.Clone()
	out.SkippedSteps = s.SkippedSteps.Clone()
	if s.LastSaved != nil {
		t := *s.LastSaved
		out.LastSaved = &t
	}
	return out
}

// SectionsCompleted counts completed steps that collect a section.
func (s State) SectionsCompleted() int {
	n := 0
	for st := range s.CompletedSteps {
		if st < form.SectionSteps {
			n++
		}
	}
	return n
}

// EventKind says which operation produced an Event.
type EventKind int

const (
	EventStep   EventKind = iota // current step changed
	EventForm                    // a form section changed
	EventSteps                   // completed or skipped sets changed
	EventPreset                  // a preset was applied
	EventReset
	EventLoaded
	EventSaved
)

func (k EventKind) String() string {
	switch k {
	case EventStep:
		return "step"
	case EventForm:
		return "form"
	case EventSteps:
		return "steps"
	case EventPreset:
		return "preset"
	case EventReset:
		return "reset"
	case EventLoaded:
		return "loaded"
	case EventSaved:
		return "saved"
	}
	return "unknown"
}

// Event is delivered to subscribers after a change. State is a copy taken
// right after the change.
type Event struct {
	Kind  EventKind
	State State
}
