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

package form

import (
	"encoding/json"
	"sort"
)

// Step identifies one page of the wizard.
type Step int

const (
	StepProjectOverview Step = iota
	StepTechStack
	StepCommonCommands
	StepCodeStyle
	StepTesting
	StepGitWorkflow
	StepEnvironment
	StepAdvanced
	StepReview
)

// StepCount is the number of wizard steps.
const StepCount = 9

// SectionSteps is the number of steps that collect a FormData section.
const SectionSteps = 8

// StepInfo describes a step for display.
type StepInfo struct {
	Step    Step
	Title   string
	Section Section // empty for the review step
}

// Steps lists the wizard steps in order.
var Steps = []StepInfo{
	{StepProjectOverview, "Project Overview", SectionProjectOverview},
	{StepTechStack, "Tech Stack", SectionTechStack},
	{StepCommonCommands, "Commands", SectionCommonCommands},
	{StepCodeStyle, "Code Style", SectionCodeStyle},
	{StepTesting, "Testing", SectionTesting},
	{StepGitWorkflow, "Git Workflow", SectionGitWorkflow},
	{StepEnvironment, "Environment", SectionEnvironment},
	{StepAdvanced, "Advanced", SectionAdvanced},
	{StepReview, "Review & Download", ""},
}

// Valid reports whether s is inside the step sequence.
func (s Step) Valid() bool {
	return s >= 0 && s < StepCount
}

// Title returns the display title of s, or "" when s is out of range.
func (s Step) Title() string {
	if !s.Valid() {
		return ""
	}
	return Steps[s].Title
}

// Clamp forces s into the step sequence.
func Clamp(s Step) Step {
	if s < 0 {
		return 0
	}
	if s >= StepCount {
		return StepCount - 1
	}
	return s
}

// StepSet is an unordered set of step indices.
type StepSet map[Step]struct{}

// NewStepSet returns a set holding the given steps.
func NewStepSet(steps ...Step) StepSet {
	s := make(StepSet, len(steps))
	for _, st := range steps {
		s[st] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s StepSet) Has(step Step) bool {
	_, ok := s[step]
	return ok
}

// Add inserts step. s must be non-nil.
func (s StepSet) Add(step Step) {
	s[step] = struct{}{}
}

// Remove deletes step if present.
func (s StepSet) Remove(step Step) {
	delete(s, step)
}

// Len returns the number of members.
func (s StepSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s StepSet) Sorted() []Step {
	out := make([]Step, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy; a nil set clones to an empty set.
func (s StepSet) Clone() StepSet {
	out := make(StepSet, len(s))
	for st := range s {
		out[st] = struct{}{}
	}
	return out
}

// Equal reports whether both sets have the same members.
func (s StepSet) Equal(other StepSet) bool {
	if len(s) != len(other) {
		return false
	}
	for st := range s {
		if !other.Has(st) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted integer array.
func (s StepSet) MarshalJSON() ([]byte, error) {
	ints := make([]int, 0, len(s))
	for _, st := range s.Sorted() {
		ints = append(ints, int(st))
	}
	return json.Marshal(ints)
}

// UnmarshalJSON decodes an integer array in any order. Duplicates collapse.
func (s *StepSet) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	set := make(StepSet, len(ints))
	for _, i := range ints {
		set[Step(i)] = struct{}{}
	}
	*s = set
	return nil
}
