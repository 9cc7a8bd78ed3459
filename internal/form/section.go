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
	"errors"
	"fmt"
	"reflect"
)

// ErrUnknownSection is returned for a section name outside FormData.
var ErrUnknownSection = errors.New("unknown form section")

// Section names a top-level FormData field by its JSON name.
type Section string

const (
	SectionProjectOverview Section = "projectOverview"
	SectionTechStack       Section = "techStack"
	SectionCommonCommands  Section = "commonCommands"
	SectionCodeStyle       Section = "codeStyle"
	SectionTesting         Section = "testing"
	SectionGitWorkflow     Section = "gitWorkflow"
	SectionEnvironment     Section = "environment"
	SectionAdvanced        Section = "advanced"
)

// Sections lists all sections in step order.
var Sections = []Section{
	SectionProjectOverview,
	SectionTechStack,
	SectionCommonCommands,
	SectionCodeStyle,
	SectionTesting,
	SectionGitWorkflow,
	SectionEnvironment,
	SectionAdvanced,
}

// Step returns the wizard step that collects the section, or -1.
func (s Section) Step() Step {
	for i, sec := range Sections {
		if sec == s {
			return Step(i)
		}
	}
	return -1
}

// field returns a pointer to the FormData field backing section.
func (fd *FormData) field(section Section) (any, error) {
	switch section {
	case SectionProjectOverview:
		return &fd.ProjectOverview, nil
	case SectionTechStack:
		return &fd.TechStack, nil
	case SectionCommonCommands:
		return &fd.CommonCommands, nil
	case SectionCodeStyle:
		return &fd.CodeStyle, nil
	case SectionTesting:
		return &fd.Testing, nil
	case SectionGitWorkflow:
		return &fd.GitWorkflow, nil
	case SectionEnvironment:
		return &fd.Environment, nil
	case SectionAdvanced:
		return &fd.Advanced, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
}

// Get returns a copy of the section's current value.
func (fd FormData) Get(section Section) (any, error) {
	c := fd.Clone()
	ptr, err := c.field(section)
	if err != nil {
		return nil, err
	}
	return reflect.ValueOf(ptr).Elem().Interface(), nil
}

// Update applies data to a section. A slice or array replaces the section
// wholesale. Anything else (a map keyed by JSON field names, or a section
// struct) is shallow-merged: every field present in data overrides the
// current value, fields data omits are kept. On error fd is unchanged.
func (fd *FormData) Update(section Section, data any) error {
	ptr, err := fd.field(section)
	if err != nil {
		return err
	}

	var src []byte
	if isSequence(data) {
		src, err = json.Marshal(data)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", section, err)
		}
	} else {
		src, err = mergeFields(ptr, data)
		if err != nil {
			return fmt.Errorf("merging %s: %w", section, err)
		}
	}

	fresh := reflect.New(reflect.TypeOf(ptr).Elem())
	if err := json.Unmarshal(src, fresh.Interface()); err != nil {
		return fmt.Errorf("decoding %s: %w", section, err)
	}
	reflect.ValueOf(ptr).Elem().Set(fresh.Elem())
	return nil
}

func isSequence(data any) bool {
	if data == nil {
		return false
	}
	switch reflect.ValueOf(data).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// mergeFields overlays the top-level fields of data onto the JSON form of
// the value at current and returns the merged JSON.
func mergeFields(current, data any) ([]byte, error) {
	base, err := toFieldMap(current)
	if err != nil {
		return nil, err
	}
	overlay, err := toFieldMap(data)
	if err != nil {
		return nil, err
	}
	for k, v := range overlay {
		base[k] = v
	}
	return json.Marshal(base)
}

func toFieldMap(v any) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := make(map[string]json.RawMessage)
	if string(raw) == "null" {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
