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

// Package preset holds the built-in presets that bulk-fill several wizard
// steps at once. The catalog is parsed from an embedded YAML file and is
// read-only after loading.
package preset

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/static"
	"gopkg.in/yaml.v3"
)

// ErrUnknown is returned when a preset id is not in the catalog.
var ErrUnknown = errors.New("unknown preset")

// ID identifies a preset.
type ID string

// Custom selects no preset. Applying it changes nothing.
const Custom ID = "custom"

// FilledSteps are the steps marked completed when a preset is applied.
var FilledSteps = []form.Step{
	form.StepTechStack,
	form.StepCommonCommands,
	form.StepCodeStyle,
	form.StepTesting,
	form.StepGitWorkflow,
	form.StepEnvironment,
}

// Preset is a named bundle of answers. TechStack and CommonCommands are
// complete and replace the current values. The field maps of the other
// sections are partial, keyed by JSON field name, and are merged over the
// current values. Environment replaces the current environment block.
type Preset struct {
	ID             ID               `yaml:"id"`
	Name           string           `yaml:"name"`
	Description    string           `yaml:"description"`
	TechStack      form.TechStack   `yaml:"techStack"`
	CommonCommands []form.Command   `yaml:"commonCommands"`
	CodeStyle      map[string]any   `yaml:"codeStyle"`
	Testing        map[string]any   `yaml:"testing"`
	GitWorkflow    map[string]any   `yaml:"gitWorkflow"`
	Environment    form.Environment `yaml:"environment"`
	Advanced       map[string]any   `yaml:"advanced"`
}

// Apply returns a copy of fd with the preset merged in. Required versions
// and environment variables are replaced; setup instructions are replaced
// only when the preset has them.
func (p Preset) Apply(fd form.FormData) (form.FormData, error) {
	out := fd.Clone()

	out.TechStack = p.TechStack
	out.TechStack.CustomDependencies = nil
	if len(p.TechStack.CustomDependencies) > 0 {
		out.TechStack.CustomDependencies = append([]string{}, p.TechStack.CustomDependencies...)
	}
	out.CommonCommands = append([]form.Command{}, p.CommonCommands...)

	partials := []struct {
		section form.Section
		fields  map[string]any
	}{
		{form.SectionCodeStyle, p.CodeStyle},
		{form.SectionTesting, p.Testing},
		{form.SectionGitWorkflow, p.GitWorkflow},
		{form.SectionAdvanced, p.Advanced},
	}
	for _, part := range partials {
		if len(part.fields) == 0 {
			continue
		}
		if err := out.Update(part.section, part.fields); err != nil {
			return fd, fmt.Errorf("preset %s: %w", p.ID, err)
		}
	}

	env := form.Environment{
		RequiredVersions:     make(map[string]string, len(p.Environment.RequiredVersions)),
		EnvironmentVariables: append([]form.EnvVar{}, p.Environment.EnvironmentVariables...),
		SetupInstructions:    out.Environment.SetupInstructions,
	}
	if p.Environment.SetupInstructions != "" {
		env.SetupInstructions = p.Environment.SetupInstructions
	}
	for k, v := range p.Environment.RequiredVersions {
		env.RequiredVersions[k] = v
	}
	out.Environment = env

	return out, nil
}

func (p Preset) clone() Preset {
	out := p
	out.TechStack.CustomDependencies = append([]string(nil), p.TechStack.CustomDependencies...)
	out.CommonCommands = append([]form.Command(nil), p.CommonCommands...)
	out.CodeStyle = cloneFields(p.CodeStyle)
	out.Testing = cloneFields(p.Testing)
	out.GitWorkflow = cloneFields(p.GitWorkflow)
	out.Advanced = cloneFields(p.Advanced)
	if p.Environment.RequiredVersions != nil {
		out.Environment.RequiredVersions = make(map[string]string, len(p.Environment.RequiredVersions))
		for k, v := range p.Environment.RequiredVersions {
			out.Environment.RequiredVersions[k] = v
		}
	}
	out.Environment.EnvironmentVariables = append([]form.EnvVar(nil), p.Environment.EnvironmentVariables...)
	return out
}

func cloneFields(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneFields(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Catalog is an ordered, read-only set of presets.
type Catalog struct {
	presets []Preset
}

type catalogFile struct {
	Presets []Preset `yaml:"presets"`
}

// Parse decodes a catalog from YAML. Ids must be unique and must not be
// empty or "custom".
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	seen := make(map[ID]bool, len(f.Presets))
	for _, p := range f.Presets {
		switch {
		case p.ID == "":
			return nil, fmt.Errorf("preset %q has no id", p.Name)
		case p.ID == Custom:
			return nil, fmt.Errorf("preset id %q is reserved", Custom)
		case seen[p.ID]:
			return nil, fmt.Errorf("duplicate preset id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return &Catalog{presets: f.Presets}, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the built-in catalog, parsed once on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(static.PresetsYAML)
	})
	return defaultCatalog, defaultErr
}

// List returns copies of all presets in catalog order.
func (c *Catalog) List() []Preset {
	out := make([]Preset, len(c.presets))
	for i, p := range c.presets {
		out[i] = p.clone()
	}
	return out
}

// IDs returns the preset ids in catalog order.
func (c *Catalog) IDs() []ID {
	out := make([]ID, len(c.presets))
	for i, p := range c.presets {
		out[i] = p.ID
	}
	return out
}

// Get returns a copy of the preset with the given id.
func (c *Catalog) Get(id ID) (Preset, error) {
	for _, p := range c.presets {
		if p.ID == id {
			return p.clone(), nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknown, id)
}
