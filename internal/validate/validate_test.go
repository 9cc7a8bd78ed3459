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

package validate

import (
	"strings"
	"testing"

	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/google/go-cmp/cmp"
)

func TestProjectOverview(t *testing.T) {
	tests := []struct {
		name string
		in   form.ProjectOverview
		want []Issue
	}{
		{
			name: "valid",
			in:   form.ProjectOverview{Name: "acme-api", Type: form.TypeApp, Description: "Billing service"},
		},
		{
			name: "empty name and short description",
			in:   form.ProjectOverview{Type: form.TypeApp, Description: "short"},
			want: []Issue{
				{Path: "name", Message: "Project name is required"},
				{Path: "description", Message: "Please provide a meaningful description (at least 10 characters)"},
			},
		},
		{
			name: "uppercase name",
			in:   form.ProjectOverview{Name: "Acme API", Type: form.TypeApp, Description: "Billing service"},
			want: []Issue{
				{Path: "name", Message: "Use lowercase letters, numbers, and hyphens only (no spaces or uppercase)"},
			},
		},
		{
			name: "unknown type",
			in:   form.ProjectOverview{Name: "acme", Type: "game", Description: "Billing service"},
			want: []Issue{
				{Path: "type", Message: "Invalid enum value. Expected automation | client-project | app | website | library | other"},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Step(form.StepProjectOverview, tc.in)
			if got.Success != (len(tc.want) == 0) {
				t.Fatalf("Success = %v, issues %+v", got.Success, got.Issues)
			}
			if diff := cmp.Diff(tc.want, got.Issues); len(tc.want) > 0 && diff != "" {
				t.Errorf("issues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommonCommands(t *testing.T) {
	got := Step(form.StepCommonCommands, []form.Command{})
	want := []Issue{{Path: "commonCommands", Message: "At least one command is required"}}
	if diff := cmp.Diff(want, got.Issues); diff != "" {
		t.Errorf("empty list (-want +got):\n%s", diff)
	}

	got = Step(form.StepCommonCommands, []form.Command{
		{Command: "make", Description: "Build"},
		{Command: "", Description: ""},
	})
	want = []Issue{
		{Path: "commonCommands[1].command", Message: "Command is required"},
		{Path: "commonCommands[1].description", Message: "Description is required"},
	}
	if diff := cmp.Diff(want, got.Issues); diff != "" {
		t.Errorf("blank entry (-want +got):\n%s", diff)
	}
}

func TestRawMapInput(t *testing.T) {
	got := Step(form.StepTechStack, map[string]any{
		"language":       "Go",
		"packageManager": "npm",
	})
	want := []Issue{{Path: "runtime", Message: "Runtime version is required (e.g., Node 20+, Python 3.11+)"}}
	if diff := cmp.Diff(want, got.Issues); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}

	bad := Step(form.StepTesting, map[string]any{"coverageTarget": "high"})
	if bad.Success || len(bad.Issues) != 1 || !strings.HasPrefix(bad.Issues[0].Message, "Validation failed") {
		t.Errorf("undecodable input = %+v", bad)
	}
}

func TestRangesAndEnums(t *testing.T) {
	got := Step(form.StepTesting, &form.Testing{Framework: "jest", CoverageTarget: 120})
	want := []Issue{{Path: "coverageTarget", Message: "Number must be less than or equal to 100"}}
	if diff := cmp.Diff(want, got.Issues); diff != "" {
		t.Errorf("coverage (-want +got):\n%s", diff)
	}

	got = Step(form.StepCodeStyle, form.CodeStyle{ModuleSystem: "ESM", Indentation: "3 spaces"})
	want = []Issue{{Path: "indentation", Message: "Invalid enum value. Expected 2 spaces | 4 spaces | tabs"}}
	if diff := cmp.Diff(want, got.Issues); diff != "" {
		t.Errorf("indentation (-want +got):\n%s", diff)
	}
}

func TestEnvironmentVariables(t *testing.T) {
	got := Step(form.StepEnvironment, form.Environment{
		EnvironmentVariables: []form.EnvVar{{Name: "PORT"}, {Required: true}},
	})
	want := []Issue{{Path: "environmentVariables[1].name", Message: "Variable name is required"}}
	if diff := cmp.Diff(want, got.Issues); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestFormStepInitialState(t *testing.T) {
	fd := form.Initial()

	wantFail := map[form.Step]bool{
		form.StepProjectOverview: true,
		form.StepTechStack:       true,
		form.StepCommonCommands:  true,
		form.StepTesting:         true,
	}
	for step := form.Step(0); step < form.StepCount; step++ {
		res := FormStep(step, fd)
		if res.Success == wantFail[step] {
			t.Errorf("step %d (%s): Success = %v, issues %+v", step, step.Title(), res.Success, res.Issues)
		}
	}
	if !FormStep(42, fd).Success {
		t.Error("out-of-range step should pass")
	}
}

func TestResultErr(t *testing.T) {
	if err := (Result{Success: true}).Err(); err != nil {
		t.Errorf("Err on success = %v", err)
	}
	r := Result{Issues: []Issue{{Path: "name", Message: "Project name is required"}, {Message: "other"}}}
	if got := r.Err().Error(); got != "name: Project name is required; other" {
		t.Errorf("Err = %q", got)
	}
}
