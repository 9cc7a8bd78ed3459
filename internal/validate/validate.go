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

// Package validate checks one wizard step's answers and reports every
// problem as a field path plus a user-facing message.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/go-playground/validator/v10"
)

// Issue is one failed rule.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Result is the outcome of validating a step. Issues are ordered by field
// declaration order.
type Result struct {
	Success bool    `json:"success"`
	Issues  []Issue `json:"errors,omitempty"`
}

// Err returns nil on success, otherwise an error listing every issue.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	msgs := make([]string, 0, len(r.Issues))
	for _, is := range r.Issues {
		if is.Path == "" {
			msgs = append(msgs, is.Message)
			continue
		}
		msgs = append(msgs, is.Path+": "+is.Message)
	}
	return errors.New(strings.Join(msgs, "; "))
}

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "indentation", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, ind := range form.Indentations {
			if s == ind {
				return true
			}
		}
		return false
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %s validator: %v", tag, err))
	}
}

// commandList lets the command step be validated as a struct.
type commandList struct {
	Commands []form.Command `json:"commonCommands" validate:"min=1,dive"`
}

// Step validates the answers for one step. section is the step's section
// value (a section struct, a []form.Command, a pointer to either, or a
// JSON-shaped map). The review step and steps outside the sequence always
// pass.
func Step(step form.Step, section any) Result {
	var (
		target any
		err    error
	)
	switch step {
	case form.StepProjectOverview:
		target, err = decode[form.ProjectOverview](section)
	case form.StepTechStack:
		target, err = decode[form.TechStack](section)
	case form.StepCommonCommands:
		var cmds []form.Command
		cmds, err = decode[[]form.Command](section)
		target = commandList{Commands: cmds}
	case form.StepCodeStyle:
		target, err = decode[form.CodeStyle](section)
	case form.StepTesting:
		target, err = decode[form.Testing](section)
	case form.StepGitWorkflow:
		target, err = decode[form.GitWorkflow](section)
	case form.StepEnvironment:
		target, err = decode[form.Environment](section)
	case form.StepAdvanced:
		target, err = decode[form.Advanced](section)
	default:
		return Result{Success: true}
	}
	if err != nil {
		return Result{Issues: []Issue{{Message: "Validation failed: " + err.Error()}}}
	}
	return check(target)
}

// FormStep validates the section of fd that step collects.
func FormStep(step form.Step, fd form.FormData) Result {
	if !step.Valid() || step == form.StepReview {
		return Result{Success: true}
	}
	section, err := fd.Get(form.Steps[step].Section)
	if err != nil {
		return Result{Issues: []Issue{{Message: err.Error()}}}
	}
	return Step(step, section)
}

func decode[T any](section any) (T, error) {
	switch v := section.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}
	var out T
	raw, err := json.Marshal(section)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}

func check(target any) Result {
	err := engine.Struct(target)
	if err == nil {
		return Result{Success: true}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Issues: []Issue{{Message: "Validation failed: " + err.Error()}}}
	}
	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{Path: fieldPath(fe), Message: message(fe)})
	}
	return Result{Issues: issues}
}

// fieldPath drops the root type name from the JSON namespace.
func fieldPath(fe validator.FieldError) string {
	_, path, _ := strings.Cut(fe.Namespace(), ".")
	return path
}

var indexPattern = regexp.MustCompile(`\[\d+\]`)

var messages = map[string]string{
	"ProjectOverview.Name.required":                  "Project name is required",
	"ProjectOverview.Name.slug":                      "Use lowercase letters, numbers, and hyphens only (no spaces or uppercase)",
	"ProjectOverview.Description.min":                "Please provide a meaningful description (at least 10 characters)",
	"TechStack.Language.required":                    "Programming language is required",
	"TechStack.Runtime.required":                     "Runtime version is required (e.g., Node 20+, Python 3.11+)",
	"commandList.Commands.min":                       "At least one command is required",
	"commandList.Commands.Command.required":          "Command is required",
	"commandList.Commands.Description.required":      "Description is required",
	"CodeStyle.ModuleSystem.required":                "Module system is required",
	"Testing.Framework.required":                     "Testing framework is required",
	"GitWorkflow.BranchNaming.required":              "Branch naming convention is required",
	"Environment.EnvironmentVariables.Name.required": "Variable name is required",
}

func message(fe validator.FieldError) string {
	key := indexPattern.ReplaceAllString(fe.StructNamespace(), "") + "." + fe.Tag()
	if msg, ok := messages[key]; ok {
		return msg
	}
	switch fe.Tag() {
	case "oneof":
		return "Invalid enum value. Expected " + strings.Join(strings.Fields(fe.Param()), " | ")
	case "indentation":
		return "Invalid enum value. Expected " + strings.Join(form.Indentations, " | ")
	case "gte":
		return "Number must be greater than or equal to " + fe.Param()
	case "lte":
		return "Number must be less than or equal to " + fe.Param()
	case "required":
		return "Required"
	}
	return fmt.Sprintf("Failed the %q rule", fe.Tag())
}
