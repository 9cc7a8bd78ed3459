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

package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cloud-exit/projectwizard/internal/config"
	"github.com/cloud-exit/projectwizard/internal/export"
	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/internal/storage"
	"github.com/cloud-exit/projectwizard/internal/ui"
)

const overviewJSON = `{"name":"acme-api","type":"app","description":"Internal billing API"}`

func TestMain(m *testing.M) {
	ui.SetOutput(io.Discard, io.Discard)
	now = func() time.Time { return time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC) }
	os.Exit(m.Run())
}

// useTempConfig points the commands at a fresh state store and output dir.
func useTempConfig(t *testing.T) *config.Config {
	t.Helper()
	c := config.DefaultConfig()
	c.Storage.Dir = filepath.Join(t.TempDir(), "kv")
	c.Output.Dir = t.TempDir()
	cfg = c
	t.Cleanup(func() { cfg = nil })
	return c
}

func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, "", args...)
	if err != nil {
		t.Fatalf("%s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		arg     string
		want    form.Step
		wantErr bool
	}{
		{"1", form.StepProjectOverview, false},
		{" 9 ", form.StepReview, false},
		{"0", 0, true},
		{"10", 0, true},
		{"two", 0, true},
	}
	for _, tc := range tests {
		got, err := parseStep(tc.arg)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseStep(%q) error = %v, wantErr %v", tc.arg, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("parseStep(%q) = %d, want %d", tc.arg, got, tc.want)
		}
	}
}

func TestParseSection(t *testing.T) {
	tests := []struct {
		arg  string
		want form.Section
	}{
		{"techStack", form.SectionTechStack},
		{"TECHSTACK", form.SectionTechStack},
		{"3", form.SectionCommonCommands},
		{"8", form.SectionAdvanced},
	}
	for _, tc := range tests {
		got, err := parseSection(tc.arg)
		if err != nil || got != tc.want {
			t.Errorf("parseSection(%q) = %q, %v; want %q", tc.arg, got, err, tc.want)
		}
	}
	for _, bad := range []string{"9", "bogus"} {
		if _, err := parseSection(bad); !errors.Is(err, form.ErrUnknownSection) {
			t.Errorf("parseSection(%q) error = %v, want ErrUnknownSection", bad, err)
		}
	}
}

func TestTailLines(t *testing.T) {
	got, err := tailLines(strings.NewReader("a\nb\nc\nd\n"), 2)
	if err != nil {
		t.Fatalf("tailLines: %v", err)
	}
	if strings.Join(got, ",") != "c,d" {
		t.Errorf("tailLines = %q, want [c d]", got)
	}
	if got, _ := tailLines(strings.NewReader("a"), 0); got != nil {
		t.Errorf("tailLines(n=0) = %q", got)
	}
}

func TestSetCompleteStatusPreview(t *testing.T) {
	useTempConfig(t)

	if _, err := execute(t, overviewJSON, "set", "projectOverview", "-"); err != nil {
		t.Fatalf("set: %v", err)
	}
	mustExecute(t, "step", "complete", "1")

	status := mustExecute(t, "status")
	for _, want := range []string{"acme-api", "1. Project Overview", "completed", "1 / 8 sections completed", "> 1. Project Overview"} {
		if !strings.Contains(status, want) {
			t.Errorf("status missing %q:\n%s", want, status)
		}
	}
	if strings.Contains(status, "never") {
		t.Errorf("status reports never saved:\n%s", status)
	}

	preview := mustExecute(t, "preview")
	if !strings.HasPrefix(preview, "# acme-api - Claude Code Configuration") {
		t.Errorf("preview = %q", preview)
	}
	if strings.Contains(preview, "## Tech Stack") {
		t.Error("progressive preview shows an incomplete step")
	}

	full := mustExecute(t, "preview", "--full")
	if !strings.Contains(full, "## Tech Stack") || !strings.Contains(full, "*Last Updated: 3/7/2026*") {
		t.Errorf("full preview incomplete:\n%s", full)
	}
}

func TestStepCompleteValidates(t *testing.T) {
	useTempConfig(t)

	if _, err := execute(t, "", "step", "complete", "1"); err == nil {
		t.Fatal("completing an empty overview succeeded")
	}
	status := mustExecute(t, "status")
	if !strings.Contains(status, "0 / 8 sections completed") {
		t.Errorf("a step was completed after a failed validation:\n%s", status)
	}

	mustExecute(t, "step", "complete", "1", "--force")
	status = mustExecute(t, "status")
	if !strings.Contains(status, "1 / 8 sections completed") {
		t.Errorf("--force did not complete the step:\n%s", status)
	}
}

func TestStepGotoAndSkip(t *testing.T) {
	useTempConfig(t)

	mustExecute(t, "step", "goto", "6")
	mustExecute(t, "step", "skip", "4")
	status := mustExecute(t, "status")
	if !strings.Contains(status, "> 6. Git Workflow") {
		t.Errorf("goto not applied:\n%s", status)
	}
	if !strings.Contains(status, "4. Code Style") || !strings.Contains(status, "skipped") {
		t.Errorf("skip not applied:\n%s", status)
	}

	if _, err := execute(t, "", "step", "goto", "12"); err == nil {
		t.Error("goto 12 succeeded")
	}
}

func TestPresetApplyAndGenerate(t *testing.T) {
	c := useTempConfig(t)

	list := mustExecute(t, "preset", "list")
	for _, id := range []string{"react-vite", "nextjs", "python-flask"} {
		if !strings.Contains(list, id) {
			t.Errorf("preset list missing %s:\n%s", id, list)
		}
	}

	mustExecute(t, "preset", "apply", "react-vite")
	if _, err := execute(t, "", "preset", "apply", "rails"); err == nil {
		t.Error("unknown preset applied")
	}

	doc := mustExecute(t, "generate", "--stdout")
	if !strings.Contains(doc, "- **Framework:** React") || !strings.Contains(doc, "npm run dev") {
		t.Errorf("generated document lacks preset values:\n%s", doc)
	}

	mustExecute(t, "generate")
	data, err := os.ReadFile(filepath.Join(c.Output.Dir, export.Filename))
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	if strings.TrimSuffix(doc, "\n") != string(data) {
		t.Error("written file differs from --stdout output")
	}
}

func TestSetRejectsBadInput(t *testing.T) {
	useTempConfig(t)

	tests := [][]string{
		{"set", "nope", "{}"},
		{"set", "techStack", "{not json"},
		{"set", "testing", `{"coverageTarget":"lots"}`},
	}
	for _, args := range tests {
		if _, err := execute(t, "", args...); err == nil {
			t.Errorf("%v succeeded, want error", args)
		}
	}
}

func TestValidateCommand(t *testing.T) {
	useTempConfig(t)

	out, err := execute(t, "", "validate")
	if err == nil {
		t.Fatal("validate passed on a fresh state")
	}
	if !strings.Contains(out, "FAIL  1. Project Overview") || !strings.Contains(out, "ok    4. Code Style") {
		t.Errorf("validate output:\n%s", out)
	}

	mustExecute(t, "set", "1", overviewJSON)
	out = mustExecute(t, "validate", "1")
	if !strings.Contains(out, "ok    1. Project Overview") {
		t.Errorf("validate 1 output:\n%s", out)
	}
}

func TestResetAndKV(t *testing.T) {
	useTempConfig(t)
	mustExecute(t, "set", "projectOverview", overviewJSON)

	keys := mustExecute(t, "kv", "list")
	if !strings.Contains(keys, storage.DefaultKey) {
		t.Errorf("kv list = %q, want %s", keys, storage.DefaultKey)
	}
	raw := mustExecute(t, "kv", "get", storage.DefaultKey)
	if !strings.Contains(raw, `"acme-api"`) {
		t.Errorf("kv get = %q", raw)
	}

	mustExecute(t, "reset", "--yes")
	if status := mustExecute(t, "status"); !strings.Contains(status, "(unnamed)") {
		t.Errorf("state not reset:\n%s", status)
	}
	if _, err := execute(t, "", "kv", "get", storage.DefaultKey); err == nil {
		t.Error("snapshot still stored after reset")
	}
}

func TestExportJSON(t *testing.T) {
	useTempConfig(t)
	mustExecute(t, "set", "projectOverview", overviewJSON)

	path := filepath.Join(t.TempDir(), "out", "answers.json")
	mustExecute(t, "export-json", path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(data), `  "projectOverview": {`) {
		t.Errorf("export is not indented FormData:\n%s", data)
	}
	if strings.Contains(string(data), "currentStep") {
		t.Error("plain export includes wizard state")
	}

	mustExecute(t, "export-json", "--state", path)
	data, _ = os.ReadFile(path)
	if !strings.Contains(string(data), `"currentStep": 0`) {
		t.Errorf("--state export lacks currentStep:\n%s", data)
	}
}

func TestVersionAndCompletion(t *testing.T) {
	useTempConfig(t)
	if out := mustExecute(t, "version"); !strings.Contains(out, "projectwizard version "+Version) {
		t.Errorf("version = %q", out)
	}
	if out := mustExecute(t, "completion", "bash"); !strings.Contains(out, "projectwizard") {
		t.Error("bash completion does not mention the command")
	}
	if _, err := execute(t, "", "completion", "tcsh"); err == nil {
		t.Error("unsupported shell accepted")
	}
}

func TestInfoShowsOutputFile(t *testing.T) {
	c := useTempConfig(t)

	out := mustExecute(t, "info")
	want := filepath.Join(c.Output.Dir, "CLAUDE.md") + " (text/markdown; charset=utf-8)"
	if !strings.Contains(out, want) {
		t.Errorf("info missing %q:\n%s", want, out)
	}
	if !strings.Contains(out, "State store:") {
		t.Errorf("info missing store line:\n%s", out)
	}
}
