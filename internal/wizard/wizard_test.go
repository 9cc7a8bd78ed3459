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

package wizard

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cloud-exit/projectwizard/internal/export"
	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/internal/generate"
	"github.com/cloud-exit/projectwizard/internal/store"
	"github.com/cloud-exit/projectwizard/internal/ui"
)

func TestMain(m *testing.M) {
	ui.SetOutput(io.Discard, io.Discard)
	os.Exit(m.Run())
}

func newTestWizard(t *testing.T) (*Wizard, *store.Store, *bytes.Buffer) {
	t.Helper()
	s, err := store.New(store.Options{Debounce: time.Hour})
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { s.Close(context.Background()) })

	var out bytes.Buffer
	w := New(s, Options{
		OutputDir: t.TempDir(),
		Style:     "plain",
		Out:       &out,
		Now:       func() time.Time { return time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC) },
	})
	return w, s, &out
}

func fillOverview(t *testing.T, s *store.Store) {
	t.Helper()
	err := s.UpdateFormData(form.SectionProjectOverview, map[string]any{
		"name":        "acme-api",
		"description": "Internal billing API",
	})
	if err != nil {
		t.Fatalf("UpdateFormData: %v", err)
	}
}

func TestNextBlocksOnInvalidStep(t *testing.T) {
	w, s, _ := newTestWizard(t)

	res := w.Next()
	if res.Success {
		t.Fatal("Next succeeded on an empty project overview")
	}
	if len(res.Issues) == 0 {
		t.Error("failed result carries no issues")
	}
	st := s.State()
	if st.CurrentStep != form.StepProjectOverview || st.CompletedSteps.Len() != 0 {
		t.Errorf("state changed on failed Next: step %d, completed %v", st.CurrentStep, st.CompletedSteps.Sorted())
	}
}

func TestNextCompletesAndAdvances(t *testing.T) {
	w, s, _ := newTestWizard(t)
	fillOverview(t, s)

	if res := w.Next(); !res.Success {
		t.Fatalf("Next failed: %+v", res.Issues)
	}
	st := s.State()
	if st.CurrentStep != form.StepTechStack {
		t.Errorf("CurrentStep = %d, want %d", st.CurrentStep, form.StepTechStack)
	}
	if !st.CompletedSteps.Has(form.StepProjectOverview) {
		t.Error("overview not marked completed")
	}

	s.SetCurrentStep(form.StepReview)
	if res := w.Next(); !res.Success {
		t.Error("Next on the review step should be a no-op success")
	}
	if s.State().CurrentStep != form.StepReview {
		t.Error("Next moved past the review step")
	}
}

func TestBackStopsAtFirstStep(t *testing.T) {
	w, s, _ := newTestWizard(t)
	w.Back()
	if got := s.State().CurrentStep; got != form.StepProjectOverview {
		t.Errorf("CurrentStep = %d after Back on first step", got)
	}
	s.SetCurrentStep(form.StepTesting)
	w.Back()
	if got := s.State().CurrentStep; got != form.StepCodeStyle {
		t.Errorf("CurrentStep = %d, want %d", got, form.StepCodeStyle)
	}
}

func TestSkipAdvancesAndUnskipStays(t *testing.T) {
	w, s, _ := newTestWizard(t)
	s.SetCurrentStep(form.StepEnvironment)

	w.Skip()
	st := s.State()
	if !st.SkippedSteps.Has(form.StepEnvironment) {
		t.Fatal("step not marked skipped")
	}
	if st.CurrentStep != form.StepAdvanced {
		t.Errorf("CurrentStep = %d, want %d", st.CurrentStep, form.StepAdvanced)
	}

	w.Back()
	w.Skip()
	st = s.State()
	if st.SkippedSteps.Has(form.StepEnvironment) {
		t.Error("second Skip did not unskip")
	}
	if st.CurrentStep != form.StepEnvironment {
		t.Errorf("unskip moved to step %d", st.CurrentStep)
	}
}

func TestDocumentProgressiveAndFull(t *testing.T) {
	w, s, _ := newTestWizard(t)
	if got := w.Document(false); got != generate.Placeholder {
		t.Errorf("progressive preview of a fresh wizard = %q, want placeholder", got)
	}

	fillOverview(t, s)
	w.Next()
	if got := w.Document(false); !strings.HasPrefix(got, "# acme-api - Claude Code Configuration") {
		t.Errorf("progressive preview = %q", got)
	}
	if got := w.Document(true); !strings.HasSuffix(got, "*Last Updated: 3/7/2026*") {
		t.Errorf("full document footer = %q", got[max(0, len(got)-40):])
	}
}

func TestPerformWriteFile(t *testing.T) {
	w, s, out := newTestWizard(t)
	fillOverview(t, s)

	done, err := w.perform(context.Background(), choice{act: actWrite})
	if done || err != nil {
		t.Fatalf("perform(write) = %v, %v", done, err)
	}
	path := filepath.Join(w.opts.OutputDir, export.Filename)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != w.Document(true) {
		t.Error("written file differs from the full document")
	}
	if !strings.Contains(out.String(), "Wrote "+path) {
		t.Errorf("output = %q, want confirmation", out.String())
	}
}

func TestPerformNavigationAndQuit(t *testing.T) {
	w, s, out := newTestWizard(t)
	ctx := context.Background()

	if done, _ := w.perform(ctx, choice{act: actNext}); done {
		t.Fatal("Next ended the wizard")
	}
	if !strings.Contains(out.String(), "Please fix the following") {
		t.Errorf("failed Next printed %q", out.String())
	}

	w.perform(ctx, choice{act: actJump, step: form.StepGitWorkflow})
	if got := s.State().CurrentStep; got != form.StepGitWorkflow {
		t.Errorf("jump landed on %d", got)
	}

	w.perform(ctx, choice{act: actPreset, preset: "nextjs"})
	if got := s.State().FormData.TechStack.Framework; got != "Next.js" {
		t.Errorf("Framework after preset = %q", got)
	}

	w.perform(ctx, choice{act: actReset})
	if st := s.State(); st.CurrentStep != form.StepProjectOverview || st.AppliedPreset != "" {
		t.Errorf("reset left step %d, preset %q", st.CurrentStep, st.AppliedPreset)
	}

	done, err := w.perform(ctx, choice{act: actQuit})
	if !done || err != nil {
		t.Errorf("perform(quit) = %v, %v", done, err)
	}
}

func TestPerformUnknownPresetReports(t *testing.T) {
	w, _, out := newTestWizard(t)
	if done, err := w.perform(context.Background(), choice{act: actPreset, preset: "rails"}); done || err != nil {
		t.Fatalf("perform = %v, %v", done, err)
	}
	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("output = %q, want an error line", out.String())
	}
}

func TestRenderPlainReturnsInput(t *testing.T) {
	w, _, _ := newTestWizard(t)
	if got := w.render("# Hi"); got != "# Hi" {
		t.Errorf("render = %q", got)
	}
}
