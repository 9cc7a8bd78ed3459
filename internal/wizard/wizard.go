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

// Package wizard runs the interactive CLAUDE.md setup: one form per step,
// a sidebar with progress, and a preview of the document being built.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/cloud-exit/projectwizard/internal/export"
	"github.com/cloud-exit/projectwizard/internal/form"
	"github.com/cloud-exit/projectwizard/internal/generate"
	"github.com/cloud-exit/projectwizard/internal/preset"
	"github.com/cloud-exit/projectwizard/internal/store"
	"github.com/cloud-exit/projectwizard/internal/ui"
	"github.com/cloud-exit/projectwizard/internal/validate"
)

// ErrCancelled is returned when the user aborts a form.
var ErrCancelled = errors.New("wizard cancelled")

// Options configures a Wizard.
type Options struct {
	OutputDir  string // where CLAUDE.md is written
	Style      string // glamour style for previews; "plain" disables rendering
	Width      int
	Out        io.Writer // os.Stdout when nil
	Accessible bool
	Now        func() time.Time
}

// Wizard drives a store through the steps.
type Wizard struct {
	store *store.Store
	opts  Options
	out   io.Writer
	theme *huh.Theme
}

// New returns a wizard over s.
func New(s *store.Store, opts Options) *Wizard {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Wizard{store: s, opts: opts, out: opts.Out, theme: newTheme()}
}

// Run is shorthand for New(s, opts).Run(ctx).
func Run(ctx context.Context, s *store.Store, opts Options) error {
	return New(s, opts).Run(ctx)
}

type action int

const (
	actNext action = iota
	actBack
	actSkip
	actEdit
	actJump
	actPreset
	actPreview
	actFullPreview
	actWrite
	actCopy
	actReset
	actQuit
)

// choice is a menu selection with its argument, if any.
type choice struct {
	act    action
	step   form.Step
	preset preset.ID
}

// Run loops until the user quits or aborts. The store is left as the user
// left it; persisting it is up to the caller.
func (w *Wizard) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		st := w.store.State()
		fmt.Fprintln(w.out)
		fmt.Fprintln(w.out, renderHeader(st))

		var (
			c   choice
			err error
		)
		if st.CurrentStep == form.StepReview {
			c, err = w.reviewMenu(st)
		} else {
			c, err = w.editStep(st)
		}
		if err != nil {
			return w.formError(err)
		}

		done, err := w.perform(ctx, c)
		if err != nil {
			return w.formError(err)
		}
		if done {
			return nil
		}
	}
}

func (w *Wizard) formError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

func (w *Wizard) runForm(g *huh.Group) error {
	return huh.NewForm(g).
		WithTheme(w.theme).
		WithAccessible(w.opts.Accessible).
		WithOutput(w.out).
		Run()
}

// editStep shows the current step's form, stores the answers and asks
// what to do next.
func (w *Wizard) editStep(st store.State) (choice, error) {
	step := st.CurrentStep
	d := newDraft(st.FormData)
	if err := w.runForm(d.group(step)); err != nil {
		return choice{}, err
	}
	section, err := d.section(step)
	if err != nil {
		w.printError(err.Error())
		return choice{act: actEdit}, nil
	}
	if err := w.store.UpdateFormData(form.Steps[step].Section, section); err != nil {
		return choice{}, err
	}
	return w.stepMenu(w.store.State())
}

func (w *Wizard) stepMenu(st store.State) (choice, error) {
	skipLabel := "Skip this step"
	if st.SkippedSteps.Has(st.CurrentStep) {
		skipLabel = "Unskip this step"
	}
	opts := []huh.Option[action]{
		huh.NewOption("Next", actNext),
		huh.NewOption("Edit again", actEdit),
	}
	if st.CurrentStep > form.StepProjectOverview {
		opts = append(opts, huh.NewOption("Previous", actBack))
	}
	opts = append(opts,
		huh.NewOption(skipLabel, actSkip),
		huh.NewOption("Jump to step", actJump),
		huh.NewOption("Apply preset", actPreset),
		huh.NewOption("Preview", actPreview),
		huh.NewOption("Save and quit", actQuit),
	)
	return w.menu(opts)
}

func (w *Wizard) reviewMenu(st store.State) (choice, error) {
	fmt.Fprintln(w.out, dimStyle.Render(progressLine(st)))
	return w.menu([]huh.Option[action]{
		huh.NewOption("Write "+export.Filename, actWrite),
		huh.NewOption("Copy to clipboard", actCopy),
		huh.NewOption("Preview full document", actFullPreview),
		huh.NewOption("Previous", actBack),
		huh.NewOption("Jump to step", actJump),
		huh.NewOption("Start over", actReset),
		huh.NewOption("Save and quit", actQuit),
	})
}

func (w *Wizard) menu(opts []huh.Option[action]) (choice, error) {
	var act action
	err := w.runForm(huh.NewGroup(
		huh.NewSelect[action]().
			Title("What next?").
			Options(opts...).
			Value(&act),
	))
	if err != nil {
		return choice{}, err
	}

	c := choice{act: act}
	switch act {
	case actJump:
		c.step, err = w.pickStep()
	case actPreset:
		c.preset, err = w.pickPreset()
	case actReset:
		var ok bool
		ok, err = w.confirm("Discard all answers and start over?")
		if !ok {
			c.act = actEdit
		}
	}
	return c, err
}

func (w *Wizard) pickStep() (form.Step, error) {
	st := w.store.State()
	opts := make([]huh.Option[form.Step], 0, form.StepCount)
	for _, si := range form.Steps {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d. %s", int(si.Step)+1, si.Title), si.Step))
	}
	step := st.CurrentStep
	err := w.runForm(huh.NewGroup(
		huh.NewSelect[form.Step]().
			Title("Go to step").
			Options(opts...).
			Value(&step),
	))
	return step, err
}

func (w *Wizard) pickPreset() (preset.ID, error) {
	opts := []huh.Option[preset.ID]{}
	for _, p := range w.store.Presets().List() {
		opts = append(opts, huh.NewOption(p.Name+" - "+p.Description, p.ID))
	}
	opts = append(opts, huh.NewOption("Custom (keep my answers)", preset.Custom))

	id := preset.Custom
	err := w.runForm(huh.NewGroup(
		huh.NewSelect[preset.ID]().
			Title("Apply a preset").
			Description("Presets replace the tech stack and commands and fill in the other sections.").
			Options(opts...).
			Value(&id),
	))
	return id, err
}

func (w *Wizard) confirm(title string) (bool, error) {
	var ok bool
	err := w.runForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&ok),
	))
	return ok, err
}

// perform carries out c. It reports true when the wizard should stop.
func (w *Wizard) perform(ctx context.Context, c choice) (bool, error) {
	switch c.act {
	case actNext:
		if res := w.Next(); !res.Success {
			w.printIssues(res)
		}
	case actBack:
		w.Back()
	case actSkip:
		w.Skip()
	case actEdit:
	case actJump:
		w.store.SetCurrentStep(c.step)
	case actPreset:
		if err := w.store.ApplyPreset(c.preset); err != nil {
			w.printError(err.Error())
		} else if c.preset != preset.Custom {
			w.printSuccess("Applied preset " + string(c.preset))
		}
	case actPreview:
		return false, showPreview("CLAUDE.md preview", w.render(w.Document(false)))
	case actFullPreview:
		return false, showPreview(export.Filename, w.render(w.Document(true)))
	case actWrite:
		path, err := w.WriteFile()
		if err != nil {
			w.printError(err.Error())
			return false, nil
		}
		w.printSuccess("Wrote " + path)
	case actCopy:
		if err := export.CopyToClipboard(w.Document(true)); err != nil {
			w.printError(err.Error())
			return false, nil
		}
		w.printSuccess("Copied " + export.Filename + " to the clipboard")
	case actReset:
		if err := w.store.Reset(ctx); err != nil {
			w.printError(err.Error())
		}
	case actQuit:
		return true, nil
	}
	return false, nil
}

// Next validates the current step. On success the step is marked completed
// and the wizard moves on; on failure nothing changes.
func (w *Wizard) Next() validate.Result {
	st := w.store.State()
	step := st.CurrentStep
	if step == form.StepReview {
		return validate.Result{Success: true}
	}
	res := validate.FormStep(step, st.FormData)
	if !res.Success {
		return res
	}
	w.store.MarkStepCompleted(step)
	w.store.SetCurrentStep(step + 1)
	return res
}

// Back moves to the previous step.
func (w *Wizard) Back() {
	if step := w.store.State().CurrentStep; step > form.StepProjectOverview {
		w.store.SetCurrentStep(step - 1)
	}
}

// Skip toggles the current step's skip mark. Marking a step skipped also
// moves to the next step.
func (w *Wizard) Skip() {
	step := w.store.State().CurrentStep
	if step == form.StepReview {
		return
	}
	w.store.ToggleSkipStep(step)
	if w.store.State().SkippedSteps.Has(step) {
		w.store.SetCurrentStep(step + 1)
	}
}

// Document renders the current answers: the full document, or the
// progressive preview of completed steps.
func (w *Wizard) Document(full bool) string {
	st := w.store.State()
	if full {
		return generate.Full(st.FormData, w.opts.Now())
	}
	return generate.Progressive(st.FormData, st.CompletedSteps)
}

// WriteFile writes the full document to the output directory.
func (w *Wizard) WriteFile() (string, error) {
	return export.Download(w.opts.OutputDir, w.Document(true))
}

// render pretty-prints md unless the style is "plain". Rendering failures
// fall back to the raw text.
func (w *Wizard) render(md string) string {
	if w.opts.Style == "plain" {
		return md
	}
	out, err := ui.RenderMarkdown(md, w.opts.Style, w.opts.Width)
	if err != nil {
		ui.Debugf("markdown render failed: %v", err)
		return md
	}
	return out
}

func (w *Wizard) printIssues(res validate.Result) {
	fmt.Fprintln(w.out, errorStyle.Render("Please fix the following before continuing:"))
	for _, issue := range res.Issues {
		line := issue.Message
		if issue.Path != "" {
			line = issue.Path + ": " + line
		}
		fmt.Fprintln(w.out, errorStyle.Render("  - "+line))
	}
}

func (w *Wizard) printError(msg string) {
	fmt.Fprintln(w.out, errorStyle.Render("Error: "+msg))
}

func (w *Wizard) printSuccess(msg string) {
	fmt.Fprintln(w.out, successStyle.Render(msg))
}
