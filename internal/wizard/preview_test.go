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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPreviewModelSizesOnWindowMsg(t *testing.T) {
	m := NewPreviewModel("Preview", "# Title\n\nbody")
	if !strings.Contains(m.View(), "Loading") {
		t.Fatalf("View before sizing = %q, want loading message", m.View())
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	pm := next.(PreviewModel)
	if !pm.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}
	if pm.viewport.Height != 20-previewChrome {
		t.Errorf("viewport height = %d, want %d", pm.viewport.Height, 20-previewChrome)
	}
	view := pm.View()
	for _, want := range []string{"Preview", "# Title", "q close"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q:\n%s", want, view)
		}
	}
}

func TestPreviewModelQuitKeys(t *testing.T) {
	m := NewPreviewModel("Preview", "x")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
	} {
		_, cmd := next.Update(k)
		if cmd == nil {
			t.Fatalf("key %q returned no command", k.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q did not quit", k.String())
		}
	}
}
