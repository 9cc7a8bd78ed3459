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
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type previewKeyMap struct {
	Close  key.Binding
	Top    key.Binding
	Bottom key.Binding
}

var previewKeys = previewKeyMap{
	Close: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "close"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
}

// previewChrome is the number of lines taken by the title, frame and help.
const previewChrome = 5

// PreviewModel is a full-screen scrollable document viewer.
type PreviewModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewPreviewModel returns a viewer for content. The viewport is sized on
// the first window size message.
func NewPreviewModel(title, content string) PreviewModel {
	return PreviewModel{title: title, content: content}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - previewFrameStyle.GetHorizontalFrameSize()
		h := msg.Height - previewChrome
		if w < 10 {
			w = 10
		}
		if h < 3 {
			h = 3
		}
		if !m.ready {
			m.viewport = viewport.New(w, h)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = w
			m.viewport.Height = h
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, previewKeys.Close):
			return m, tea.Quit
		case key.Matches(msg, previewKeys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, previewKeys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m PreviewModel) View() string {
	if !m.ready {
		return "\n  Loading preview..."
	}
	header := titleStyle.Render(m.title)
	body := previewFrameStyle.Render(m.viewport.View())
	help := helpStyle.Render(fmt.Sprintf("up/down scroll  %s %s  %s %s  %s %s  %3.0f%%",
		previewKeys.Top.Help().Key, previewKeys.Top.Help().Desc,
		previewKeys.Bottom.Help().Key, previewKeys.Bottom.Help().Desc,
		previewKeys.Close.Help().Key, previewKeys.Close.Help().Desc,
		m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, strings.TrimRight(help, "\n"))
}

// showPreview runs the viewer until the user closes it.
func showPreview(title, content string) error {
	p := tea.NewProgram(NewPreviewModel(title, content), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview error: %w", err)
	}
	return nil
}
