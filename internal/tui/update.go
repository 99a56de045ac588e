package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riceharvest/a11yutils/pkg/diff"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.patterns)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Cycle):
			m.mutate(func(p *pattern) { p.cycle() })
		case key.Matches(msg, m.keys.Toggle):
			m.mutate(func(p *pattern) { p.enabled = !p.enabled })
		case key.Matches(msg, m.keys.Reset):
			before := m.Attributes()
			m.patterns = defaultPatterns()
			m.changes = diff.Attributes(before, m.Attributes())
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}
