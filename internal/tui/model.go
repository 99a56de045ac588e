package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riceharvest/a11yutils/pkg/aria"
	"github.com/riceharvest/a11yutils/pkg/diff"
)

// Model is the Bubbletea state for the attribute playground. Each row is an
// interaction pattern that can be included in the merge and cycled through
// its states.
type Model struct {
	patterns []pattern
	cursor   int
	keys     keyMap
	help     help.Model
	changes  []diff.Change
	quitting bool
}

// NewModel constructs a playground with every pattern in its initial state.
// Only the toggle pattern starts included.
func NewModel() Model {
	return Model{
		patterns: defaultPatterns(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Attributes merges the included patterns top to bottom.
func (m Model) Attributes() aria.AttributeSet {
	sets := make([]aria.AttributeSet, 0, len(m.patterns))
	for _, p := range m.patterns {
		if p.enabled {
			sets = append(sets, p.attributes())
		}
	}
	return aria.Merge(sets...)
}

// Changes returns the attribute changes caused by the last interaction.
func (m Model) Changes() []diff.Change {
	return m.changes
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) mutate(fn func(p *pattern)) {
	before := m.Attributes()
	patterns := append([]pattern(nil), m.patterns...)
	fn(&patterns[m.cursor])
	m.patterns = patterns
	m.changes = diff.Attributes(before, m.Attributes())
}
