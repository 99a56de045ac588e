package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/riceharvest/a11yutils/pkg/aria"
	"github.com/riceharvest/a11yutils/pkg/diff"
)

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelStartsWithToggle(t *testing.T) {
	t.Parallel()

	m := NewModel()
	require.Equal(t, aria.Toggle(false), m.Attributes())
	require.Empty(t, m.Changes())
	require.Nil(t, m.Init())
}

func TestCycleChangesState(t *testing.T) {
	t.Parallel()

	m := press(t, NewModel(), keySpace)

	require.Equal(t, aria.Toggle(true), m.Attributes())
	require.Equal(t, []diff.Change{{Key: aria.KeyPressed, Kind: diff.Modified, Before: "false", After: "true"}}, m.Changes())
}

func TestToggleIncludesPattern(t *testing.T) {
	t.Parallel()

	// Move to disclosure and include it.
	m := press(t, NewModel(), keyDown, keyEnter)

	attrs := m.Attributes()
	require.Equal(t, aria.False, attrs[aria.KeyExpanded])
	require.Equal(t, aria.IDRef("panel"), attrs[aria.KeyControls])
	require.Len(t, m.Changes(), 2)

	m = press(t, m, keyEnter)
	require.Equal(t, aria.Toggle(false), m.Attributes())
}

func TestCursorStaysInBounds(t *testing.T) {
	t.Parallel()

	m := press(t, NewModel(), keyUp, runeKey('k'))
	require.Equal(t, 0, m.cursor)

	for range m.patterns {
		m = press(t, m, runeKey('j'))
	}
	require.Equal(t, len(m.patterns)-1, m.cursor)
}

func TestCheckedCyclesThroughMixed(t *testing.T) {
	t.Parallel()

	m := press(t, NewModel(), keyDown, keyDown, keyDown, keyEnter, keySpace, keySpace)
	require.Equal(t, aria.Mixed, m.Attributes()[aria.KeyChecked])

	m = press(t, m, keySpace)
	require.Equal(t, aria.TristateFalse, m.Attributes()[aria.KeyChecked])
}

func TestLaterPatternsOverrideEarlier(t *testing.T) {
	t.Parallel()

	m := NewModel()
	// skip link then preset (disabled) should leave tabindex -1
	for i := 0; i < 9; i++ {
		m = press(t, m, keyDown)
	}
	m = press(t, m, keyEnter, keyDown, keyEnter)
	// preset cycles alert, disabled, hidden, status; move to disabled.
	m = press(t, m, keySpace)

	require.Equal(t, aria.Unreachable, m.Attributes()[aria.KeyTabIndex])
}

func TestUpdateDoesNotMutatePreviousModel(t *testing.T) {
	t.Parallel()

	original := NewModel()
	_ = press(t, original, keySpace)

	require.Equal(t, aria.Toggle(false), original.Attributes())
}

func TestResetRestoresDefaults(t *testing.T) {
	t.Parallel()

	m := press(t, NewModel(), keySpace, keyDown, keyEnter, runeKey('r'))
	require.Equal(t, aria.Toggle(false), m.Attributes())
	require.NotEmpty(t, m.Changes())
}

func TestQuitAndHelp(t *testing.T) {
	t.Parallel()

	m := press(t, NewModel(), runeKey('?'))
	require.True(t, m.help.ShowAll)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.True(t, updated.(Model).Quitting())
}

func TestWindowSizeSetsHelpWidth(t *testing.T) {
	t.Parallel()

	updated, cmd := NewModel().Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	require.Nil(t, cmd)
	require.Equal(t, 80, updated.(Model).help.Width)
}
