package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riceharvest/a11yutils/internal/markup"
	"github.com/riceharvest/a11yutils/pkg/diff"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("a11yattrs • playground"),
		sectionStyle.Render("Patterns"),
		m.renderPatterns(),
		sectionStyle.Render("Merged attributes"),
		m.renderAttributes(),
	}

	if len(m.changes) > 0 {
		sections = append(sections, sectionStyle.Render("Last change"), renderChanges(m.changes))
	}

	sections = append(sections, sectionStyle.Render("Markup"), markupStyle.Render(m.renderMarkup()))
	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderPatterns() string {
	lines := make([]string, 0, len(m.patterns))
	for i, p := range m.patterns {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("› ")
		}

		box := disabledStyle.Render("[ ]")
		name := disabledStyle.Render(p.name)
		if p.enabled {
			box = enabledStyle.Render("[x]")
			name = p.name
		}

		lines = append(lines, fmt.Sprintf("%s%s %-16s %s", cursor, box, name, stateStyle.Render(p.stateLabel())))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderAttributes() string {
	attrs := m.Attributes().Attributes()
	if len(attrs) == 0 {
		return mutedStyle.Render("  (none)")
	}

	lines := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		lines = append(lines, fmt.Sprintf("  %s = %s", keyStyle.Render(string(attr.Key)), valueStyle.Render(fmt.Sprintf("%q", attr.Value.String()))))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderMarkup() string {
	out, err := markup.Render(markup.Element{Tag: "button", Text: "Preview", Attributes: m.Attributes()})
	if err != nil {
		return mutedStyle.Render(err.Error())
	}
	return out
}

func renderChanges(changes []diff.Change) string {
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		switch c.Kind {
		case diff.Added:
			lines = append(lines, "  "+addedStyle.Render(c.String()))
		case diff.Removed:
			lines = append(lines, "  "+removedStyle.Render(c.String()))
		default:
			lines = append(lines, "  "+changedStyle.Render(c.String()))
		}
	}
	return strings.Join(lines, "\n")
}
