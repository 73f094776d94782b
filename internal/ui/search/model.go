// Package search implements the Search Tasks view: a live-filtered
// listing of the shared task catalog with a local apply-to-join
// acknowledgement.
package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmai/taskboard/internal/catalog"
	"github.com/lmai/taskboard/internal/theme"
)

// BackMsg is dispatched when the user leaves the search view.
type BackMsg struct{}

// Model is the catalog search view.
type Model struct {
	input   textinput.Model
	results []catalog.Entry
	cursor  int
	applied map[int]bool
	status  string
	width   int
	height  int
}

// New creates the search view.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "Search by name, keyword, or tag..."
	ti.Prompt = "/ "
	ti.Width = min(width-6, 50)

	return Model{
		input:   ti,
		results: catalog.Entries(),
		applied: map[int]bool{},
		width:   width,
		height:  height,
	}
}

// Start resets the view to the full catalog with the query focused.
func (m *Model) Start() tea.Cmd {
	m.input.SetValue("")
	m.results = catalog.Entries()
	m.cursor = 0
	m.status = ""
	return m.input.Focus()
}

// Update handles messages for the search view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return BackMsg{} }

		case "down":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "enter":
			if m.cursor < len(m.results) {
				entry := m.results[m.cursor]
				m.applied[entry.ID] = true
				m.status = fmt.Sprintf("Application sent! You applied to join %q.", entry.Name)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	m.results = catalog.Search(m.input.Value())
	if m.cursor >= len(m.results) {
		m.cursor = 0
	}

	return m, cmd
}

// View renders the search view.
func (m Model) View() string {
	content := theme.TitleStyle.Render("Search Tasks") + "\n"
	content += m.input.View() + "\n\n"

	if len(m.results) == 0 {
		content += theme.HelpStyle.Render("No tasks match your search.") + "\n"
	}

	for i, e := range m.results {
		title := e.Name + " " + theme.StatusStyle(e.Status).Render(e.Status)
		if m.applied[e.ID] {
			title += " " + theme.SuccessStyle.Render("applied")
		}
		details := fmt.Sprintf("max %d members | %s | %s",
			e.MaxMembers, e.Duration, strings.Join(e.Tags, ", "))

		line := title + "\n" + theme.HelpStyle.Render("  "+e.Description) +
			"\n" + theme.HelpStyle.Render("  "+details)
		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		content += line + "\n"
	}

	if m.status != "" {
		content += "\n" + theme.SuccessStyle.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// Hints returns the status bar hints for the search view.
func (m Model) Hints() string {
	return "type to filter | up/down move | enter apply | esc dashboard"
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = min(width-6, 50)
}
