// Package teamview implements the My Team view: the fixed roster with
// contact details and a shortcut for opening a private message.
package teamview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmai/taskboard/internal/keys"
	"github.com/lmai/taskboard/internal/model"
	"github.com/lmai/taskboard/internal/team"
	"github.com/lmai/taskboard/internal/theme"
)

// BackMsg is dispatched when the user leaves the team view.
type BackMsg struct{}

// MessageMemberMsg is dispatched when the user opens a private message
// to a roster member.
type MessageMemberMsg struct {
	Member model.TeamMember
}

// Model is the team roster view.
type Model struct {
	keys    *keys.KeyMap
	members []model.TeamMember
	cursor  int
	width   int
	height  int
}

// New creates the team roster view.
func New(width, height int) Model {
	return Model{keys: keys.DefaultKeyMap(), members: team.Members(), width: width, height: height}
}

// Update handles messages for the team view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.members)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Message):
		member := m.members[m.cursor]
		return m, func() tea.Msg { return MessageMemberMsg{Member: member} }
	}

	return m, nil
}

// View renders the roster.
func (m Model) View() string {
	content := theme.TitleStyle.Render("My Team") + "\n\n"

	for i, member := range m.members {
		header := fmt.Sprintf("%s %s  %s", member.Avatar(), member.Name,
			theme.HelpStyle.Render(member.Role+" / "+member.Department))
		details := strings.Join([]string{
			member.Email,
			member.Phone,
			member.Location,
			"joined " + member.JoinDate,
		}, " | ")

		line := header + "\n" + theme.HelpStyle.Render("  "+details)
		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		content += line + "\n"
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// Hints returns the status bar hints for the team view.
func (m Model) Hints() string {
	return "j/k move | m message member | esc dashboard"
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
