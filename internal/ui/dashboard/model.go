package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmai/taskboard/internal/keys"
	"github.com/lmai/taskboard/internal/theme"
)

// Target identifies a dashboard destination.
type Target int

const (
	TargetCreateTask Target = iota
	TargetSearch
	TargetManageTasks
	TargetTeam
	TargetMessages
	TargetDiagnostic
	TargetSignOut
)

// NavigateMsg is dispatched when the user picks a dashboard entry.
type NavigateMsg struct {
	Target Target
}

type entry struct {
	title  string
	desc   string
	target Target
}

var entries = []entry{
	{"Create New Task", "As a leader, create a new task for your team", TargetCreateTask},
	{"Search Tasks", "Easy search online tasks here", TargetSearch},
	{"Manage My Tasks", "View task progress and details", TargetManageTasks},
	{"My Team", "Browse your team members information", TargetTeam},
	{"Messages", "Read your inbox and contact the administrator", TargetMessages},
	{"Diagnostics", "Local storage health and record details", TargetDiagnostic},
	{"Sign Out", "Return to the sign-in screen", TargetSignOut},
}

// Model is the dashboard menu view.
type Model struct {
	keys   *keys.KeyMap
	cursor int
	unread int
	width  int
	height int
}

// New creates the dashboard view.
func New(width, height int) Model {
	return Model{keys: keys.DefaultKeyMap(), width: width, height: height}
}

// SetUnread updates the unread-message badge shown on the Messages
// entry.
func (m *Model) SetUnread(n int) {
	m.unread = n
}

// Update handles messages for the dashboard.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(entries)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Search):
		return m, func() tea.Msg { return NavigateMsg{Target: TargetSearch} }
	case key.Matches(keyMsg, m.keys.Select):
		target := entries[m.cursor].target
		return m, func() tea.Msg { return NavigateMsg{Target: target} }
	}

	return m, nil
}

// View renders the dashboard menu.
func (m Model) View() string {
	content := theme.TitleStyle.Render("Welcome to Task Management System") + "\n"
	content += theme.HelpStyle.Render("You have successfully logged in. Pick a feature to get started.") + "\n\n"

	for i, e := range entries {
		title := e.title
		if e.target == TargetMessages && m.unread > 0 {
			title += " " + theme.UnreadBadgeStyle.Render(fmt.Sprintf("%d", m.unread))
		}

		line := title + "\n" + theme.HelpStyle.Render("  "+e.desc)
		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		content += line + "\n"
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// Hints returns the status bar hints for the dashboard.
func (m Model) Hints() string {
	return "j/k move | enter open | / search tasks | ctrl+c quit"
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
