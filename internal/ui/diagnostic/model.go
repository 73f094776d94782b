// Package diagnostic implements the storage diagnostics view: record
// locations and sizes, entity counts, and any rehydration errors
// retained by the stores.
package diagnostic

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmai/taskboard/internal/keys"
	"github.com/lmai/taskboard/internal/model"
	"github.com/lmai/taskboard/internal/storage"
	"github.com/lmai/taskboard/internal/store"
	"github.com/lmai/taskboard/internal/theme"
)

// BackMsg is dispatched when the user leaves the diagnostics view.
type BackMsg struct{}

// Model is the diagnostics view.
type Model struct {
	local      *storage.Local
	keys       *keys.KeyMap
	tasks      *store.TaskStore
	messages   *store.MessageStore
	configPath string
	width      int
	height     int
}

// New creates the diagnostics view.
func New(local *storage.Local, tasks *store.TaskStore, messages *store.MessageStore, configPath string, width, height int) Model {
	return Model{
		local:      local,
		keys:       keys.DefaultKeyMap(),
		tasks:      tasks,
		messages:   messages,
		configPath: configPath,
		width:      width,
		height:     height,
	}
}

// Update handles messages for the diagnostics view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		return m, func() tea.Msg { return BackMsg{} }
	}
	return m, nil
}

// View renders the diagnostics report.
func (m Model) View() string {
	content := theme.TitleStyle.Render("Storage Diagnostics") + "\n\n"

	content += "Database: " + m.local.Path() + "\n"
	content += "Config:   " + m.configPath + "\n\n"

	content += m.recordLine("Tasks", store.TaskRecordKey, len(m.tasks.Tasks()), m.tasks.LoadError())
	content += m.recordLine("Messages", store.MessageRecordKey, len(m.messages.Messages()), m.messages.LoadError())

	content += fmt.Sprintf("\nUnread messages: %d\n", m.messages.UnreadCount())

	comments := 0
	for _, t := range m.tasks.Tasks() {
		comments += len(t.Comments)
	}
	content += fmt.Sprintf("Task comments:   %d\n", comments)

	byStatus := map[string]int{}
	for _, t := range m.tasks.Tasks() {
		byStatus[t.Status]++
	}
	content += fmt.Sprintf("Task status:     %d active, %d pending, %d completed\n",
		byStatus[model.TaskStatusActive],
		byStatus[model.TaskStatusPending],
		byStatus[model.TaskStatusCompleted],
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(theme.PanelStyle.Render(content))
}

// recordLine formats one record's key, byte size, entity count, and
// retained load error.
func (m Model) recordLine(label, key string, count int, loadErr error) string {
	size, err := m.local.Size(key)
	if err != nil {
		return fmt.Sprintf("%-9s %s: %s\n", label, key, theme.ErrorStyle.Render(err.Error()))
	}

	line := fmt.Sprintf("%-9s %s: %d entries, %d bytes\n", label, key, count, size)
	if loadErr != nil {
		line += "          " + theme.ErrorStyle.Render("load error: "+loadErr.Error()) + "\n"
	}
	return line
}

// Hints returns the status bar hints for the diagnostics view.
func (m Model) Hints() string {
	return "esc dashboard"
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
