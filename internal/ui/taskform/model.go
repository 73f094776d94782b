// Package taskform implements the first step of task creation: building
// the list of attached filenames. Only Word, PowerPoint, and Excel
// attachments are accepted, and at least one is required before the
// settings step opens.
package taskform

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmai/taskboard/internal/theme"
)

// FilesConfirmedMsg is dispatched when the user confirms the attachment
// list and the settings step should open.
type FilesConfirmedMsg struct {
	Files []string
}

// CancelMsg is dispatched when the user abandons task creation.
type CancelMsg struct{}

// allowedExtensions is the accepted attachment extension set.
var allowedExtensions = map[string]bool{
	".doc":  true,
	".docx": true,
	".ppt":  true,
	".pptx": true,
	".xls":  true,
	".xlsx": true,
}

// Model is the attachment-collection view.
type Model struct {
	input  textinput.Model
	files  []string
	status string
	width  int
	height int
}

// New creates the attachment-collection view.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "report.docx"
	ti.Prompt = "> "
	ti.Width = min(width-6, 50)

	return Model{input: ti, width: width, height: height}
}

// Start resets the view for a fresh task.
func (m *Model) Start() tea.Cmd {
	m.files = nil
	m.status = ""
	m.input.SetValue("")
	return m.input.Focus()
}

// Update handles messages for the attachment view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }

	case "enter":
		m.addFile(strings.TrimSpace(m.input.Value()))
		return m, nil

	case "ctrl+x":
		if len(m.files) > 0 {
			m.files = m.files[:len(m.files)-1]
		}
		return m, nil

	case "ctrl+s":
		if len(m.files) == 0 {
			m.status = "Please add at least one file to create a task."
			return m, nil
		}
		files := make([]string, len(m.files))
		copy(files, m.files)
		return m, func() tea.Msg { return FilesConfirmedMsg{Files: files} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// addFile validates and appends one filename.
func (m *Model) addFile(name string) {
	if name == "" {
		return
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		m.status = "Supports Word (.doc, .docx), PowerPoint (.ppt, .pptx), Excel (.xls, .xlsx)"
		return
	}
	m.files = append(m.files, name)
	m.status = ""
	m.input.SetValue("")
}

// View renders the attachment view.
func (m Model) View() string {
	content := theme.TitleStyle.Render("Create New Task") + "\n"
	content += theme.HelpStyle.Render("Add Word, PowerPoint, or Excel files for your team task.") + "\n\n"
	content += m.input.View() + "\n\n"

	if len(m.files) > 0 {
		content += fmt.Sprintf("Attached Files (%d)\n", len(m.files))
		for _, f := range m.files {
			content += theme.ListItemStyle.Render("• "+f) + "\n"
		}
	} else {
		content += theme.HelpStyle.Render("No files attached yet.") + "\n"
	}

	if m.status != "" {
		content += "\n" + theme.ErrorStyle.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// Hints returns the status bar hints for the attachment view.
func (m Model) Hints() string {
	return "enter add file | ctrl+x remove last | ctrl+s continue to settings | esc cancel"
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = min(width-6, 50)
}
