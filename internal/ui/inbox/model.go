// Package inbox implements the Messages view: the inbox list with
// unread markers, mark-as-read handling, and the compose line for
// contacting the administrator.
package inbox

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmai/taskboard/internal/keys"
	"github.com/lmai/taskboard/internal/model"
	"github.com/lmai/taskboard/internal/store"
	"github.com/lmai/taskboard/internal/theme"
)

// BackMsg is dispatched when the user leaves the inbox.
type BackMsg struct{}

type submode int

const (
	modeList submode = iota
	modeCompose
)

// Model is the inbox view.
type Model struct {
	store    *store.MessageStore
	keys     *keys.KeyMap
	messages []model.Message
	cursor   int
	mode     submode
	input    textinput.Model
	status   string
	isErr    bool
	width    int
	height   int
}

// New creates the inbox view.
func New(s *store.MessageStore, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "Write a message to the administrator..."
	ti.Prompt = "> "
	ti.Width = min(width-6, 60)

	return Model{store: s, keys: keys.DefaultKeyMap(), input: ti, width: width, height: height}
}

// Start resets the view and loads the current inbox.
func (m *Model) Start() {
	m.mode = modeList
	m.status = ""
	m.Refresh()
}

// Refresh reloads the message snapshot from the store.
func (m *Model) Refresh() {
	m.messages = m.store.Messages()
	if m.cursor >= len(m.messages) {
		m.cursor = len(m.messages) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetNotice shows a transient status line, used for the private-message
// stub opened from the team roster.
func (m *Model) SetNotice(notice string) {
	m.status = notice
	m.isErr = false
}

// Update handles messages for the inbox.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.mode == modeCompose {
		return m.updateCompose(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.messages)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Select):
		if m.cursor < len(m.messages) {
			if err := m.store.MarkAsRead(m.messages[m.cursor].ID); err != nil {
				m.status = err.Error()
				m.isErr = true
			}
			m.Refresh()
		}

	case key.Matches(keyMsg, m.keys.MarkAllRead):
		if err := m.store.MarkAllAsRead(); err != nil {
			m.status = err.Error()
			m.isErr = true
		}
		m.Refresh()

	case key.Matches(keyMsg, m.keys.Compose):
		m.mode = modeCompose
		m.input.SetValue("")
		return m, m.input.Focus()
	}

	return m, nil
}

func (m Model) updateCompose(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.mode = modeList
			return m, nil

		case "enter":
			content := strings.TrimSpace(m.input.Value())
			if content == "" {
				m.status = "Message content is required."
				m.isErr = true
				return m, nil
			}
			if _, err := m.store.SendToAdmin(content); err != nil {
				m.status = err.Error()
				m.isErr = true
			} else {
				m.status = "Message sent to administrator."
				m.isErr = false
			}
			m.mode = modeList
			m.Refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the inbox.
func (m Model) View() string {
	title := fmt.Sprintf("Messages (%d unread)", m.store.UnreadCount())
	content := theme.TitleStyle.Render(title) + "\n\n"

	if len(m.messages) == 0 {
		content += theme.HelpStyle.Render("Your inbox is empty.") + "\n"
	}

	for i, msg := range m.messages {
		marker := " "
		if !msg.Read {
			marker = theme.UnreadBadgeStyle.Render("●")
		}
		header := fmt.Sprintf("%s %s %s  %s",
			marker,
			theme.MessageTypeStyle(msg.Type).Render(msg.Type),
			msg.Sender,
			msg.Timestamp.Format("2006-01-02 15:04"),
		)

		line := header + "\n" + theme.HelpStyle.Render("  "+msg.Content)
		if i == m.cursor && m.mode == modeList {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		content += line + "\n"
	}

	if m.mode == modeCompose {
		content += "\n" + theme.TitleStyle.Render("Contact Administrator") + "\n"
		content += m.input.View() + "\n"
	}

	if m.status != "" {
		style := theme.SuccessStyle
		if m.isErr {
			style = theme.ErrorStyle
		}
		content += "\n" + style.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// Hints returns the status bar hints for the current submode.
func (m Model) Hints() string {
	if m.mode == modeCompose {
		return "enter send | esc cancel"
	}
	return "j/k move | enter mark read | A mark all read | n contact admin | esc dashboard"
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = min(width-6, 60)
}
