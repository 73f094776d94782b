// Package tasklist implements the Manage My Tasks view: the task
// collection with status cycling, deletion, editing, and a per-task
// comment thread.
package tasklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmai/taskboard/internal/keys"
	"github.com/lmai/taskboard/internal/model"
	"github.com/lmai/taskboard/internal/store"
	"github.com/lmai/taskboard/internal/theme"
)

// BackMsg is dispatched when the user leaves the task list.
type BackMsg struct{}

// EditTaskMsg is dispatched when the user opens a task in the settings
// form.
type EditTaskMsg struct {
	Task model.Task
}

type submode int

const (
	modeList submode = iota
	modeComments
)

// formBindings holds comment form values on the heap so that huh's
// Value() pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	author  string
	email   string
	content string
}

// Model is the task list view.
type Model struct {
	store  *store.TaskStore
	keys   *keys.KeyMap
	tasks  []model.Task
	cursor int
	mode   submode

	form   *huh.Form
	fb     *formBindings
	thread model.Task

	status string
	width  int
	height int
}

// New creates the task list view.
func New(s *store.TaskStore, width, height int) Model {
	return Model{
		store:  s,
		keys:   keys.DefaultKeyMap(),
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Refresh reloads the task snapshot from the store.
func (m *Model) Refresh() {
	m.tasks = m.store.Tasks()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Start resets the view and loads the current collection.
func (m *Model) Start() {
	m.mode = modeList
	m.status = ""
	m.Refresh()
}

// Update handles messages for the task list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.mode == modeComments {
		return m.updateComments(msg)
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
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.CycleStatus):
		if task, ok := m.selected(); ok {
			next := nextStatus(task.Status)
			if err := m.store.UpdateTask(task.ID, store.TaskUpdate{Status: &next}); err != nil {
				m.status = err.Error()
			} else {
				m.status = ""
			}
			m.Refresh()
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if task, ok := m.selected(); ok {
			if err := m.store.DeleteTask(task.ID); err != nil {
				m.status = err.Error()
			} else {
				m.status = ""
			}
			m.Refresh()
		}

	case key.Matches(keyMsg, m.keys.Edit):
		if task, ok := m.selected(); ok {
			m.store.SetEditingTask(&task)
			return m, func() tea.Msg { return EditTaskMsg{Task: task} }
		}

	case key.Matches(keyMsg, m.keys.Comment), key.Matches(keyMsg, m.keys.Select):
		if task, ok := m.selected(); ok {
			m.mode = modeComments
			m.thread = task
			*m.fb = formBindings{}
			m.form = m.buildCommentForm()
			return m, m.form.Init()
		}
	}

	return m, nil
}

func (m Model) updateComments(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		m.mode = modeList
		m.Refresh()
		return m, nil
	}

	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		err := m.store.AddComment(m.thread.ID, store.CommentDraft{
			Author:      m.fb.author,
			AuthorEmail: m.fb.email,
			Content:     m.fb.content,
		})
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}

		// Reload the thread so the new comment shows immediately.
		for _, t := range m.store.Tasks() {
			if t.ID == m.thread.ID {
				m.thread = t
				break
			}
		}
		*m.fb = formBindings{}
		m.form = m.buildCommentForm()
		return m, m.form.Init()
	}
	if m.form.State == huh.StateAborted {
		m.mode = modeList
		m.Refresh()
		return m, nil
	}

	return m, cmd
}

func (m *Model) buildCommentForm() *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Your Name").
			Value(&m.fb.author).
			Validate(required("Name")),
		huh.NewInput().
			Title("Your Email").
			Value(&m.fb.email).
			Validate(required("Email")),
		huh.NewText().
			Title("Comment").
			Value(&m.fb.content).
			Validate(required("Comment")),
	)).
		WithWidth(min(m.width-4, 60)).
		WithShowHelp(false)
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// selected returns the task under the cursor.
func (m Model) selected() (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return model.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// nextStatus cycles active -> pending -> completed -> active.
func nextStatus(s string) string {
	switch s {
	case model.TaskStatusActive:
		return model.TaskStatusPending
	case model.TaskStatusPending:
		return model.TaskStatusCompleted
	default:
		return model.TaskStatusActive
	}
}

// View renders the task list or the open comment thread.
func (m Model) View() string {
	if m.mode == modeComments {
		return m.viewComments()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	content := theme.TitleStyle.Render("Manage My Tasks") + "\n\n"

	if len(m.tasks) == 0 {
		content += theme.HelpStyle.Render("No tasks yet. Create one from the dashboard.") + "\n"
	}

	for i, t := range m.tasks {
		line := t.Name + " " + theme.StatusStyle(t.Status).Render(t.Status)
		details := []string{
			fmt.Sprintf("created %s", t.CreatedAt.Format("2006-01-02 15:04")),
		}
		if t.MaxMembers > 0 {
			details = append(details, fmt.Sprintf("max %d members", t.MaxMembers))
		}
		if t.Duration != "" {
			details = append(details, t.Duration)
		}
		if len(t.Comments) > 0 {
			details = append(details, fmt.Sprintf("%d comments", len(t.Comments)))
		}
		line += "\n" + theme.HelpStyle.Render("  "+strings.Join(details, " | "))

		if i == m.cursor {
			line = theme.SelectedItemStyle.Render(line)
		} else {
			line = theme.ListItemStyle.Render(line)
		}
		content += line + "\n"
	}

	if m.status != "" {
		content += "\n" + theme.ErrorStyle.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (m Model) viewComments() string {
	content := theme.TitleStyle.Render("Comments: "+m.thread.Name) + "\n\n"

	if len(m.thread.Comments) == 0 {
		content += theme.HelpStyle.Render("No comments yet.") + "\n"
	}
	for _, c := range m.thread.Comments {
		header := fmt.Sprintf("%s <%s> %s", c.Author, c.AuthorEmail, c.Timestamp.Format("2006-01-02 15:04"))
		content += theme.HelpStyle.Render(header) + "\n"
		content += theme.ListItemStyle.Render(c.Content) + "\n"
	}

	if m.form != nil {
		content += "\n" + m.form.View()
	}
	if m.status != "" {
		content += "\n" + theme.ErrorStyle.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// Hints returns the status bar hints for the current submode.
func (m Model) Hints() string {
	if m.mode == modeComments {
		return "tab move | enter submit comment | esc back to list"
	}
	return "j/k move | s status | e edit | d delete | c comments | esc dashboard"
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
