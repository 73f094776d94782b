// Package app wires the views into the root Bubble Tea model and owns
// navigation between them.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmai/taskboard/internal/auth"
	"github.com/lmai/taskboard/internal/keys"
	"github.com/lmai/taskboard/internal/storage"
	"github.com/lmai/taskboard/internal/store"
	"github.com/lmai/taskboard/internal/ui"
	"github.com/lmai/taskboard/internal/ui/dashboard"
	"github.com/lmai/taskboard/internal/ui/diagnostic"
	"github.com/lmai/taskboard/internal/ui/inbox"
	"github.com/lmai/taskboard/internal/ui/login"
	"github.com/lmai/taskboard/internal/ui/search"
	"github.com/lmai/taskboard/internal/ui/settings"
	"github.com/lmai/taskboard/internal/ui/taskform"
	"github.com/lmai/taskboard/internal/ui/tasklist"
	"github.com/lmai/taskboard/internal/ui/teamview"
)

// ViewState identifies the active view.
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewDashboard
	ViewTaskCreate
	ViewTaskSettings
	ViewTasks
	ViewTeam
	ViewSearch
	ViewMessages
	ViewDiagnostic
)

// Model is the root application model.
type Model struct {
	state  ViewState
	layout ui.Layout
	keys   *keys.KeyMap

	tasks    *store.TaskStore
	messages *store.MessageStore

	login      login.Model
	dashboard  dashboard.Model
	taskform   taskform.Model
	settings   settings.Model
	tasklist   tasklist.Model
	inbox      inbox.Model
	team       teamview.Model
	search     search.Model
	diagnostic diagnostic.Model
}

// New creates the root model with all views constructed against the
// shared stores.
func New(local *storage.Local, tasks *store.TaskStore, messages *store.MessageStore, a *auth.Authenticator, configPath string) Model {
	const w, h = 80, 24

	layout := ui.NewLayout(w, h)
	ch := layout.ContentHeight()

	return Model{
		state:      ViewLogin,
		layout:     layout,
		keys:       keys.DefaultKeyMap(),
		tasks:      tasks,
		messages:   messages,
		login:      login.New(a, w, ch),
		dashboard:  dashboard.New(w, ch),
		taskform:   taskform.New(w, ch),
		settings:   settings.New(tasks, w, ch),
		tasklist:   tasklist.New(tasks, w, ch),
		inbox:      inbox.New(messages, w, ch),
		team:       teamview.New(w, ch),
		search:     search.New(w, ch),
		diagnostic: diagnostic.New(local, tasks, messages, configPath, w, ch),
	}
}

// Init starts the sign-in view.
func (m Model) Init() tea.Cmd {
	return m.login.Init()
}

// Update routes messages to the active view and handles navigation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

	case login.AuthenticatedMsg:
		return m.openDashboard()

	case dashboard.NavigateMsg:
		return m.navigate(msg.Target)

	case taskform.FilesConfirmedMsg:
		m.state = ViewTaskSettings
		return m, m.settings.StartCreate(msg.Files)

	case taskform.CancelMsg, settings.CancelMsg:
		return m.openDashboard()

	case settings.SavedMsg:
		m.state = ViewTasks
		m.tasklist.Start()
		return m, nil

	case tasklist.EditTaskMsg:
		m.state = ViewTaskSettings
		return m, m.settings.StartEdit(msg.Task)

	case tasklist.BackMsg, teamview.BackMsg, search.BackMsg, diagnostic.BackMsg:
		return m.openDashboard()

	case inbox.BackMsg:
		return m.openDashboard()

	case teamview.MessageMemberMsg:
		m.state = ViewMessages
		m.inbox.Start()
		m.inbox.SetNotice(fmt.Sprintf("Opening private message to %s...", msg.Member.Name))
		return m, nil
	}

	return m.updateActive(msg)
}

// updateActive forwards a message to the view that currently has focus.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case ViewLogin:
		m.login, cmd = m.login.Update(msg)
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewTaskCreate:
		m.taskform, cmd = m.taskform.Update(msg)
	case ViewTaskSettings:
		m.settings, cmd = m.settings.Update(msg)
	case ViewTasks:
		m.tasklist, cmd = m.tasklist.Update(msg)
	case ViewTeam:
		m.team, cmd = m.team.Update(msg)
	case ViewSearch:
		m.search, cmd = m.search.Update(msg)
	case ViewMessages:
		m.inbox, cmd = m.inbox.Update(msg)
	case ViewDiagnostic:
		m.diagnostic, cmd = m.diagnostic.Update(msg)
	}

	return m, cmd
}

// navigate opens the dashboard destination the user picked.
func (m Model) navigate(target dashboard.Target) (tea.Model, tea.Cmd) {
	switch target {
	case dashboard.TargetCreateTask:
		m.state = ViewTaskCreate
		return m, m.taskform.Start()

	case dashboard.TargetSearch:
		m.state = ViewSearch
		return m, m.search.Start()

	case dashboard.TargetManageTasks:
		m.state = ViewTasks
		m.tasklist.Start()
		return m, nil

	case dashboard.TargetTeam:
		m.state = ViewTeam
		return m, nil

	case dashboard.TargetMessages:
		m.state = ViewMessages
		m.inbox.Start()
		return m, nil

	case dashboard.TargetDiagnostic:
		m.state = ViewDiagnostic
		return m, nil

	case dashboard.TargetSignOut:
		m.state = ViewLogin
		return m, m.login.Reset()
	}

	return m, nil
}

// openDashboard switches to the dashboard with a fresh unread badge.
func (m Model) openDashboard() (tea.Model, tea.Cmd) {
	m.state = ViewDashboard
	m.dashboard.SetUnread(m.messages.UnreadCount())
	return m, nil
}

// View renders the header, the active view, and the status bar.
func (m Model) View() string {
	right := ""
	if m.state != ViewLogin {
		if unread := m.messages.UnreadCount(); unread > 0 {
			right = fmt.Sprintf("%d unread ", unread)
		}
	}
	header := m.layout.RenderHeader(" Task Management System", right)

	var content, hints string
	switch m.state {
	case ViewLogin:
		content, hints = m.login.View(), m.login.Hints()
	case ViewDashboard:
		content, hints = m.dashboard.View(), m.dashboard.Hints()
	case ViewTaskCreate:
		content, hints = m.taskform.View(), m.taskform.Hints()
	case ViewTaskSettings:
		content, hints = m.settings.View(), m.settings.Hints()
	case ViewTasks:
		content, hints = m.tasklist.View(), m.tasklist.Hints()
	case ViewTeam:
		content, hints = m.team.View(), m.team.Hints()
	case ViewSearch:
		content, hints = m.search.View(), m.search.Hints()
	case ViewMessages:
		content, hints = m.inbox.View(), m.inbox.Hints()
	case ViewDiagnostic:
		content, hints = m.diagnostic.View(), m.diagnostic.Hints()
	}

	return m.layout.RenderWithFrame(header, content, m.layout.RenderStatusBar(hints))
}

// setSize propagates the new terminal dimensions to every view.
func (m *Model) setSize(width, height int) {
	m.layout = ui.NewLayout(width, height)
	ch := m.layout.ContentHeight()

	m.login.SetSize(width, ch)
	m.dashboard.SetSize(width, ch)
	m.taskform.SetSize(width, ch)
	m.settings.SetSize(width, ch)
	m.tasklist.SetSize(width, ch)
	m.inbox.SetSize(width, ch)
	m.team.SetSize(width, ch)
	m.search.SetSize(width, ch)
	m.diagnostic.SetSize(width, ch)
}
