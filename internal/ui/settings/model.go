// Package settings implements the task settings form: name and
// description, member cap, schedule, keywords and tags, and the
// per-user view/edit permission selectors. Saving creates or updates
// the task through the Task Store.
package settings

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmai/taskboard/internal/model"
	"github.com/lmai/taskboard/internal/schedule"
	"github.com/lmai/taskboard/internal/store"
	"github.com/lmai/taskboard/internal/team"
	"github.com/lmai/taskboard/internal/theme"
)

// SavedMsg is dispatched after the task has been created or updated.
type SavedMsg struct {
	TaskID string
}

// CancelMsg is dispatched when the user abandons the settings form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's
// Value() pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name        string
	description string
	maxMembers  string
	startDate   string
	startClock  string
	endDate     string
	endClock    string
	keywords    string
	tags        string
	viewPerms   []string
	editPerms   []string
	status      string
}

// Model is the task settings form view.
type Model struct {
	store  *store.TaskStore
	form   *huh.Form
	fb     *formBindings
	editID string
	files  []string
	status string
	width  int
	height int
}

// New creates the settings form view.
func New(s *store.TaskStore, width, height int) Model {
	return Model{
		store:  s,
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for a new task carrying the given
// attachments.
func (m *Model) StartCreate(files []string) tea.Cmd {
	m.editID = ""
	m.files = files
	m.status = ""
	*m.fb = formBindings{status: model.TaskStatusActive}
	m.form = m.buildForm(false)
	return m.form.Init()
}

// StartEdit initializes the form with an existing task's settings.
func (m *Model) StartEdit(task model.Task) tea.Cmd {
	m.editID = task.ID
	m.files = task.Files
	m.status = ""

	startDate, startClock := splitDateTime(task.StartDateTime)
	endDate, endClock := splitDateTime(task.EndDateTime)

	*m.fb = formBindings{
		name:        task.Name,
		description: task.Description,
		maxMembers:  strconv.Itoa(task.MaxMembers),
		startDate:   startDate,
		startClock:  startClock,
		endDate:     endDate,
		endClock:    endClock,
		keywords:    strings.Join(task.Keywords, ", "),
		tags:        strings.Join(task.Tags, ", "),
		viewPerms:   append([]string(nil), task.Permissions.View...),
		editPerms:   append([]string(nil), task.Permissions.Edit...),
		status:      task.Status,
	}
	m.form = m.buildForm(true)
	return m.form.Init()
}

// Update handles messages for the settings form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		saveCmd := m.handleSubmit()
		return m, saveCmd
	}
	if m.form.State == huh.StateAborted {
		m.store.ClearEditingTask()
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// handleSubmit builds the draft or update from the form bindings and
// persists it through the store.
func (m *Model) handleSubmit() tea.Cmd {
	maxMembers, _ := strconv.Atoi(m.fb.maxMembers)

	start := schedule.Combine(m.fb.startDate, m.fb.startClock)
	end := schedule.Combine(m.fb.endDate, m.fb.endClock)

	duration := ""
	if m.fb.startClock != "" && m.fb.endClock != "" {
		if d, err := schedule.Duration(m.fb.startClock, m.fb.endClock); err == nil {
			duration = d
		}
	}

	keywords := parseLabels(m.fb.keywords)
	tags := parseLabels(m.fb.tags)
	permissions := model.Permissions{
		View: append([]string(nil), m.fb.viewPerms...),
		Edit: append([]string(nil), m.fb.editPerms...),
	}

	var (
		taskID string
		err    error
	)
	if m.editID == "" {
		var created model.Task
		created, err = m.store.AddTask(store.TaskDraft{
			Name:          m.fb.name,
			Description:   m.fb.description,
			Files:         m.files,
			MaxMembers:    maxMembers,
			Duration:      duration,
			Keywords:      keywords,
			Tags:          tags,
			Status:        m.fb.status,
			StartDateTime: start,
			EndDateTime:   end,
			Permissions:   permissions,
		})
		taskID = created.ID
	} else {
		taskID = m.editID
		err = m.store.UpdateTask(m.editID, store.TaskUpdate{
			Name:          &m.fb.name,
			Description:   &m.fb.description,
			MaxMembers:    &maxMembers,
			Duration:      &duration,
			Keywords:      &keywords,
			Tags:          &tags,
			Status:        &m.fb.status,
			StartDateTime: &start,
			EndDateTime:   &end,
			Permissions:   &permissions,
		})
	}

	m.store.ClearEditingTask()

	if err != nil {
		m.status = err.Error()
		m.form = m.buildForm(m.editID != "")
		return m.form.Init()
	}

	return func() tea.Msg { return SavedMsg{TaskID: taskID} }
}

func (m *Model) buildForm(editMode bool) *huh.Form {
	memberOptions := make([]huh.Option[string], 0, len(team.Members()))
	for _, member := range team.Members() {
		label := fmt.Sprintf("%s (%s)", member.Name, member.Role)
		memberOptions = append(memberOptions, huh.NewOption(label, member.ID))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Task Name").
			Placeholder("What is the team working on?").
			Value(&m.fb.name).
			Validate(validateRequired("Task name")),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
		huh.NewInput().
			Title("Max Members").
			Placeholder("5").
			Value(&m.fb.maxMembers).
			Validate(validatePositiveInt),
		huh.NewInput().
			Title("Start Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.startDate).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title("Start Time").
			Placeholder("HH:MM (optional)").
			Value(&m.fb.startClock).
			Validate(validateOptionalClock),
		huh.NewInput().
			Title("End Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.endDate).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title("End Time").
			Placeholder("HH:MM (optional)").
			Value(&m.fb.endClock).
			Validate(validateOptionalClock),
		huh.NewInput().
			Title("Keywords").
			Placeholder("design, frontend, ...").
			Value(&m.fb.keywords),
		huh.NewInput().
			Title("Tags").
			Placeholder("urgent, high-priority, ...").
			Value(&m.fb.tags),
		huh.NewMultiSelect[string]().
			Title("View Permission").
			Options(memberOptions...).
			Value(&m.fb.viewPerms),
		huh.NewMultiSelect[string]().
			Title("Edit Permission").
			Options(memberOptions...).
			Value(&m.fb.editPerms),
	}

	if editMode {
		fields = append(fields,
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Active", model.TaskStatusActive),
					huh.NewOption("Pending", model.TaskStatusPending),
					huh.NewOption("Completed", model.TaskStatusCompleted),
				).
				Value(&m.fb.status),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithWidth(min(m.width-4, 70)).
		WithHeight(m.height - 4).
		WithShowHelp(false)
}

// View renders the settings form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	title := "Task Settings"
	if m.editID == "" {
		title = "New Task Settings"
	}

	content := theme.TitleStyle.Render(title) + "\n"
	if len(m.files) > 0 {
		content += theme.HelpStyle.Render("Attachments: "+strings.Join(m.files, ", ")) + "\n"
	}
	content += "\n" + m.form.View()

	if m.status != "" {
		content += "\n" + theme.ErrorStyle.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// Hints returns the status bar hints for the settings form.
func (m Model) Hints() string {
	return "tab/shift+tab move | enter submit | esc cancel"
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// splitDateTime splits a combined "YYYY-MM-DD HH:MM" string back into
// its date and clock parts. Either part may be absent.
func splitDateTime(s string) (date, clock string) {
	if s == "" {
		return "", ""
	}
	parts := strings.SplitN(s, " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	if schedule.ValidClock(parts[0]) {
		return "", parts[0]
	}
	return parts[0], ""
}

// parseLabels splits a comma-separated field into trimmed labels,
// dropping empties and exact duplicates.
func parseLabels(s string) []string {
	var labels []string
	for _, part := range strings.Split(s, ",") {
		label := strings.TrimSpace(part)
		if label == "" {
			continue
		}
		labels = model.AddLabel(labels, label)
	}
	return labels
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if !schedule.ValidDate(s) {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	if !schedule.ValidClock(s) {
		return fmt.Errorf("use HH:MM")
	}
	return nil
}
