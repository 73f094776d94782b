package login

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmai/taskboard/internal/auth"
	"github.com/lmai/taskboard/internal/theme"
)

// AuthenticatedMsg is dispatched when the simulated sign-in completes
// and the dashboard should open.
type AuthenticatedMsg struct{}

type mode int

const (
	modeSignIn mode = iota
	modeRegister
	modeReset
)

// flowDoneMsg fires when a deferred flow completion arrives. If the
// user has already navigated elsewhere the message is simply dropped.
type flowDoneMsg struct {
	flow mode
}

// formBindings holds form field values on the heap so that huh's
// Value() pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	email    string
	password string
	confirm  string
}

// Model is the Bubble Tea model for the sign-in view, including the
// registration and forgot-password flows.
type Model struct {
	auth   *auth.Authenticator
	form   *huh.Form
	fb     *formBindings
	mode   mode
	busy   bool
	status string
	isErr  bool
	width  int
	height int
}

// New creates the sign-in view.
func New(a *auth.Authenticator, width, height int) Model {
	m := Model{
		auth:   a,
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
	m.form = m.buildForm()
	return m
}

// Init starts the underlying form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Reset returns the view to a blank sign-in form, used after sign-out.
func (m *Model) Reset() tea.Cmd {
	m.mode = modeSignIn
	m.busy = false
	m.status = ""
	*m.fb = formBindings{}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the sign-in view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flowDoneMsg:
		if !m.busy || msg.flow != m.mode {
			return m, nil
		}
		return m.completeFlow()

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+r":
			if m.mode == modeSignIn {
				return m.switchMode(modeRegister)
			}
		case "ctrl+f":
			if m.mode == modeSignIn {
				return m.switchMode(modeReset)
			}
		case "esc":
			if m.mode != modeSignIn {
				return m.switchMode(modeSignIn)
			}
		}
	}

	if m.form == nil || m.busy {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		submitCmd := m.submit()
		return m, submitCmd
	}
	if m.form.State == huh.StateAborted {
		return m.switchMode(modeSignIn)
	}

	return m, cmd
}

// submit validates the current flow's fields and starts the deferred
// completion on success.
func (m *Model) submit() tea.Cmd {
	var (
		done <-chan struct{}
		err  error
	)

	switch m.mode {
	case modeSignIn:
		done, err = m.auth.Login(m.fb.email, m.fb.password)
	case modeRegister:
		done, err = m.auth.Register(m.fb.email, m.fb.password, m.fb.confirm)
	case modeReset:
		done, err = m.auth.ResetPassword(m.fb.email, m.fb.password, m.fb.confirm)
	}

	if err != nil {
		m.status = err.Error()
		m.isErr = true
		m.form = m.buildForm()
		return m.form.Init()
	}

	m.busy = true
	m.status = ""
	flow := m.mode
	return func() tea.Msg {
		<-done
		return flowDoneMsg{flow: flow}
	}
}

// completeFlow finishes the flow whose deferred completion just fired.
func (m Model) completeFlow() (Model, tea.Cmd) {
	m.busy = false

	switch m.mode {
	case modeSignIn:
		return m, func() tea.Msg { return AuthenticatedMsg{} }

	case modeRegister:
		m.status = "Registration successful! You can now sign in."
	case modeReset:
		m.status = "Password reset successful! Please login with your new password."
	}

	m.isErr = false
	m.mode = modeSignIn
	m.fb.password = ""
	m.fb.confirm = ""
	m.form = m.buildForm()
	return m, m.form.Init()
}

// switchMode rebuilds the form for the requested flow.
func (m Model) switchMode(target mode) (Model, tea.Cmd) {
	m.mode = target
	m.status = ""
	m.fb.password = ""
	m.fb.confirm = ""
	m.form = m.buildForm()
	return m, m.form.Init()
}

func (m *Model) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&m.fb.email),
	}

	passwordTitle := "Password"
	if m.mode == modeReset {
		passwordTitle = "New Password"
	}
	fields = append(fields,
		huh.NewInput().
			Title(passwordTitle).
			EchoMode(huh.EchoModePassword).
			Value(&m.fb.password),
	)

	if m.mode != modeSignIn {
		fields = append(fields,
			huh.NewInput().
				Title("Confirm Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.confirm),
		)
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithWidth(min(m.width-4, 60)).
		WithShowHelp(false)
}

// View renders the sign-in view.
func (m Model) View() string {
	title := "Sign In"
	switch m.mode {
	case modeRegister:
		title = "Create Account"
	case modeReset:
		title = "Reset Password"
	}

	var body string
	switch {
	case m.busy && m.mode == modeSignIn:
		body = "Signing in..."
	case m.busy && m.mode == modeRegister:
		body = "Creating account..."
	case m.busy:
		body = "Resetting password..."
	default:
		body = m.form.View()
	}

	content := theme.TitleStyle.Render("Task Management System") + "\n" +
		theme.TitleStyle.Render(title) + "\n" + body

	if m.status != "" {
		style := theme.SuccessStyle
		if m.isErr {
			style = theme.ErrorStyle
		}
		content += "\n\n" + style.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// Hints returns the status bar hints for the current flow.
func (m Model) Hints() string {
	if m.mode == modeSignIn {
		return "enter sign in | ctrl+r register | ctrl+f forgot password | ctrl+c quit"
	}
	return "enter submit | esc back to sign in | ctrl+c quit"
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
