package tui

import (
	"context"
	"strings"

	"github.com/adnan116/todo-list-app-client/internal/api"
	"github.com/adnan116/todo-list-app-client/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *appModel) loginCmd() tea.Cmd {
	username := strings.TrimSpace(m.usernameInput.Value())
	password := m.passwordInput.Value()
	if username == "" || password == "" {
		m.loginErr = "Username and password are required."
		return nil
	}
	m.loginErr = ""
	m.loading = true
	client := m.client
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		res, err := client.Login(context.Background(), username, password)
		return loginDoneMsg{res: res, err: err}
	})
}

// applyLoginResult persists the session and lands on the dashboard.
func (m *appModel) applyLoginResult(res api.LoginResult) tea.Cmd {
	sess := session.Session{
		Token:             res.AccessToken,
		UserInfo:          res.UserInfo,
		UserType:          res.UserType,
		PermittedFeatures: res.PermittedFeatures,
	}
	if err := m.store.Save(context.Background(), sess); err != nil {
		return m.showToast("Could not persist the session: "+err.Error(), toastError)
	}
	m.sess = sess
	m.usernameInput.SetValue("")
	m.passwordInput.SetValue("")
	m.view = viewDashboard
	m.refreshNav()
	return m.showToast("Login successful!", toastSuccess)
}

func loginFailureText(err error) string {
	switch e := err.(type) {
	case *api.AuthError:
		if e.Message != "" {
			return e.Message
		}
		return "Login failed. Please check your credentials."
	case *api.ValidationError:
		return e.Error()
	case *api.UnexpectedError:
		if e.Message != "" {
			return e.Message
		}
	}
	return "Login failed."
}

func (m appModel) renderLogin() string {
	bodyW := modalBodyWidth(m.width)

	title := lipgloss.NewStyle().Bold(true).Render("Todo List Admin")
	sub := styleMuted().Render("Sign in to continue")

	lines := []string{
		title,
		sub,
		"",
		renderInputLine(bodyW, m.usernameInput.View()),
		renderInputLine(bodyW, m.passwordInput.View()),
	}
	if m.loginErr != "" {
		lines = append(lines, styleError().Render(m.loginErr))
	}
	if m.loading {
		lines = append(lines, styleMuted().Render(m.spin.View()+" signing in"))
	}
	lines = append(lines, "", renderHelpLine(bodyW, "enter: sign in   ctrl+s: create account   ctrl+c: quit"))

	box := renderModalBox(m.width, "Login", strings.Join(lines, "\n"))
	return placeCentered(m.width, m.height, box)
}
