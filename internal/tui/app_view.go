package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if !m.seenWindowSize {
		return ""
	}

	// Full-screen surfaces without app chrome.
	switch {
	case m.view == viewLogin && m.modal == modalNone:
		return m.withFooter(m.renderLogin())
	case m.view == viewSignup:
		return m.withFooter(m.renderForm())
	}

	header := m.renderHeader()
	body := m.renderBody()

	if m.modal != modalNone {
		body = m.renderModal()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		m.renderFooter(),
	)
}

func (m appModel) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Render(viewTitle(m.view))
	who := ""
	if m.sess.IsAuthenticated() {
		name := strings.TrimSpace(m.sess.UserInfo.FirstName + " " + m.sess.UserInfo.LastName)
		who = styleMuted().Render(name + " (" + m.sess.UserType + ")")
	}
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(who) - 2
	if gap < 1 {
		gap = 1
	}
	line := " " + title + strings.Repeat(" ", gap) + who
	return line + "\n"
}

func (m appModel) renderBody() string {
	switch m.view {
	case viewDashboard:
		return m.renderDashboard()
	case viewUsers:
		return m.renderListScreen(entityUsers)
	case viewCategories:
		return m.renderListScreen(entityCategories)
	case viewTasks:
		return m.renderListScreen(entityTasks)
	default:
		return ""
	}
}

func (m appModel) renderModal() string {
	switch m.modal {
	case modalConfirmDelete:
		return m.renderConfirmDelete()
	case modalForm:
		return m.renderForm()
	case modalSearch:
		return m.renderSearchModal()
	case modalCategoryFilter:
		return m.renderPickerModal("Filter by Category")
	case modalUserFilter:
		return m.renderPickerModal("Filter by Assignee")
	case modalTaskDetail:
		return m.renderTaskDetail()
	default:
		return ""
	}
}

func (m appModel) renderFooter() string {
	if m.toastText != "" {
		return " " + m.renderToast()
	}
	return " " + styleMuted().Render(m.keyHints())
}

// withFooter pins the toast/hint line under a full-screen surface.
func (m appModel) withFooter(surface string) string {
	return lipgloss.JoinVertical(lipgloss.Left, surface, m.renderFooter())
}

func (m appModel) keyHints() string {
	if m.modal != modalNone {
		switch m.modal {
		case modalConfirmDelete:
			return "tab: focus   enter: select   esc: cancel"
		case modalForm:
			return "tab: field   ctrl+s: save   esc: cancel"
		case modalTaskDetail:
			return "esc: close"
		default:
			return "enter: apply   esc: cancel"
		}
	}
	switch m.view {
	case viewLogin:
		return "enter: sign in   ctrl+s: create account   ctrl+c: quit"
	case viewSignup:
		return "tab: field   ctrl+s: submit   esc: back"
	case viewDashboard:
		return "enter: open   L: logout   q: quit"
	case viewTasks:
		hints := "/: search   ◂ ▸: page   z: page size   a: add   enter: view   e: edit   f: filter"
		if m.sess.IsAdmin() {
			hints += "   F: assignee   d: delete"
		}
		return hints + "   esc: back"
	default:
		return "/: search   ◂ ▸: page   z: page size   a: add   enter: edit   d: delete   esc: back"
	}
}
