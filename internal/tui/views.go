package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderForm draws the shared add/update form. The same renderer backs the
// modal forms and the full-screen signup view.
func (m appModel) renderForm() string {
	if m.form == nil {
		return ""
	}
	bodyW := modalBodyWidth(m.width)

	var lines []string
	for i, fd := range m.form.Fields() {
		label := fd.Label
		if fd.Required {
			label += " *"
		}
		labelStyle := styleMuted()
		if i == m.formFocus {
			labelStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		}
		lines = append(lines, labelStyle.Render(label))

		if fd.Options != nil {
			cur := m.form.RawValue(fd.Name)
			display := "(select)"
			for _, o := range fd.Options {
				if o.Value == cur {
					display = o.Label
					break
				}
			}
			if i == m.formFocus {
				display = "◂ " + display + " ▸"
			}
			lines = append(lines, renderInputLine(bodyW, display))
		} else {
			lines = append(lines, renderInputLine(bodyW, m.formInputs[i].View()))
		}

		if msg := m.form.FieldError(fd.Name); msg != "" {
			lines = append(lines, styleFieldError().Render(msg))
		}
	}

	lines = append(lines, "", renderHelpLine(bodyW, "tab/shift+tab: field   ◂ ▸: choose   ctrl+s: save   esc: cancel"))

	box := renderModalBox(m.width, m.formTitle, strings.Join(lines, "\n"))
	return placeCentered(m.width, m.height, box)
}

func (m appModel) renderSearchModal() string {
	bodyW := modalBodyWidth(m.width)
	body := joinModalLines(
		renderInputLine(bodyW, m.searchInput.View()),
		"",
		renderHelpLine(bodyW, "enter: search   esc: cancel"),
	)
	box := renderModalBox(m.width, "Search", body)
	return placeCentered(m.width, m.height, box)
}

func (m appModel) renderPickerModal(title string) string {
	bodyW := modalBodyWidth(m.width)
	m.pickList.SetSize(bodyW, 12)
	body := joinModalLines(
		m.pickList.View(),
		"",
		renderHelpLine(bodyW, "enter: apply   esc: cancel"),
	)
	box := renderModalBox(m.width, title, body)
	return placeCentered(m.width, m.height, box)
}

func (m appModel) renderConfirmDelete() string {
	label := entityLabel(m.deleteEntity())
	body := "Are you sure you want to delete this " + label + "?"
	box := renderConfirmModal(m.width, "Confirm Delete", body, "Delete", "Cancel", m.confirmFocus)
	return placeCentered(m.width, m.height, box)
}

// deleteEntity reports which entity a pending delete confirmation belongs
// to (at most one controller confirms at a time).
func (m appModel) deleteEntity() entity {
	switch {
	case m.users.ConfirmingDelete():
		return entityUsers
	case m.cats.ConfirmingDelete():
		return entityCategories
	default:
		return entityTasks
	}
}

// renderListScreen draws one entity listing: state line, rows, pager.
func (m appModel) renderListScreen(e entity) string {
	var (
		lst        func() string
		page       int
		totalPages int
		totalCount int
		empty      string
		label      string
	)
	switch e {
	case entityUsers:
		lst = m.usersList.View
		page = m.users.Query().Page
		totalPages = m.users.TotalPages()
		totalCount = m.users.TotalCount()
		empty = "No users found."
		label = "users"
	case entityCategories:
		lst = m.catsList.View
		page = m.cats.Query().Page
		totalPages = m.cats.TotalPages()
		totalCount = m.cats.TotalCount()
		empty = "No task categories found."
		label = "categories"
	default:
		lst = m.tasksList.View
		page = m.tasks.Query().Page
		totalPages = m.tasks.TotalPages()
		totalCount = m.tasks.TotalCount()
		empty = "No tasks found."
		label = "tasks"
	}

	var parts []string
	if line := m.renderQueryLine(e); line != "" {
		parts = append(parts, line)
	}
	if m.loading {
		parts = append(parts, styleMuted().Render(m.spin.View()+" loading"))
	}
	if totalCount == 0 && !m.loading {
		parts = append(parts, styleMuted().Render(empty))
	} else {
		parts = append(parts, lst())
	}
	parts = append(parts, pagerLine(page, totalPages, totalCount, label))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderQueryLine summarizes the active search and filters above a list.
func (m appModel) renderQueryLine(e entity) string {
	var q = m.queryFor(e)
	var parts []string
	if q.SearchText != "" {
		parts = append(parts, `search: "`+q.SearchText+`"`)
	}
	if e == entityTasks {
		if id := q.Filter("categoryId"); id != "" {
			parts = append(parts, "category: "+m.categoryName(id))
		}
		if id := q.Filter("userId"); id != "" && m.sess.IsAdmin() {
			parts = append(parts, "assignee: "+m.assigneeName(id))
		}
	}
	parts = append(parts, "per page: "+fmtInt(q.PageSize))
	return styleMuted().Render(strings.Join(parts, "   "))
}

func (m appModel) categoryName(id string) string {
	for _, c := range m.allCategories {
		if c.ID == id {
			return c.CategoryName
		}
	}
	return id
}

func (m appModel) assigneeName(id string) string {
	for _, u := range m.allUsers {
		if u.ID == id {
			if name := u.FullName(); name != "" {
				return name
			}
			break
		}
	}
	return id
}
