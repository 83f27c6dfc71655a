package tui

import (
	"strings"

	"github.com/adnan116/todo-list-app-client/internal/perm"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// featureNavLabel renders a feature code as a navigation entry ("ADD_USER"
// -> "Add User").
func featureNavLabel(feature string) string {
	words := strings.Split(strings.ToLower(feature), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// featureTarget maps a granted feature to the view it opens and whether it
// should land straight in the add form.
func featureTarget(feature string) (v view, openAdd bool) {
	switch feature {
	case perm.FeatureAddUser:
		return viewUsers, true
	case perm.FeatureGetUser:
		return viewUsers, false
	case perm.FeatureAddCategory:
		return viewCategories, true
	case perm.FeatureGetCategory:
		return viewCategories, false
	case perm.FeatureAddTask:
		return viewTasks, true
	case perm.FeatureGetTask:
		return viewTasks, false
	default:
		return viewDashboard, false
	}
}

// refreshNav rebuilds the dashboard navigation from the session's permitted
// features. Groups and items keep the fixed declaration order.
func (m *appModel) refreshNav() {
	var items []list.Item
	for _, sec := range perm.VisibleSections(m.sess.PermittedFeatures) {
		label := perm.CategoryLabel(sec.Category)
		for _, f := range sec.Features {
			items = append(items, navItem{feature: f, category: label})
		}
	}
	m.navList.SetItems(items)
	if len(items) > 0 {
		m.navList.Select(0)
	}
}

func (m appModel) renderDashboard() string {
	name := strings.TrimSpace(m.sess.UserInfo.FirstName + " " + m.sess.UserInfo.LastName)
	if name == "" {
		name = m.sess.UserInfo.Email
	}

	greeting := lipgloss.NewStyle().Bold(true).Render("Welcome, " + name)
	tagline := styleMuted().Render("Let's Make Today Productive")

	var body string
	if len(m.navList.Items()) == 0 {
		body = styleMuted().Render("No features granted to this account.")
	} else {
		body = m.navList.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		greeting,
		tagline,
		"",
		body,
	)
}
