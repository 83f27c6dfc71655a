package tui

import (
	"fmt"
	"strings"

	"github.com/adnan116/todo-list-app-client/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type userItem struct {
	user model.User
}

func (i userItem) FilterValue() string { return i.user.FullName() + " " + i.user.Email }
func (i userItem) Title() string {
	name := strings.TrimSpace(i.user.FullName())
	if name == "" {
		name = "(unnamed user)"
	}
	if i.user.Role != nil && i.user.Role.RoleName != "" {
		return name + "  " + styleMuted().Render("["+i.user.Role.RoleName+"]")
	}
	return name
}
func (i userItem) Description() string {
	parts := []string{i.user.Email}
	if i.user.PhoneNumber != "" {
		parts = append(parts, i.user.PhoneNumber)
	}
	if i.user.DOB != "" {
		parts = append(parts, "born "+formatDate(i.user.DOB))
	}
	return strings.Join(parts, "  ·  ")
}

type categoryItem struct {
	category model.TaskCategory
}

func (i categoryItem) FilterValue() string { return i.category.CategoryName }
func (i categoryItem) Title() string {
	if strings.TrimSpace(i.category.CategoryName) == "" {
		return "(unnamed category)"
	}
	return i.category.CategoryName
}
func (i categoryItem) Description() string {
	d := strings.TrimSpace(i.category.Description)
	if d == "" {
		return i.category.ID
	}
	return d
}

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Title }
func (i taskItem) Title() string {
	t := strings.TrimSpace(i.task.Title)
	if t == "" {
		t = "(unnamed task)"
	}
	return t + "  " + statusBadge(i.task.Status)
}
func (i taskItem) Description() string {
	parts := []string{}
	if i.task.Category.CategoryName != "" {
		parts = append(parts, i.task.Category.CategoryName)
	}
	if name := strings.TrimSpace(i.task.Assignee.FullName()); name != "" {
		parts = append(parts, name)
	}
	if i.task.Deadline != "" {
		parts = append(parts, formatDeadlineLabel(i.task.Deadline))
	}
	if len(parts) == 0 {
		return i.task.ID
	}
	return strings.Join(parts, "  ·  ")
}

func statusBadge(status string) string {
	switch status {
	case model.StatusComplete:
		return styleSuccess().Render("[" + status + "]")
	case model.StatusCancelled, model.StatusClose:
		return styleError().Render("[" + status + "]")
	default:
		return styleMuted().Render("[" + status + "]")
	}
}

// navItem is one dashboard navigation entry, a permitted feature under its
// category heading.
type navItem struct {
	feature  string
	category string
}

func (i navItem) FilterValue() string { return i.feature }
func (i navItem) Title() string       { return featureNavLabel(i.feature) }
func (i navItem) Description() string { return i.category }

// pickItem is one entry of a filter picker (category or assignee). An empty
// id is the "All" entry that clears the filter.
type pickItem struct {
	id    string
	label string
}

func (i pickItem) FilterValue() string { return i.label }
func (i pickItem) Title() string       { return i.label }
func (i pickItem) Description() string {
	if i.id == "" {
		return "clear filter"
	}
	return i.id
}

func newList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// The app renders its own breadcrumb, pager and footer; keep list chrome
	// minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// Server-side search replaces the built-in fuzzy filter.
	l.SetFilteringEnabled(false)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")

	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)

	return l
}

func userListItems(users []model.User) []list.Item {
	items := make([]list.Item, 0, len(users))
	for _, u := range users {
		items = append(items, userItem{user: u})
	}
	return items
}

func categoryListItems(cats []model.TaskCategory) []list.Item {
	items := make([]list.Item, 0, len(cats))
	for _, c := range cats {
		items = append(items, categoryItem{category: c})
	}
	return items
}

func taskListItems(tasks []model.Task) []list.Item {
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskItem{task: t})
	}
	return items
}

func pagerLine(page, totalPages, totalCount int, label string) string {
	return styleMuted().Render(fmt.Sprintf("page %d/%d  ·  %s %s", page, totalPages, fmtInt(totalCount), label))
}
