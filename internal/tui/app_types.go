package tui

import (
	"github.com/adnan116/todo-list-app-client/internal/api"
	"github.com/adnan116/todo-list-app-client/internal/listctl"
	"github.com/adnan116/todo-list-app-client/internal/model"
)

type view int

const (
	viewLogin view = iota
	viewSignup
	viewDashboard
	viewUsers
	viewCategories
	viewTasks
)

func viewTitle(v view) string {
	switch v {
	case viewLogin:
		return "Login"
	case viewSignup:
		return "Create Account"
	case viewDashboard:
		return "Dashboard"
	case viewUsers:
		return "User List"
	case viewCategories:
		return "Task Category List"
	case viewTasks:
		return "Task List"
	default:
		return ""
	}
}

// protectedView reports whether entering v requires an authenticated
// session. The guard re-runs on every navigation, not just once globally.
func protectedView(v view) bool {
	return v != viewLogin && v != viewSignup
}

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmDelete
	modalForm
	modalSearch
	modalCategoryFilter
	modalUserFilter
	modalTaskDetail
)

// entity selects which list controller a message or flow belongs to.
type entity int

const (
	entityUsers entity = iota
	entityCategories
	entityTasks
)

func entityLabel(e entity) string {
	switch e {
	case entityUsers:
		return "user"
	case entityCategories:
		return "task category"
	case entityTasks:
		return "task"
	default:
		return ""
	}
}

// Messages settled by tea commands. Page messages carry the listctl
// generation so stale responses are dropped.

type loginDoneMsg struct {
	res api.LoginResult
	err error
}

type signupDoneMsg struct{ err error }

type usersPageMsg struct {
	gen  int
	page listctl.Page[model.User]
	err  error
}

type categoriesPageMsg struct {
	gen  int
	page listctl.Page[model.TaskCategory]
	err  error
}

type tasksPageMsg struct {
	gen  int
	page listctl.Page[model.Task]
	err  error
}

// formOptionsMsg delivers the select options (roles, categories, assignees)
// needed by forms and task filters.
type formOptionsMsg struct {
	roles      []model.Role
	categories []model.CategorySummary
	users      []model.UserSummary
	err        error
}

// deleteDoneMsg settles a confirmed delete. The list always re-fetches
// afterwards, success or not.
type deleteDoneMsg struct {
	ent entity
	err error
}

// formSubmitDoneMsg settles an add/update submission.
type formSubmitDoneMsg struct {
	ent     entity
	editing bool
	err     error
}
