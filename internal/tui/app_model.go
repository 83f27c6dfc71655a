package tui

import (
	"context"

	"github.com/adnan116/todo-list-app-client/internal/api"
	"github.com/adnan116/todo-list-app-client/internal/config"
	"github.com/adnan116/todo-list-app-client/internal/formctl"
	"github.com/adnan116/todo-list-app-client/internal/listctl"
	"github.com/adnan116/todo-list-app-client/internal/model"
	"github.com/adnan116/todo-list-app-client/internal/session"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type appModel struct {
	cfg    config.Config
	store  session.Store
	client *api.Client
	sess   session.Session

	width  int
	height int
	// The first WindowSizeMsg is initial sizing, not a user resize.
	seenWindowSize bool

	view  view
	modal modalKind

	// Login screen.
	usernameInput textinput.Model
	passwordInput textinput.Model
	loginFocus    int
	loginErr      string

	// Dashboard navigation (permitted features only).
	navList list.Model

	// One list controller per entity; the bubbles lists render the rows.
	users *listctl.Controller[model.User]
	cats  *listctl.Controller[model.TaskCategory]
	tasks *listctl.Controller[model.Task]

	usersList list.Model
	catsList  list.Model
	tasksList list.Model

	spin    spinner.Model
	loading bool

	// Select options for forms and task filters.
	roles         []model.Role
	allCategories []model.CategorySummary
	allUsers      []model.UserSummary

	// Form modal (add/update) and the full-screen signup form.
	form       *formctl.Form
	formEnt    entity
	formEditID string
	formTitle  string
	formFocus  int
	formInputs []textinput.Model

	searchInput textinput.Model

	// Filter pickers on the task list.
	pickList list.Model

	detailTask model.Task

	confirmFocus confirmModalFocus

	toastText string
	toastSev  toastSeverity
	toastSeq  int
}

func newAppModel(cfg config.Config, store session.Store) appModel {
	m := appModel{
		cfg:   cfg,
		store: store,
		view:  viewLogin,
	}

	m.client = api.New(cfg.BaseURL, api.WithTokenSource(func() string {
		sess, err := store.Load(context.Background())
		if err != nil {
			return ""
		}
		return sess.Token
	}))

	m.users = listctl.New[model.User](cfg.PageSize)
	m.cats = listctl.New[model.TaskCategory](cfg.PageSize)
	m.tasks = listctl.New[model.Task](cfg.PageSize)

	m.usersList = newList("Users")
	m.catsList = newList("Task Categories")
	m.tasksList = newList("Tasks")
	m.navList = newList("Navigation")

	m.pickList = newList("Filter")
	m.pickList.SetShowStatusBar(false)

	m.usernameInput = textinput.New()
	m.usernameInput.Placeholder = "Email"
	m.usernameInput.CharLimit = 120
	m.usernameInput.Width = 40
	m.passwordInput = textinput.New()
	m.passwordInput.Placeholder = "Password"
	m.passwordInput.CharLimit = 120
	m.passwordInput.Width = 40
	m.passwordInput.EchoMode = textinput.EchoPassword

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search"
	m.searchInput.CharLimit = 200
	m.searchInput.Width = 40

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot

	// Resume a persisted session when one exists; the guard still re-checks
	// on every navigation.
	if sess, err := store.Load(context.Background()); err == nil && sess.IsAuthenticated() {
		m.sess = sess
		m.view = viewDashboard
		m.refreshNav()
	}
	m.focusLogin(0)

	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *appModel) focusLogin(idx int) {
	m.loginFocus = idx
	if idx == 0 {
		m.usernameInput.Focus()
		m.passwordInput.Blur()
	} else {
		m.usernameInput.Blur()
		m.passwordInput.Focus()
	}
}

// guard implements the route guard: before entering any protected view,
// re-read the persisted session; without a token, land on login and render
// nothing protected. This check is advisory only — the API's 401 is the real
// boundary and is handled by forceLogout.
func (m *appModel) guard(v view) bool {
	if !protectedView(v) {
		return true
	}
	sess, err := m.store.Load(context.Background())
	if err != nil || !sess.IsAuthenticated() {
		m.sess = session.Session{}
		m.view = viewLogin
		m.modal = modalNone
		m.focusLogin(0)
		return false
	}
	m.sess = sess
	return true
}

// logout is the user-initiated variant of forceLogout.
func (m *appModel) logout() tea.Cmd {
	_ = m.store.Clear(context.Background())
	m.sess = session.Session{}
	m.view = viewLogin
	m.modal = modalNone
	m.focusLogin(0)
	return m.showToast("Logged out.", toastSuccess)
}

// forceLogout is the global 401 rule: clear every persisted session key and
// navigate to login.
func (m *appModel) forceLogout() tea.Cmd {
	_ = m.store.Clear(context.Background())
	m.sess = session.Session{}
	m.view = viewLogin
	m.modal = modalNone
	m.loading = false
	m.focusLogin(0)
	return m.showToast("Session expired. Please log in again.", toastError)
}

// handleAPIError routes a settled error: 401 forces logout, anything else
// becomes an error toast with the given fallback text.
func (m *appModel) handleAPIError(err error, fallback string) tea.Cmd {
	if _, ok := err.(*api.AuthError); ok {
		return m.forceLogout()
	}
	msg := fallback
	if ue, ok := err.(*api.UnexpectedError); ok && ue.Message != "" {
		msg = ue.Message
	}
	return m.showToast(msg, toastError)
}

// navigate switches views through the guard and kicks off whatever the
// target view needs loaded.
func (m *appModel) navigate(v view) tea.Cmd {
	if !m.guard(v) {
		return nil
	}
	m.view = v
	m.modal = modalNone
	switch v {
	case viewDashboard:
		m.refreshNav()
		return nil
	case viewUsers:
		m.loading = true
		// The user form needs the role options.
		return tea.Batch(m.spin.Tick, m.fetchUsersCmd(), m.fetchOptionsCmd())
	case viewCategories:
		m.loading = true
		return tea.Batch(m.spin.Tick, m.fetchCategoriesCmd())
	case viewTasks:
		m.loading = true
		// Task filters and forms need the option lists as well.
		return tea.Batch(m.spin.Tick, m.fetchTasksCmd(), m.fetchOptionsCmd())
	case viewSignup:
		m.openSignupForm()
		return textinput.Blink
	default:
		return nil
	}
}

// Fetch commands. Each snapshots the generation and query so the settled
// message can be matched against newer fetches.

func (m *appModel) fetchUsersCmd() tea.Cmd {
	gen, q := m.users.BeginFetch()
	client := m.client
	return func() tea.Msg {
		res, err := client.ListUsers(context.Background(), q.Page, q.PageSize, q.SearchText)
		if err != nil {
			return usersPageMsg{gen: gen, err: err}
		}
		return usersPageMsg{gen: gen, page: listctl.Page[model.User]{Items: res.Users, TotalCount: res.TotalUsers}}
	}
}

func (m *appModel) fetchCategoriesCmd() tea.Cmd {
	gen, q := m.cats.BeginFetch()
	client := m.client
	return func() tea.Msg {
		res, err := client.ListCategories(context.Background(), q.Page, q.PageSize, q.SearchText)
		if err != nil {
			return categoriesPageMsg{gen: gen, err: err}
		}
		return categoriesPageMsg{gen: gen, page: listctl.Page[model.TaskCategory]{Items: res.Categories, TotalCount: res.TotalCategories}}
	}
}

func (m *appModel) fetchTasksCmd() tea.Cmd {
	gen, q := m.tasks.BeginFetch()
	client := m.client

	filter := api.TaskFilter{
		Search:     q.SearchText,
		CategoryID: q.Filter("categoryId"),
		UserID:     q.Filter("userId"),
	}
	// Non-admin sessions are implicitly scoped to their own tasks.
	if !m.sess.IsAdmin() {
		filter.UserID = m.sess.UserInfo.UserID
	}

	return func() tea.Msg {
		res, err := client.ListTasks(context.Background(), q.Page, q.PageSize, filter)
		if err != nil {
			return tasksPageMsg{gen: gen, err: err}
		}
		return tasksPageMsg{gen: gen, page: listctl.Page[model.Task]{Items: res.Tasks, TotalCount: res.TotalTasks}}
	}
}

// fetchOptionsCmd loads the select options (roles, categories, assignees)
// behind the forms and task filters.
func (m *appModel) fetchOptionsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()
		roles, err := client.AllRoles(ctx)
		if err != nil {
			return formOptionsMsg{err: err}
		}
		cats, err := client.AllCategories(ctx)
		if err != nil {
			return formOptionsMsg{err: err}
		}
		users, err := client.AllUsers(ctx)
		if err != nil {
			return formOptionsMsg{err: err}
		}
		return formOptionsMsg{roles: roles, categories: cats, users: users}
	}
}

func (m appModel) queryFor(e entity) listctl.Query {
	switch e {
	case entityUsers:
		return m.users.Query()
	case entityCategories:
		return m.cats.Query()
	default:
		return m.tasks.Query()
	}
}
