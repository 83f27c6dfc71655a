package tui

import (
	"context"

	"github.com/adnan116/todo-list-app-client/internal/api"
	"github.com/adnan116/todo-list-app-client/internal/listctl"
	"github.com/adnan116/todo-list-app-client/internal/model"
	"github.com/adnan116/todo-list-app-client/internal/perm"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// pageSizeCycle is what the z key steps through on list screens.
var pageSizeCycle = []int{5, 10, 20}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		m.resizeLists()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case toastExpireMsg:
		m.clearToast(msg.seq)
		return m, nil

	case loginDoneMsg:
		m.loading = false
		if msg.err != nil {
			// A 401 here is just wrong credentials, not an expired
			// session; show the failure inline instead of redirecting.
			m.loginErr = loginFailureText(msg.err)
			return m, nil
		}
		return m, m.applyLoginResult(msg.res)

	case signupDoneMsg:
		m.loading = false
		if msg.err != nil {
			if _, ok := msg.err.(*api.AuthError); ok {
				return m, m.forceLogout()
			}
			first := m.form.ApplySubmitError(msg.err, api.GenericFailureMessage)
			return m, m.showToast(first, toastError)
		}
		m.closeForm()
		m.view = viewLogin
		m.focusLogin(0)
		return m, m.showToast("Signup successful!", toastSuccess)

	case usersPageMsg:
		if !m.users.ApplyResult(msg.gen, msg.page, msg.err) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.handleAPIError(msg.err, api.GenericFailureMessage)
		}
		m.usersList.SetItems(userListItems(msg.page.Items))
		return m, nil

	case categoriesPageMsg:
		if !m.cats.ApplyResult(msg.gen, msg.page, msg.err) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.handleAPIError(msg.err, api.GenericFailureMessage)
		}
		m.catsList.SetItems(categoryListItems(msg.page.Items))
		return m, nil

	case tasksPageMsg:
		if !m.tasks.ApplyResult(msg.gen, msg.page, msg.err) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.handleAPIError(msg.err, api.GenericFailureMessage)
		}
		m.tasksList.SetItems(taskListItems(msg.page.Items))
		return m, nil

	case formOptionsMsg:
		if msg.err != nil {
			return m, m.handleAPIError(msg.err, api.GenericFailureMessage)
		}
		m.roles = msg.roles
		m.allCategories = msg.categories
		m.allUsers = msg.users
		return m, nil

	case deleteDoneMsg:
		// Leave the confirming state and re-fetch unconditionally: even a
		// failed delete may have changed server state.
		m.modal = modalNone
		var toast tea.Cmd
		if msg.err != nil {
			toast = m.handleAPIError(msg.err, "Error deleting "+entityLabel(msg.ent)+".")
			if m.view == viewLogin {
				// forceLogout already cleaned up.
				return m, toast
			}
		} else {
			toast = m.showToast(deleteSuccessMessage(msg.ent), toastSuccess)
		}
		m.loading = true
		return m, tea.Batch(toast, m.spin.Tick, m.refetchCmd(msg.ent))

	case formSubmitDoneMsg:
		if msg.err != nil {
			if _, ok := msg.err.(*api.AuthError); ok {
				return m, m.forceLogout()
			}
			// Keep the form open with inline field errors; the toast
			// carries the first message only.
			fallback := "Failed to add " + entityLabel(msg.ent)
			if msg.editing {
				fallback = "Failed to update " + entityLabel(msg.ent)
			}
			first := m.form.ApplySubmitError(msg.err, fallback)
			return m, m.showToast(first, toastError)
		}
		m.closeForm()
		m.closeEditFor(msg.ent)
		m.loading = true
		return m, tea.Batch(
			m.showToast(submitSuccessMessage(msg.ent, msg.editing), toastSuccess),
			m.spin.Tick,
			m.refetchCmd(msg.ent),
		)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m *appModel) resizeLists() {
	w := m.width - 2
	h := m.height - 7
	if h < 3 {
		h = 3
	}
	m.usersList.SetSize(w, h)
	m.catsList.SetSize(w, h)
	m.tasksList.SetSize(w, h)
	m.navList.SetSize(w, h)
}

func (m *appModel) refetchCmd(e entity) tea.Cmd {
	switch e {
	case entityUsers:
		return m.fetchUsersCmd()
	case entityCategories:
		return m.fetchCategoriesCmd()
	default:
		return m.fetchTasksCmd()
	}
}

func (m *appModel) closeEditFor(e entity) {
	switch e {
	case entityUsers:
		m.users.CloseEdit()
	case entityCategories:
		m.cats.CloseEdit()
	default:
		m.tasks.CloseEdit()
	}
}

func (m *appModel) deleteCmd(e entity, id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		switch e {
		case entityUsers:
			err = client.DeleteUser(ctx, id)
		case entityCategories:
			err = client.DeleteCategory(ctx, id)
		default:
			err = client.DeleteTask(ctx, id)
		}
		return deleteDoneMsg{ent: e, err: err}
	}
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Modals capture input before the underlying view.
	if m.modal != modalNone {
		return m.updateModalKey(msg)
	}

	switch m.view {
	case viewLogin:
		return m.updateLoginKey(msg)
	case viewSignup:
		return m.updateFormKey(msg)
	case viewDashboard:
		return m.updateDashboardKey(msg)
	case viewUsers:
		return m.updateListKey(msg, entityUsers)
	case viewCategories:
		return m.updateListKey(msg, entityCategories)
	case viewTasks:
		return m.updateListKey(msg, entityTasks)
	}
	return m, nil
}

func (m appModel) updateLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.focusLogin(1 - m.loginFocus)
		return m, textinput.Blink
	case "enter":
		if m.loginFocus == 0 {
			m.focusLogin(1)
			return m, textinput.Blink
		}
		return m, m.loginCmd()
	case "ctrl+s":
		return m, m.navigate(viewSignup)
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.usernameInput, cmd = m.usernameInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "L":
		return m, m.logout()
	case "enter":
		it, ok := m.navList.SelectedItem().(navItem)
		if !ok {
			return m, nil
		}
		v, openAdd := featureTarget(it.feature)
		cmd := m.navigate(v)
		if openAdd && m.view == v {
			m.openAddForm(entityFor(v))
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.navList, cmd = m.navList.Update(msg)
	return m, cmd
}

func entityFor(v view) entity {
	switch v {
	case viewUsers:
		return entityUsers
	case viewCategories:
		return entityCategories
	default:
		return entityTasks
	}
}

func (m appModel) updateListKey(msg tea.KeyMsg, e entity) (tea.Model, tea.Cmd) {
	ctl := m.genericCtl(e)

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		return m, m.navigate(viewDashboard)
	case "r":
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.refetchCmd(e))
	case "/":
		m.searchInput.SetValue(m.queryFor(e).SearchText)
		m.searchInput.Focus()
		m.searchInput.CursorEnd()
		m.modal = modalSearch
		return m, textinput.Blink
	case "left", "h":
		before := m.queryFor(e).Page
		ctl.prevPage()
		if m.queryFor(e).Page == before {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.refetchCmd(e))
	case "right", "l":
		before := m.queryFor(e).Page
		ctl.nextPage()
		if m.queryFor(e).Page == before {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.refetchCmd(e))
	case "z":
		cur := m.queryFor(e).PageSize
		next := pageSizeCycle[0]
		for i, n := range pageSizeCycle {
			if n == cur {
				next = pageSizeCycle[(i+1)%len(pageSizeCycle)]
				break
			}
		}
		ctl.setPageSize(next)
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.refetchCmd(e))
	case "a":
		if !m.sess.Permitted(addFeature(e)) {
			return m, m.showToast("You are not permitted to add a "+entityLabel(e)+".", toastError)
		}
		m.openAddForm(e)
		return m, textinput.Blink
	case "enter", "e":
		if e == entityTasks && msg.String() == "enter" {
			// enter opens the detail view on tasks; e edits.
			it, ok := m.tasksList.SelectedItem().(taskItem)
			if !ok {
				return m, nil
			}
			m.detailTask = it.task
			m.modal = modalTaskDetail
			return m, nil
		}
		if m.openEditForm(e) {
			ctl.requestEdit()
			return m, textinput.Blink
		}
		return m, nil
	case "d", "x":
		if e == entityTasks && !m.sess.IsAdmin() {
			return m, m.showToast("Only admins can delete tasks.", toastError)
		}
		id := m.selectedID(e)
		if id == "" {
			return m, nil
		}
		ctl.requestDelete(id)
		m.confirmFocus = confirmFocusCancel
		m.modal = modalConfirmDelete
		return m, nil
	case "f":
		if e == entityTasks {
			m.openCategoryFilter()
			return m, nil
		}
	case "F":
		if e == entityTasks && m.sess.IsAdmin() {
			m.openUserFilter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch e {
	case entityUsers:
		m.usersList, cmd = m.usersList.Update(msg)
	case entityCategories:
		m.catsList, cmd = m.catsList.Update(msg)
	default:
		m.tasksList, cmd = m.tasksList.Update(msg)
	}
	return m, cmd
}

func addFeature(e entity) string {
	switch e {
	case entityUsers:
		return perm.FeatureAddUser
	case entityCategories:
		return perm.FeatureAddCategory
	default:
		return perm.FeatureAddTask
	}
}

func (m appModel) selectedID(e entity) string {
	switch e {
	case entityUsers:
		if it, ok := m.usersList.SelectedItem().(userItem); ok {
			return it.user.ID
		}
	case entityCategories:
		if it, ok := m.catsList.SelectedItem().(categoryItem); ok {
			return it.category.ID
		}
	default:
		if it, ok := m.tasksList.SelectedItem().(taskItem); ok {
			return it.task.ID
		}
	}
	return ""
}

func (m *appModel) openCategoryFilter() {
	items := []list.Item{pickItem{id: "", label: "All Categories"}}
	for _, c := range m.allCategories {
		items = append(items, pickItem{id: c.ID, label: c.CategoryName})
	}
	m.pickList.SetItems(items)
	m.pickList.Select(0)
	m.modal = modalCategoryFilter
}

func (m *appModel) openUserFilter() {
	items := []list.Item{pickItem{id: "", label: "All Users"}}
	for _, u := range m.allUsers {
		label := u.FullName()
		if label == "" {
			label = u.ID
		}
		items = append(items, pickItem{id: u.ID, label: label})
	}
	m.pickList.SetItems(items)
	m.pickList.Select(0)
	m.modal = modalUserFilter
}

func (m appModel) updateModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalConfirmDelete:
		return m.updateConfirmDeleteKey(msg)
	case modalForm:
		return m.updateFormKey(msg)
	case modalSearch:
		return m.updateSearchKey(msg)
	case modalCategoryFilter, modalUserFilter:
		return m.updatePickerKey(msg)
	case modalTaskDetail:
		switch msg.String() {
		case "esc", "enter", "q":
			m.modal = modalNone
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.deleteEntity()
	ctl := m.genericCtl(e)

	switch msg.String() {
	case "esc":
		ctl.cancelDelete()
		m.modal = modalNone
		return m, nil
	case "tab", "left", "right", "shift+tab":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusCancel {
			ctl.cancelDelete()
			m.modal = modalNone
			return m, nil
		}
		id := ctl.deleteID()
		ctl.completeDelete()
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.deleteCmd(e, id))
	}
	return m, nil
}

func (m appModel) updateFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	fd := m.form.FieldAt(m.formFocus)

	switch msg.String() {
	case "esc":
		m.closeForm()
		if m.view == viewSignup {
			m.view = viewLogin
			m.focusLogin(0)
		} else {
			m.closeEditFor(m.formEnt)
		}
		return m, nil
	case "tab", "down":
		m.syncFormValues()
		m.focusFormField(m.formFocus + 1)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.syncFormValues()
		m.focusFormField(m.formFocus - 1)
		return m, textinput.Blink
	case "ctrl+s":
		return m, m.submitFormCmd()
	case "enter":
		if m.formFocus == m.form.Len()-1 {
			return m, m.submitFormCmd()
		}
		m.syncFormValues()
		m.focusFormField(m.formFocus + 1)
		return m, textinput.Blink
	case "left":
		if fd.Options != nil {
			m.cycleFormOption(-1)
			return m, nil
		}
	case "right":
		if fd.Options != nil {
			m.cycleFormOption(1)
			return m, nil
		}
	}

	if fd.Options != nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	// Editing a field clears its inline error.
	m.form.SetField(fd.Name, m.formInputs[m.formFocus].Value())
	return m, cmd
}

func (m appModel) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "enter":
		e := entityFor(m.view)
		m.genericCtl(e).setSearchText(m.searchInput.Value())
		m.modal = modalNone
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.refetchCmd(e))
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m appModel) updatePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "enter":
		it, ok := m.pickList.SelectedItem().(pickItem)
		if !ok {
			m.modal = modalNone
			return m, nil
		}
		key := "categoryId"
		if m.modal == modalUserFilter {
			key = "userId"
		}
		m.tasks.SetFilter(key, it.id)
		m.modal = modalNone
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.refetchCmd(entityTasks))
	}
	var cmd tea.Cmd
	m.pickList, cmd = m.pickList.Update(msg)
	return m, cmd
}

// genericCtl erases the controller's type parameter for the key handlers
// that only touch query and sub-state methods.
type listCtl interface {
	prevPage()
	nextPage()
	setPageSize(int)
	setSearchText(string)
	requestDelete(string)
	cancelDelete()
	completeDelete()
	deleteID() string
	requestEdit()
}

type ctlAdapter[T any] struct{ c *listctl.Controller[T] }

func (a ctlAdapter[T]) prevPage()              { a.c.PrevPage() }
func (a ctlAdapter[T]) nextPage()              { a.c.NextPage() }
func (a ctlAdapter[T]) setPageSize(n int)      { a.c.SetPageSize(n) }
func (a ctlAdapter[T]) setSearchText(s string) { a.c.SetSearchText(s) }
func (a ctlAdapter[T]) requestDelete(id string) {
	a.c.RequestDelete(id)
}
func (a ctlAdapter[T]) cancelDelete()   { a.c.CancelDelete() }
func (a ctlAdapter[T]) completeDelete() { a.c.CompleteDelete() }
func (a ctlAdapter[T]) deleteID() string {
	return a.c.DeleteID()
}
func (a ctlAdapter[T]) requestEdit() { a.c.RequestEdit() }

func (m appModel) genericCtl(e entity) listCtl {
	switch e {
	case entityUsers:
		return ctlAdapter[model.User]{c: m.users}
	case entityCategories:
		return ctlAdapter[model.TaskCategory]{c: m.cats}
	default:
		return ctlAdapter[model.Task]{c: m.tasks}
	}
}
