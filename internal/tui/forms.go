package tui

import (
	"context"

	"github.com/adnan116/todo-list-app-client/internal/api"
	"github.com/adnan116/todo-list-app-client/internal/formctl"
	"github.com/adnan116/todo-list-app-client/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func stringOptions(values []string) []formctl.Option {
	opts := make([]formctl.Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, formctl.Option{Value: v, Label: v})
	}
	return opts
}

func roleOptions(roles []model.Role) []formctl.Option {
	opts := make([]formctl.Option, 0, len(roles))
	for _, r := range roles {
		opts = append(opts, formctl.Option{Value: r.ID, Label: r.RoleName})
	}
	return opts
}

func categoryOptions(cats []model.CategorySummary) []formctl.Option {
	opts := make([]formctl.Option, 0, len(cats))
	for _, c := range cats {
		opts = append(opts, formctl.Option{Value: c.ID, Label: c.CategoryName})
	}
	return opts
}

func assigneeOptions(users []model.UserSummary) []formctl.Option {
	opts := make([]formctl.Option, 0, len(users))
	for _, u := range users {
		label := u.FullName()
		if label == "" {
			label = u.ID
		}
		opts = append(opts, formctl.Option{Value: u.ID, Label: label})
	}
	return opts
}

// userFormFields builds the admin add/update user form. Password is required
// only on add; on update a blank password leaves the stored one alone.
func (m *appModel) userFormFields(editing bool) []formctl.Field {
	return []formctl.Field{
		{Name: "firstName", Label: "First Name", Required: true},
		{Name: "lastName", Label: "Last Name", Required: true},
		{Name: "email", Label: "Email", Required: true},
		{Name: "phoneNumber", Label: "Phone Number", Required: true},
		{Name: "dob", Label: "Date of Birth", Required: true, Date: true},
		{Name: "gender", Label: "Gender", Required: true, Options: stringOptions(model.GenderOptions)},
		{Name: "religion", Label: "Religion", Required: true, Options: stringOptions(model.ReligionOptions)},
		{Name: "password", Label: "Password", Required: !editing, Secret: true},
		{Name: "roleId", Label: "Role", Required: true, Options: roleOptions(m.roles)},
	}
}

func categoryFormFields() []formctl.Field {
	return []formctl.Field{
		{Name: "categoryName", Label: "Category Name", Required: true},
		{Name: "description", Label: "Description"},
	}
}

func (m *appModel) taskFormFields() []formctl.Field {
	fields := []formctl.Field{
		{Name: "title", Label: "Title", Required: true},
		{Name: "description", Label: "Description"},
		{Name: "status", Label: "Status", Required: true, Options: stringOptions(model.TaskStatusOptions)},
		{Name: "deadline", Label: "Deadline", Required: true, Date: true},
		{Name: "categoryId", Label: "Category", Required: true, Options: categoryOptions(m.allCategories)},
	}
	// Only admins pick an assignee; everyone else creates tasks for
	// themselves.
	if m.sess.IsAdmin() {
		fields = append(fields, formctl.Field{Name: "userId", Label: "Assignee", Required: true, Options: assigneeOptions(m.allUsers)})
	}
	return fields
}

func signupFormFields() []formctl.Field {
	return []formctl.Field{
		{Name: "firstName", Label: "First Name", Required: true},
		{Name: "lastName", Label: "Last Name", Required: true},
		{Name: "email", Label: "Email", Required: true},
		{Name: "phoneNumber", Label: "Phone Number", Required: true},
		{Name: "dob", Label: "Date of Birth", Required: true, Date: true},
		{Name: "gender", Label: "Gender", Required: true, Options: stringOptions(model.GenderOptions)},
		{Name: "religion", Label: "Religion", Required: true, Options: stringOptions(model.ReligionOptions)},
		{Name: "password", Label: "Password", Required: true, Secret: true},
	}
}

// setForm installs a built form plus one textinput per free-text field.
// Select fields keep their value in the form and cycle with left/right.
func (m *appModel) setForm(form *formctl.Form, title string, ent entity, editID string) {
	m.form = form
	m.formTitle = title
	m.formEnt = ent
	m.formEditID = editID
	m.formFocus = 0

	m.formInputs = make([]textinput.Model, form.Len())
	for i, fd := range form.Fields() {
		in := textinput.New()
		in.Placeholder = fd.Label
		in.CharLimit = 200
		in.Width = 36
		if fd.Secret {
			in.EchoMode = textinput.EchoPassword
		}
		in.SetValue(form.RawValue(fd.Name))
		m.formInputs[i] = in
	}
	m.focusFormField(0)
}

func (m *appModel) focusFormField(idx int) {
	if m.form == nil || m.form.Len() == 0 {
		return
	}
	if idx < 0 {
		idx = m.form.Len() - 1
	}
	if idx >= m.form.Len() {
		idx = 0
	}
	m.formFocus = idx
	for i := range m.formInputs {
		if i == idx && m.form.FieldAt(i).Options == nil {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

// cycleFormOption steps a select field through its options; dir is +1/-1.
func (m *appModel) cycleFormOption(dir int) {
	fd := m.form.FieldAt(m.formFocus)
	if len(fd.Options) == 0 {
		return
	}
	cur := m.form.RawValue(fd.Name)
	idx := -1
	for i, o := range fd.Options {
		if o.Value == cur {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 {
		idx = len(fd.Options) - 1
	}
	if idx >= len(fd.Options) {
		idx = 0
	}
	m.form.SetField(fd.Name, fd.Options[idx].Value)
}

// syncFormValues copies textinput contents into the form draft before
// validation or render.
func (m *appModel) syncFormValues() {
	if m.form == nil {
		return
	}
	for i, fd := range m.form.Fields() {
		if fd.Options != nil {
			continue
		}
		m.form.SetField(fd.Name, m.formInputs[i].Value())
	}
}

func (m *appModel) openAddForm(ent entity) {
	switch ent {
	case entityUsers:
		m.setForm(formctl.New(m.userFormFields(false)...), "Add User", ent, "")
	case entityCategories:
		m.setForm(formctl.New(categoryFormFields()...), "Add Task Category", ent, "")
	case entityTasks:
		form := formctl.New(m.taskFormFields()...)
		form.Seed(map[string]string{"status": model.StatusTodo})
		m.setForm(form, "Add Task", ent, "")
	}
	m.modal = modalForm
}

func (m *appModel) openEditForm(ent entity) bool {
	switch ent {
	case entityUsers:
		it, ok := m.usersList.SelectedItem().(userItem)
		if !ok {
			return false
		}
		form := formctl.New(m.userFormFields(true)...)
		roleID := ""
		if it.user.Role != nil {
			roleID = it.user.Role.ID
		}
		form.Seed(map[string]string{
			"firstName":   it.user.FirstName,
			"lastName":    it.user.LastName,
			"email":       it.user.Email,
			"phoneNumber": it.user.PhoneNumber,
			"dob":         it.user.DOB,
			"gender":      it.user.Gender,
			"religion":    it.user.Religion,
			"roleId":      roleID,
		})
		m.setForm(form, "Update User", ent, it.user.ID)
	case entityCategories:
		it, ok := m.catsList.SelectedItem().(categoryItem)
		if !ok {
			return false
		}
		form := formctl.New(categoryFormFields()...)
		form.Seed(map[string]string{
			"categoryName": it.category.CategoryName,
			"description":  it.category.Description,
		})
		m.setForm(form, "Update Task Category", ent, it.category.ID)
	case entityTasks:
		it, ok := m.tasksList.SelectedItem().(taskItem)
		if !ok {
			return false
		}
		form := formctl.New(m.taskFormFields()...)
		form.Seed(map[string]string{
			"title":       it.task.Title,
			"description": it.task.Description,
			"status":      it.task.Status,
			"deadline":    it.task.Deadline,
			"categoryId":  it.task.Category.ID,
			"userId":      it.task.Assignee.ID,
		})
		m.setForm(form, "Update Task", ent, it.task.ID)
	}
	m.modal = modalForm
	return true
}

func (m *appModel) openSignupForm() {
	m.setForm(formctl.New(signupFormFields()...), "Create Account", entityUsers, "")
}

func (m *appModel) closeForm() {
	m.form = nil
	m.formInputs = nil
	m.modal = modalNone
}

// submitFormCmd validates client-side first; required-field failures never
// reach the network. Returns nil with an error toast cmd substituted by the
// caller when validation fails.
func (m *appModel) submitFormCmd() tea.Cmd {
	m.syncFormValues()
	if ok, first := m.form.Validate(); !ok {
		return m.showToast(first, toastError)
	}

	if m.view == viewSignup {
		return m.submitSignupCmd()
	}

	values := m.form.Values()
	client := m.client
	ent := m.formEnt
	editID := m.formEditID
	editing := editID != ""

	switch ent {
	case entityUsers:
		in := api.UserInput{
			FirstName:   values["firstName"],
			LastName:    values["lastName"],
			Email:       values["email"],
			PhoneNumber: values["phoneNumber"],
			DOB:         values["dob"],
			Gender:      values["gender"],
			Religion:    values["religion"],
			Password:    values["password"],
			RoleID:      values["roleId"],
		}
		return func() tea.Msg {
			var err error
			if editing {
				err = client.UpdateUser(context.Background(), editID, in)
			} else {
				err = client.CreateUser(context.Background(), in)
			}
			return formSubmitDoneMsg{ent: ent, editing: editing, err: err}
		}
	case entityCategories:
		in := api.CategoryInput{
			CategoryName: values["categoryName"],
			Description:  values["description"],
		}
		return func() tea.Msg {
			var err error
			if editing {
				err = client.UpdateCategory(context.Background(), editID, in)
			} else {
				err = client.CreateCategory(context.Background(), in)
			}
			return formSubmitDoneMsg{ent: ent, editing: editing, err: err}
		}
	default:
		in := api.TaskInput{
			Title:       values["title"],
			Description: values["description"],
			Status:      values["status"],
			Deadline:    values["deadline"],
			CategoryID:  values["categoryId"],
			UserID:      values["userId"],
		}
		if !m.sess.IsAdmin() {
			in.UserID = m.sess.UserInfo.UserID
		}
		return func() tea.Msg {
			var err error
			if editing {
				err = client.UpdateTask(context.Background(), editID, in)
			} else {
				err = client.CreateTask(context.Background(), in)
			}
			return formSubmitDoneMsg{ent: ent, editing: editing, err: err}
		}
	}
}

func (m *appModel) submitSignupCmd() tea.Cmd {
	values := m.form.Values()
	client := m.client
	in := api.SignupInput{
		FirstName:   values["firstName"],
		LastName:    values["lastName"],
		Email:       values["email"],
		PhoneNumber: values["phoneNumber"],
		DOB:         values["dob"],
		Gender:      values["gender"],
		Religion:    values["religion"],
		Password:    values["password"],
	}
	return func() tea.Msg {
		return signupDoneMsg{err: client.SignUp(context.Background(), in)}
	}
}

func submitSuccessMessage(ent entity, editing bool) string {
	switch ent {
	case entityUsers:
		if editing {
			return "User updated successfully!"
		}
		return "User added successfully!"
	case entityCategories:
		if editing {
			return "Task category updated successfully!"
		}
		return "Task category added successfully!"
	default:
		if editing {
			return "Task updated successfully!"
		}
		return "Task added successfully!"
	}
}

func deleteSuccessMessage(ent entity) string {
	switch ent {
	case entityUsers:
		return "User deleted successfully!"
	case entityCategories:
		return "Task category deleted successfully!"
	default:
		return "Task deleted successfully!"
	}
}
