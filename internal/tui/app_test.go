package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adnan116/todo-list-app-client/internal/api"
	"github.com/adnan116/todo-list-app-client/internal/config"
	"github.com/adnan116/todo-list-app-client/internal/listctl"
	"github.com/adnan116/todo-list-app-client/internal/model"
	"github.com/adnan116/todo-list-app-client/internal/session"
)

func testModel(t *testing.T, baseURL string, sess *session.Session) appModel {
	t.Helper()
	store := session.Store{Dir: t.TempDir()}
	if sess != nil {
		if err := store.Save(context.Background(), *sess); err != nil {
			t.Fatalf("seed session: %v", err)
		}
	}
	cfg := config.Config{BaseURL: baseURL, PageSize: 10}
	return newAppModel(cfg, store)
}

func adminSession() *session.Session {
	return &session.Session{
		Token:             "tok",
		UserInfo:          model.UserInfo{UserID: "u1", FirstName: "Ad", LastName: "Min"},
		UserType:          "admin",
		PermittedFeatures: []string{"ADD_USER", "GET_USER", "ADD_TASK", "GET_TASK"},
	}
}

func TestStartsOnLoginWithoutSession(t *testing.T) {
	m := testModel(t, "http://localhost:1", nil)
	if m.view != viewLogin {
		t.Fatalf("expected login view, got %v", m.view)
	}
}

func TestResumesPersistedSession(t *testing.T) {
	m := testModel(t, "http://localhost:1", adminSession())
	if m.view != viewDashboard {
		t.Fatalf("expected dashboard, got %v", m.view)
	}
	if len(m.navList.Items()) != 4 {
		t.Fatalf("expected 4 nav entries, got %d", len(m.navList.Items()))
	}
}

func TestGuardRedirectsUnauthenticated(t *testing.T) {
	m := testModel(t, "http://localhost:1", nil)
	cmd := m.navigate(viewTasks)
	if m.view != viewLogin {
		t.Fatalf("expected redirect to login, got %v", m.view)
	}
	if cmd != nil {
		t.Fatalf("expected no fetch scheduled for a denied navigation")
	}
}

func TestGuardReReadsStoreOnNavigation(t *testing.T) {
	m := testModel(t, "http://localhost:1", adminSession())

	// Another process logged out; the next navigation must notice.
	if err := m.store.Clear(context.Background()); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	m.navigate(viewUsers)
	if m.view != viewLogin {
		t.Fatalf("expected redirect after external logout, got %v", m.view)
	}
}

func TestAuthErrorForcesLogout(t *testing.T) {
	m := testModel(t, "http://localhost:1", adminSession())
	m.view = viewUsers

	gen, _ := m.users.BeginFetch()
	next, _ := m.Update(usersPageMsg{gen: gen, err: &api.AuthError{}})
	m = next.(appModel)

	if m.view != viewLogin {
		t.Fatalf("expected login view after 401, got %v", m.view)
	}
	sess, err := m.store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sess.IsAuthenticated() {
		t.Fatalf("expected cleared session after 401")
	}
	if m.toastText == "" || m.toastSev != toastError {
		t.Fatalf("expected error toast, got %q", m.toastText)
	}
}

func TestStalePageResultIgnored(t *testing.T) {
	m := testModel(t, "http://localhost:1", adminSession())

	gen1, _ := m.users.BeginFetch()
	gen2, _ := m.users.BeginFetch()

	stale := usersPageMsg{gen: gen1, page: pageOf(99)}
	next, _ := m.Update(stale)
	m = next.(appModel)
	if m.users.TotalCount() != 0 {
		t.Fatalf("stale result should not apply")
	}

	fresh := usersPageMsg{gen: gen2, page: pageOf(7)}
	next, _ = m.Update(fresh)
	m = next.(appModel)
	if m.users.TotalCount() != 7 {
		t.Fatalf("expected fresh result applied, got %d", m.users.TotalCount())
	}
}

func pageOf(total int) listctl.Page[model.User] {
	return listctl.Page[model.User]{
		Items:      []model.User{{ID: "u1", FirstName: "A"}},
		TotalCount: total,
	}
}

func TestLoginFailureStaysInline(t *testing.T) {
	m := testModel(t, "http://localhost:1", nil)
	next, _ := m.Update(loginDoneMsg{err: &api.AuthError{Message: "Invalid credentials"}})
	m = next.(appModel)
	if m.view != viewLogin {
		t.Fatalf("login failure must not navigate, got %v", m.view)
	}
	if m.loginErr != "Invalid credentials" {
		t.Fatalf("expected inline failure message, got %q", m.loginErr)
	}
}

func TestDeleteRoundTrip(t *testing.T) {
	var deleted string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = r.URL.Path
			json.NewEncoder(w).Encode(map[string]any{"message": "Task deleted"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"data":    map[string]any{"tasks": []any{}, "totalTasks": 0},
		})
	}))
	defer srv.Close()

	m := testModel(t, srv.URL, adminSession())
	m.view = viewTasks

	msg := m.deleteCmd(entityTasks, "t1")()
	done, ok := msg.(deleteDoneMsg)
	if !ok || done.err != nil {
		t.Fatalf("expected clean deleteDoneMsg, got %#v", msg)
	}
	if deleted != "/task/delete/t1" {
		t.Fatalf("expected DELETE /task/delete/t1, got %q", deleted)
	}

	next, cmd := m.Update(done)
	m = next.(appModel)
	if m.toastText != "Task deleted successfully!" {
		t.Fatalf("expected success toast, got %q", m.toastText)
	}
	// The list always re-fetches after a settled delete.
	if cmd == nil {
		t.Fatalf("expected a re-fetch command")
	}
}

func TestFeatureTargets(t *testing.T) {
	cases := []struct {
		feature string
		view    view
		openAdd bool
	}{
		{"ADD_USER", viewUsers, true},
		{"GET_USER", viewUsers, false},
		{"ADD_CATEGORY", viewCategories, true},
		{"GET_CATEGORY", viewCategories, false},
		{"ADD_TASK", viewTasks, true},
		{"GET_TASK", viewTasks, false},
	}
	for _, tc := range cases {
		v, openAdd := featureTarget(tc.feature)
		if v != tc.view || openAdd != tc.openAdd {
			t.Fatalf("featureTarget(%q): got %v/%v", tc.feature, v, openAdd)
		}
	}
}

func TestFeatureNavLabel(t *testing.T) {
	cases := map[string]string{
		"ADD_USER":     "Add User",
		"GET_CATEGORY": "Get Category",
		"GET_TASK":     "Get Task",
	}
	for in, want := range cases {
		if got := featureNavLabel(in); got != want {
			t.Fatalf("featureNavLabel(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestSubmitMessages(t *testing.T) {
	cases := []struct {
		ent     entity
		editing bool
		want    string
	}{
		{entityUsers, false, "User added successfully!"},
		{entityUsers, true, "User updated successfully!"},
		{entityCategories, false, "Task category added successfully!"},
		{entityCategories, true, "Task category updated successfully!"},
		{entityTasks, false, "Task added successfully!"},
		{entityTasks, true, "Task updated successfully!"},
	}
	for _, tc := range cases {
		if got := submitSuccessMessage(tc.ent, tc.editing); got != tc.want {
			t.Fatalf("submitSuccessMessage(%v, %v): got %q", tc.ent, tc.editing, got)
		}
	}
	if got := deleteSuccessMessage(entityCategories); got != "Task category deleted successfully!" {
		t.Fatalf("deleteSuccessMessage: got %q", got)
	}
}
