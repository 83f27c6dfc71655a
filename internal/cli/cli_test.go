package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// runCLI executes the root command with args and returns stdout. The config
// dir is pointed at a temp dir per test via TODOADMIN_CONFIG_DIR so sessions
// never leak between tests or into the real home directory.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func loginOK(t *testing.T, userType string, features []string) (*httptest.Server, *string) {
	t.Helper()
	var lastTaskUserID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/login":
			json.NewEncoder(w).Encode(map[string]any{
				"message": "Login successful",
				"data": map[string]any{
					"accessToken": "tok-1",
					"userInfo": map[string]string{
						"userId": "u1", "firstName": "Ad", "lastName": "Min",
					},
					"userType":          userType,
					"permittedFeatures": features,
				},
			})
		case "/user/list":
			if r.Header.Get("Authorization") != "Bearer tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]any{"message": "Unauthorized"})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"message": "ok",
				"data": map[string]any{
					"users":      []map[string]string{{"id": "u1", "firstName": "Ad"}},
					"totalUsers": 1,
				},
			})
		case "/task/list":
			lastTaskUserID = r.URL.Query().Get("userId")
			json.NewEncoder(w).Encode(map[string]any{
				"message": "ok",
				"data":    map[string]any{"tasks": []any{}, "totalTasks": 0},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"message": "not found"})
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &lastTaskUserID
}

func TestLoginThenWhoami(t *testing.T) {
	srv, _ := loginOK(t, "admin", []string{"GET_USER", "ADD_USER"})
	t.Setenv("TODOADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("TODOADMIN_BASE_URL", srv.URL)

	out, err := runCLI(t, "login", "--username", "a@b.c", "--password", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.Contains(out, `"userType":"admin"`) {
		t.Fatalf("unexpected login output: %s", out)
	}

	out, err = runCLI(t, "whoami")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.Contains(out, `"userId":"u1"`) || !strings.Contains(out, "GET_USER") {
		t.Fatalf("unexpected whoami output: %s", out)
	}
	if !strings.Contains(out, "visibleSections") {
		t.Fatalf("expected visible sections in whoami output: %s", out)
	}
}

func TestWhoamiWithoutSession(t *testing.T) {
	t.Setenv("TODOADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("TODOADMIN_BASE_URL", "http://localhost:1")

	if _, err := runCLI(t, "whoami"); err == nil {
		t.Fatalf("expected error when not logged in")
	}
}

func TestUsersListRequiresFeature(t *testing.T) {
	srv, _ := loginOK(t, "user", []string{"GET_TASK"})
	t.Setenv("TODOADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("TODOADMIN_BASE_URL", srv.URL)

	if _, err := runCLI(t, "login", "--username", "a@b.c", "--password", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	_, err := runCLI(t, "users", "list")
	if err == nil || !strings.Contains(err.Error(), "GET_USER") {
		t.Fatalf("expected feature error, got %v", err)
	}
}

func TestUsersListAuthorized(t *testing.T) {
	srv, _ := loginOK(t, "admin", []string{"GET_USER"})
	t.Setenv("TODOADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("TODOADMIN_BASE_URL", srv.URL)

	if _, err := runCLI(t, "login", "--username", "a@b.c", "--password", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	out, err := runCLI(t, "users", "list", "--page", "1", "--limit", "10")
	if err != nil {
		t.Fatalf("users list: %v", err)
	}
	if !strings.Contains(out, `"totalUsers":1`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestTasksListScopesNonAdmin(t *testing.T) {
	srv, lastUserID := loginOK(t, "user", []string{"GET_TASK"})
	t.Setenv("TODOADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("TODOADMIN_BASE_URL", srv.URL)

	if _, err := runCLI(t, "login", "--username", "a@b.c", "--password", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	// A non-admin session must always send its own id, whatever --user-id
	// says.
	if _, err := runCLI(t, "tasks", "list", "--user-id", "someone-else"); err != nil {
		t.Fatalf("tasks list: %v", err)
	}
	if *lastUserID != "u1" {
		t.Fatalf("expected own-user scope, server saw userId=%q", *lastUserID)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	srv, _ := loginOK(t, "admin", []string{"GET_USER"})
	t.Setenv("TODOADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("TODOADMIN_BASE_URL", srv.URL)

	if _, err := runCLI(t, "login", "--username", "a@b.c", "--password", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := runCLI(t, "logout"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := runCLI(t, "whoami"); err == nil {
		t.Fatalf("expected error after logout")
	}
}

func TestDocsTopics(t *testing.T) {
	t.Setenv("TODOADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("TODOADMIN_BASE_URL", "http://localhost:1")

	out, err := runCLI(t, "docs")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(out, "getting-started") || !strings.Contains(out, "permissions") {
		t.Fatalf("unexpected topics output: %s", out)
	}

	out, err = runCLI(t, "docs", "permissions", "--raw")
	if err != nil {
		t.Fatalf("docs permissions: %v", err)
	}
	if !strings.Contains(out, "GET_USER") {
		t.Fatalf("unexpected topic body: %s", out)
	}
}
