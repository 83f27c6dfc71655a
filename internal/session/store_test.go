package session

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	"github.com/adnan116/todo-list-app-client/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	want := Session{
		Token: "tok-1",
		UserInfo: model.UserInfo{
			UserID:    "u1",
			FirstName: "Ad",
			LastName:  "Nan",
			Email:     "a@b.c",
		},
		UserType:          "admin",
		PermittedFeatures: []string{"GET_USER", "ADD_USER"},
	}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n  want %+v\n  got  %+v", want, got)
	}
	if !got.IsAuthenticated() {
		t.Fatalf("expected authenticated session")
	}
	if !got.IsAdmin() {
		t.Fatalf("expected admin session")
	}
	if !got.Permitted("ADD_USER") || got.Permitted("ADD_TASK") {
		t.Fatalf("unexpected permission results")
	}
}

func TestLoadMissingStore(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load on missing store: %v", err)
	}
	if got.IsAuthenticated() {
		t.Fatalf("missing store should read as logged out")
	}
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	first := Session{Token: "old", UserType: "admin", PermittedFeatures: []string{"GET_USER"}}
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := Session{Token: "new", UserType: "user", PermittedFeatures: []string{"GET_TASK"}}
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Token != "new" || got.UserType != "user" {
		t.Fatalf("expected second session, got %+v", got)
	}
	if len(got.PermittedFeatures) != 1 || got.PermittedFeatures[0] != "GET_TASK" {
		t.Fatalf("expected replaced features, got %v", got.PermittedFeatures)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear on missing store: %v", err)
	}

	if err := s.Save(ctx, Session{Token: "tok"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.IsAuthenticated() {
		t.Fatalf("cleared store should read as logged out, got %+v", got)
	}
}

func TestMalformedJSONFailsSoft(t *testing.T) {
	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	if err := s.Save(ctx, Session{Token: "tok", UserType: "user"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	db, err := sql.Open("sqlite", s.dbPath())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO session_meta(k, v) VALUES('userInfo', 'not json'), ('permittedFeatures', '{')`); err != nil {
		t.Fatalf("corrupt store: %v", err)
	}
	db.Close()

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load on corrupted store: %v", err)
	}
	if got.Token != "tok" || got.UserType != "user" {
		t.Fatalf("intact keys should survive, got %+v", got)
	}
	if got.UserInfo != (model.UserInfo{}) || got.PermittedFeatures != nil {
		t.Fatalf("corrupted keys should read as zero values, got %+v", got)
	}
}

func TestIsAdminCaseInsensitive(t *testing.T) {
	cases := []struct {
		userType string
		want     bool
	}{
		{"admin", true},
		{"Admin", true},
		{"ADMIN", true},
		{" admin ", true},
		{"user", false},
		{"", false},
	}
	for _, tc := range cases {
		s := Session{UserType: tc.userType}
		if got := s.IsAdmin(); got != tc.want {
			t.Fatalf("IsAdmin(%q): expected %v, got %v", tc.userType, tc.want, got)
		}
	}
}
