package formctl

import (
	"testing"

	"github.com/adnan116/todo-list-app-client/internal/api"
)

func userForm() *Form {
	return New(
		Field{Name: "firstName", Label: "First Name", Required: true},
		Field{Name: "email", Label: "Email", Required: true},
		Field{Name: "dob", Label: "Date of Birth", Date: true},
		Field{Name: "religion", Label: "Religion", Options: []Option{
			{Value: "Islam", Label: "Islam"},
			{Value: "Other", Label: "Other"},
		}},
	)
}

func TestValidateRequired(t *testing.T) {
	f := userForm()
	f.SetField("email", "a@b.c")

	ok, first := f.Validate()
	if ok {
		t.Fatalf("expected validation failure")
	}
	if first != "First Name is required" {
		t.Fatalf("expected first missing field message, got %q", first)
	}
	if f.FieldError("firstName") != "First Name is required" {
		t.Fatalf("expected inline error on firstName, got %q", f.FieldError("firstName"))
	}
	if f.FieldError("email") != "" {
		t.Fatalf("filled field should have no error, got %q", f.FieldError("email"))
	}

	// Whitespace does not satisfy a required field.
	f.SetField("firstName", "   ")
	if ok, _ := f.Validate(); ok {
		t.Fatalf("whitespace-only value should fail required check")
	}

	f.SetField("firstName", "Adnan")
	if ok, msg := f.Validate(); !ok {
		t.Fatalf("expected valid draft, got %q", msg)
	}
}

func TestSetFieldClearsError(t *testing.T) {
	f := userForm()
	f.Validate()
	if f.FieldError("firstName") == "" {
		t.Fatalf("expected error before edit")
	}
	f.SetField("firstName", "A")
	if f.FieldError("firstName") != "" {
		t.Fatalf("editing a field should clear its error")
	}
}

func TestSeedNormalizesDates(t *testing.T) {
	f := userForm()
	f.Seed(map[string]string{
		"firstName": "Adnan",
		"dob":       "1990-04-15T00:00:00.000Z",
	})
	if got := f.Value("dob"); got != "1990-04-15" {
		t.Fatalf("expected normalized dob, got %q", got)
	}
	if got := f.Values()["dob"]; got != "1990-04-15" {
		t.Fatalf("expected normalized dob in values, got %q", got)
	}
}

func TestApplySubmitErrorValidation(t *testing.T) {
	f := userForm()
	err := &api.ValidationError{
		Message: "Validation failed",
		Fields: []api.FieldError{
			{Field: "email", Message: "Email already exists"},
			{Field: "firstName", Message: "First name too short"},
		},
	}

	first := f.ApplySubmitError(err, api.GenericFailureMessage)
	if first != "Email already exists" {
		t.Fatalf("expected first field message, got %q", first)
	}
	// All field errors stay available for inline display.
	if f.FieldError("email") != "Email already exists" {
		t.Fatalf("expected inline email error, got %q", f.FieldError("email"))
	}
	if f.FieldError("firstName") != "First name too short" {
		t.Fatalf("expected inline firstName error, got %q", f.FieldError("firstName"))
	}
}

func TestApplySubmitErrorFallbacks(t *testing.T) {
	f := userForm()

	got := f.ApplySubmitError(&api.ValidationError{Message: "Bad payload"}, api.GenericFailureMessage)
	if got != "Bad payload" {
		t.Fatalf("expected top-level message, got %q", got)
	}

	got = f.ApplySubmitError(&api.UnexpectedError{Message: "Server exploded"}, api.GenericFailureMessage)
	if got != "Server exploded" {
		t.Fatalf("expected unexpected-error message, got %q", got)
	}

	got = f.ApplySubmitError(&api.UnexpectedError{}, api.GenericFailureMessage)
	if got != api.GenericFailureMessage {
		t.Fatalf("expected generic fallback, got %q", got)
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  ", ""},
		{"2024-01-31", "2024-01-31"},
		{"2024-01-31T10:20:30Z", "2024-01-31"},
		{"2024-01-31T10:20:30.123Z", "2024-01-31"},
		{"2024-01-31T10:20:30", "2024-01-31"},
		{"2024/01/31", "2024-01-31"},
		{"01/31/2024", "2024-01-31"},
		{"not a date", "not a date"},
	}
	for _, tc := range cases {
		if got := NormalizeDate(tc.in); got != tc.want {
			t.Fatalf("NormalizeDate(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
