// Package formctl implements the add/update form state machine shared by all
// entity forms: a Draft of editable fields plus per-field validation errors.
// Like listctl it is pure state; submission IO stays with the caller.
package formctl

import (
	"strings"
	"time"

	"github.com/adnan116/todo-list-app-client/internal/api"
)

// Option is one select choice (bare id value + display label).
type Option struct {
	Value string
	Label string
}

// Field describes one editable field of a Draft.
type Field struct {
	Name  string
	Label string
	// Required fields are checked client-side before any network call.
	Required bool
	// Secret marks password-style input (masked in the UI).
	Secret bool
	// Date fields are normalized to YYYY-MM-DD on seed and on read-out,
	// whatever wire format the backend handed back.
	Date bool
	// Options non-nil makes this a select field.
	Options []Option
}

// Form holds a Draft: current values and the per-field error map. Created
// empty (add flows) or seeded from a list row (update flows); discarded on
// submit-success or cancel.
type Form struct {
	fields      []Field
	values      map[string]string
	fieldErrors map[string]string
}

func New(fields ...Field) *Form {
	return &Form{
		fields:      fields,
		values:      map[string]string{},
		fieldErrors: map[string]string{},
	}
}

func (f *Form) Fields() []Field { return f.fields }

func (f *Form) FieldAt(i int) Field { return f.fields[i] }

func (f *Form) Len() int { return len(f.fields) }

func (f *Form) field(name string) (Field, bool) {
	for _, fd := range f.fields {
		if fd.Name == name {
			return fd, true
		}
	}
	return Field{}, false
}

// SetField updates one Draft value and clears that field's error.
func (f *Form) SetField(name, value string) {
	f.values[name] = value
	delete(f.fieldErrors, name)
}

func (f *Form) Value(name string) string {
	v := f.values[name]
	if fd, ok := f.field(name); ok && fd.Date {
		return NormalizeDate(v)
	}
	return v
}

// RawValue returns the value as typed, without date normalization (the text
// input needs the in-progress string back verbatim).
func (f *Form) RawValue(name string) string { return f.values[name] }

func (f *Form) FieldError(name string) string { return f.fieldErrors[name] }

func (f *Form) HasErrors() bool { return len(f.fieldErrors) > 0 }

// Seed replaces the Draft with the given values (update flows copy the
// selected row in). Date fields are normalized for display; all errors are
// cleared.
func (f *Form) Seed(values map[string]string) {
	f.values = map[string]string{}
	f.fieldErrors = map[string]string{}
	for k, v := range values {
		if fd, ok := f.field(k); ok && fd.Date {
			v = NormalizeDate(v)
		}
		f.values[k] = v
	}
}

// Reset discards the Draft entirely.
func (f *Form) Reset() {
	f.values = map[string]string{}
	f.fieldErrors = map[string]string{}
}

// Validate runs the client-side required check. On failure it records an
// error per missing field and returns the first one as the notification
// message; a failing draft must never reach the network.
func (f *Form) Validate() (ok bool, firstMessage string) {
	for _, fd := range f.fields {
		if !fd.Required {
			continue
		}
		if strings.TrimSpace(f.values[fd.Name]) == "" {
			msg := fd.Label + " is required"
			if firstMessage == "" {
				firstMessage = msg
			}
			f.fieldErrors[fd.Name] = msg
		}
	}
	return firstMessage == "", firstMessage
}

// Values snapshots the Draft for submission, with date fields normalized to
// the canonical wire format.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for _, fd := range f.fields {
		v := f.values[fd.Name]
		if fd.Date {
			v = NormalizeDate(v)
		}
		out[fd.Name] = v
	}
	return out
}

// ApplySubmitError folds an API failure into the Draft and returns the
// notification message. For a structured validation failure every field's
// error is stored for inline display, but only the first drives the
// notification. fallback covers failures without a usable message.
func (f *Form) ApplySubmitError(err error, fallback string) string {
	switch e := err.(type) {
	case *api.ValidationError:
		for _, fe := range e.Fields {
			if strings.TrimSpace(fe.Field) == "" {
				continue
			}
			f.fieldErrors[fe.Field] = fe.Message
		}
		if len(e.Fields) > 0 && strings.TrimSpace(e.Fields[0].Message) != "" {
			return e.Fields[0].Message
		}
		if strings.TrimSpace(e.Message) != "" {
			return e.Message
		}
		return fallback
	case *api.UnexpectedError:
		if strings.TrimSpace(e.Message) != "" {
			return e.Message
		}
		return fallback
	default:
		return fallback
	}
}

// dateLayouts are the wire formats seen from the backend, most specific
// first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// NormalizeDate renders any recognized date representation as YYYY-MM-DD.
// Unrecognized input passes through trimmed so the user can still see and
// fix what they typed.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
