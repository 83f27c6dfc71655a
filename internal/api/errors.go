package api

import "strings"

// Error taxonomy for the HTTP boundary. Every failure a caller can see is one
// of three shapes, decided once in Client.do:
//
//   - AuthError: HTTP 401. The session is no longer valid; callers must clear
//     it and return to the login screen.
//   - ValidationError: a structured failure body with per-field messages.
//   - UnexpectedError: transport failures and everything else.
//
// Callers never retry; each failure is terminal for the initiating action.

// FieldError is one entry of the API's structured validation payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return "unauthorized"
	}
	return e.Message
}

type ValidationError struct {
	// Message is the top-level server message, when present.
	Message string
	// Fields preserves server order; the first entry drives the notification.
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 && strings.TrimSpace(e.Fields[0].Message) != "" {
		return e.Fields[0].Message
	}
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return "validation failed"
}

// FieldMessages flattens Fields into a field -> message map for inline form
// display. Later duplicates win, matching server emission order.
func (e *ValidationError) FieldMessages() map[string]string {
	if len(e.Fields) == 0 {
		return nil
	}
	m := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if strings.TrimSpace(f.Field) == "" {
			continue
		}
		m[f.Field] = f.Message
	}
	return m
}

type UnexpectedError struct {
	Message string
	Err     error
}

func (e *UnexpectedError) Error() string {
	if strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unexpected error"
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

// GenericFailureMessage is what the UI shows for unstructured failures.
const GenericFailureMessage = "An unexpected error occurred. Please try again."
