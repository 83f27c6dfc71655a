package tui

import (
	"strings"
	"time"

	"github.com/adnan116/todo-list-app-client/internal/formctl"
)

// formatDate renders a wire date for list rows: "Jan 5 2026". Falls back to
// the normalized (or raw) string when the value doesn't parse.
func formatDate(s string) string {
	norm := formctl.NormalizeDate(s)
	if strings.TrimSpace(norm) == "" {
		return ""
	}
	parsed, err := time.Parse("2006-01-02", norm)
	if err != nil {
		return norm
	}
	return parsed.Format("Jan 2 2006")
}

// formatDeadlineLabel renders a task deadline badge.
func formatDeadlineLabel(s string) string {
	txt := formatDate(s)
	if txt == "" {
		return ""
	}
	return "due " + txt
}
