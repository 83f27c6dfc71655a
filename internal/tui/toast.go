package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Transient success/error notifications rendered in the footer after any
// mutation. A sequence number ties each expiry timer to the toast that
// started it, so a newer toast is not cleared by an older timer.

type toastSeverity int

const (
	toastSuccess toastSeverity = iota
	toastError
)

const toastDuration = 3 * time.Second

type toastExpireMsg struct{ seq int }

func (m *appModel) showToast(text string, sev toastSeverity) tea.Cmd {
	m.toastText = text
	m.toastSev = sev
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpireMsg{seq: seq}
	})
}

func (m *appModel) clearToast(seq int) {
	if seq != m.toastSeq {
		return
	}
	m.toastText = ""
}

func (m appModel) renderToast() string {
	if m.toastText == "" {
		return ""
	}
	if m.toastSev == toastError {
		return styleError().Render(m.toastText)
	}
	return styleSuccess().Render(m.toastText)
}
