package tui

import (
	"github.com/adnan116/todo-list-app-client/internal/config"
	"github.com/adnan116/todo-list-app-client/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(cfg config.Config, store session.Store) error {
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(cfg, store)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
