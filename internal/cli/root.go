package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/adnan116/todo-list-app-client/internal/api"
	"github.com/adnan116/todo-list-app-client/internal/config"
	"github.com/adnan116/todo-list-app-client/internal/format"
	"github.com/adnan116/todo-list-app-client/internal/session"
	"github.com/adnan116/todo-list-app-client/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	BaseURL    string
	PrettyJSON bool
	Format     string

	cfg config.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todoadmin",
		Short:        "Terminal admin console for the todo-list backend",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive console
  todoadmin

  # Scriptable commands
  todoadmin login --username admin@example.com --password secret
  todoadmin users list --page 1 --limit 10
  todoadmin tasks list --search report --category-id c1
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if app.BaseURL != "" {
			cfg.BaseURL = strings.TrimRight(app.BaseURL, "/")
		}
		app.cfg = cfg
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "base-url", envOr("TODOADMIN_BASE_URL", ""), "Backend API base URL (default from config)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TODOADMIN_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newSignupCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	store, err := sessionStore()
	if err != nil {
		return err
	}
	return tui.Run(app.cfg, store)
}

func sessionStore() (session.Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return session.Store{}, err
	}
	return session.Store{Dir: dir}, nil
}

// newClient builds an API client whose bearer token tracks the persisted
// session. Reading through the store on each request keeps a long-lived
// process honest after `todoadmin logout` elsewhere.
func newClient(app *App, store session.Store) *api.Client {
	return api.New(app.cfg.BaseURL, api.WithTokenSource(func() string {
		sess, err := store.Load(context.Background())
		if err != nil {
			return ""
		}
		return sess.Token
	}))
}

// currentSession loads the persisted session and fails when not logged in.
func currentSession(store session.Store) (session.Session, error) {
	sess, err := store.Load(context.Background())
	if err != nil {
		return session.Session{}, err
	}
	if !sess.IsAuthenticated() {
		return session.Session{}, fmt.Errorf("not logged in; run `todoadmin login`")
	}
	return sess, nil
}

// finishAuthError implements the global 401 rule for scripted commands:
// clear the session so the next guard check fails, then report.
func finishAuthError(store session.Store, err error) error {
	if _, ok := err.(*api.AuthError); !ok {
		return err
	}
	_ = store.Clear(context.Background())
	return fmt.Errorf("session expired; run `todoadmin login` again")
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
