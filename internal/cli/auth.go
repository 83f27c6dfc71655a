package cli

import (
	"fmt"

	"github.com/adnan116/todo-list-app-client/internal/api"
	"github.com/adnan116/todo-list-app-client/internal/perm"
	"github.com/adnan116/todo-list-app-client/internal/session"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			client := newClient(app, store)

			res, err := client.Login(cmd.Context(), username, password)
			if err != nil {
				if msg := loginFailureMessage(err); msg != "" {
					return writeErr(cmd, fmt.Errorf("%s", msg))
				}
				return writeErr(cmd, err)
			}

			sess := session.Session{
				Token:             res.AccessToken,
				UserInfo:          res.UserInfo,
				UserType:          res.UserType,
				PermittedFeatures: res.PermittedFeatures,
			}
			if err := store.Save(cmd.Context(), sess); err != nil {
				return writeErr(cmd, err)
			}

			return writeOut(cmd, app, map[string]any{
				"userInfo":          res.UserInfo,
				"userType":          res.UserType,
				"permittedFeatures": res.PermittedFeatures,
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Login email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// loginFailureMessage prefers the server's wording when there is one and
// falls back to a generic line. Nothing is persisted on failure.
func loginFailureMessage(err error) string {
	switch e := err.(type) {
	case *api.AuthError:
		if e.Message != "" {
			return e.Message
		}
		return "Login failed. Please check your credentials."
	case *api.UnexpectedError:
		if e.Message != "" && e.Message != api.GenericFailureMessage {
			return e.Message
		}
		return "Login failed."
	case *api.ValidationError:
		return e.Error()
	default:
		return ""
	}
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			if err := store.Clear(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"loggedOut": true})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session identity and permitted features",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			sess, err := currentSession(store)
			if err != nil {
				return writeErr(cmd, err)
			}

			sections := perm.VisibleSections(sess.PermittedFeatures)
			vis := make([]map[string]any, 0, len(sections))
			for _, s := range sections {
				feats := make([]map[string]string, 0, len(s.Features))
				for _, f := range s.Features {
					feats = append(feats, map[string]string{
						"code":  f,
						"label": perm.FeatureLabel(f),
						"page":  perm.FeaturePage(f),
					})
				}
				vis = append(vis, map[string]any{
					"category": perm.CategoryLabel(s.Category),
					"features": feats,
				})
			}
			return writeOut(cmd, app, map[string]any{
				"userInfo":          sess.UserInfo,
				"userType":          sess.UserType,
				"permittedFeatures": sess.PermittedFeatures,
				"visibleSections":   vis,
			})
		},
	}
}

func newSignupCmd(app *App) *cobra.Command {
	var in api.SignupInput

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a self-service account",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			client := newClient(app, store)
			if err := client.SignUp(cmd.Context(), in); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"message": "Signup successful!"})
		},
	}

	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&in.Email, "email", "", "Email")
	cmd.Flags().StringVar(&in.PhoneNumber, "phone-number", "", "Phone number")
	cmd.Flags().StringVar(&in.DOB, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&in.Religion, "religion", "", "Religion")
	cmd.Flags().StringVar(&in.Password, "password", "", "Password")
	for _, f := range []string{"first-name", "last-name", "email", "phone-number", "dob", "gender", "religion", "password"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

// requireFeature enforces presentation-level permission checks for scripted
// commands, mirroring what the sidebar hides in the TUI. The backend remains
// the authority; this only gives a friendlier error than a server rejection.
func requireFeature(sess session.Session, feature string) error {
	if sess.Permitted(feature) {
		return nil
	}
	return fmt.Errorf("current session lacks the %s feature", feature)
}
