package cli

import (
	"github.com/adnan116/todo-list-app-client/internal/api"
	"github.com/adnan116/todo-list-app-client/internal/formctl"
	"github.com/adnan116/todo-list-app-client/internal/perm"

	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUsersListCmd(app))
	cmd.AddCommand(newUsersRolesCmd(app))
	cmd.AddCommand(newUsersCreateCmd(app))
	cmd.AddCommand(newUsersUpdateCmd(app))
	cmd.AddCommand(newUsersDeleteCmd(app))
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	var page, limit int
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users (paginated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			sess, err := currentSession(store)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := requireFeature(sess, perm.FeatureGetUser); err != nil {
				return writeErr(cmd, err)
			}

			client := newClient(app, store)
			res, err := client.ListUsers(cmd.Context(), page, limit, search)
			if err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (default from config)")
	cmd.Flags().StringVar(&search, "search", "", "Free-text search")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if limit <= 0 {
			limit = app.cfg.PageSize
		}
	}
	return cmd
}

func newUsersRolesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List available roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			if _, err := currentSession(store); err != nil {
				return writeErr(cmd, err)
			}
			client := newClient(app, store)
			roles, err := client.AllRoles(cmd.Context())
			if err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, roles)
		},
	}
}

func userInputFlags(cmd *cobra.Command, in *api.UserInput) {
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&in.Email, "email", "", "Email")
	cmd.Flags().StringVar(&in.PhoneNumber, "phone-number", "", "Phone number")
	cmd.Flags().StringVar(&in.DOB, "dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&in.Religion, "religion", "", "Religion")
	cmd.Flags().StringVar(&in.RoleID, "role-id", "", "Role id")
}

func newUsersCreateCmd(app *App) *cobra.Command {
	var in api.UserInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			sess, err := currentSession(store)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := requireFeature(sess, perm.FeatureAddUser); err != nil {
				return writeErr(cmd, err)
			}

			in.DOB = formctl.NormalizeDate(in.DOB)
			client := newClient(app, store)
			if err := client.CreateUser(cmd.Context(), in); err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, map[string]any{"message": "User added successfully!"})
		},
	}

	userInputFlags(cmd, &in)
	cmd.Flags().StringVar(&in.Password, "password", "", "Password")
	for _, f := range []string{"first-name", "last-name", "email", "phone-number", "dob", "gender", "religion", "password", "role-id"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newUsersUpdateCmd(app *App) *cobra.Command {
	var in api.UserInput

	cmd := &cobra.Command{
		Use:   "update <user-id>",
		Short: "Update a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			if _, err := currentSession(store); err != nil {
				return writeErr(cmd, err)
			}

			in.DOB = formctl.NormalizeDate(in.DOB)
			client := newClient(app, store)
			if err := client.UpdateUser(cmd.Context(), args[0], in); err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, map[string]any{"message": "User updated successfully!"})
		},
	}

	userInputFlags(cmd, &in)
	for _, f := range []string{"first-name", "last-name", "email", "phone-number", "dob", "gender", "religion", "role-id"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newUsersDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			if _, err := currentSession(store); err != nil {
				return writeErr(cmd, err)
			}
			client := newClient(app, store)
			if err := client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, map[string]any{"message": "User deleted successfully!"})
		},
	}
}
