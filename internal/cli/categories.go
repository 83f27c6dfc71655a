package cli

import (
	"github.com/adnan116/todo-list-app-client/internal/api"
	"github.com/adnan116/todo-list-app-client/internal/perm"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"task-categories"},
		Short:   "Manage task categories",
	}
	cmd.AddCommand(newCategoriesListCmd(app))
	cmd.AddCommand(newCategoriesAllCmd(app))
	cmd.AddCommand(newCategoriesCreateCmd(app))
	cmd.AddCommand(newCategoriesUpdateCmd(app))
	cmd.AddCommand(newCategoriesDeleteCmd(app))
	return cmd
}

func newCategoriesListCmd(app *App) *cobra.Command {
	var page, limit int
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List task categories (paginated)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			sess, err := currentSession(store)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := requireFeature(sess, perm.FeatureGetCategory); err != nil {
				return writeErr(cmd, err)
			}

			client := newClient(app, store)
			res, err := client.ListCategories(cmd.Context(), page, limit, search)
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

func newCategoriesAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "List every category (unpaginated; for pickers)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			if _, err := currentSession(store); err != nil {
				return writeErr(cmd, err)
			}
			client := newClient(app, store)
			cats, err := client.AllCategories(cmd.Context())
			if err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, cats)
		},
	}
}

func newCategoriesCreateCmd(app *App) *cobra.Command {
	var in api.CategoryInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task category",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			sess, err := currentSession(store)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := requireFeature(sess, perm.FeatureAddCategory); err != nil {
				return writeErr(cmd, err)
			}

			client := newClient(app, store)
			if err := client.CreateCategory(cmd.Context(), in); err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, map[string]any{"message": "Task category added successfully!"})
		},
	}

	cmd.Flags().StringVar(&in.CategoryName, "name", "", "Category name")
	cmd.Flags().StringVar(&in.Description, "description", "", "Description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func newCategoriesUpdateCmd(app *App) *cobra.Command {
	var in api.CategoryInput

	cmd := &cobra.Command{
		Use:   "update <category-id>",
		Short: "Update a task category",
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
			if err := client.UpdateCategory(cmd.Context(), args[0], in); err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, map[string]any{"message": "Task category updated successfully!"})
		},
	}

	cmd.Flags().StringVar(&in.CategoryName, "name", "", "Category name")
	cmd.Flags().StringVar(&in.Description, "description", "", "Description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func newCategoriesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete a task category",
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
			if err := client.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, map[string]any{"message": "Task category deleted successfully!"})
		},
	}
}
