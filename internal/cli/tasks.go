package cli

import (
	"github.com/adnan116/todo-list-app-client/internal/api"
	"github.com/adnan116/todo-list-app-client/internal/formctl"
	"github.com/adnan116/todo-list-app-client/internal/perm"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksCreateCmd(app))
	cmd.AddCommand(newTasksUpdateCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var page, limit int
	var search, categoryID, userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks (paginated, filterable)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			sess, err := currentSession(store)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := requireFeature(sess, perm.FeatureGetTask); err != nil {
				return writeErr(cmd, err)
			}

			// Non-admin sessions only ever see their own tasks.
			if !sess.IsAdmin() {
				userID = sess.UserInfo.UserID
			}

			client := newClient(app, store)
			res, err := client.ListTasks(cmd.Context(), page, limit, api.TaskFilter{
				Search:     search,
				CategoryID: categoryID,
				UserID:     userID,
			})
			if err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (default from config)")
	cmd.Flags().StringVar(&search, "search", "", "Free-text search")
	cmd.Flags().StringVar(&categoryID, "category-id", "", "Filter by category")
	cmd.Flags().StringVar(&userID, "user-id", "", "Filter by assignee (admin only)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if limit <= 0 {
			limit = app.cfg.PageSize
		}
	}
	return cmd
}

func taskInputFlags(cmd *cobra.Command, in *api.TaskInput) {
	cmd.Flags().StringVar(&in.Title, "title", "", "Title")
	cmd.Flags().StringVar(&in.Description, "description", "", "Description (markdown)")
	cmd.Flags().StringVar(&in.Status, "status", "", "Status (TODO|Pending|In Progress|Complete|Close|Cancelled)")
	cmd.Flags().StringVar(&in.Deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.CategoryID, "category-id", "", "Category id")
	cmd.Flags().StringVar(&in.UserID, "user-id", "", "Assignee user id")
}

func newTasksCreateCmd(app *App) *cobra.Command {
	var in api.TaskInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			sess, err := currentSession(store)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := requireFeature(sess, perm.FeatureAddTask); err != nil {
				return writeErr(cmd, err)
			}

			// Non-admin sessions can only create tasks for themselves.
			if !sess.IsAdmin() {
				in.UserID = sess.UserInfo.UserID
			}

			in.Deadline = formctl.NormalizeDate(in.Deadline)
			client := newClient(app, store)
			if err := client.CreateTask(cmd.Context(), in); err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, map[string]any{"message": "Task added successfully!"})
		},
	}

	taskInputFlags(cmd, &in)
	for _, f := range []string{"title", "description", "status", "deadline", "category-id", "user-id"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newTasksUpdateCmd(app *App) *cobra.Command {
	var in api.TaskInput

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sessionStore()
			if err != nil {
				return err
			}
			if _, err := currentSession(store); err != nil {
				return writeErr(cmd, err)
			}

			in.Deadline = formctl.NormalizeDate(in.Deadline)
			client := newClient(app, store)
			if err := client.UpdateTask(cmd.Context(), args[0], in); err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, map[string]any{"message": "Task updated successfully!"})
		},
	}

	taskInputFlags(cmd, &in)
	for _, f := range []string{"title", "description", "status", "deadline", "category-id", "user-id"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task (admin only server-side)",
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
			if err := client.DeleteTask(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, finishAuthError(store, err))
			}
			return writeOut(cmd, app, map[string]any{"message": "Task deleted successfully!"})
		},
	}
}
