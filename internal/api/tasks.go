package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/adnan116/todo-list-app-client/internal/model"
)

type TaskPage struct {
	Tasks      []model.Task `json:"tasks"`
	TotalTasks int          `json:"totalTasks"`
}

// TaskFilter carries the optional foreign-key filters of the task listing.
// UserID doubles as the implicit own-tasks scope for non-admin sessions.
type TaskFilter struct {
	Search     string
	CategoryID string
	UserID     string
}

func (c *Client) ListTasks(ctx context.Context, page, limit int, f TaskFilter) (TaskPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if strings.TrimSpace(f.Search) != "" {
		q.Set("search", f.Search)
	}
	if strings.TrimSpace(f.CategoryID) != "" {
		q.Set("categoryId", f.CategoryID)
	}
	if strings.TrimSpace(f.UserID) != "" {
		q.Set("userId", f.UserID)
	}
	var out TaskPage
	if err := c.do(ctx, http.MethodGet, "/task/list", q, nil, &out); err != nil {
		return TaskPage{}, err
	}
	return out, nil
}

// TaskInput is the create/update payload; CategoryID and UserID are bare ids.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Deadline    string `json:"deadline"`
	CategoryID  string `json:"categoryId"`
	UserID      string `json:"userId"`
}

func (c *Client) CreateTask(ctx context.Context, in TaskInput) error {
	return c.do(ctx, http.MethodPost, "/task/create", nil, in, nil)
}

func (c *Client) UpdateTask(ctx context.Context, id string, in TaskInput) error {
	return c.do(ctx, http.MethodPut, "/task/update/"+url.PathEscape(id), nil, in, nil)
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/task/delete/"+url.PathEscape(id), nil, nil, nil)
}
