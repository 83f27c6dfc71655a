package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/adnan116/todo-list-app-client/internal/model"
)

type CategoryPage struct {
	Categories      []model.TaskCategory `json:"categories"`
	TotalCategories int                  `json:"totalCategories"`
}

func (c *Client) ListCategories(ctx context.Context, page, limit int, search string) (CategoryPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if strings.TrimSpace(search) != "" {
		q.Set("search", search)
	}
	var out CategoryPage
	if err := c.do(ctx, http.MethodGet, "/task-category/list", q, nil, &out); err != nil {
		return CategoryPage{}, err
	}
	return out, nil
}

// AllCategories returns the unpaginated list used by task form selects and
// the task-list filter.
func (c *Client) AllCategories(ctx context.Context) ([]model.CategorySummary, error) {
	var out []model.CategorySummary
	if err := c.do(ctx, http.MethodGet, "/task-category/all-categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type CategoryInput struct {
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
}

func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) error {
	return c.do(ctx, http.MethodPost, "/task-category/create", nil, in, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryInput) error {
	return c.do(ctx, http.MethodPut, "/task-category/update/"+url.PathEscape(id), nil, in, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/task-category/delete/"+url.PathEscape(id), nil, nil, nil)
}
