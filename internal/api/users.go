package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/adnan116/todo-list-app-client/internal/model"
)

// UserPage is one page of the paginated user listing.
type UserPage struct {
	Users      []model.User `json:"users"`
	TotalUsers int          `json:"totalUsers"`
}

// ListUsers fetches one 1-based page. search is optional free text.
func (c *Client) ListUsers(ctx context.Context, page, limit int, search string) (UserPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if strings.TrimSpace(search) != "" {
		q.Set("search", search)
	}
	var out UserPage
	if err := c.do(ctx, http.MethodGet, "/user/list", q, nil, &out); err != nil {
		return UserPage{}, err
	}
	return out, nil
}

// AllUsers returns the unpaginated summary list used by assignee pickers and
// task filters.
func (c *Client) AllUsers(ctx context.Context) ([]model.UserSummary, error) {
	var out []model.UserSummary
	if err := c.do(ctx, http.MethodGet, "/user/all-users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllRoles returns the role options for the admin user forms.
func (c *Client) AllRoles(ctx context.Context) ([]model.Role, error) {
	var out []model.Role
	if err := c.do(ctx, http.MethodGet, "/user/all-roles", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserInput is the create/update payload. RoleID is the bare role id even
// though reads embed a role summary.
type UserInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DOB         string `json:"dob"`
	Gender      string `json:"gender"`
	Religion    string `json:"religion"`
	Password    string `json:"password,omitempty"`
	RoleID      string `json:"roleId"`
}

func (c *Client) CreateUser(ctx context.Context, in UserInput) error {
	return c.do(ctx, http.MethodPost, "/user/create", nil, in, nil)
}

func (c *Client) UpdateUser(ctx context.Context, id string, in UserInput) error {
	return c.do(ctx, http.MethodPut, "/user/update/"+url.PathEscape(id), nil, in, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/user/delete/"+url.PathEscape(id), nil, nil, nil)
}
