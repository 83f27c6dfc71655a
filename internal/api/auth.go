package api

import (
	"context"
	"net/http"

	"github.com/adnan116/todo-list-app-client/internal/model"
)

// LoginResult is the successful `/user/login` payload. PermittedFeatures is
// the server-granted capability list that drives navigation visibility.
type LoginResult struct {
	AccessToken       string         `json:"accessToken"`
	UserInfo          model.UserInfo `json:"userInfo"`
	UserType          string         `json:"userType"`
	PermittedFeatures []string       `json:"permittedFeatures"`
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/user/login", nil, body, &out); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

// SignupInput mirrors the self-service `/user/sign-up` form. Unlike admin
// user creation there is no role selection.
type SignupInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DOB         string `json:"dob"`
	Gender      string `json:"gender"`
	Religion    string `json:"religion"`
	Password    string `json:"password"`
}

func (c *Client) SignUp(ctx context.Context, in SignupInput) error {
	return c.do(ctx, http.MethodPost, "/user/sign-up", nil, in, nil)
}
