package recruithub

import (
	"context"
	"net/http"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a bearer token. It is the only unauthenticated call.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, request{
		operation: "auth_login",
		method:    http.MethodPost,
		path:      "/auth/login",
		body:      loginRequest{Email: email, Password: password},
	}, &result)
	return result, err
}
