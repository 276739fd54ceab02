package recruithub

import (
	"context"
	"net/http"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
)

type Users struct {
	resource
}

type registerResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

func (r *Users) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.client.do(ctx, request{operation: "users_list", method: http.MethodGet, path: "/users", auth: r.auth}, &users)
	return users, err
}

// Register creates a user on behalf of an admin or manager.
func (r *Users) Register(ctx context.Context, user models.NewUser) (models.User, error) {
	var resp registerResponse
	err := r.client.do(ctx, request{
		operation: "auth_register", method: http.MethodPost, path: "/auth/register", body: user, auth: r.auth,
	}, &resp)
	return resp.User, err
}
