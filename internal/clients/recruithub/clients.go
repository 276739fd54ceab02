package recruithub

import (
	"context"
	"net/http"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
)

type Clients struct {
	resource
}

func (r *Clients) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	err := r.client.do(ctx, request{operation: "clients_list", method: http.MethodGet, path: "/clients", auth: r.auth}, &clients)
	return clients, err
}

func (r *Clients) Create(ctx context.Context, client models.NewClient) (models.Client, error) {
	var created models.Client
	err := r.client.do(ctx, request{
		operation: "clients_create", method: http.MethodPost, path: "/clients", body: client, auth: r.auth,
	}, &created)
	return created, err
}
