package recruithub

import (
	"context"
	"net/http"
	"net/url"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
)

type Positions struct {
	resource
}

func (r *Positions) List(ctx context.Context) ([]models.Position, error) {
	var positions []models.Position
	err := r.client.do(ctx, request{operation: "positions_list", method: http.MethodGet, path: "/positions", auth: r.auth}, &positions)
	return positions, err
}

func (r *Positions) Get(ctx context.Context, id string) (models.Position, error) {
	var position models.Position
	err := r.client.do(ctx, request{
		operation: "positions_get", method: http.MethodGet, path: "/positions/" + url.PathEscape(id), auth: r.auth,
	}, &position)
	return position, err
}

func (r *Positions) Create(ctx context.Context, position models.NewPosition) (models.Position, error) {
	var created models.Position
	err := r.client.do(ctx, request{
		operation: "positions_create", method: http.MethodPost, path: "/positions", body: position, auth: r.auth,
	}, &created)
	return created, err
}
