package recruithub

import (
	"context"
	"net/http"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
)

type Interviews struct {
	resource
}

func (r *Interviews) List(ctx context.Context) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.client.do(ctx, request{operation: "interviews_list", method: http.MethodGet, path: "/interviews", auth: r.auth}, &interviews)
	return interviews, err
}

func (r *Interviews) Schedule(ctx context.Context, interview models.NewInterview) (models.Interview, error) {
	var created models.Interview
	err := r.client.do(ctx, request{
		operation: "interviews_create", method: http.MethodPost, path: "/interviews", body: interview, auth: r.auth,
	}, &created)
	return created, err
}
