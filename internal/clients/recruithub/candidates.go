package recruithub

import (
	"context"
	"net/http"
	"net/url"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
)

type Candidates struct {
	resource
}

func (r *Candidates) List(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.client.do(ctx, request{operation: "candidates_list", method: http.MethodGet, path: "/candidates", auth: r.auth}, &candidates)
	return candidates, err
}

func (r *Candidates) Create(ctx context.Context, candidate models.NewCandidate) (models.Candidate, error) {
	var created models.Candidate
	err := r.client.do(ctx, request{
		operation: "candidates_create", method: http.MethodPost, path: "/candidates", body: candidate, auth: r.auth,
	}, &created)
	return created, err
}

func (r *Candidates) Search(ctx context.Context, filter models.SearchFilter) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.client.do(ctx, request{
		operation: "candidates_search", method: http.MethodPost, path: "/candidates/search", body: filter, auth: r.auth,
	}, &candidates)
	return candidates, err
}

func (r *Candidates) Act(ctx context.Context, action models.CandidateActionRequest) error {
	return r.client.do(ctx, request{
		operation: "candidates_action",
		method:    http.MethodPost,
		path:      "/candidates/" + url.PathEscape(action.CandidateID) + "/action",
		body:      action,
		auth:      r.auth,
	}, nil)
}

func (r *Candidates) GeneratePDF(ctx context.Context, ids []string) (models.Document, error) {
	var document models.Document
	err := r.client.do(ctx, request{
		operation: "candidates_generate_pdf", method: http.MethodPost, path: "/candidates/generate-pdf", body: ids, auth: r.auth,
	}, &document)
	return document, err
}
