package services

import (
	"context"
	"strings"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/metrics"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	ErrUnknownAction  = errors.New("unknown review action")
	ErrReasonRequired = errors.New("Rejection reason is required")
)

type reviewGateway interface {
	List(ctx context.Context) ([]models.Candidate, error)
	Act(ctx context.Context, action models.CandidateActionRequest) error
}

type Reviewer struct {
	candidates reviewGateway
}

func NewReviewer(candidates reviewGateway) *Reviewer {
	return &Reviewer{candidates: candidates}
}

// Pending returns profiles still waiting for a decision.
func (r *Reviewer) Pending(ctx context.Context) ([]models.Candidate, error) {
	candidates, err := r.candidates.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(candidates, func(c models.Candidate, _ int) bool {
		return c.HasStatus(models.StatusSourced, models.StatusShortlisted)
	}), nil
}

// Apply submits a review decision and returns the refreshed pending list.
// Nothing is sent when the action is unknown or a rejection has no reason.
func (r *Reviewer) Apply(ctx context.Context, candidateID string, action models.ProfileAction, reason string) ([]models.Candidate, error) {

	if !action.IsValid() {
		return nil, ErrUnknownAction
	}

	request := models.CandidateActionRequest{CandidateID: candidateID, Action: action}
	if action == models.ActionReject {
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return nil, ErrReasonRequired
		}
		request.Reason = &reason
	}

	if err := r.candidates.Act(ctx, request); err != nil {
		return nil, err
	}
	metrics.CandidateActionsCounter.WithLabelValues(string(action)).Inc()

	return r.Pending(ctx)
}

func ReviewSuccessMessage(action models.ProfileAction) string {
	return "Candidate " + action.PastTense() + " successfully!"
}

func ReviewFailureMessage(err error, action models.ProfileAction) string {
	if errors.Is(err, ErrReasonRequired) {
		return ErrReasonRequired.Error()
	}
	return FailureMessage(err, "Failed to "+string(action)+" candidate")
}
