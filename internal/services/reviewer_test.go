package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/maxaizer/recruithub-bot/internal/clients/recruithub"
	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func reviewFixture() []models.Candidate {
	return []models.Candidate{
		{ID: "1", Status: models.StatusSourced},
		{ID: "2", Status: models.StatusApproved},
		{ID: "3", Status: models.StatusShortlisted},
		{ID: "4", Status: models.StatusRejected},
	}
}

func Test_Reviewer_Pending_ShouldKeepSourcedAndShortlisted(t *testing.T) {

	candidates := &mockCandidates{}
	candidates.On("List", mock.Anything).Return(reviewFixture(), nil)

	pending, err := NewReviewer(candidates).Pending(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, []string{pending[0].ID, pending[1].ID})
}

func Test_Reviewer_Apply_WhenRejectWithoutReason_ShouldNotCallBackend(t *testing.T) {

	candidates := &mockCandidates{}
	reviewer := NewReviewer(candidates)

	for _, reason := range []string{"", "   ", "\n\t"} {
		_, err := reviewer.Apply(context.Background(), "1", models.ActionReject, reason)
		assert.True(t, errors.Is(err, ErrReasonRequired))
	}

	candidates.AssertNotCalled(t, "Act", mock.Anything, mock.Anything)
	candidates.AssertNotCalled(t, "List", mock.Anything)
}

func Test_Reviewer_Apply_WhenUnknownAction_ShouldNotCallBackend(t *testing.T) {

	candidates := &mockCandidates{}

	_, err := NewReviewer(candidates).Apply(context.Background(), "1", "promote", "")

	assert.True(t, errors.Is(err, ErrUnknownAction))
	candidates.AssertNotCalled(t, "Act", mock.Anything, mock.Anything)
}

func Test_Reviewer_Apply_WhenReject_ShouldSendTrimmedReasonAndRefetch(t *testing.T) {

	candidates := &mockCandidates{}
	candidates.On("Act", mock.Anything, mock.MatchedBy(func(r models.CandidateActionRequest) bool {
		return r.CandidateID == "1" && r.Action == models.ActionReject && r.Reason != nil && *r.Reason == "No Go experience"
	})).Return(nil)
	candidates.On("List", mock.Anything).Return(reviewFixture()[1:], nil)

	pending, err := NewReviewer(candidates).Apply(context.Background(), "1", models.ActionReject, "  No Go experience ")

	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "3", pending[0].ID)
	candidates.AssertExpectations(t)
}

func Test_Reviewer_Apply_WhenApprove_ShouldOmitReason(t *testing.T) {

	candidates := &mockCandidates{}
	candidates.On("Act", mock.Anything, models.CandidateActionRequest{CandidateID: "3", Action: models.ActionApprove}).Return(nil)
	candidates.On("List", mock.Anything).Return(reviewFixture(), nil)

	_, err := NewReviewer(candidates).Apply(context.Background(), "3", models.ActionApprove, "ignored")

	assert.NoError(t, err)
	candidates.AssertExpectations(t)
}

func Test_Reviewer_Apply_WhenBackendFails_ShouldNotRefetch(t *testing.T) {

	candidates := &mockCandidates{}
	candidates.On("Act", mock.Anything, mock.Anything).Return(&recruithub.APIError{Status: http.StatusBadRequest, Detail: "Invalid transition"})

	pending, err := NewReviewer(candidates).Apply(context.Background(), "2", models.ActionShortlist, "")

	assert.Error(t, err)
	assert.Nil(t, pending)
	assert.Equal(t, "Failed to shortlist candidate", ReviewFailureMessage(err, models.ActionShortlist))
	candidates.AssertNotCalled(t, "List", mock.Anything)
}

func Test_ReviewMessages_ShouldUsePastTense(t *testing.T) {
	assert.Equal(t, "Candidate approved successfully!", ReviewSuccessMessage(models.ActionApprove))
	assert.Equal(t, "Candidate shortlisted successfully!", ReviewSuccessMessage(models.ActionShortlist))
	assert.Equal(t, "Rejection reason is required", ReviewFailureMessage(ErrReasonRequired, models.ActionReject))
}
