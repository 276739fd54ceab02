package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/maxaizer/recruithub-bot/internal/clients/recruithub"
	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/metrics"
	"github.com/maxaizer/recruithub-bot/internal/repositories"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	ErrNoCandidatesSelected = errors.New("Please select at least one candidate")
	ErrNoRecipients         = errors.New("Please enter at least one recipient email")
	ErrEmailNotConfigured   = errors.New("Email not configured. Please ask admin to configure SMTP settings first.")
	ErrEmailAuthFailed      = errors.New("Email authentication failed. Please check SMTP credentials.")
)

const SingleProfileWarning = "You have selected only one profile. Do you want to proceed?"

type sharingCandidates interface {
	List(ctx context.Context) ([]models.Candidate, error)
	GeneratePDF(ctx context.Context, ids []string) (models.Document, error)
}

type clientLister interface {
	List(ctx context.Context) ([]models.Client, error)
}

type emailSender interface {
	Send(ctx context.Context, message models.EmailMessage) error
}

type positionCache interface {
	Get(ctx context.Context, userKey int64, id string, source repositories.PositionSource) (models.Position, error)
}

// EmailDraft is the editable email built from a selection.
type EmailDraft struct {
	To           string
	Subject      string
	Body         string
	CandidateIDs []string
	Document     models.Document
}

type Sharer struct {
	userKey    int64
	candidates sharingCandidates
	positions  repositories.PositionSource
	clients    clientLister
	email      emailSender
	cache      positionCache
	now        func() time.Time
}

func NewSharer(userKey int64, candidates sharingCandidates, positions repositories.PositionSource,
	clients clientLister, email emailSender, cache positionCache) *Sharer {

	return &Sharer{
		userKey:    userKey,
		candidates: candidates,
		positions:  positions,
		clients:    clients,
		email:      email,
		cache:      cache,
		now:        time.Now,
	}
}

// Approved returns the profiles that can be shared.
func (s *Sharer) Approved(ctx context.Context) ([]models.Candidate, error) {
	candidates, err := s.candidates.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(candidates, func(c models.Candidate, _ int) bool {
		return c.HasStatus(models.StatusApproved)
	}), nil
}

// NeedsConfirmation reports whether sharing a lone profile must be confirmed first.
func (s *Sharer) NeedsConfirmation(ids []string) bool {
	return len(ids) == 1
}

func (s *Sharer) GeneratePDF(ctx context.Context, ids []string) (models.Document, error) {
	if len(ids) == 0 {
		return models.Document{}, ErrNoCandidatesSelected
	}
	return s.candidates.GeneratePDF(ctx, ids)
}

// PrepareEmail builds a draft addressed to every client behind the selected profiles.
// Recipients follow the order of approved, so the order of ids does not matter.
func (s *Sharer) PrepareEmail(ctx context.Context, approved []models.Candidate, ids []string) (EmailDraft, error) {

	if len(ids) == 0 {
		return EmailDraft{}, ErrNoCandidatesSelected
	}

	selected := lo.Filter(approved, func(c models.Candidate, _ int) bool {
		return lo.Contains(ids, c.ID)
	})
	selectedIDs := lo.Map(selected, func(c models.Candidate, _ int) string { return c.ID })
	if len(selectedIDs) == 0 {
		return EmailDraft{}, ErrNoCandidatesSelected
	}

	document, err := s.candidates.GeneratePDF(ctx, selectedIDs)
	if err != nil {
		return EmailDraft{}, err
	}

	clients, err := s.clients.List(ctx)
	if err != nil {
		return EmailDraft{}, err
	}
	clientsByID := lo.KeyBy(clients, func(c models.Client) string { return c.ID })

	var recipients []string
	for _, candidate := range selected {
		position, err := s.cache.Get(ctx, s.userKey, candidate.PositionID, s.positions)
		if err != nil {
			return EmailDraft{}, errors.Wrapf(err, "failed to resolve position %s", candidate.PositionID)
		}
		if client, ok := clientsByID[position.ClientID]; ok {
			recipients = append(recipients, client.ContactEmails...)
		}
	}

	count := len(selectedIDs)
	return EmailDraft{
		To:           strings.Join(lo.Uniq(recipients), ", "),
		Subject:      fmt.Sprintf("Candidate Profiles - %d Candidate%s", count, plural(count)),
		Body:         fmt.Sprintf("Dear Client,\n\nPlease find attached %d candidate profile%s for your review.\n\nBest regards,\nRecruitHub Team", count, plural(count)),
		CandidateIDs: selectedIDs,
		Document:     document,
	}, nil
}

// SendEmail delivers the draft and returns the refreshed approved list.
func (s *Sharer) SendEmail(ctx context.Context, draft EmailDraft) ([]models.Candidate, error) {

	recipients := SplitList(draft.To)
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	err := s.email.Send(ctx, models.EmailMessage{
		To:                 recipients,
		Subject:            draft.Subject,
		Body:               draft.Body,
		CandidateIDs:       draft.CandidateIDs,
		AttachmentBase64:   draft.Document.Base64,
		AttachmentFilename: fmt.Sprintf("candidates_%d.pdf", s.now().UnixMilli()),
	})
	if err != nil {
		return nil, classifyEmailError(err)
	}
	metrics.ProfilesSharedCounter.Add(float64(len(draft.CandidateIDs)))

	return s.Approved(ctx)
}

func classifyEmailError(err error) error {
	detail, _ := recruithub.DetailOf(err)
	switch recruithub.StatusOf(err) {
	case http.StatusBadRequest:
		if strings.Contains(strings.ToLower(detail), "not configured") {
			return ErrEmailNotConfigured
		}
	case http.StatusUnauthorized:
		return ErrEmailAuthFailed
	}
	return err
}

func ShareFailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoCandidatesSelected), errors.Is(err, ErrNoRecipients),
		errors.Is(err, ErrEmailNotConfigured), errors.Is(err, ErrEmailAuthFailed):
		return err.Error()
	}
	return DetailedFailureMessage(err, "Failed to send email")
}

func PrepareFailureMessage(err error) string {
	if errors.Is(err, ErrNoCandidatesSelected) {
		return err.Error()
	}
	return DetailedFailureMessage(err, "Failed to prepare email")
}

const ShareSuccessMessage = "Email sent successfully! Profiles marked as shared."

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
