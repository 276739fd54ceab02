package bot

import (
	"context"
	"errors"
	"strconv"

	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/repositories"
	"github.com/maxaizer/recruithub-bot/internal/services"
)

type mockApi struct {
	SentMessages []botApi.Chattable
}

func (m *mockApi) Send(chattable botApi.Chattable) (botApi.Message, error) {
	m.SentMessages = append(m.SentMessages, chattable)
	return botApi.Message{}, nil
}

func (m *mockApi) texts() []string {
	var texts []string
	for _, chattable := range m.SentMessages {
		if msg, ok := chattable.(botApi.MessageConfig); ok {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

func (m *mockApi) lastText() string {
	texts := m.texts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

func simulateUserInput(cmd command, inputs []string) {
	for _, input := range inputs {
		cmd.OnUserInput(input)
	}
}

type mockClientGateway struct {
	Clients []models.Client
	Err     error
}

func (m *mockClientGateway) List(_ context.Context) ([]models.Client, error) {
	return m.Clients, m.Err
}

func (m *mockClientGateway) Create(_ context.Context, client models.NewClient) (models.Client, error) {
	if m.Err != nil {
		return models.Client{}, m.Err
	}
	created := models.Client{ID: "c" + strconv.Itoa(len(m.Clients)), ClientName: client.ClientName,
		ContactEmails: client.ContactEmails, Website: client.Website, OtherBranches: client.OtherBranches}
	m.Clients = append(m.Clients, created)
	return created, nil
}

type mockPositionGateway struct {
	Positions []models.Position
	Created   []models.NewPosition
}

func (m *mockPositionGateway) List(_ context.Context) ([]models.Position, error) {
	return m.Positions, nil
}

func (m *mockPositionGateway) Get(_ context.Context, id string) (models.Position, error) {
	for _, position := range m.Positions {
		if position.ID == id {
			return position, nil
		}
	}
	return models.Position{}, errors.New("not found")
}

func (m *mockPositionGateway) Create(_ context.Context, position models.NewPosition) (models.Position, error) {
	m.Created = append(m.Created, position)
	return models.Position{ClientID: position.ClientID, JobTitle: position.JobTitle}, nil
}

type mockUserGateway struct {
	Users []models.User
}

func (m *mockUserGateway) List(_ context.Context) ([]models.User, error) {
	return m.Users, nil
}

func (m *mockUserGateway) Register(_ context.Context, user models.NewUser) (models.User, error) {
	created := models.User{ID: "u", Name: user.Name, Email: user.Email, Role: user.Role}
	m.Users = append(m.Users, created)
	return created, nil
}

type mockInterviewGateway struct {
	Scheduled []models.NewInterview
}

func (m *mockInterviewGateway) List(_ context.Context) ([]models.Interview, error) {
	return nil, nil
}

func (m *mockInterviewGateway) Schedule(_ context.Context, interview models.NewInterview) (models.Interview, error) {
	m.Scheduled = append(m.Scheduled, interview)
	return models.Interview{CandidateID: interview.CandidateID}, nil
}

type mockCandidateGateway struct {
	Candidates []models.Candidate
}

func (m *mockCandidateGateway) List(_ context.Context) ([]models.Candidate, error) {
	return m.Candidates, nil
}

func (m *mockCandidateGateway) Create(_ context.Context, candidate models.NewCandidate) (models.Candidate, error) {
	created := models.Candidate{ID: "new", Name: candidate.Name}
	m.Candidates = append(m.Candidates, created)
	return created, nil
}

func (m *mockCandidateGateway) Search(_ context.Context, _ models.SearchFilter) ([]models.Candidate, error) {
	return m.Candidates, nil
}

func (m *mockCandidateGateway) Act(_ context.Context, _ models.CandidateActionRequest) error {
	return nil
}

func (m *mockCandidateGateway) GeneratePDF(_ context.Context, _ []string) (models.Document, error) {
	return models.Document{}, nil
}

type appliedReview struct {
	CandidateID string
	Action      models.ProfileAction
	Reason      string
}

type mockReviewer struct {
	PendingCandidates []models.Candidate
	Applied           []appliedReview
}

func (m *mockReviewer) Pending(_ context.Context) ([]models.Candidate, error) {
	return m.PendingCandidates, nil
}

func (m *mockReviewer) Apply(_ context.Context, candidateID string, action models.ProfileAction, reason string) ([]models.Candidate, error) {
	m.Applied = append(m.Applied, appliedReview{CandidateID: candidateID, Action: action, Reason: reason})
	var rest []models.Candidate
	for _, candidate := range m.PendingCandidates {
		if candidate.ID != candidateID {
			rest = append(rest, candidate)
		}
	}
	m.PendingCandidates = rest
	return rest, nil
}

type mockSharer struct {
	ApprovedCandidates []models.Candidate
	GeneratedFor       [][]string
	Sent               []services.EmailDraft
	SendErr            error
	PrepareErr         error
}

func (m *mockSharer) Approved(_ context.Context) ([]models.Candidate, error) {
	return m.ApprovedCandidates, nil
}

func (m *mockSharer) NeedsConfirmation(ids []string) bool {
	return len(ids) == 1
}

func (m *mockSharer) GeneratePDF(_ context.Context, ids []string) (models.Document, error) {
	m.GeneratedFor = append(m.GeneratedFor, ids)
	return models.Document{Base64: "JVBERi0=", Filename: "profiles.pdf"}, nil
}

func (m *mockSharer) PrepareEmail(_ context.Context, _ []models.Candidate, ids []string) (services.EmailDraft, error) {
	if m.PrepareErr != nil {
		return services.EmailDraft{}, m.PrepareErr
	}
	return services.EmailDraft{To: "hr@acme.io", Subject: "Candidate Profiles", CandidateIDs: ids}, nil
}

func (m *mockSharer) SendEmail(_ context.Context, draft services.EmailDraft) ([]models.Candidate, error) {
	if m.SendErr != nil {
		return nil, m.SendErr
	}
	m.Sent = append(m.Sent, draft)
	return nil, nil
}

type mockSearcher struct {
	Forms []services.SearchForm
}

func (m *mockSearcher) Search(_ context.Context, form services.SearchForm) ([]models.Candidate, error) {
	m.Forms = append(m.Forms, form)
	if _, err := form.Filter(); err != nil {
		return nil, err
	}
	return []models.Candidate{{ID: "1", Name: "Asha"}}, nil
}

type mockSessionStore struct {
	Sessions map[int64]*models.Session
	Expired  []int64
}

func (m *mockSessionStore) Login(_ context.Context, userKey int64, email, _ string) (*models.Session, error) {
	session := &models.Session{UserKey: userKey, Token: "token", UserEmail: email, UserRole: models.RoleRecruiter}
	m.Sessions[userKey] = session
	return session, nil
}

func (m *mockSessionStore) Current(_ context.Context, userKey int64) (*models.Session, error) {
	session, ok := m.Sessions[userKey]
	if !ok {
		return nil, models.ErrNoSession
	}
	return session, nil
}

func (m *mockSessionStore) Logout(_ context.Context, userKey int64) error {
	delete(m.Sessions, userKey)
	return nil
}

func (m *mockSessionStore) Expire(_ context.Context, userKey int64) error {
	delete(m.Sessions, userKey)
	m.Expired = append(m.Expired, userKey)
	return nil
}

type mockPositionCache struct {
	Forgotten []int64
}

func (m *mockPositionCache) Get(ctx context.Context, _ int64, id string, source repositories.PositionSource) (models.Position, error) {
	return source.Get(ctx, id)
}

func (m *mockPositionCache) Forget(userKey int64) {
	m.Forgotten = append(m.Forgotten, userKey)
}

type mockEmailGateway struct {
	Current   models.EmailConfig
	ConfigErr error
	Saved     []models.EmailConfig
}

func (m *mockEmailGateway) Config(_ context.Context) (models.EmailConfig, error) {
	return m.Current, m.ConfigErr
}

func (m *mockEmailGateway) Configure(_ context.Context, cfg models.EmailConfig) error {
	m.Saved = append(m.Saved, cfg)
	return nil
}

func (m *mockEmailGateway) Send(_ context.Context, _ models.EmailMessage) error {
	return nil
}
