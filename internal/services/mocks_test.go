package services

import (
	"context"
	"time"

	"github.com/maxaizer/recruithub-bot/internal/clients/recruithub"
	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type mockCandidates struct {
	mock.Mock
}

func (m *mockCandidates) List(ctx context.Context) ([]models.Candidate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Candidate), args.Error(1)
}

func (m *mockCandidates) Act(ctx context.Context, action models.CandidateActionRequest) error {
	return m.Called(ctx, action).Error(0)
}

func (m *mockCandidates) Search(ctx context.Context, filter models.SearchFilter) ([]models.Candidate, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Candidate), args.Error(1)
}

func (m *mockCandidates) GeneratePDF(ctx context.Context, ids []string) (models.Document, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(models.Document), args.Error(1)
}

type mockPositions struct {
	mock.Mock
}

func (m *mockPositions) Get(ctx context.Context, id string) (models.Position, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Position), args.Error(1)
}

type mockClients struct {
	mock.Mock
}

func (m *mockClients) List(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Client), args.Error(1)
}

type mockEmail struct {
	mock.Mock
}

func (m *mockEmail) Send(ctx context.Context, message models.EmailMessage) error {
	return m.Called(ctx, message).Error(0)
}

type passThroughCache struct{}

func (passThroughCache) Get(ctx context.Context, _ int64, id string, source repositories.PositionSource) (models.Position, error) {
	return source.Get(ctx, id)
}

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Save(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessions) Get(ctx context.Context, userKey int64) (*models.Session, error) {
	args := m.Called(ctx, userKey)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *mockSessions) Remove(ctx context.Context, userKey int64) error {
	return m.Called(ctx, userKey).Error(0)
}

func (m *mockSessions) RemoveExpired(ctx context.Context, now time.Time) ([]int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]int64), args.Error(1)
}

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Login(ctx context.Context, email, password string) (recruithub.LoginResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(recruithub.LoginResult), args.Error(1)
}

type mockAI struct {
	mock.Mock
}

func (m *mockAI) GenerateResponse(ctx context.Context, request string) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

type mockStats struct {
	mock.Mock
}

func (m *mockStats) Stats(ctx context.Context) (models.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.DashboardStats), args.Error(1)
}
