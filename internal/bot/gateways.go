package bot

import (
	"context"

	"github.com/maxaizer/recruithub-bot/internal/clients/recruithub"
	"github.com/maxaizer/recruithub-bot/internal/domain/models"
)

type clientGateway interface {
	List(ctx context.Context) ([]models.Client, error)
	Create(ctx context.Context, client models.NewClient) (models.Client, error)
}

type positionGateway interface {
	List(ctx context.Context) ([]models.Position, error)
	Get(ctx context.Context, id string) (models.Position, error)
	Create(ctx context.Context, position models.NewPosition) (models.Position, error)
}

type candidateGateway interface {
	List(ctx context.Context) ([]models.Candidate, error)
	Create(ctx context.Context, candidate models.NewCandidate) (models.Candidate, error)
	Search(ctx context.Context, filter models.SearchFilter) ([]models.Candidate, error)
	Act(ctx context.Context, action models.CandidateActionRequest) error
	GeneratePDF(ctx context.Context, ids []string) (models.Document, error)
}

type interviewGateway interface {
	List(ctx context.Context) ([]models.Interview, error)
	Schedule(ctx context.Context, interview models.NewInterview) (models.Interview, error)
}

type userGateway interface {
	List(ctx context.Context) ([]models.User, error)
	Register(ctx context.Context, user models.NewUser) (models.User, error)
}

type emailGateway interface {
	Config(ctx context.Context) (models.EmailConfig, error)
	Configure(ctx context.Context, cfg models.EmailConfig) error
	Send(ctx context.Context, message models.EmailMessage) error
}

type statsGateway interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

// gateways are the backend resources bound to one session.
type gateways struct {
	clients    clientGateway
	positions  positionGateway
	candidates candidateGateway
	interviews interviewGateway
	users      userGateway
	email      emailGateway
	dashboard  statsGateway
}

func recruitHubGateways(client *recruithub.Client) func(session *models.Session) gateways {
	return func(session *models.Session) gateways {
		api := recruithub.NewAPI(client, session)
		return gateways{
			clients:    api.Clients,
			positions:  api.Positions,
			candidates: api.Candidates,
			interviews: api.Interviews,
			users:      api.Users,
			email:      api.Email,
			dashboard:  api.Dashboard,
		}
	}
}
