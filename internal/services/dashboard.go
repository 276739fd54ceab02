package services

import (
	"context"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
)

type statsGateway interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

type Overview struct {
	Title        string
	Cards        []models.StatCard
	QuickActions []models.QuickAction
}

type Dashboard struct {
	stats statsGateway
}

func NewDashboard(stats statsGateway) *Dashboard {
	return &Dashboard{stats: stats}
}

func (d *Dashboard) Overview(ctx context.Context, role models.Role) (Overview, error) {
	stats, err := d.stats.Stats(ctx)
	if err != nil {
		return Overview{}, err
	}
	return Overview{
		Title:        role.Title(),
		Cards:        stats.StatCards(),
		QuickActions: models.QuickActionsFor(role),
	}, nil
}
