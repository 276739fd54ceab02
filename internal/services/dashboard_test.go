package services

import (
	"context"
	"testing"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_Dashboard_Overview_WhenRecruiter_ShouldHideManageClients(t *testing.T) {

	stats := &mockStats{}
	stats.On("Stats", mock.Anything).Return(models.DashboardStats{AssignedClients: 2, AssignedPositions: 4}, nil)

	overview, err := NewDashboard(stats).Overview(context.Background(), models.RoleRecruiter)
	assert.NoError(t, err)

	titles := lo.Map(overview.QuickActions, func(a models.QuickAction, _ int) string { return a.Title })
	assert.NotContains(t, titles, "Manage Clients")
	assert.NotContains(t, titles, "Review Profiles")
	assert.Equal(t, "Recruiter Dashboard", overview.Title)
	assert.Equal(t, models.StatCard{Title: "Assigned Clients", Value: 2}, overview.Cards[0])
	assert.Len(t, overview.Cards, 6)
}

func Test_Dashboard_Overview_WhenManager_ShouldShowTotalsAndReview(t *testing.T) {

	stats := &mockStats{}
	stats.On("Stats", mock.Anything).Return(models.DashboardStats{TotalClients: 10, TotalPositions: 7, FeedbackPending: 1}, nil)

	overview, err := NewDashboard(stats).Overview(context.Background(), models.RoleManager)
	assert.NoError(t, err)

	titles := lo.Map(overview.QuickActions, func(a models.QuickAction, _ int) string { return a.Title })
	assert.Equal(t, []string{"Manage Clients", "View Positions", "Add Candidates", "Review Profiles"}, titles)
	assert.Equal(t, models.StatCard{Title: "Total Positions", Value: 7}, overview.Cards[1])
	assert.Equal(t, models.StatCard{Title: "Feedback Pending", Value: 1}, overview.Cards[5])
}
