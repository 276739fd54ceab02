package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/maxaizer/recruithub-bot/internal/services"
)

type dashboardCommand struct {
	commandBase
	dashboard *services.Dashboard
	role      models.Role
}

func newDashboardCommand(api apiInterface, chatID int64, dashboard *services.Dashboard, role models.Role) *dashboardCommand {
	return &dashboardCommand{commandBase: commandBase{api: api, chatID: chatID}, dashboard: dashboard, role: role}
}

func (c *dashboardCommand) Run() {
	overview, err := c.dashboard.Overview(context.Background(), c.role)
	if err != nil {
		c.fail(err, services.FailureMessage(err, "Failed to load dashboard"))
		return
	}
	c.finish(renderOverview(overview))
}

func (c *dashboardCommand) OnUserInput(string) {}

func renderOverview(overview services.Overview) string {
	var builder strings.Builder
	builder.WriteString(overview.Title)
	builder.WriteString("\n")
	for _, card := range overview.Cards {
		builder.WriteString(fmt.Sprintf("\n%s: %d", card.Title, card.Value))
	}
	builder.WriteString("\n\nQuick actions:")
	for _, action := range overview.QuickActions {
		builder.WriteString(fmt.Sprintf("\n• %s (%s): %s", action.Title, action.Route, action.Description))
	}
	return builder.String()
}
