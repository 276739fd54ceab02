package recruithub

import (
	"context"
	"net/http"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
)

type Dashboard struct {
	resource
}

func (r *Dashboard) Stats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := r.client.do(ctx, request{operation: "dashboard_stats", method: http.MethodGet, path: "/dashboard/stats", auth: r.auth}, &stats)
	return stats, err
}
