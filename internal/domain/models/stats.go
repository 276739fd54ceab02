package models

type DashboardStats struct {
	TotalClients        int `json:"total_clients"`
	AssignedClients     int `json:"assigned_clients"`
	TotalPositions      int `json:"total_positions"`
	AssignedPositions   int `json:"assigned_positions"`
	OpenPositions       int `json:"open_positions"`
	ProfilesShared      int `json:"profiles_shared"`
	InterviewsScheduled int `json:"interviews_scheduled"`
	CandidatesSelected  int `json:"candidates_selected"`
	FeedbackPending     int `json:"feedback_pending"`
}

type StatCard struct {
	Title string
	Value int
}

// StatCards follows the dashboard rule: totals win over assigned counts when present.
func (s DashboardStats) StatCards() []StatCard {
	clients := StatCard{Title: "Assigned Clients", Value: s.AssignedClients}
	if s.TotalClients != 0 {
		clients = StatCard{Title: "Total Clients", Value: s.TotalClients}
	}
	positions := StatCard{Title: "Assigned Positions", Value: s.AssignedPositions}
	if s.TotalPositions != 0 {
		positions = StatCard{Title: "Total Positions", Value: s.TotalPositions}
	}
	return []StatCard{
		clients,
		positions,
		{Title: "Profiles Shared", Value: s.ProfilesShared},
		{Title: "Interviews Scheduled", Value: s.InterviewsScheduled},
		{Title: "Candidates Selected", Value: s.CandidatesSelected},
		{Title: "Feedback Pending", Value: s.FeedbackPending},
	}
}
