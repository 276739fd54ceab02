package models

import "slices"

type Route string

const (
	RouteDashboard  Route = "Dashboard"
	RouteClients    Route = "Clients"
	RoutePositions  Route = "Positions"
	RouteCandidates Route = "Candidates"
	RouteSearch     Route = "Search"
	RouteReview     Route = "Review Profiles"
	RouteShare      Route = "Share Profiles"
	RouteInterviews Route = "Interviews"
	RouteUsers      Route = "Users"
)

type MenuItem struct {
	Route Route
	Roles []Role
}

var menu = []MenuItem{
	{Route: RouteDashboard, Roles: AllRoles},
	{Route: RouteClients, Roles: AllRoles},
	{Route: RoutePositions, Roles: AllRoles},
	{Route: RouteCandidates, Roles: AllRoles},
	{Route: RouteSearch, Roles: AllRoles},
	{Route: RouteReview, Roles: []Role{RoleAdmin, RoleManager, RoleTeamLeader}},
	{Route: RouteShare, Roles: []Role{RoleAdmin, RoleManager, RoleTeamLeader}},
	{Route: RouteInterviews, Roles: AllRoles},
	{Route: RouteUsers, Roles: []Role{RoleAdmin, RoleManager}},
}

// MenuFor returns the routes visible to role, in menu order.
func MenuFor(role Role) []Route {
	var routes []Route
	for _, item := range menu {
		if slices.Contains(item.Roles, role) {
			routes = append(routes, item.Route)
		}
	}
	return routes
}

func CanAccess(role Role, route Route) bool {
	return slices.Contains(MenuFor(role), route)
}

func IsRoute(s string) bool {
	for _, item := range menu {
		if string(item.Route) == s {
			return true
		}
	}
	return false
}

type QuickAction struct {
	Title       string
	Description string
	Route       Route
}

// QuickActionsFor mirrors the dashboard shortcuts: recruiters never get "Manage Clients".
func QuickActionsFor(role Role) []QuickAction {
	var actions []QuickAction
	if role != RoleRecruiter {
		actions = append(actions, QuickAction{"Manage Clients", "Add and manage clients", RouteClients})
	}
	actions = append(actions,
		QuickAction{"View Positions", "Browse open positions", RoutePositions},
		QuickAction{"Add Candidates", "Upload new candidates", RouteCandidates},
	)
	if role.IsReviewer() {
		actions = append(actions, QuickAction{"Review Profiles", "Approve or reject", RouteReview})
	}
	return actions
}
