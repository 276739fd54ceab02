package models

import (
	"slices"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleTeamLeader Role = "team_leader"
	RoleRecruiter  Role = "recruiter"
)

var AllRoles = []Role{RoleAdmin, RoleManager, RoleTeamLeader, RoleRecruiter}

func ToRole(s string) (Role, bool) {
	role := Role(s)
	return role, slices.Contains(AllRoles, role)
}

// Title is the heading shown on the dashboard.
func (r Role) Title() string {
	switch r {
	case RoleAdmin:
		return "Admin Dashboard"
	case RoleManager:
		return "Manager Dashboard"
	case RoleTeamLeader:
		return "Team Leader Dashboard"
	case RoleRecruiter:
		return "Recruiter Dashboard"
	default:
		return "Dashboard"
	}
}

// IsReviewer reports whether the role may review, share and schedule.
func (r Role) IsReviewer() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleTeamLeader
}

func (r Role) CanManageUsers() bool {
	return r == RoleAdmin || r == RoleManager
}

func (r Role) CanConfigureEmail() bool {
	return r == RoleAdmin
}
