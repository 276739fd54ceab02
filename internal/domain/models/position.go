package models

type WorkMode string

const (
	WorkModeOnsite WorkMode = "onsite"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeRemote WorkMode = "remote"
)

var WorkModes = []WorkMode{WorkModeOnsite, WorkModeHybrid, WorkModeRemote}

type PositionStatus string

const (
	PositionOpen       PositionStatus = "open"
	PositionInProgress PositionStatus = "in_progress"
	PositionOnHold     PositionStatus = "on_hold"
	PositionClosed     PositionStatus = "closed"
)

type Position struct {
	ID                 string         `json:"id"`
	ClientID           string         `json:"client_id"`
	JobTitle           string         `json:"job_title"`
	Department         string         `json:"department"`
	NumOpenings        int            `json:"num_openings"`
	ReasonForHiring    string         `json:"reason_for_hiring"`
	TeamSize           *int           `json:"team_size"`
	Location           string         `json:"location"`
	WorkMode           WorkMode       `json:"work_mode"`
	WorkingDays        string         `json:"working_days"`
	Qualification      string         `json:"qualification"`
	Experience         string         `json:"experience"`
	MustHaveSkills     []string       `json:"must_have_skills"`
	GoodToHaveSkills   []string       `json:"good_to_have_skills"`
	GenderPreference   *string        `json:"gender_preference"`
	AssignedRecruiters []string       `json:"assigned_recruiters"`
	Status             PositionStatus `json:"status"`
	CreatedBy          string         `json:"created_by"`
	CreatedAt          Timestamp      `json:"created_at"`
}

type NewPosition struct {
	ClientID           string   `json:"client_id" validate:"required"`
	JobTitle           string   `json:"job_title" validate:"required"`
	Department         string   `json:"department" validate:"required"`
	NumOpenings        int      `json:"num_openings" validate:"gte=1"`
	ReasonForHiring    string   `json:"reason_for_hiring" validate:"required"`
	TeamSize           *int     `json:"team_size"`
	Location           string   `json:"location" validate:"required"`
	WorkMode           WorkMode `json:"work_mode" validate:"required,oneof=onsite hybrid remote"`
	WorkingDays        string   `json:"working_days" validate:"required"`
	Qualification      string   `json:"qualification" validate:"required"`
	Experience         string   `json:"experience" validate:"required"`
	MustHaveSkills     []string `json:"must_have_skills"`
	GoodToHaveSkills   []string `json:"good_to_have_skills"`
	GenderPreference   *string  `json:"gender_preference,omitempty"`
	AssignedRecruiters []string `json:"assigned_recruiters"`
}
