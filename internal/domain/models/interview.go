package models

type InterviewMode string

const (
	ModeOnline     InterviewMode = "online"
	ModeFaceToFace InterviewMode = "face_to_face"
	ModeTelephonic InterviewMode = "telephonic"
)

var InterviewModes = []InterviewMode{ModeOnline, ModeFaceToFace, ModeTelephonic}

type Interview struct {
	ID            string        `json:"id"`
	CandidateID   string        `json:"candidate_id"`
	PositionID    string        `json:"position_id"`
	InterviewMode InterviewMode `json:"interview_mode"`
	InterviewDate Timestamp     `json:"interview_date"`
	ActionPlan    *string       `json:"action_plan"`
	Feedback      *string       `json:"feedback"`
	Result        *string       `json:"result"`
	ScheduledBy   string        `json:"scheduled_by"`
	CreatedAt     Timestamp     `json:"created_at"`
}

// NewInterview carries InterviewDate already normalised to an absolute UTC instant.
type NewInterview struct {
	CandidateID   string        `json:"candidate_id" validate:"required"`
	PositionID    string        `json:"position_id" validate:"required"`
	InterviewMode InterviewMode `json:"interview_mode" validate:"required,oneof=online face_to_face telephonic"`
	InterviewDate string        `json:"interview_date" validate:"required"`
	ActionPlan    string        `json:"action_plan"`
}
