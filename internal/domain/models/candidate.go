package models

import "slices"

type CandidateStatus string

const (
	StatusSourced            CandidateStatus = "sourced"
	StatusShortlisted        CandidateStatus = "shortlisted"
	StatusApproved           CandidateStatus = "approved"
	StatusRejected           CandidateStatus = "rejected"
	StatusSharedWithClient   CandidateStatus = "shared_with_client"
	StatusInterviewScheduled CandidateStatus = "interview_scheduled"
	StatusSelected           CandidateStatus = "selected"
)

type ProfileAction string

const (
	ActionShortlist ProfileAction = "shortlist"
	ActionApprove   ProfileAction = "approve"
	ActionReject    ProfileAction = "reject"
)

var ProfileActions = []ProfileAction{ActionShortlist, ActionApprove, ActionReject}

func (a ProfileAction) IsValid() bool {
	return slices.Contains(ProfileActions, a)
}

func (a ProfileAction) PastTense() string {
	switch a {
	case ActionShortlist:
		return "shortlisted"
	case ActionApprove:
		return "approved"
	case ActionReject:
		return "rejected"
	default:
		return string(a) + "ed"
	}
}

type Candidate struct {
	ID                 string          `json:"id"`
	PositionID         string          `json:"position_id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	ContactNumber      string          `json:"contact_number"`
	Qualification      string          `json:"qualification"`
	IndustrySector     string          `json:"industry_sector"`
	CurrentDesignation string          `json:"current_designation"`
	Department         string          `json:"department"`
	CurrentLocation    string          `json:"current_location"`
	CurrentCTC         float64         `json:"current_ctc"`
	YearsOfExperience  float64         `json:"years_of_experience"`
	ExpectedCTC        float64         `json:"expected_ctc"`
	NoticePeriod       string          `json:"notice_period"`
	Status             CandidateStatus `json:"status"`
	AddedBy            string          `json:"added_by"`
	RejectionReason    *string         `json:"rejection_reason"`
	CreatedAt          Timestamp       `json:"created_at"`
}

func (c Candidate) HasStatus(statuses ...CandidateStatus) bool {
	return slices.Contains(statuses, c.Status)
}

type NewCandidate struct {
	PositionID         string  `json:"position_id" validate:"required"`
	Name               string  `json:"name" validate:"required"`
	Email              string  `json:"email" validate:"required,email"`
	ContactNumber      string  `json:"contact_number" validate:"required"`
	Qualification      string  `json:"qualification" validate:"required"`
	IndustrySector     string  `json:"industry_sector" validate:"required"`
	CurrentDesignation string  `json:"current_designation" validate:"required"`
	Department         string  `json:"department" validate:"required"`
	CurrentLocation    string  `json:"current_location" validate:"required"`
	CurrentCTC         float64 `json:"current_ctc" validate:"gte=0"`
	YearsOfExperience  float64 `json:"years_of_experience" validate:"gte=0"`
	ExpectedCTC        float64 `json:"expected_ctc" validate:"gte=0"`
	NoticePeriod       string  `json:"notice_period" validate:"required"`
}

type CandidateActionRequest struct {
	CandidateID string        `json:"candidate_id"`
	Action      ProfileAction `json:"action"`
	Reason      *string       `json:"reason,omitempty"`
}

// SearchFilter is sparse: unset fields never reach the wire.
type SearchFilter struct {
	Keywords      string   `json:"keywords,omitempty"`
	CurrentCity   string   `json:"current_city,omitempty"`
	MinExperience *float64 `json:"min_experience,omitempty"`
	MaxExperience *float64 `json:"max_experience,omitempty"`
	MinSalary     *float64 `json:"min_salary,omitempty"`
	MaxSalary     *float64 `json:"max_salary,omitempty"`
	Qualification string   `json:"qualification,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	Department    string   `json:"department,omitempty"`
	Designation   string   `json:"designation,omitempty"`
}

type Document struct {
	Base64   string `json:"pdf_base64"`
	Filename string `json:"filename"`
}
