package models

type Client struct {
	ID                  string    `json:"id"`
	ClientName          string    `json:"client_name"`
	Industry            string    `json:"industry"`
	OrganizationType    string    `json:"organization_type"`
	HeadquarterLocation string    `json:"headquarter_location"`
	OtherBranches       *string   `json:"other_branches"`
	Website             *string   `json:"website"`
	CoreBusiness        string    `json:"core_business"`
	ContactEmails       []string  `json:"contact_emails"`
	CreatedBy           string    `json:"created_by"`
	CreatedAt           Timestamp `json:"created_at"`
}

type NewClient struct {
	ClientName          string   `json:"client_name" validate:"required"`
	Industry            string   `json:"industry" validate:"required"`
	OrganizationType    string   `json:"organization_type" validate:"required"`
	HeadquarterLocation string   `json:"headquarter_location" validate:"required"`
	OtherBranches       *string  `json:"other_branches,omitempty"`
	Website             *string  `json:"website,omitempty"`
	CoreBusiness        string   `json:"core_business" validate:"required"`
	ContactEmails       []string `json:"contact_emails" validate:"dive,email"`
}
