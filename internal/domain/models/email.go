package models

type EmailConfig struct {
	SMTPHost     string `json:"smtp_host" validate:"required"`
	SMTPPort     int    `json:"smtp_port" validate:"gte=1,lte=65535"`
	SMTPUser     string `json:"smtp_user" validate:"required"`
	SMTPPassword string `json:"smtp_password,omitempty"`
	FromEmail    string `json:"from_email" validate:"required,email"`
	UseTLS       bool   `json:"use_tls"`
}

type SMTPPreset struct {
	Name   string
	Host   string
	Port   int
	UseTLS bool
}

var SMTPPresets = []SMTPPreset{
	{Name: "gmail", Host: "smtp.gmail.com", Port: 587, UseTLS: true},
	{Name: "outlook", Host: "smtp-mail.outlook.com", Port: 587, UseTLS: true},
	{Name: "office365", Host: "smtp.office365.com", Port: 587, UseTLS: true},
}

type EmailMessage struct {
	To                 []string `json:"to"`
	Subject            string   `json:"subject"`
	Body               string   `json:"body"`
	CandidateIDs       []string `json:"candidate_ids"`
	AttachmentBase64   string   `json:"attachment_base64,omitempty"`
	AttachmentFilename string   `json:"attachment_filename,omitempty"`
}
