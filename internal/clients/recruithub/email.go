package recruithub

import (
	"context"
	"net/http"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
)

type Email struct {
	resource
}

// Config returns the stored SMTP settings; the password is never part of the answer.
func (r *Email) Config(ctx context.Context) (models.EmailConfig, error) {
	var cfg models.EmailConfig
	err := r.client.do(ctx, request{operation: "email_config", method: http.MethodGet, path: "/email/config", auth: r.auth}, &cfg)
	cfg.SMTPPassword = ""
	return cfg, err
}

func (r *Email) Configure(ctx context.Context, cfg models.EmailConfig) error {
	return r.client.do(ctx, request{
		operation: "email_configure", method: http.MethodPost, path: "/email/configure", body: cfg, auth: r.auth,
	}, nil)
}

func (r *Email) Send(ctx context.Context, message models.EmailMessage) error {
	return r.client.do(ctx, request{
		operation: "email_send", method: http.MethodPost, path: "/email/send", body: message, auth: r.auth,
	}, nil)
}
