package services

import (
	"github.com/maxaizer/recruithub-bot/internal/clients/recruithub"
	"github.com/pkg/errors"
)

const timeoutMessage = "The request timed out. Please try again."

// FailureMessage turns err into chat text, using fallback for backend and transport errors.
func FailureMessage(err error, fallback string) string {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, recruithub.ErrTimeout):
		return timeoutMessage
	default:
		return fallback
	}
}

// DetailedFailureMessage prefers the backend detail over fallback.
func DetailedFailureMessage(err error, fallback string) string {
	if detail, ok := recruithub.DetailOf(err); ok {
		return detail
	}
	return FailureMessage(err, fallback)
}
