package recruithub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("insufficient permissions")
	ErrNotFound     = errors.New("not found")
	ErrTimeout      = errors.New("request timed out")
)

// APIError is a non-2xx answer of the backend. Detail holds the backend message verbatim.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Detail)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	default:
		return false
	}
}

// DetailOf returns the backend detail carried by err, if any.
func DetailOf(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail, true
	}
	return "", false
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}

type validationIssue struct {
	Msg string `json:"msg"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Detail) == 0 {
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}

	var detail string
	if err := json.Unmarshal(parsed.Detail, &detail); err == nil {
		apiErr.Detail = detail
		return apiErr
	}

	// FastAPI validation errors come as a list of issues.
	var issues []validationIssue
	if err := json.Unmarshal(parsed.Detail, &issues); err == nil {
		messages := make([]string, 0, len(issues))
		for _, issue := range issues {
			if issue.Msg != "" {
				messages = append(messages, issue.Msg)
			}
		}
		apiErr.Detail = strings.Join(messages, "; ")
		return apiErr
	}

	apiErr.Detail = string(parsed.Detail)
	return apiErr
}
