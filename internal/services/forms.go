package services

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// LocalDateTimeLayout is how users type interview times.
const LocalDateTimeLayout = "2006-01-02 15:04"

// ValidationError is a form problem detected before any request is sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a request payload against its validate tags.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := lo.Map(fieldErrors, func(fieldErr validator.FieldError, _ int) string {
		return describeFieldError(fieldErr)
	})
	return &ValidationError{Message: strings.Join(messages, "\n")}
}

func describeFieldError(fieldErr validator.FieldError) string {
	field := strings.ReplaceAll(fieldErr.Field(), "_", " ")
	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
	case "gte":
		return field + " must be at least " + fieldErr.Param()
	case "lte":
		return field + " must be at most " + fieldErr.Param()
	default:
		return field + " is invalid"
	}
}

// ValidateEmail checks a single address with the same rules as form payloads.
func ValidateEmail(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return newValidationError("%q is not a valid email address", email)
	}
	return nil
}

// SplitList splits comma separated input, trimming entries and dropping empty ones.
func SplitList(raw string) []string {
	parts := lo.Map(strings.Split(raw, ","), func(part string, _ int) string {
		return strings.TrimSpace(part)
	})
	return lo.Compact(parts)
}

func ParseFloat(field, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, newValidationError("%s must be a number", field)
	}
	return value, nil
}

func ParseInt(field, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, newValidationError("%s must be a whole number", field)
	}
	return value, nil
}

// ParseOptionalInt returns nil for blank input.
func ParseOptionalInt(field, raw string) (*int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	value, err := ParseInt(field, raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// OptionalString returns nil for blank input.
func OptionalString(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ParseLocalDateTime reads a wall-clock time in location and returns it as an absolute UTC instant.
func ParseLocalDateTime(raw string, location *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation(LocalDateTimeLayout, strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, newValidationError("date and time must look like %s", LocalDateTimeLayout)
	}
	return parsed.UTC(), nil
}
