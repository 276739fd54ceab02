package models

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
)

var ErrNoSession = errors.New("no active session")

// Session is the persisted login of one Telegram user.
type Session struct {
	UserKey   int64 `gorm:"primaryKey;autoIncrement:false"`
	Token     string
	UserID    string
	UserName  string
	UserEmail string
	UserRole  Role
	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time
}

func NewSession(userKey int64, token string, user User, expiresAt *time.Time) *Session {
	return &Session{
		UserKey:   userKey,
		Token:     token,
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserRole:  user.Role,
		ExpiresAt: expiresAt,
	}
}

func (s *Session) User() User {
	return User{ID: s.UserID, Name: s.UserName, Email: s.UserEmail, Role: s.UserRole}
}

func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

// AuthHeader returns the bearer header for authenticated requests.
func (s *Session) AuthHeader() (http.Header, error) {
	if s == nil || s.Token == "" {
		return nil, ErrNoSession
	}
	header := http.Header{}
	header.Set("Authorization", "Bearer "+s.Token)
	return header, nil
}
