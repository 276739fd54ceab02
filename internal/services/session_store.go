package services

import (
	"context"
	"strings"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/golang-jwt/jwt/v5"
	"github.com/maxaizer/recruithub-bot/internal/clients/recruithub"
	"github.com/maxaizer/recruithub-bot/internal/domain/events"
	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultSessionLifetime applies when the token carries no readable expiry.
const DefaultSessionLifetime = 24 * time.Hour

var ErrSessionExpired = errors.New("session expired")

type sessionRepository interface {
	Save(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, userKey int64) (*models.Session, error)
	Remove(ctx context.Context, userKey int64) error
	RemoveExpired(ctx context.Context, now time.Time) ([]int64, error)
}

type authenticator interface {
	Login(ctx context.Context, email, password string) (recruithub.LoginResult, error)
}

type SessionStore struct {
	bus      EventBus.Bus
	sessions sessionRepository
	auth     authenticator
	now      func() time.Time
}

func NewSessionStore(bus EventBus.Bus, sessions sessionRepository, auth authenticator) *SessionStore {
	return &SessionStore{bus: bus, sessions: sessions, auth: auth, now: time.Now}
}

func (s *SessionStore) Login(ctx context.Context, userKey int64, email, password string) (*models.Session, error) {

	email = strings.TrimSpace(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, newValidationError("password is required")
	}

	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session := models.NewSession(userKey, result.Token, result.User, s.tokenExpiry(result.Token))
	if err = s.sessions.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	log.Infof("user %d logged in as %s (%s)", userKey, result.User.Email, result.User.Role)
	return session, nil
}

// LoginFailureMessage keeps the backend detail verbatim.
func LoginFailureMessage(err error) string {
	return DetailedFailureMessage(err, "Invalid credentials")
}

// Current returns the stored session, ending it first if the token has expired.
func (s *SessionStore) Current(ctx context.Context, userKey int64) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, userKey)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, models.ErrNoSession
	}
	if session.IsExpired(s.now()) {
		if err = s.Expire(ctx, userKey); err != nil {
			return nil, err
		}
		return nil, ErrSessionExpired
	}
	return session, nil
}

func (s *SessionStore) Logout(ctx context.Context, userKey int64) error {
	return s.end(ctx, userKey, events.ReasonLogout)
}

// Expire ends a session the backend no longer accepts.
func (s *SessionStore) Expire(ctx context.Context, userKey int64) error {
	return s.end(ctx, userKey, events.ReasonExpired)
}

func (s *SessionStore) RemoveExpired(ctx context.Context) (int, error) {
	userKeys, err := s.sessions.RemoveExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	for _, userKey := range userKeys {
		s.bus.Publish(events.SessionEndedTopic, events.SessionEnded{UserKey: userKey, Reason: events.ReasonExpired})
	}
	return len(userKeys), nil
}

func (s *SessionStore) end(ctx context.Context, userKey int64, reason events.SessionEndReason) error {
	if err := s.sessions.Remove(ctx, userKey); err != nil {
		return errors.Wrap(err, "failed to remove session")
	}
	s.bus.Publish(events.SessionEndedTopic, events.SessionEnded{UserKey: userKey, Reason: reason})
	return nil
}

func (s *SessionStore) tokenExpiry(token string) *time.Time {
	fallback := s.now().Add(DefaultSessionLifetime).UTC()

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		log.Debugf("token is not a readable jwt, using default lifetime: %v", err)
		return &fallback
	}

	expiresAt, err := parsed.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return &fallback
	}

	utc := expiresAt.Time.UTC()
	return &utc
}
