package services

import (
	"context"

	"github.com/maxaizer/recruithub-bot/internal/logger"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type expiredSessionsRemover interface {
	RemoveExpired(ctx context.Context) (int, error)
}

type SessionsCleaner struct {
	sessions expiredSessionsRemover
	cron     *cron.Cron
}

func NewSessionsCleaner(sessions expiredSessionsRemover, schedule string) (*SessionsCleaner, error) {

	sc := &SessionsCleaner{
		sessions: sessions,
		cron:     cron.New(),
	}

	if _, err := sc.cron.AddFunc(schedule, sc.cleanExpiredSessions); err != nil {
		return nil, err
	}

	sc.cron.Start()
	log.Infof("sessions cleaner started, schedule: %s", schedule)
	return sc, nil
}

func (sc *SessionsCleaner) Stop() {
	<-sc.cron.Stop().Done()
}

func (sc *SessionsCleaner) cleanExpiredSessions() {
	removed, err := sc.sessions.RemoveExpired(context.Background())
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("Failed to clean expired sessions: %v", err)
		return
	}
	if removed > 0 {
		log.Infof("Expired sessions were cleaned, removed: %d", removed)
	}
}
