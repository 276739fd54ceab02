package repositories

import (
	"context"
	"time"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Sessions struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *Sessions {
	return &Sessions{db: db}
}

// Save stores the session, replacing any previous login of the same user.
func (repo *Sessions) Save(ctx context.Context, session *models.Session) error {
	return repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(session).Error
}

// Get returns nil without an error when the user has no stored session.
func (repo *Sessions) Get(ctx context.Context, userKey int64) (*models.Session, error) {
	var session models.Session
	err := repo.db.WithContext(ctx).First(&session, "user_key = ?", userKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (repo *Sessions) Remove(ctx context.Context, userKey int64) error {
	return repo.db.WithContext(ctx).Delete(&models.Session{}, "user_key = ?", userKey).Error
}

// RemoveExpired deletes sessions whose token expired before now and returns their user keys.
func (repo *Sessions) RemoveExpired(ctx context.Context, now time.Time) ([]int64, error) {

	var userKeys []int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Session{}).
			Where("expires_at IS NOT NULL AND expires_at <= ?", now.UTC()).
			Pluck("user_key", &userKeys).Error; err != nil {
			return err
		}
		if len(userKeys) == 0 {
			return nil
		}
		return tx.Delete(&models.Session{}, "user_key IN ?", userKeys).Error
	})
	if err != nil {
		return nil, err
	}
	return userKeys, nil
}
