package repositories

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
)

// PositionSource resolves a position by id.
type PositionSource interface {
	Get(ctx context.Context, id string) (models.Position, error)
}

// CachedPositions memoizes position lookups per Telegram user.
type CachedPositions struct {
	cache *gocache.Cache
}

func NewCachedPositions() *CachedPositions {
	return &CachedPositions{cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedPositions) Get(ctx context.Context, userKey int64, id string, source PositionSource) (models.Position, error) {
	key := positionKey(userKey, id)
	if value, found := c.cache.Get(key); found {
		return value.(models.Position), nil
	}

	position, err := source.Get(ctx, id)
	if err != nil {
		return models.Position{}, err
	}

	c.cache.SetDefault(key, position)
	return position, nil
}

// Forget drops every cached lookup of the user.
func (c *CachedPositions) Forget(userKey int64) {
	prefix := userPrefix(userKey)
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Delete(key)
		}
	}
}

func userPrefix(userKey int64) string {
	return strconv.FormatInt(userKey, 10) + ":"
}

func positionKey(userKey int64, id string) string {
	return userPrefix(userKey) + id
}
