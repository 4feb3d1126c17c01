package databases

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/cybercell/cybercrime-portal-api/config"
	"github.com/cybercell/cybercrime-portal-api/models"
)

const sessionKeyPrefix = "session:"

type redisSessionDatabase struct {
	client *redis.Client
}

// NewRedisSessionDatabase initializes a redis-backed session store from the
// configured REDIS_URL
func NewRedisSessionDatabase(conf *config.Config) (SessionDatabase, error) {
	opts, err := redis.ParseURL(conf.RedisURL)
	if err != nil {
		return nil, err
	}
	return &redisSessionDatabase{client: redis.NewClient(opts)}, nil
}

func (r *redisSessionDatabase) Save(ctx context.Context, session models.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	// sessions never expire, logout is the only invalidation
	return r.client.Set(ctx, sessionKeyPrefix+session.ID, b, 0).Err()
}

func (r *redisSessionDatabase) Find(ctx context.Context, id string) (*models.Session, error) {
	b, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	session := &models.Session{}
	if err := json.Unmarshal(b, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *redisSessionDatabase) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKeyPrefix+id).Err()
}
