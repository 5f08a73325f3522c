package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"swiftie_sanctuary/internal/common"
	"swiftie_sanctuary/internal/domain/model"
)

const redisKeyPrefix = "session:"

// redisStore keeps sessions as JSON values whose key TTL matches the
// session expiry, so Redis handles expiration itself.
type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Create(ctx context.Context, sess *model.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("redisStore.Create marshal: %w", err)
	}
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("redisStore.Create: session already expired")
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+sess.Token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redisStore.Create: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, token string) (*model.Session, error) {
	payload, err := s.rdb.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("redisStore.Get: %w", err)
	}

	sess := &model.Session{}
	if err := json.Unmarshal(payload, sess); err != nil {
		return nil, fmt.Errorf("redisStore.Get unmarshal: %w", err)
	}
	sess.Token = token
	if sess.IsExpired() {
		// Key TTL should have removed it already; treat as gone.
		return nil, common.ErrNotFound
	}
	return sess, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redisStore.Delete: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: key TTLs expire sessions.
func (s *redisStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
