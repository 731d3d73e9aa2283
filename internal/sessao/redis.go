package sessao

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisPrefix = "sessao:"

// RedisStore keeps session state in Redis as JSON with a sliding TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (r *RedisStore) Obter(ctx context.Context, id string) (*Estado, error) {
	raw, err := r.rdb.Get(ctx, redisPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Estado{}, nil
	}
	if err != nil {
		return nil, err
	}
	var e Estado
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *RedisStore) Salvar(ctx context.Context, id string, e *Estado) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, redisPrefix+id, data, r.ttl).Err()
}

func (r *RedisStore) Remover(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, redisPrefix+id).Err()
}
