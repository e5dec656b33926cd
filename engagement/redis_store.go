package engagement

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string        `toml:"addr" mapstructure:"addr"`
	Password string        `toml:"password" mapstructure:"password"`
	DB       int           `toml:"db" mapstructure:"db"`
	Prefix   string        `toml:"prefix" mapstructure:"prefix"`
	TTL      time.Duration `toml:"ttl" mapstructure:"ttl"`
}

// RedisStore keeps engagement timestamps as unix millis under SETNX keys so that
// several API replicas agree on the first open.
type RedisStore struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisStore(rdb redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "burnwin:engagement"
	}
	return &RedisStore{rdb: rdb, prefix: prefix, ttl: ttl}
}

func DialRedis(ctx context.Context, c RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "failed on ping redis")
	}
	return rdb, nil
}

func (r *RedisStore) key(key Key, kind Kind) string {
	return r.prefix + ":" + string(kind) + ":" + key.String()
}

func (r *RedisStore) Record(ctx context.Context, key Key, kind Kind, at time.Time) (time.Time, error) {
	k := r.key(key, kind)
	set, err := r.rdb.SetNX(ctx, k, at.UnixMilli(), r.ttl).Result()
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed on record engagement")
	}
	if set {
		return at, nil
	}
	prev, ok, err := r.Get(ctx, key, kind)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		// expired between SETNX and GET
		return at, nil
	}
	return prev, nil
}

func (r *RedisStore) Get(ctx context.Context, key Key, kind Kind) (time.Time, bool, error) {
	v, err := r.rdb.Get(ctx, r.key(key, kind)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, "failed on get engagement")
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, false, errors.Wrapf(err, "corrupt engagement value %q", v)
	}
	return time.UnixMilli(ms), true, nil
}
