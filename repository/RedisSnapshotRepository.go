package repository

import (
	"context"
	"encoding/json"

	"voltstore/store"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type RedisSnapshotRepo struct {
	rdb *redis.Client
	ctx context.Context
	key string
}

func NewRedisSnapshotRepository(redisConn *redis.Client, ctx context.Context, key string) (SnapshotRepository, error) {
	if redisConn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	if err := redisConn.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisSnapshotRepo{rdb: redisConn, ctx: ctx, key: key}, nil
}

func (r *RedisSnapshotRepo) Load() (snap store.Snapshot, exists bool, err error) {
	val, e := r.rdb.Get(r.ctx, r.key).Result()
	if e != nil {
		if e == redis.Nil {
			return
		}
		err = errors.Wrap(e, "load snapshot")
		return
	}
	if err = json.Unmarshal([]byte(val), &snap); err != nil {
		err = errors.Wrap(err, "decode snapshot")
		return
	}
	exists = true
	return
}

func (r *RedisSnapshotRepo) Save(snap store.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	// No TTL: the snapshot is the system of record, not a cache.
	return errors.Wrap(r.rdb.Set(r.ctx, r.key, data, 0).Err(), "save snapshot")
}
