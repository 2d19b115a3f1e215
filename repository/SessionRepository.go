package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const sessionTTL = 24 * time.Hour

// SessionRepository issues and tracks opaque session tokens. Sessions are
// what replace the original "current user" field: each browser holds its
// token in a cookie instead of the store holding one global user.
type SessionRepository interface {
	CreateSession(userId int, isAdmin bool) (sessionId string, err error)
	CheckSession(sessionId string) (bool, error)
	DeleteSession(sessionId string) (err error)
	RefreshSession(sessionId string, expirationTime time.Duration) (err error)
	GetSessionInfo(sessionId string) (userId int, isAdmin bool, exists bool, err error)
}

type RedisSessionRepo struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisSessionRepository(redisConn *redis.Client, ctx context.Context) (SessionRepository, error) {
	if redisConn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	if err := redisConn.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisSessionRepo{rdb: redisConn, ctx: ctx}, nil
}

func (s *RedisSessionRepo) CreateSession(userId int, isAdmin bool) (sessionId string, err error) {
	sessionId = uuid.NewString()
	err = s.rdb.HSet(s.ctx, sessionId, "userId", userId, "isAdmin", strconv.FormatBool(isAdmin)).Err()
	if err != nil {
		err = errors.Wrap(err, "create session")
		return
	}
	s.rdb.Expire(s.ctx, sessionId, sessionTTL)
	return
}

func (s *RedisSessionRepo) CheckSession(sessionId string) (bool, error) {
	exists, err := s.rdb.Exists(s.ctx, sessionId).Result()
	if err != nil {
		return false, errors.Wrap(err, "check session")
	}
	return exists > 0, nil
}

func (s *RedisSessionRepo) DeleteSession(sessionId string) error {
	return errors.Wrap(s.rdb.Del(s.ctx, sessionId).Err(), "delete session")
}

func (s *RedisSessionRepo) RefreshSession(sessionId string, expirationTime time.Duration) error {
	return errors.Wrap(s.rdb.Expire(s.ctx, sessionId, expirationTime).Err(), "refresh session")
}

func (s *RedisSessionRepo) GetSessionInfo(sessionId string) (userId int, isAdmin bool, exists bool, err error) {
	exists, err = s.CheckSession(sessionId)
	if err != nil || !exists {
		return
	}
	val, e := s.rdb.HGetAll(s.ctx, sessionId).Result()
	if e != nil {
		err = errors.Wrap(e, "get session info")
		exists = false
		return
	}
	userId, _ = strconv.Atoi(val["userId"])
	isAdmin = val["isAdmin"] == "true"
	return
}
