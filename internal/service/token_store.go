package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes for the token allow-list: <prefix>:<userID>:<tokenID>
	accessTokenKeyPrefix  = "access_token"
	refreshTokenKeyPrefix = "refresh_token"

	// Batch size for SCAN when revoking every token of a user
	revokeScanCount = 100
)

// TokenStore is the allow-list of issued tokens. A token absent from the
// store is revoked even if its signature and expiry are still valid.
type TokenStore interface {
	Store(ctx context.Context, userID int, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error
	AccessValid(ctx context.Context, userID int, accessID string) (bool, error)
	// ConsumeRefresh deletes the refresh token and reports whether it was present, making refresh tokens single-use
	ConsumeRefresh(ctx context.Context, userID int, refreshID string) (bool, error)
	Revoke(ctx context.Context, userID int, accessID, refreshID string) error
	RevokeAll(ctx context.Context, userID int) error
}

type redisTokenStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisTokenStore(client *redis.Client, log *logrus.Logger) TokenStore {
	return &redisTokenStore{client: client, log: log}
}

func accessKey(userID int, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", accessTokenKeyPrefix, userID, tokenID)
}

func refreshKey(userID int, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", refreshTokenKeyPrefix, userID, tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, userID int, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, accessKey(userID, accessID), "valid", accessTTL)
		pipe.Set(ctx, refreshKey(userID, refreshID), "valid", refreshTTL)
		return nil
	})
	if err != nil {
		s.log.Warnf("Failed to store tokens for user %d: %+v", userID, err)
		return err
	}
	return nil
}

func (s *redisTokenStore) AccessValid(ctx context.Context, userID int, accessID string) (bool, error) {
	exists, err := s.client.Exists(ctx, accessKey(userID, accessID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *redisTokenStore) ConsumeRefresh(ctx context.Context, userID int, refreshID string) (bool, error) {
	deleted, err := s.client.Del(ctx, refreshKey(userID, refreshID)).Result()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, userID int, accessID, refreshID string) error {
	keys := []string{accessKey(userID, accessID)}
	if refreshID != "" {
		keys = append(keys, refreshKey(userID, refreshID))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to revoke tokens for user %d: %+v", userID, err)
		return err
	}
	return nil
}

func (s *redisTokenStore) RevokeAll(ctx context.Context, userID int) error {
	for _, prefix := range []string{accessTokenKeyPrefix, refreshTokenKeyPrefix} {
		pattern := fmt.Sprintf("%s:%d:*", prefix, userID)
		iter := s.client.Scan(ctx, 0, pattern, revokeScanCount).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			s.log.Warnf("Failed to scan %s keys for user %d: %+v", prefix, userID, err)
			return err
		}

		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to delete %s keys for user %d: %+v", prefix, userID, err)
				return err
			}
		}
	}
	return nil
}
