package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStorage 登出后的令牌黑名单，过期时间与令牌一致
type SessionStorage struct {
	redis *redis.Client
}

func NewSessionStorage(rds *redis.Client) *SessionStorage {
	return &SessionStorage{redis: rds}
}

// Revoke 吊销令牌
// @params jti     令牌ID
// @params expire  令牌剩余有效期
func (s *SessionStorage) Revoke(ctx context.Context, jti string, expire time.Duration) error {
	if s.redis == nil || jti == "" || expire <= 0 {
		return nil
	}
	return s.redis.Set(ctx, s.name(jti), 1, expire).Err()
}

// IsRevoked 令牌是否已吊销
// @params jti  令牌ID
func (s *SessionStorage) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if s.redis == nil || jti == "" {
		return false, nil
	}
	n, err := s.redis.Exists(ctx, s.name(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SessionStorage) name(jti string) string {
	return fmt.Sprintf("brainvault:session:revoked:%s", jti)
}
