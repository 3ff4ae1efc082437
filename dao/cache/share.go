package cache

import (
	"brainvault/config"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ShareStorage 分享令牌 -> 用户ID 的解析缓存
// redis 未启用时所有操作都是空操作
type ShareStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewShareStorage(rds *redis.Client, conf *config.Config) *ShareStorage {
	return &ShareStorage{
		redis: rds,
		ttl:   time.Duration(conf.Share.CacheTTLSeconds) * time.Second,
	}
}

// Get 读取令牌对应的用户ID
// @params hash  分享令牌
func (s *ShareStorage) Get(ctx context.Context, hash string) (uint64, bool, error) {
	if s.redis == nil {
		return 0, false, nil
	}
	v, err := s.redis.Get(ctx, s.name(hash)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	uid, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return uid, true, nil
}

// Set 写入缓存
// @params hash  分享令牌
// @params uid   用户ID
func (s *ShareStorage) Set(ctx context.Context, hash string, uid uint64) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Set(ctx, s.name(hash), uid, s.ttl).Err()
}

// Del 关闭分享时删除缓存
// @params hash  分享令牌
func (s *ShareStorage) Del(ctx context.Context, hash string) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, s.name(hash)).Err()
}

func (s *ShareStorage) name(hash string) string {
	return fmt.Sprintf("brainvault:share:%s", hash)
}
