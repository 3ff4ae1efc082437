package client

import (
	"brainvault/config"
	"brainvault/pkg/log"
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 未配置地址时返回 nil，缓存层自动降级为直查数据库
func NewRedisClient(conf *config.Config) (*redis.Client, func(), error) {
	if !conf.Redis.Enabled() {
		log.L.Info("redis disabled")
		return nil, func() {}, nil
	}

	addr := conf.Redis.Address
	if conf.Redis.Port > 0 && !strings.Contains(addr, ":") {
		addr = fmt.Sprintf("%s:%d", conf.Redis.Address, conf.Redis.Port)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})
	if _, err := client.Ping(context.TODO()).Result(); err != nil {
		log.L.Error("connect redis error", zap.String("addr", addr), zap.Error(err))
		return nil, nil, err
	}
	log.L.Info("redis client success", zap.String("addr", addr))

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}
