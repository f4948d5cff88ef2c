package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

var redisRetryDelay = 2 * time.Second

func ConnectRedisWithRetry(ctx context.Context, opts RedisOptions, maxRetries int, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	for i := 1; i <= maxRetries; i++ {
		err := rdb.Ping(ctx).Err()
		if err == nil {
			logger.Info("connected to redis", zap.String("addr", opts.Addr))
			return rdb, nil
		}
		logger.Warn("redis ping failed",
			zap.Int("attempt", i),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(redisRetryDelay):
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("failed to connect redis at %s", opts.Addr)
}
