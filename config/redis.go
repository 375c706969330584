package config

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient 用于AI调用计数
var RedisClient *redis.Client

func InitRedis(config Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         config.GetRedisConnString(),
		Password:     config.RedisPassword,
		DB:           config.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := RedisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis连接测试失败: %w", err)
	}

	Logger.Infow("Redis已连接", "addr", config.GetRedisConnString(), "db", config.RedisDB)
	return nil
}
