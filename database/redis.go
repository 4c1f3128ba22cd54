package database

import (
	"context"
	"log"
	"time"

	"api/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// InitRedis connects the optional redis client used by the win leaderboard.
// The service runs without it: when REDIS_ADDR is unset or the ping fails,
// Redis stays nil and leaderboard updates are skipped.
func InitRedis() {
	if config.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, leaderboard disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable at %s, leaderboard disabled: %v", config.RedisAddr, err)
		return
	}

	Redis = client
}
