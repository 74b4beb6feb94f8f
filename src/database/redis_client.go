package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis if REDIS_URI is set. Redis is optional:
// without it login throttling and background jobs are disabled.
func InitRedis(ctx context.Context) *redis.Client {
	redisURI := os.Getenv("REDIS_URI")
	if redisURI == "" {
		log.Println("⚠️ REDIS_URI not set, running without Redis")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisURI,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		return nil
	}

	log.Println("✅ Redis connected successfully")
	return client
}
