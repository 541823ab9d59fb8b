package common

import (
	"context"
	"fmt"
	"time"

	"atn-virtual/crewcenter/internal/logging"

	"github.com/redis/go-redis/v9"
)

// RedisOptions are the connection settings read from the environment
type RedisOptions struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(opts RedisOptions) *redis.Client {
	if opts.Host == "" {
		opts.Host = "localhost"
	}
	if opts.Port == "" {
		opts.Port = "6379"
	}

	addr := fmt.Sprintf("%s:%s", opts.Host, opts.Port)
	logging.Info("Initializing Redis client", "addr", addr, "db", opts.DB)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Error("Failed to ping Redis", "addr", addr, "error", err.Error())
		return client // Still return the client, connection pool will try to reconnect
	}

	logging.Info("Successfully connected to Redis", "addr", addr)
	return client
}
