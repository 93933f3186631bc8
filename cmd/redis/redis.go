package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/muhammadheryan/rental-shop/cmd/config"
	"github.com/redis/go-redis/v9"
)

var (
	client *redis.Client
	locker *redislock.Client
)

// New initializes the Redis client and the lock client on top of it, verifying connectivity.
func New(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config provided")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	opt := &redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	c := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	client = c
	locker = redislock.New(c)
	return nil
}

func Get() *redis.Client {
	return client
}

func GetLocker() *redislock.Client {
	return locker
}

func Close() error {
	if client == nil {
		return nil
	}
	locker = nil
	return client.Close()
}
