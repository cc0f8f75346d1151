package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/afiagithub/VitalCare-server/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// pingTimeout bounds the startup connectivity check so a dead cache
// host does not stall boot.
const pingTimeout = 5 * time.Second

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")

	return client, nil
}
