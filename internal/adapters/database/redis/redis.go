package redis

import (
	"context"
	"fmt"

	"github.com/gatherhub/gatherhub/internal/adapters/database/redis/events"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	Events *events.Storage
}

type Options struct {
	Host     string
	Port     string
	Password string
}

func New(opts Options) (*Client, error) {
	eventsStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := eventsStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping events storage: %w", err)
	}

	return &Client{
		Events: events.NewStorage(eventsStorage),
	}, nil
}
