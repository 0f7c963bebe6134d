package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/cache"
	"hotel-booking/internal/infra/notifier"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventNotifier,
		NewRedisClient,
	),
)

// NewEventNotifier falls back to logging events when AMQP_URL is empty.
func NewEventNotifier(lc fx.Lifecycle, cfg config.BrokerConfig, logger *slog.Logger) (commands.EventNotifier, error) {
	if cfg.URL == "" {
		logger.Info("AMQP_URL not set, events will only be logged")
		return notifier.NewLogNotifier(logger), nil
	}

	n, err := notifier.DialAMQP(cfg.URL, cfg.Exchange, cfg.PublishTimeout, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})

	logger.Info("event notifier connected", "exchange", cfg.Exchange)
	return n, nil
}

// NewRedisClient returns nil when REDIS_ADDR is empty; rate limits then stay per instance.
func NewRedisClient(lc fx.Lifecycle, cfg config.RedisConfig) (*redis.Client, error) {
	client, cleanup, err := cache.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}
