package bootstrap

import (
	"hotel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)

// ConfigSections exposes the slices of Config that constructors depend on directly.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.GatewayConfig { return cfg.Gateway },
	func(cfg config.Config) config.RiskScorerConfig { return cfg.RiskScorer },
	func(cfg config.Config) config.BrokerConfig { return cfg.Broker },
	func(cfg config.Config) config.RedisConfig { return cfg.Redis },
	func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
	func(cfg config.Config) config.ReservationConfig { return cfg.Reservation },
)
