package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional integrations (broker, redis, risk scorer) are disabled when left empty
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Gateway     GatewayConfig
	RiskScorer  RiskScorerConfig
	Broker      BrokerConfig
	Redis       RedisConfig
	RateLimit   RateLimitConfig
	Reservation ReservationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Dhaka"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Dhaka"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"21600"` // 6*60*60

	// File output is rotated; stdout is always written.
	File           string `envconfig:"LOG_FILE"`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"50"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"5"`
	FileMaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"14"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type GatewayConfig struct {
	BaseURL         string        `envconfig:"GATEWAY_BASE_URL" default:"https://sandbox.aamarpay.com"`
	StoreID         string        `envconfig:"GATEWAY_STORE_ID" required:"true"`
	SignatureKey    string        `envconfig:"GATEWAY_SIGNATURE_KEY" required:"true"`
	Currency        string        `envconfig:"GATEWAY_CURRENCY" default:"BDT"`
	Country         string        `envconfig:"GATEWAY_COUNTRY" default:"Bangladesh"`
	CallbackBaseURL string        `envconfig:"CALLBACK_BASE_URL" required:"true"`
	Timeout         time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
}

type RiskScorerConfig struct {
	URL     string        `envconfig:"RISK_SCORER_URL"`
	Timeout time.Duration `envconfig:"RISK_SCORER_TIMEOUT" default:"2s"`
}

type BrokerConfig struct {
	URL            string        `envconfig:"AMQP_URL"`
	Exchange       string        `envconfig:"AMQP_EXCHANGE" default:"hotel.events"`
	PublishTimeout time.Duration `envconfig:"AMQP_PUBLISH_TIMEOUT" default:"3s"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Strict  int64         `envconfig:"RATE_LIMIT_STRICT" default:"10"`
	Period  time.Duration `envconfig:"RATE_LIMIT_PERIOD" default:"15m"`
}

type ReservationConfig struct {
	Timeout time.Duration `envconfig:"RESERVATION_TIMEOUT" default:"15s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Gateway: GatewayConfig{
			BaseURL:         "http://127.0.0.1:0",
			StoreID:         "aamarpaytest",
			SignatureKey:    "dbb74894e82415a2f7ff0ec3a97e4183",
			Currency:        "BDT",
			Country:         "Bangladesh",
			CallbackBaseURL: "http://localhost:8889",
			Timeout:         2 * time.Second,
		},
		RiskScorer: RiskScorerConfig{
			Timeout: 500 * time.Millisecond,
		},
		Broker: BrokerConfig{
			Exchange:       "hotel.events.test",
			PublishTimeout: time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			Strict:  10,
			Period:  15 * time.Minute,
		},
		Reservation: ReservationConfig{
			Timeout: 5 * time.Second,
		},
	}
}
