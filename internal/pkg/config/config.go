package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth       AuthConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	ShipEngine ShipEngineConfig
	Webhooks   WebhookConfig
	Telemetry  TelemetryConfig
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,          default=24h"`
	ResetTTL  time.Duration `env:"PASSWORD_RESET_TTL, default=30m"`
	PublicURL string        `env:"PUBLIC_URL,         default=http://localhost:8080"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=csv_shipper"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,       default=0"`
	Timeout  time.Duration `env:"REDIS_TIMEOUT,  default=5s"`
}

type ShipEngineConfig struct {
	APIKey      string        `env:"SHIPENGINE_API_KEY"`
	CarrierID   string        `env:"SHIPENGINE_CARRIER_ID"`
	BaseURL     string        `env:"SHIPENGINE_BASE_URL,     default=https://api.shipengine.com/v1/"`
	ServiceCode string        `env:"SHIPENGINE_SERVICE_CODE, default=ups_next_day_air"`
	Timeout     time.Duration `env:"SHIPENGINE_TIMEOUT,      default=30s"`
}

type WebhookConfig struct {
	Workers int `env:"WEBHOOK_WORKERS, default=8"`
}

type TelemetryConfig struct {
	TracesEnabled    bool    `env:"OTEL_TRACES_ENABLED,          default=false"`
	MetricsEnabled   bool    `env:"OTEL_METRICS_ENABLED,         default=true"`
	OTLPEndpoint     string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT,  default=localhost:4318"`
	OTLPInsecure     bool    `env:"OTEL_EXPORTER_OTLP_INSECURE,  default=true"`
	TraceSampleRatio float64 `env:"OTEL_TRACES_SAMPLE_RATIO,     default=1"`
	ServiceName      string  `env:"OTEL_SERVICE_NAME,            default=csv-shipper"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through l, e.g. envconfig.MapLookuper in tests.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateCarrier checks the settings every carrier call needs.
func (c *Config) ValidateCarrier() error {
	var errs []error
	if c.ShipEngine.APIKey == "" {
		errs = append(errs, errors.New("SHIPENGINE_API_KEY is required"))
	}
	if c.ShipEngine.CarrierID == "" {
		errs = append(errs, errors.New("SHIPENGINE_CARRIER_ID is required"))
	}
	return errors.Join(errs...)
}

// ValidateServer checks the settings the HTTP API needs on top of the carrier ones.
func (c *Config) ValidateServer() error {
	errs := []error{c.ValidateCarrier()}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	return errors.Join(errs...)
}
