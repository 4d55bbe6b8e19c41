// Package config loads the service configuration from the environment.
//
// Variables use the PROMO_ prefix. A double underscore separates nested
// blocks, so PROMO_BACKEND__BASE_URL lands in Config.Backend.BaseURL. A `.env`
// file in the working directory is loaded first when present.
//
// Responsibilities:
//   - Provide defaults for every optional value.
//   - Map env vars onto the Config struct through koanf.
//   - Validate required values so the process fails fast on bad config.
package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	EnvPrefix = "PROMO_"

	// ServiceName tags logs and New Relic data.
	ServiceName = "promo-event"
)

// Config is the root configuration object.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Backend       BackendConfig        `koanf:"backend" validate:"required"`
	Validation    ValidationConfig     `koanf:"validation" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds the runtime environment name (local, development, production).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig configures the HTTP gateway.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// SubmitRateLimit is the sustained number of form submissions per second
	// accepted from one client IP; SubmitBurst is the bucket size.
	SubmitRateLimit float64 `koanf:"submit_rate_limit" validate:"gt=0"`
	SubmitBurst     int     `koanf:"submit_burst" validate:"min=1"`
}

// BackendConfig describes the REST backend the data access layer calls.
type BackendConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"min=1ms"`

	// Headers are sent with every backend request, e.g. an API key. Env keys
	// cannot hold hyphens, so underscores in names are sent as hyphens:
	// PROMO_BACKEND__HEADERS__X_API_KEY becomes X-Api-Key.
	Headers map[string]string `koanf:"headers"`

	// HealthPath is requested by the gateway health check.
	HealthPath string `koanf:"health_path" validate:"required,startswith=/"`
}

// RedisConfig points the submission rate limiter at a shared Redis so every
// gateway replica counts against the same budget. An empty Address keeps
// the limiter in process memory.
type RedisConfig struct {
	Address  string `koanf:"address"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db" validate:"min=0"`
}

// ValidationConfig selects the message catalog for form validation.
type ValidationConfig struct {
	Locale string `koanf:"locale" validate:"required,oneof=en ko"`
}

// DefaultConfig returns a configuration usable for local development. Any
// value present in the environment overrides it.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "local"},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        10,
			WriteTimeout:       15,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			SubmitRateLimit:    1,
			SubmitBurst:        5,
		},
		Backend: BackendConfig{
			BaseURL:    "http://localhost:3000",
			Timeout:    10 * time.Second,
			Headers:    map[string]string{},
			HealthPath: "/event",
		},
		Validation:    ValidationConfig{Locale: "en"},
		Observability: DefaultObservabilityConfig(),
	}
}

// keyFromEnv maps PROMO_SERVER__READ_TIMEOUT to server.read_timeout.
func keyFromEnv(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig reads the environment on top of DefaultConfig, validates the
// result and fills in observability defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", keyFromEnv), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables")
	}

	cfg := DefaultConfig()
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf(cfg)); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	cfg.Server.CORSAllowedOrigins = trimList(cfg.Server.CORSAllowedOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	// Service identity is fixed; the environment follows primary.env.
	cfg.Observability.ServiceName = ServiceName
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Observability.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid observability config")
	}

	return cfg, nil
}

// unmarshalConf decodes env strings into typed fields. List values are comma
// separated, e.g. PROMO_SERVER__CORS_ALLOWED_ORIGINS=https://a.example,https://b.example.
func unmarshalConf(out any) koanf.UnmarshalConf {
	return koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           out,
			WeaklyTypedInput: true,
		},
	}
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
