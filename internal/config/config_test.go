package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "http://localhost:3000", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "/event", cfg.Backend.HealthPath)
	assert.Equal(t, "en", cfg.Validation.Locale)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.False(t, cfg.Observability.NewRelicEnabled())
	assert.True(t, cfg.Observability.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Observability.Metrics.Path)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PROMO_PRIMARY__ENV", "production")
	t.Setenv("PROMO_SERVER__PORT", "9090")
	t.Setenv("PROMO_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("PROMO_SERVER__SUBMIT_BURST", "2")
	t.Setenv("PROMO_BACKEND__BASE_URL", "https://api.example.com/v2")
	t.Setenv("PROMO_BACKEND__TIMEOUT", "3s")
	t.Setenv("PROMO_BACKEND__HEADERS__X_API_KEY", "secret")
	t.Setenv("PROMO_VALIDATION__LOCALE", "ko")
	t.Setenv("PROMO_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 2, cfg.Server.SubmitBurst)
	// Untouched values keep their defaults.
	assert.Equal(t, 10, cfg.Server.ReadTimeout)

	assert.Equal(t, "https://api.example.com/v2", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, map[string]string{"x_api_key": "secret"}, cfg.Backend.Headers)
	assert.Equal(t, "ko", cfg.Validation.Locale)

	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoadConfigSplitsOriginList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"single", "https://a.example", []string{"https://a.example"}},
		{"comma separated", "https://a.example,https://b.example", []string{"https://a.example", "https://b.example"}},
		{"spaces around entries", " https://a.example , https://b.example ", []string{"https://a.example", "https://b.example"}},
		{"trailing comma", "https://a.example,", []string{"https://a.example"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PROMO_SERVER__CORS_ALLOWED_ORIGINS", tt.value)

			cfg, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Server.CORSAllowedOrigins)
		})
	}
}

func TestLoadConfigRejectsEmptyOriginList(t *testing.T) {
	t.Setenv("PROMO_SERVER__CORS_ALLOWED_ORIGINS", " , ")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"relative backend url", "PROMO_BACKEND__BASE_URL", "not a url"},
		{"unknown locale", "PROMO_VALIDATION__LOCALE", "fr"},
		{"unknown log level", "PROMO_OBSERVABILITY__LOGGING__LEVEL", "verbose"},
		{"unknown log format", "PROMO_OBSERVABILITY__LOGGING__FORMAT", "xml"},
		{"health path without slash", "PROMO_BACKEND__HEALTH_PATH", "event"},
		{"zero rate", "PROMO_SERVER__SUBMIT_RATE_LIMIT", "0"},
		{"relative metrics path", "PROMO_OBSERVABILITY__METRICS__PATH", "metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestKeyFromEnv(t *testing.T) {
	assert.Equal(t, "server.read_timeout", keyFromEnv("PROMO_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.new_relic.license_key", keyFromEnv("PROMO_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestGetLogLevelFallback(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())
}
