package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("APP_ENV", "dev")
	t.Setenv("DETECTOR", "Watson")

	cfg, err := Load()
	req.NoError(err)
	req.Equal("127.0.0.1:5000", cfg.Addr())
	req.Equal(DetectorWatson, cfg.Detector)
	req.Equal(DefaultWatsonURL, cfg.WatsonURL)
	req.Equal(DefaultWatsonModelID, cfg.WatsonModelID)
	req.Equal(60*time.Second, cfg.WatsonTimeout)
	req.Equal(24*time.Hour, cfg.CacheTTL)
	req.False(cfg.CacheEnabled)
}

func TestLoad_ProductionTimeout(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DETECTOR", "watson")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, cfg.WatsonTimeout)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		description string
		env         map[string]string
		wantErr     bool
	}{
		{
			"Should fail on an unknown detector",
			map[string]string{"DETECTOR": "vader"},
			true,
		},
		{
			"Should fail when openai has no api key",
			map[string]string{"DETECTOR": "openai"},
			true,
		},
		{
			"Should succeed when openai has an api key",
			map[string]string{"DETECTOR": "openai", "OPENAI_API_KEY": "sk-test"},
			false,
		},
		{
			"Should fail when the cache has no valkey address",
			map[string]string{"DETECTOR": "watson", "CACHE_ENABLED": "true"},
			true,
		},
		{
			"Should fail when watson auth has no token url",
			map[string]string{"DETECTOR": "watson", "WATSON_CLIENT_ID": "id"},
			true,
		},
		{
			"Should fail on an out of range port",
			map[string]string{"DETECTOR": "watson", "PORT": "70000"},
			true,
		},
		{
			"Should fail on a zero healthcheck interval",
			map[string]string{"DETECTOR": "watson", "HEALTHCHECK_INTERVAL": "0s"},
			true,
		},
		{
			"Should fail on a negative healthcheck interval",
			map[string]string{"DETECTOR": "watson", "HEALTHCHECK_INTERVAL": "-5s"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Equal(t, tt.wantErr, err != nil, tt.description)
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	req := require.New(t)
	req.Equal(slog.LevelDebug, Config{LogLevel: "debug"}.SlogLevel())
	req.Equal(slog.LevelWarn, Config{LogLevel: "WARN"}.SlogLevel())
	req.Equal(slog.LevelInfo, Config{LogLevel: "loud"}.SlogLevel())
}
