package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DetectorWatson = "watson"
	DetectorOpenAI = "openai"

	DefaultWatsonURL     = "https://sn-watson-emotion.labs.skills.network/v1/watson.runtime.nlp.v1/NlpService/EmotionPredict"
	DefaultWatsonModelID = "emotion_aggregated-workflow_lang_en_stock"
)

// Config holds every setting the server reads from the environment.
type Config struct {
	Env      string `envconfig:"APP_ENV" default:"dev"`
	Host     string `envconfig:"HOST" default:"127.0.0.1"`
	Port     int    `envconfig:"PORT" default:"5000"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	Detector string `envconfig:"DETECTOR" default:"watson"`

	WatsonURL          string        `envconfig:"WATSON_URL"`
	WatsonModelID      string        `envconfig:"WATSON_MODEL_ID"`
	WatsonTimeout      time.Duration `envconfig:"WATSON_TIMEOUT"`
	WatsonClientID     string        `envconfig:"WATSON_CLIENT_ID"`
	WatsonClientSecret string        `envconfig:"WATSON_CLIENT_SECRET"`
	WatsonTokenURL     string        `envconfig:"WATSON_TOKEN_URL"`

	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`

	CacheEnabled   bool          `envconfig:"CACHE_ENABLED" default:"false"`
	CacheTTL       time.Duration `envconfig:"CACHE_TTL" default:"24h"`
	ValkeyAddress  string        `envconfig:"VALKEY_INIT_ADDRESS"`
	ValkeyPassword string        `envconfig:"VALKEY_PASSWORD"`
	ValkeyTLS      bool          `envconfig:"VALKEY_TLS" default:"false"`

	HealthcheckInterval time.Duration `envconfig:"HEALTHCHECK_INTERVAL" default:"15s"`
}

// Load decodes the environment into a Config, fills environment dependent
// defaults and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to process env: %w", err)
	}

	cfg.Detector = strings.ToLower(strings.TrimSpace(cfg.Detector))
	if cfg.WatsonURL == "" {
		cfg.WatsonURL = DefaultWatsonURL
	}
	if cfg.WatsonModelID == "" {
		cfg.WatsonModelID = DefaultWatsonModelID
	}
	if cfg.WatsonTimeout == 0 {
		if cfg.Env == "production" {
			cfg.WatsonTimeout = 10 * time.Second
		} else {
			cfg.WatsonTimeout = 60 * time.Second
		}
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Detector {
	case DetectorWatson:
		if c.WatsonClientID != "" && c.WatsonTokenURL == "" {
			return fmt.Errorf("WATSON_TOKEN_URL is required when WATSON_CLIENT_ID is set")
		}
	case DetectorOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the %q detector", DetectorOpenAI)
		}
	default:
		return fmt.Errorf("unknown DETECTOR %q, must be %q or %q", c.Detector, DetectorWatson, DetectorOpenAI)
	}

	if c.CacheEnabled && c.ValkeyAddress == "" {
		return fmt.Errorf("VALKEY_INIT_ADDRESS is required when CACHE_ENABLED is true")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.HealthcheckInterval <= 0 {
		return fmt.Errorf("HEALTHCHECK_INTERVAL must be positive, got %s", c.HealthcheckInterval)
	}
	return nil
}

// Addr is the host:port the HTTP server binds to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SlogLevel maps LOG_LEVEL onto a slog level, falling back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// AppEnv returns APP_ENV, defaulting to dev like every cmd does.
func AppEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return env
}
