package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT, default=8080"`
	Env       string `env:"ENV,  default=development"`
	JWTSecret string `env:"JWT_SECRET"`

	Log    LogConfig
	Remote RemoteConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL,  default=info"`
	Pretty bool   `env:"LOG_PRETTY, default=false"`
	File   string `env:"LOG_FILE"`
}

// RemoteConfig drives the remote-store client; the fields map straight
// onto remote.Config. BaseURL and APIToken have no defaults on purpose,
// the client constructor rejects an empty value with a clear error.
type RemoteConfig struct {
	BaseURL            string        `env:"REMOTE_BASE_URL"`
	APIToken           string        `env:"REMOTE_API_TOKEN"`
	MinRequestInterval time.Duration `env:"REMOTE_MIN_REQUEST_INTERVAL, default=500ms"`
	MaxRetries         int           `env:"REMOTE_MAX_RETRIES,          default=3"`
	RetryDelay         time.Duration `env:"REMOTE_RETRY_DELAY,          default=1s"`
	Timeout            time.Duration `env:"REMOTE_TIMEOUT,              default=30s"`
	BreakerEnabled     bool          `env:"REMOTE_BREAKER_ENABLED,      default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
