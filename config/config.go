package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything the client needs to talk to the Notation API
// and to keep its local state. Values come from the environment; the
// cobra flags in main override ServerURL and LogLevel after loading.
type Config struct {
	ServerURL   string        `env:"NOTATION_SERVER_URL, default=http://localhost:8080"`
	LogLevel    string        `env:"NOTATION_LOG_LEVEL, default=info"`
	StateDir    string        `env:"NOTATION_STATE_DIR"`
	HTTPTimeout time.Duration `env:"NOTATION_HTTP_TIMEOUT, default=15s"`
}

func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.StateDir = filepath.Join(home, ".notation")
	}
	return &cfg, nil
}

// LogPath is where the TUI writes its debug log. Logging to stdout is
// not an option while bubbletea owns the terminal.
func (c *Config) LogPath() string {
	return filepath.Join(c.StateDir, "notation.log")
}
