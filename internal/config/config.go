package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting of the service.
type Config struct {
	Addr       string        `envconfig:"HOMESTREAM_ADDR" default:":8090"`
	Env        string        `envconfig:"HOMESTREAM_ENV" default:"dev"`
	SessionTTL time.Duration `envconfig:"HOMESTREAM_SESSION_TTL" default:"2h"`

	// The two public demo keys are rotated between when one gets rate limited.
	TMDBAPIKeys  []string      `envconfig:"TMDB_API_KEYS" default:"c8dea14dc917687ac631a52620e4f7ad,3cb41ecea3bf606c56552db3d17adefd"`
	TMDBBaseURL  string        `envconfig:"TMDB_BASE_URL" default:"https://api.themoviedb.org/3"`
	TMDBLanguage string        `envconfig:"TMDB_LANGUAGE" default:"en-US"`
	TMDBTimeout  time.Duration `envconfig:"TMDB_TIMEOUT" default:"10s"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: dotenv: %w", op, err)
	}

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

// IsProduction reports whether production logging should be used.
func (c *Config) IsProduction() bool {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "prod", "production":
		return true
	}
	return false
}

func (c *Config) validate() error {
	keys := c.TMDBAPIKeys[:0]
	for _, k := range c.TMDBAPIKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	c.TMDBAPIKeys = keys
	if len(c.TMDBAPIKeys) == 0 {
		return errors.New("at least one TMDB api key is required")
	}
	if c.TMDBTimeout <= 0 {
		return fmt.Errorf("invalid TMDB timeout %s", c.TMDBTimeout)
	}
	c.TMDBBaseURL = strings.TrimSuffix(strings.TrimSpace(c.TMDBBaseURL), "/")
	if c.TMDBBaseURL == "" {
		return errors.New("TMDB base url is required")
	}
	return nil
}
