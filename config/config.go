package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, loaded from environment
// variables.
type Config struct {
	Env  string `env:"ENV" envDefault:"DEVELOPMENT"`
	Port string `env:"PORT" envDefault:"8080"`

	SSL      bool   `env:"SSL" envDefault:"false"`
	CertFile string `env:"SSL_CERT_FILE" envDefault:"./cert/myCA.cer"`
	KeyFile  string `env:"SSL_KEY_FILE" envDefault:"./cert/myCA.key"`

	Mongo Mongo `envPrefix:"DB_"`
	Redis Redis `envPrefix:"REDIS_"`
	JWT   JWT
}

// Mongo contains document store connection parameters.
type Mongo struct {
	URI  string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Name string `env:"NAME" envDefault:"gncitizen"`
}

// Redis contains revocation store connection parameters.
type Redis struct {
	Host     string `env:"HOST" envDefault:"localhost:6379"`
	Password string `env:"PASS"`
	DB       int    `env:"DB" envDefault:"0"`
}

// JWT contains token signing secrets and lifetimes. Access and refresh
// tokens are signed with separate secrets.
type JWT struct {
	AccessSecret  string        `env:"ACCESS_SECRET,required,notEmpty"`
	RefreshSecret string        `env:"REFRESH_SECRET,required,notEmpty"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"72h"`
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool {
	return c.Env == "PRODUCTION"
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
