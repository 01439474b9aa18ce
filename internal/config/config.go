package config

import (
	"fmt"
	"time"

	"github.com/nipun221/user-admin-ds/internal/utils"

	"github.com/ilyakaznacheev/cleanenv"
)

// durationSeconds parses env as time.Duration: "10s", "6h" or bare number = seconds (e.g. "10" -> 10s).
type durationSeconds time.Duration

// SetValue implements cleanenv.Setter.
func (d *durationSeconds) SetValue(data string) error {
	v, err := utils.ParseDurationEnv(data)
	if err != nil {
		return err
	}
	*d = durationSeconds(v)
	return nil
}

func (d durationSeconds) Duration() time.Duration { return time.Duration(d) }

type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Mongo MongoConfig
	Auth  AuthConfig
}

type AppConfig struct {
	Env     string `env:"APP_ENV" env-default:"dev"`
	Version string `env:"VERSION" env-default:"dev"`
}

type HTTPConfig struct {
	Port string `env:"PORT" env-default:"5000"`

	// Значение: "10s", "5m" или число секунд без суффикса (например 10).
	ReadTimeout  durationSeconds `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout durationSeconds `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  durationSeconds `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type MongoConfig struct {
	// URI is the full connection string, e.g. mongodb+srv://... (Atlas).
	URI      string `env:"ATLAS_STRING" env-required:"true"`
	Database string `env:"MONGO_DB" env-default:"user-admin"`
}

type AuthConfig struct {
	// Secrets are required on purpose: a known fallback default here would let
	// anyone mint valid tokens.
	UserSecret  string `env:"JWT_SECRET_KEY" env-required:"true"`
	AdminSecret string `env:"JWT_SECRET_KEY_ADMIN" env-required:"true"`

	// TokenTTL: "6h" or number of seconds.
	TokenTTL durationSeconds `env:"TOKEN_TTL" env-default:"6h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.Auth.UserSecret == cfg.Auth.AdminSecret {
		return Config{}, fmt.Errorf("JWT_SECRET_KEY and JWT_SECRET_KEY_ADMIN must differ")
	}
	if cfg.Auth.TokenTTL.Duration() <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be positive")
	}
	return cfg, nil
}
