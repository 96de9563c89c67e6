package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// defaultTokenTTL matches the token lifetime of the original deployment.
const defaultTokenTTL = 30 * time.Minute

// Config holds all process-wide settings, loaded once at startup and passed
// explicitly into constructors.
type Config struct {
	Port string
	DB   DB
	Auth Auth
	Log  Log
}

type DB struct {
	Path string
}

// Auth carries the signing secret and hashing/token parameters. The signing
// key is required; rotating it invalidates all outstanding tokens.
type Auth struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
}

type Log struct {
	Level string
}

// Load reads configs/config.yml, applying NOTES_* environment overrides
// (e.g. NOTES_AUTH_SIGNING_KEY). A missing config file is fine as long as
// the environment provides a signing key.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs")
	v.SetConfigName("config")
	v.SetEnvPrefix("notes")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "notes.db")
	v.SetDefault("auth.token_ttl", defaultTokenTTL)
	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port: v.GetString("port"),
		DB:   DB{Path: v.GetString("db.path")},
		Auth: Auth{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
			BcryptCost: v.GetInt("auth.bcrypt_cost"),
		},
		Log: Log{Level: v.GetString("log.level")},
	}

	if cfg.Auth.SigningKey == "" {
		return nil, errors.New("auth.signing_key must be set")
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("auth.bcrypt_cost %d out of range [%d, %d]", cfg.Auth.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return cfg, nil
}
