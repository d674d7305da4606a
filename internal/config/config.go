package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

const minSigningKeyLength = 32

type Config struct {
	Env       string         `yaml:"env" env:"ENV" env-required:"true"`
	HTTP      HTTPConfig     `yaml:"http"`
	JWT       JWTConfig      `yaml:"jwt"`
	Storage   StorageConfig  `yaml:"storage"`
	Postgres  PostgresConfig `yaml:"postgres"`
	SQLite    SQLiteConfig   `yaml:"sqlite"`
	I18n      I18nConfig     `yaml:"i18n"`
	SeedUsers []string       `yaml:"seed_users" env:"SEED_USERS" env-separator:";"`
}

type HTTPConfig struct {
	Host              string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port              string        `yaml:"port" env:"HTTP_PORT" env-default:"5050"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowedOrigins    []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
}

type JWTConfig struct {
	Issuer     string        `yaml:"issuer" env:"JWT_ISSUER" env-default:"study-board"`
	SigningKey string        `yaml:"signing_key" env:"JWT_SIGNING_KEY" env-required:"true"`
	TTL        time.Duration `yaml:"ttl" env:"JWT_TTL" env-default:"24h"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
}

type PostgresConfig struct {
	Host           string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `yaml:"username" env:"POSTGRES_USERNAME"`
	Password       string        `yaml:"password" env:"POSTGRES_PASSWORD"`
	Database       string        `yaml:"database" env:"POSTGRES_DATABASE"`
	SSLMode        string        `yaml:"ssl_mode" env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `yaml:"ping_timeout" env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}

type SQLiteConfig struct {
	DSN string `yaml:"dsn" env:"SQLITE_DSN" env-default:"data/study_board.db"`
}

type I18nConfig struct {
	DefaultLanguage string `yaml:"default_language" env:"I18N_DEFAULT_LANGUAGE" env-default:"en"`
}

// Validate checks the rules cleanenv tags cannot express.
func (c Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %q", c.Env)
	}

	if len(c.JWT.SigningKey) < minSigningKeyLength {
		return fmt.Errorf("jwt signing key must be at least %d bytes", minSigningKeyLength)
	}
	if c.JWT.TTL <= 0 {
		return errors.New("jwt ttl must be positive")
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Postgres.Username == "" || c.Postgres.Database == "" {
			return errors.New("postgres username and database are required")
		}
	case StorageDriverSQLite:
		if c.SQLite.DSN == "" {
			return errors.New("sqlite dsn is required")
		}
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}

	_, err := c.Seeds()
	return err
}

// Seeds parses the configured seed users.
func (c Config) Seeds() ([]SeedUser, error) {
	return ParseSeedUsers(c.SeedUsers)
}
