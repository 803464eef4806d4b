package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Backend selectors for the entity store.
const (
	BackendFile     = "file"
	BackendDynamoDB = "dynamodb"
)

type Config struct {
	Port      string        `env:"PORT" env-default:"8080"`
	JWTSecret string        `env:"JWT_SECRET" env-default:"cricket_secret_key"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" env-default:"720h"`
	Storage   StorageConfig `env-prefix:"STORAGE_"`
}

type StorageConfig struct {
	Backend     string `env:"BACKEND" env-default:"file"`
	DataFile    string `env:"DATA_FILE" env-default:"data.json"`
	AWSRegion   string `env:"AWS_REGION" env-default:"ap-south-1"`
	TablePrefix string `env:"TABLE_PREFIX" env-default:""`
}

// MustLoad reads the configuration from the environment and panics on
// malformed values.
func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config from environment: " + err.Error())
	}

	return &cfg
}
