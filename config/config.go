package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env     string  `yaml:"env" env:"ENV" env-default:"local"`
	Easepay Easepay `yaml:"easepay"`
}

type Easepay struct {
	PublicKey string        `yaml:"public_key" env:"EASEPAY_PUBLIC_KEY" env-required:"true"`
	SecretKey string        `yaml:"secret_key" env:"EASEPAY_SECRET_KEY" env-required:"true"`
	BaseUrl   string        `yaml:"base_url" env:"EASEPAY_BASE_URL" env-default:"https://api.easepay.io/v1"`
	Timeout   time.Duration `yaml:"timeout" env:"EASEPAY_TIMEOUT" env-default:"30s"`
}

// Load reads a .env file if present, then the yaml file at path (skipped
// when path is empty) with environment overrides.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config %q: %v", configPath, err)
	}
	return cfg
}
