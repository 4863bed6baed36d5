package cmd

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every variable read by LoadConfig, e.g. ORDER_LOG_LEVEL.
const EnvPrefix = "ORDER"

// Config holds the demo binary settings, read from ORDER_* variables.
type Config struct {
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat  string `envconfig:"LOG_FORMAT" default:"text"`
	CustomerID string `envconfig:"CUSTOMER_ID" default:"demo-customer"`
}

// LoadConfig reads the optional env files (".env" when none are given) into
// the process environment and decodes it into Config. Variables already set
// in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
