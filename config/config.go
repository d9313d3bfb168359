package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "staff-directory.yaml"

const (
	DriverMemory = "memory"
	DriverSqlite = "sqlite"
)

type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"` // memory, sqlite
	Path   string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type TelegramConfig struct {
	Token string `yaml:"token"`
	Queue int    `yaml:"queue"` // pending updates before handlers block
}

func Default() *Config {
	return &Config{
		Storage:  StorageConfig{Driver: DriverMemory},
		Logging:  LoggingConfig{Level: "info"},
		Telegram: TelegramConfig{Queue: 32},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// .env and process environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		c.Telegram.Token = token
	}
	if path := os.Getenv("DIRECTORY_DB_PATH"); path != "" {
		c.Storage.Driver = DriverSqlite
		c.Storage.Path = path
	}
	if level := os.Getenv("DIRECTORY_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSqlite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	if c.Telegram.Queue < 0 {
		return fmt.Errorf("telegram.queue must not be negative, got %d", c.Telegram.Queue)
	}
	return nil
}

func (c *Config) RequireTelegramToken() error {
	if c.Telegram.Token == "" {
		return ErrNoToken{}
	}
	return nil
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN is not set in the environment or config"
}
