package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"highlow/internal/util"
	"os"
)

// Config provides configuration for High Low
type Config struct {
	loaded bool
	// Rounds is the number of rounds to play
	Rounds int `yaml:"rounds" envconfig:"rounds"`
	// Seed seeds the deck's random source. 0 uses crypto/rand
	Seed int64 `yaml:"seed" envconfig:"seed"`
	Log  struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	cfg := Config{
		Rounds: 5,
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are layered: defaults, then the YAML config file, then environment variables. An optional
// .env file is read into the environment first.
func Load() error {
	envFile := util.Getenv("HIGHLOW_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not load %s: %w", envFile, err)
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("HIGHLOW_CONFIG_FILE", "config.yaml")
	if err := loadFile(configFile, &cfg); err != nil {
		return err
	}

	if err := envconfig.Process("highlow", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func loadFile(configFile string, cfg *Config) error {
	file, err := os.Open(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("could not decode %s: %w", configFile, err)
	}

	return nil
}

// Validate returns an error if the configuration cannot be used
func (c Config) Validate() error {
	if c.Rounds <= 0 {
		return errors.New("rounds must be > 0")
	}

	if c.Seed < 0 {
		return errors.New("seed cannot be < 0")
	}

	return nil
}
