// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Unlike a server deployment, this tool must be runnable with no setup at
// all, so every field has a sensible default and the config file itself is
// optional: with neither source set, the tool runs on defaults plus any
// env:"..." overrides from the environment.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// Storage is embedded so its fields are reachable as cfg.Storage.Path.
	// Nested under storage: in the YAML file.
	Storage Storage `yaml:"storage"`
}

// Storage selects and locates the snapshot backend.
type Storage struct {
	// Backend picks the persistence implementation: "json" writes a
	// pretty-printed JSON file, "sqlite" a single-file database.
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"json"`

	// Path is the snapshot file. The default matches the conventional
	// filename the data has always lived under, so existing files are
	// picked up without any configuration.
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"data.json"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
// The only fatal case is an explicitly named config file that does not
// exist or does not parse; absence of any config file is fine.
func MustLoad() *Config {
	// ── Source 1: environment variable ───────────────────────────────
	configPath := os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	var cfg Config

	// No config file named anywhere: defaults + environment overrides.
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}
		return &cfg
	}

	// A file WAS named — at that point a missing or broken file is a user
	// error worth failing loudly on, not silently ignoring.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv.ReadConfig reads the YAML file and populates the struct,
	// then applies any env:"..." tagged overrides from the environment.
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
