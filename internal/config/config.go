// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// A local .env file, if present, is loaded into the environment first so
// secrets like the Mongo connection string never have to live in the
// YAML file. The parsed values are returned as a *Config pointer so the
// struct is shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-required:"true" means the app refuses to start if that value is
// missing — better to crash at boot than to silently use a wrong default.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// MongoURI is the MongoDB connection string,
	// e.g. "mongodb://127.0.0.1:27017".
	MongoURI string `yaml:"mongo_uri" env:"MONGO_URI" env-required:"true"`

	// Database is the name of the Mongo database holding the
	// employees collection.
	Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"employees"`

	// HTTPServer is embedded (not a pointer) so its fields are accessible
	// directly on Config:  cfg.HTTPServer.Addr  or after promotion cfg.Addr
	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
// Nested under http_server: in the YAML file.
type HTTPServer struct {
	// Addr is the TCP address the server listens on, e.g. "localhost:8082".
	Addr string `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name "MustLoad" follows a Go convention: functions prefixed with
// "Must" are allowed to panic/fatal on failure. Callers do not need to
// check a returned error — if this function returns, the config is valid.
func MustLoad() *Config {
	// Best effort: a missing .env file is perfectly fine, the values may
	// already be in the real environment (Docker, CI, systemd, ...).
	_ = godotenv.Load()

	var configPath string

	// ── Source 1: environment variable ───────────────────────────────
	configPath = os.Getenv("CONFIG_PATH")

	// ── Source 2: command-line flag ───────────────────────────────────
	//   go run ./cmd/employees-api --config=config/local.yaml
	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	// Verify the file exists before trying to read it, so we can give a
	// clear message rather than a cryptic "open: no such file" later.
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv.ReadConfig reads the YAML file and populates the struct.
	// It also reads any env:"..." tagged fields from the environment,
	// and validates env-required:"true" constraints.
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
