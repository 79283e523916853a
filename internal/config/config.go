// Package config loads the immutable run configuration for safpack.
//
// Values are layered: built-in defaults, then safpack.yaml if present,
// then SAFPACK_* environment variables (optionally loaded from a .env
// file), then CLI flags applied by the caller. The resulting Config value
// is passed into each component at construction; nothing reads global
// state afterwards.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aferrand/safpack/pkg/safpack"
)

// ConfigFileName is the project configuration file looked up in the
// working directory.
const ConfigFileName = "safpack.yaml"

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Config holds every tunable of a packaging run.
type Config struct {
	FilesDir          string   `yaml:"files_dir"`
	OutputDir         string   `yaml:"output_dir"`
	Language          string   `yaml:"language"`
	Schema            string   `yaml:"schema"`
	LogFile           string   `yaml:"log_file"`
	MaxHeaderScan     int      `yaml:"max_header_scan"`
	RequiredFields    []string `yaml:"required_fields"`
	AllowedExtensions []string `yaml:"allowed_extensions"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FilesDir:          safpack.DefaultFilesDir,
		OutputDir:         safpack.DefaultOutputDir,
		Language:          safpack.DefaultLanguage,
		Schema:            safpack.DefaultSchema,
		LogFile:           safpack.DefaultLogFileName,
		MaxHeaderScan:     safpack.DefaultMaxHeaderScan,
		RequiredFields:    safpack.DefaultRequiredFields(),
		AllowedExtensions: safpack.DefaultAllowedExtensions(),
	}
}

// Load reads safpack.yaml from dir, overlaying it onto the defaults. Keys
// absent from the file keep their default values.
func Load(dir string) (Config, error) {
	cfg := Default()
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, ErrConfigNotFound
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadEnvFile loads a .env file into the process environment, if it
// exists. Missing files are not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnv overlays SAFPACK_* environment variables onto cfg. Unset or
// malformed variables leave the existing value alone.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("SAFPACK_FILES_DIR"); v != "" {
		cfg.FilesDir = v
	}
	if v := os.Getenv("SAFPACK_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("SAFPACK_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("SAFPACK_SCHEMA"); v != "" {
		cfg.Schema = v
	}
	if v := os.Getenv("SAFPACK_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("SAFPACK_MAX_HEADER_SCAN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxHeaderScan = n
		}
	}
}
