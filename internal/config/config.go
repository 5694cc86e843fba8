// Package config loads the service configuration.
//
// Values are resolved in this order, later sources winning: built-in
// defaults, an optional YAML file, environment variables, command-line
// flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"word-finder/internal/logging"
)

// Config holds every setting of the service.
type Config struct {
	Addr           string   `yaml:"addr"`
	WordsPath      string   `yaml:"words_path"`
	MaxResults     int      `yaml:"max_results"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	Log            Log      `yaml:"log"`
	Scan           Scan     `yaml:"scan"`
}

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Scan tunes the dictionary scan.
type Scan struct {
	Workers   int `yaml:"workers"`
	ChunkSize int `yaml:"chunk_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:           ":8080",
		WordsPath:      "words_alpha.txt",
		MaxResults:     100,
		AllowedOrigins: []string{"*"},
		Log: Log{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (when path
// is not empty) and then with the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("ADDR"); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup("WORDS_PATH"); ok && v != "" {
		c.WordsPath = v
	}
	if v, ok := lookup("MAX_RESULTS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid MAX_RESULTS %q: %w", v, err)
		}
		c.MaxResults = n
	}
	if v, ok := lookup("ALLOWED_ORIGINS"); ok && v != "" {
		c.AllowedOrigins = splitList(v)
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.Log.Format = v
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if c.WordsPath == "" {
		errs = append(errs, errors.New("words_path must not be empty"))
	}
	if c.MaxResults <= 0 {
		errs = append(errs, fmt.Errorf("max_results must be positive, got %d", c.MaxResults))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format must be %s or %s, got %q", logging.FormatText, logging.FormatJSON, c.Log.Format))
	}
	if c.Scan.Workers < 0 {
		errs = append(errs, fmt.Errorf("scan.workers must not be negative, got %d", c.Scan.Workers))
	}
	if c.Scan.ChunkSize < 0 {
		errs = append(errs, fmt.Errorf("scan.chunk_size must not be negative, got %d", c.Scan.ChunkSize))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
