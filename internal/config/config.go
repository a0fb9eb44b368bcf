// Package config provides configuration loading for the generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/GabrielNunesIT/swagger-ts-gen/internal/domain"
)

const (
	// DefaultFile is the config file looked up in the working directory.
	DefaultFile = ".generate-ts-config.json"

	// EnvPrefix prefixes the environment variables overriding the file.
	EnvPrefix = "SWAGGER_TS_"
)

// Formatters lists the accepted formatter names.
var Formatters = []string{"builtin", "prettier", "none"}

// Config holds the application configuration.
type Config struct {
	SwaggerURL    string `koanf:"swaggerUrl" json:"swaggerUrl"`
	OutputPath    string `koanf:"outputPath" json:"outputPath"`
	RequestModule string `koanf:"requestModule" json:"requestModule,omitempty"`
	Formatter     string `koanf:"formatter" json:"formatter,omitempty"`
	// Timeout is the fetch timeout in seconds.
	Timeout int `koanf:"timeout" json:"timeout,omitempty"`
	Retries int `koanf:"retries" json:"retries,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputPath:    "src/app/server",
		RequestModule: "src/app/api/commonRequest",
		Formatter:     "builtin",
		Timeout:       30,
	}
}

// Load returns the configuration from defaults, the file at path when it
// exists, and SWAGGER_TS_ environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	defaults := Default()

	var (
		cfg Config
		err error
	)

	if _, statErr := os.Stat(path); statErr == nil {
		cfg, err = configloader.NewConfigLoader(
			configloader.WithDefaults(defaults),
			configloader.WithFile[Config](path),
			configloader.WithEnv[Config](EnvPrefix),
		).Load()
	} else {
		cfg, err = configloader.NewConfigLoader(
			configloader.WithDefaults(defaults),
			configloader.WithEnv[Config](EnvPrefix),
		).Load()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Validate reports the first missing or invalid field.
func (c *Config) Validate() error {
	switch {
	case c.SwaggerURL == "":
		return &domain.ConfigError{Field: "swaggerUrl", Reason: "is required"}
	case c.OutputPath == "":
		return &domain.ConfigError{Field: "outputPath", Reason: "is required"}
	case !slices.Contains(Formatters, c.Formatter):
		return &domain.ConfigError{Field: "formatter", Reason: fmt.Sprintf("must be one of %v, got %q", Formatters, c.Formatter)}
	case c.Timeout < 0:
		return &domain.ConfigError{Field: "timeout", Reason: "must not be negative"}
	case c.Retries < 0:
		return &domain.ConfigError{Field: "retries", Reason: "must not be negative"}
	}

	return nil
}

// RequestTimeout returns the fetch timeout, zero meaning none.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// ErrConfigExists is returned by WriteDefault when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// WriteDefault writes a starter config file holding swaggerUrl and outputPath.
// An existing file is kept unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
		}
	}

	starter := struct {
		SwaggerURL string `json:"swaggerUrl"`
		OutputPath string `json:"outputPath"`
	}{
		OutputPath: Default().OutputPath,
	}

	data, err := json.Marshal(starter, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
