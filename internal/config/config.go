// Package config provides configuration loading and validation for the resume analyzer service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when neither the config file nor the environment sets a value.
const (
	DefaultPort           = 8000
	DefaultMaxUploadBytes = 10 << 20
)

// Config represents the service configuration that can be loaded from a JSON
// file and overridden by environment variables. All fields are optional;
// missing values use defaults.
type Config struct {
	Port           int      `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	MaxUploadBytes int64    `json:"max_upload_bytes,omitempty" validate:"omitempty,min=1"`
	AllowedOrigins []string `json:"allowed_origins,omitempty" validate:"omitempty,dive,required"`
	VocabularyFile string   `json:"vocabulary_file,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:           DefaultPort,
		MaxUploadBytes: DefaultMaxUploadBytes,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables leave
// the corresponding field empty so MergeWithDefaults can fill it.
func FromEnv() Config {
	return Config{
		Port:           getEnvInt("PORT", 0),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 0)),
		AllowedOrigins: parseOriginList(os.Getenv("ALLOWED_ORIGINS")),
		VocabularyFile: os.Getenv("VOCABULARY_FILE"),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.VocabularyFile != "" {
		if _, err := os.Stat(c.VocabularyFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabularyFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Set fields always win over defaults.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}
	if result.VocabularyFile == "" {
		result.VocabularyFile = defaults.VocabularyFile
	}

	return result
}

// getEnvInt reads an integer environment variable, returning defaultValue
// when unset or unparseable.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// parseOriginList splits a comma-separated origin list, dropping blanks.
func parseOriginList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
